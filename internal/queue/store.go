package queue

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

// Store owns today's queue entries and the doctor-presence flag. All
// mutation goes through its methods under one mutex; reads hand out copies so
// no caller ever observes a partially applied transition.
type Store struct {
	mu            sync.Mutex
	entries       []*domain.QueueEntry
	byToken       map[int]*domain.QueueEntry
	nextToken     int
	doctorPresent bool

	estimator *Estimator
	now       func() time.Time
}

// AddInput carries the registration fields. Name is the only required field.
type AddInput struct {
	Name          string
	Age           int
	Sex           string
	Phone         string
	BookedTime    *time.Time
	EstConsultMin int
}

func NewStore(estimator *Estimator) *Store {
	return &Store{
		byToken:   make(map[int]*domain.QueueEntry),
		nextToken: 1,
		estimator: estimator,
		now:       time.Now,
	}
}

// Add validates the input, allocates the next token and inserts a waiting
// entry. Tokens are strictly increasing for the lifetime of the store and
// are never reused, even after entries complete.
func (s *Store) Add(input AddInput) (domain.QueueEntry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.QueueEntry{}, errors.Wrap(constant.ValidationErr, "missing name")
	}

	est := input.EstConsultMin
	if est <= 0 {
		est = s.estimator.Current()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &domain.QueueEntry{
		Token:         s.nextToken,
		Name:          input.Name,
		Age:           input.Age,
		Sex:           input.Sex,
		Phone:         input.Phone,
		BookedTime:    input.BookedTime,
		ArrivalTime:   s.now(),
		EstConsultMin: est,
		Status:        domain.StatusWaiting,
	}
	s.nextToken++

	s.entries = append(s.entries, entry)
	s.byToken[entry.Token] = entry

	return *entry, nil
}

func (s *Store) Get(token int) (domain.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byToken[token]
	if !ok {
		return domain.QueueEntry{}, errors.Wrapf(constant.NotFoundErr, "token %d", token)
	}
	return *entry, nil
}

// List returns copies of all entries in ascending token order.
func (s *Store) List() []domain.QueueEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

func (s *Store) listLocked() []domain.QueueEntry {
	out := make([]domain.QueueEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	return out
}

// Snapshot returns the entries together with the presence flag and the live
// average, all read under one lock acquisition so observers get a consistent
// picture.
func (s *Store) Snapshot() ([]domain.QueueEntry, bool, int) {
	s.mu.Lock()
	entries := s.listLocked()
	present := s.doctorPresent
	s.mu.Unlock()

	return entries, present, s.estimator.Current()
}

func (s *Store) SetDoctorPresent(present bool) {
	s.mu.Lock()
	s.doctorPresent = present
	s.mu.Unlock()
}

func (s *Store) DoctorPresent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctorPresent
}

// Load replaces the store contents with a persisted snapshot, typically at
// startup. Token numbering resumes above the highest loaded token so tokens
// stay unique across a restart.
func (s *Store) Load(entries []domain.QueueEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.byToken = make(map[int]*domain.QueueEntry)
	s.nextToken = 1

	for i := range entries {
		e := entries[i]
		s.entries = append(s.entries, &e)
		s.byToken[e.Token] = &e
		if e.Token >= s.nextToken {
			s.nextToken = e.Token + 1
		}
	}
}

// Reset clears every entry, restores the estimator default and marks the
// doctor absent. Token numbering starts over; this is the day rollover.
func (s *Store) Reset(defaultAverageMinutes int) {
	s.mu.Lock()
	s.entries = nil
	s.byToken = make(map[int]*domain.QueueEntry)
	s.nextToken = 1
	s.doctorPresent = false
	s.mu.Unlock()

	s.estimator.Reset(defaultAverageMinutes)
}
