package queue

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

// Lifecycle applies consult transitions to store entries. The strict
// progression is waiting -> in_consult -> done; no_show branches off waiting,
// and reopening a done entry is a separately gated operation. Every
// transition is atomic under the store mutex, and a rejected transition
// leaves the entry exactly as it was.
type Lifecycle struct {
	store     *Store
	estimator *Estimator

	// allowParallel relaxes the single-active policy: when false (default)
	// a start is rejected while any other entry is in consult.
	allowParallel bool
	// allowReopen gates the Reopen transition on done entries.
	allowReopen bool

	now func() time.Time
}

func NewLifecycle(store *Store, estimator *Estimator, allowParallel, allowReopen bool) *Lifecycle {
	return &Lifecycle{
		store:         store,
		estimator:     estimator,
		allowParallel: allowParallel,
		allowReopen:   allowReopen,
		now:           time.Now,
	}
}

// Start moves a waiting entry into consult.
func (l *Lifecycle) Start(token int) (domain.QueueEntry, error) {
	s := l.store
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byToken[token]
	if !ok {
		return domain.QueueEntry{}, errors.Wrapf(constant.NotFoundErr, "token %d", token)
	}

	switch entry.Status {
	case domain.StatusInConsult:
		return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr, "token %d is already in consult", token)
	case domain.StatusDone:
		return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr, "token %d is done; use reopen", token)
	case domain.StatusNoShow:
		return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr, "token %d was marked no-show", token)
	}

	if !l.allowParallel {
		for _, other := range s.entries {
			if other.Token != token && other.Status == domain.StatusInConsult {
				return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr,
					"token %d is already in consult", other.Token)
			}
		}
	}

	now := l.now()
	entry.Status = domain.StatusInConsult
	entry.StartTime = &now
	entry.EndTime = nil

	return *entry, nil
}

// End closes an active consult and feeds the observed duration into the
// estimator. The returned minutes are the new running average.
func (l *Lifecycle) End(token int) (domain.QueueEntry, int, error) {
	s := l.store
	s.mu.Lock()

	entry, ok := s.byToken[token]
	if !ok {
		s.mu.Unlock()
		return domain.QueueEntry{}, 0, errors.Wrapf(constant.NotFoundErr, "token %d", token)
	}

	if entry.Status != domain.StatusInConsult || entry.StartTime == nil {
		s.mu.Unlock()
		return domain.QueueEntry{}, 0, errors.Wrapf(constant.ConflictErr, "token %d is not in consult", token)
	}

	now := l.now()
	entry.Status = domain.StatusDone
	entry.EndTime = &now

	actualMinutes := int(math.Round(now.Sub(*entry.StartTime).Minutes()))
	if actualMinutes < 1 {
		actualMinutes = 1
	}

	updated := *entry
	s.mu.Unlock()

	// Estimator updates exactly once per completed consult, from the actual
	// duration only.
	average := l.estimator.Record(actualMinutes)

	return updated, average, nil
}

// Reopen moves a done entry back into consult, clearing its end time. Only
// available when explicitly enabled; start never reopens implicitly.
func (l *Lifecycle) Reopen(token int) (domain.QueueEntry, error) {
	if !l.allowReopen {
		return domain.QueueEntry{}, errors.Wrap(constant.ConflictErr, "reopen is disabled")
	}

	s := l.store
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byToken[token]
	if !ok {
		return domain.QueueEntry{}, errors.Wrapf(constant.NotFoundErr, "token %d", token)
	}

	if entry.Status != domain.StatusDone {
		return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr, "token %d is not done", token)
	}

	if !l.allowParallel {
		for _, other := range s.entries {
			if other.Status == domain.StatusInConsult {
				return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr,
					"token %d is already in consult", other.Token)
			}
		}
	}

	entry.Status = domain.StatusInConsult
	entry.EndTime = nil

	return *entry, nil
}

// MarkNoShow flags a waiting entry that never showed up.
func (l *Lifecycle) MarkNoShow(token int) (domain.QueueEntry, error) {
	s := l.store
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byToken[token]
	if !ok {
		return domain.QueueEntry{}, errors.Wrapf(constant.NotFoundErr, "token %d", token)
	}

	if entry.Status != domain.StatusWaiting {
		return domain.QueueEntry{}, errors.Wrapf(constant.ConflictErr, "token %d is not waiting", token)
	}

	entry.Status = domain.StatusNoShow

	return *entry, nil
}
