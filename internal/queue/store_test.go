package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

func newTestStore() *Store {
	return NewStore(NewEstimator(8))
}

func TestStore_AddAllocatesIncreasingTokens(t *testing.T) {
	s := newTestStore()

	first, err := s.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	second, err := s.Add(AddInput{Name: "Ravi"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Token)
	assert.Equal(t, 2, second.Token)
	assert.Equal(t, domain.StatusWaiting, first.Status)
	assert.False(t, first.ArrivalTime.IsZero())
}

func TestStore_AddRejectsMissingName(t *testing.T) {
	s := newTestStore()

	_, err := s.Add(AddInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ValidationErr))
	assert.Empty(t, s.List())
}

func TestStore_AddDefaultsEstimateFromEstimator(t *testing.T) {
	est := NewEstimator(8)
	s := NewStore(est)

	entry, err := s.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, 8, entry.EstConsultMin)

	est.Record(20) // average moves to 11

	entry, err = s.Add(AddInput{Name: "Ravi"})
	require.NoError(t, err)
	assert.Equal(t, 11, entry.EstConsultMin)

	// an explicit estimate is kept as given
	entry, err = s.Add(AddInput{Name: "Meera", EstConsultMin: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, entry.EstConsultMin)
}

func TestStore_ConcurrentAddsKeepTokensUnique(t *testing.T) {
	s := newTestStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Add(AddInput{Name: "patient"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries := s.List()
	require.Len(t, entries, n)

	seen := make(map[int]bool, n)
	prev := 0
	for _, e := range entries {
		assert.False(t, seen[e.Token], "token %d assigned twice", e.Token)
		seen[e.Token] = true
		assert.Greater(t, e.Token, prev)
		prev = e.Token
	}
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	entries := s.List()
	entries[0].Name = "mutated"

	fresh, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", fresh.Name)
}

func TestStore_GetUnknownToken(t *testing.T) {
	s := newTestStore()

	_, err := s.Get(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.NotFoundErr))
}

func TestStore_Reset(t *testing.T) {
	est := NewEstimator(8)
	s := NewStore(est)

	_, err := s.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	s.SetDoctorPresent(true)
	est.Record(30)

	s.Reset(8)

	assert.Empty(t, s.List())
	assert.False(t, s.DoctorPresent())
	assert.Equal(t, 8, est.Current())

	// token numbering starts over after the rollover
	entry, err := s.Add(AddInput{Name: "Ravi"})
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Token)
}

func TestStore_LoadResumesTokenNumbering(t *testing.T) {
	s := newTestStore()

	now := time.Now()
	s.Load([]domain.QueueEntry{
		{Token: 3, Name: "Asha", Status: domain.StatusDone, ArrivalTime: now, StartTime: &now, EndTime: &now},
		{Token: 7, Name: "Ravi", Status: domain.StatusWaiting, ArrivalTime: now},
	})

	entry, err := s.Add(AddInput{Name: "Meera"})
	require.NoError(t, err)
	assert.Equal(t, 8, entry.Token)
}

func TestStore_SnapshotIsConsistent(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	s.SetDoctorPresent(true)

	entries, present, average := s.Snapshot()
	assert.Len(t, entries, 1)
	assert.True(t, present)
	assert.Equal(t, 8, average)
}
