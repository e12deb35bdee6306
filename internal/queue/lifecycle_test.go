package queue

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

func newTestLifecycle(t *testing.T, allowParallel, allowReopen bool) (*Lifecycle, *Store, *Estimator) {
	t.Helper()
	est := NewEstimator(8)
	store := NewStore(est)
	return NewLifecycle(store, est, allowParallel, allowReopen), store, est
}

func TestLifecycle_StartHappyPath(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	entry, err := lc.Start(1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInConsult, entry.Status)
	require.NotNil(t, entry.StartTime)
	assert.Nil(t, entry.EndTime)
}

func TestLifecycle_DoubleStartConflicts(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)

	before, err := store.Get(1)
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))

	// a rejected transition leaves the entry exactly as it was
	after, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLifecycle_StartUnknownToken(t *testing.T) {
	lc, _, _ := newTestLifecycle(t, false, false)

	_, err := lc.Start(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.NotFoundErr))
}

func TestLifecycle_SingleActiveEnforced(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	_, err = store.Add(AddInput{Name: "Ravi"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)

	_, err = lc.Start(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))

	second, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, second.Status)
}

func TestLifecycle_ParallelConsultsWhenAllowed(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, true, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)
	_, err = store.Add(AddInput{Name: "Ravi"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)
	_, err = lc.Start(2)
	require.NoError(t, err)
}

func TestLifecycle_EndRecordsDuration(t *testing.T) {
	lc, store, est := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	lc.now = func() time.Time { return start }
	_, err = lc.Start(1)
	require.NoError(t, err)

	lc.now = func() time.Time { return start.Add(12 * time.Minute) }
	entry, average, err := lc.End(1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDone, entry.Status)
	require.NotNil(t, entry.EndTime)
	// round((8*3 + 12) / 4) = 9
	assert.Equal(t, 9, average)
	assert.Equal(t, 9, est.Current())
}

func TestLifecycle_EndClampsShortConsultToOneMinute(t *testing.T) {
	lc, store, est := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	lc.now = func() time.Time { return start }
	_, err = lc.Start(1)
	require.NoError(t, err)

	lc.now = func() time.Time { return start.Add(5 * time.Second) }
	_, average, err := lc.End(1)
	require.NoError(t, err)

	// round((8*3 + 1) / 4) = 6
	assert.Equal(t, 6, average)
	assert.Equal(t, 6, est.Current())
}

func TestLifecycle_EndWithoutStartConflicts(t *testing.T) {
	lc, store, est := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, _, err = lc.End(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))

	// estimator untouched by the failed transition
	assert.Equal(t, 8, est.Current())
}

func TestLifecycle_EndTwiceConflicts(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)
	_, _, err = lc.End(1)
	require.NoError(t, err)

	_, _, err = lc.End(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}

func TestLifecycle_StartDoneEntryConflicts(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)
	_, _, err = lc.End(1)
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}

func TestLifecycle_ReopenDisabledByDefault(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)
	_, _, err = lc.End(1)
	require.NoError(t, err)

	_, err = lc.Reopen(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}

func TestLifecycle_ReopenClearsEndTime(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, true)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)
	_, _, err = lc.End(1)
	require.NoError(t, err)

	entry, err := lc.Reopen(1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInConsult, entry.Status)
	require.NotNil(t, entry.StartTime)
	assert.Nil(t, entry.EndTime)
}

func TestLifecycle_ReopenWaitingEntryConflicts(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, true)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Reopen(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}

func TestLifecycle_MarkNoShow(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	entry, err := lc.MarkNoShow(1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, entry.Status)

	// no_show is terminal for start
	_, err = lc.Start(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}

func TestLifecycle_MarkNoShowRequiresWaiting(t *testing.T) {
	lc, store, _ := newTestLifecycle(t, false, false)
	_, err := store.Add(AddInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = lc.Start(1)
	require.NoError(t, err)

	_, err = lc.MarkNoShow(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ConflictErr))
}
