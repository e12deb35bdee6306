// Package schedule projects the display view of the queue: per-entry ETAs
// derived from the active consult, the doctor-presence flag and the running
// duration estimate. ComputeView is a pure function over its inputs; it never
// touches the store.
package schedule

import (
	"sort"
	"time"

	"akshara/clinic-queue/internal/domain"
)

// ComputeView walks the queue in token order and accumulates an offset of
// minutes consumed by every entry ahead. The baseline is the active consult's
// start time when one exists, now when the doctor is present, and absent
// otherwise (booked times then stand in for waiting entries that have one).
func ComputeView(entries []domain.QueueEntry, doctorPresent bool, averageConsultMinutes int, now time.Time) domain.QueueView {
	sorted := make([]domain.QueueEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Token < sorted[j].Token })

	var active *domain.QueueEntry
	for i := range sorted {
		if sorted[i].Status == domain.StatusInConsult {
			active = &sorted[i]
			break
		}
	}

	offsetMinutes := 0
	if active != nil && active.StartTime != nil {
		elapsed := int(now.Sub(*active.StartTime).Minutes())
		if elapsed < 0 {
			elapsed = 0
		}
		remaining := estimateFor(*active, averageConsultMinutes) - elapsed
		if remaining < 0 {
			remaining = 0
		}
		offsetMinutes = remaining
	}

	var baseline *time.Time
	switch {
	case active != nil && active.StartTime != nil:
		baseline = active.StartTime
	case doctorPresent:
		baseline = &now
	}

	projected := make([]domain.QueueViewEntry, 0, len(sorted))
	for _, entry := range sorted {
		row := domain.QueueViewEntry{QueueEntry: entry}

		if entry.Status == domain.StatusWaiting {
			switch {
			case baseline == nil && entry.BookedTime != nil:
				row.ETA = entry.BookedTime
			case baseline == nil:
				eta := now.Add(time.Duration(offsetMinutes) * time.Minute)
				row.ETA = &eta
			default:
				eta := baseline.Add(time.Duration(offsetMinutes) * time.Minute)
				row.ETA = &eta
			}
			offsetMinutes += estimateFor(entry, averageConsultMinutes)
		}

		projected = append(projected, row)
	}

	return domain.QueueView{
		Entries:               projected,
		AverageConsultMinutes: averageConsultMinutes,
		DoctorPresent:         doctorPresent,
	}
}

// estimateFor prefers the entry's own frozen estimate; the live average is
// only the fallback for entries created without one.
func estimateFor(entry domain.QueueEntry, averageConsultMinutes int) int {
	if entry.EstConsultMin > 0 {
		return entry.EstConsultMin
	}
	return averageConsultMinutes
}
