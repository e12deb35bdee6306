package domain

import "time"

// QueueViewEntry is the display projection of a QueueEntry. The eta field is
// populated for waiting entries only; the stored entry is never mutated to
// carry it.
type QueueViewEntry struct {
	QueueEntry
	ETA *time.Time `json:"eta,omitempty"`
}

// QueueView is the derived snapshot pushed to observers. It is never the
// authoritative state.
type QueueView struct {
	Entries               []QueueViewEntry `json:"entries"`
	AverageConsultMinutes int              `json:"averageConsultMinutes"`
	DoctorPresent         bool             `json:"doctorPresent"`
}

// MaskedEntry is the public search projection: callers that did not match on
// phone or token see a masked first name instead of the full name.
type MaskedEntry struct {
	Token      int        `json:"token"`
	NameMasked string     `json:"nameMasked"`
	Phone      string     `json:"phone,omitempty"`
	Status     Status     `json:"status"`
	ETA        *time.Time `json:"eta,omitempty"`
}
