package domain

import "time"

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusInConsult Status = "in_consult"
	StatusDone      Status = "done"
	StatusNoShow    Status = "no_show"
)

// QueueEntry is one patient's slot in today's queue. Entries are created by
// registration only and mutated only through lifecycle transitions.
type QueueEntry struct {
	Token         int        `json:"token"`
	Name          string     `json:"name"`
	Age           int        `json:"age,omitempty"`
	Sex           string     `json:"sex,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	BookedTime    *time.Time `json:"bookedTime,omitempty"`
	ArrivalTime   time.Time  `json:"arrivalTime"`
	EstConsultMin int        `json:"estConsultMin"`
	Status        Status     `json:"status"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
}

// ConsultRecord is the history row written when a consult ends.
type ConsultRecord struct {
	Token       int       `json:"token"`
	Doctor      string    `json:"doctor"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	DurationMin int       `json:"durationMin"`
}
