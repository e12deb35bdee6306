package domain

import "time"

type EventType string

const (
	EventEntryRegistered EventType = "entry_registered"
	EventConsultStarted  EventType = "consult_started"
	EventConsultEnded    EventType = "consult_ended"
	EventConsultReopened EventType = "consult_reopened"
	EventEntryNoShow     EventType = "entry_no_show"
	EventPresenceChanged EventType = "presence_changed"
	EventDayReset        EventType = "day_reset"
)

// Event is the audit record emitted after every committed mutation.
type Event struct {
	ID    string    `json:"id"`
	Type  EventType `json:"type"`
	Token int       `json:"token,omitempty"`
	Actor string    `json:"actor,omitempty"`
	At    time.Time `json:"at"`
}

type KafkaMessage struct {
	Key     string
	Payload []byte
	Topic   string
	// Attempts indicates how many times producers attempted writes
	Attempts int
}
