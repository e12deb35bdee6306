package entity

import "time"

type AuditLog struct {
	Id        int64 `gorm:"primary_key"`
	EventId   string
	EventType string
	Token     int
	Actor     string
	At        time.Time
	CreatedAt time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
