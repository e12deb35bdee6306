package entity

import (
	"time"

	"akshara/clinic-queue/internal/domain"
)

type Consult struct {
	Id          int64 `gorm:"primary_key"`
	Token       int
	Doctor      string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
	CreatedAt   time.Time
}

func (Consult) TableName() string {
	return "consults"
}

func (c Consult) ToDomain() domain.ConsultRecord {
	return domain.ConsultRecord{
		Token:       c.Token,
		Doctor:      c.Doctor,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		DurationMin: c.DurationMin,
	}
}
