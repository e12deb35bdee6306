package entity

import (
	"time"

	"akshara/clinic-queue/internal/domain"
)

// Appointment mirrors one queue entry; the table is rewritten from the
// in-memory store after each committed mutation and cleared on day reset.
type Appointment struct {
	Token         int    `gorm:"primary_key"`
	Name          string
	Age           int
	Sex           string
	Phone         string
	BookedTime    *time.Time
	ArrivalTime   time.Time
	EstConsultMin int
	Status        string
	StartTime     *time.Time
	EndTime       *time.Time
	UpdatedAt     time.Time
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) ToDomain() domain.QueueEntry {
	return domain.QueueEntry{
		Token:         a.Token,
		Name:          a.Name,
		Age:           a.Age,
		Sex:           a.Sex,
		Phone:         a.Phone,
		BookedTime:    a.BookedTime,
		ArrivalTime:   a.ArrivalTime,
		EstConsultMin: a.EstConsultMin,
		Status:        domain.Status(a.Status),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
	}
}

func AppointmentFromDomain(e domain.QueueEntry) Appointment {
	return Appointment{
		Token:         e.Token,
		Name:          e.Name,
		Age:           e.Age,
		Sex:           e.Sex,
		Phone:         e.Phone,
		BookedTime:    e.BookedTime,
		ArrivalTime:   e.ArrivalTime,
		EstConsultMin: e.EstConsultMin,
		Status:        string(e.Status),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
	}
}
