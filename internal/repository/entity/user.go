package entity

import (
	"time"

	"akshara/clinic-queue/internal/domain"
)

type User struct {
	Id           int64  `gorm:"primary_key"`
	Username     string `gorm:"unique"`
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u User) ToDomain() domain.User {
	return domain.User{
		ID:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
