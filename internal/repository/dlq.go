package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/repository/entity"
)

type dlqRepository struct {
	db *gorm.DB
}

func NewDlqRepository(db *gorm.DB) *dlqRepository {
	return &dlqRepository{
		db: db,
	}
}

func (dr *dlqRepository) InsertDLQ(ctx context.Context, km domain.KafkaMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return gorm.G[entity.KafkaDlq](dr.db).Create(ctx, &entity.KafkaDlq{
		Topic:         km.Topic,
		Key:           km.Key,
		Payload:       km.Payload,
		AttemptCount:  km.Attempts,
		LastAttemptAt: time.Now(),
	})
}
