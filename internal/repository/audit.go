package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/repository/entity"
)

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *auditRepository {
	return &auditRepository{
		db: db,
	}
}

func (ar *auditRepository) InsertBatch(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]entity.AuditLog, len(events))
	for i, ev := range events {
		rows[i] = entity.AuditLog{
			EventId:   ev.ID,
			EventType: string(ev.Type),
			Token:     ev.Token,
			Actor:     ev.Actor,
			At:        ev.At,
		}
	}

	if err := ar.db.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		return errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return nil
}
