package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/repository/entity"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *appointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// SaveAll replaces the persisted snapshot with the given entries in one
// transaction. The in-memory store stays authoritative; this table only
// exists so a restarted process can reload today's queue.
func (ar *appointmentRepository) SaveAll(ctx context.Context, entries []domain.QueueEntry) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	err := ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gorm.G[entity.Appointment](tx).Where("1 = 1").Delete(ctx); err != nil {
			return errors.Wrap(err, "failed to clear appointment snapshot")
		}

		if len(entries) == 0 {
			return nil
		}

		rows := make([]entity.Appointment, len(entries))
		for i, e := range entries {
			rows[i] = entity.AppointmentFromDomain(e)
			rows[i].UpdatedAt = time.Now()
		}

		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return errors.Wrap(err, "failed to insert appointment snapshot")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return nil
}

// LoadAll returns the persisted snapshot in token order.
func (ar *appointmentRepository) LoadAll(ctx context.Context) ([]domain.QueueEntry, error) {
	rows, err := gorm.G[entity.Appointment](ar.db).Order("token ASC").Find(ctx)
	if err != nil {
		return nil, errors.Wrap(constant.PersistenceErr, err.Error())
	}

	entries := make([]domain.QueueEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}

	return entries, nil
}

func (ar *appointmentRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	if _, err := gorm.G[entity.Appointment](ar.db).Where("1 = 1").Delete(ctx); err != nil {
		return errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return nil
}
