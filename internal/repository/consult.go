package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/repository/entity"
)

type consultRepository struct {
	db *gorm.DB
}

func NewConsultRepository(db *gorm.DB) *consultRepository {
	return &consultRepository{
		db: db,
	}
}

func (cr *consultRepository) Insert(ctx context.Context, record domain.ConsultRecord) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	err := gorm.G[entity.Consult](cr.db).Create(ctx, &entity.Consult{
		Token:       record.Token,
		Doctor:      record.Doctor,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		DurationMin: record.DurationMin,
	})
	if err != nil {
		return errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return nil
}

func (cr *consultRepository) List(ctx context.Context, limit, offset int) ([]domain.ConsultRecord, int64, error) {
	total, err := gorm.G[entity.Consult](cr.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(constant.PersistenceErr, err.Error())
	}

	rows, err := gorm.G[entity.Consult](cr.db).
		Order("end_time DESC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(constant.PersistenceErr, err.Error())
	}

	records := make([]domain.ConsultRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToDomain())
	}

	return records, total, nil
}
