package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/repository/entity"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := gorm.G[entity.User](ur.db).Where("username = ?", username).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, errors.Wrapf(constant.NotFoundErr, "user %s", username)
		}
		return domain.User{}, errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return row.ToDomain(), nil
}

func (ur *userRepository) Count(ctx context.Context) (int64, error) {
	total, err := gorm.G[entity.User](ur.db).Count(ctx, "id")
	if err != nil {
		return 0, errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return total, nil
}

func (ur *userRepository) Create(ctx context.Context, user domain.User) error {
	err := gorm.G[entity.User](ur.db).Create(ctx, &entity.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	})
	if err != nil {
		return errors.Wrap(constant.PersistenceErr, err.Error())
	}

	return nil
}
