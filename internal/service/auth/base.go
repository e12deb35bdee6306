package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"akshara/clinic-queue/internal/config"
	"akshara/clinic-queue/internal/domain"
)

type authService struct {
	users  userRepository
	cfg    config.Auth
	logger *logrus.Logger
}

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user domain.User) error
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(users userRepository, cfg config.Auth, logger *logrus.Logger) *authService {
	return &authService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

func (as *authService) tokenTTL() time.Duration {
	return time.Duration(as.cfg.TokenTTLHour) * time.Hour
}
