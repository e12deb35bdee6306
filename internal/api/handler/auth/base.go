package auth

import (
	"context"

	"akshara/clinic-queue/internal/domain"
)

type AuthHandler struct {
	authService authService
}

type authService interface {
	Login(ctx context.Context, username, password string) (string, domain.User, error)
}

func New(authService authService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}
