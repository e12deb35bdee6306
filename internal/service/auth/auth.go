package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

// Login verifies the credentials and returns a signed token. Unknown user
// and wrong password are indistinguishable to the caller.
func (as *authService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	if username == "" || password == "" {
		return "", domain.User{}, errors.Wrap(constant.ValidationErr, "missing credentials")
	}

	user, err := as.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, constant.NotFoundErr) {
			return "", domain.User{}, constant.InvalidCredentialsErr
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, constant.InvalidCredentialsErr
	}

	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.tokenTTL())),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.cfg.JWTSecret))
	if err != nil {
		return "", domain.User{}, errors.Wrap(err, "failed to sign token")
	}

	return token, user, nil
}

// Seed creates the default receptionist account when the users table is
// empty, so a fresh deployment can log in.
func (as *authService) Seed(ctx context.Context) error {
	count, err := as.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(as.cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	if err := as.users.Create(ctx, domain.User{
		Username:     as.cfg.SeedUsername,
		PasswordHash: string(hash),
		Role:         constant.RoleReception,
	}); err != nil {
		return err
	}

	as.logger.Infof("created default receptionist: %s", as.cfg.SeedUsername)
	return nil
}
