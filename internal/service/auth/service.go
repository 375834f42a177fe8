package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/pkg/auth"
	"github.com/medicore/hospital-api/pkg/security"
)

// Authenticator is the authentication backend contract consumed by the
// session store: credentials in, user plus opaque token out, or a failure.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ValidateToken(ctx context.Context, token string) (*model.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Authenticate resolves credentials against the staff directory. Every
// failure collapses to ErrInvalidCredentials so callers cannot distinguish
// an unknown email from a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", model.ErrInvalidCredentials
	}

	if user.Status != model.UserStatusActive {
		return nil, "", model.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", model.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to update login timestamp: %w", err)
	}

	token, err := s.jwtSvc.GenerateToken(user)
	if err != nil {
		return nil, "", model.ErrTokenGeneration
	}

	return user, token, nil
}

// ValidateToken checks a token against the directory and returns the current
// user record. Rehydration goes through here so a persisted token is never
// trusted without re-validation.
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	user, err := s.userRepo.Get(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if user.Status != model.UserStatusActive {
		return nil, fmt.Errorf("user is not active")
	}

	return user, nil
}
