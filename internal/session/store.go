// Package session owns the login state of the application. The Store is the
// only writer of the Session record; everything else reads snapshots.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/medicore/hospital-api/internal/model"
	authService "github.com/medicore/hospital-api/internal/service/auth"
	"github.com/medicore/hospital-api/internal/token"
	"github.com/medicore/hospital-api/pkg/logger"
)

// ErrLoginSuperseded is returned to a login attempt whose resolution arrived
// after a newer attempt (or a logout) had already started. The stale result
// is discarded instead of overwriting the session.
var ErrLoginSuperseded = errors.New("login superseded by a newer attempt")

const tokenKey = "session:token"

type Config struct {
	TokenTTL     time.Duration
	LoginTimeout time.Duration
}

// Store transitions the Session record through login-begin, login-success,
// login-failure and logout. Invariant after every transition:
// IsAuthenticated == (User != nil && Token != "").
type Store struct {
	mu         sync.RWMutex
	session    model.Session
	generation uint64

	authenticator authService.Authenticator
	tokens        token.Store
	cfg           Config
	log           *logger.Logger
}

func NewStore(authenticator authService.Authenticator, tokens token.Store, cfg Config, log *logger.Logger) *Store {
	if cfg.LoginTimeout <= 0 {
		cfg.LoginTimeout = 10 * time.Second
	}
	return &Store{
		authenticator: authenticator,
		tokens:        tokens,
		cfg:           cfg,
		log:           log,
	}
}

// Snapshot returns the current session. Never blocks on in-flight logins.
func (s *Store) Snapshot() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Login resolves credentials against the authentication backend. The loading
// flag is raised for the duration of the attempt. Concurrent attempts are
// permitted; each bumps the generation counter and only the newest may commit
// its resolution, so a slow stale response can never overwrite the session
// after a newer one resolved.
func (s *Store) Login(ctx context.Context, creds model.LoginRequest) (*model.LoginResponse, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.session.IsLoading = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.LoginTimeout)
	defer cancel()

	user, tok, err := s.authenticator.Authenticate(ctx, creds.Email, creds.Password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer attempt (or a logout) started while this one was in
		// flight. Its outcome owns the session now.
		return nil, ErrLoginSuperseded
	}

	if err != nil {
		s.session = model.Session{}
		s.log.Warn("login failed", "email", creds.Email)
		return nil, err
	}

	if err := s.tokens.Set(ctx, tokenKey, tok, s.cfg.TokenTTL); err != nil {
		// No partial state: a persistence failure resolves like any other
		// collaborator failure.
		s.session = model.Session{}
		s.log.Error(err, "failed to persist session token")
		return nil, err
	}

	s.session = model.Session{
		User:            user,
		Token:           tok,
		IsAuthenticated: true,
		IsLoading:       false,
	}

	return &model.LoginResponse{User: user, Token: tok}, nil
}

// Logout clears the session and removes the persisted token. Idempotent:
// logging out an empty session is a no-op yielding the same empty state.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.session = model.Session{}
	s.mu.Unlock()

	if err := s.tokens.Remove(ctx, tokenKey); err != nil {
		s.log.Error(err, "failed to remove persisted token")
		return err
	}
	return nil
}

// Rehydrate restores the session from the persisted token at startup. The
// token is re-validated against the authentication backend before it is
// trusted; a stale or revoked token destroys the persisted state and leaves
// the session empty.
func (s *Store) Rehydrate(ctx context.Context) error {
	tok, err := s.tokens.Get(ctx, tokenKey)
	if errors.Is(err, token.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	user, err := s.authenticator.ValidateToken(ctx, tok)
	if err != nil {
		s.log.Warn("persisted token rejected, clearing session")
		if removeErr := s.tokens.Remove(ctx, tokenKey); removeErr != nil {
			s.log.Error(removeErr, "failed to remove rejected token")
		}
		s.mu.Lock()
		s.session = model.Session{}
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.session = model.Session{
		User:            user,
		Token:           tok,
		IsAuthenticated: true,
	}
	s.mu.Unlock()

	return nil
}
