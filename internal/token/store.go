// Package token persists session tokens across process restarts. The session
// store writes a token on login, removes it on logout, and reads it back once
// at startup for rehydration.
package token

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no token is stored under the key.
var ErrNotFound = errors.New("token not found")

// Store is the durable storage contract for session tokens.
type Store interface {
	Set(ctx context.Context, key, token string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}
