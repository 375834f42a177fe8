package token

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type memoryStore struct {
	c *cache.Cache
}

// NewMemoryStore returns an in-process token store. Used in tests and
// single-node runs without Redis; tokens do not survive a restart.
func NewMemoryStore() Store {
	return &memoryStore{c: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (s *memoryStore) Set(_ context.Context, key, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	s.c.Set(key, token, ttl)
	return nil
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	return v.(string), nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
