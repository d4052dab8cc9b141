package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Storage maps string keys to Redis strings under a common prefix.
// Values never expire: they mirror durable client state.
type Storage struct {
	db     redis.UniversalClient
	prefix string
	owned  bool
}

// NewStorage wraps client. Close leaves client open.
func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{db: client, prefix: prefix}
}

// NewOwnedStorage wraps client and closes it on Close.
func NewOwnedStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{db: client, prefix: prefix, owned: true}
}

// Get returns the value stored under key. A missing key (redis.Nil) is
// reported as ok=false rather than an error.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key with no expiry.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Del(ctx, s.prefix+key).Err()
}

// Close closes the client only when the Storage owns it (NewOwnedStorage).
func (s *Storage) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// Conn returns the underlying Redis client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}
