package localstorage

import "context"

// Storage is a string key/value store.
type Storage interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Removing an absent key succeeds.
	Delete(ctx context.Context, key string) error
}

// Backend is a Storage that holds resources until closed.
type Backend interface {
	Storage
	Close() error
}
