package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[reflect.Type]any)
	dotenv sync.Once
)

// Load parses the environment into v. The first successful parse of a given
// type is cached and copied into every later call for the same type.
//
// A .env file in the working directory is read once, before the first parse.
// Variables already present in the environment win over the file.
//
// Returns ErrNilPointer for a nil v and ErrParsingConfig joined with the
// parser's error when a required variable is missing or a value is malformed.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenv.Do(func() {
		// A missing .env file is the normal case outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded[key] = parsed
	*v = parsed

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset forgets every cached configuration. It exists for tests that load
// the same type under different environments.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(loaded)
}
