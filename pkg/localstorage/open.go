package localstorage

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/vodclient/pkg/redis"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Driver string `env:"VOD_STORAGE_DRIVER" envDefault:"file"`
	Path   string `env:"VOD_STORAGE_PATH" envDefault:"vodclient.json"`
	Bucket string `env:"VOD_STORAGE_BUCKET" envDefault:"localstorage"`
	Redis  redis.Config
}

var _ Backend = (*redis.Storage)(nil)

// Open returns the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStorage(), nil
	case DriverFile, "":
		return NewFileStorage(cfg.Path)
	case DriverBolt:
		return NewBoltStorageFromFile(cfg.Path, cfg.Bucket, nil)
	case DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return redis.NewOwnedStorage(client, cfg.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
