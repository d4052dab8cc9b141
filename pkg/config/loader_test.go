package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient/pkg/config"
)

type clientConfig struct {
	BaseURL string        `env:"CFG_TEST_BASE_URL" envDefault:"http://localhost/app/"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()

		var cfg clientConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost/app/", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_BASE_URL", "https://vod.example.com/app/")
		t.Setenv("CFG_TEST_TIMEOUT", "3s")

		var cfg clientConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://vod.example.com/app/", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_BASE_URL", "https://first.example.com/")

		var first clientConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_BASE_URL", "https://second.example.com/")

		var second clientConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.BaseURL, second.BaseURL)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *clientConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
