// Package config loads client configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// optional .env file in the working directory is read once per process, then
// the environment is parsed into any struct using `env` and `envDefault` tags.
// Each configuration type is parsed at most once and cached, so packages can
// call Load from independent init paths without re-reading the environment.
//
// # Usage
//
//	var cfg apiclient.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	client, err := apiclient.New(cfg, store)
//
// Reset drops the cache. It exists for tests that mutate the environment
// between cases.
package config
