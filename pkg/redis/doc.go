// Package redis connects to Redis with retries and exposes a key/value
// Storage that satisfies localstorage.Storage, so several client processes
// can share one persisted session.
//
// Config is populated from the environment (REDIS_URL, REDIS_RETRY_ATTEMPTS,
// REDIS_RETRY_INTERVAL, REDIS_CONNECT_TIMEOUT, REDIS_KEY_PREFIX).
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redis.NewStorage(client, cfg.KeyPrefix)
package redis
