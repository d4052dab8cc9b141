// Package vodclient wires the video-on-demand client together: durable
// storage, the session store, the signing request pipeline and the typed
// endpoint wrappers.
//
// The usual entry point loads everything from the environment:
//
//	c, err := vodclient.FromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	env, err := c.API.Channels(ctx)
//
// Each layer lives in its own package under pkg/ and can be used alone:
//
//   - pkg/localstorage: string key/value backends (memory, JSON file, bbolt, redis)
//   - pkg/session: token, login flag, profile and login prompt state
//   - pkg/signature: request signatures
//   - pkg/apiclient: the request pipeline
//   - pkg/vodapi: backend endpoints
//   - pkg/imageurl: cover image rewriting
//
// Environment variables:
//
//	VOD_ENV              development or production (default development)
//	VOD_SERVICE_NAME     service attribute on log records (default vodclient)
//	VOD_API_BASE_URL     backend base URL (required)
//	VOD_API_TIMEOUT      per-request timeout (default 10s)
//	VOD_API_APP_ID       signing application id (default jocy)
//	VOD_API_USER_AGENT   User-Agent header (default vodclient/1.0)
//	VOD_STORAGE_DRIVER   memory, file, bolt or redis (default file)
//	VOD_STORAGE_PATH     file or bbolt path (default vodclient.json)
//	VOD_STORAGE_BUCKET   bbolt bucket (default localstorage)
//	REDIS_URL            redis connection URL, for the redis driver
package vodclient
