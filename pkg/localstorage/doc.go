// Package localstorage is the durable key/value store the session state
// writes through to. It plays the role browser localStorage plays for a web
// client: string keys, string values, synchronous writes.
//
// Backends:
//
//   - MemoryStorage: process memory only, for tests and ephemeral clients.
//   - FileStorage: a single JSON object on disk, replaced atomically on every
//     mutation (write to a temp file, then rename).
//   - BoltStorage: one bbolt bucket.
//   - pkg/redis.Storage: a Redis keyspace under a prefix.
//
// Open picks a backend from Config, which can be loaded from the environment
// with pkg/config.
//
// Get reports a missing key with ok == false and a nil error; Delete of a
// missing key is not an error.
package localstorage
