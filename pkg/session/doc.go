// Package session holds the client's login state: the session token, the
// cached user profile, the play history and the "show login prompt" flag the
// UI watches.
//
// A Store is built once, before the API client, from a localstorage.Storage.
// New rehydrates the token and profile from storage; every mutator that
// touches them writes through synchronously before returning, so storage
// always matches memory:
//
//	token       -> raw token string
//	userInfo    -> JSON object
//	historyList -> JSON array
//
// IsLogin is derived from the token and never stored. ShowLoginPrompt is an
// in-memory instruction to the UI and is not persisted.
//
// Storage failures are logged and swallowed; the in-memory state is always
// updated. Observers registered with Subscribe receive a State snapshot after
// every mutation.
//
// Invalidate is the compound transition the request pipeline triggers when
// the backend rejects the session: the token is cleared, the profile reset to
// an empty object and the login prompt raised. Repeating it is harmless.
package session
