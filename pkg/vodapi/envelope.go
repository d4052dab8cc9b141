package vodapi

import (
	"encoding/json"

	"github.com/dmitrymomot/vodclient/pkg/apiclient"
)

// CodeOK is the application code of a successful reply.
const CodeOK = 200

// Params are query parameters, encoded in sorted key order.
type Params = map[string]any

// Envelope is the backend's standard reply wrapper.
type Envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// OK reports whether the backend answered with CodeOK.
func (e *Envelope) OK() bool { return e.Code == CodeOK }

// SessionExpired reports whether the backend rejected the session token.
// The client has already invalidated the session by the time this is seen.
func (e *Envelope) SessionExpired() bool { return e.Code == apiclient.CodeSessionExpired }

// Err returns nil for a successful envelope and an *ApplicationError otherwise.
func (e *Envelope) Err() error {
	if e.OK() {
		return nil
	}
	return &ApplicationError{Code: e.Code, Msg: e.Msg}
}

// Into decodes Data into v. Missing or null data leaves v untouched.
func (e *Envelope) Into(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}
