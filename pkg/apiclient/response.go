package apiclient

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
)

// CodeSessionExpired is the application code the backend embeds in a 2xx
// body when the session token is no longer valid.
const CodeSessionExpired = 50014

// Response is a 2xx reply with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	codeOnce sync.Once
	code     int
	hasCode  bool
}

// Code returns the integer "code" field of a JSON object body. ok is false
// when the body is not a JSON object or the field is absent or not an integer.
func (r *Response) Code() (code int, ok bool) {
	r.codeOnce.Do(func() {
		var envelope struct {
			Code json.RawMessage `json:"code"`
		}
		if err := json.Unmarshal(r.Body, &envelope); err != nil {
			return
		}
		// Only JSON numbers count; "50014" as a string is not the sentinel.
		raw := string(bytes.TrimSpace(envelope.Code))
		if raw == "" || raw[0] == '"' || raw == "null" {
			return
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f != math.Trunc(f) {
			return
		}
		r.code, r.hasCode = int(f), true
	})
	return r.code, r.hasCode
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
