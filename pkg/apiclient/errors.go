package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNilSession       = errors.New("apiclient: session state is required")
	ErrInvalidBaseURL   = errors.New("apiclient: invalid base URL")
	ErrInvalidRequest   = errors.New("apiclient: invalid request")
	ErrUnsupportedType  = errors.New("apiclient: unsupported query type")
	ErrTransport        = errors.New("apiclient: transport failure")
	ErrTimeout          = errors.New("apiclient: request timeout")
	ErrHTTPStatus       = errors.New("apiclient: unexpected HTTP status")
	ErrUnauthorized     = errors.New("apiclient: unauthorized")
	ErrResponseTooLarge = errors.New("apiclient: response body exceeds size limit")
)

// HTTPError is a response whose transport status is outside 2xx.
type HTTPError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("apiclient: server returned %s", e.Status)
	if e.Status == "" {
		msg = fmt.Sprintf("apiclient: server returned status %d", e.StatusCode)
	}
	if len(e.Body) > 0 {
		body := string(e.Body)
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// Is matches ErrHTTPStatus for every HTTPError and ErrUnauthorized for 401.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrHTTPStatus:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// StatusCode extracts the HTTP status from err, or 0 when err carries none.
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
