package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/vodclient/pkg/logger"
	"github.com/dmitrymomot/vodclient/pkg/requestid"
	"github.com/dmitrymomot/vodclient/pkg/signature"
)

// HeaderToken carries the session token.
const HeaderToken = "x-token"

// Session is the part of the session state the pipeline reads and mutates.
// It is consulted live on every request; the pipeline keeps no copy.
type Session interface {
	Token() string
	Invalidate(ctx context.Context)
}

// Signer produces request signatures.
type Signer interface {
	Generate() signature.Signature
}

// RequestHandler runs before transmission and may modify the request.
// A non-nil error aborts the call.
type RequestHandler func(ctx context.Context, req *http.Request) error

// ResponseHandler observes every 2xx response.
type ResponseHandler func(ctx context.Context, resp *Response)

// ErrorHandler observes every failed call. It cannot replace the error.
type ErrorHandler func(ctx context.Context, err error)

// RequestIDHandler sends the context's request id.
func RequestIDHandler() RequestHandler {
	return func(ctx context.Context, req *http.Request) error {
		if id := requestid.FromContext(ctx); id != "" {
			req.Header.Set(requestid.Header, id)
		}
		return nil
	}
}

// TokenHandler attaches the current session token when there is one. An
// unavailable session is logged and the request continues without a token.
func TokenHandler(sess Session, log *slog.Logger) RequestHandler {
	log = orDefault(log)
	return func(ctx context.Context, req *http.Request) error {
		var token string
		err := guard(func() {
			if sess == nil {
				panic("session not initialized")
			}
			token = sess.Token()
		})
		if err != nil {
			log.WarnContext(ctx, "session unavailable, sending request without token", logger.Error(err))
			return nil
		}
		if token != "" {
			req.Header.Set(HeaderToken, token)
		}
		return nil
	}
}

// SignatureHandler attaches a freshly generated signature and its timestamp.
func SignatureHandler(signer Signer) RequestHandler {
	if signer == nil {
		signer = signature.New()
	}
	return func(_ context.Context, req *http.Request) error {
		for k, v := range signer.Generate().Headers() {
			req.Header.Set(k, v)
		}
		return nil
	}
}

// InvalidationHandler invalidates the session when a 2xx body carries
// CodeSessionExpired. The response itself is left untouched.
func InvalidationHandler(sess Session, log *slog.Logger) ResponseHandler {
	log = orDefault(log)
	return func(ctx context.Context, resp *Response) {
		if code, ok := resp.Code(); ok && code == CodeSessionExpired {
			log.InfoContext(ctx, "session expired, invalidating", logger.StatusCode(code))
			invalidate(ctx, sess, log)
		}
	}
}

// UnauthorizedHandler invalidates the session when the transport status is 401.
func UnauthorizedHandler(sess Session, log *slog.Logger) ErrorHandler {
	log = orDefault(log)
	return func(ctx context.Context, err error) {
		if IsUnauthorized(err) {
			log.InfoContext(ctx, "request unauthorized, invalidating session", logger.StatusCode(http.StatusUnauthorized))
			invalidate(ctx, sess, log)
		}
	}
}

func invalidate(ctx context.Context, sess Session, log *slog.Logger) {
	err := guard(func() {
		if sess == nil {
			panic("session not initialized")
		}
		sess.Invalidate(ctx)
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to invalidate session", logger.Error(err))
	}
}

// guard converts a panic in fn into an error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session: %v", r)
		}
	}()
	fn()
	return nil
}

func orDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
