package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/vodclient/pkg/logger"
	"github.com/dmitrymomot/vodclient/pkg/requestid"
	"github.com/dmitrymomot/vodclient/pkg/signature"
)

// DefaultMaxBodySize caps how much of a response body is read into memory.
// Larger bodies fail with ErrResponseTooLarge rather than being truncated.
const DefaultMaxBodySize = 16 << 20

// Client sends requests through the signing and invalidation pipeline.
// It is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	session   Session
	signer    Signer
	log       *slog.Logger
	userAgent string
	maxBody   int64

	beforeSend   []RequestHandler
	afterReceive []ResponseHandler
	onError      []ErrorHandler

	extraBefore  []RequestHandler
	extraAfter   []ResponseHandler
	extraOnError []ErrorHandler
}

// New builds a Client. The session must already exist: construction order,
// not runtime checks, guarantees the pipeline can always reach it.
func New(cfg Config, sess Session, opts ...Option) (*Client, error) {
	if sess == nil {
		return nil, ErrNilSession
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		session:   sess,
		signer:    signature.New(signature.WithAppID(cfg.AppID)),
		log:       slog.Default(),
		userAgent: userAgent,
		maxBody:   DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.Timeout = timeout
	c.log = c.log.With(logger.Component("apiclient"))

	c.beforeSend = append([]RequestHandler{
		RequestIDHandler(),
		TokenHandler(c.session, c.log),
		SignatureHandler(c.signer),
	}, c.extraBefore...)
	c.afterReceive = append([]ResponseHandler{
		InvalidationHandler(c.session, c.log),
	}, c.extraAfter...)
	c.onError = append([]ErrorHandler{
		UnauthorizedHandler(c.session, c.log),
	}, c.extraOnError...)

	return c, nil
}

// Do runs r through the pipeline. Before-send handlers complete before
// transmission, and the after-receive or on-error handlers complete before
// Do returns.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	ctx, _ = requestid.Ensure(ctx)
	start := time.Now()

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	reqAttr := logger.HTTPRequest(req.Method, r.Path)

	for _, h := range c.beforeSend {
		if err := h(ctx, req); err != nil {
			return nil, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(ctx, classify(ctx, err), reqAttr, start)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := ReadBody(resp.Body, c.maxBody)
	if err != nil && !errors.Is(err, ErrResponseTooLarge) {
		return nil, c.fail(ctx, classify(ctx, err), reqAttr, start)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		herr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       body,
		}
		if err != nil {
			// A 401 still invalidates even when its body is oversized.
			return nil, c.fail(ctx, errors.Join(herr, err), reqAttr, start)
		}
		return nil, c.fail(ctx, herr, reqAttr, start)
	}
	if err != nil {
		return nil, c.fail(ctx, err, reqAttr, start)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	for _, h := range c.afterReceive {
		h(ctx, out)
	}

	c.log.DebugContext(ctx, "request completed",
		reqAttr,
		logger.StatusCode(out.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return out, nil
}

func (c *Client) fail(ctx context.Context, err error, reqAttr slog.Attr, start time.Time) error {
	for _, h := range c.onError {
		h(ctx, err)
	}
	c.log.WarnContext(ctx, "request failed",
		reqAttr,
		logger.Error(err),
		slog.Duration("duration", time.Since(start)),
	)
	return err
}

// ReadBody reads r completely, failing with ErrResponseTooLarge once more
// than limit bytes arrive. The bytes read up to limit are returned alongside
// the error. A limit of zero or less disables the cap.
func ReadBody(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return body, err
	}
	if int64(len(body)) > limit {
		return body[:limit], fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, limit)
	}
	return body, nil
}

// classify tags transport errors. HTTP client timeouts and context deadlines
// both count as timeouts.
func classify(ctx context.Context, err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w: %w", ErrTransport, ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// Get sends a GET with query parameters.
func (c *Client) Get(ctx context.Context, path string, query any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends body as JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete sends a DELETE, with body as JSON when non-nil.
func (c *Client) Delete(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Body: body})
}

// Upload sends form as multipart/form-data.
func (c *Client) Upload(ctx context.Context, method, path string, form *Form) (*Response, error) {
	return c.Do(ctx, Request{Method: method, Path: path, Form: form})
}

// Session returns the session state the client reads from.
func (c *Client) Session() Session {
	return c.session
}
