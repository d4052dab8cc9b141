package vodapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/vodclient/pkg/apiclient"
	"github.com/dmitrymomot/vodclient/pkg/session"
)

// Doer sends a request through the signing pipeline.
type Doer interface {
	Do(ctx context.Context, r apiclient.Request) (*apiclient.Response, error)
}

// SessionWriter is the session state the login and profile calls update.
type SessionWriter interface {
	SetToken(ctx context.Context, token string)
	SetUserInfo(ctx context.Context, info session.UserInfo)
	SetLoginState(ctx context.Context, loggedIn bool)
}

// Service exposes the backend endpoints.
type Service struct {
	client  Doer
	session SessionWriter
	// external fetches third-party play data outside the pipeline.
	external    *http.Client
	maxPlayData int64
}

// Option configures a Service.
type Option func(*Service)

// WithExternalHTTPClient sets the client used by FetchPlayData.
func WithExternalHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.external = c
		}
	}
}

// WithMaxPlayDataSize caps FetchPlayData bodies. Zero or less removes the cap.
func WithMaxPlayDataSize(n int64) Option {
	return func(s *Service) {
		s.maxPlayData = n
	}
}

// New builds a Service. sess may be nil, in which case Login, Logout and
// UserInfo leave session state alone.
func New(client Doer, sess SessionWriter, opts ...Option) *Service {
	s := &Service{
		client:      client,
		session:     sess,
		external:    &http.Client{Timeout: apiclient.DefaultTimeout},
		maxPlayData: apiclient.DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) call(ctx context.Context, r apiclient.Request) (*Envelope, error) {
	resp, err := s.client.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := resp.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &env, nil
}

func (s *Service) get(ctx context.Context, path string, params Params) (*Envelope, error) {
	return s.call(ctx, apiclient.Request{Method: http.MethodGet, Path: path, Query: params})
}

func (s *Service) send(ctx context.Context, method, path string, body any) (*Envelope, error) {
	return s.call(ctx, apiclient.Request{Method: method, Path: path, Body: body})
}

// UpdateDate formats a day for the update schedule endpoint.
func UpdateDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
