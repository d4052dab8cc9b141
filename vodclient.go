package vodclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/vodclient/pkg/apiclient"
	"github.com/dmitrymomot/vodclient/pkg/config"
	"github.com/dmitrymomot/vodclient/pkg/localstorage"
	"github.com/dmitrymomot/vodclient/pkg/logger"
	"github.com/dmitrymomot/vodclient/pkg/requestid"
	"github.com/dmitrymomot/vodclient/pkg/session"
	"github.com/dmitrymomot/vodclient/pkg/vodapi"
)

// Client bundles the wired layers. The fields are ready to use; Close
// releases the storage backend.
type Client struct {
	API     *vodapi.Service
	HTTP    *apiclient.Client
	Session *session.Store

	storage localstorage.Backend
	log     *slog.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	log     *slog.Logger
	storage localstorage.Backend
	apiOpts []apiclient.Option
	vodOpts []vodapi.Option
}

// WithLogger overrides the logger built from Config.Env.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithStorage uses b instead of opening Config.Storage. Close still closes b.
func WithStorage(b localstorage.Backend) Option {
	return func(o *options) {
		o.storage = b
	}
}

// WithClientOptions passes options through to apiclient.New.
func WithClientOptions(opts ...apiclient.Option) Option {
	return func(o *options) {
		o.apiOpts = append(o.apiOpts, opts...)
	}
}

// WithServiceOptions passes options through to vodapi.New.
func WithServiceOptions(opts ...vodapi.Option) Option {
	return func(o *options) {
		o.vodOpts = append(o.vodOpts, opts...)
	}
}

// FromEnv loads Config from the environment (and a .env file when present)
// and calls New.
func FromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}
	return New(ctx, cfg, opts...)
}

// New opens storage, rehydrates the session and builds the pipeline on top.
// Construction order guarantees the pipeline never sees a missing session.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.New(
			logger.WithEnvironment(cfg.Env, cfg.ServiceName),
			logger.WithContextExtractors(requestid.LoggerExtractor()),
		)
	}

	backend := o.storage
	if backend == nil {
		b, err := localstorage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpenStorage, err)
		}
		backend = b
	}

	sess, err := session.New(ctx, backend, session.WithLogger(o.log))
	if err != nil {
		return nil, errors.Join(err, backend.Close())
	}

	apiOpts := append([]apiclient.Option{apiclient.WithLogger(o.log)}, o.apiOpts...)
	httpClient, err := apiclient.New(cfg.API, sess, apiOpts...)
	if err != nil {
		return nil, errors.Join(err, backend.Close())
	}

	o.log.DebugContext(ctx, "client ready",
		slog.String("base_url", cfg.API.BaseURL),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("logged_in", sess.IsLogin()),
	)

	return &Client{
		API:     vodapi.New(httpClient, sess, o.vodOpts...),
		HTTP:    httpClient,
		Session: sess,
		storage: backend,
		log:     o.log,
	}, nil
}

// Close releases the storage backend.
func (c *Client) Close() error {
	if c == nil || c.storage == nil {
		return nil
	}
	return c.storage.Close()
}
