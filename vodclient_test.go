package vodclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient"
	"github.com/dmitrymomot/vodclient/pkg/apiclient"
	"github.com/dmitrymomot/vodclient/pkg/config"
	"github.com/dmitrymomot/vodclient/pkg/localstorage"
	"github.com/dmitrymomot/vodclient/pkg/logger"
	"github.com/dmitrymomot/vodclient/pkg/session"
)

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/app/users/login":
			w.Write([]byte(`{"code":200,"data":{"token":"abc123"}}`))
		case "/app/history":
			if r.Header.Get(apiclient.HeaderToken) == "abc123" {
				w.Write([]byte(`{"code":50014,"msg":"expired"}`))
				return
			}
			w.Write([]byte(`{"code":200,"data":[]}`))
		default:
			w.Write([]byte(`{"code":200,"data":null}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	srv := backend(t)

	cfg := vodclient.Config{
		API: apiclient.Config{BaseURL: srv.URL + "/app/"},
		Storage: localstorage.Config{
			Driver: localstorage.DriverBolt,
			Path:   filepath.Join(t.TempDir(), "state.db"),
			Bucket: localstorage.DefaultBucket,
		},
	}

	c, err := vodclient.New(ctx, cfg, vodclient.WithLogger(logger.Discard()))
	require.NoError(t, err)
	_, err = c.API.Login(ctx, map[string]string{"username": "neo"})
	require.NoError(t, err)
	require.True(t, c.Session.IsLogin())
	require.NoError(t, c.Close())

	c, err = vodclient.New(ctx, cfg, vodclient.WithLogger(logger.Discard()))
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "abc123", c.Session.Token())

	env, err := c.API.History(ctx, nil)
	require.NoError(t, err)
	assert.True(t, env.SessionExpired())
	assert.False(t, c.Session.IsLogin())
	assert.True(t, c.Session.ShowLoginPrompt())
}

func TestNew_WithStorage(t *testing.T) {
	ctx := context.Background()
	srv := backend(t)

	mem := localstorage.NewMemoryStorage()
	require.NoError(t, mem.Set(ctx, session.KeyToken, "abc123"))

	c, err := vodclient.New(ctx,
		vodclient.Config{API: apiclient.Config{BaseURL: srv.URL + "/app/"}},
		vodclient.WithStorage(mem),
		vodclient.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.Session.IsLogin())
	_, err = c.API.History(ctx, nil)
	require.NoError(t, err)
	_, ok, err := mem.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok, "expired token is removed from storage")
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := vodclient.New(ctx, vodclient.Config{
		API:     apiclient.Config{BaseURL: "https://vod.example.com"},
		Storage: localstorage.Config{Driver: "sqlite"},
	}, vodclient.WithLogger(logger.Discard()))
	assert.ErrorIs(t, err, vodclient.ErrOpenStorage)
	assert.ErrorIs(t, err, localstorage.ErrUnknownDriver)

	_, err = vodclient.New(ctx, vodclient.Config{
		API:     apiclient.Config{BaseURL: "ftp://vod.example.com"},
		Storage: localstorage.Config{Driver: localstorage.DriverMemory},
	}, vodclient.WithLogger(logger.Discard()))
	assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
}

func TestFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	srv := backend(t)
	t.Setenv("VOD_API_BASE_URL", srv.URL+"/app/")
	t.Setenv("VOD_STORAGE_DRIVER", "memory")
	t.Setenv("VOD_ENV", "production")

	c, err := vodclient.FromEnv(context.Background(), vodclient.WithLogger(logger.Discard()))
	require.NoError(t, err)
	defer c.Close()

	env, err := c.API.Channels(context.Background())
	require.NoError(t, err)
	assert.True(t, env.OK())
}

func TestFromEnv_MissingBaseURL(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("VOD_API_BASE_URL", "")
	require.NoError(t, os.Unsetenv("VOD_API_BASE_URL"))

	_, err := vodclient.FromEnv(context.Background())
	assert.ErrorIs(t, err, vodclient.ErrLoadConfig)
}
