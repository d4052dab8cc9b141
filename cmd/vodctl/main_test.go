package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient/pkg/config"
)

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/app/users/login":
			w.Write([]byte(`{"code":200,"data":{"token":"abc123"}}`))
		case "/app/video/search":
			w.Write([]byte(`{"code":200,"data":[{"wd":"` + r.URL.Query().Get("wd") + `"}]}`))
		default:
			w.Write([]byte(`{"code":404,"msg":"not found"}`))
		}
	}))
	defer srv.Close()

	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("VOD_STORAGE_DRIVER", "file")
	t.Setenv("VOD_STORAGE_PATH", filepath.Join(t.TempDir(), "state.json"))
	t.Setenv("VOD_ENV", "production")
	t.Setenv("VOD_API_BASE_URL", srv.URL+"/app/")
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"search", "naruto"}, &out))
	assert.Contains(t, out.String(), `"naruto"`)

	out.Reset()
	require.NoError(t, run(ctx, []string{"login", "neo", "secret"}, &out))

	out.Reset()
	require.NoError(t, run(ctx, []string{"status"}, &out))
	assert.Contains(t, out.String(), `"Token": "abc123"`)

	out.Reset()
	err := run(ctx, []string{"channels"}, &out)
	assert.ErrorContains(t, err, "not found")

	assert.ErrorIs(t, run(ctx, []string{"bogus"}, &out), errUsage)
	assert.ErrorIs(t, run(ctx, nil, &out), errUsage)
}
