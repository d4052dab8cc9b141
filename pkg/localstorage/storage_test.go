package localstorage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient/pkg/localstorage"
)

func backends(t *testing.T) map[string]localstorage.Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := localstorage.NewFileStorage(filepath.Join(dir, "state", "local.json"))
	require.NoError(t, err)

	bolt, err := localstorage.NewBoltStorageFromFile(filepath.Join(dir, "local.db"), "", nil)
	require.NoError(t, err)

	all := map[string]localstorage.Backend{
		"memory": localstorage.NewMemoryStorage(),
		"file":   file,
		"bolt":   bolt,
	}
	t.Cleanup(func() {
		for _, b := range all {
			_ = b.Close()
		}
	})
	return all
}

func TestBackends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(ctx, "token")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "token", "abc123"))
			require.NoError(t, store.Set(ctx, "userInfo", `{"name":"neo"}`))

			v, ok, err := store.Get(ctx, "token")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "abc123", v)

			require.NoError(t, store.Set(ctx, "token", "xyz"))
			v, _, err = store.Get(ctx, "token")
			require.NoError(t, err)
			assert.Equal(t, "xyz", v)

			require.NoError(t, store.Delete(ctx, "token"))
			require.NoError(t, store.Delete(ctx, "token"), "deleting an absent key succeeds")

			_, ok, err = store.Get(ctx, "token")
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err = store.Get(ctx, "userInfo")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"name":"neo"}`, v)

			assert.ErrorIs(t, store.Set(ctx, "", "v"), localstorage.ErrEmptyKey)
		})
	}
}

func TestFileStorage_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.json")

	first, err := localstorage.NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "token", "abc123"))
	require.NoError(t, first.Close())

	_, _, err = first.Get(ctx, "token")
	assert.ErrorIs(t, err, localstorage.ErrClosed)

	second, err := localstorage.NewFileStorage(path)
	require.NoError(t, err)
	v, ok, err := second.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileStorage_Corrupt(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := localstorage.NewFileStorage(path)
	assert.ErrorIs(t, err, localstorage.ErrCorruptFile)
}

func TestFileStorage_NullFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	store, err := localstorage.NewFileStorage(path)
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "token", "abc"))
	v, ok, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestBoltStorage_Reopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.db")

	first, err := localstorage.NewBoltStorageFromFile(path, "session", nil)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "token", "abc123"))
	require.NoError(t, first.Close())

	second, err := localstorage.NewBoltStorageFromFile(path, "session", nil)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name   string
		cfg    localstorage.Config
		expect any
	}{
		{"memory", localstorage.Config{Driver: localstorage.DriverMemory}, &localstorage.MemoryStorage{}},
		{"file", localstorage.Config{Driver: localstorage.DriverFile, Path: filepath.Join(dir, "a.json")}, &localstorage.FileStorage{}},
		{"bolt", localstorage.Config{Driver: localstorage.DriverBolt, Path: filepath.Join(dir, "a.db")}, &localstorage.BoltStorage{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := localstorage.Open(ctx, tt.cfg)
			require.NoError(t, err)
			defer store.Close()
			assert.IsType(t, tt.expect, store)
		})
	}

	t.Run("unknown driver", func(t *testing.T) {
		_, err := localstorage.Open(ctx, localstorage.Config{Driver: "sqlite"})
		assert.ErrorIs(t, err, localstorage.ErrUnknownDriver)
	})
}
