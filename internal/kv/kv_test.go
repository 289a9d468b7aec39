package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, store Store) {
	req := require.New(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	req.NoError(err)
	req.False(ok)

	req.NoError(store.Set(ctx, "languageCode", "es"))
	v, ok, err := store.Get(ctx, "languageCode")
	req.NoError(err)
	req.True(ok)
	req.Equal("es", v)

	req.NoError(store.Set(ctx, "languageCode", "ar"))
	v, _, err = store.Get(ctx, "languageCode")
	req.NoError(err)
	req.Equal("ar", v)

	req.NoError(store.Delete(ctx, "languageCode"))
	_, ok, err = store.Get(ctx, "languageCode")
	req.NoError(err)
	req.False(ok)

	req.NoError(store.Delete(ctx, "never-set"))
	req.NoError(store.Ping(ctx))
}

func Test_Memory_Store(t *testing.T) {
	exercise(t, NewMemory())
}

func Test_Badger_Store(t *testing.T) {
	store, err := NewBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	exercise(t, store)
}

func Test_Badger_Store_Persists_Across_Reopen(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewBadger(dir)
	req.NoError(err)
	req.NoError(store.Set(ctx, "started", "true"))
	req.NoError(store.Close())

	store, err = NewBadger(dir)
	req.NoError(err)
	defer store.Close()
	v, ok, err := store.Get(ctx, "started")
	req.NoError(err)
	req.True(ok)
	req.Equal("true", v)
}

func Test_SQLite_Store(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "data", "kv.db"))
	require.NoError(t, err)
	defer store.Close()
	exercise(t, store)
}

func Test_Postgres_Store(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	store, err := NewPostgres(context.Background(), url)
	require.NoError(t, err)
	defer store.Close()
	exercise(t, store)
}

func Test_Namespaces_Are_Isolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := NewMemory()
	a := NewNamespace(store, "a")
	b := NewNamespace(store, "b")

	req.NoError(a.Set(ctx, "languageCode", "fr"))
	_, ok, err := b.Get(ctx, "languageCode")
	req.NoError(err)
	req.False(ok)

	v, ok, err := store.Get(ctx, "device/a/languageCode")
	req.NoError(err)
	req.True(ok)
	req.Equal("fr", v)
}

func Test_Open_Unknown_Driver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "etcd"})
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func Test_Open_Memory(t *testing.T) {
	store, err := Open(context.Background(), Options{Driver: "memory"})
	require.NoError(t, err)
	exercise(t, store)
}
