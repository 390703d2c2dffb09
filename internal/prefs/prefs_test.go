package prefs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/testutil"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one fresh store per implementation.
func backends(t *testing.T) map[string]prefs.Store {
	t.Helper()

	sqlite, err := prefs.NewSQLiteStore(context.Background(), testutil.NewStore(t))
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]prefs.Store{
		"memory": prefs.NewMemoryStore(),
		"sqlite": sqlite,
		"redis":  prefs.NewRedisStore(client),
	}
}

func TestStore_GetSet(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "theme:variant")
			assert.True(t, errors.Is(err, prefs.ErrNotFound), "missing key: got %v", err)

			require.NoError(t, s.Set(ctx, "theme:variant", "dark"))
			v, err := s.Get(ctx, "theme:variant")
			require.NoError(t, err)
			assert.Equal(t, "dark", v)

			require.NoError(t, s.Set(ctx, "theme:variant", "light"))
			v, err = s.Get(ctx, "theme:variant")
			require.NoError(t, err)
			assert.Equal(t, "light", v, "Set overwrites")

			require.NoError(t, s.Set(ctx, "theme:empty", ""))
			v, err = s.Get(ctx, "theme:empty")
			require.NoError(t, err, "empty values are stored, not treated as missing")
			assert.Equal(t, "", v)
		})
	}
}

func TestStore_DeleteAndList(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, kv := range [][2]string{
				{"a:radius", "1rem"},
				{"a:variant", "dark"},
				{"b:variant", "light"},
			} {
				require.NoError(t, s.Set(ctx, kv[0], kv[1]))
			}

			got, err := s.List(ctx, "a:")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "a:radius", got[0].Key)
			assert.Equal(t, "a:variant", got[1].Key)
			assert.False(t, got[0].UpdatedAt.IsZero(), "UpdatedAt is recorded")

			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)

			require.NoError(t, s.Delete(ctx, "a:radius", "a:missing"))
			require.NoError(t, s.Delete(ctx))
			got, err = s.List(ctx, "a:")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "a:variant", got[0].Key)
		})
	}
}

func TestNamespace(t *testing.T) {
	inner := prefs.NewMemoryStore()
	alice := prefs.Namespace(inner, "appearance:alice:")
	bob := prefs.Namespace(inner, "appearance:bob:")
	ctx := context.Background()

	require.NoError(t, alice.Set(ctx, "variant", "dark"))
	require.NoError(t, bob.Set(ctx, "variant", "light"))

	v, err := inner.Get(ctx, "appearance:alice:variant")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	list, err := alice.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "variant", list[0].Key, "prefix is stripped")

	require.NoError(t, alice.Delete(ctx, "variant"))
	_, err = alice.Get(ctx, "variant")
	assert.ErrorIs(t, err, prefs.ErrNotFound)
	v, err = bob.Get(ctx, "variant")
	require.NoError(t, err)
	assert.Equal(t, "light", v, "other namespaces are untouched")
}

func TestRedisStore_KeyPrefixAndPing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := prefs.NewRedisStore(client, prefs.WithKeyPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Set(ctx, "variant", "dark"))
	assert.True(t, mr.Exists("test:variant"))
	assert.Equal(t, "dark", mr.HGet("test:variant", "value"))

	mr.Close()
	assert.Error(t, s.Ping(ctx))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	db := testutil.NewStore(t)
	ctx := context.Background()

	first, err := prefs.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "variant", "dark"))

	// Migrations are idempotent.
	second, err := prefs.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	v, err := second.Get(ctx, "variant")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}
