package security_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook-auth/app/security"
)

func newRedisStore(t *testing.T) (*security.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return security.NewRedisStore(client), mr
}

func TestRedisStore_FixedWindow(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	const limit = 5
	window := 15 * time.Minute

	for i := 1; i <= limit; i++ {
		allowed, rec, err := store.Increment(ctx, "login:1.2.3.4", limit, window)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i)
		assert.Equal(t, i, rec.Count)
	}

	allowed, rec, err := store.Increment(ctx, "login:1.2.3.4", limit, window)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, limit, rec.Count)
}

func TestRedisStore_WindowExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	window := time.Minute
	for i := 0; i < 2; i++ {
		allowed, _, err := store.Increment(ctx, "login:a", 2, window)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, _, err := store.Increment(ctx, "login:a", 2, window)
	require.NoError(t, err)
	assert.False(t, allowed)

	// The key carries the window as TTL; once it lapses, counting restarts.
	mr.FastForward(window)
	allowed, rec, err := store.Increment(ctx, "login:a", 2, window)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, rec.Count)
}

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	_, found, err := store.Get(ctx, "login:missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = store.Increment(ctx, "login:a", 5, time.Minute)
	require.NoError(t, err)
	_, _, err = store.Increment(ctx, "login:a", 5, time.Minute)
	require.NoError(t, err)

	rec, found, err := store.Get(ctx, "login:a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, rec.Count)
	assert.WithinDuration(t, time.Now().Add(time.Minute), rec.WindowResetAt, 5*time.Second)
}

func TestRedisStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	allowed, _, err := store.Increment(ctx, "login:a", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, _, err = store.Increment(ctx, "login:a", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, err = store.Increment(ctx, "login:b", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
