package security_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook-auth/app/security"
)

// fakeClock is a manually-advanced clock for exercising window boundaries.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_FixedWindow(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := security.NewMemoryStore(clock)

	const limit = 5
	window := 15 * time.Minute

	// The first five attempts in a window are allowed.
	for i := 1; i <= limit; i++ {
		allowed, rec, err := store.Increment(ctx, "login:1.2.3.4", limit, window)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i)
		assert.Equal(t, i, rec.Count)
	}

	// The sixth is denied and the count does not move.
	allowed, rec, err := store.Increment(ctx, "login:1.2.3.4", limit, window)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, limit, rec.Count)

	// Denied attempts keep being denied without inflating the counter.
	allowed, rec, err = store.Increment(ctx, "login:1.2.3.4", limit, window)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, limit, rec.Count)
}

func TestMemoryStore_WindowReset(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := security.NewMemoryStore(clock)

	window := time.Minute
	for i := 0; i < 3; i++ {
		allowed, _, err := store.Increment(ctx, "login:a", 3, window)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, _, err := store.Increment(ctx, "login:a", 3, window)
	require.NoError(t, err)
	assert.False(t, allowed)

	// One nanosecond before the boundary the window still holds.
	clock.Advance(window - time.Nanosecond)
	allowed, _, err = store.Increment(ctx, "login:a", 3, window)
	require.NoError(t, err)
	assert.False(t, allowed)

	// At the boundary the counter resets and attempts flow again.
	clock.Advance(time.Nanosecond)
	allowed, rec, err := store.Increment(ctx, "login:a", 3, window)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, rec.Count)
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := security.NewMemoryStore(newFakeClock(time.Now()))

	for i := 0; i < 2; i++ {
		allowed, _, err := store.Increment(ctx, "login:a", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, _, err := store.Increment(ctx, "login:a", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different identity is unaffected.
	allowed, _, err = store.Increment(ctx, "login:b", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// A different action for the same identity is unaffected.
	allowed, _, err = store.Increment(ctx, "refresh:a", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := security.NewMemoryStore(clock)

	_, found, err := store.Get(ctx, "login:a")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = store.Increment(ctx, "login:a", 5, time.Minute)
	require.NoError(t, err)

	rec, found, err := store.Get(ctx, "login:a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, rec.Count)

	// Reads do not mutate.
	rec, _, err = store.Get(ctx, "login:a")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)

	// An elapsed record reads as absent.
	clock.Advance(2 * time.Minute)
	_, found, err = store.Get(ctx, "login:a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := security.NewMemoryStore(clock)

	_, _, err := store.Increment(ctx, "login:old", 5, time.Minute)
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	_, _, err = store.Increment(ctx, "login:fresh", 5, time.Minute)
	require.NoError(t, err)

	clock.Advance(45 * time.Second)
	assert.Equal(t, 1, store.Sweep())

	_, found, err := store.Get(ctx, "login:fresh")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryStore_StartSweeping(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := security.NewMemoryStore(clock)

	_, _, err := store.Increment(ctx, "login:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	_, _, err = store.Increment(ctx, "login:5.6.7.8", 5, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, store.Size())

	stop := store.StartSweeping(time.Millisecond)
	defer stop()

	// Records persist while their windows are live.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, store.Size())

	// Once the windows elapse the sweeper drops them.
	clock.Advance(2 * time.Minute)
	assert.Eventually(t, func() bool {
		return store.Size() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	store := security.NewMemoryStore(nil)

	const goroutines = 50
	var wg sync.WaitGroup
	allowedCount := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _, err := store.Increment(ctx, "login:burst", 10, time.Minute)
			assert.NoError(t, err)
			allowedCount <- allowed
		}()
	}
	wg.Wait()
	close(allowedCount)

	allowed := 0
	for ok := range allowedCount {
		if ok {
			allowed++
		}
	}
	// Exactly the limit passes, no lost updates.
	assert.Equal(t, 10, allowed)
}
