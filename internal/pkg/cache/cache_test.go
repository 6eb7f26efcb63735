package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_PutGet(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", []byte("v"), time.Minute))

	value, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache()

	_, ok, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Put(ctx, "k", []byte("v"), 5*time.Minute))

	current = current.Add(4 * time.Minute)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry past its TTL reads as absent")

	// The expired entry is gone even if the clock moves back.
	current = current.Add(-3 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_PutRefreshesTTL(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Put(ctx, "k", []byte("v1"), time.Minute))
	current = current.Add(50 * time.Second)
	require.NoError(t, c.Put(ctx, "k", []byte("v2"), time.Minute))

	current = current.Add(30 * time.Second)
	value, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), value)
}

func TestMemoryCache_EvictAndClear(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Put(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, c.Evict(ctx, "a"))
	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "b")
	assert.True(t, ok)

	require.NoError(t, c.Clear(ctx))
	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok)
}
