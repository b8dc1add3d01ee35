package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "upload:1", "a", time.Minute))

	val, ok, err := store.Get(ctx, "upload:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", val)

	require.NoError(t, store.Delete(ctx, "upload:1"))
	_, ok, err = store.Get(ctx, "upload:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "short", "x", time.Millisecond))
	require.NoError(t, store.Set(ctx, "forever", "y", 0))
	time.Sleep(5 * time.Millisecond)

	_, ok, _ := store.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "forever")
	assert.True(t, ok)

	store.sweep(time.Now())
	store.mu.RLock()
	_, present := store.items["short"]
	store.mu.RUnlock()
	assert.False(t, present)
}

func TestMemoryStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "meeting:b", "2", 0))
	require.NoError(t, store.Set(ctx, "meeting:a", "1", 0))
	require.NoError(t, store.Set(ctx, "upload:x", "3", 0))
	require.NoError(t, store.Set(ctx, "meeting:old", "4", time.Nanosecond))
	time.Sleep(time.Millisecond)

	keys, err := store.Keys(ctx, "meeting:")
	require.NoError(t, err)
	assert.Equal(t, []string{"meeting:a", "meeting:b"}, keys)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
