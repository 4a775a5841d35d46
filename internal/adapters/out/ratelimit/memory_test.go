package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Allow_WithinBurst(t *testing.T) {
	store := NewMemoryStore(1, 3, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, store.Allow(ctx, "ip:10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"), "request past burst should be limited")
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryStore(1, 1, zerolog.Nop())
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.True(t, store.Allow(ctx, "ip:10.0.0.2"))
}

func TestMemoryStore_Refill(t *testing.T) {
	store := NewMemoryStore(1, 1, zerolog.Nop())
	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "k"))
	assert.False(t, store.Allow(ctx, "k"))

	now = now.Add(time.Second)
	assert.True(t, store.Allow(ctx, "k"))
}

func TestMemoryStore_AllowN(t *testing.T) {
	store := NewMemoryStore(1, 5, zerolog.Nop())
	ctx := context.Background()

	assert.True(t, store.AllowN(ctx, "k", 5))
	assert.False(t, store.AllowN(ctx, "k", 1))
}

func TestMemoryStore_EvictsIdleKeys(t *testing.T) {
	store := NewMemoryStore(1, 1, zerolog.Nop())
	store.maxKeys = 2
	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Allow(ctx, "a")
	store.Allow(ctx, "b")
	assert.Equal(t, 2, store.Len())

	now = now.Add(DefaultIdleTTL + time.Second)
	store.Allow(ctx, "c")
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(1000, 1000, zerolog.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				store.Allow(ctx, fmt.Sprintf("ip:10.0.0.%d", i%4))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
}
