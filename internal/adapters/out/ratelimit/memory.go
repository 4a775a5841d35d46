// Package ratelimit limits rotation requests per client.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

// Limits on how many keys are tracked before idle ones are evicted.
const (
	DefaultMaxKeys = 1024
	DefaultIdleTTL = 10 * time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore is an in-memory token bucket per key, backed by
// golang.org/x/time/rate.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	rps     float64
	burst   int
	maxKeys int
	idleTTL time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewMemoryStore creates a store granting rps requests per second with the
// given burst to every key.
func NewMemoryStore(rps float64, burst int, log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		rps:     rps,
		burst:   burst,
		maxKeys: DefaultMaxKeys,
		idleTTL: DefaultIdleTTL,
		now:     time.Now,
		log:     log,
	}
}

// Allow reports whether one request for key may proceed.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key may proceed.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.now()
	allowed := s.limiter(key, now).AllowN(now, n)
	if !allowed {
		s.log.Debug().
			Str(logger.FieldLayer, "adapter").
			Str(logger.FieldAdapter, "ratelimit").
			Str("key", key).
			Msg("request rate limited")
	}
	return allowed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) limiter(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.lastSeen = now
		return e.limiter
	}

	if len(s.entries) >= s.maxKeys {
		s.evictIdle(now)
	}

	e := &entry{
		limiter:  rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastSeen: now,
	}
	s.entries[key] = e
	return e.limiter
}

// evictIdle drops keys not seen within idleTTL. Caller holds mu.
func (s *MemoryStore) evictIdle(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) > s.idleTTL {
			delete(s.entries, key)
		}
	}
}
