// Package selector implements endpoint selection for a chain.
package selector

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/in"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// Service implements in.EndpointSelector.
type Service struct {
	repo   out.EndpointRepository
	prober in.ThroughputProber

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures the Service.
type Option func(*Service)

// WithRand sets the random source used for uniform selection. Tests pass a
// seeded source for reproducible picks.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// NewService creates a selector.
func NewService(repo out.EndpointRepository, prober in.ThroughputProber, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		prober: prober,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Select returns count distinct endpoints. Definitions that fail to parse
// are logged and skipped; they do not count as available.
func (s *Service) Select(ctx context.Context, count int, rankBySpeed bool) ([]domain.EndpointConfig, error) {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "Select",
		logger.FieldCount:   count,
		"fastest":           rankBySpeed,
	})
	log := logger.FromCtx(ctx)

	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidHopCount, count)
	}

	endpoints, err := s.repo.List(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigParse) {
			return nil, fmt.Errorf("failed to list tunnel definitions: %w", err)
		}
		log.Warn().Err(err).Int("usable", len(endpoints)).Msg("skipping invalid tunnel definitions")
	}

	if count > len(endpoints) {
		return nil, &domain.InsufficientConfigsError{Requested: count, Available: len(endpoints)}
	}

	if !rankBySpeed {
		selected := s.sample(endpoints, count)
		log.Debug().Strs("selected", domain.EndpointNames(selected)).Msg("endpoints sampled")
		return selected, nil
	}

	log.Info().Int("candidates", len(endpoints)).Msg("measuring throughput of every endpoint")
	ranked, err := s.rank(ctx, endpoints)
	if err != nil {
		return nil, err
	}

	selected := make([]domain.EndpointConfig, 0, count)
	for _, r := range ranked[:count] {
		selected = append(selected, r.Endpoint)
	}
	log.Info().Strs("selected", domain.EndpointNames(selected)).Msgf("top %d fastest endpoints selected", count)
	return selected, nil
}

// sample picks count endpoints uniformly at random without replacement.
// The result is in pick order.
func (s *Service) sample(endpoints []domain.EndpointConfig, count int) []domain.EndpointConfig {
	s.mu.Lock()
	perm := s.rng.Perm(len(endpoints))
	s.mu.Unlock()

	selected := make([]domain.EndpointConfig, 0, count)
	for _, idx := range perm[:count] {
		selected = append(selected, endpoints[idx])
	}
	return selected
}

// rank probes every endpoint one after another and orders them by
// descending throughput. Ties keep enumeration order.
func (s *Service) rank(ctx context.Context, endpoints []domain.EndpointConfig) ([]domain.RankedEndpoint, error) {
	ranked := make([]domain.RankedEndpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("throughput ranking interrupted: %w", err)
		}
		ranked = append(ranked, domain.RankedEndpoint{
			Endpoint: ep,
			Mbps:     s.prober.Measure(ctx, ep),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mbps > ranked[j].Mbps
	})
	return ranked, nil
}
