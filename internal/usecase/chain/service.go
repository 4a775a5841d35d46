// Package chain implements the chain controller: building, tearing down and
// rotating the multi-hop tunnel chain.
package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/in"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// DefaultCleanupTimeout bounds the forced cleanup Shutdown performs when it
// cannot take the guard.
const DefaultCleanupTimeout = 30 * time.Second

const tracerName = "github.com/vpnchainer/vpn-chainer/internal/usecase/chain"

// Service implements in.ChainService.
//
// guard serializes Build, Teardown, Rotate and Shutdown. It is a one-slot
// channel so waiting for it can honour a context. mu only protects chain and
// closed, so Status never waits on an in-flight operation.
type Service struct {
	selector  in.EndpointSelector
	hooks     in.HookRunner
	activator out.TunnelActivator
	router    out.NetworkRouter
	publisher out.EventPublisher
	tracer    trace.Tracer

	now            func() time.Time
	cleanupTimeout time.Duration

	guard chan struct{}

	mu     sync.RWMutex
	chain  domain.Chain
	closed bool
}

// Option configures the Service.
type Option func(*Service)

// WithEventPublisher publishes chain lifecycle events to p.
func WithEventPublisher(p out.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithTracer replaces the OTel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithCleanupTimeout bounds the forced cleanup on Shutdown.
func WithCleanupTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cleanupTimeout = d
		}
	}
}

// NewService creates a chain controller in the Empty state.
func NewService(
	selector in.EndpointSelector,
	hooks in.HookRunner,
	activator out.TunnelActivator,
	router out.NetworkRouter,
	opts ...Option,
) *Service {
	s := &Service{
		selector:       selector,
		hooks:          hooks,
		activator:      activator,
		router:         router,
		tracer:         otel.Tracer(tracerName),
		now:            time.Now,
		cleanupTimeout: DefaultCleanupTimeout,
		guard:          make(chan struct{}, 1),
		chain:          domain.Chain{State: domain.ChainStateEmpty},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build brings up a chain of req.Hops endpoints. The chain must be empty.
func (s *Service) Build(ctx context.Context, req domain.ChainRequest) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "Build",
		"hops":              req.Hops,
		"fastest":           req.RankBySpeed,
	})

	if req.Hops <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidHopCount, req.Hops)
	}

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	if current := s.snapshot(); current.State != domain.ChainStateEmpty || !current.Empty() {
		return fmt.Errorf("%w (state %s)", domain.ErrChainActive, current.State)
	}

	return s.build(ctx, req, "build")
}

// Teardown removes the current chain. Every step is attempted; failures are
// returned together.
func (s *Service) Teardown(ctx context.Context) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "Teardown",
	})

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return s.teardown(ctx, "teardown")
}

// Rotate tears the chain down and builds a new one with the parameters of
// the last build, holding the guard across both halves. Callers queue on the
// guard until ctx ends.
func (s *Service) Rotate(ctx context.Context) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "Rotate",
	})
	log := logger.FromCtx(ctx)

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	req := s.snapshot().Request
	if req.Hops <= 0 {
		return domain.ErrNoChainRequest
	}

	ctx, span := s.tracer.Start(ctx, "chain.rotate", trace.WithAttributes(
		attribute.Int("chain.hops", req.Hops),
		attribute.Bool("chain.fastest", req.RankBySpeed),
	))
	defer span.End()

	log.Info().Msg("rotating chain")

	var result *multierror.Error
	if err := s.teardown(ctx, "rotate"); err != nil {
		result = multierror.Append(result, fmt.Errorf("teardown: %w", err))
	}
	if err := s.build(ctx, req, "rotate"); err != nil {
		result = multierror.Append(result, fmt.Errorf("build: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rotation failed")
		return err
	}

	s.publish(ctx, domain.EventChainRotated, domain.ChainEventPayload{
		Operation: "rotate",
		Hops:      domain.EndpointNames(s.snapshot().Hops),
		State:     domain.ChainStateActive,
	})
	log.Info().Msg("chain rotated")
	return nil
}

// Shutdown tears the chain down and closes the service. If the guard is not
// free before ctx ends, the recorded hops are cleaned up anyway and the
// returned error wraps domain.ErrGuardTimeout.
func (s *Service) Shutdown(ctx context.Context) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "Shutdown",
	})
	log := logger.FromCtx(ctx)

	if s.isClosed() {
		return nil
	}

	select {
	case s.guard <- struct{}{}:
		s.markClosed()
		defer s.release()
		return s.teardown(ctx, "shutdown")
	case <-ctx.Done():
	}

	s.markClosed()
	log.Warn().Msg("in-flight chain operation did not finish in time, forcing cleanup")

	result := multierror.Append(nil, fmt.Errorf("%w: %w", domain.ErrGuardTimeout, ctx.Err()))

	current := s.snapshot()
	if !current.Empty() {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cleanupTimeout)
		defer cancel()
		if err := s.dismantle(cleanupCtx, current); err != nil {
			result = multierror.Append(result, err)
		}
	}
	s.update(func(c *domain.Chain) {
		*c = domain.Chain{State: domain.ChainStateEmpty, Request: c.Request}
	})

	return result.ErrorOrNil()
}

// Status returns a copy of the chain.
func (s *Service) Status(_ context.Context) domain.Chain {
	return s.snapshot()
}

func (s *Service) build(ctx context.Context, req domain.ChainRequest, op string) error {
	ctx, span := s.tracer.Start(ctx, "chain.build", trace.WithAttributes(
		attribute.String("chain.operation", op),
		attribute.Int("chain.hops", req.Hops),
		attribute.Bool("chain.fastest", req.RankBySpeed),
	))
	defer span.End()

	log := logger.FromCtx(ctx)
	start := s.now()

	s.update(func(c *domain.Chain) {
		*c = domain.Chain{State: domain.ChainStateBuilding, Request: req}
	})

	if err := s.hooks.Run(ctx, domain.HookPreSpinUp); err != nil {
		s.setState(domain.ChainStateEmpty)
		return s.failed(ctx, span, op, start, fmt.Errorf("build aborted: %w", err))
	}

	endpoints, err := s.selector.Select(ctx, req.Hops, req.RankBySpeed)
	if err != nil {
		s.setState(domain.ChainStateEmpty)
		return s.failed(ctx, span, op, start, err)
	}

	log.Info().Strs("endpoints", domain.EndpointNames(endpoints)).Msg("establishing chain")
	for i := range endpoints {
		err := domain.ErrChainClosed
		if !s.isClosed() {
			err = s.addHop(ctx, endpoints, i)
		}
		if err != nil {
			// a forced shutdown already reset the chain to Empty
			if !s.isClosed() {
				s.update(func(c *domain.Chain) {
					c.State = domain.ChainStatePartial
					if c.Empty() {
						c.State = domain.ChainStateEmpty
					}
				})
			}
			return s.failed(ctx, span, op, start, err)
		}
	}

	hookErr := s.hooks.Run(ctx, domain.HookPostSpinUp)

	var closed bool
	s.update(func(c *domain.Chain) {
		if s.closed {
			closed = true
			return
		}
		c.State = domain.ChainStateActive
		c.BuiltAt = s.now()
	})
	if closed {
		// Shutdown dismantled the chain while the post-spin-up hook ran.
		return s.failed(ctx, span, op, start, domain.ErrChainClosed)
	}

	names := make([]string, 0, len(endpoints))
	addrs := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		names = append(names, ep.Name)
		addrs = append(addrs, ep.Address.String())
	}
	log.Info().
		Str("vpn_route", strings.Join(names, " -> ")).
		Str("ip_route", strings.Join(addrs, " -> ")).
		Msg("chain established")

	s.publish(ctx, domain.EventChainBuilt, domain.ChainEventPayload{
		Operation: op,
		Hops:      names,
		State:     domain.ChainStateActive,
		Duration:  s.now().Sub(start),
	})

	if hookErr != nil {
		log.Warn().Err(hookErr).Msg("post-spin-up hook failed, chain stays active")
		span.RecordError(hookErr)
		return fmt.Errorf("chain is active: %w", hookErr)
	}
	return nil
}

// addHop activates endpoints[i], routes it through the previous hop and
// allows forwarding towards the next one. Each change is recorded as soon
// as it is made so a later failure leaves an accurate Partial chain.
func (s *Service) addHop(ctx context.Context, endpoints []domain.EndpointConfig, i int) error {
	ep := endpoints[i]
	log := logger.FromCtx(ctx).With().
		Str(logger.FieldEndpoint, ep.Name).
		Int("hop", i).
		Logger()

	log.Info().Msgf("activating %s at %s", ep.Name, ep.Address)
	if err := s.activator.Activate(ctx, ep); err != nil {
		return err
	}
	var closed bool
	s.update(func(c *domain.Chain) {
		if s.closed {
			closed = true
			return
		}
		c.Hops = append(c.Hops, ep)
		c.Routes = append(c.Routes, domain.RouteKey{})
	})
	if closed {
		// Shutdown dismantled the chain while this hop was coming up.
		log.Warn().Msg("chain closed during activation, bringing hop back down")
		if err := s.activator.Deactivate(context.WithoutCancel(ctx), ep); err != nil {
			return multierror.Append(domain.ErrChainClosed, err)
		}
		return domain.ErrChainClosed
	}

	if i > 0 {
		prev := endpoints[i-1]
		key := domain.RouteKey{
			Destination: ep.Network(),
			Via:         prev.Address.Addr(),
			Device:      prev.Interface,
		}
		if err := s.router.AddRoute(ctx, key); err != nil {
			return err
		}
		s.update(func(c *domain.Chain) {
			// a forced shutdown may have reset the chain meanwhile
			if i < len(c.Routes) {
				c.Routes[i] = key
			}
		})
		log.Debug().Str("route", key.String()).Msg("route installed")
	}

	if i+1 < len(endpoints) {
		rule := domain.ForwardRule{From: ep.Interface, To: endpoints[i+1].Interface}
		if err := s.router.AddForwardRule(ctx, rule); err != nil {
			return err
		}
		s.update(func(c *domain.Chain) {
			c.ForwardRules = append(c.ForwardRules, rule)
		})
	}

	return nil
}

func (s *Service) teardown(ctx context.Context, op string) error {
	log := logger.FromCtx(ctx)

	current := s.snapshot()
	if current.Empty() && current.State == domain.ChainStateEmpty {
		log.Debug().Msg("no chain to tear down")
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "chain.teardown", trace.WithAttributes(
		attribute.String("chain.operation", op),
		attribute.Int("chain.hops", len(current.Hops)),
	))
	defer span.End()

	start := s.now()
	s.setState(domain.ChainStateTearingDown)

	err := s.dismantle(ctx, current)

	s.update(func(c *domain.Chain) {
		*c = domain.Chain{State: domain.ChainStateEmpty, Request: c.Request}
	})

	s.publish(ctx, domain.EventChainTornDown, domain.ChainEventPayload{
		Operation: op,
		Hops:      domain.EndpointNames(current.Hops),
		State:     domain.ChainStateEmpty,
		Duration:  s.now().Sub(start),
		Err:       err,
	})

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "teardown incomplete")
		log.Error().Err(err).Msg("chain torn down with errors")
		return err
	}
	log.Info().Msg("chain torn down")
	return nil
}

// dismantle undoes a recorded chain. Routes go before interfaces because the
// kernel drops a route together with its device. No step stops the ones
// after it.
func (s *Service) dismantle(ctx context.Context, c domain.Chain) error {
	log := logger.FromCtx(ctx)
	var result *multierror.Error

	if err := s.hooks.Run(ctx, domain.HookPreSpinDown); err != nil {
		log.Warn().Err(err).Msg("pre-spin-down hook failed, continuing teardown")
		result = multierror.Append(result, err)
	}

	for _, key := range c.InstalledRoutes() {
		if err := s.router.DeleteRoute(ctx, key); err != nil {
			result = multierror.Append(result, err)
		}
	}

	for _, ep := range c.Hops {
		log.Info().Str(logger.FieldEndpoint, ep.Name).Msgf("deactivating %s", ep.Name)
		if err := s.activator.Deactivate(ctx, ep); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := s.router.FlushForwardRules(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	if err := s.hooks.Run(ctx, domain.HookPostSpinDown); err != nil {
		log.Warn().Err(err).Msg("post-spin-down hook failed")
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (s *Service) failed(ctx context.Context, span trace.Span, op string, start time.Time, err error) error {
	current := s.snapshot()

	span.RecordError(err)
	span.SetStatus(codes.Error, "build failed")

	logger.FromCtx(ctx).Error().
		Err(err).
		Str("state", string(current.State)).
		Strs("active_hops", domain.EndpointNames(current.Hops)).
		Msg("chain build failed")

	s.publish(ctx, domain.EventChainFailed, domain.ChainEventPayload{
		Operation: op,
		Hops:      domain.EndpointNames(current.Hops),
		State:     current.State,
		Duration:  s.now().Sub(start),
		Err:       err,
	})
	return err
}

func (s *Service) publish(ctx context.Context, eventType domain.EventType, payload domain.ChainEventPayload) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		logger.FromCtx(ctx).Debug().Err(err).Str(logger.FieldEvent, string(eventType)).Msg("failed to publish chain event")
	}
}

func (s *Service) acquire(ctx context.Context) error {
	if s.isClosed() {
		return domain.ErrChainClosed
	}

	select {
	case s.guard <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrGuardTimeout, ctx.Err())
	}

	if s.isClosed() {
		s.release()
		return domain.ErrChainClosed
	}
	return nil
}

func (s *Service) release() {
	<-s.guard
}

func (s *Service) snapshot() domain.Chain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chain.Clone()
}

func (s *Service) update(fn func(c *domain.Chain)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.chain)
}

func (s *Service) setState(state domain.ChainState) {
	s.update(func(c *domain.Chain) {
		c.State = state
	})
}

func (s *Service) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Service) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
