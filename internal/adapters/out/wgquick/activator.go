// Package wgquick activates WireGuard tunnel definitions with wg-quick.
package wgquick

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/command"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const binary = "wg-quick"

// Default retry settings for deactivation.
const (
	DefaultDeactivateAttempts = 3
	DefaultRetryDelay         = 500 * time.Millisecond
)

// Activator implements out.TunnelActivator.
type Activator struct {
	runner     command.Runner
	attempts   uint
	retryDelay time.Duration
	log        zerolog.Logger
}

// Option configures the Activator.
type Option func(*Activator)

// WithRunner replaces the command runner.
func WithRunner(r command.Runner) Option {
	return func(a *Activator) {
		a.runner = r
	}
}

// WithDeactivateAttempts sets how many times wg-quick down is tried.
func WithDeactivateAttempts(n int) Option {
	return func(a *Activator) {
		if n > 0 {
			a.attempts = uint(n)
		}
	}
}

// WithRetryDelay sets the base delay between deactivation attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(a *Activator) {
		a.retryDelay = d
	}
}

// New creates a wg-quick activator.
func New(log zerolog.Logger, opts ...Option) *Activator {
	a := &Activator{
		runner:     command.NewExecRunner(),
		attempts:   DefaultDeactivateAttempts,
		retryDelay: DefaultRetryDelay,
		log:        log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Activate brings the endpoint's interface up.
func (a *Activator) Activate(ctx context.Context, endpoint domain.EndpointConfig) error {
	a.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "wgquick").
		Str(logger.FieldEndpoint, endpoint.Name).
		Msg("wg-quick up")

	if err := a.runner.Run(ctx, binary, "up", endpoint.Path); err != nil {
		return &domain.ActivationError{Endpoint: endpoint.Name, Op: "up", Err: err}
	}
	return nil
}

// Deactivate brings the endpoint's interface down, retrying transient
// failures.
func (a *Activator) Deactivate(ctx context.Context, endpoint domain.EndpointConfig) error {
	a.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "wgquick").
		Str(logger.FieldEndpoint, endpoint.Name).
		Msg("wg-quick down")

	err := retry.Do(
		func() error {
			return a.runner.Run(ctx, binary, "down", endpoint.Path)
		},
		retry.Context(ctx),
		retry.Attempts(a.attempts),
		retry.Delay(a.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			a.log.Warn().
				Str(logger.FieldLayer, "adapter").
				Str(logger.FieldAdapter, "wgquick").
				Str(logger.FieldEndpoint, endpoint.Name).
				Uint("attempt", attempt+1).
				Err(err).
				Msg("wg-quick down failed, retrying")
		}),
	)
	if err != nil {
		return &domain.ActivationError{Endpoint: endpoint.Name, Op: "down", Err: err}
	}
	return nil
}
