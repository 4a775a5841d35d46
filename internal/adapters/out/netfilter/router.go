// Package netfilter installs inter-hop routes and forwarding rules with the
// ip and iptables tools.
package netfilter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/command"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const forwardChain = "FORWARD"

// Router implements out.NetworkRouter.
type Router struct {
	runner command.Runner
	log    zerolog.Logger
}

// Option configures the Router.
type Option func(*Router)

// WithRunner replaces the command runner.
func WithRunner(r command.Runner) Option {
	return func(rt *Router) {
		rt.runner = r
	}
}

// New creates a Router.
func New(log zerolog.Logger, opts ...Option) *Router {
	r := &Router{
		runner: command.NewExecRunner(),
		log:    log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddRoute installs a route to the key's destination through the previous hop.
func (r *Router) AddRoute(ctx context.Context, key domain.RouteKey) error {
	return r.route(ctx, "add", key)
}

// DeleteRoute removes a route installed by AddRoute.
func (r *Router) DeleteRoute(ctx context.Context, key domain.RouteKey) error {
	return r.route(ctx, "del", key)
}

func (r *Router) route(ctx context.Context, op string, key domain.RouteKey) error {
	r.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "netfilter").
		Str(logger.FieldAction, "route "+op).
		Str("route", key.String()).
		Msg("changing route")

	err := r.runner.Run(ctx, "ip", "route", op,
		key.Destination.String(),
		"via", key.Via.String(),
		"dev", key.Device)
	if err != nil {
		return &domain.RoutingError{Op: "route " + op, Target: key.String(), Err: err}
	}
	return nil
}

// AddForwardRule accepts forwarded traffic from rule.From to rule.To.
func (r *Router) AddForwardRule(ctx context.Context, rule domain.ForwardRule) error {
	r.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "netfilter").
		Str("from", rule.From).
		Str("to", rule.To).
		Msg("adding forward rule")

	err := r.runner.Run(ctx, "iptables", "-A", forwardChain,
		"-i", rule.From,
		"-o", rule.To,
		"-j", "ACCEPT")
	if err != nil {
		return &domain.RoutingError{Op: "forward add", Target: rule.From + " -> " + rule.To, Err: err}
	}
	return nil
}

// FlushForwardRules removes every rule in the FORWARD chain, including rules
// this process did not install.
func (r *Router) FlushForwardRules(ctx context.Context) error {
	r.log.Debug().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "netfilter").
		Msg("flushing forward chain")

	if err := r.runner.Run(ctx, "iptables", "-F", forwardChain); err != nil {
		return &domain.RoutingError{Op: "forward flush", Err: err}
	}
	return nil
}
