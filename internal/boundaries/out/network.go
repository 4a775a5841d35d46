package out

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// NetworkRouter changes the host routing table and forwarding rules.
// Failures are reported as *domain.RoutingError.
type NetworkRouter interface {
	AddRoute(ctx context.Context, route domain.RouteKey) error
	DeleteRoute(ctx context.Context, route domain.RouteKey) error
	AddForwardRule(ctx context.Context, rule domain.ForwardRule) error
	// FlushForwardRules clears every rule of the FORWARD chain, not only the
	// rules this process installed.
	FlushForwardRules(ctx context.Context) error
}
