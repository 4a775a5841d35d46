package out

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// TunnelActivator brings tunnel endpoints up and down on the host.
// Failures are reported as *domain.ActivationError.
type TunnelActivator interface {
	Activate(ctx context.Context, endpoint domain.EndpointConfig) error
	Deactivate(ctx context.Context, endpoint domain.EndpointConfig) error
}
