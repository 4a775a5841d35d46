package in

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// EndpointSelector picks the endpoints a chain is built from.
type EndpointSelector interface {
	// Select returns exactly count distinct endpoints, either sampled at
	// random or the fastest count by measured throughput.
	Select(ctx context.Context, count int, rankBySpeed bool) ([]domain.EndpointConfig, error)
}

// ThroughputProber scores one endpoint by bringing it up transiently.
type ThroughputProber interface {
	// Measure returns the endpoint throughput in Mbps, or 0 when the probe
	// fails at any step. It never returns an error.
	Measure(ctx context.Context, endpoint domain.EndpointConfig) float64
}
