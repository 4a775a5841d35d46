// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (wg-quick, iproute2, iptables, filesystem, speed measurement).
package out

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// EndpointRepository enumerates tunnel endpoint definitions from storage.
type EndpointRepository interface {
	// List returns every parseable definition in enumeration order.
	// Definitions that fail to parse are omitted from the slice and reported
	// through the returned error (one *domain.ConfigParseError each); callers
	// may keep using the slice when the error is non-nil.
	List(ctx context.Context) ([]domain.EndpointConfig, error)
}
