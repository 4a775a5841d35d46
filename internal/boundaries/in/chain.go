// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the chain orchestration use cases.
package in

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// ChainService defines the contract for chain orchestration.
// Every mutating call is serialized by a single rotation guard.
type ChainService interface {
	// Build brings up a chain of req.Hops endpoints.
	Build(ctx context.Context, req domain.ChainRequest) error

	// Teardown removes the active chain. It is best-effort and reports
	// every failed step.
	Teardown(ctx context.Context) error

	// Rotate tears the chain down and rebuilds it with the last request,
	// holding the guard across both halves.
	Rotate(ctx context.Context) error

	// Shutdown tears the chain down for process exit and rejects further
	// operations. When the guard cannot be acquired before ctx ends, it
	// still performs a best-effort cleanup of the recorded hops.
	Shutdown(ctx context.Context) error

	// Status returns a snapshot of the chain.
	Status(ctx context.Context) domain.Chain
}
