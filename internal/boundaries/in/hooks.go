package in

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// HookRunner executes lifecycle hooks.
type HookRunner interface {
	// Run executes the named hook if it is installed and executable.
	// A script exiting non-zero yields a *domain.HookExecutionError.
	Run(ctx context.Context, name domain.HookName) error
}
