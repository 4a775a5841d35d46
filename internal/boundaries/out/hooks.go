package out

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// HookScript is an executable lifecycle script resolved by a HookStore.
type HookScript interface {
	Path() string
	// Run executes the script with no arguments and waits for it to exit.
	Run(ctx context.Context) error
}

// HookStore resolves hook names to scripts.
type HookStore interface {
	// Lookup returns the script for name, or ok=false when no script is
	// present or the script is not marked executable.
	Lookup(name domain.HookName) (script HookScript, ok bool, err error)

	// InstallSamples writes non-executable sample scripts for missing hooks.
	InstallSamples() error
}
