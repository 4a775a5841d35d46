package command

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-multierror"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// RequiredBinaries are the host tools the chain is built with.
var RequiredBinaries = []string{"wg-quick", "ip", "iptables"}

type preflightDeps struct {
	lookPath func(string) (string, error)
}

func defaultPreflightDeps() preflightDeps {
	return preflightDeps{lookPath: exec.LookPath}
}

// Preflight checks that every binary is on PATH. All missing binaries are
// reported in one error.
func Preflight(binaries ...string) error {
	return runPreflight(binaries, defaultPreflightDeps())
}

func runPreflight(binaries []string, deps preflightDeps) error {
	var result *multierror.Error
	for _, name := range binaries {
		if _, err := deps.lookPath(name); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %s: %v", domain.ErrPreflightMissing, name, err))
		}
	}
	return result.ErrorOrNil()
}
