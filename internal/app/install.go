package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/command"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const (
	// ServiceName is the systemd unit name.
	ServiceName = "vpn-chainer"
	// ServiceUnitPath is where --auto-install writes the unit.
	ServiceUnitPath = "/etc/systemd/system/vpn-chainer.service"
)

const unitTemplate = `[Unit]
Description=VPN Chainer Service
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
ExecStart=%s
Restart=always
User=root

[Install]
WantedBy=multi-user.target
`

// serviceInstaller writes the systemd unit and enables it.
type serviceInstaller struct {
	runner    command.Runner
	unitPath  string
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func newServiceInstaller(runner command.Runner) serviceInstaller {
	return serviceInstaller{
		runner:    runner,
		unitPath:  ServiceUnitPath,
		writeFile: os.WriteFile,
	}
}

// execStart renders the command line the unit runs: the same binary with the
// same hop count and flags, minus --auto-install.
func execStart(exe string, opts Options) string {
	args := []string{exe, strconv.Itoa(opts.Hops)}
	if opts.Fastest {
		args = append(args, "--fastest")
	}
	if opts.ConfigPath != "" {
		if abs, err := filepath.Abs(opts.ConfigPath); err == nil {
			args = append(args, "--config", abs)
		} else {
			args = append(args, "--config", opts.ConfigPath)
		}
	}
	return strings.Join(args, " ")
}

func renderUnit(exe string, opts Options) string {
	return fmt.Sprintf(unitTemplate, execStart(exe, opts))
}

func (i serviceInstaller) install(ctx context.Context, exe string, opts Options) error {
	log := logger.FromCtx(ctx)

	log.Info().Str("unit", i.unitPath).Msg("installing systemd service")
	if err := i.writeFile(i.unitPath, []byte(renderUnit(exe, opts)), 0o644); err != nil {
		return fmt.Errorf("failed to write unit file: %w", err)
	}

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", ServiceName},
		{"start", ServiceName},
	} {
		if err := i.runner.Run(ctx, "systemctl", args...); err != nil {
			return fmt.Errorf("systemctl %s: %w", strings.Join(args, " "), err)
		}
	}

	log.Info().Msgf("service installed and started, follow it with: journalctl -u %s -f", ServiceName)
	return nil
}
