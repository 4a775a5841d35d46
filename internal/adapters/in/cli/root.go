// Package cli implements the CLI adapter for vpn-chainer.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vpnchainer/vpn-chainer/internal/app"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/version"
)

// runner starts the application. Tests replace it.
type runner func(ctx context.Context, opts app.Options) error

// NewRootCmd creates the root command for the vpn-chainer CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(app.Run)
}

func newRootCmd(run runner) *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "vpn-chainer <hops>",
		Short: "Chain WireGuard tunnels into a multi-hop route",
		Long: `vpn-chainer brings up <hops> WireGuard tunnels from the configured
definitions directory, routes each one through the previous hop, and serves
an authenticated HTTP endpoint that rotates the chain on demand.

The chain is torn down on SIGINT or SIGTERM.`,
		Example: `  vpn-chainer 3
  vpn-chainer 2 --fastest
  vpn-chainer 3 --auto-install`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one hop count argument, got %d", domain.ErrInvalidHopCount, len(args))
			}
			_, err := parseHops(args[0])
			return err
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hops, err := parseHops(args[0])
			if err != nil {
				return err
			}
			opts.Hops = hops
			opts.Version = version.Version()
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.Fastest, "fastest", false, "Probe every endpoint and pick the fastest ones")
	rootCmd.Flags().BoolVar(&opts.AutoInstall, "auto-install", false, "Install and start a systemd service with the same arguments, then exit")
	rootCmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// parseHops accepts a positive decimal hop count.
func parseHops(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidHopCount, arg)
	}
	return n, nil
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			cmd.Printf("vpn-chainer %s\n", info.Version)
			cmd.Printf("Commit: %s\n", info.Commit)
			cmd.Printf("Build Date: %s\n", info.BuildDate)
		},
	}
}
