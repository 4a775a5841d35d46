package main

import (
	"os"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/in/cli"
	"github.com/vpnchainer/vpn-chainer/pkg/version"
)

var (
	buildVersion string
	commit       string
	date         string
)

func main() {
	version.Set(buildVersion, commit, date)
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
