// Package app provides the application initialization and wiring.
package app

import (
	"github.com/spf13/viper"
)

const (
	// ConfigName is the config file stem looked up in the search paths.
	ConfigName = "vpn-chainer"

	// DefaultWireGuardDir holds the tunnel definitions.
	DefaultWireGuardDir = "/etc/wireguard"
	// DefaultHooksDir holds the lifecycle hook scripts.
	DefaultHooksDir = "/etc/vpn-chainer/hooks"
)

// ConfigureViper sets up viper with standard config file search paths.
// Config file: vpn-chainer.toml
// Search paths (in order): /etc/vpn-chainer, ~/.config/vpn-chainer, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/vpn-chainer")
		v.AddConfigPath("$HOME/.config/vpn-chainer")
		v.AddConfigPath(".")
	}
}
