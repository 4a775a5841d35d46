package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	// An explicit empty file keeps the search paths out of the test.
	cfgPath := filepath.Join(t.TempDir(), "vpn-chainer.toml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/etc/wireguard", cfg.WireGuard.ConfigDir)
	assert.Equal(t, "/etc/vpn-chainer/hooks", cfg.Hooks.Dir)
	assert.True(t, cfg.Hooks.InstallSamples)
	assert.Equal(t, "0.0.0.0:5000", cfg.API.Listen)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.InDelta(t, 1.0, cfg.API.RateLimit.PerIPRPS, 0.0001)
	assert.Equal(t, 3, cfg.API.RateLimit.Burst)
	assert.Equal(t, "https://speed.cloudflare.com/__down?bytes=25000000", cfg.Probe.URL)
	assert.Equal(t, 30*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Chain.ShutdownTimeout)
	assert.Equal(t, 3, cfg.Chain.DeactivateAttempts)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Logging.File.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Telemetry.Traces)
	assert.InDelta(t, 1.0, cfg.Telemetry.TraceSampleRate, 0.0001)
}

func TestInitConfig_File(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vpn-chainer.toml")
	content := `[wireguard]
config_dir = "/srv/wg"

[hooks]
dir = "/srv/hooks"
install_samples = false

[api]
listen = "127.0.0.1:8080"

[api.rate_limit]
enabled = false

[probe]
timeout = "5s"

[chain]
shutdown_timeout = "10s"
deactivate_attempts = 5

[logging]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/wg", cfg.WireGuard.ConfigDir)
	assert.Equal(t, "/srv/hooks", cfg.Hooks.Dir)
	assert.False(t, cfg.Hooks.InstallSamples)
	assert.Equal(t, "127.0.0.1:8080", cfg.API.Listen)
	assert.False(t, cfg.API.RateLimit.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Chain.ShutdownTimeout)
	assert.Equal(t, 5, cfg.Chain.DeactivateAttempts)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vpn-chainer.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[wireguard]\nconfig_dir = \"/srv/wg\"\n"), 0o600))
	t.Setenv("VPNCHAINER_WIREGUARD_CONFIG_DIR", "/from/env")
	t.Setenv("VPNCHAINER_API_LISTEN", "0.0.0.0:6000")

	_, cfg, err := initConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.WireGuard.ConfigDir)
	assert.Equal(t, "0.0.0.0:6000", cfg.API.Listen)
}

func TestInitConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed toml",
			content: "[wireguard\nconfig_dir = ",
			wantErr: "failed to read config file",
		},
		{
			name:    "zero burst",
			content: "[api.rate_limit]\nburst = 0\n",
			wantErr: "must be positive",
		},
		{
			name:    "empty listen",
			content: "[api]\nlisten = \"\"\n",
			wantErr: "api.listen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "vpn-chainer.toml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.content), 0o600))

			_, _, err := initConfig(cfgPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitLogger_File(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.Path = filepath.Join(t.TempDir(), "logs", "vpn-chainer.log")
	cfg.Logging.File.MaxSize = 1

	log, cleanup, err := initLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	log.Info().Msg("hello")
	data, err := os.ReadFile(cfg.Logging.File.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
