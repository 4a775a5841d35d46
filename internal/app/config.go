package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/speedtest"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/telemetry"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/wgquick"
	"github.com/vpnchainer/vpn-chainer/internal/usecase/chain"
)

// Config holds the application configuration.
type Config struct {
	WireGuard struct {
		ConfigDir string `mapstructure:"config_dir"`
	} `mapstructure:"wireguard"`

	Hooks struct {
		Dir            string `mapstructure:"dir"`
		InstallSamples bool   `mapstructure:"install_samples"`
	} `mapstructure:"hooks"`

	API struct {
		Listen    string `mapstructure:"listen"`
		RateLimit struct {
			Enabled  bool    `mapstructure:"enabled"`
			PerIPRPS float64 `mapstructure:"per_ip_rps"`
			Burst    int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Probe struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"probe"`

	Chain struct {
		ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
		DeactivateAttempts int           `mapstructure:"deactivate_attempts"`
	} `mapstructure:"chain"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// initConfig loads configuration from file.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("wireguard.config_dir", DefaultWireGuardDir)
	v.SetDefault("hooks.dir", DefaultHooksDir)
	v.SetDefault("hooks.install_samples", true)
	v.SetDefault("api.listen", "0.0.0.0:5000")
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.per_ip_rps", 1)
	v.SetDefault("api.rate_limit.burst", 3)
	v.SetDefault("probe.url", speedtest.DefaultURL)
	v.SetDefault("probe.timeout", speedtest.DefaultTimeout)
	v.SetDefault("chain.shutdown_timeout", chain.DefaultCleanupTimeout)
	v.SetDefault("chain.deactivate_attempts", wgquick.DefaultDeactivateAttempts)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("VPNCHAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

func (c Config) validate() error {
	switch {
	case c.WireGuard.ConfigDir == "":
		return errors.New("wireguard.config_dir must not be empty")
	case c.Hooks.Dir == "":
		return errors.New("hooks.dir must not be empty")
	case c.API.Listen == "":
		return errors.New("api.listen must not be empty")
	case c.API.RateLimit.Enabled && (c.API.RateLimit.PerIPRPS <= 0 || c.API.RateLimit.Burst <= 0):
		return errors.New("api.rate_limit.per_ip_rps and api.rate_limit.burst must be positive")
	case c.Chain.ShutdownTimeout <= 0:
		return errors.New("chain.shutdown_timeout must be positive")
	}
	return nil
}
