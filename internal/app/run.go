package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	// Adapters - Input
	"github.com/vpnchainer/vpn-chainer/internal/adapters/in/http/rotate"

	// Adapters - Output
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/command"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/eventbus"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/filesystem"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/netfilter"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/ratelimit"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/speedtest"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/telemetry"
	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/wgquick"

	// Boundaries
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/in"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"

	// Domain
	"github.com/vpnchainer/vpn-chainer/internal/domain"

	// Use cases
	"github.com/vpnchainer/vpn-chainer/internal/usecase/chain"
	"github.com/vpnchainer/vpn-chainer/internal/usecase/hooks"
	"github.com/vpnchainer/vpn-chainer/internal/usecase/probe"
	"github.com/vpnchainer/vpn-chainer/internal/usecase/selector"

	// Pkg
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const (
	eventBufferSize = 100
	serverStopGrace = 5 * time.Second
)

// Options are the startup parameters taken from the command line.
type Options struct {
	Hops        int
	Fastest     bool
	AutoInstall bool
	ConfigPath  string
	Version     string
}

// Run loads configuration, builds the chain and serves the rotation API
// until SIGINT or SIGTERM, then tears the chain down.
func Run(ctx context.Context, opts Options) error {
	if opts.Hops <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidHopCount, opts.Hops)
	}

	_, cfg, err := initConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx = logger.WithCtx(ctx, log)
	runner := command.NewExecRunner()

	if opts.AutoInstall {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to resolve executable path: %w", err)
		}
		return newServiceInstaller(runner).install(ctx, exe, opts)
	}

	if err := command.Preflight(command.RequiredBinaries...); err != nil {
		return err
	}

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry, opts.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverStopGrace)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown incomplete")
		}
	}()

	bus, err := createEventBus(log)
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Stop(); err != nil {
			log.Warn().Err(err).Msg("event bus stop failed")
		}
	}()

	chainSvc := createChainService(cfg, runner, bus, log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := domain.ChainRequest{Hops: opts.Hops, RankBySpeed: opts.Fastest}
	if err := establish(ctx, chainSvc, req); err != nil {
		return err
	}

	token := uuid.NewString()
	log.Info().Msgf("VPN-Chainer API running at: %s", rotationURL(hostIPv4(), cfg.API.Listen, token))

	var limiter out.RateLimiter
	if cfg.API.RateLimit.Enabled {
		limiter = ratelimit.NewMemoryStore(cfg.API.RateLimit.PerIPRPS, cfg.API.RateLimit.Burst, log)
	}
	server := rotate.NewServer(cfg.API.Listen, rotate.NewHandler(chainSvc, token, limiter, log), log)

	return serve(ctx, server, chainSvc, cfg.Chain.ShutdownTimeout)
}

// initLogger initializes the process logger.
func initLogger(cfg Config) (zerolog.Logger, func(), error) {
	logConfig := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		log, cleanup, err := logger.NewWithFile(logConfig, logger.FileConfig{
			Enabled:    true,
			Path:       cfg.Logging.File.Path,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return logger.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return logger.New(logConfig), nil, nil
}

// createEventBus starts the event bus with the telemetry handler subscribed.
func createEventBus(log zerolog.Logger) (*eventbus.InMemory, error) {
	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	bus := eventbus.NewInMemory(eventBufferSize, log)
	bus.SetMetrics(metrics)
	if err := bus.Subscribe(telemetry.NewEventHandler(metrics)); err != nil {
		return nil, fmt.Errorf("failed to subscribe telemetry handler: %w", err)
	}
	if err := bus.Start(); err != nil {
		return nil, fmt.Errorf("failed to start event bus: %w", err)
	}
	return bus, nil
}

// createChainService wires the host adapters and use cases into the chain
// controller.
func createChainService(cfg Config, runner command.Runner, bus out.EventPublisher, log zerolog.Logger) *chain.Service {
	hookStore := filesystem.NewHookStore(cfg.Hooks.Dir, runner, log)
	if cfg.Hooks.InstallSamples {
		if err := hookStore.InstallSamples(); err != nil {
			log.Warn().Err(err).Str("dir", cfg.Hooks.Dir).Msg("failed to install sample hooks")
		}
	}

	repo := filesystem.NewEndpointRepository(cfg.WireGuard.ConfigDir, log)
	activator := wgquick.New(log,
		wgquick.WithRunner(runner),
		wgquick.WithDeactivateAttempts(cfg.Chain.DeactivateAttempts),
	)
	router := netfilter.New(log, netfilter.WithRunner(runner))
	meter := speedtest.New(
		speedtest.WithURL(cfg.Probe.URL),
		speedtest.WithTimeout(cfg.Probe.Timeout),
	)

	prober := probe.NewService(activator, meter, bus)
	sel := selector.NewService(repo, prober)

	return chain.NewService(sel, hooks.NewService(hookStore), activator, router,
		chain.WithEventPublisher(bus),
		chain.WithCleanupTimeout(cfg.Chain.ShutdownTimeout),
	)
}

// establish performs the initial build. A failed post-spin-up hook leaves the
// chain up and only warns. Any other failure is returned as is: hops already
// up stay up so the operator can inspect the host.
func establish(ctx context.Context, svc in.ChainService, req domain.ChainRequest) error {
	log := logger.FromCtx(ctx)

	err := svc.Build(ctx, req)
	if err == nil {
		return nil
	}

	current := svc.Status(ctx)
	if errors.Is(err, domain.ErrHookExecution) && current.State == domain.ChainStateActive {
		log.Warn().Err(err).Msg("chain is up but a hook failed")
		return nil
	}

	if !current.Empty() {
		routes := make([]string, 0, len(current.Routes))
		for _, r := range current.InstalledRoutes() {
			routes = append(routes, r.String())
		}
		log.Error().
			Str("state", string(current.State)).
			Strs("hops_left_up", domain.EndpointNames(current.Hops)).
			Strs("routes_left_installed", routes).
			Msg("build failed partway, leaving hops up for manual inspection")
	}
	return fmt.Errorf("failed to establish chain: %w", err)
}

// apiServer is the part of the rotation server serve drives.
type apiServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// serve runs the API until ctx ends, then shuts the chain down before the
// server so queued rotations see a closed chain instead of rebuilding it.
func serve(ctx context.Context, server apiServer, svc in.ChainService, shutdownTimeout time.Duration) error {
	log := logger.FromCtx(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down, tearing chain down")

		var shutdownErr error
		chainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := svc.Shutdown(chainCtx); err != nil {
			log.Error().Err(err).Msg("chain teardown incomplete")
			shutdownErr = err
		}

		serverCtx, cancelServer := context.WithTimeout(context.WithoutCancel(ctx), serverStopGrace)
		defer cancelServer()
		if err := server.Shutdown(serverCtx); err != nil {
			log.Warn().Err(err).Msg("API server shutdown incomplete")
		}
		return shutdownErr
	})

	return g.Wait()
}
