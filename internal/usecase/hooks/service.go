// Package hooks implements the lifecycle hook runner.
package hooks

import (
	"context"
	"errors"
	"time"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// Service implements in.HookRunner.
type Service struct {
	store out.HookStore
}

// NewService creates a hook runner resolving scripts from store.
func NewService(store out.HookStore) *Service {
	return &Service{store: store}
}

// Run executes the script registered for name and waits for it. A missing or
// non-executable script is skipped.
func (s *Service) Run(ctx context.Context, name domain.HookName) error {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:   "usecase",
		logger.FieldUseCase: "RunHook",
		logger.FieldHook:    string(name),
	})
	log := logger.FromCtx(ctx)

	script, ok, err := s.store.Lookup(name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownHook) {
			return err
		}
		return &domain.HookExecutionError{Hook: name, Err: err}
	}
	if !ok {
		log.Info().Msgf("no %s script found, skipping", name)
		return nil
	}

	log.Info().Str(logger.FieldPath, script.Path()).Msgf("running %s script", name)
	start := time.Now()
	if err := script.Run(ctx); err != nil {
		return &domain.HookExecutionError{Hook: name, Err: err}
	}

	log.Debug().Dur(logger.FieldDuration, time.Since(start)).Msg("hook finished")
	return nil
}
