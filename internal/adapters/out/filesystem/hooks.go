package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/command"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// sampleHooks are written by InstallSamples. They are installed without the
// executable bit and do nothing until an operator enables them.
var sampleHooks = map[domain.HookName]string{
	domain.HookPreSpinUp: "#!/bin/bash\n" +
		"# Runs before the chain is brought up. A non-zero exit aborts the build.\n" +
		"# Enable with: chmod +x pre-spin-up.sh\n" +
		"echo '[hook] pre-spin-up'\n",
	domain.HookPostSpinUp: "#!/bin/bash\n" +
		"# Runs after every hop is up and routed.\n" +
		"# Example: systemctl restart tor\n\n",
	domain.HookPreSpinDown: "#!/bin/bash\n" +
		"# Runs before the chain is torn down. Teardown continues if it fails.\n" +
		"echo '[hook] pre-spin-down'\n",
	domain.HookPostSpinDown: "#!/bin/bash\n" +
		"# Runs after the chain is torn down.\n" +
		"# Example: echo 'chain is down'\n\n",
}

// HookStore implements out.HookStore over a directory of <hook>.sh scripts.
type HookStore struct {
	dir    string
	runner command.Runner
	access func(path string, mode uint32) error
	log    zerolog.Logger
}

// NewHookStore creates a hook store rooted at dir.
func NewHookStore(dir string, runner command.Runner, log zerolog.Logger) *HookStore {
	return &HookStore{
		dir:    dir,
		runner: runner,
		access: unix.Access,
		log:    log,
	}
}

// Lookup resolves the script for name. A missing script and a script the
// process may not execute both report ok=false.
func (s *HookStore) Lookup(name domain.HookName) (out.HookScript, bool, error) {
	if !name.Valid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrUnknownHook, name)
	}

	path := filepath.Join(s.dir, name.ScriptName())
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to stat hook %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}
	if err := s.access(path, unix.X_OK); err != nil {
		s.log.Debug().
			Str(logger.FieldLayer, "adapter").
			Str(logger.FieldAdapter, "filesystem").
			Str(logger.FieldHook, string(name)).
			Str(logger.FieldPath, path).
			Msg("hook present but not executable")
		return nil, false, nil
	}

	return &Script{path: path, runner: s.runner}, true, nil
}

// InstallSamples creates the hook directory and writes a sample for every
// hook that has no script yet. Existing files are left untouched.
func (s *HookStore) InstallSamples() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	for _, name := range domain.HookNames {
		path := filepath.Join(s.dir, name.ScriptName())
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return fmt.Errorf("failed to create sample hook %s: %w", path, err)
		}

		_, writeErr := f.WriteString(sampleHooks[name])
		closeErr := f.Close()
		chmodErr := os.Chmod(path, 0o644)
		if err := errors.Join(writeErr, closeErr, chmodErr); err != nil {
			return fmt.Errorf("failed to write sample hook %s: %w", path, err)
		}

		s.log.Info().
			Str(logger.FieldLayer, "adapter").
			Str(logger.FieldAdapter, "filesystem").
			Str(logger.FieldPath, path).
			Msg("created sample hook script")
	}
	return nil
}

// Script is an executable hook resolved by HookStore.
type Script struct {
	path   string
	runner command.Runner
}

// Path returns the script location.
func (s *Script) Path() string {
	return s.path
}

// Run executes the script with no arguments.
func (s *Script) Run(ctx context.Context) error {
	return s.runner.Run(ctx, s.path)
}
