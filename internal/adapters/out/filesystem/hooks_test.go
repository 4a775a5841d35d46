package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

type recordingRunner struct {
	names []string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, _ ...string) error {
	r.names = append(r.names, name)
	return r.err
}

func TestHookStore_LookupAbsent(t *testing.T) {
	store := NewHookStore(t.TempDir(), &recordingRunner{}, zerolog.Nop())

	script, ok, err := store.Lookup(domain.HookPreSpinUp)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, script)
}

func TestHookStore_LookupNotExecutable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-spin-up.sh"), []byte("#!/bin/sh\n"), 0o644))

	store := NewHookStore(dir, &recordingRunner{}, zerolog.Nop())
	store.access = func(string, uint32) error { return errors.New("permission denied") }

	_, ok, err := store.Lookup(domain.HookPreSpinUp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHookStore_LookupExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post-spin-up.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	runner := &recordingRunner{}
	store := NewHookStore(dir, runner, zerolog.Nop())
	store.access = func(string, uint32) error { return nil }

	script, ok, err := store.Lookup(domain.HookPostSpinUp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, script.Path())

	require.NoError(t, script.Run(context.Background()))
	assert.Equal(t, []string{path}, runner.names)
}

func TestHookStore_LookupDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pre-spin-down.sh"), 0o755))

	store := NewHookStore(dir, &recordingRunner{}, zerolog.Nop())
	store.access = func(string, uint32) error { return nil }

	_, ok, err := store.Lookup(domain.HookPreSpinDown)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHookStore_LookupUnknown(t *testing.T) {
	store := NewHookStore(t.TempDir(), &recordingRunner{}, zerolog.Nop())

	_, _, err := store.Lookup(domain.HookName("mid-spin"))
	assert.ErrorIs(t, err, domain.ErrUnknownHook)
}

func TestHookStore_InstallSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hooks")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	custom := filepath.Join(dir, "post-spin-up.sh")
	require.NoError(t, os.WriteFile(custom, []byte("#!/bin/sh\necho mine\n"), 0o755))

	store := NewHookStore(dir, &recordingRunner{}, zerolog.Nop())
	require.NoError(t, store.InstallSamples())

	for _, name := range domain.HookNames {
		info, err := os.Stat(filepath.Join(dir, name.ScriptName()))
		require.NoError(t, err, name)
		if name == domain.HookPostSpinUp {
			continue
		}
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm(), name)
	}

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho mine\n", string(data), "existing hook must not be overwritten")

	// second run is a no-op
	require.NoError(t, store.InstallSamples())
}

func TestHookStore_InstallSamplesCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "etc", "vpn-chainer", "hooks")

	store := NewHookStore(dir, &recordingRunner{}, zerolog.Nop())
	require.NoError(t, store.InstallSamples())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(domain.HookNames))
}
