package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

type runCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []runCall
	errOn string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, runCall{name: name, args: append([]string(nil), args...)})
	if f.errOn != "" && len(args) > 0 && args[0] == f.errOn {
		return errors.New("exit status 1")
	}
	return nil
}

func TestExecStart(t *testing.T) {
	assert.Equal(t, "/usr/local/bin/vpn-chainer 3", execStart("/usr/local/bin/vpn-chainer", Options{Hops: 3}))
	assert.Equal(t, "/usr/local/bin/vpn-chainer 2 --fastest --config /etc/vpn-chainer/vpn-chainer.toml",
		execStart("/usr/local/bin/vpn-chainer", Options{
			Hops:        2,
			Fastest:     true,
			AutoInstall: true,
			ConfigPath:  "/etc/vpn-chainer/vpn-chainer.toml",
		}))
}

func TestServiceInstaller_Install(t *testing.T) {
	runner := &fakeRunner{}
	unitPath := filepath.Join(t.TempDir(), "vpn-chainer.service")
	inst := newServiceInstaller(runner)
	inst.unitPath = unitPath

	ctx := logger.WithCtx(context.Background(), logger.Nop())
	require.NoError(t, inst.install(ctx, "/usr/local/bin/vpn-chainer", Options{Hops: 3, Fastest: true}))

	unit, err := os.ReadFile(unitPath)
	require.NoError(t, err)
	assert.Contains(t, string(unit), "ExecStart=/usr/local/bin/vpn-chainer 3 --fastest\n")
	assert.Contains(t, string(unit), "Restart=always")
	assert.Contains(t, string(unit), "WantedBy=multi-user.target")
	assert.NotContains(t, string(unit), "--auto-install")

	assert.Equal(t, []runCall{
		{name: "systemctl", args: []string{"daemon-reload"}},
		{name: "systemctl", args: []string{"enable", "vpn-chainer"}},
		{name: "systemctl", args: []string{"start", "vpn-chainer"}},
	}, runner.calls)
}

func TestServiceInstaller_StopsOnFailure(t *testing.T) {
	runner := &fakeRunner{errOn: "enable"}
	inst := newServiceInstaller(runner)
	inst.unitPath = filepath.Join(t.TempDir(), "vpn-chainer.service")

	err := inst.install(context.Background(), "/usr/local/bin/vpn-chainer", Options{Hops: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "systemctl enable vpn-chainer")
	assert.Len(t, runner.calls, 2, "start is not attempted")
}

func TestServiceInstaller_WriteFailure(t *testing.T) {
	runner := &fakeRunner{}
	inst := newServiceInstaller(runner)
	inst.writeFile = func(string, []byte, os.FileMode) error { return os.ErrPermission }

	err := inst.install(context.Background(), "/usr/local/bin/vpn-chainer", Options{Hops: 1})

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Empty(t, runner.calls)
}
