package wgquick

import (
	"context"
	"errors"
	"net/netip"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

type runCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []runCall
	errs  []error // consumed in call order, nil once exhausted
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	cp := make([]string, len(args))
	copy(cp, args)
	f.calls = append(f.calls, runCall{name: name, args: cp})
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func testEndpoint() domain.EndpointConfig {
	return domain.EndpointConfig{
		Name:      "se-sto-01",
		Interface: "se-sto-01",
		Address:   netip.MustParsePrefix("10.0.1.1/24"),
		Path:      "/etc/wireguard/se-sto-01.conf",
	}
}

func TestActivate(t *testing.T) {
	fr := &fakeRunner{}
	a := New(zerolog.Nop(), WithRunner(fr))

	require.NoError(t, a.Activate(context.Background(), testEndpoint()))

	require.Len(t, fr.calls, 1)
	assert.Equal(t, "wg-quick", fr.calls[0].name)
	want := []string{"up", "/etc/wireguard/se-sto-01.conf"}
	if !reflect.DeepEqual(fr.calls[0].args, want) {
		t.Fatalf("args mismatch: got %v want %v", fr.calls[0].args, want)
	}
}

func TestActivate_Failure(t *testing.T) {
	fr := &fakeRunner{errs: []error{errors.New("exit status 1")}}
	a := New(zerolog.Nop(), WithRunner(fr))

	err := a.Activate(context.Background(), testEndpoint())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivation)

	var actErr *domain.ActivationError
	require.ErrorAs(t, err, &actErr)
	assert.Equal(t, "se-sto-01", actErr.Endpoint)
	assert.Equal(t, "up", actErr.Op)
	assert.Len(t, fr.calls, 1, "activation is not retried")
}

func TestDeactivate_RetriesThenSucceeds(t *testing.T) {
	fr := &fakeRunner{errs: []error{errors.New("busy"), nil}}
	a := New(zerolog.Nop(), WithRunner(fr), WithRetryDelay(0))

	require.NoError(t, a.Deactivate(context.Background(), testEndpoint()))
	require.Len(t, fr.calls, 2)
	for _, c := range fr.calls {
		assert.Equal(t, []string{"down", "/etc/wireguard/se-sto-01.conf"}, c.args)
	}
}

func TestDeactivate_GivesUp(t *testing.T) {
	boom := errors.New("no such device")
	fr := &fakeRunner{errs: []error{boom, boom, boom, boom}}
	a := New(zerolog.Nop(), WithRunner(fr), WithRetryDelay(0), WithDeactivateAttempts(2))

	err := a.Deactivate(context.Background(), testEndpoint())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivation)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, fr.calls, 2)

	var actErr *domain.ActivationError
	require.ErrorAs(t, err, &actErr)
	assert.Equal(t, "down", actErr.Op)
}
