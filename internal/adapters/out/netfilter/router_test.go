package netfilter

import (
	"context"
	"errors"
	"net/netip"
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
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	cp := make([]string, len(args))
	copy(cp, args)
	f.calls = append(f.calls, runCall{name: name, args: cp})
	return f.err
}

var testKey = domain.RouteKey{
	Destination: netip.MustParsePrefix("10.0.2.0/24"),
	Via:         netip.MustParseAddr("10.0.1.1"),
	Device:      "se-sto-01",
}

func TestRouter_Commands(t *testing.T) {
	tests := []struct {
		name     string
		call     func(r *Router) error
		wantName string
		wantArgs []string
	}{
		{
			name:     "add route",
			call:     func(r *Router) error { return r.AddRoute(context.Background(), testKey) },
			wantName: "ip",
			wantArgs: []string{"route", "add", "10.0.2.0/24", "via", "10.0.1.1", "dev", "se-sto-01"},
		},
		{
			name:     "delete route",
			call:     func(r *Router) error { return r.DeleteRoute(context.Background(), testKey) },
			wantName: "ip",
			wantArgs: []string{"route", "del", "10.0.2.0/24", "via", "10.0.1.1", "dev", "se-sto-01"},
		},
		{
			name: "forward rule",
			call: func(r *Router) error {
				return r.AddForwardRule(context.Background(), domain.ForwardRule{From: "se-sto-01", To: "nl-ams-02"})
			},
			wantName: "iptables",
			wantArgs: []string{"-A", "FORWARD", "-i", "se-sto-01", "-o", "nl-ams-02", "-j", "ACCEPT"},
		},
		{
			name:     "flush",
			call:     func(r *Router) error { return r.FlushForwardRules(context.Background()) },
			wantName: "iptables",
			wantArgs: []string{"-F", "FORWARD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := &fakeRunner{}
			r := New(zerolog.Nop(), WithRunner(fr))

			require.NoError(t, tt.call(r))
			require.Len(t, fr.calls, 1)
			assert.Equal(t, tt.wantName, fr.calls[0].name)
			assert.Equal(t, tt.wantArgs, fr.calls[0].args)
		})
	}
}

func TestRouter_ErrorsAreRoutingErrors(t *testing.T) {
	fr := &fakeRunner{err: errors.New("RTNETLINK answers: File exists")}
	r := New(zerolog.Nop(), WithRunner(fr))

	err := r.AddRoute(context.Background(), testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRouting)
	assert.Contains(t, err.Error(), "10.0.2.0/24 via 10.0.1.1 dev se-sto-01")

	err = r.FlushForwardRules(context.Background())
	assert.ErrorIs(t, err, domain.ErrRouting)
}
