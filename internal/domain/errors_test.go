package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	cause := errors.New("exit status 1")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "config parse",
			err:      &ConfigParseError{Path: "/etc/wireguard/a.conf", Reason: "missing Address", Err: cause},
			sentinel: ErrConfigParse,
			message:  "parse /etc/wireguard/a.conf: missing Address: exit status 1",
		},
		{
			name:     "insufficient configs",
			err:      &InsufficientConfigsError{Requested: 5, Available: 2},
			sentinel: ErrInsufficientConfigs,
			message:  "only 2 tunnel definitions available, cannot select 5",
		},
		{
			name:     "activation",
			err:      &ActivationError{Endpoint: "se-sto", Op: "up", Err: cause},
			sentinel: ErrActivation,
			message:  "tunnel se-sto up: exit status 1",
		},
		{
			name:     "routing",
			err:      &RoutingError{Op: "route add", Target: "10.0.2.0/24 via 10.0.1.1 dev a", Err: cause},
			sentinel: ErrRouting,
			message:  "route add 10.0.2.0/24 via 10.0.1.1 dev a: exit status 1",
		},
		{
			name:     "hook",
			err:      &HookExecutionError{Hook: HookPreSpinUp, Err: cause},
			sentinel: ErrHookExecution,
			message:  "hook pre-spin-up: exit status 1",
		},
		{
			name:     "authorization",
			err:      &AuthorizationError{Reason: "invalid key"},
			sentinel: ErrUnauthorized,
			message:  "forbidden: invalid key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("rotate: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestTypedErrors_UnwrapCause(t *testing.T) {
	cause := errors.New("RTNETLINK answers: File exists")

	assert.ErrorIs(t, &RoutingError{Op: "route add", Err: cause}, cause)
	assert.ErrorIs(t, &ActivationError{Endpoint: "a", Op: "down", Err: cause}, cause)
	assert.ErrorIs(t, &HookExecutionError{Hook: HookPostSpinUp, Err: cause}, cause)
	assert.Equal(t, "route flush: RTNETLINK answers: File exists", (&RoutingError{Op: "route flush", Err: cause}).Error())
}
