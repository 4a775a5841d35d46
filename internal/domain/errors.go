package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match these through errors.Is.
var (
	// Config errors
	ErrConfigParse         = errors.New("invalid tunnel definition")
	ErrInsufficientConfigs = errors.New("not enough tunnel definitions")

	// Host network errors
	ErrActivation = errors.New("tunnel activation failed")
	ErrRouting    = errors.New("routing change failed")

	// Hook errors
	ErrHookExecution = errors.New("hook script failed")

	// API errors
	ErrUnauthorized = errors.New("unauthorized")

	// Chain errors
	ErrChainClosed      = errors.New("chain controller is shut down")
	ErrChainActive      = errors.New("a chain is already up, rotate or tear it down first")
	ErrGuardTimeout     = errors.New("timed out waiting for in-flight chain operation")
	ErrNoChainRequest   = errors.New("no chain has been built yet")
	ErrInvalidHopCount  = errors.New("hop count must be a positive integer")
	ErrPreflightMissing = errors.New("required binary not found")
	ErrUnknownHook      = errors.New("unknown hook")
)

// ConfigParseError reports a tunnel definition that could not be parsed.
type ConfigParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }
func (e *ConfigParseError) Is(target error) bool { return target == ErrConfigParse }

// InsufficientConfigsError reports a selection asking for more endpoints
// than the repository holds.
type InsufficientConfigsError struct {
	Requested int
	Available int
}

func (e *InsufficientConfigsError) Error() string {
	return fmt.Sprintf("only %d tunnel definitions available, cannot select %d", e.Available, e.Requested)
}

func (e *InsufficientConfigsError) Is(target error) bool { return target == ErrInsufficientConfigs }

// ActivationError reports a failed activate or deactivate of one endpoint.
type ActivationError struct {
	Endpoint string
	Op       string // "up" or "down"
	Err      error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("tunnel %s %s: %v", e.Endpoint, e.Op, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }
func (e *ActivationError) Is(target error) bool { return target == ErrActivation }

// RoutingError reports a failed route or forwarding rule change.
type RoutingError struct {
	Op     string
	Target string
	Err    error
}

func (e *RoutingError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *RoutingError) Unwrap() error { return e.Err }
func (e *RoutingError) Is(target error) bool { return target == ErrRouting }

// HookExecutionError reports a hook script that exited non-zero.
type HookExecutionError struct {
	Hook HookName
	Err  error
}

func (e *HookExecutionError) Error() string {
	return fmt.Sprintf("hook %s: %v", e.Hook, e.Err)
}

func (e *HookExecutionError) Unwrap() error { return e.Err }
func (e *HookExecutionError) Is(target error) bool { return target == ErrHookExecution }

// AuthorizationError reports a rotation trigger presented with a bad token.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "forbidden: " + e.Reason
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrUnauthorized }
