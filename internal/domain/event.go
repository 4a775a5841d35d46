package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventChainBuilt    EventType = "chain.built"
	EventChainTornDown EventType = "chain.torn_down"
	EventChainRotated  EventType = "chain.rotated"
	EventChainFailed   EventType = "chain.failed"
	EventEndpointProbe EventType = "endpoint.probed"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Data      any
}

// ChainEventPayload contains data for chain lifecycle events.
type ChainEventPayload struct {
	Operation string // "build", "teardown", "rotate"
	Hops      []string
	State     ChainState
	Duration  time.Duration
	Err       error
}

// ProbeEventPayload contains data for endpoint.probed events.
type ProbeEventPayload struct {
	Endpoint string
	Mbps     float64
	Failed   bool
}
