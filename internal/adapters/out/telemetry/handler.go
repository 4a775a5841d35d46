package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vpnchainer/vpn-chainer/internal/domain"
)

// EventHandler records chain and probe events as metrics.
type EventHandler struct {
	metrics *Metrics
}

// NewEventHandler creates an event bus handler writing to m.
func NewEventHandler(m *Metrics) *EventHandler {
	return &EventHandler{metrics: m}
}

// CanHandle reports whether the event type carries a metric.
func (h *EventHandler) CanHandle(eventType domain.EventType) bool {
	switch eventType {
	case domain.EventChainBuilt,
		domain.EventChainTornDown,
		domain.EventChainRotated,
		domain.EventChainFailed,
		domain.EventEndpointProbe:
		return true
	}
	return false
}

// Handle records the metrics for one event.
func (h *EventHandler) Handle(ctx context.Context, event domain.Event) error {
	switch p := event.Data.(type) {
	case domain.ChainEventPayload:
		h.chain(ctx, event.Type, p)
	case domain.ProbeEventPayload:
		h.probe(ctx, p)
	default:
		return fmt.Errorf("unexpected payload %T for %s", event.Data, event.Type)
	}
	return nil
}

func (h *EventHandler) chain(ctx context.Context, eventType domain.EventType, p domain.ChainEventPayload) {
	attrs := metric.WithAttributes(attribute.String("operation", p.Operation))

	switch eventType {
	case domain.EventChainBuilt:
		h.metrics.ChainBuilds.Add(ctx, 1, attrs)
		h.metrics.ChainBuildDuration.Record(ctx, p.Duration.Seconds(), attrs)
		h.metrics.ChainHops.Record(ctx, int64(len(p.Hops)))
	case domain.EventChainTornDown:
		h.metrics.ChainTeardowns.Add(ctx, 1, attrs)
		h.metrics.ChainHops.Record(ctx, 0)
	case domain.EventChainRotated:
		h.metrics.ChainRotations.Add(ctx, 1)
	case domain.EventChainFailed:
		h.metrics.ChainFailures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", p.Operation),
			attribute.String("state", string(p.State)),
		))
		h.metrics.ChainHops.Record(ctx, int64(len(p.Hops)))
	}
}

func (h *EventHandler) probe(ctx context.Context, p domain.ProbeEventPayload) {
	attrs := metric.WithAttributes(attribute.String("endpoint", p.Endpoint))
	if p.Failed {
		h.metrics.ProbeFailures.Add(ctx, 1, attrs)
		return
	}
	h.metrics.ProbeThroughput.Record(ctx, p.Mbps, attrs)
}
