package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// MeterName scopes every instrument of the process.
const MeterName = "vpn-chainer"

// Metrics holds vpn-chainer OTel metric instruments.
type Metrics struct {
	// Chain lifecycle
	ChainBuilds        metric.Int64Counter
	ChainBuildDuration metric.Float64Histogram
	ChainTeardowns     metric.Int64Counter
	ChainRotations     metric.Int64Counter
	ChainFailures      metric.Int64Counter
	ChainHops          metric.Int64Gauge

	// Probing
	ProbeThroughput metric.Float64Histogram
	ProbeFailures   metric.Int64Counter

	// Events
	EventsProcessed metric.Int64Counter
	EventsDropped   metric.Int64Counter
}

// NewMetrics creates all instruments on the global MeterProvider.
// All fields are always initialized; OTel hands out noop instruments when no
// MeterProvider is set.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter(MeterName))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.ChainBuilds, err = meter.Int64Counter("vpnchainer.chain.builds",
		metric.WithDescription("Total successful chain builds")); err != nil {
		return nil, err
	}
	if m.ChainBuildDuration, err = meter.Float64Histogram("vpnchainer.chain.build.duration_seconds",
		metric.WithDescription("Chain build duration in seconds, probing included"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 30, 60, 120, 300, 600)); err != nil {
		return nil, err
	}
	if m.ChainTeardowns, err = meter.Int64Counter("vpnchainer.chain.teardowns",
		metric.WithDescription("Total chain teardowns")); err != nil {
		return nil, err
	}
	if m.ChainRotations, err = meter.Int64Counter("vpnchainer.chain.rotations",
		metric.WithDescription("Total completed rotations")); err != nil {
		return nil, err
	}
	if m.ChainFailures, err = meter.Int64Counter("vpnchainer.chain.failures",
		metric.WithDescription("Total failed chain operations")); err != nil {
		return nil, err
	}
	if m.ChainHops, err = meter.Int64Gauge("vpnchainer.chain.hops",
		metric.WithDescription("Hops in the current chain")); err != nil {
		return nil, err
	}
	if m.ProbeThroughput, err = meter.Float64Histogram("vpnchainer.probe.throughput_mbps",
		metric.WithDescription("Measured endpoint throughput"),
		metric.WithUnit("Mbit/s"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000)); err != nil {
		return nil, err
	}
	if m.ProbeFailures, err = meter.Int64Counter("vpnchainer.probe.failures",
		metric.WithDescription("Total probes that scored zero")); err != nil {
		return nil, err
	}
	if m.EventsProcessed, err = meter.Int64Counter("vpnchainer.events.processed",
		metric.WithDescription("Total events processed")); err != nil {
		return nil, err
	}
	if m.EventsDropped, err = meter.Int64Counter("vpnchainer.events.dropped",
		metric.WithDescription("Total events dropped")); err != nil {
		return nil, err
	}

	return m, nil
}
