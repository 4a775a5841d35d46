// Package telemetry provides OpenTelemetry initialization for vpn-chainer.
// It configures trace and metric providers that export via OTLP/HTTP, and
// records chain metrics from domain events.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName is reported as service.name on every exported signal.
const ServiceName = "vpn-chainer"

// Config holds telemetry configuration.
type Config struct {
	Enabled         bool    `mapstructure:"enabled"`
	Endpoint        string  `mapstructure:"endpoint"`          // OTLP HTTP endpoint, e.g. "http://localhost:4318"
	AuthToken       string  `mapstructure:"auth_token"`        // Basic auth token (base64 encoded user:pass)
	Traces          bool    `mapstructure:"traces"`            // Enable trace export
	Metrics         bool    `mapstructure:"metrics"`           // Enable metric export
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"` // 0.0-1.0, default 1.0
}

// Provider owns the SDK providers installed as OTel globals.
type Provider struct {
	tracer    *sdktrace.TracerProvider
	meter     *sdkmetric.MeterProvider
	shutdowns []func(context.Context) error
}

// target is the collector address split the way the OTLP exporters take it.
type target struct {
	host     string
	basePath string
	insecure bool
	headers  map[string]string
}

// NewProvider installs global trace and meter providers exporting to
// cfg.Endpoint. A disabled config returns a Provider that does nothing, and
// the OTel globals stay noop.
func NewProvider(ctx context.Context, cfg Config, version string) (*Provider, error) {
	p := &Provider{}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return p, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(version),
		),
		resource.WithOS(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	t, err := parseTarget(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Traces {
		exp, err := otlptracehttp.New(ctx, t.traceOptions()...)
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		p.tracer = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(samplerFor(cfg.TraceSampleRate)),
		)
		otel.SetTracerProvider(p.tracer)
		p.shutdowns = append(p.shutdowns, p.tracer.Shutdown)
	}

	if cfg.Metrics {
		exp, err := otlpmetrichttp.New(ctx, t.metricOptions()...)
		if err != nil {
			_ = p.Shutdown(ctx)
			return nil, fmt.Errorf("create metric exporter: %w", err)
		}
		p.meter = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(p.meter)
		p.shutdowns = append(p.shutdowns, p.meter.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Enabled reports whether any exporter is running.
func (p *Provider) Enabled() bool {
	return len(p.shutdowns) > 0
}

// Shutdown flushes and stops every exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	for _, fn := range p.shutdowns {
		if err := fn(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	p.shutdowns = nil
	return result.ErrorOrNil()
}

func parseTarget(cfg Config) (target, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return target{}, fmt.Errorf("parse endpoint URL: %w", err)
	}
	if u.Host == "" {
		return target{}, fmt.Errorf("endpoint %q has no host", cfg.Endpoint)
	}

	headers := map[string]string{}
	if cfg.AuthToken != "" {
		headers["Authorization"] = "Basic " + cfg.AuthToken
	}

	return target{
		host:     u.Host,
		basePath: strings.TrimSuffix(u.Path, "/"),
		insecure: u.Scheme == "http",
		headers:  headers,
	}, nil
}

func (t target) traceOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(t.host),
		otlptracehttp.WithHeaders(t.headers),
	}
	if t.basePath != "" {
		opts = append(opts, otlptracehttp.WithURLPath(t.basePath+"/v1/traces"))
	}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func (t target) metricOptions() []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(t.host),
		otlpmetrichttp.WithHeaders(t.headers),
	}
	if t.basePath != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(t.basePath+"/v1/metrics"))
	}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}

// samplerFor maps a rate to a sampler: 0 never samples, rates in (0,1) are
// ratio based, 1 and above always sample.
func samplerFor(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate < 1:
		return sdktrace.TraceIDRatioBased(rate)
	default:
		return sdktrace.AlwaysSample()
	}
}
