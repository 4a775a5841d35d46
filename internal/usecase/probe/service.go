// Package probe implements the throughput prober use case.
package probe

import (
	"context"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// Service implements in.ThroughputProber.
type Service struct {
	activator out.TunnelActivator
	meter     out.ThroughputMeter
	publisher out.EventPublisher
}

// NewService creates a prober. publisher may be nil.
func NewService(activator out.TunnelActivator, meter out.ThroughputMeter, publisher out.EventPublisher) *Service {
	return &Service{
		activator: activator,
		meter:     meter,
		publisher: publisher,
	}
}

// Measure brings the endpoint up, downloads through it and brings it down
// again. Any failure scores 0; the endpoint is deactivated in every case.
func (s *Service) Measure(ctx context.Context, endpoint domain.EndpointConfig) float64 {
	ctx = logger.CtxWithFields(ctx, map[string]any{
		logger.FieldLayer:    "usecase",
		logger.FieldUseCase:  "Measure",
		logger.FieldEndpoint: endpoint.Name,
	})
	log := logger.FromCtx(ctx)

	defer func() {
		// Cleanup must run even when the caller's context is already done.
		if err := s.activator.Deactivate(context.WithoutCancel(ctx), endpoint); err != nil {
			log.Warn().Err(err).Msg("failed to bring probed endpoint down")
		}
	}()

	if err := s.activator.Activate(ctx, endpoint); err != nil {
		log.Warn().Err(err).Msg("probe activation failed, scoring 0")
		s.publish(ctx, endpoint, 0, true)
		return 0
	}

	mbps, err := s.meter.Download(ctx)
	if err != nil || mbps < 0 {
		log.Warn().Err(err).Msg("speed test failed, scoring 0")
		s.publish(ctx, endpoint, 0, true)
		return 0
	}

	log.Info().Float64("mbps", mbps).Msgf("%s: %.2f Mbps", endpoint.Name, mbps)
	s.publish(ctx, endpoint, mbps, false)
	return mbps
}

func (s *Service) publish(ctx context.Context, endpoint domain.EndpointConfig, mbps float64, failed bool) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(domain.EventEndpointProbe, domain.ProbeEventPayload{
		Endpoint: endpoint.Name,
		Mbps:     mbps,
		Failed:   failed,
	})
	if err != nil {
		logger.FromCtx(ctx).Debug().Err(err).Msg("failed to publish probe event")
	}
}
