// Package eventbus delivers chain events to subscribed handlers.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vpnchainer/vpn-chainer/internal/adapters/out/telemetry"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

// Timeouts for publishing and handling.
const (
	DefaultBufferSize = 100
	PublishTimeout    = 5 * time.Second
	HandlerTimeout    = 30 * time.Second
	StopTimeout       = 5 * time.Second
)

// ErrStopped is returned by Publish after Stop.
var ErrStopped = errors.New("event bus is stopped")

// InMemory implements out.EventBus with a buffered channel drained by one
// goroutine. Handlers run one at a time in subscription order.
type InMemory struct {
	mu         sync.RWMutex
	handlers   []out.EventHandler
	events     chan domain.Event
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	bufferSize int
	metrics    *telemetry.Metrics
	log        zerolog.Logger
}

// NewInMemory creates an in-memory event bus.
func NewInMemory(bufferSize int, log zerolog.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &InMemory{
		events:     make(chan domain.Event, bufferSize),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		bufferSize: bufferSize,
		log:        log.With().Str(logger.FieldLayer, "adapter").Str(logger.FieldAdapter, "eventbus").Logger(),
	}
}

// SetMetrics attaches event counters. Call before Start.
func (bus *InMemory) SetMetrics(m *telemetry.Metrics) {
	bus.mu.Lock()
	bus.metrics = m
	bus.mu.Unlock()
}

// Publish queues an event. It gives up after PublishTimeout when the buffer
// stays full.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := domain.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      payload,
	}

	timer := time.NewTimer(PublishTimeout)
	defer timer.Stop()

	select {
	case <-bus.ctx.Done():
		return ErrStopped
	default:
	}

	select {
	case bus.events <- event:
		bus.log.Debug().
			Str("event_id", event.ID).
			Str(logger.FieldEvent, string(event.Type)).
			Msg("event published")
		return nil
	case <-bus.ctx.Done():
		return ErrStopped
	case <-timer.C:
		bus.log.Error().
			Str("event_id", event.ID).
			Str(logger.FieldEvent, string(event.Type)).
			Msg("event channel is full, dropping event")
		bus.count(func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsDropped }, event.Type)
		return fmt.Errorf("event channel is full, dropped event %s", event.ID)
	}
}

// Subscribe adds a handler.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = append(bus.handlers, handler)
	bus.log.Debug().
		Str(logger.FieldHandler, fmt.Sprintf("%T", handler)).
		Int("total_handlers", len(bus.handlers)).
		Msg("event handler subscribed")
	return nil
}

// Unsubscribe removes a handler added with Subscribe.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for i, h := range bus.handlers {
		if h == handler {
			bus.handlers = append(bus.handlers[:i], bus.handlers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("handler %T not subscribed", handler)
}

// Start launches the delivery loop.
func (bus *InMemory) Start() error {
	bus.log.Info().Int("buffer_size", bus.bufferSize).Msg("starting event bus")
	go bus.loop()
	return nil
}

// Stop delivers the events already queued, then stops the loop.
func (bus *InMemory) Stop() error {
	bus.cancel()

	select {
	case <-bus.done:
		bus.log.Info().Msg("event bus stopped")
		return nil
	case <-time.After(StopTimeout):
		bus.log.Warn().Msg("event bus stop timeout")
		return errors.New("timeout waiting for event bus to stop")
	}
}

func (bus *InMemory) loop() {
	defer close(bus.done)

	for {
		select {
		case event := <-bus.events:
			bus.dispatch(event)
		case <-bus.ctx.Done():
			bus.drain()
			return
		}
	}
}

func (bus *InMemory) drain() {
	for {
		select {
		case event := <-bus.events:
			bus.dispatch(event)
		default:
			return
		}
	}
}

func (bus *InMemory) dispatch(event domain.Event) {
	bus.mu.RLock()
	handlers := append([]out.EventHandler(nil), bus.handlers...)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}

		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), HandlerTimeout)
		err := h.Handle(ctx, event)
		cancel()

		log := bus.log.With().
			Str("event_id", event.ID).
			Str(logger.FieldEvent, string(event.Type)).
			Str(logger.FieldHandler, fmt.Sprintf("%T", h)).
			Dur(logger.FieldDuration, time.Since(start)).
			Logger()
		if err != nil {
			log.Error().Err(err).Msg("error handling event")
			continue
		}
		log.Debug().Msg("event handled")
		bus.count(func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsProcessed }, event.Type)
	}
}

func (bus *InMemory) count(pick func(*telemetry.Metrics) metric.Int64Counter, eventType domain.EventType) {
	bus.mu.RLock()
	m := bus.metrics
	bus.mu.RUnlock()
	if m == nil {
		return
	}
	pick(m).Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("event_type", string(eventType)),
	))
}
