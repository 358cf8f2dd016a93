package metrics

import (
	"context"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// EventMetricsCollector subscribes to spin lifecycle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinStarted,
		event.SpinSettled,
		event.LevelUp,
		event.AutoSpinStopped,
		event.SpinRejected,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Decode failures are
// logged and swallowed; metrics must never break the spin pipeline.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SpinStarted:
		payload, err := event.DecodePayload[domain.SpinStartedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SpinStakeTotal.Add(float64(payload.Stake))

	case event.SpinSettled:
		payload, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SpinsTotal.WithLabelValues(string(payload.Outcome.Tier)).Inc()
		SpinPayoutTotal.Add(float64(payload.Outcome.TotalPayout))

	case event.LevelUp:
		LevelUpsTotal.Inc()

	case event.AutoSpinStopped:
		payload, err := event.DecodePayload[domain.AutoSpinStoppedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		AutoSpinStopsTotal.WithLabelValues(string(payload.Reason)).Inc()

	case event.SpinRejected:
		payload, err := event.DecodePayload[domain.SpinRejectedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		SpinRejections.WithLabelValues(string(payload.Reason)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
