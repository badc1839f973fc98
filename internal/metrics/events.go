package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinRecorded,
		event.SpinDenied,
		event.AwardGranted,
		event.ParticipantUpserted,
		event.RouletteUpdated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinRecorded:
		var p domain.SpinRecordedPayload
		if p, err = event.DecodePayload[domain.SpinRecordedPayload](evt.Payload); err == nil {
			SpinsRecorded.WithLabelValues(string(p.Kind)).Inc()
			SpinCounter.WithLabelValues(strconv.FormatInt(p.RouletteID, 10)).Set(float64(p.Counter))
		}

	case event.SpinDenied:
		var p domain.SpinDeniedPayload
		if p, err = event.DecodePayload[domain.SpinDeniedPayload](evt.Payload); err == nil {
			SpinsDenied.WithLabelValues(string(p.Kind)).Inc()
		}

	case event.AwardGranted:
		AwardsGranted.Inc()

	case event.ParticipantUpserted:
		var p domain.ParticipantUpsertedPayload
		if p, err = event.DecodePayload[domain.ParticipantUpsertedPayload](evt.Payload); err == nil {
			ParticipantsUpserted.WithLabelValues(string(p.Outcome)).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
