package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
)

// Service keeps an audit trail of campaign events
type Service interface {
	// Subscribe registers the event logger to listen to all campaign events
	Subscribe(bus event.Bus) error

	// ListEvents returns logged events newest first
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinRecorded,
		event.SpinDenied,
		event.AwardGranted,
		event.ParticipantUpserted,
		event.RouletteUpdated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent flattens the payload to JSON object form and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	entry := Event{
		EventType:     string(evt.Type),
		RouletteID:    idField(payload, PayloadKeyRouletteID),
		ParticipantID: idField(payload, PayloadKeyParticipantID),
		Payload:       payload,
		Metadata:      evt.Metadata,
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldRouletteID, entry.RouletteID)
	return nil
}

func (s *service) ListEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// idField reads a numeric id from a decoded payload. JSON numbers arrive as float64.
func idField(payload map[string]interface{}, key string) *int64 {
	var id int64
	switch v := payload[key].(type) {
	case float64:
		id = int64(v)
	case int64:
		id = v
	case int:
		id = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		id = n
	default:
		return nil
	}
	if id <= 0 {
		return nil
	}
	return &id
}
