package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Campaign event types
const (
	SpinRecorded        Type = domain.EventTypeSpinRecorded
	SpinDenied          Type = domain.EventTypeSpinDenied
	AwardGranted        Type = domain.EventTypeAwardGranted
	ParticipantUpserted Type = domain.EventTypeParticipantUpserted
	RouletteUpdated     Type = domain.EventTypeRouletteUpdated
)

// Type-safe event constructors

// NewSpinRecordedEvent creates the event published after a spin commits
func NewSpinRecordedEvent(spin *domain.Spin, counter int, won bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinRecorded,
		Payload: domain.SpinRecordedPayload{
			SpinID:        spin.ID,
			RouletteID:    spin.RouletteID,
			ParticipantID: spin.ParticipantID,
			Kind:          spin.Kind(),
			Counter:       counter,
			Won:           won,
			Timestamp:     spin.CreatedAt.Unix(),
		},
	}
}

// NewSpinDeniedEvent creates the event published when eligibility rejects a spin
func NewSpinDeniedEvent(rouletteID, participantID int64, kind domain.SpinKind, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinDenied,
		Payload: domain.SpinDeniedPayload{
			RouletteID:    rouletteID,
			ParticipantID: participantID,
			Kind:          kind,
			Timestamp:     at.Unix(),
		},
	}
}

// NewAwardGrantedEvent creates the event published when a spin wins an award
func NewAwardGrantedEvent(grant *domain.ParticipantAward, roulette *domain.Roulette, award *domain.Award, participant *domain.Participant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AwardGranted,
		Payload: domain.AwardGrantedPayload{
			ParticipantAwardID: grant.ID,
			RouletteID:         roulette.ID,
			RouletteName:       roulette.Name,
			AwardID:            award.ID,
			AwardName:          award.Name,
			MinSpins:           award.MinSpins,
			ParticipantName:    participant.Name,
			ParticipantEmail:   participant.Email,
			Timestamp:          grant.CreatedAt.Unix(),
		},
		Metadata: Metadata{"roulette_id": roulette.ID},
	}
}

// NewParticipantUpsertedEvent creates the event published for every participant upsert
func NewParticipantUpsertedEvent(participantID int64, outcome domain.UpsertOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ParticipantUpserted,
		Payload: domain.ParticipantUpsertedPayload{
			ParticipantID: participantID,
			Outcome:       outcome,
		},
	}
}

// NewRouletteUpdatedEvent creates the event published when a roulette or its awards change
func NewRouletteUpdatedEvent(rouletteID int64, slug string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RouletteUpdated,
		Payload: domain.RouletteUpdatedPayload{
			RouletteID: rouletteID,
			Slug:       slug,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
