package eventlog

import (
	"context"
	"time"
)

// Event represents a logged campaign event
type Event struct {
	ID            int64                  `json:"id"`
	EventType     string                 `json:"event_type"`
	RouletteID    *int64                 `json:"roulette_id,omitempty"`
	ParticipantID *int64                 `json:"participant_id,omitempty"`
	Payload       map[string]interface{} `json:"payload"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	RouletteID    *int64
	ParticipantID *int64
	EventType     *string
	Since         *time.Time
	Until         *time.Time
	Limit         int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, evt Event) error

	// GetEvents retrieves events newest first based on filter criteria
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
