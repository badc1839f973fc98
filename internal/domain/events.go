package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.recorded")
const (
	// EventTypeSpinRecorded is published after a spin transaction commits
	EventTypeSpinRecorded = "spin.recorded"

	// EventTypeSpinDenied is published when the rate limiter rejects a spin
	EventTypeSpinDenied = "spin.denied"

	// EventTypeAwardGranted is published when a spin crosses an award threshold
	EventTypeAwardGranted = "award.granted"

	// EventTypeParticipantUpserted is published on every validate/spin participant upsert
	EventTypeParticipantUpserted = "participant.upserted"

	// EventTypeRouletteUpdated is published when an admin edits a roulette or its awards
	EventTypeRouletteUpdated = "roulette.updated"
)

// SpinRecordedPayload is the payload for EventTypeSpinRecorded
type SpinRecordedPayload struct {
	SpinID        int64    `json:"spin_id"`
	RouletteID    int64    `json:"roulette_id"`
	ParticipantID int64    `json:"participant_id"`
	Kind          SpinKind `json:"kind"`
	Counter       int      `json:"counter"`
	Won           bool     `json:"won"`
	Timestamp     int64    `json:"timestamp"`
}

// SpinDeniedPayload is the payload for EventTypeSpinDenied
type SpinDeniedPayload struct {
	RouletteID    int64    `json:"roulette_id"`
	ParticipantID int64    `json:"participant_id"`
	Kind          SpinKind `json:"kind"`
	Timestamp     int64    `json:"timestamp"`
}

// AwardGrantedPayload is the payload for EventTypeAwardGranted
type AwardGrantedPayload struct {
	ParticipantAwardID int64  `json:"participant_award_id"`
	RouletteID         int64  `json:"roulette_id"`
	RouletteName       string `json:"roulette_name"`
	AwardID            int64  `json:"award_id"`
	AwardName          string `json:"award_name"`
	MinSpins           int    `json:"min_spins"`
	ParticipantName    string `json:"participant_name"`
	ParticipantEmail   string `json:"participant_email"`
	Timestamp          int64  `json:"timestamp"`
}

// ParticipantUpsertedPayload is the payload for EventTypeParticipantUpserted
type ParticipantUpsertedPayload struct {
	ParticipantID int64         `json:"participant_id"`
	Outcome       UpsertOutcome `json:"outcome"`
}

// RouletteUpdatedPayload is the payload for EventTypeRouletteUpdated
type RouletteUpdatedPayload struct {
	RouletteID int64  `json:"roulette_id"`
	Slug       string `json:"slug"`
}
