package domain

import (
	"strings"
	"time"
)

// Participant is a campaign player identified by email across every roulette
type Participant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertOutcome tags which branch a participant upsert took
type UpsertOutcome string

const (
	UpsertCreated UpsertOutcome = "created"
	UpsertUpdated UpsertOutcome = "updated"
)

// NormalizeEmail trims and lower-cases an email so it can be used as the natural key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParticipantAward records that a participant won an award with a given spin
type ParticipantAward struct {
	ID            int64     `json:"id"`
	ParticipantID int64     `json:"participant_id"`
	AwardID       int64     `json:"award_id"`
	SpinID        int64     `json:"spin_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Winner is a participant award joined with participant and award details (admin listing)
type Winner struct {
	ParticipantAwardID int64     `json:"id"`
	ParticipantName    string    `json:"participant_name"`
	ParticipantEmail   string    `json:"participant_email"`
	AwardID            int64     `json:"award_id"`
	AwardName          string    `json:"award_name"`
	WonAt              time.Time `json:"won_at"`
}
