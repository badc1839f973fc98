package repository

import (
	"context"
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Spin defines the interface for data access required by the spin service
type Spin interface {
	GetRouletteByID(ctx context.Context, id int64) (*domain.Roulette, error)

	// UpsertParticipant creates the participant for email or overwrites its name,
	// reporting which branch was taken
	UpsertParticipant(ctx context.Context, email, name string, now time.Time) (*domain.Participant, domain.UpsertOutcome, error)
	GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error)

	// Transaction support
	BeginSpinTx(ctx context.Context) (SpinTx, error)
}
