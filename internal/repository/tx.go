package repository

import (
	"context"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SpinTx extends Tx with the operations of one spin transaction.
// All of a spin's writes (spin record, counter, award grant) go through a single SpinTx.
type SpinTx interface {
	Tx // Commit, Rollback

	// LockRoulette loads the roulette row with a row lock held until commit.
	// Returns (nil, nil) when the roulette does not exist.
	LockRoulette(ctx context.Context, rouletteID int64) (*domain.Roulette, error)

	GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error)
	InsertSpin(ctx context.Context, spin *domain.Spin) error
	ListAwards(ctx context.Context, rouletteID int64) ([]domain.Award, error)
	InsertParticipantAward(ctx context.Context, pa *domain.ParticipantAward) error
	UpdateSpinCounter(ctx context.Context, rouletteID int64, counter int) error
}
