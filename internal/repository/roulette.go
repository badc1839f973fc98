package repository

import (
	"context"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Roulette defines the read access used by the public roulette read model.
// Lookups return (nil, nil) when nothing matches.
type Roulette interface {
	GetRouletteByID(ctx context.Context, id int64) (*domain.Roulette, error)
	GetRouletteBySlug(ctx context.Context, slug string) (*domain.Roulette, error)
	ListRoulettes(ctx context.Context) ([]domain.Roulette, error)
	// ListAwards returns every award of the roulette, active or not
	ListAwards(ctx context.Context, rouletteID int64) ([]domain.Award, error)
}

// Campaign defines the data access required by the campaign admin service
type Campaign interface {
	Roulette

	CreateRoulette(ctx context.Context, r *domain.Roulette) error
	// UpdateRoulette saves configuration fields. It never writes spin_counter.
	UpdateRoulette(ctx context.Context, r *domain.Roulette) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	GetAwardByID(ctx context.Context, id int64) (*domain.Award, error)
	CreateAward(ctx context.Context, a *domain.Award) error
	UpdateAward(ctx context.Context, a *domain.Award) error

	ListWinners(ctx context.Context, rouletteID int64) ([]domain.Winner, error)
}
