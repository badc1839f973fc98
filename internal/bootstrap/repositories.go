package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RouletteCampaign_Go/internal/database/postgres"
	"github.com/osse101/RouletteCampaign_Go/internal/eventlog"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Roulette repository.Roulette
	Campaign repository.Campaign
	Spin     repository.Spin
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
// The roulette read model and the admin service share one postgres repository.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	roulettes := postgres.NewRouletteRepository(dbPool)
	return &Repositories{
		Roulette: roulettes,
		Campaign: roulettes,
		Spin:     postgres.NewSpinRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
