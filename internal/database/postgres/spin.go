package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// SpinRepository implements the spin repository for PostgreSQL
type SpinRepository struct {
	db *pgxpool.Pool
}

// NewSpinRepository creates a new SpinRepository
func NewSpinRepository(db *pgxpool.Pool) *SpinRepository {
	return &SpinRepository{db: db}
}

// GetRouletteByID retrieves a roulette by id, or nil when absent
func (r *SpinRepository) GetRouletteByID(ctx context.Context, id int64) (*domain.Roulette, error) {
	return getRoulette(ctx, r.db, "roulette_id = $1", id, false)
}

// UpsertParticipant creates the participant or overwrites its name in a single statement.
// xmax is zero only on rows produced by the INSERT branch.
func (r *SpinRepository) UpsertParticipant(ctx context.Context, email, name string, now time.Time) (*domain.Participant, domain.UpsertOutcome, error) {
	var p domain.Participant
	var inserted bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO participants (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
		RETURNING participant_id, name, email, created_at, updated_at, (xmax = 0)`,
		name, email, now,
	).Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt, &p.UpdatedAt, &inserted)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", ErrMsgFailedToUpsertParticipant, err)
	}

	outcome := domain.UpsertUpdated
	if inserted {
		outcome = domain.UpsertCreated
	}
	return &p, outcome, nil
}

// GetSpinHistory returns the participant's spins on a roulette, most recent first
func (r *SpinRepository) GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error) {
	return getSpinHistory(ctx, r.db, participantID, rouletteID)
}

// BeginSpinTx starts a transaction for one spin
func (r *SpinRepository) BeginSpinTx(ctx context.Context) (repository.SpinTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &spinTx{tx: tx}, nil
}

// spinTx implements repository.SpinTx on a pgx transaction
type spinTx struct {
	tx pgx.Tx
}

func (t *spinTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *spinTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *spinTx) LockRoulette(ctx context.Context, rouletteID int64) (*domain.Roulette, error) {
	return getRoulette(ctx, t.tx, "roulette_id = $1", rouletteID, true)
}

func (t *spinTx) GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error) {
	return getSpinHistory(ctx, t.tx, participantID, rouletteID)
}

func (t *spinTx) InsertSpin(ctx context.Context, spin *domain.Spin) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO participant_spins (participant_id, roulette_id, is_extra_spin, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING spin_id`,
		spin.ParticipantID, spin.RouletteID, spin.IsExtra, spin.CreatedAt,
	).Scan(&spin.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSpin, err)
	}
	return nil
}

func (t *spinTx) ListAwards(ctx context.Context, rouletteID int64) ([]domain.Award, error) {
	return listAwards(ctx, t.tx, rouletteID)
}

func (t *spinTx) InsertParticipantAward(ctx context.Context, pa *domain.ParticipantAward) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO participant_awards (participant_id, award_id, spin_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING participant_award_id`,
		pa.ParticipantID, pa.AwardID, pa.SpinID, pa.CreatedAt,
	).Scan(&pa.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAwardGrant, err)
	}
	return nil
}

func (t *spinTx) UpdateSpinCounter(ctx context.Context, rouletteID int64, counter int) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE roulettes SET spin_counter = $2, updated_at = NOW() WHERE roulette_id = $1`,
		rouletteID, counter)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCounter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRouletteNotFound
	}
	return nil
}
