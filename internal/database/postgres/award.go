package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// GetAwardByID retrieves an award by id, or nil when absent
func (r *RouletteRepository) GetAwardByID(ctx context.Context, id int64) (*domain.Award, error) {
	a, err := scanAward(r.db.QueryRow(ctx, `SELECT `+awardColumns+` FROM awards WHERE award_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAward, err)
	}
	return &a, nil
}

// CreateAward inserts an award and fills in its id and timestamps
func (r *RouletteRepository) CreateAward(ctx context.Context, a *domain.Award) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO awards (roulette_id, name, description, image, min_spins, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING award_id, created_at, updated_at`,
		a.RouletteID, a.Name, a.Description, a.Image, a.MinSpins, a.Active,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRouletteNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateAward, err)
	}
	return nil
}

// UpdateAward saves an award's editable fields. The owning roulette never changes.
func (r *RouletteRepository) UpdateAward(ctx context.Context, a *domain.Award) error {
	err := r.db.QueryRow(ctx, `
		UPDATE awards SET name = $2, description = $3, image = $4, min_spins = $5, active = $6,
			updated_at = NOW()
		WHERE award_id = $1
		RETURNING roulette_id, created_at, updated_at`,
		a.ID, a.Name, a.Description, a.Image, a.MinSpins, a.Active,
	).Scan(&a.RouletteID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAwardNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAward, err)
	}
	return nil
}

// ListWinners returns the award grants of a roulette, newest first
func (r *RouletteRepository) ListWinners(ctx context.Context, rouletteID int64) ([]domain.Winner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pa.participant_award_id, p.name, p.email, a.award_id, a.name, pa.created_at
		FROM participant_awards pa
		JOIN awards a ON a.award_id = pa.award_id
		JOIN participants p ON p.participant_id = pa.participant_id
		WHERE a.roulette_id = $1
		ORDER BY pa.created_at DESC, pa.participant_award_id DESC`, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWinners, err)
	}
	defer rows.Close()

	winners := []domain.Winner{}
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.ParticipantAwardID, &w.ParticipantName, &w.ParticipantEmail,
			&w.AwardID, &w.AwardName, &w.WonAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWinners, err)
		}
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWinners, err)
	}
	return winners, nil
}
