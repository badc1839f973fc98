package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// RouletteRepository implements the roulette and campaign repositories for PostgreSQL
type RouletteRepository struct {
	db *pgxpool.Pool
}

// NewRouletteRepository creates a new RouletteRepository
func NewRouletteRepository(db *pgxpool.Pool) *RouletteRepository {
	return &RouletteRepository{db: db}
}

// GetRouletteByID retrieves a roulette by id, or nil when absent
func (r *RouletteRepository) GetRouletteByID(ctx context.Context, id int64) (*domain.Roulette, error) {
	return getRoulette(ctx, r.db, "roulette_id = $1", id, false)
}

// GetRouletteBySlug retrieves a roulette by slug, or nil when absent
func (r *RouletteRepository) GetRouletteBySlug(ctx context.Context, slug string) (*domain.Roulette, error) {
	return getRoulette(ctx, r.db, "slug = $1", slug, false)
}

// ListRoulettes returns all roulettes ordered by id
func (r *RouletteRepository) ListRoulettes(ctx context.Context) ([]domain.Roulette, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rouletteColumns+` FROM roulettes ORDER BY roulette_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
	}
	defer rows.Close()

	roulettes := []domain.Roulette{}
	for rows.Next() {
		rl, err := scanRoulette(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
		}
		roulettes = append(roulettes, *rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
	}
	return roulettes, nil
}

// ListAwards returns every award of the roulette in award order
func (r *RouletteRepository) ListAwards(ctx context.Context, rouletteID int64) ([]domain.Award, error) {
	return listAwards(ctx, r.db, rouletteID)
}

// CreateRoulette inserts a roulette and fills in its id and timestamps
func (r *RouletteRepository) CreateRoulette(ctx context.Context, rl *domain.Roulette) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO roulettes (
			name, slug, subtitle, bottom_text, logo, bg_image, wrong_icon,
			current_spins, message_no_spins, message_lose, message_win,
			color_spin_1, color_spin_2, color_spin_3, color_spin_4,
			cooldown_hours, extra_spin_quota, spin_counter
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16::numeric, $17, $18)
		RETURNING roulette_id, created_at, updated_at`,
		rl.Name, rl.Slug, rl.Subtitle, rl.BottomText, rl.Logo, rl.BgImage, rl.WrongIcon,
		rl.CurrentSpins, rl.MessageNoSpins, rl.MessageLose, rl.MessageWin,
		rl.ColorSpin1, rl.ColorSpin2, rl.ColorSpin3, rl.ColorSpin4,
		rl.CooldownHours.String(), rl.ExtraSpinQuota, rl.SpinCounter,
	).Scan(&rl.ID, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateRoulette, err)
	}
	return nil
}

// UpdateRoulette saves configuration fields, leaving spin_counter untouched
func (r *RouletteRepository) UpdateRoulette(ctx context.Context, rl *domain.Roulette) error {
	err := r.db.QueryRow(ctx, `
		UPDATE roulettes SET
			name = $2, slug = $3, subtitle = $4, bottom_text = $5, logo = $6, bg_image = $7,
			wrong_icon = $8, current_spins = $9, message_no_spins = $10, message_lose = $11,
			message_win = $12, color_spin_1 = $13, color_spin_2 = $14, color_spin_3 = $15,
			color_spin_4 = $16, cooldown_hours = $17::numeric, extra_spin_quota = $18,
			updated_at = NOW()
		WHERE roulette_id = $1
		RETURNING spin_counter, updated_at`,
		rl.ID, rl.Name, rl.Slug, rl.Subtitle, rl.BottomText, rl.Logo, rl.BgImage,
		rl.WrongIcon, rl.CurrentSpins, rl.MessageNoSpins, rl.MessageLose,
		rl.MessageWin, rl.ColorSpin1, rl.ColorSpin2, rl.ColorSpin3,
		rl.ColorSpin4, rl.CooldownHours.String(), rl.ExtraSpinQuota,
	).Scan(&rl.SpinCounter, &rl.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRouletteNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRoulette, err)
	}
	return nil
}

// SlugExists reports whether another roulette already uses slug
func (r *RouletteRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM roulettes WHERE slug = $1 AND roulette_id <> $2)`,
		slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckSlug, err)
	}
	return exists, nil
}
