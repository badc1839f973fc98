package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

const rouletteColumns = `roulette_id, name, slug, subtitle, bottom_text, logo, bg_image, wrong_icon,
	current_spins, message_no_spins, message_lose, message_win,
	color_spin_1, color_spin_2, color_spin_3, color_spin_4,
	cooldown_hours::text, extra_spin_quota, spin_counter, created_at, updated_at`

const awardColumns = `award_id, roulette_id, name, description, image, min_spins, active, created_at, updated_at`

// awardOrder is the deterministic award order: threshold, then creation, then id
const awardOrder = `ORDER BY min_spins ASC, created_at ASC, award_id ASC`

func scanRoulette(row pgx.Row) (*domain.Roulette, error) {
	var r domain.Roulette
	var cooldown string
	err := row.Scan(
		&r.ID, &r.Name, &r.Slug, &r.Subtitle, &r.BottomText, &r.Logo, &r.BgImage, &r.WrongIcon,
		&r.CurrentSpins, &r.MessageNoSpins, &r.MessageLose, &r.MessageWin,
		&r.ColorSpin1, &r.ColorSpin2, &r.ColorSpin3, &r.ColorSpin4,
		&cooldown, &r.ExtraSpinQuota, &r.SpinCounter, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if r.CooldownHours, err = parseDecimal(cooldown); err != nil {
		return nil, err
	}
	return &r, nil
}

func scanAward(row pgx.Row) (domain.Award, error) {
	var a domain.Award
	err := row.Scan(&a.ID, &a.RouletteID, &a.Name, &a.Description, &a.Image,
		&a.MinSpins, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// getRoulette loads one roulette matching a single-column predicate (shared helper)
func getRoulette(ctx context.Context, q DBTX, predicate string, arg any, forUpdate bool) (*domain.Roulette, error) {
	sql := `SELECT ` + rouletteColumns + ` FROM roulettes WHERE ` + predicate
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	r, err := scanRoulette(q.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		op := ErrMsgFailedToGetRoulette
		if forUpdate {
			op = ErrMsgFailedToLockRoulette
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// listAwards returns every award of a roulette in award order (shared helper)
func listAwards(ctx context.Context, q DBTX, rouletteID int64) ([]domain.Award, error) {
	rows, err := q.Query(ctx, `SELECT `+awardColumns+` FROM awards WHERE roulette_id = $1 `+awardOrder, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAwards, err)
	}
	defer rows.Close()

	awards := []domain.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAwards, err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAwards, err)
	}
	return awards, nil
}

// getSpinHistory returns a participant's spins on one roulette, most recent first (shared helper)
func getSpinHistory(ctx context.Context, q DBTX, participantID, rouletteID int64) ([]domain.Spin, error) {
	rows, err := q.Query(ctx, `
		SELECT spin_id, participant_id, roulette_id, is_extra_spin, created_at
		FROM participant_spins
		WHERE participant_id = $1 AND roulette_id = $2
		ORDER BY created_at DESC, spin_id DESC`, participantID, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSpinHistory, err)
	}
	defer rows.Close()

	var spins []domain.Spin
	for rows.Next() {
		var s domain.Spin
		if err := rows.Scan(&s.ID, &s.ParticipantID, &s.RouletteID, &s.IsExtra, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSpinHistory, err)
		}
		spins = append(spins, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSpinHistory, err)
	}
	return spins, nil
}
