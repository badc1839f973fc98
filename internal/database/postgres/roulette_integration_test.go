package postgres

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

func TestRouletteRepository_CreateAndGet(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRouletteRepository(testPool)

	r := seedRoulette(t, "0.003", 2)
	assert.NotZero(t, r.ID)

	got, err := repo.GetRouletteByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.Slug, got.Slug)
	assert.True(t, decimal.RequireFromString("0.003").Equal(got.CooldownHours))
	assert.Equal(t, 2, got.ExtraSpinQuota)
	assert.Equal(t, 0, got.SpinCounter)

	bySlug, err := repo.GetRouletteBySlug(ctx, r.Slug)
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, r.ID, bySlug.ID)
}

func TestRouletteRepository_Absent(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRouletteRepository(testPool)

	got, err := repo.GetRouletteByID(ctx, 999999)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetRouletteBySlug(ctx, "does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRouletteRepository_SlugConflict(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRouletteRepository(testPool)

	r := seedRoulette(t, "1", 0)
	dup := &domain.Roulette{Name: "dup", Slug: r.Slug, CooldownHours: decimal.NewFromInt(1)}
	err := repo.CreateRoulette(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrSlugTaken)

	exists, err := repo.SlugExists(ctx, r.Slug, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, r.Slug, r.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRouletteRepository_UpdateKeepsCounter(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRouletteRepository(testPool)

	r := seedRoulette(t, "1", 0)
	_, err := testPool.Exec(ctx, `UPDATE roulettes SET spin_counter = 5 WHERE roulette_id = $1`, r.ID)
	require.NoError(t, err)

	r.Name = "renamed"
	r.SpinCounter = 0
	r.CooldownHours = decimal.RequireFromString("2.5")
	require.NoError(t, repo.UpdateRoulette(ctx, r))
	assert.Equal(t, 5, r.SpinCounter)

	got, err := repo.GetRouletteByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 5, got.SpinCounter)
	assert.True(t, decimal.RequireFromString("2.5").Equal(got.CooldownHours))

	missing := &domain.Roulette{ID: 999999, Name: "x", Slug: "missing-x", CooldownHours: decimal.NewFromInt(1)}
	assert.ErrorIs(t, repo.UpdateRoulette(ctx, missing), domain.ErrRouletteNotFound)
}

func TestRouletteRepository_Awards(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRouletteRepository(testPool)
	r := seedRoulette(t, "1", 0)

	high := &domain.Award{RouletteID: r.ID, Name: "high", MinSpins: 10, Active: true}
	low := &domain.Award{RouletteID: r.ID, Name: "low", MinSpins: 3, Active: true}
	hidden := &domain.Award{RouletteID: r.ID, Name: "hidden", MinSpins: 1, Active: false}
	for _, a := range []*domain.Award{high, low, hidden} {
		require.NoError(t, repo.CreateAward(ctx, a))
	}

	awards, err := repo.ListAwards(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, awards, 3)
	assert.Equal(t, "hidden", awards[0].Name)
	assert.Equal(t, "low", awards[1].Name)
	assert.Equal(t, "high", awards[2].Name)

	low.MinSpins = 20
	require.NoError(t, repo.UpdateAward(ctx, low))
	got, err := repo.GetAwardByID(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.MinSpins)

	err = repo.CreateAward(ctx, &domain.Award{RouletteID: 999999, Name: "orphan"})
	assert.ErrorIs(t, err, domain.ErrRouletteNotFound)

	err = repo.UpdateAward(ctx, &domain.Award{ID: 999999, Name: "ghost"})
	assert.ErrorIs(t, err, domain.ErrAwardNotFound)
}
