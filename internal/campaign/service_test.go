package campaign

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/mocks"
)

func rouletteInput(name string) RouletteInput {
	return RouletteInput{
		Name:           name,
		CooldownHours:  decimal.RequireFromString("1.5"),
		ExtraSpinQuota: 2,
	}
}

func setup(t *testing.T) (Service, *mocks.MockRepositoryCampaign, *[]event.Event) {
	repo := mocks.NewMockRepositoryCampaign(t)
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.RouletteUpdated, func(ctx context.Context, evt event.Event) error {
		published = append(published, evt)
		return nil
	})
	return NewService(repo, bus), repo, &published
}

func TestCreateRoulette(t *testing.T) {
	t.Run("slug derived from name", func(t *testing.T) {
		svc, repo, published := setup(t)
		repo.On("SlugExists", mock.Anything, "test-roulette", int64(0)).Return(false, nil)
		repo.On("CreateRoulette", mock.Anything, mock.AnythingOfType("*domain.Roulette")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Roulette).ID = 11
			}).Return(nil)

		r, err := svc.CreateRoulette(context.Background(), rouletteInput("Test Roulette"))
		require.NoError(t, err)
		assert.Equal(t, int64(11), r.ID)
		assert.Equal(t, "test-roulette", r.Slug)
		assert.Equal(t, 0, r.SpinCounter)
		assert.True(t, decimal.RequireFromString("1.5").Equal(r.CooldownHours))
		require.Len(t, *published, 1)
	})

	t.Run("taken slug gets a suffix", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("SlugExists", mock.Anything, "summer", int64(0)).Return(true, nil)
		repo.On("SlugExists", mock.Anything, "summer-2", int64(0)).Return(true, nil)
		repo.On("SlugExists", mock.Anything, "summer-3", int64(0)).Return(false, nil)
		repo.On("CreateRoulette", mock.Anything, mock.Anything).Return(nil)

		r, err := svc.CreateRoulette(context.Background(), rouletteInput("Summer"))
		require.NoError(t, err)
		assert.Equal(t, "summer-3", r.Slug)
	})

	t.Run("explicit slug is used as given", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("SlugExists", mock.Anything, "promo-2024", int64(0)).Return(false, nil)
		repo.On("CreateRoulette", mock.Anything, mock.Anything).Return(nil)

		in := rouletteInput("Summer Sale")
		in.Slug = "Promo 2024"
		r, err := svc.CreateRoulette(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "promo-2024", r.Slug)
	})

	t.Run("taken explicit slug is a conflict", func(t *testing.T) {
		svc, repo, published := setup(t)
		repo.On("SlugExists", mock.Anything, "summer", int64(0)).Return(true, nil).Once()

		in := rouletteInput("Summer Sale")
		in.Slug = "summer"
		_, err := svc.CreateRoulette(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
		assert.Empty(t, *published)
		repo.AssertNotCalled(t, "CreateRoulette", mock.Anything, mock.Anything)
	})

	t.Run("cooldown at column precision is accepted", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("SlugExists", mock.Anything, "a", int64(0)).Return(false, nil)
		repo.On("CreateRoulette", mock.Anything, mock.Anything).Return(nil)

		r, err := svc.CreateRoulette(context.Background(), RouletteInput{Name: "A", CooldownHours: decimal.RequireFromString("0.00300")})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.003").Equal(r.CooldownHours))
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			in   RouletteInput
		}{
			{"missing name", rouletteInput("")},
			{"punctuation only name", rouletteInput("!!!")},
			{"negative quota", RouletteInput{Name: "A", ExtraSpinQuota: -1}},
			{"negative cooldown", RouletteInput{Name: "A", CooldownHours: decimal.NewFromInt(-1)}},
			{"cooldown below column precision", RouletteInput{Name: "A", CooldownHours: decimal.RequireFromString("0.00004")}},
			{"cooldown above column range", RouletteInput{Name: "A", CooldownHours: decimal.NewFromInt(1000000)}},
			{"slug without letters or digits", RouletteInput{Name: "A", Slug: "---"}},
			{"color longer than column", RouletteInput{Name: "A", ColorSpin1: "#0123456789abcdef01234"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _, published := setup(t)
				_, err := svc.CreateRoulette(context.Background(), tt.in)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Empty(t, *published)
			})
		}
	})
}

func TestUpdateRoulette(t *testing.T) {
	existing := func() *domain.Roulette {
		return &domain.Roulette{ID: 5, Name: "Test Roulette", Slug: "test-roulette", SpinCounter: 9}
	}

	t.Run("rename moves the slug and keeps the counter", func(t *testing.T) {
		svc, repo, published := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(existing(), nil)
		repo.On("SlugExists", mock.Anything, "test-roulette-2", int64(5)).Return(false, nil)
		repo.On("UpdateRoulette", mock.Anything, mock.MatchedBy(func(r *domain.Roulette) bool {
			return r.Slug == "test-roulette-2" && r.SpinCounter == 9
		})).Return(nil)

		r, err := svc.UpdateRoulette(context.Background(), 5, rouletteInput("Test Roulette 2"))
		require.NoError(t, err)
		assert.Equal(t, "test-roulette-2", r.Slug)
		assert.Equal(t, 2, r.ExtraSpinQuota)
		require.Len(t, *published, 1)
	})

	t.Run("same name keeps the slug", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(existing(), nil)
		repo.On("UpdateRoulette", mock.Anything, mock.Anything).Return(nil)

		r, err := svc.UpdateRoulette(context.Background(), 5, rouletteInput("Test Roulette"))
		require.NoError(t, err)
		assert.Equal(t, "test-roulette", r.Slug)
		repo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("explicit slug overrides the name", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(existing(), nil)
		repo.On("SlugExists", mock.Anything, "promo-2024", int64(5)).Return(false, nil)
		repo.On("UpdateRoulette", mock.Anything, mock.Anything).Return(nil)

		in := rouletteInput("Renamed Roulette")
		in.Slug = "promo-2024"
		r, err := svc.UpdateRoulette(context.Background(), 5, in)
		require.NoError(t, err)
		assert.Equal(t, "promo-2024", r.Slug)
		assert.Equal(t, "Renamed Roulette", r.Name)
	})

	t.Run("explicit slug held by another roulette is a conflict", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(existing(), nil)
		repo.On("SlugExists", mock.Anything, "winter", int64(5)).Return(true, nil).Once()

		in := rouletteInput("Test Roulette")
		in.Slug = "winter"
		_, err := svc.UpdateRoulette(context.Background(), 5, in)
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
		repo.AssertNotCalled(t, "UpdateRoulette", mock.Anything, mock.Anything)
	})

	t.Run("unknown roulette", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := svc.UpdateRoulette(context.Background(), 99, rouletteInput("X"))
		assert.ErrorIs(t, err, domain.ErrRouletteNotFound)
		assert.True(t, IsNotFound(err))
	})
}

func TestCreateAward(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		svc, repo, published := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(&domain.Roulette{ID: 5, Slug: "s"}, nil)
		repo.On("CreateAward", mock.Anything, mock.AnythingOfType("*domain.Award")).Return(nil)

		a, err := svc.CreateAward(context.Background(), 5, AwardInput{Name: "Mug", MinSpins: 3})
		require.NoError(t, err)
		assert.True(t, a.Active)
		assert.Equal(t, int64(5), a.RouletteID)
		assert.Equal(t, 3, a.MinSpins)
		require.Len(t, *published, 1)
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.CreateAward(context.Background(), 5, AwardInput{Name: "Mug", MinSpins: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown roulette", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(nil, nil)
		_, err := svc.CreateAward(context.Background(), 5, AwardInput{Name: "Mug", MinSpins: 1})
		assert.ErrorIs(t, err, domain.ErrRouletteNotFound)
	})
}

func TestUpdateAward(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetAwardByID", mock.Anything, int64(3)).Return(&domain.Award{ID: 3, RouletteID: 5, Name: "Mug", MinSpins: 3, Active: true}, nil)
		repo.On("UpdateAward", mock.Anything, mock.MatchedBy(func(a *domain.Award) bool { return !a.Active })).Return(nil)

		inactive := false
		a, err := svc.UpdateAward(context.Background(), 3, AwardInput{Name: "Mug", MinSpins: 4, Active: &inactive})
		require.NoError(t, err)
		assert.False(t, a.Active)
		assert.Equal(t, 4, a.MinSpins)
	})

	t.Run("omitted active is kept", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetAwardByID", mock.Anything, int64(3)).Return(&domain.Award{ID: 3, RouletteID: 5, Name: "Mug", Active: true}, nil)
		repo.On("UpdateAward", mock.Anything, mock.Anything).Return(nil)

		a, err := svc.UpdateAward(context.Background(), 3, AwardInput{Name: "Cup"})
		require.NoError(t, err)
		assert.True(t, a.Active)
		assert.Equal(t, "Cup", a.Name)
	})

	t.Run("unknown award", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetAwardByID", mock.Anything, int64(3)).Return(nil, nil)
		_, err := svc.UpdateAward(context.Background(), 3, AwardInput{Name: "Cup"})
		assert.ErrorIs(t, err, domain.ErrAwardNotFound)
	})
}

func TestListWinners(t *testing.T) {
	t.Run("empty list is not nil", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(&domain.Roulette{ID: 5}, nil)
		repo.On("ListWinners", mock.Anything, int64(5)).Return(nil, nil)

		winners, err := svc.ListWinners(context.Background(), 5)
		require.NoError(t, err)
		assert.NotNil(t, winners)
		assert.Empty(t, winners)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _ := setup(t)
		repo.On("GetRouletteByID", mock.Anything, int64(5)).Return(&domain.Roulette{ID: 5}, nil)
		repo.On("ListWinners", mock.Anything, int64(5)).Return(nil, errors.New("boom"))

		_, err := svc.ListWinners(context.Background(), 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedToListWinners)
	})
}
