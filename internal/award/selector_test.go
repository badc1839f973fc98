package award

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func mkAward(id int64, minSpins int, active bool, created time.Time) domain.Award {
	return domain.Award{
		ID:         id,
		RouletteID: 1,
		Name:       "award",
		MinSpins:   minSpins,
		Active:     active,
		CreatedAt:  created,
	}
}

func TestSelect(t *testing.T) {
	awards := []domain.Award{
		mkAward(1, 10, true, t0),
		mkAward(2, 3, true, t0),
		mkAward(3, 1, false, t0),
	}

	tests := []struct {
		name    string
		counter int
		wantID  int64
		wantNil bool
	}{
		{"below every threshold", 0, 0, true},
		{"inactive award is ignored", 1, 0, true},
		{"exact threshold", 3, 2, false},
		{"lowest qualifying wins", 10, 2, false},
		{"far above thresholds", 100, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.counter, awards)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSelect_NoAwards(t *testing.T) {
	assert.Nil(t, Select(5, nil))
	assert.Nil(t, Select(5, []domain.Award{mkAward(1, 0, false, t0)}))
}

func TestSelect_TieBreak(t *testing.T) {
	t.Run("earlier creation wins", func(t *testing.T) {
		awards := []domain.Award{
			mkAward(1, 3, true, t0.Add(time.Hour)),
			mkAward(2, 3, true, t0),
		}
		got := Select(3, awards)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("lower id wins on equal creation", func(t *testing.T) {
		awards := []domain.Award{
			mkAward(9, 3, true, t0),
			mkAward(4, 3, true, t0),
		}
		got := Select(3, awards)
		require.NotNil(t, got)
		assert.Equal(t, int64(4), got.ID)
	})
}

func TestSelect_Monotonic(t *testing.T) {
	awards := []domain.Award{
		mkAward(1, 5, true, t0),
		mkAward(2, 2, true, t0),
		mkAward(3, 8, true, t0),
	}

	var granted *domain.Award
	for counter := 0; counter <= 20; counter++ {
		got := Select(counter, awards)
		if granted != nil {
			require.NotNil(t, got, "counter %d lost a grant", counter)
			assert.Equal(t, granted.ID, got.ID)
		}
		if got != nil {
			granted = got
		}
	}
	require.NotNil(t, granted)
	assert.Equal(t, int64(2), granted.ID)
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	awards := []domain.Award{
		mkAward(1, 10, true, t0),
		mkAward(2, 3, true, t0),
	}
	_ = Select(10, awards)
	assert.Equal(t, int64(1), awards[0].ID)
	assert.Equal(t, int64(2), awards[1].ID)
}

func TestSummaries(t *testing.T) {
	awards := []domain.Award{
		mkAward(1, 10, true, t0),
		mkAward(2, 3, true, t0),
		mkAward(3, 1, false, t0),
	}
	got := Summaries(awards)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}
