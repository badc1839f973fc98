// Package award decides which award, if any, a roulette's spin counter unlocks.
package award

import (
	"sort"

	"github.com/samber/lo"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Select returns the first active award, in threshold order, whose MinSpins is met by counter.
// It returns nil when nothing qualifies. The input slice is not modified.
func Select(counter int, awards []domain.Award) *domain.Award {
	for _, a := range Ordered(awards) {
		if a.MinSpins <= counter {
			winner := a
			return &winner
		}
	}
	return nil
}

// Ordered returns the active awards sorted by (MinSpins, CreatedAt, ID).
// This is the iteration order for selection and for the public read model.
func Ordered(awards []domain.Award) []domain.Award {
	active := lo.Filter(awards, func(a domain.Award, _ int) bool {
		return a.Active
	})
	sort.SliceStable(active, func(i, j int) bool {
		return Less(active[i], active[j])
	})
	return active
}

// Less reports whether a sorts before b in award order
func Less(a, b domain.Award) bool {
	if a.MinSpins != b.MinSpins {
		return a.MinSpins < b.MinSpins
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// Summaries maps active awards, in award order, to their public shape
func Summaries(awards []domain.Award) []domain.AwardSummary {
	return lo.Map(Ordered(awards), func(a domain.Award, _ int) domain.AwardSummary {
		return a.Summary()
	})
}
