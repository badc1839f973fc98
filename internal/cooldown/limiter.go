package cooldown

import (
	"context"
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
)

// Limiter evaluates spin eligibility. It holds no state besides its configuration.
type Limiter struct {
	config Config
}

// NewLimiter creates a new rate limiter
func NewLimiter(config Config) *Limiter {
	return &Limiter{config: config}
}

// Evaluate returns the eligibility for the supplied history, honoring dev mode
func (l *Limiter) Evaluate(ctx context.Context, history []domain.Spin, policy Policy, now time.Time) domain.Eligibility {
	if l.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "spins", len(history))
		return domain.Eligibility{CanSpin: true, CanSpinAds: true}
	}
	return Evaluate(history, policy, now)
}

// Evaluate computes regular and extra spin permissions from a participant's spin history
// on one roulette. History may be supplied in any order.
//
// A regular spin is blocked while the most recent regular spin is inside its cooldown.
// That spin anchors the current cooldown epoch: extra spins recorded at or after it count
// against the quota, and extra spins are blocked once the quota is reached. Outside an
// epoch extra spins are always allowed.
func Evaluate(history []domain.Spin, policy Policy, now time.Time) domain.Eligibility {
	result := domain.Eligibility{CanSpin: true, CanSpinAds: true}

	anchor := lastRegularSpin(history)
	if anchor == nil {
		return result
	}

	onCooldown, remaining := checkCooldownInternal(now, &anchor.CreatedAt, policy.Cooldown)
	if !onCooldown {
		return result
	}

	result.CanSpin = false
	result.RegularRemaining = remaining

	if countExtraSince(history, anchor.CreatedAt) >= policy.ExtraQuota {
		result.CanSpinAds = false
	}
	return result
}

// lastRegularSpin returns the most recent regular spin, breaking timestamp ties by id
func lastRegularSpin(history []domain.Spin) *domain.Spin {
	var last *domain.Spin
	for i := range history {
		s := &history[i]
		if s.IsExtra {
			continue
		}
		if last == nil || s.CreatedAt.After(last.CreatedAt) ||
			(s.CreatedAt.Equal(last.CreatedAt) && s.ID > last.ID) {
			last = s
		}
	}
	return last
}

func countExtraSince(history []domain.Spin, since time.Time) int {
	count := 0
	for _, s := range history {
		if s.IsExtra && !s.CreatedAt.Before(since) {
			count++
		}
	}
	return count
}

func checkCooldownInternal(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
