package cooldown

import (
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// Config holds rate limiter configuration
type Config struct {
	// DevMode bypasses all spin limits when true
	DevMode bool
}

// Policy is the per-roulette limit configuration the rate limiter evaluates against
type Policy struct {
	// Cooldown is the wait between regular spins and the length of one cooldown epoch
	Cooldown time.Duration

	// ExtraQuota is the number of extra spins allowed inside one cooldown epoch
	ExtraQuota int
}

// PolicyFor derives the limit policy from a roulette's configuration
func PolicyFor(r *domain.Roulette) Policy {
	quota := r.ExtraSpinQuota
	if quota < 0 {
		quota = 0
	}
	return Policy{
		Cooldown:   r.CooldownDuration(),
		ExtraQuota: quota,
	}
}
