package campaign

import "github.com/shopspring/decimal"

// MaxSlugAttempts bounds the numeric suffixes tried when a generated slug is taken
const MaxSlugAttempts = 50

// CooldownScale and CooldownIntegerDigits mirror the NUMERIC(10,4) cooldown_hours column
const (
	CooldownScale         = 4
	CooldownIntegerDigits = 6
)

var maxCooldownHours = decimal.New(1, CooldownIntegerDigits)

// Error message fragments
const (
	ErrMsgFailedToCreateRoulette = "failed to create roulette"
	ErrMsgFailedToUpdateRoulette = "failed to update roulette"
	ErrMsgFailedToLoadRoulette   = "failed to load roulette"
	ErrMsgFailedToCheckSlug      = "failed to check slug"
	ErrMsgFailedToCreateAward    = "failed to create award"
	ErrMsgFailedToUpdateAward    = "failed to update award"
	ErrMsgFailedToLoadAward      = "failed to load award"
	ErrMsgFailedToListWinners    = "failed to list winners"
	ErrMsgNegativeCooldown       = "cooldown hours must not be negative"
	ErrMsgCooldownPrecision      = "cooldown hours allow at most 4 decimal places"
	ErrMsgCooldownTooLarge       = "cooldown hours must be below 1000000"
	ErrMsgEmptySlug              = "name must contain at least one letter or digit"
)

// Log messages
const (
	LogMsgRouletteCreated = "Roulette created"
	LogMsgRouletteUpdated = "Roulette updated"
	LogMsgAwardCreated    = "Award created"
	LogMsgAwardUpdated    = "Award updated"
	LogMsgPublishFailed   = "Failed to publish event"
)
