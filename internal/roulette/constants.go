package roulette

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion is bumped when the cached view shape changes
	CacheSchemaVersion = "1.0"

	cacheKeyList       = "list"
	cacheKeySlugPrefix = "slug:"
)

// Error message fragments
const (
	ErrMsgFailedToListRoulettes = "failed to list roulettes"
	ErrMsgFailedToGetRoulette   = "failed to get roulette"
	ErrMsgFailedToListAwards    = "failed to list awards"
)

// Log messages
const (
	LogMsgCacheInvalidated = "Roulette cache invalidated"
	LogMsgCacheHit         = "Roulette cache hit"
)
