package roulette

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// cachedViews wraps cached read models with version metadata for invalidation
type cachedViews struct {
	Version  string
	Views    []domain.RouletteView
	CachedAt time.Time
}

// viewCache is an in-memory LRU of public roulette views with time-based expiration.
// The list and each slug are cached under their own keys.
type viewCache struct {
	lru *expirable.LRU[string, *cachedViews]
}

func newViewCache(size int, ttl time.Duration) *viewCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &viewCache{
		lru: expirable.NewLRU[string, *cachedViews](size, nil, ttl),
	}
}

func (c *viewCache) get(key string) ([]domain.RouletteView, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Views, true
}

func (c *viewCache) set(key string, views []domain.RouletteView) {
	c.lru.Add(key, &cachedViews{
		Version:  CacheSchemaVersion,
		Views:    views,
		CachedAt: time.Now(),
	})
}

// clear drops everything. A rename moves a roulette between slug keys, so edits purge the lot.
func (c *viewCache) clear() {
	c.lru.Purge()
}

func (c *viewCache) len() int {
	return c.lru.Len()
}
