// Package roulette serves the public read model of roulettes and their active awards.
package roulette

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RouletteCampaign_Go/internal/award"
	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// Service defines the public roulette read operations
type Service interface {
	// List returns every roulette with its active awards
	List(ctx context.Context) ([]domain.RouletteView, error)
	// GetBySlug returns one roulette with its active awards, or nil when the slug is unknown
	GetBySlug(ctx context.Context, slug string) (*domain.RouletteView, error)
	// Invalidate drops all cached views
	Invalidate()
	// Subscribe registers cache invalidation on roulette updates
	Subscribe(bus event.Bus)
}

type service struct {
	repo  repository.Roulette
	cache *viewCache
}

// NewService creates a read service caching up to cacheSize entries for cacheTTL
func NewService(repo repository.Roulette, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newViewCache(cacheSize, cacheTTL),
	}
}

func (s *service) List(ctx context.Context) ([]domain.RouletteView, error) {
	if views, ok := s.cache.get(cacheKeyList); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", cacheKeyList)
		return views, nil
	}

	roulettes, err := s.repo.ListRoulettes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
	}

	views := make([]domain.RouletteView, 0, len(roulettes))
	for i := range roulettes {
		view, err := s.buildView(ctx, &roulettes[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	s.cache.set(cacheKeyList, views)
	return views, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.RouletteView, error) {
	key := cacheKeySlugPrefix + slug
	if views, ok := s.cache.get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", key)
		return &views[0], nil
	}

	r, err := s.repo.GetRouletteBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoulette, err)
	}
	if r == nil {
		return nil, nil
	}

	view, err := s.buildView(ctx, r)
	if err != nil {
		return nil, err
	}

	s.cache.set(key, []domain.RouletteView{view})
	return &view, nil
}

func (s *service) buildView(ctx context.Context, r *domain.Roulette) (domain.RouletteView, error) {
	awards, err := s.repo.ListAwards(ctx, r.ID)
	if err != nil {
		return domain.RouletteView{}, fmt.Errorf("%s: %w", ErrMsgFailedToListAwards, err)
	}
	return domain.NewRouletteView(r, award.Summaries(awards)), nil
}

func (s *service) Invalidate() {
	s.cache.clear()
}

func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RouletteUpdated, s.handleRouletteUpdated)
}

func (s *service) handleRouletteUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RouletteUpdatedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode roulette updated payload: %w", err)
	}
	s.Invalidate()
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "roulette_id", payload.RouletteID, "slug", payload.Slug)
	return nil
}
