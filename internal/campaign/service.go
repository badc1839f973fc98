// Package campaign implements the administrator operations on roulettes and awards.
package campaign

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/naming"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// Service defines the campaign administration operations
type Service interface {
	CreateRoulette(ctx context.Context, in RouletteInput) (*domain.Roulette, error)
	UpdateRoulette(ctx context.Context, id int64, in RouletteInput) (*domain.Roulette, error)
	CreateAward(ctx context.Context, rouletteID int64, in AwardInput) (*domain.Award, error)
	UpdateAward(ctx context.Context, id int64, in AwardInput) (*domain.Award, error)
	ListWinners(ctx context.Context, rouletteID int64) ([]domain.Winner, error)
}

type service struct {
	repo     repository.Campaign
	bus      event.Bus
	validate *validator.Validate
}

// NewService creates a new campaign admin service
func NewService(repo repository.Campaign, bus event.Bus) Service {
	return &service{
		repo:     repo,
		bus:      bus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateRoulette stores a new roulette with a zero counter. The slug is the supplied one,
// or derived from the name when none is given.
func (s *service) CreateRoulette(ctx context.Context, in RouletteInput) (*domain.Roulette, error) {
	if err := s.validateRoulette(in); err != nil {
		return nil, err
	}

	var slug string
	var err error
	if in.Slug != "" {
		slug, err = s.explicitSlug(ctx, in.Slug, 0)
	} else {
		slug, err = s.uniqueSlug(ctx, in.Name, 0)
	}
	if err != nil {
		return nil, err
	}

	r := &domain.Roulette{Slug: slug}
	in.apply(r)
	if err := s.repo.CreateRoulette(ctx, r); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateRoulette, err)
	}

	logger.FromContext(ctx).Info(LogMsgRouletteCreated, "roulette_id", r.ID, "slug", r.Slug)
	s.publish(ctx, event.NewRouletteUpdatedEvent(r.ID, r.Slug))
	return r, nil
}

// UpdateRoulette replaces the configuration of a roulette. The slug follows the name
// unless one is supplied.
func (s *service) UpdateRoulette(ctx context.Context, id int64, in RouletteInput) (*domain.Roulette, error) {
	if err := s.validateRoulette(in); err != nil {
		return nil, err
	}

	r, err := s.repo.GetRouletteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRoulette, err)
	}
	if r == nil {
		return nil, domain.ErrRouletteNotFound
	}

	switch {
	case in.Slug != "":
		slug, err := s.explicitSlug(ctx, in.Slug, r.ID)
		if err != nil {
			return nil, err
		}
		r.Slug = slug
	case in.Name != r.Name:
		slug, err := s.uniqueSlug(ctx, in.Name, r.ID)
		if err != nil {
			return nil, err
		}
		r.Slug = slug
	}
	in.apply(r)

	if err := s.repo.UpdateRoulette(ctx, r); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRoulette, err)
	}

	logger.FromContext(ctx).Info(LogMsgRouletteUpdated, "roulette_id", r.ID, "slug", r.Slug)
	s.publish(ctx, event.NewRouletteUpdatedEvent(r.ID, r.Slug))
	return r, nil
}

// CreateAward attaches a new award to a roulette
func (s *service) CreateAward(ctx context.Context, rouletteID int64, in AwardInput) (*domain.Award, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	r, err := s.repo.GetRouletteByID(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRoulette, err)
	}
	if r == nil {
		return nil, domain.ErrRouletteNotFound
	}

	a := &domain.Award{RouletteID: r.ID, Active: true}
	in.apply(a)
	if err := s.repo.CreateAward(ctx, a); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAward, err)
	}

	logger.FromContext(ctx).Info(LogMsgAwardCreated, "roulette_id", r.ID, "award_id", a.ID, "min_spins", a.MinSpins)
	s.publish(ctx, event.NewRouletteUpdatedEvent(r.ID, r.Slug))
	return a, nil
}

// UpdateAward replaces the editable fields of an award. Active is kept when omitted.
func (s *service) UpdateAward(ctx context.Context, id int64, in AwardInput) (*domain.Award, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	a, err := s.repo.GetAwardByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadAward, err)
	}
	if a == nil {
		return nil, domain.ErrAwardNotFound
	}

	in.apply(a)
	if err := s.repo.UpdateAward(ctx, a); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAward, err)
	}

	logger.FromContext(ctx).Info(LogMsgAwardUpdated, "roulette_id", a.RouletteID, "award_id", a.ID, "active", a.Active)
	s.publish(ctx, event.NewRouletteUpdatedEvent(a.RouletteID, ""))
	return a, nil
}

// ListWinners returns the award grants of a roulette, newest first
func (s *service) ListWinners(ctx context.Context, rouletteID int64) ([]domain.Winner, error) {
	r, err := s.repo.GetRouletteByID(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRoulette, err)
	}
	if r == nil {
		return nil, domain.ErrRouletteNotFound
	}

	winners, err := s.repo.ListWinners(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWinners, err)
	}
	if winners == nil {
		winners = []domain.Winner{}
	}
	return winners, nil
}

func (s *service) validateRoulette(in RouletteInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.CooldownHours.IsNegative() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeCooldown)
	}
	// Must fit the NUMERIC(10,4) column without rounding
	if !in.CooldownHours.Equal(in.CooldownHours.Round(CooldownScale)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCooldownPrecision)
	}
	if in.CooldownHours.GreaterThanOrEqual(maxCooldownHours) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCooldownTooLarge)
	}
	return nil
}

// explicitSlug normalizes a client supplied slug. A taken slug is a conflict, never suffixed.
func (s *service) explicitSlug(ctx context.Context, raw string, excludeID int64) (string, error) {
	slug := naming.Slugify(raw)
	if slug == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}

	taken, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToCheckSlug, err)
	}
	if taken {
		return "", domain.ErrSlugTaken
	}
	return slug, nil
}

// uniqueSlug slugifies name and appends -2, -3, ... while another roulette holds the slug
func (s *service) uniqueSlug(ctx context.Context, name string, excludeID int64) (string, error) {
	base := naming.Slugify(name)
	if base == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}

	candidate := base
	for attempt := 2; attempt <= MaxSlugAttempts+1; attempt++ {
		taken, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ErrMsgFailedToCheckSlug, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = naming.WithSuffix(base, attempt)
	}
	return "", domain.ErrSlugTaken
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// IsNotFound reports whether err means the addressed roulette or award does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrRouletteNotFound) || errors.Is(err, domain.ErrAwardNotFound)
}
