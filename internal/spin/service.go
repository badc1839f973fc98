// Package spin implements validate and spin, the only mutating operations of the campaign core.
package spin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RouletteCampaign_Go/internal/award"
	"github.com/osse101/RouletteCampaign_Go/internal/concurrency"
	"github.com/osse101/RouletteCampaign_Go/internal/cooldown"
	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/event"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// Service defines the interface for spin operations
type Service interface {
	// Validate upserts the participant and reports current eligibility without spinning
	Validate(ctx context.Context, req domain.SpinRequest) (*domain.ValidateResult, error)
	// Spin upserts the participant, records a spin when permitted and grants at most one award
	Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinResult, error)
}

type service struct {
	repo     repository.Spin
	limiter  *cooldown.Limiter
	locks    *concurrency.LockManager
	bus      event.Bus
	validate *validator.Validate
	now      func() time.Time // Injectable for testing
}

// NewService creates a new spin service
func NewService(repo repository.Spin, limiter *cooldown.Limiter, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		repo:     repo,
		limiter:  limiter,
		locks:    locks,
		bus:      bus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      defaultNow,
	}
}

// defaultNow matches the microsecond precision of stored timestamps
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// subject is the resolved input shared by validate and spin
type subject struct {
	roulette    *domain.Roulette
	participant *domain.Participant
	outcome     domain.UpsertOutcome
	history     []domain.Spin
}

// Validate runs the participant upsert and the rate limiter only
func (s *service) Validate(ctx context.Context, req domain.SpinRequest) (*domain.ValidateResult, error) {
	now := s.now()
	subj, err := s.resolve(ctx, req, now)
	if err != nil {
		return nil, err
	}

	eligibility := s.limiter.Evaluate(ctx, subj.history, cooldown.PolicyFor(subj.roulette), now)
	return &domain.ValidateResult{
		Eligibility: eligibility,
		Participant: subj.participant,
		Outcome:     subj.outcome,
	}, nil
}

// Spin records one spin attempt end to end
func (s *service) Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)
	kind := domain.KindOf(req.IsExtraSpin)

	now := s.now()
	subj, err := s.resolve(ctx, req, now)
	if err != nil {
		return nil, err
	}

	// Unlocked pre-check rejects most denials without touching the roulette lock
	policy := cooldown.PolicyFor(subj.roulette)
	if eligibility := s.limiter.Evaluate(ctx, subj.history, policy, now); !eligibility.Allows(kind) {
		log.Info(LogMsgSpinDenied, "roulette_id", subj.roulette.ID, "participant_id", subj.participant.ID, "kind", kind)
		s.publish(ctx, event.NewSpinDeniedEvent(subj.roulette.ID, subj.participant.ID, kind, now))
		return nil, domain.NewSpinDeniedError(kind, eligibility.RegularRemaining)
	}

	// Events go out only after the transaction is closed and the roulette lock released
	result, grant, roulette, err := s.lockedSpin(ctx, subj, kind)
	if err != nil {
		var denied *domain.SpinDeniedError
		if errors.As(err, &denied) {
			s.publish(ctx, event.NewSpinDeniedEvent(subj.roulette.ID, subj.participant.ID, kind, s.now()))
		}
		return nil, err
	}

	won := grant != nil
	log.Info(LogMsgSpinRecorded,
		"roulette_id", roulette.ID,
		"participant_id", subj.participant.ID,
		"spin_id", result.Spin.ID,
		"kind", kind,
		"counter", result.Counter,
		"won", won)

	s.publish(ctx, event.NewSpinRecordedEvent(result.Spin, result.Counter, won))
	if won {
		log.Info(LogMsgAwardGranted, "roulette_id", roulette.ID, "award_id", grant.AwardID, "participant_id", subj.participant.ID)
		s.publish(ctx, event.NewAwardGrantedEvent(grant.ParticipantAward, roulette, grant.award, subj.participant))
	}

	return result, nil
}

// grantedAward carries the award alongside its grant record for event publishing
type grantedAward struct {
	*domain.ParticipantAward
	award *domain.Award
}

// lockedSpin holds the roulette lock for the duration of the spin transaction
func (s *service) lockedSpin(ctx context.Context, subj *subject, kind domain.SpinKind) (*domain.SpinResult, *grantedAward, *domain.Roulette, error) {
	unlock := s.locks.LockRoulette(subj.roulette.ID)
	defer unlock()
	return s.executeSpin(ctx, subj, kind)
}

// executeSpin runs the transactional part of a spin while the roulette lock is held
func (s *service) executeSpin(ctx context.Context, subj *subject, kind domain.SpinKind) (*domain.SpinResult, *grantedAward, *domain.Roulette, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginSpinTx(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	roulette, err := tx.LockRoulette(ctx, subj.roulette.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRoulette, err)
	}
	if roulette == nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrRouletteNotFound)
	}

	// Re-evaluate under the lock; a concurrent request may have spun since the pre-check
	history, err := tx.GetSpinHistory(ctx, subj.participant.ID, roulette.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadHistory, err)
	}
	now := s.now()
	policy := cooldown.PolicyFor(roulette)
	if eligibility := s.limiter.Evaluate(ctx, history, policy, now); !eligibility.Allows(kind) {
		log.Info(LogMsgSpinDeniedOnRecheck, "roulette_id", roulette.ID, "participant_id", subj.participant.ID, "kind", kind)
		return nil, nil, nil, domain.NewSpinDeniedError(kind, eligibility.RegularRemaining)
	}

	spin := &domain.Spin{
		ParticipantID: subj.participant.ID,
		RouletteID:    roulette.ID,
		IsExtra:       kind == domain.SpinKindExtra,
		CreatedAt:     now,
	}
	if err := tx.InsertSpin(ctx, spin); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToRecordSpin, err)
	}
	counter := roulette.SpinCounter + 1

	awards, err := tx.ListAwards(ctx, roulette.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadAwards, err)
	}

	var grant *grantedAward
	var summary *domain.AwardSummary
	if selected := award.Select(counter, awards); selected != nil {
		pa := &domain.ParticipantAward{
			ParticipantID: subj.participant.ID,
			AwardID:       selected.ID,
			SpinID:        spin.ID,
			CreatedAt:     now,
		}
		if err := tx.InsertParticipantAward(ctx, pa); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrantAward, err)
		}
		counter -= selected.MinSpins
		grant = &grantedAward{ParticipantAward: pa, award: selected}
		sum := selected.Summary()
		summary = &sum
	}

	if err := tx.UpdateSpinCounter(ctx, roulette.ID, counter); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCounter, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	roulette.SpinCounter = counter

	return &domain.SpinResult{
		Award:       summary,
		Eligibility: s.limiter.Evaluate(ctx, append(history, *spin), policy, now),
		Spin:        spin,
		Participant: subj.participant,
		Outcome:     subj.outcome,
		Counter:     counter,
	}, grant, roulette, nil
}

// resolve validates the request, loads the roulette, upserts the participant and loads history
func (s *service) resolve(ctx context.Context, req domain.SpinRequest, now time.Time) (*subject, error) {
	req.Email = domain.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	roulette, err := s.repo.GetRouletteByID(ctx, req.RouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRoulette, err)
	}
	if roulette == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrRouletteNotFound)
	}

	participant, outcome, err := s.repo.UpsertParticipant(ctx, req.Email, req.Name, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsert, err)
	}
	logger.FromContext(ctx).Debug(LogMsgParticipantUpserted, "participant_id", participant.ID, "outcome", outcome)
	s.publish(ctx, event.NewParticipantUpsertedEvent(participant.ID, outcome))

	history, err := s.repo.GetSpinHistory(ctx, participant.ID, roulette.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadHistory, err)
	}

	return &subject{
		roulette:    roulette,
		participant: participant,
		outcome:     outcome,
		history:     history,
	}, nil
}

// publish forwards an event; failures never fail the request
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
