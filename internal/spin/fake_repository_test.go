package spin

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/repository"
)

// fakeRepository is an in-memory repository.Spin. Transactions stage their writes
// and apply them on commit.
type fakeRepository struct {
	mu           sync.Mutex
	roulettes    map[int64]*domain.Roulette
	awards       []domain.Award
	participants map[string]*domain.Participant
	spins        []domain.Spin
	grants       []domain.ParticipantAward
	nextID       int64

	// failCommit makes every commit fail
	failCommit bool

	// openTxs counts transactions that are neither committed nor rolled back
	openTxs atomic.Int32

	// beforeTxHistory runs when a transaction reads the history, before the read
	beforeTxHistory func(participantID, rouletteID int64)
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		roulettes:    make(map[int64]*domain.Roulette),
		participants: make(map[string]*domain.Participant),
	}
}

func (f *fakeRepository) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRepository) addRoulette(r domain.Roulette) *domain.Roulette {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		r.ID = f.id()
	}
	f.roulettes[r.ID] = &r
	return &r
}

func (f *fakeRepository) addAward(a domain.Award) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.id()
	}
	f.awards = append(f.awards, a)
}

// recordSpin stores a committed spin directly, as a concurrent request would
func (f *fakeRepository) recordSpin(s domain.Spin) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.id()
	f.spins = append(f.spins, s)
}

func (f *fakeRepository) counter(rouletteID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roulettes[rouletteID].SpinCounter
}

func (f *fakeRepository) spinCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spins)
}

func (f *fakeRepository) grantCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.grants)
}

func (f *fakeRepository) participantCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.participants)
}

func (f *fakeRepository) participant(email string) *domain.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[email]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (f *fakeRepository) GetRouletteByID(ctx context.Context, id int64) (*domain.Roulette, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.roulettes[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepository) UpsertParticipant(ctx context.Context, email, name string, now time.Time) (*domain.Participant, domain.UpsertOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.participants[email]; ok {
		p.Name = name
		p.UpdatedAt = now
		cp := *p
		return &cp, domain.UpsertUpdated, nil
	}
	p := &domain.Participant{ID: f.id(), Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	f.participants[email] = p
	cp := *p
	return &cp, domain.UpsertCreated, nil
}

func (f *fakeRepository) GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.historyLocked(participantID, rouletteID), nil
}

func (f *fakeRepository) historyLocked(participantID, rouletteID int64) []domain.Spin {
	var out []domain.Spin
	for _, s := range f.spins {
		if s.ParticipantID == participantID && s.RouletteID == rouletteID {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeRepository) BeginSpinTx(ctx context.Context) (repository.SpinTx, error) {
	f.openTxs.Add(1)
	return &fakeSpinTx{repo: f, counters: make(map[int64]int)}, nil
}

type fakeSpinTx struct {
	repo     *fakeRepository
	spins    []domain.Spin
	grants   []domain.ParticipantAward
	counters map[int64]int
	done     bool
}

func (t *fakeSpinTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.repo.openTxs.Add(-1)
	if t.repo.failCommit {
		return errors.New("commit failed")
	}

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.spins = append(t.repo.spins, t.spins...)
	t.repo.grants = append(t.repo.grants, t.grants...)
	for id, c := range t.counters {
		t.repo.roulettes[id].SpinCounter = c
	}
	return nil
}

func (t *fakeSpinTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.repo.openTxs.Add(-1)
	return nil
}

func (t *fakeSpinTx) LockRoulette(ctx context.Context, rouletteID int64) (*domain.Roulette, error) {
	return t.repo.GetRouletteByID(ctx, rouletteID)
}

func (t *fakeSpinTx) GetSpinHistory(ctx context.Context, participantID, rouletteID int64) ([]domain.Spin, error) {
	if hook := t.repo.beforeTxHistory; hook != nil {
		hook(participantID, rouletteID)
	}
	return t.repo.GetSpinHistory(ctx, participantID, rouletteID)
}

func (t *fakeSpinTx) InsertSpin(ctx context.Context, spin *domain.Spin) error {
	t.repo.mu.Lock()
	spin.ID = t.repo.id()
	t.repo.mu.Unlock()
	t.spins = append(t.spins, *spin)
	return nil
}

func (t *fakeSpinTx) ListAwards(ctx context.Context, rouletteID int64) ([]domain.Award, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	var out []domain.Award
	for _, a := range t.repo.awards {
		if a.RouletteID == rouletteID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (t *fakeSpinTx) InsertParticipantAward(ctx context.Context, pa *domain.ParticipantAward) error {
	t.repo.mu.Lock()
	pa.ID = t.repo.id()
	t.repo.mu.Unlock()
	t.grants = append(t.grants, *pa)
	return nil
}

func (t *fakeSpinTx) UpdateSpinCounter(ctx context.Context, rouletteID int64, counter int) error {
	t.counters[rouletteID] = counter
	return nil
}
