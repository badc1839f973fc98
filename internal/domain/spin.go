package domain

import "time"

// SpinKind distinguishes cooldown-gated regular spins from quota-gated extra spins
type SpinKind string

const (
	SpinKindRegular SpinKind = "regular"
	SpinKindExtra   SpinKind = "extra"
)

// KindOf maps the is_extra_spin flag to a SpinKind
func KindOf(isExtra bool) SpinKind {
	if isExtra {
		return SpinKindExtra
	}
	return SpinKindRegular
}

// Spin is one recorded spin attempt that passed eligibility. Spins are append-only.
type Spin struct {
	ID            int64     `json:"id"`
	ParticipantID int64     `json:"participant_id"`
	RouletteID    int64     `json:"roulette_id"`
	IsExtra       bool      `json:"is_extra_spin"`
	CreatedAt     time.Time `json:"created_at"`
}

// Kind returns the spin kind
func (s Spin) Kind() SpinKind {
	return KindOf(s.IsExtra)
}

// SpinRequest is the typed input shared by validate and spin
type SpinRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Name        string `json:"name" validate:"required,max=255"`
	RouletteID  int64  `json:"roulette" validate:"required,gt=0"`
	IsExtraSpin bool   `json:"is_extra_spin"`
}

// Eligibility holds the two independent spin permissions for a participant on a roulette
type Eligibility struct {
	CanSpin    bool `json:"can_spin"`
	CanSpinAds bool `json:"can_spin_ads"`

	// RegularRemaining is how long until the current cooldown epoch ends (zero when not in cooldown)
	RegularRemaining time.Duration `json:"-"`
}

// Allows reports whether the given kind of spin is currently permitted
func (e Eligibility) Allows(kind SpinKind) bool {
	if kind == SpinKindExtra {
		return e.CanSpinAds
	}
	return e.CanSpin
}

// ValidateResult is returned by the read-only eligibility check
type ValidateResult struct {
	Eligibility
	Participant *Participant  `json:"-"`
	Outcome     UpsertOutcome `json:"-"`
}

// SpinResult is returned by a recorded spin
type SpinResult struct {
	Award *AwardSummary `json:"award"`
	Eligibility

	Spin        *Spin         `json:"-"`
	Participant *Participant  `json:"-"`
	Outcome     UpsertOutcome `json:"-"`
	// Counter is the roulette spin counter after the spin (and after any grant)
	Counter int `json:"-"`
}
