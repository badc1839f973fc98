package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roulette is a campaign wheel configuration together with its shared spin counter
type Roulette struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Subtitle       string `json:"subtitle"`
	BottomText     string `json:"bottom_text"`
	Logo           string `json:"logo"`
	BgImage        string `json:"bg_image"`
	WrongIcon      string `json:"wrong_icon"`
	CurrentSpins   int    `json:"current_spins"`
	MessageNoSpins string `json:"message_no_spins"`
	MessageLose    string `json:"message_lose"`
	MessageWin     string `json:"message_win"`
	ColorSpin1     string `json:"color_spin_1"`
	ColorSpin2     string `json:"color_spin_2"`
	ColorSpin3     string `json:"color_spin_3"`
	ColorSpin4     string `json:"color_spin_4"`

	// CooldownHours is the wait between regular spins and the length of a cooldown epoch
	CooldownHours decimal.Decimal `json:"cooldown_hours"`
	// ExtraSpinQuota caps the extra spins counted inside one cooldown epoch
	ExtraSpinQuota int `json:"extra_spin_quota"`
	// SpinCounter is progress since the last award was granted, not a lifetime total
	SpinCounter int `json:"spin_counter"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CooldownDuration converts CooldownHours into a duration, truncated to the nanosecond.
// Negative values are treated as zero.
func (r *Roulette) CooldownDuration() time.Duration {
	if r.CooldownHours.Sign() <= 0 {
		return 0
	}
	nanos := r.CooldownHours.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()
	return time.Duration(nanos)
}

// Award is a prize attached to a roulette, unlocked once the spin counter reaches MinSpins
type Award struct {
	ID          int64     `json:"id"`
	RouletteID  int64     `json:"roulette_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	MinSpins    int       `json:"min_spins"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AwardSummary is the public shape of an award. Tuning fields are never exposed.
type AwardSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Summary returns the public view of the award
func (a *Award) Summary() AwardSummary {
	return AwardSummary{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Image:       a.Image,
	}
}

// RouletteView is the public read model of a roulette: display fields plus active awards
type RouletteView struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Subtitle       string          `json:"subtitle"`
	BottomText     string          `json:"bottom_text"`
	Logo           string          `json:"logo"`
	BgImage        string          `json:"bg_image"`
	WrongIcon      string          `json:"wrong_icon"`
	CurrentSpins   int             `json:"current_spins"`
	MessageNoSpins string          `json:"message_no_spins"`
	MessageLose    string          `json:"message_lose"`
	MessageWin     string          `json:"message_win"`
	ColorSpin1     string          `json:"color_spin_1"`
	ColorSpin2     string          `json:"color_spin_2"`
	ColorSpin3     string          `json:"color_spin_3"`
	ColorSpin4     string          `json:"color_spin_4"`
	CooldownHours  decimal.Decimal `json:"spins_space_hours"`
	ExtraSpinQuota int             `json:"spins_ads_limit"`
	Awards         []AwardSummary  `json:"awards"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewRouletteView builds the read model from a roulette and its already filtered awards
func NewRouletteView(r *Roulette, awards []AwardSummary) RouletteView {
	if awards == nil {
		awards = []AwardSummary{}
	}
	return RouletteView{
		ID:             r.ID,
		Name:           r.Name,
		Slug:           r.Slug,
		Subtitle:       r.Subtitle,
		BottomText:     r.BottomText,
		Logo:           r.Logo,
		BgImage:        r.BgImage,
		WrongIcon:      r.WrongIcon,
		CurrentSpins:   r.CurrentSpins,
		MessageNoSpins: r.MessageNoSpins,
		MessageLose:    r.MessageLose,
		MessageWin:     r.MessageWin,
		ColorSpin1:     r.ColorSpin1,
		ColorSpin2:     r.ColorSpin2,
		ColorSpin3:     r.ColorSpin3,
		ColorSpin4:     r.ColorSpin4,
		CooldownHours:  r.CooldownHours,
		ExtraSpinQuota: r.ExtraSpinQuota,
		Awards:         awards,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
