package campaign

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
)

// RouletteInput carries the editable configuration of a roulette.
// The spin counter is not part of it; only spins move the counter.
type RouletteInput struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Slug           string          `json:"slug" validate:"omitempty,max=255"`
	Subtitle       string          `json:"subtitle" validate:"max=255"`
	BottomText     string          `json:"bottom_text"`
	Logo           string          `json:"logo" validate:"max=255"`
	BgImage        string          `json:"bg_image" validate:"max=255"`
	WrongIcon      string          `json:"wrong_icon" validate:"max=255"`
	CurrentSpins   int             `json:"current_spins" validate:"gte=0"`
	MessageNoSpins string          `json:"message_no_spins"`
	MessageLose    string          `json:"message_lose"`
	MessageWin     string          `json:"message_win"`
	ColorSpin1     string          `json:"color_spin_1" validate:"omitempty,max=20"`
	ColorSpin2     string          `json:"color_spin_2" validate:"omitempty,max=20"`
	ColorSpin3     string          `json:"color_spin_3" validate:"omitempty,max=20"`
	ColorSpin4     string          `json:"color_spin_4" validate:"omitempty,max=20"`
	CooldownHours  decimal.Decimal `json:"spins_space_hours"`
	ExtraSpinQuota int             `json:"spins_ads_limit" validate:"gte=0"`
}

func (in RouletteInput) apply(r *domain.Roulette) {
	r.Name = in.Name
	r.Subtitle = in.Subtitle
	r.BottomText = in.BottomText
	r.Logo = in.Logo
	r.BgImage = in.BgImage
	r.WrongIcon = in.WrongIcon
	r.CurrentSpins = in.CurrentSpins
	r.MessageNoSpins = in.MessageNoSpins
	r.MessageLose = in.MessageLose
	r.MessageWin = in.MessageWin
	r.ColorSpin1 = in.ColorSpin1
	r.ColorSpin2 = in.ColorSpin2
	r.ColorSpin3 = in.ColorSpin3
	r.ColorSpin4 = in.ColorSpin4
	r.CooldownHours = in.CooldownHours
	r.ExtraSpinQuota = in.ExtraSpinQuota
}

// AwardInput carries the editable fields of an award. Active defaults to true on create.
type AwardInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"max=255"`
	MinSpins    int    `json:"min_spins" validate:"gte=0"`
	Active      *bool  `json:"active"`
}

func (in AwardInput) apply(a *domain.Award) {
	a.Name = in.Name
	a.Description = in.Description
	a.Image = in.Image
	a.MinSpins = in.MinSpins
	if in.Active != nil {
		a.Active = *in.Active
	}
}
