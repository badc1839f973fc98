package sse

// WinnerPayload announces a granted award on the public feed. The participant
// is reduced to a display name so no contact details leave the service.
type WinnerPayload struct {
	RouletteID   int64  `json:"roulette_id"`
	RouletteName string `json:"roulette_name"`
	AwardName    string `json:"award_name"`
	Winner       string `json:"winner"`
}

// RouletteChangedPayload tells clients to refetch a roulette
type RouletteChangedPayload struct {
	RouletteID int64  `json:"roulette_id"`
	Slug       string `json:"slug"`
}
