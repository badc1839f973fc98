package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"

	// Roulette read messages
	ErrMsgListRoulettesFailed = "Failed to list roulettes"
	ErrMsgGetRouletteFailed   = "Failed to get roulette"

	// Spin messages
	ErrMsgValidateFailed = "Failed to validate participant"
	ErrMsgSpinFailed     = "Failed to spin"

	// Admin messages
	ErrMsgCreateRouletteFailed = "Failed to create roulette"
	ErrMsgUpdateRouletteFailed = "Failed to update roulette"
	ErrMsgCreateAwardFailed    = "Failed to create award"
	ErrMsgUpdateAwardFailed    = "Failed to update award"
	ErrMsgListWinnersFailed    = "Failed to list winners"
	ErrMsgListEventsFailed     = "Failed to list events"
	ErrMsgInvalidQuery         = "Invalid query parameter"
)

// Path parameter names
const (
	ParamSlug = "slug"
	ParamID   = "id"
)

// Query parameter names
const (
	QueryEventType = "type"
	QueryLimit     = "limit"
	QuerySince     = "since"
)
