package spin

// Error message fragments
const (
	ErrMsgFailedToLoadRoulette     = "failed to load roulette"
	ErrMsgFailedToUpsert           = "failed to upsert participant"
	ErrMsgFailedToLoadHistory      = "failed to load spin history"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToRecordSpin       = "failed to record spin"
	ErrMsgFailedToLoadAwards       = "failed to load awards"
	ErrMsgFailedToGrantAward       = "failed to grant award"
	ErrMsgFailedToUpdateCounter    = "failed to update spin counter"
	ErrMsgFailedToCommit           = "failed to commit spin"
)

// Log messages
const (
	LogMsgParticipantUpserted = "Participant upserted"
	LogMsgSpinDenied          = "Spin denied"
	LogMsgSpinDeniedOnRecheck = "Spin denied after acquiring roulette lock"
	LogMsgSpinRecorded        = "Spin recorded"
	LogMsgAwardGranted        = "Award granted"
	LogMsgPublishFailed       = "Failed to publish event"
)
