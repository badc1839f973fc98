package eventlog

// JSON payload field keys used to index logged events
const (
	PayloadKeyRouletteID    = "roulette_id"
	PayloadKeyParticipantID = "participant_id"
)

// Query limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event to database"
	LogMsgEventLogged           = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldRouletteID    = "roulette_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
