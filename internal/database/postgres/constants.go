package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Roulette Operations
const (
	ErrMsgFailedToGetRoulette    = "failed to get roulette"
	ErrMsgFailedToListRoulettes  = "failed to list roulettes"
	ErrMsgFailedToLockRoulette   = "failed to lock roulette"
	ErrMsgFailedToCreateRoulette = "failed to create roulette"
	ErrMsgFailedToUpdateRoulette = "failed to update roulette"
	ErrMsgFailedToUpdateCounter  = "failed to update spin counter"
	ErrMsgFailedToCheckSlug      = "failed to check slug"
	ErrMsgInvalidCooldownHours   = "invalid cooldown hours"
	ErrMsgFailedToListAwards     = "failed to list awards"
	ErrMsgFailedToGetAward       = "failed to get award"
	ErrMsgFailedToCreateAward    = "failed to create award"
	ErrMsgFailedToUpdateAward    = "failed to update award"
	ErrMsgFailedToListWinners    = "failed to list winners"
)

// Error Messages - Participant and Spin Operations
const (
	ErrMsgFailedToUpsertParticipant = "failed to upsert participant"
	ErrMsgFailedToGetSpinHistory    = "failed to get spin history"
	ErrMsgFailedToInsertSpin        = "failed to insert spin"
	ErrMsgFailedToInsertAwardGrant  = "failed to insert participant award"
)

// Error Messages - Event Log
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToGetEvents     = "failed to get events"
	ErrMsgFailedToCleanupEvents = "failed to clean up events"
)

// Error Messages - Migrations
const (
	ErrMsgFailedToParseDatabaseURL = "parse database url"
	ErrMsgFailedToPingDatabase     = "ping database"
	ErrMsgFailedToSetDialect       = "set goose dialect"
	ErrMsgFailedToRunMigrations    = "goose up"
)

// Log Messages
const (
	LogMsgMigrationsApplied = "Database migrations applied"
	LogMsgGoose             = "goose"
)
