package config

import "time"

// Defaults applied when the matching environment variable is unset or invalid
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultDBName      = "roulette"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRouletteCacheSize = 256
	DefaultRouletteCacheTTL  = 5 * time.Minute

	DefaultEventMaxRetries     = 3
	DefaultEventRetryDelay     = 500 * time.Millisecond
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"

	DefaultNotifyWorkers   = 2
	DefaultNotifyQueueSize = 100

	DefaultEventLogRetentionDays   = 90
	DefaultEventLogCleanupInterval = 24 * time.Hour

	DefaultShutdownTimeout = 15 * time.Second
)

// EnvironmentProduction is the ENVIRONMENT value that forbids dev mode
const EnvironmentProduction = "prod"
