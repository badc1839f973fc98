package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRouletteCacheSubscribed    = "Roulette cache invalidation subscribed"
	LogMsgNotifierInitialized        = "Discord winner notifier initialized"
	LogMsgNotifierDisabled           = "Discord webhook not configured, winner notifications disabled"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventLogCleanupScheduled   = "Event log cleanup scheduled"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// Background maintenance pool sizing
const (
	MaintenanceWorkers   = 1
	MaintenanceQueueSize = 4
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgShuttingDownNotifier       = "Draining notification workers..."
	LogMsgStoppingScheduler          = "Stopping scheduled jobs..."
	LogMsgStoppingStreamHub          = "Closing live stream connections..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
