package cooldown

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses spin limit enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing spin limits"
)
