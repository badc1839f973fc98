package notify

// Embed styling
const (
	EmbedColorWin   = 0x2ecc71 // Green
	EmbedFooterText = "Roulette Campaign"
	DefaultUsername = "Roulette Campaign"
)

// Log messages
const (
	LogMsgNotificationSent    = "Award notification sent"
	LogMsgNotificationFailed  = "Award notification failed"
	LogMsgNotificationDropped = "Award notification dropped"
	LogMsgNotifierDisabled    = "Discord webhook not configured, award notifications disabled"
)
