package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeWinner is sent when a spin wins an award
	EventTypeWinner = "roulette.winner"

	// EventTypeRouletteChanged is sent when an admin edits a roulette or its awards
	EventTypeRouletteChanged = "roulette.changed"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by the stream handler
const (
	QueryRoulette = "roulette"
	QueryTypes    = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgFlushError         = "Failed to flush SSE response"
	LogMsgInvalidPayload     = "Invalid SSE source event payload"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	ErrMsgInvalidRoulette    = "Invalid roulette filter"
)
