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

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second
)

// Event types for SSE
const (
	// EventTypeConnected is sent once when a client first connects
	EventTypeConnected = "connected"

	// EventTypeSpinStarted is sent when a spin begins resolving
	EventTypeSpinStarted = "spin.started"

	// EventTypeSpinSettled is sent when a spin settles with its outcome
	EventTypeSpinSettled = "spin.settled"

	// EventTypeLevelUp is sent once per level gained
	EventTypeLevelUp = "economy.level_up"

	// EventTypeAutoSpinStopped is sent when auto spin disengages
	EventTypeAutoSpinStopped = "spin.auto_stopped"

	// EventTypeSpinRejected is sent when a manual spin request is rejected
	EventTypeSpinRejected = "spin.rejected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgDecodeError        = "Failed to decode event payload for SSE"
)
