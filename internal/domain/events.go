package domain

// Event type names shared between the bus and external collaborators
const (
	EventSpinStarted     = "spin.started"
	EventSpinSettled     = "spin.settled"
	EventLevelUp         = "economy.level_up"
	EventAutoSpinStopped = "spin.auto_stopped"
	EventSpinRejected    = "spin.rejected"
)

// SpinStartedPayload is the typed payload for spin.started events
type SpinStartedPayload struct {
	SessionID string `json:"session_id"`
	Stake     int    `json:"stake"`
	Turbo     bool   `json:"turbo"`
	AutoSpin  bool   `json:"auto_spin"`
	Timestamp int64  `json:"timestamp"`
}

// SpinSettledPayload is the typed payload for spin.settled events
type SpinSettledPayload struct {
	SessionID   string          `json:"session_id"`
	Outcome     SpinOutcome     `json:"outcome"`
	Snapshot    EconomySnapshot `json:"snapshot"`
	GridSymbols []string        `json:"grid_symbols"` // column-major symbol IDs
	Timestamp   int64           `json:"timestamp"`
}

// LevelUpPayload is the typed payload for economy.level_up events.
// One event is published per level gained, in order.
type LevelUpPayload struct {
	NewLevel  int   `json:"new_level"`
	Bonus     int   `json:"bonus"`
	Timestamp int64 `json:"timestamp"`
}

// AutoSpinStoppedPayload is the typed payload for spin.auto_stopped events
type AutoSpinStoppedPayload struct {
	Reason    RejectReason `json:"reason"`
	Timestamp int64        `json:"timestamp"`
}

// SpinRejectedPayload is the typed payload for spin.rejected events
type SpinRejectedPayload struct {
	Reason    RejectReason `json:"reason"`
	Stake     int          `json:"stake"`
	Timestamp int64        `json:"timestamp"`
}
