package sse

// SpinStartedSSEPayload is broadcast when a spin begins resolving
type SpinStartedSSEPayload struct {
	SessionID string `json:"session_id"`
	Stake     int    `json:"stake"`
	Turbo     bool   `json:"turbo"`
	AutoSpin  bool   `json:"auto_spin"`
}

// SpinSettledSSEPayload is broadcast when a spin settles. GridSymbols
// holds column-major symbol IDs so the client can render the reveal.
type SpinSettledSSEPayload struct {
	SessionID   string   `json:"session_id"`
	GridSymbols []string `json:"grid_symbols"`
	TotalPayout int      `json:"total_payout"`
	Tier        string   `json:"tier"`
	IsWin       bool     `json:"is_win"`
	LineWins    int      `json:"line_wins"`
	Currency    int      `json:"currency"`
	Energy      int      `json:"energy"`
	Level       int      `json:"level"`
	Experience  int      `json:"experience"`
	WinStreak   int      `json:"win_streak"`
}

// LevelUpSSEPayload is broadcast once per level gained
type LevelUpSSEPayload struct {
	NewLevel int `json:"new_level"`
	Bonus    int `json:"bonus"`
}

// AutoSpinStoppedSSEPayload is broadcast when auto spin disengages
type AutoSpinStoppedSSEPayload struct {
	Reason string `json:"reason"`
}

// SpinRejectedSSEPayload is broadcast when a manual spin request is rejected
type SpinRejectedSSEPayload struct {
	Reason string `json:"reason"`
	Stake  int    `json:"stake"`
}
