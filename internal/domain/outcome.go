package domain

import "time"

// WinTier classifies a spin's total payout relative to the stake.
// External collaborators use it to pick effect intensity.
type WinTier string

const (
	TierNone    WinTier = "none"
	TierNormal  WinTier = "normal"
	TierBigWin  WinTier = "big_win"
	TierJackpot WinTier = "jackpot"
)

// Payout tier thresholds, in multiples of the stake
const (
	BigWinThreshold  = 5
	JackpotThreshold = 20
)

// WinResult describes one matched line before multiplier stacking
type WinResult struct {
	Symbol     Symbol  `json:"symbol"`
	LineID     string  `json:"line_id"`
	LineWeight float64 `json:"line_weight"`
	RawPayout  float64 `json:"raw_payout"`
}

// SpinOutcome aggregates everything a settled spin produced
type SpinOutcome struct {
	Stake             int         `json:"stake"`
	TotalPayout       int         `json:"total_payout"`
	ExperienceGained  int         `json:"experience_gained"`
	Wins              []WinResult `json:"wins"`
	AppliedMultiplier float64     `json:"applied_multiplier"`
	Tier              WinTier     `json:"tier"`
	IsJackpot         bool        `json:"is_jackpot"`
	IsWin             bool        `json:"is_win"`
}

// SpinRecord is the persisted/history view of a settled spin
type SpinRecord struct {
	SessionID   string      `json:"session_id"`
	Outcome     SpinOutcome `json:"outcome"`
	GridSymbols []string    `json:"grid_symbols"` // column-major symbol IDs
	SettledAt   time.Time   `json:"settled_at"`
}
