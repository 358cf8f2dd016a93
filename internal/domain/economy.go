package domain

// EconomySnapshot is the read-only view of the economy state handed to
// external collaborators. The mutable root lives in the economy service
// and is never exposed directly.
type EconomySnapshot struct {
	Currency            int   `json:"currency"`
	Energy              int   `json:"energy"`
	MaxEnergy           int   `json:"max_energy"`
	Level               int   `json:"level"`
	Experience          int   `json:"experience"`
	ExperienceToNext    int   `json:"experience_to_next"`
	WinStreak           int   `json:"win_streak"`
	TotalSpins          int64 `json:"total_spins"`
	TotalCurrencyEarned int64 `json:"total_currency_earned"`
}

// SettleResult summarizes the state mutations one settlement caused
type SettleResult struct {
	LevelsGained  int `json:"levels_gained"`
	LevelUpBonus  int `json:"level_up_bonus"`
	NewLevel      int `json:"new_level"`
	StreakAfter   int `json:"streak_after"`
	CurrencyAfter int `json:"currency_after"`
}
