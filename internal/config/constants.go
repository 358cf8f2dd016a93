package config

import "time"

// HTTP defaults
const (
	DefaultPort = 8080
)

// Timing defaults. Normal spins run the reels for ~2.5s, turbo cuts that
// to 800ms; auto-spin paces the next spin 1.5s (0.5s turbo) after settle.
// Reel stagger only shifts when each column's result becomes visible.
const (
	DefaultEnergyRegenInterval = 60 * time.Second
	DefaultSpinDuration        = 2500 * time.Millisecond
	DefaultTurboSpinDuration   = 800 * time.Millisecond
	DefaultAutoSpinDelay       = 1500 * time.Millisecond
	DefaultTurboAutoSpinDelay  = 500 * time.Millisecond
	DefaultReelStagger         = 150 * time.Millisecond
	DefaultTurboReelStagger    = 50 * time.Millisecond
)

// Spin history defaults
const (
	DefaultHistorySize = 50
	DefaultHistoryTTL  = 30 * time.Minute
)

// Economy defaults
const (
	DefaultStartingCurrency   = 10000
	DefaultStartingEnergy     = 5
	DefaultMaxEnergy          = 10
	DefaultStartingLevel      = 1
	DefaultStartingExperience = 0
	DefaultLevelUpBonus       = 500
	DefaultExperiencePerLevel = 1000
)

// Stake defaults
const (
	DefaultMinStake     = 25
	DefaultMaxStake     = 500
	DefaultStakeStep    = 25
	DefaultInitialStake = 100
)

// Rarity band defaults. Common/rare/epic/legendary must sum to 1;
// the legendary band grows with player level at the expense of common.
const (
	DefaultCommonBand    = 0.55
	DefaultRareBand      = 0.30
	DefaultEpicBand      = 0.05
	DefaultLegendaryBand = 0.10

	DefaultLegendaryBonusPerLevel = 0.01
	DefaultLegendaryBonusCap      = 0.05
)
