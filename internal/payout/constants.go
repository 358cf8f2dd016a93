package payout

// Multiplier stacking coefficients. Streak and level bonuses add onto a
// base of 1.0; the theme's global multiplier then scales the sum.
const (
	StreakBonusPerWin  = 0.1
	StreakBonusCap     = 1.0
	LevelBonusPerLevel = 0.05
)

// ExperienceDivisor converts payout into experience (1 XP per 10 paid)
const ExperienceDivisor = 10
