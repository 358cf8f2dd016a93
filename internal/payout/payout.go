// Package payout composes matched lines into a final spin outcome by
// stacking streak, level and theme multipliers onto the raw line payouts.
package payout

import (
	"math"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// Service defines the interface for payout composition
type Service interface {
	Compose(wins []domain.WinResult, stake int, snapshot domain.EconomySnapshot, theme domain.Theme) domain.SpinOutcome
}

type service struct{}

// NewService creates a new payout composer
func NewService() Service {
	return &service{}
}

// Compose stacks the aggregate multiplier and totals the payout.
// Streak and level bonuses are additive on a base of 1.0, the theme
// multiplier is multiplicative, and each line's contribution is floored
// to whole currency before summing.
func (s *service) Compose(wins []domain.WinResult, stake int, snapshot domain.EconomySnapshot, theme domain.Theme) domain.SpinOutcome {
	multiplier := s.stackedMultiplier(snapshot, theme)

	total := 0
	for _, win := range wins {
		total += int(math.Floor(win.RawPayout * multiplier))
	}

	outcome := domain.SpinOutcome{
		Stake:             stake,
		TotalPayout:       total,
		ExperienceGained:  total / ExperienceDivisor,
		Wins:              wins,
		AppliedMultiplier: multiplier,
		Tier:              classify(total, stake),
		IsWin:             len(wins) > 0,
	}
	outcome.IsJackpot = outcome.Tier == domain.TierJackpot

	return outcome
}

// stackedMultiplier builds the aggregate multiplier from the economy
// snapshot taken at spin start. Streak bonus caps at +100%.
func (s *service) stackedMultiplier(snapshot domain.EconomySnapshot, theme domain.Theme) float64 {
	streakBonus := float64(snapshot.WinStreak) * StreakBonusPerWin
	if streakBonus > StreakBonusCap {
		streakBonus = StreakBonusCap
	}
	levelBonus := float64(snapshot.Level) * LevelBonusPerLevel

	return (1.0 + streakBonus + levelBonus) * theme.GlobalMultiplier
}

// classify buckets the total payout into a win tier relative to stake
func classify(total, stake int) domain.WinTier {
	switch {
	case total <= 0:
		return domain.TierNone
	case total >= stake*domain.JackpotThreshold:
		return domain.TierJackpot
	case total >= stake*domain.BigWinThreshold:
		return domain.TierBigWin
	default:
		return domain.TierNormal
	}
}
