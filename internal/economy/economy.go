// Package economy owns the mutable player economy state. Every
// currency, energy, experience and streak mutation flows through the
// service under a single mutex; collaborators only ever see snapshots.
package economy

import (
	"context"
	"sync"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/utils"
)

// Service defines the interface for economy operations
type Service interface {
	// CanAffordSpin reports whether a spin at the given stake would be
	// authorized right now, without mutating anything.
	CanAffordSpin(stake int) error

	// BeginSpin atomically deducts one energy and the stake. It is the
	// single authorization gate: on any error no state changes.
	BeginSpin(ctx context.Context, stake int) (domain.EconomySnapshot, error)

	// SettleSpin credits the payout once, updates the streak and runs
	// the level-up loop with experience carry-over.
	SettleSpin(ctx context.Context, outcome domain.SpinOutcome) (domain.SettleResult, domain.EconomySnapshot)

	// RegenerateEnergy adds one energy up to the cap and returns the
	// new energy value.
	RegenerateEnergy(ctx context.Context) int

	// ClampStake bounds a desired stake to the affordable, step-aligned range
	ClampStake(desired int) int

	// Snapshot returns a read-only copy of the current state
	Snapshot() domain.EconomySnapshot
}

type state struct {
	currency            int
	energy              int
	level               int
	experience          int
	winStreak           int
	totalSpins          int64
	totalCurrencyEarned int64
}

type service struct {
	mu       sync.Mutex
	state    state
	cfg      config.EconomyConfig
	stakes   config.StakeConfig
	eventBus event.Bus
}

// NewService creates a new economy service seeded from configuration
func NewService(cfg config.EconomyConfig, stakes config.StakeConfig, eventBus event.Bus) Service {
	return &service{
		state: state{
			currency:   cfg.StartingCurrency,
			energy:     cfg.StartingEnergy,
			level:      cfg.StartingLevel,
			experience: cfg.StartingExperience,
		},
		cfg:      cfg,
		stakes:   stakes,
		eventBus: eventBus,
	}
}

// NewServiceFromSnapshot creates an economy service resumed from a
// persisted snapshot, e.g. after a restart.
func NewServiceFromSnapshot(cfg config.EconomyConfig, stakes config.StakeConfig, eventBus event.Bus, snapshot domain.EconomySnapshot) Service {
	return &service{
		state: state{
			currency:            snapshot.Currency,
			energy:              utils.ClampInt(snapshot.Energy, 0, cfg.MaxEnergy),
			level:               snapshot.Level,
			experience:          snapshot.Experience,
			winStreak:           snapshot.WinStreak,
			totalSpins:          snapshot.TotalSpins,
			totalCurrencyEarned: snapshot.TotalCurrencyEarned,
		},
		cfg:      cfg,
		stakes:   stakes,
		eventBus: eventBus,
	}
}

func (s *service) CanAffordSpin(stake int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canAffordLocked(stake)
}

func (s *service) canAffordLocked(stake int) error {
	if s.state.energy < 1 {
		return domain.ErrInsufficientEnergy
	}
	if s.state.currency < stake {
		return domain.ErrInsufficientCurrency
	}
	return nil
}

func (s *service) BeginSpin(ctx context.Context, stake int) (domain.EconomySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.canAffordLocked(stake); err != nil {
		return domain.EconomySnapshot{}, err
	}

	s.state.energy--
	s.state.currency -= stake

	log := logger.FromContext(ctx)
	log.Debug("spin authorized",
		"stake", stake,
		"energy", s.state.energy,
		"currency", s.state.currency)

	return s.snapshotLocked(), nil
}

func (s *service) SettleSpin(ctx context.Context, outcome domain.SpinOutcome) (domain.SettleResult, domain.EconomySnapshot) {
	s.mu.Lock()

	// Credit the payout exactly once. The spin counter moves here too,
	// so snapshots taken mid-spin only count settled spins.
	s.state.currency += outcome.TotalPayout
	s.state.totalCurrencyEarned += int64(outcome.TotalPayout)
	s.state.totalSpins++

	if outcome.IsWin {
		s.state.winStreak++
	} else {
		s.state.winStreak = 0
	}

	s.state.experience += outcome.ExperienceGained

	result := domain.SettleResult{
		NewLevel:    s.state.level,
		StreakAfter: s.state.winStreak,
	}

	// Level-up loop: excess experience carries over, each level pays
	// the flat bonus. Large payouts can clear several levels at once.
	var levelUps []event.Event
	for s.state.experience >= s.experienceToNextLocked() {
		s.state.experience -= s.experienceToNextLocked()
		s.state.level++
		s.state.currency += s.cfg.LevelUpBonus

		result.LevelsGained++
		result.NewLevel = s.state.level
		levelUps = append(levelUps, event.NewLevelUpEvent(s.state.level, s.cfg.LevelUpBonus))
	}
	if result.LevelsGained > 0 {
		result.LevelUpBonus = s.cfg.LevelUpBonus
	}
	result.CurrencyAfter = s.state.currency

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	// Publish outside the lock, in level order.
	log := logger.FromContext(ctx)
	for _, evt := range levelUps {
		if err := s.eventBus.Publish(ctx, evt); err != nil {
			log.Warn("failed to publish level up event", "error", err)
		}
	}

	return result, snapshot
}

func (s *service) RegenerateEnergy(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.energy < s.cfg.MaxEnergy {
		s.state.energy++
		logger.FromContext(ctx).Debug("energy regenerated", "energy", s.state.energy)
	}
	return s.state.energy
}

func (s *service) ClampStake(desired int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	upper := s.stakes.Max
	if s.state.currency < upper {
		upper = utils.SnapToStep(s.state.currency, s.stakes.Min, s.stakes.Step)
	}
	if upper < s.stakes.Min {
		upper = s.stakes.Min
	}

	snapped := utils.SnapToStep(desired, s.stakes.Min, s.stakes.Step)
	return utils.ClampInt(snapped, s.stakes.Min, upper)
}

func (s *service) Snapshot() domain.EconomySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *service) snapshotLocked() domain.EconomySnapshot {
	return domain.EconomySnapshot{
		Currency:            s.state.currency,
		Energy:              s.state.energy,
		MaxEnergy:           s.cfg.MaxEnergy,
		Level:               s.state.level,
		Experience:          s.state.experience,
		ExperienceToNext:    s.experienceToNextLocked(),
		WinStreak:           s.state.winStreak,
		TotalSpins:          s.state.totalSpins,
		TotalCurrencyEarned: s.state.totalCurrencyEarned,
	}
}

// experienceToNextLocked returns the threshold for the current level
func (s *service) experienceToNextLocked() int {
	return s.state.level * s.cfg.ExperiencePerLevel
}
