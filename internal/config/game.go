package config

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// GameConfig carries every tunable of the outcome engine: the symbol
// catalog, the theme sets, the paylines, the rarity bands and the
// economy/stake/timing coefficients. It is assembled once at startup
// and treated as immutable; construction fails fast on invalid data.
type GameConfig struct {
	Symbols []domain.Symbol `validate:"required,min=1,dive"`
	Themes  []domain.Theme  `validate:"required,min=1,dive"`
	Lines   []domain.Line   `validate:"required,min=1,dive"`

	DefaultTheme string `validate:"required"`

	Bands   RarityBands
	Economy EconomyConfig
	Stakes  StakeConfig
	Timing  TimingConfig
}

// RarityBands partitions [0,1) into cumulative draw-probability bands
type RarityBands struct {
	Common    float64 `validate:"gt=0,lte=1"`
	Rare      float64 `validate:"gt=0,lte=1"`
	Epic      float64 `validate:"gte=0,lte=1"`
	Legendary float64 `validate:"gt=0,lte=1"`

	// LegendaryBonusPerLevel shifts probability from common to legendary
	// as the player levels, capped at LegendaryBonusCap.
	LegendaryBonusPerLevel float64 `validate:"gte=0"`
	LegendaryBonusCap      float64 `validate:"gte=0"`
}

// EconomyConfig holds the economy state machine's coefficients
type EconomyConfig struct {
	StartingCurrency   int `validate:"gte=0"`
	StartingEnergy     int `validate:"gte=0"`
	MaxEnergy          int `validate:"gt=0"`
	StartingLevel      int `validate:"gt=0"`
	StartingExperience int `validate:"gte=0"`
	LevelUpBonus       int `validate:"gte=0"`
	// ExperiencePerLevel scales the threshold: level N requires N*ExperiencePerLevel
	ExperiencePerLevel int `validate:"gt=0"`
}

// StakeConfig bounds the stake and its adjustment step
type StakeConfig struct {
	Min     int `validate:"gt=0"`
	Max     int `validate:"gt=0"`
	Step    int `validate:"gt=0"`
	Initial int `validate:"gt=0"`
}

// TimingConfig holds spin and pacing durations
type TimingConfig struct {
	SpinDuration       time.Duration `validate:"gt=0"`
	TurboSpinDuration  time.Duration `validate:"gt=0"`
	AutoSpinDelay      time.Duration `validate:"gt=0"`
	TurboAutoSpinDelay time.Duration `validate:"gt=0"`
	ReelStagger        time.Duration `validate:"gte=0"`
	TurboReelStagger   time.Duration `validate:"gte=0"`
}

const bandSumTolerance = 1e-9

// Validate checks structural and cross-field consistency. Any failure
// here is a programmer/configuration error and must abort startup.
func (g *GameConfig) Validate() error {
	if len(g.Symbols) == 0 {
		return domain.ErrEmptyCatalog
	}
	if len(g.Lines) == 0 {
		return domain.ErrEmptyLineSet
	}

	v := validator.New()
	if err := v.Struct(g); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	symbolIDs := make(map[string]bool, len(g.Symbols))
	for _, s := range g.Symbols {
		if !s.Rarity.Valid() {
			return fmt.Errorf("%w: symbol %q has unknown rarity %q", domain.ErrInvalidConfig, s.ID, s.Rarity)
		}
		if s.BaseMultiplier <= 0 {
			return fmt.Errorf("%w: symbol %q has non-positive multiplier", domain.ErrInvalidConfig, s.ID)
		}
		if symbolIDs[s.ID] {
			return fmt.Errorf("%w: duplicate symbol %q", domain.ErrInvalidConfig, s.ID)
		}
		symbolIDs[s.ID] = true
	}

	sum := g.Bands.Common + g.Bands.Rare + g.Bands.Epic + g.Bands.Legendary
	if math.Abs(sum-1.0) > bandSumTolerance {
		return fmt.Errorf("%w: rarity bands sum to %v, want 1", domain.ErrInvalidConfig, sum)
	}
	if g.Bands.LegendaryBonusCap >= g.Bands.Common {
		return fmt.Errorf("%w: legendary bonus cap %v would exhaust the common band", domain.ErrInvalidConfig, g.Bands.LegendaryBonusCap)
	}

	for _, l := range g.Lines {
		if l.Weight <= 0 {
			return fmt.Errorf("%w: line %q has non-positive weight", domain.ErrInvalidConfig, l.ID)
		}
		for _, c := range l.Coords {
			if c.Col < 0 || c.Col >= domain.GridCols || c.Row < 0 || c.Row >= domain.GridRows {
				return fmt.Errorf("%w: line %q coordinate out of grid", domain.ErrInvalidConfig, l.ID)
			}
		}
	}

	foundDefault := false
	for _, t := range g.Themes {
		if t.GlobalMultiplier <= 0 {
			return fmt.Errorf("%w: theme %q has non-positive global multiplier", domain.ErrInvalidConfig, t.ID)
		}
		for _, id := range t.SymbolIDs {
			if !symbolIDs[id] {
				return fmt.Errorf("%w: theme %q references unknown symbol %q", domain.ErrInvalidConfig, t.ID, id)
			}
		}
		if t.ID == g.DefaultTheme {
			foundDefault = true
		}
	}
	if !foundDefault {
		return fmt.Errorf("%w: default theme %q not configured", domain.ErrUnknownTheme, g.DefaultTheme)
	}

	if g.Stakes.Min > g.Stakes.Max {
		return fmt.Errorf("%w: min stake exceeds max stake", domain.ErrInvalidConfig)
	}
	if g.Stakes.Initial < g.Stakes.Min || g.Stakes.Initial > g.Stakes.Max {
		return fmt.Errorf("%w: initial stake outside [min,max]", domain.ErrInvalidConfig)
	}

	return nil
}

// ThemeByID returns the configured theme with the given ID
func (g *GameConfig) ThemeByID(id string) (domain.Theme, bool) {
	for _, t := range g.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Theme{}, false
}

// ApplyTimingOverrides copies env-provided durations over the game defaults
func (g *GameConfig) ApplyTimingOverrides(cfg *Config) {
	g.Timing = TimingConfig{
		SpinDuration:       cfg.SpinDuration,
		TurboSpinDuration:  cfg.TurboSpinDuration,
		AutoSpinDelay:      cfg.AutoSpinDelay,
		TurboAutoSpinDelay: cfg.TurboAutoSpinDelay,
		ReelStagger:        cfg.ReelStagger,
		TurboReelStagger:   cfg.TurboReelStagger,
	}
}
