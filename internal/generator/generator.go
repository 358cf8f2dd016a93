// Package generator draws weighted random symbols from the configured
// catalog, biased by theme and player level.
package generator

import (
	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/utils"
)

// SpinContext carries the per-spin inputs that influence the draw
type SpinContext struct {
	Level   int
	ThemeID string
}

// Service defines the interface for symbol generation
type Service interface {
	Next(sc SpinContext) (domain.Symbol, error)
	Grid(sc SpinContext) (domain.Grid, error)
}

type service struct {
	cfg  *config.GameConfig
	rng  func() float64 // Injectable for testing
	pick func(n int) int

	byThemeRarity map[string]map[domain.Rarity][]domain.Symbol
	byTheme       map[string][]domain.Symbol
	catalog       []domain.Symbol
}

// NewService creates a new generator service over a validated game config
func NewService(cfg *config.GameConfig) Service {
	byID := make(map[string]domain.Symbol, len(cfg.Symbols))
	for _, s := range cfg.Symbols {
		byID[s.ID] = s
	}

	byThemeRarity := make(map[string]map[domain.Rarity][]domain.Symbol, len(cfg.Themes))
	byTheme := make(map[string][]domain.Symbol, len(cfg.Themes))
	for _, theme := range cfg.Themes {
		buckets := make(map[domain.Rarity][]domain.Symbol)
		for _, id := range theme.SymbolIDs {
			sym := byID[id]
			buckets[sym.Rarity] = append(buckets[sym.Rarity], sym)
			byTheme[theme.ID] = append(byTheme[theme.ID], sym)
		}
		byThemeRarity[theme.ID] = buckets
	}

	return &service{
		cfg:  cfg,
		rng:  utils.RandomFloat,
		pick: func(n int) int { return utils.RandomInt(0, n-1) },

		byThemeRarity: byThemeRarity,
		byTheme:       byTheme,
		catalog:       cfg.Symbols,
	}
}

// Next draws a single symbol. The rarity band is rolled first, shifted
// toward legendary by player level, then a symbol of that rarity is
// picked uniformly from the active theme's set. A theme with no symbol
// of the rolled rarity falls back to the whole catalog.
func (s *service) Next(sc SpinContext) (domain.Symbol, error) {
	pool, ok := s.byTheme[sc.ThemeID]
	if !ok || len(pool) == 0 {
		return domain.Symbol{}, domain.ErrUnknownTheme
	}

	rarity := s.rollRarity(sc.Level)

	candidates := s.byThemeRarity[sc.ThemeID][rarity]
	if len(candidates) == 0 {
		// Theme carries no symbol of the rolled rarity; draw uniformly
		// from the whole catalog instead.
		candidates = s.catalog
	}

	return candidates[s.pick(len(candidates))], nil
}

// Grid fills a full reel grid column by column
func (s *service) Grid(sc SpinContext) (domain.Grid, error) {
	var grid domain.Grid
	for col := 0; col < domain.GridCols; col++ {
		for row := 0; row < domain.GridRows; row++ {
			sym, err := s.Next(sc)
			if err != nil {
				return domain.Grid{}, err
			}
			grid[col][row] = sym
		}
	}
	return grid, nil
}

// rollRarity maps a uniform roll onto the cumulative rarity bands.
// Levels grow the legendary band at the expense of the common one,
// capped so common never disappears.
func (s *service) rollRarity(level int) domain.Rarity {
	bands := s.cfg.Bands

	bonus := float64(level) * bands.LegendaryBonusPerLevel
	if bonus > bands.LegendaryBonusCap {
		bonus = bands.LegendaryBonusCap
	}

	roll := s.rng()

	cumulative := bands.Common - bonus
	if roll < cumulative {
		return domain.RarityCommon
	}
	cumulative += bands.Rare
	if roll < cumulative {
		return domain.RarityRare
	}
	cumulative += bands.Epic
	if roll < cumulative {
		return domain.RarityEpic
	}
	return domain.RarityLegendary
}
