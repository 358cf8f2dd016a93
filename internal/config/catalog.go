package config

import (
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/naming"
)

// symbolSpec is the compact form the default catalog is written in;
// display names are derived from the IDs.
type symbolSpec struct {
	id         string
	emoji      string
	rarity     domain.Rarity
	multiplier float64
}

var defaultSymbolSpecs = []symbolSpec{
	// classic
	{"fortune_orange", "🍊", domain.RarityCommon, 4},
	{"lucky_coin", "🪙", domain.RarityCommon, 5},
	{"paper_lantern", "🏮", domain.RarityCommon, 6},
	{"red_envelope", "🧧", domain.RarityRare, 12},
	{"prosperity_frog", "🐸", domain.RarityRare, 15},
	{"golden_tiger", "🐯", domain.RarityLegendary, 50},

	// phoenix
	{"sacred_flame", "🔥", domain.RarityCommon, 5},
	{"gleaming_star", "⭐", domain.RarityCommon, 4},
	{"radiant_star", "🌟", domain.RarityRare, 16},
	{"snow_dove", "🕊️", domain.RarityRare, 14},
	{"royal_diamond", "💎", domain.RarityEpic, 30},
	{"imperial_crown", "👑", domain.RarityLegendary, 60},

	// panda
	{"lucky_bamboo", "🎋", domain.RarityCommon, 5},
	{"cherry_blossom", "🌸", domain.RarityCommon, 4},
	{"drifting_leaf", "🍃", domain.RarityCommon, 4},
	{"jade_herb", "🌿", domain.RarityRare, 12},
	{"silent_monk", "🧘", domain.RarityEpic, 28},
	{"zen_panda", "🐼", domain.RarityLegendary, 45},

	// dragon
	{"ocean_wave", "🌊", domain.RarityCommon, 6},
	{"drifting_cloud", "☁️", domain.RarityCommon, 4},
	{"storm_bolt", "⚡", domain.RarityRare, 18},
	{"crescent_moon", "🌙", domain.RarityRare, 13},
	{"crystal_orb", "🔮", domain.RarityEpic, 26},
	{"celestial_dragon", "🐲", domain.RarityLegendary, 55},

	// jade
	{"hibiscus_bloom", "🌺", domain.RarityCommon, 5},
	{"om_sigil", "🕉️", domain.RarityCommon, 7},
	{"jade_heart", "💚", domain.RarityRare, 15},
	{"opera_mask", "🎭", domain.RarityRare, 12},
	{"temple_pagoda", "🏯", domain.RarityEpic, 27},
	{"sacred_lotus", "🪷", domain.RarityLegendary, 48},

	// celestial
	{"stardust", "✨", domain.RarityCommon, 5},
	{"shooting_star", "💫", domain.RarityCommon, 6},
	{"ringed_planet", "🪐", domain.RarityRare, 17},
	{"star_seal", "🔯", domain.RarityEpic, 32},
	{"deep_cosmos", "🌌", domain.RarityLegendary, 65},
}

var defaultThemes = []domain.Theme{
	{
		ID:               "classic",
		Name:             "Classic Fortune",
		GlobalMultiplier: 1.0,
		SymbolIDs: []string{
			"fortune_orange", "lucky_coin", "paper_lantern",
			"red_envelope", "prosperity_frog", "golden_tiger",
		},
	},
	{
		ID:               "phoenix",
		Name:             "Phoenix Rising",
		GlobalMultiplier: 1.1,
		SymbolIDs: []string{
			"sacred_flame", "gleaming_star", "radiant_star",
			"snow_dove", "royal_diamond", "imperial_crown",
		},
	},
	{
		ID:               "panda",
		Name:             "Panda Garden",
		GlobalMultiplier: 1.05,
		SymbolIDs: []string{
			"lucky_bamboo", "cherry_blossom", "drifting_leaf",
			"jade_herb", "silent_monk", "zen_panda",
		},
	},
	{
		ID:               "dragon",
		Name:             "Dragon Storm",
		GlobalMultiplier: 1.25,
		SymbolIDs: []string{
			"ocean_wave", "drifting_cloud", "storm_bolt",
			"crescent_moon", "crystal_orb", "celestial_dragon",
		},
	},
	{
		ID:               "jade",
		Name:             "Jade Temple",
		GlobalMultiplier: 1.15,
		SymbolIDs: []string{
			"hibiscus_bloom", "om_sigil", "jade_heart",
			"opera_mask", "temple_pagoda", "sacred_lotus",
		},
	},
	{
		ID:               "celestial",
		Name:             "Celestial Drift",
		GlobalMultiplier: 1.3,
		SymbolIDs: []string{
			"stardust", "shooting_star", "ringed_planet",
			"radiant_star", "star_seal", "deep_cosmos",
		},
	},
}

// Line weight defaults. The middle row is the primary payline; rows
// above and below pay reduced, columns and diagonals least.
const (
	MiddleRowLineWeight = 1.0
	OuterRowLineWeight  = 0.6
	ColumnLineWeight    = 0.5
	DiagonalLineWeight  = 0.5
)

func defaultLines() []domain.Line {
	c := func(col, row int) domain.Coord { return domain.Coord{Col: col, Row: row} }
	return []domain.Line{
		{ID: "middle_row", Name: "Middle Row", Weight: MiddleRowLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 1), c(1, 1), c(2, 1)}},
		{ID: "top_row", Name: "Top Row", Weight: OuterRowLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 0), c(1, 0), c(2, 0)}},
		{ID: "bottom_row", Name: "Bottom Row", Weight: OuterRowLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 2), c(1, 2), c(2, 2)}},
		{ID: "left_column", Name: "Left Column", Weight: ColumnLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 0), c(0, 1), c(0, 2)}},
		{ID: "middle_column", Name: "Middle Column", Weight: ColumnLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(1, 0), c(1, 1), c(1, 2)}},
		{ID: "right_column", Name: "Right Column", Weight: ColumnLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(2, 0), c(2, 1), c(2, 2)}},
		{ID: "main_diagonal", Name: "Main Diagonal", Weight: DiagonalLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 0), c(1, 1), c(2, 2)}},
		{ID: "anti_diagonal", Name: "Anti Diagonal", Weight: DiagonalLineWeight,
			Coords: [domain.GridCols]domain.Coord{c(0, 2), c(1, 1), c(2, 0)}},
	}
}

// DefaultGame builds the stock game configuration: six themed symbol
// sets over a shared catalog, eight paylines, and the default economy,
// stake, band and timing coefficients.
func DefaultGame() *GameConfig {
	symbols := make([]domain.Symbol, 0, len(defaultSymbolSpecs))
	for _, s := range defaultSymbolSpecs {
		symbols = append(symbols, domain.Symbol{
			ID:             s.id,
			DisplayName:    naming.DisplayName(s.id),
			Emoji:          s.emoji,
			Rarity:         s.rarity,
			BaseMultiplier: s.multiplier,
		})
	}

	return &GameConfig{
		Symbols:      symbols,
		Themes:       defaultThemes,
		Lines:        defaultLines(),
		DefaultTheme: "classic",
		Bands: RarityBands{
			Common:                 DefaultCommonBand,
			Rare:                   DefaultRareBand,
			Epic:                   DefaultEpicBand,
			Legendary:              DefaultLegendaryBand,
			LegendaryBonusPerLevel: DefaultLegendaryBonusPerLevel,
			LegendaryBonusCap:      DefaultLegendaryBonusCap,
		},
		Economy: EconomyConfig{
			StartingCurrency:   DefaultStartingCurrency,
			StartingEnergy:     DefaultStartingEnergy,
			MaxEnergy:          DefaultMaxEnergy,
			StartingLevel:      DefaultStartingLevel,
			StartingExperience: DefaultStartingExperience,
			LevelUpBonus:       DefaultLevelUpBonus,
			ExperiencePerLevel: DefaultExperiencePerLevel,
		},
		Stakes: StakeConfig{
			Min:     DefaultMinStake,
			Max:     DefaultMaxStake,
			Step:    DefaultStakeStep,
			Initial: DefaultInitialStake,
		},
		Timing: TimingConfig{
			SpinDuration:       DefaultSpinDuration,
			TurboSpinDuration:  DefaultTurboSpinDuration,
			AutoSpinDelay:      DefaultAutoSpinDelay,
			TurboAutoSpinDelay: DefaultTurboAutoSpinDelay,
			ReelStagger:        DefaultReelStagger,
			TurboReelStagger:   DefaultTurboReelStagger,
		},
	}
}
