package domain

// Rarity classifies how often a symbol is drawn and how much it pays
type Rarity string

// Rarity tiers, from most to least common
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists all tiers in band order (common first)
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// Valid reports whether r is a known rarity tier
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Symbol is an immutable catalog entry. The catalog is loaded once at
// startup and never mutated afterwards; grids reference symbols by value.
type Symbol struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	Emoji          string  `json:"emoji,omitempty"`
	Rarity         Rarity  `json:"rarity"`
	BaseMultiplier float64 `json:"base_multiplier"`
}

// Grid dimensions. The baseline layout is 3 columns of 3 rows each,
// indexed grid[col][row].
const (
	GridCols = 3
	GridRows = 3
)

// Grid is one spin's symbol arrangement. Produced fresh per spin and
// discarded at settlement.
type Grid [GridCols][GridRows]Symbol

// At returns the symbol at the given coordinate
func (g Grid) At(c Coord) Symbol {
	return g[c.Col][c.Row]
}

// Coord addresses a single grid cell
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Line is a named, ordered set of grid coordinates checked for a
// matching run. Lines are static configuration.
type Line struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Coords [GridCols]Coord `json:"coords"`
	Weight float64         `json:"weight"`
}

// Theme names a symbol subset and a global payout multiplier. The
// generator restricts draws to the active theme's symbols.
type Theme struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	SymbolIDs        []string `json:"symbol_ids"`
	GlobalMultiplier float64  `json:"global_multiplier"`
}
