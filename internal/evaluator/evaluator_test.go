package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

var (
	tiger = domain.Symbol{ID: "golden_tiger", Rarity: domain.RarityLegendary, BaseMultiplier: 50}
	frog  = domain.Symbol{ID: "prosperity_frog", Rarity: domain.RarityRare, BaseMultiplier: 15}
	coin  = domain.Symbol{ID: "lucky_coin", Rarity: domain.RarityCommon, BaseMultiplier: 5}
)

// fillGrid builds a grid from row-major symbol rows for readability
func fillGrid(rows [domain.GridRows][domain.GridCols]domain.Symbol) domain.Grid {
	var grid domain.Grid
	for row := 0; row < domain.GridRows; row++ {
		for col := 0; col < domain.GridCols; col++ {
			grid[col][row] = rows[row][col]
		}
	}
	return grid
}

func newEvaluator(t *testing.T) Service {
	t.Helper()
	cfg := config.DefaultGame()
	require.NoError(t, cfg.Validate())
	return NewService(cfg.Lines)
}

func TestEvaluate_NoWins(t *testing.T) {
	e := newEvaluator(t)

	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{tiger, frog, coin},
		{frog, coin, tiger},
		{frog, tiger, frog},
	})

	wins := e.Evaluate(grid, 100)
	assert.Empty(t, wins)
}

func TestEvaluate_MiddleRowWin(t *testing.T) {
	e := newEvaluator(t)

	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{tiger, frog, coin},
		{tiger, tiger, tiger},
		{coin, frog, coin},
	})

	wins := e.Evaluate(grid, 100)
	// The left column also matches nothing; only the middle row wins.
	require.Len(t, wins, 1)
	assert.Equal(t, "middle_row", wins[0].LineID)
	assert.Equal(t, "golden_tiger", wins[0].Symbol.ID)
	assert.Equal(t, 1.0, wins[0].LineWeight)
	assert.Equal(t, 5000.0, wins[0].RawPayout) // 100 × 50 × 1.0
}

func TestEvaluate_MultipleLines(t *testing.T) {
	e := newEvaluator(t)

	// Top row and left column both match frog; the shared corner cell
	// counts for both lines.
	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{frog, frog, frog},
		{frog, coin, tiger},
		{frog, tiger, coin},
	})

	wins := e.Evaluate(grid, 100)
	require.Len(t, wins, 2)

	ids := []string{wins[0].LineID, wins[1].LineID}
	assert.Contains(t, ids, "top_row")
	assert.Contains(t, ids, "left_column")
}

func TestEvaluate_DiagonalWin(t *testing.T) {
	e := newEvaluator(t)

	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{coin, frog, tiger},
		{frog, coin, tiger},
		{tiger, frog, coin},
	})

	wins := e.Evaluate(grid, 200)
	require.Len(t, wins, 1)
	assert.Equal(t, "main_diagonal", wins[0].LineID)
	assert.Equal(t, 500.0, wins[0].RawPayout) // 200 × 5 × 0.5
}

func TestEvaluate_FullGridWinsAllLines(t *testing.T) {
	e := newEvaluator(t)

	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{coin, coin, coin},
		{coin, coin, coin},
		{coin, coin, coin},
	})

	wins := e.Evaluate(grid, 100)
	assert.Len(t, wins, 8)
}

func TestEvaluate_Pure(t *testing.T) {
	e := newEvaluator(t)

	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{tiger, frog, coin},
		{tiger, tiger, tiger},
		{coin, frog, coin},
	})

	first := e.Evaluate(grid, 100)
	second := e.Evaluate(grid, 100)
	assert.Equal(t, first, second)
}

func TestEvaluate_ExactIDMatchOnly(t *testing.T) {
	e := newEvaluator(t)

	otherLegendary := domain.Symbol{ID: "imperial_crown", Rarity: domain.RarityLegendary, BaseMultiplier: 60}
	grid := fillGrid([domain.GridRows][domain.GridCols]domain.Symbol{
		{coin, frog, coin},
		{tiger, tiger, otherLegendary},
		{coin, frog, coin},
	})

	// Same rarity is not enough; IDs must match.
	wins := e.Evaluate(grid, 100)
	assert.Empty(t, wins)
}
