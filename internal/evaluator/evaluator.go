// Package evaluator checks a spun grid against the configured payline
// set. Evaluation is pure: the same grid and stake always produce the
// same results, in line-configuration order.
package evaluator

import (
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// Service defines the interface for line-win evaluation
type Service interface {
	Evaluate(grid domain.Grid, stake int) []domain.WinResult
}

type service struct {
	lines []domain.Line
}

// NewService creates a new evaluator over a fixed line set
func NewService(lines []domain.Line) Service {
	// Defensive copy; the line set must not change under evaluation.
	own := make([]domain.Line, len(lines))
	copy(own, lines)
	return &service{lines: own}
}

// Evaluate checks every configured line and returns one WinResult per
// fully matched line. A line matches only when all its cells hold the
// same symbol ID. No early exit: multiple lines can win on one grid.
func (s *service) Evaluate(grid domain.Grid, stake int) []domain.WinResult {
	var wins []domain.WinResult

	for _, line := range s.lines {
		first := grid.At(line.Coords[0])

		matched := true
		for _, coord := range line.Coords[1:] {
			if grid.At(coord).ID != first.ID {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		wins = append(wins, domain.WinResult{
			Symbol:     first,
			LineID:     line.ID,
			LineWeight: line.Weight,
			RawPayout:  float64(stake) * first.BaseMultiplier * line.Weight,
		})
	}

	return wins
}
