package engine

import (
	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/rng"
)

// generateGrid materializes the symbol matrix, one weighted draw per cell,
// column by column then row by row. Symbols are walked strictly in their
// declared order: that order is part of the reproducibility contract, so the
// fresh-spin and replay paths share this exact loop.
func generateGrid(theme *domain.ThemeConfig, src *rng.Source) domain.Grid {
	totalWeight := float64(theme.TotalWeight())

	grid := make(domain.Grid, theme.Columns)
	for col := 0; col < theme.Columns; col++ {
		grid[col] = make([]string, theme.Rows)
		for row := 0; row < theme.Rows; row++ {
			grid[col][row] = drawSymbol(theme, src, totalWeight)
		}
	}
	return grid
}

// drawSymbol selects one symbol by cumulative weight. If floating-point
// accumulation leaves a residual past the last symbol, the first symbol is
// returned so that a draw can never fail.
func drawSymbol(theme *domain.ThemeConfig, src *rng.Source, totalWeight float64) string {
	threshold := src.Next() * totalWeight
	for i := range theme.Symbols {
		threshold -= float64(theme.Symbols[i].Weight)
		if threshold <= 0 {
			return theme.Symbols[i].ID
		}
	}
	return theme.Symbols[0].ID
}
