package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/rng"
)

func TestGenerateGrid_Dimensions(t *testing.T) {
	theme := testTheme()
	src := rng.NewSource(bytes.Repeat([]byte{0x42}, rng.SeedBytes))

	grid := generateGrid(theme, src)

	require.Len(t, grid, theme.Columns)
	for col := range grid {
		require.Len(t, grid[col], theme.Rows)
		for row := range grid[col] {
			assert.NotNil(t, theme.SymbolByID(grid[col][row]))
		}
	}
}

func TestGenerateGrid_SameSeedSameGrid(t *testing.T) {
	theme := testTheme()
	seed := bytes.Repeat([]byte{0x07}, rng.SeedBytes)

	first := generateGrid(theme, rng.NewSource(seed))
	second := generateGrid(theme, rng.NewSource(seed))

	assert.True(t, first.Equal(second))
}

func TestGenerateGrid_SymbolOrderChangesOutcome(t *testing.T) {
	seed := bytes.Repeat([]byte{0x09}, rng.SeedBytes)

	theme := testTheme()
	reordered := testTheme()
	reordered.Symbols[0], reordered.Symbols[1] = reordered.Symbols[1], reordered.Symbols[0]

	original := generateGrid(theme, rng.NewSource(seed))
	swapped := generateGrid(reordered, rng.NewSource(seed))

	assert.False(t, original.Equal(swapped))
}

func TestDrawSymbol_WeightedFairness(t *testing.T) {
	theme := &domain.ThemeConfig{
		Rows:    1,
		Columns: 1,
		Symbols: []domain.Symbol{
			{ID: "dominant", Weight: 99, Paytable: []int64{0}},
			{ID: "rare1", Weight: 1, Paytable: []int64{0}},
			{ID: "rare2", Weight: 1, Paytable: []int64{0}},
		},
	}
	totalWeight := float64(theme.TotalWeight())

	seed, err := rng.NewSeed()
	require.NoError(t, err)
	src := rng.NewSource(seed)

	const draws = 100_000
	counts := make(map[string]int, len(theme.Symbols))
	for i := 0; i < draws; i++ {
		counts[drawSymbol(theme, src, totalWeight)]++
	}

	dominantShare := float64(counts["dominant"]) / draws
	assert.InDelta(t, 99.0/101.0, dominantShare, 0.01)
	assert.Greater(t, counts["rare1"], 0)
	assert.Greater(t, counts["rare2"], 0)
}

func TestDrawSymbol_SingleSymbolAlwaysSelected(t *testing.T) {
	theme := &domain.ThemeConfig{
		Rows:    1,
		Columns: 1,
		Symbols: []domain.Symbol{{ID: "only", Weight: 1, Paytable: []int64{0}}},
	}

	seed, err := rng.NewSeed()
	require.NoError(t, err)
	src := rng.NewSource(seed)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, "only", drawSymbol(theme, src, 1))
	}
}
