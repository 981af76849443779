package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// gridFromRows builds a grid from row-major literals so test grids read the
// way they render, then transposes into the [column][row] layout.
func gridFromRows(rows [][]string) domain.Grid {
	cols := len(rows[0])
	grid := make(domain.Grid, cols)
	for c := 0; c < cols; c++ {
		grid[c] = make([]string, len(rows))
		for r := range rows {
			grid[c][r] = rows[r][c]
		}
	}
	return grid
}

func TestEvaluate_ThreeOfAKindPaysPaytableMultiplier(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "B", "B"},
		{"B", "A", "B", "A", "B"},
		{"A", "B", "B", "A", "A"},
	})

	res := evaluate(grid, theme, 10)

	require.Len(t, res.winningLines, 1)
	win := res.winningLines[0]
	assert.Equal(t, "top", win.PaylineID)
	assert.Equal(t, "A", win.Symbol)
	assert.Equal(t, 3, win.Count)
	assert.Equal(t, int64(50), win.Payout)
	assert.Equal(t, int64(50), res.totalWin)
	assert.False(t, res.jackpotWon)
}

func TestEvaluate_TwoMatchesNeverPay(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "B", "A", "B"},
		{"B", "B", "A", "B", "A"},
		{"A", "B", "A", "A", "B"},
	})

	res := evaluate(grid, theme, 10)

	assert.Empty(t, res.winningLines)
	assert.Equal(t, int64(0), res.totalWin)
}

func TestEvaluate_WildSubstitutes(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "W", "A", "B", "B"},
		{"B", "A", "B", "A", "B"},
		{"A", "B", "B", "A", "A"},
	})

	res := evaluate(grid, theme, 10)

	require.Len(t, res.winningLines, 1)
	win := res.winningLines[0]
	assert.Equal(t, "A", win.Symbol)
	assert.Equal(t, 3, win.Count)
	assert.Equal(t, int64(50), win.Payout)
}

func TestEvaluate_WildAnchorMatchesEverything(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"W", "A", "B", "A", "B"},
		{"B", "B", "A", "B", "A"},
		{"A", "B", "B", "A", "B"},
	})

	res := evaluate(grid, theme, 10)

	require.Len(t, res.winningLines, 1)
	win := res.winningLines[0]
	assert.Equal(t, "W", win.Symbol)
	assert.Equal(t, 5, win.Count)
	assert.Equal(t, int64(2000), win.Payout)
	assert.True(t, res.jackpotWon)
}

func TestEvaluate_RunStopsAtFirstMismatch(t *testing.T) {
	theme := testTheme()
	// Top row resumes matching after a break; only the leading run counts.
	grid := gridFromRows([][]string{
		{"A", "A", "B", "A", "A"},
		{"B", "B", "A", "B", "B"},
		{"B", "A", "B", "B", "A"},
	})

	res := evaluate(grid, theme, 10)
	assert.Empty(t, res.winningLines)
}

func TestEvaluate_MultipleLinesAccumulateInDeclaredOrder(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "B", "B"},
		{"B", "B", "B", "A", "A"},
		{"A", "B", "A", "B", "A"},
	})

	res := evaluate(grid, theme, 10)

	require.Len(t, res.winningLines, 2)
	assert.Equal(t, "top", res.winningLines[0].PaylineID)
	assert.Equal(t, "middle", res.winningLines[1].PaylineID)
	assert.Equal(t, int64(50+20), res.totalWin)
}

func TestEvaluate_BonusMultipliesWholeLineTotal(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "B", "B"},
		{"B", "B", "B", "A", "A"},
		{"S", "S", "S", "B", "A"},
	})

	res := evaluate(grid, theme, 10)

	assert.Equal(t, 3, res.scatterCount)
	assert.True(t, res.bonusTriggered)
	assert.Equal(t, 5, res.freeSpins)
	// (50 + 20) doubled, not each line doubled separately.
	assert.Equal(t, int64(140), res.totalWin)
}

func TestEvaluate_ScattersBelowTriggerDoNothing(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "B", "B"},
		{"S", "B", "B", "A", "B"},
		{"B", "S", "A", "B", "A"},
	})

	res := evaluate(grid, theme, 10)

	assert.Equal(t, 2, res.scatterCount)
	assert.False(t, res.bonusTriggered)
	assert.Equal(t, 0, res.freeSpins)
	assert.Equal(t, int64(50), res.totalWin)
}

func TestEvaluate_JackpotAddsAfterBonusMultiplier(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "A", "A"},
		{"S", "S", "S", "B", "B"},
		{"B", "B", "A", "A", "B"},
	})

	res := evaluate(grid, theme, 10)

	require.True(t, res.jackpotWon)
	require.True(t, res.bonusTriggered)
	// Five-of-a-kind line win 500, doubled by the bonus, then the fixed
	// jackpot added on top rather than multiplied in.
	assert.Equal(t, int64(500*2+1000), res.totalWin)
}

func TestEvaluate_JackpotIsAdditiveNotMultiplicative(t *testing.T) {
	theme := testTheme()
	grid := gridFromRows([][]string{
		{"A", "A", "A", "A", "A"},
		{"B", "A", "B", "B", "A"},
		{"A", "B", "B", "A", "B"},
	})

	res := evaluate(grid, theme, 10)

	assert.True(t, res.jackpotWon)
	assert.False(t, res.bonusTriggered)
	assert.Equal(t, int64(500+1000), res.totalWin)
}

func TestPaytableMultiplier_ClampsPastTableEnd(t *testing.T) {
	symbol := &domain.Symbol{ID: "A", Weight: 1, Paytable: []int64{0, 5, 20}}

	assert.Equal(t, int64(0), paytableMultiplier(symbol, 2))
	assert.Equal(t, int64(5), paytableMultiplier(symbol, 3))
	assert.Equal(t, int64(20), paytableMultiplier(symbol, 4))
	assert.Equal(t, int64(20), paytableMultiplier(symbol, 5))
}

func TestCountScatters_WholeGrid(t *testing.T) {
	grid := gridFromRows([][]string{
		{"S", "A", "S", "B", "A"},
		{"B", "S", "B", "A", "B"},
		{"A", "B", "S", "B", "A"},
	})

	assert.Equal(t, 4, countScatters(grid, "S"))
	assert.Equal(t, 0, countScatters(grid, ""))
	assert.Equal(t, 0, countScatters(grid, "X"))
}
