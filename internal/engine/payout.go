package engine

import (
	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// evalResult collects everything the payout evaluator derives from a grid.
type evalResult struct {
	totalWin       int64
	winningLines   []domain.WinningLine
	scatterCount   int
	bonusTriggered bool
	freeSpins      int
	jackpotWon     bool
}

// evaluate scans all paylines, scatters and jackpot rules against the grid.
// Paylines are evaluated strictly in theme-declared order and results
// appended in that order; the ordering is observable in the outcome and
// replay comparison depends on it. All payout math is integer minor-unit
// arithmetic, so there is nothing to floor at the end.
func evaluate(grid domain.Grid, theme *domain.ThemeConfig, betAmount int64) evalResult {
	var res evalResult

	for i := range theme.Paylines {
		line := &theme.Paylines[i]
		win, ok := evaluateLine(grid, theme, line, betAmount)
		if !ok {
			continue
		}
		res.winningLines = append(res.winningLines, win)
		res.totalWin += win.Payout
		if win.Count == len(line.Positions) {
			res.jackpotWon = true
		}
	}

	res.scatterCount = countScatters(grid, theme.ScatterSymbol)
	if theme.ScatterSymbol != "" && theme.Bonus.ScatterTrigger > 0 && res.scatterCount >= theme.Bonus.ScatterTrigger {
		res.bonusTriggered = true
		res.freeSpins = theme.Bonus.FreeSpins
		if theme.Bonus.Multiplier > 0 {
			// Multiplier scope is the whole line-win total, not per line.
			res.totalWin *= theme.Bonus.Multiplier
		}
	}

	// Jackpot is additive and applied after the bonus multiplier.
	if res.jackpotWon && theme.Jackpot.Amount > 0 {
		res.totalWin += theme.Jackpot.Amount
	}

	return res
}

// evaluateLine walks one payline: the symbol at the first position anchors
// the line, and the match run extends while each subsequent symbol equals
// the anchor or either side is the wild. Lines shorter than three matches
// never pay.
func evaluateLine(grid domain.Grid, theme *domain.ThemeConfig, line *domain.Payline, betAmount int64) (domain.WinningLine, bool) {
	anchor := symbolAt(grid, line.Positions[0])

	count := 1
	for _, pos := range line.Positions[1:] {
		sym := symbolAt(grid, pos)
		if sym == anchor || isWild(theme, sym) || isWild(theme, anchor) {
			count++
			continue
		}
		break
	}

	if count < MinMatchCount {
		return domain.WinningLine{}, false
	}

	symbol := theme.SymbolByID(anchor)
	if symbol == nil {
		return domain.WinningLine{}, false
	}

	multiplier := paytableMultiplier(symbol, count)
	if multiplier <= 0 {
		return domain.WinningLine{}, false
	}

	return domain.WinningLine{
		PaylineID: line.ID,
		Symbol:    anchor,
		Count:     count,
		Payout:    multiplier * betAmount,
	}, true
}

// paytableMultiplier maps a match count onto the symbol's paytable. Position
// 0 corresponds to a two-symbol run (conventionally zero, kept so authored
// tables read naturally); three-of-a-kind is position 1. Counts past the end
// of the table pay the last entry.
func paytableMultiplier(symbol *domain.Symbol, count int) int64 {
	idx := count - 2
	if idx < 0 {
		return 0
	}
	if idx >= len(symbol.Paytable) {
		idx = len(symbol.Paytable) - 1
	}
	return symbol.Paytable[idx]
}

// countScatters counts scatter occurrences anywhere on the grid; scatters
// are not tied to paylines.
func countScatters(grid domain.Grid, scatter string) int {
	if scatter == "" {
		return 0
	}
	count := 0
	for col := range grid {
		for row := range grid[col] {
			if grid[col][row] == scatter {
				count++
			}
		}
	}
	return count
}

func symbolAt(grid domain.Grid, pos domain.Position) string {
	return grid[pos.Col][pos.Row]
}

func isWild(theme *domain.ThemeConfig, symbol string) bool {
	return theme.WildSymbol != "" && symbol == theme.WildSymbol
}
