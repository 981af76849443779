// Package engine implements the spin outcome pipeline: seeded grid
// generation, payline/scatter/jackpot evaluation, and the fresh-spin /
// replay entry points. The engine performs no I/O and holds no state across
// calls; it is safe for concurrent use from any number of goroutines.
package engine

import (
	"fmt"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/rng"
)

// Engine generates spin outcomes. The zero value is not usable; construct
// with New.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Spin generates a fresh seed and runs the full pipeline for one paid spin.
func (e *Engine) Spin(theme *domain.ThemeConfig, betAmount int64) (*domain.SpinOutcome, error) {
	if err := e.checkPreconditions(theme, betAmount); err != nil {
		return nil, err
	}

	seed, err := rng.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed spin: %w", err)
	}

	return e.run(theme, betAmount, seed), nil
}

// Replay reruns the pipeline with a previously issued seed. Used exclusively
// for audit reproduction; given the same theme and bet it returns an outcome
// identical to the original spin.
func (e *Engine) Replay(theme *domain.ThemeConfig, betAmount int64, encodedSeed string) (*domain.SpinOutcome, error) {
	if err := e.checkPreconditions(theme, betAmount); err != nil {
		return nil, err
	}

	seed, err := rng.DecodeSeed(encodedSeed)
	if err != nil {
		return nil, err
	}

	return e.run(theme, betAmount, seed), nil
}

// run executes the deterministic part of the pipeline. Everything after seed
// selection is a pure function of (theme, betAmount, seed).
func (e *Engine) run(theme *domain.ThemeConfig, betAmount int64, seed []byte) *domain.SpinOutcome {
	src := rng.NewSource(seed)
	grid := generateGrid(theme, src)
	result := evaluate(grid, theme, betAmount)

	return &domain.SpinOutcome{
		ThemeKey:       theme.Key,
		BetAmount:      betAmount,
		Grid:           grid,
		TotalWin:       result.totalWin,
		WinningLines:   result.winningLines,
		ScatterCount:   result.scatterCount,
		BonusTriggered: result.bonusTriggered,
		FreeSpins:      result.freeSpins,
		JackpotWon:     result.jackpotWon,
		Seed:           rng.EncodeSeed(seed),
		Message:        formatMessage(betAmount, result),
	}
}

// checkPreconditions rejects malformed input before any RNG draw so that
// caller errors never consume a seed.
func (e *Engine) checkPreconditions(theme *domain.ThemeConfig, betAmount int64) error {
	if betAmount < MinBetAmount || betAmount > MaxBetAmount {
		return fmt.Errorf("%w: %d", domain.ErrInvalidBet, betAmount)
	}
	return ValidateTheme(theme)
}
