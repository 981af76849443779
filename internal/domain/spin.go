package domain

import "time"

// Grid is the materialized symbol matrix, indexed [column][row].
type Grid [][]string

// WinningLine records one qualifying payline in a spin outcome.
type WinningLine struct {
	PaylineID string `json:"payline_id"`
	Symbol    string `json:"symbol"`
	Count     int    `json:"count"`
	Payout    int64  `json:"payout"`
}

// SpinOutcome is the immutable result of a single spin. It is created by the
// engine, handed to the caller for persistence, and never mutated. Seed is
// the hex-encoded seed the outcome was generated from; together with the
// theme and bet amount it is sufficient to reproduce the outcome bit for bit.
type SpinOutcome struct {
	ThemeKey       string        `json:"theme_key"`
	BetAmount      int64         `json:"bet_amount"`
	Grid           Grid          `json:"grid"`
	TotalWin       int64         `json:"total_win"`
	WinningLines   []WinningLine `json:"winning_lines"`
	ScatterCount   int           `json:"scatter_count"`
	BonusTriggered bool          `json:"bonus_triggered"`
	FreeSpins      int           `json:"free_spins"`
	JackpotWon     bool          `json:"jackpot_won"`
	Seed           string        `json:"seed"`
	Message        string        `json:"message,omitempty"`
}

// SpinRecord is the persisted form of a spin: the outcome plus its identity,
// the user it belongs to and whether the ledger mutation was applied.
type SpinRecord struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Outcome   SpinOutcome `json:"outcome"`
	Settled   bool        `json:"settled"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuditResult reports a replay comparison against a stored spin.
type AuditResult struct {
	SpinID    string `json:"spin_id"`
	GridMatch bool   `json:"grid_match"`
	WinMatch  bool   `json:"win_match"`
	StoredWin int64  `json:"stored_win"`
	ReplayWin int64  `json:"replay_win"`
}

// Equal reports whether two grids hold the same symbols cell for cell.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for c := range g {
		if len(g[c]) != len(other[c]) {
			return false
		}
		for r := range g[c] {
			if g[c][r] != other[c][r] {
				return false
			}
		}
	}
	return true
}
