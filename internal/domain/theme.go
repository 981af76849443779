package domain

// ThemeConfig describes a slot theme: grid shape, symbol table, paylines and
// bonus/jackpot rules. It is supplied by the configuration subsystem and
// treated as read-only by the engine. Symbol and payline order is part of the
// reproducibility contract: the same seed against a reordered symbol list
// produces a different grid.
type ThemeConfig struct {
	Key           string       `json:"key" validate:"required"`
	Name          string       `json:"name"`
	Rows          int          `json:"rows" validate:"required,min=3"`
	Columns       int          `json:"columns" validate:"required,min=3"`
	Symbols       []Symbol     `json:"symbols" validate:"required,min=1,dive"`
	Paylines      []Payline    `json:"paylines" validate:"required,min=1,dive"`
	WildSymbol    string       `json:"wild_symbol,omitempty"`
	ScatterSymbol string       `json:"scatter_symbol,omitempty"`
	Bonus         BonusRules   `json:"bonus"`
	Jackpot       JackpotRules `json:"jackpot"`
}

// Symbol is one reel symbol. Weight is its relative selection probability.
// Paytable holds payout multipliers by consecutive-match count: position 0
// is a two-symbol run (conventionally zero; runs below three never pay),
// position 1 is three-of-a-kind, position 2 four-of-a-kind, and so on.
// Values are multipliers applied to the bet amount.
type Symbol struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name"`
	Weight   int     `json:"weight" validate:"required,min=1"`
	Paytable []int64 `json:"paytable" validate:"required,min=1"`
}

// Position is a grid coordinate referenced by a payline.
type Position struct {
	Row int `json:"row" validate:"min=0"`
	Col int `json:"col" validate:"min=0"`
}

// Payline is an ordered sequence of grid positions checked for consecutive
// matching symbols. Positions are theme-authored, not derived by the engine.
type Payline struct {
	ID        string     `json:"id" validate:"required"`
	Positions []Position `json:"positions" validate:"required,min=3,dive"`
}

// BonusRules configures the scatter-triggered bonus: when at least
// ScatterTrigger scatter symbols appear anywhere on the grid, the total line
// win is multiplied by Multiplier and FreeSpins free spins are awarded.
type BonusRules struct {
	ScatterTrigger int   `json:"scatter_trigger" validate:"omitempty,min=2"`
	FreeSpins      int   `json:"free_spins"`
	Multiplier     int64 `json:"multiplier"`
}

// JackpotKind distinguishes fixed-amount jackpots from progressive pools.
type JackpotKind string

const (
	JackpotFixed       JackpotKind = "fixed"
	JackpotProgressive JackpotKind = "progressive"
)

// JackpotRules configures the jackpot awarded when a winning line matches its
// payline's full length. Amount is in minor currency units for fixed
// jackpots; PoolID references an external progressive pool otherwise.
type JackpotRules struct {
	Kind   JackpotKind `json:"kind,omitempty"`
	Amount int64       `json:"amount"`
	PoolID string      `json:"pool_id,omitempty"`
}

// SymbolByID returns the symbol with the given identifier, or nil.
func (t *ThemeConfig) SymbolByID(id string) *Symbol {
	for i := range t.Symbols {
		if t.Symbols[i].ID == id {
			return &t.Symbols[i]
		}
	}
	return nil
}

// TotalWeight sums the symbol weights.
func (t *ThemeConfig) TotalWeight() int {
	total := 0
	for _, s := range t.Symbols {
		total += s.Weight
	}
	return total
}
