package engine

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

var themeValidator = validator.New()

// ValidateTheme checks a theme configuration before it reaches the RNG:
// struct-level constraints via validator tags, then the structural
// invariants the tags cannot express (payline bounds, referenced symbols,
// positive total weight). All violations are reported as configuration
// errors, never silently defaulted.
func ValidateTheme(theme *domain.ThemeConfig) error {
	if theme == nil {
		return fmt.Errorf("%w: theme is nil", domain.ErrInvalidConfiguration)
	}

	if err := themeValidator.Struct(theme); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}

	if theme.TotalWeight() <= 0 {
		return fmt.Errorf("%w: symbol weights sum to zero", domain.ErrInvalidConfiguration)
	}

	seen := make(map[string]struct{}, len(theme.Symbols))
	for _, s := range theme.Symbols {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", domain.ErrInvalidConfiguration, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	for _, line := range theme.Paylines {
		for _, pos := range line.Positions {
			if pos.Row < 0 || pos.Row >= theme.Rows || pos.Col < 0 || pos.Col >= theme.Columns {
				return fmt.Errorf("%w: payline %q position (%d,%d) outside %dx%d grid",
					domain.ErrInvalidConfiguration, line.ID, pos.Row, pos.Col, theme.Rows, theme.Columns)
			}
		}
	}

	if theme.WildSymbol != "" {
		if theme.SymbolByID(theme.WildSymbol) == nil {
			return fmt.Errorf("%w: wild symbol %q not in symbol list", domain.ErrInvalidConfiguration, theme.WildSymbol)
		}
	}
	if theme.ScatterSymbol != "" {
		if theme.SymbolByID(theme.ScatterSymbol) == nil {
			return fmt.Errorf("%w: scatter symbol %q not in symbol list", domain.ErrInvalidConfiguration, theme.ScatterSymbol)
		}
		if theme.Bonus.ScatterTrigger < 2 {
			return fmt.Errorf("%w: scatter trigger must be at least 2", domain.ErrInvalidConfiguration)
		}
	}

	return nil
}
