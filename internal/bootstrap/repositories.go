package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spinworks/SlotEngine_Go/internal/database/postgres"
	"github.com/spinworks/SlotEngine_Go/internal/repository"
	"github.com/spinworks/SlotEngine_Go/internal/repository/memory"
)

// Repositories holds the repository implementations used by the application
type Repositories struct {
	Ledger repository.Ledger
	Spin   repository.Spin
}

// InitializePostgresRepositories creates pgx-backed repositories
func InitializePostgresRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ledger: postgres.NewLedgerRepository(dbPool),
		Spin:   postgres.NewSpinRepository(dbPool),
	}
}

// InitializeMemoryRepositories creates in-memory repositories. State does not
// survive a restart; intended for development and tests.
func InitializeMemoryRepositories() *Repositories {
	return &Repositories{
		Ledger: memory.NewLedgerRepository(),
		Spin:   memory.NewSpinRepository(),
	}
}
