package repository

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// Ledger defines the interface for wallet and transaction persistence
type Ledger interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	SumTransactions(ctx context.Context, userID string) (int64, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx extends Tx with the operations every balance mutation needs.
// GetWalletForUpdate must hold the wallet row exclusively until Commit or
// Rollback so concurrent mutations for the same user serialize.
type LedgerTx interface {
	Tx
	GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error)
	UpsertWallet(ctx context.Context, userID string, balance int64) error
	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
}
