// Package memory provides in-memory repository implementations. They back
// the service in single-node deployments without Postgres and give tests a
// real store with real locking semantics instead of mocks.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spinworks/SlotEngine_Go/internal/concurrency"
	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger backed by process memory.
// Per-user named locks stand in for row locks: a transaction that has called
// GetWalletForUpdate holds the user's lock until Commit or Rollback, so
// concurrent mutations for the same user serialize exactly as they would
// against Postgres.
type LedgerRepository struct {
	mu           sync.RWMutex
	wallets      map[string]domain.Wallet
	transactions map[string][]domain.Transaction
	locks        *concurrency.LockManager
}

// NewLedgerRepository creates an empty LedgerRepository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		wallets:      make(map[string]domain.Wallet),
		transactions: make(map[string][]domain.Transaction),
		locks:        concurrency.NewLockManager(),
	}
}

// GetWallet returns the user's wallet
func (r *LedgerRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, ok := r.wallets[userID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	w := wallet
	return &w, nil
}

// GetTransactions returns the user's most recent transactions, newest first
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.transactions[userID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	result := make([]domain.Transaction, 0, limit)
	for i := len(all) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, all[i])
	}
	return result, nil
}

// SumTransactions returns the running sum of all transaction amounts for the user
func (r *LedgerRepository) SumTransactions(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum int64
	for _, txn := range r.transactions[userID] {
		sum += txn.Amount
	}
	return sum, nil
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return &ledgerTx{
		repo:           r,
		pendingWallets: make(map[string]int64),
		held:           make(map[string]*sync.Mutex),
	}, nil
}

// ledgerTx buffers writes until Commit. Reads under the transaction see the
// committed state plus the transaction's own pending writes.
type ledgerTx struct {
	repo           *LedgerRepository
	pendingWallets map[string]int64
	pendingTxns    []domain.Transaction
	held           map[string]*sync.Mutex
	done           bool
}

// GetWalletForUpdate acquires the user's lock and returns the wallet, or nil
// when the user has no wallet yet
func (t *ledgerTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	if _, holding := t.held[userID]; !holding {
		lock := t.repo.locks.GetLock(userID)
		lock.Lock()
		t.held[userID] = lock
	}

	if balance, ok := t.pendingWallets[userID]; ok {
		return &domain.Wallet{UserID: userID, Balance: balance}, nil
	}

	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()

	wallet, ok := t.repo.wallets[userID]
	if !ok {
		return nil, nil
	}
	w := wallet
	return &w, nil
}

// UpsertWallet stages a balance write for the user
func (t *ledgerTx) UpsertWallet(ctx context.Context, userID string, balance int64) error {
	t.pendingWallets[userID] = balance
	return nil
}

// InsertTransaction stages a ledger row, assigning ID and timestamp when absent
func (t *ledgerTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}
	t.pendingTxns = append(t.pendingTxns, *txn)
	return nil
}

// Commit applies staged writes and releases held locks
func (t *ledgerTx) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}

	t.repo.mu.Lock()
	now := time.Now().UTC()
	for userID, balance := range t.pendingWallets {
		t.repo.wallets[userID] = domain.Wallet{UserID: userID, Balance: balance, UpdatedAt: now}
	}
	for _, txn := range t.pendingTxns {
		t.repo.transactions[txn.UserID] = append(t.repo.transactions[txn.UserID], txn)
	}
	t.repo.mu.Unlock()

	t.release()
	return nil
}

// Rollback discards staged writes and releases held locks
func (t *ledgerTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.pendingWallets = nil
	t.pendingTxns = nil
	t.release()
	return nil
}

func (t *ledgerTx) release() {
	for _, lock := range t.held {
		lock.Unlock()
	}
	t.held = nil
	t.done = true
}
