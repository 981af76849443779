// Package ledger implements the atomic balance ledger: every balance change
// is a debit or credit row with a balance-after snapshot, applied in the
// same transaction that updates the materialized wallet balance.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/event"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/repository"
)

// SpinSettlement is the ledger's view of one settled spin
type SpinSettlement struct {
	NewBalance int64  `json:"new_balance"`
	DebitID    string `json:"debit_id"`
	CreditID   string `json:"credit_id,omitempty"`
}

// Service defines the interface for ledger operations
type Service interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	Adjust(ctx context.Context, userID string, amount int64, kind domain.TransactionKind, reason, reference string) (*domain.TxResult, error)
	ApplySpin(ctx context.Context, userID string, betAmount, winAmount int64, spinID string) (*SpinSettlement, error)
	VerifyConsistency(ctx context.Context, userID string) (bool, error)
}

type service struct {
	repo      repository.Ledger
	publisher event.Bus
}

// NewService creates a new ledger service. publisher may be nil when no
// event bus is wired.
func NewService(repo repository.Ledger, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetBalance returns the user's materialized balance
func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// GetHistory returns the user's most recent ledger rows, newest first
func (s *service) GetHistory(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.GetTransactions(ctx, userID, limit)
}

// Adjust applies a single manual credit or debit. A debit that would take
// the balance below zero is rejected with ErrInsufficientBalance. reference
// is optional and links the row to an external cause (promo ID, support
// ticket).
func (s *service) Adjust(ctx context.Context, userID string, amount int64, kind domain.TransactionKind, reason, reference string) (*domain.TxResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdjustCalled, "userID", userID, "amount", amount, "kind", kind)

	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err := lockedWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	var balance int64
	if wallet != nil {
		balance = wallet.Balance
	}

	newBalance := balance + amount
	if newBalance < 0 {
		return nil, fmt.Errorf("%w: balance %d, adjustment %d", domain.ErrInsufficientBalance, balance, amount)
	}

	txn := &domain.Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Amount:       amount,
		Kind:         kind,
		BalanceAfter: newBalance,
		Reference:    reference,
		Reason:       reason,
	}
	if err := tx.InsertTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTransactionFailed, err)
	}
	if err := tx.UpsertWallet(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertWalletFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	s.publishBalanceChanged(ctx, userID, amount, kind, newBalance, txn.ID, reference)

	log.Info(LogMsgBalanceAdjusted, "userID", userID, "newBalance", newBalance)
	return &domain.TxResult{NewBalance: newBalance, TransactionID: txn.ID}, nil
}

// ApplySpin settles one spin atomically: the bet debit and, when the spin
// won, the win credit land in the same transaction along with the wallet
// update. Either every row is applied or none is. The debit is recorded
// before the credit so the ledger reads chronologically, and the bet must
// be covered by the current balance on its own: the win never subsidizes
// the bet, so the debit row's balance-after stays non-negative. Users
// without a wallet are rejected with ErrWalletNotFound; spins do not open
// wallets.
func (s *service) ApplySpin(ctx context.Context, userID string, betAmount, winAmount int64, spinID string) (*SpinSettlement, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApplySpinCalled, "userID", userID, "bet", betAmount, "win", winAmount, "spinID", spinID)

	if betAmount <= 0 || winAmount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err := lockedWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWalletNotFound, userID)
	}
	balance := wallet.Balance

	if balance < betAmount {
		log.Info(LogMsgSpinRejected, "userID", userID, "balance", balance, "bet", betAmount)
		return nil, fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientBalance, balance, betAmount)
	}

	newBalance := balance - betAmount
	debit := &domain.Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Amount:       -betAmount,
		Kind:         domain.TxKindBetDebit,
		BalanceAfter: newBalance,
		Reference:    spinID,
	}
	if err := tx.InsertTransaction(ctx, debit); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTransactionFailed, err)
	}

	settlement := &SpinSettlement{DebitID: debit.ID}

	if winAmount > 0 {
		newBalance += winAmount
		credit := &domain.Transaction{
			ID:           uuid.NewString(),
			UserID:       userID,
			Amount:       winAmount,
			Kind:         domain.TxKindWinCredit,
			BalanceAfter: newBalance,
			Reference:    spinID,
		}
		if err := tx.InsertTransaction(ctx, credit); err != nil {
			return nil, fmt.Errorf(ErrMsgInsertTransactionFailed, err)
		}
		settlement.CreditID = credit.ID
	}

	if err := tx.UpsertWallet(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertWalletFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	settlement.NewBalance = newBalance

	s.publishBalanceChanged(ctx, userID, -betAmount, domain.TxKindBetDebit, newBalance, settlement.DebitID, spinID)
	if winAmount > 0 {
		s.publishBalanceChanged(ctx, userID, winAmount, domain.TxKindWinCredit, newBalance, settlement.CreditID, spinID)
	}

	log.Info(LogMsgSpinSettled, "userID", userID, "spinID", spinID, "newBalance", newBalance)
	return settlement, nil
}

// VerifyConsistency checks that the materialized balance equals the running
// sum of all ledger rows for the user
func (s *service) VerifyConsistency(ctx context.Context, userID string) (bool, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return false, err
	}

	sum, err := s.repo.SumTransactions(ctx, userID)
	if err != nil {
		return false, err
	}

	if wallet.Balance != sum {
		logger.FromContext(ctx).Error(LogMsgConsistencyMismatch,
			"userID", userID, "balance", wallet.Balance, "sum", sum)
		return false, nil
	}
	return true, nil
}

func (s *service) publishBalanceChanged(ctx context.Context, userID string, amount int64, kind domain.TransactionKind, newBalance int64, txnID, reference string) {
	if s.publisher == nil {
		return
	}
	// Publish failure never fails the committed mutation.
	_ = s.publisher.Publish(ctx, event.NewBalanceChangedEvent(userID, amount, kind, newBalance, txnID, reference))
}

// lockedWallet reads the wallet under the row lock, returning nil for users
// without a wallet yet. Callers decide what a missing wallet means: Adjust
// starts from zero (it is the funding path), ApplySpin rejects.
func lockedWallet(ctx context.Context, tx repository.LedgerTx, userID string) (*domain.Wallet, error) {
	wallet, err := tx.GetWalletForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}
	return wallet, nil
}
