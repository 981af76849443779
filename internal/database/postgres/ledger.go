package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetWallet returns the user's wallet
func (r *LedgerRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet := domain.Wallet{UserID: userID}
	err := r.db.QueryRow(ctx,
		`SELECT balance, updated_at FROM wallets WHERE user_id = $1`,
		userID,
	).Scan(&wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}
	return &wallet, nil
}

// GetTransactions returns the user's most recent ledger rows, newest first
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT transaction_id, user_id, amount, kind, balance_after, reference, reason, created_at
		 FROM wallet_transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, transaction_id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryTxnsFailed, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryTxnsFailed, err)
	}
	return txns, nil
}

// SumTransactions returns the running sum of all transaction amounts for the user
func (r *LedgerRepository) SumTransactions(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSumTxnsFailed, err)
	}
	return sum, nil
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	return &LedgerTx{tx: tx}, nil
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx pgx.Tx
}

// GetWalletForUpdate reads the wallet under a row lock held until Commit or
// Rollback. A SELECT FOR UPDATE on a missing row locks nothing, so the row
// is materialized with a zero balance first; two concurrent first-ever
// mutations for the same user then serialize on the row lock like any other
// pair. When the row was freshly materialized nil is returned (the user had
// no wallet), and the placeholder only survives if the caller commits.
func (t *LedgerTx) GetWalletForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	tag, err := t.tx.Exec(ctx,
		`INSERT INTO wallets (user_id, balance, updated_at)
		 VALUES ($1, 0, NOW())
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}

	wallet := domain.Wallet{UserID: userID}
	err = t.tx.QueryRow(ctx,
		`SELECT balance, updated_at FROM wallets WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}

	if tag.RowsAffected() == 1 {
		return nil, nil
	}
	return &wallet, nil
}

// UpsertWallet writes the materialized balance
func (t *LedgerTx) UpsertWallet(ctx context.Context, userID string, balance int64) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO wallets (user_id, balance, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`,
		userID, balance,
	)
	if err != nil {
		return fmt.Errorf(ErrMsgUpsertWalletFailed, err)
	}
	return nil
}

// InsertTransaction appends one ledger row, assigning ID and timestamp when absent
func (t *LedgerTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}

	_, err := t.tx.Exec(ctx,
		`INSERT INTO wallet_transactions
		 (transaction_id, user_id, amount, kind, balance_after, reference, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txn.ID, txn.UserID, txn.Amount, string(txn.Kind), txn.BalanceAfter,
		strToText(txn.Reference), strToText(txn.Reason), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertTxnFailed, err)
	}
	return nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func scanTransaction(rows pgx.Rows) (domain.Transaction, error) {
	var (
		txn       domain.Transaction
		kind      string
		reference pgtype.Text
		reason    pgtype.Text
	)
	err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &kind, &txn.BalanceAfter, &reference, &reason, &txn.CreatedAt)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf(ErrMsgQueryTxnsFailed, err)
	}
	txn.Kind = domain.TransactionKind(kind)
	txn.Reference = textToStr(reference)
	txn.Reason = textToStr(reason)
	return txn, nil
}
