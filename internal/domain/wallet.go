package domain

import "time"

// TransactionKind classifies a ledger transaction.
type TransactionKind string

const (
	TxKindBetDebit  TransactionKind = "bet_debit"
	TxKindWinCredit TransactionKind = "win_credit"
	TxKindManual    TransactionKind = "manual"
	TxKindBonus     TransactionKind = "bonus"
)

// Wallet is a user's materialized balance in minor currency units. It is the
// single source of truth for the current balance and is only ever updated
// transactionally together with an appended Transaction row.
type Wallet struct {
	UserID    string    `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction is one append-only ledger entry. Amount is signed (debits are
// negative); BalanceAfter snapshots the wallet balance after this entry was
// applied and must always agree with the materialized wallet value.
type Transaction struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Amount       int64           `json:"amount"`
	Kind         TransactionKind `json:"kind"`
	BalanceAfter int64           `json:"balance_after"`
	Reference    string          `json:"reference,omitempty"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TxResult is returned by general-purpose ledger adjustments.
type TxResult struct {
	NewBalance    int64  `json:"new_balance"`
	TransactionID string `json:"transaction_id"`
}
