package ledger

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetWalletFailed         = "failed to get wallet: %w"
	ErrMsgInsertTransactionFailed = "failed to insert transaction: %w"
	ErrMsgUpsertWalletFailed      = "failed to update wallet: %w"
)

// Log messages
const (
	LogMsgApplySpinCalled     = "ApplySpin called"
	LogMsgAdjustCalled        = "Adjust called"
	LogMsgSpinSettled         = "Spin settled"
	LogMsgSpinRejected        = "Spin rejected, insufficient balance"
	LogMsgBalanceAdjusted     = "Balance adjusted"
	LogMsgConsistencyMismatch = "Ledger consistency mismatch"
)
