package postgres

// Error message formats
const (
	ErrMsgBeginTransactionFailed = "failed to begin transaction: %w"
	ErrMsgGetWalletFailed        = "failed to get wallet: %w"
	ErrMsgUpsertWalletFailed     = "failed to upsert wallet: %w"
	ErrMsgInsertTxnFailed        = "failed to insert transaction: %w"
	ErrMsgQueryTxnsFailed        = "failed to query transactions: %w"
	ErrMsgSumTxnsFailed          = "failed to sum transactions: %w"
	ErrMsgInsertSpinFailed       = "failed to insert spin: %w"
	ErrMsgGetSpinFailed          = "failed to get spin: %w"
	ErrMsgQuerySpinsFailed       = "failed to query spins: %w"
	ErrMsgMarshalOutcomeFailed   = "failed to marshal outcome: %w"
	ErrMsgUnmarshalOutcomeFailed = "failed to unmarshal outcome: %w"
)
