package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Spin error messages
	ErrMsgSpinFailed       = "Failed to process spin"
	ErrMsgGetSpinFailed    = "Failed to retrieve spin"
	ErrMsgGetHistoryFailed = "Failed to retrieve spin history"
	ErrMsgAuditFailed      = "Failed to audit spin"

	// Wallet error messages
	ErrMsgGetBalanceFailed      = "Failed to retrieve balance"
	ErrMsgAdjustFailed          = "Failed to adjust balance"
	ErrMsgGetTransactionsFailed = "Failed to retrieve transactions"
	ErrMsgVerifyLedgerFailed    = "Failed to verify ledger"

	// Theme error messages
	ErrMsgListThemesFailed = "Failed to list themes"
	ErrMsgGetThemeFailed   = "Failed to retrieve theme"
)
