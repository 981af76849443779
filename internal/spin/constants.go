package spin

// History limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// Error message formats
const (
	ErrMsgCreateSpinFailed = "failed to persist spin record: %w"
)

// Log messages
const (
	LogMsgSpinCalled            = "Spin called"
	LogMsgSpinCompleted         = "Spin completed"
	LogMsgAuditCalled           = "Audit called"
	LogMsgAuditMismatch         = "Audit replay mismatch"
	LogMsgPersistRejectedFailed = "Failed to persist rejected spin"
)
