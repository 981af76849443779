package worker

// Log Messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"

	LogMsgAuditSweepStarting      = "Audit sweep starting"
	LogMsgAuditSweepCompleted     = "Audit sweep completed"
	LogMsgAuditReplayFailed       = "Audit replay failed"
	LogMsgAuditVerifyFailed       = "Ledger consistency check failed"
	LogMsgAuditLedgerInconsistent = "Ledger balance does not match transaction sum"
)

// Error Messages
const (
	ErrMsgAuditSweepFetchFailed = "failed to fetch spins for audit sweep: %w"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
