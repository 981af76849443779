package config

import "time"

// Storage backend identifiers
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultDBName            = "slotengine"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultThemesDir         = "configs/themes"
	DefaultDeadLetterPath    = "logs/deadletter.jsonl"
	DefaultLogDir            = "logs"
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultAuditInterval     = 10 * time.Minute
	DefaultAuditSweepLimit   = 100
)
