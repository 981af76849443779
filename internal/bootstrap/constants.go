package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10
)

// Log messages
const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStartingService            = "Starting slot engine"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Event metrics collector registered"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerStopped              = "Server stopped"
)

// Error message formats
const (
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgFailedRegisterMetrics     = "failed to register metrics collector"
)
