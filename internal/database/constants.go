package database

// DefaultMinConnections is the minimum number of connections kept open in
// the pool, so the first request after an idle period doesn't pay the
// connect cost
const DefaultMinConnections = 2

// Error Messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
