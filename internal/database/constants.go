package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections caps the pool size
	DefaultMaxConnections = 10

	// DefaultMaxConnIdleTime is how long a connection may sit idle
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime is the maximum age of a pooled connection
	DefaultMaxConnLifetime = time.Hour
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"

	ErrMsgFailedToOpenMigrationConn = "failed to open migration connection"
	ErrMsgFailedToRunMigrations     = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
