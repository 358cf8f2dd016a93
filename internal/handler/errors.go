package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Spin operation error messages
	ErrMsgSpinFailed       = "Failed to start spin"
	ErrMsgSessionNotFound  = "Spin session not found"
	ErrMsgInvalidSessionID = "Invalid session ID"
)

// Success messages for API responses
const (
	MsgSpinAccepted    = "Spin accepted"
	MsgAutoSpinEnabled = "Auto spin enabled"
	MsgAutoSpinStopped = "Auto spin disabled"
	MsgThemeChanged    = "Theme changed"
)
