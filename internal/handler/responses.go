package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first; headers are already sent so a
	// late encode failure can only be logged.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Service call failed", "operation", opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotEnoughEnergyError   = "Not enough energy. Wait for it to regenerate"
	ErrMsgNotEnoughCurrencyError = "Not enough currency for that stake"
	ErrMsgSpinInProgressError    = "A spin is already in progress"
	ErrMsgStakeOutOfRangeError   = "Stake is outside the allowed range"
	ErrMsgUnknownThemeError      = "Unknown theme"
	ErrMsgShuttingDownError      = "Server is shutting down. Please try again later"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal service errors become appropriate status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return http.StatusBadRequest, ErrMsgNotEnoughEnergyError
	case errors.Is(err, domain.ErrInsufficientCurrency):
		return http.StatusBadRequest, ErrMsgNotEnoughCurrencyError
	case errors.Is(err, domain.ErrSpinInProgress):
		return http.StatusConflict, ErrMsgSpinInProgressError
	case errors.Is(err, domain.ErrStakeOutOfRange):
		return http.StatusBadRequest, ErrMsgStakeOutOfRangeError
	case errors.Is(err, domain.ErrUnknownTheme):
		return http.StatusBadRequest, ErrMsgUnknownThemeError
	case errors.Is(err, domain.ErrShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgShuttingDownError
	}

	// Wrapped errors with a domain error further down the chain
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
