package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
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

	// Encode through a pooled buffer so a marshal failure never produces a
	// half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto an HTTP response and logs it
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgInsufficientBalanceErr = "Insufficient balance for this bet"
	ErrMsgWalletNotFoundError    = "Wallet not found"
	ErrMsgThemeNotFoundError     = "Theme not found"
	ErrMsgSpinNotFoundError      = "Spin not found"
	ErrMsgInvalidBetError        = "Invalid bet amount"
	ErrMsgInvalidAmountError     = "Invalid amount"
	ErrMsgInvalidThemeError      = "Theme configuration is invalid"
)

// mapServiceErrorToUserMessage converts domain errors to HTTP status codes
// and messages users can act on. Unknown errors collapse to a generic 500 so
// internal detail never leaks to clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusConflict, ErrMsgInsufficientBalanceErr
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFoundError
	case errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound, ErrMsgThemeNotFoundError
	case errors.Is(err, domain.ErrSpinNotFound):
		return http.StatusNotFound, ErrMsgSpinNotFoundError
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity, ErrMsgInvalidThemeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
