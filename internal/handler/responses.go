package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to players
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Wallet messages
	ErrMsgWalletNotFoundError    = "Wallet not found"
	ErrMsgNotEnoughCoinsError    = "Not enough TamaCoins"
	ErrMsgBalanceCapError        = "Wallet is full. Spend some TamaCoins first."
	ErrMsgInvalidAmountError     = "Amount must be positive"
	ErrMsgTransactionNotFoundErr = "Transaction not found"

	// Shop and inventory messages
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgItemNotAvailableError = "That item is not for sale right now"
	ErrMsgAlreadyOwnedError     = "This monster already owns that item"
	ErrMsgInventoryFullError    = "Inventory is full"
	ErrMsgNotYourItemError      = "That item belongs to a different monster"
	ErrMsgInventoryItemNotFound = "Item not found in inventory"

	// Monster messages
	ErrMsgMonsterNotFoundError = "Monster not found"
	ErrMsgInvalidActionError   = "Unknown care action"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and
// messages that players can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrBalanceCapExceeded):
		return http.StatusConflict, ErrMsgBalanceCapError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, ErrMsgTransactionNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrItemNotAvailable):
		return http.StatusConflict, ErrMsgItemNotAvailableError
	case errors.Is(err, domain.ErrItemAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrInventoryItemNotFound):
		return http.StatusNotFound, ErrMsgInventoryItemNotFound
	case errors.Is(err, domain.ErrOwnershipMismatch):
		return http.StatusForbidden, ErrMsgNotYourItemError
	case errors.Is(err, domain.ErrMonsterNotFound):
		return http.StatusNotFound, ErrMsgMonsterNotFoundError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCatalogDesync):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
