package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/logger"
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

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent once we start writing.
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

// respondServiceError logs the service error and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Failed to "+opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// User and inventory messages
	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgUserAlreadyExistsErr   = "That username is taken"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgNotInInventoryError    = "You don't have that item"
	ErrMsgNotEnoughStarsError    = "Not enough STARS"

	// Case messages
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgInvalidPromoError   = "Invalid promo code"
	ErrMsgRechargeTooLowError = "Recharge more to unlock this case"
	ErrMsgOnCooldownError     = "Action is on cooldown. Try again later"

	// Upgrade messages
	ErrMsgTargetBelowRatioError = "Target item is not valuable enough to upgrade into"

	// Craft messages
	ErrMsgTooFewInputsError  = "Crafting needs at least 4 items"
	ErrMsgTooManyInputsError = "Crafting accepts at most 12 items"

	// Match messages
	ErrMsgMatchNotFoundError    = "Match not found"
	ErrMsgMatchNotSpinnableErr  = "Match is not ready to spin"
	ErrMsgMatchAlreadyDoneError = "Match is already resolved"
	ErrMsgBetPositiveError      = "Bet must be positive"

	// Wallet messages
	ErrMsgWalletTransactionError = "Payment failed. You were not charged"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, ErrMsgUserAlreadyExistsErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgNotEnoughStarsError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusBadRequest, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrInvalidPromoCode):
		return http.StatusBadRequest, ErrMsgInvalidPromoError
	case errors.Is(err, domain.ErrRechargeTooLow):
		return http.StatusForbidden, ErrMsgRechargeTooLowError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrTargetBelowRatio):
		return http.StatusBadRequest, ErrMsgTargetBelowRatioError
	case errors.Is(err, domain.ErrTooFewCraftInputs):
		return http.StatusBadRequest, ErrMsgTooFewInputsError
	case errors.Is(err, domain.ErrTooManyCraftInputs):
		return http.StatusBadRequest, ErrMsgTooManyInputsError
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, ErrMsgMatchNotFoundError
	case errors.Is(err, domain.ErrMatchNotSpinnable):
		return http.StatusBadRequest, ErrMsgMatchNotSpinnableErr
	case errors.Is(err, domain.ErrMatchAlreadyDone):
		return http.StatusConflict, ErrMsgMatchAlreadyDoneError
	case errors.Is(err, domain.ErrBetMustBePositive):
		return http.StatusBadRequest, ErrMsgBetPositiveError
	case errors.Is(err, domain.ErrWalletTransaction):
		return http.StatusBadGateway, ErrMsgWalletTransactionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Keep short custom messages visible; hide anything system-level or verbose.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
