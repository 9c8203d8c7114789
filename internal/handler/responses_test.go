package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getgifts/starcase/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"Nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"User Not Found", domain.ErrUserNotFound, http.StatusBadRequest, ErrMsgUserNotFoundError},
		{"Wrapped Insufficient Balance", fmt.Errorf("open case: %w", domain.ErrInsufficientBalance), http.StatusBadRequest, ErrMsgNotEnoughStarsError},
		{"Cooldown", fmt.Errorf("%w: 3h left", domain.ErrOnCooldown), http.StatusTooManyRequests, ErrMsgOnCooldownError},
		{"Match Done", domain.ErrMatchAlreadyDone, http.StatusConflict, ErrMsgMatchAlreadyDoneError},
		{"Wallet Declined", fmt.Errorf("%w: card declined", domain.ErrWalletTransaction), http.StatusBadGateway, ErrMsgWalletTransactionError},
		{"Short Custom Error", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}
