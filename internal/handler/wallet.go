package handler

import (
	"net/http"

	"github.com/getgifts/starcase/internal/wallet"
)

// WalletHandler exposes the top-up endpoint
type WalletHandler struct {
	service wallet.Service
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

type TopUpRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Units  int    `json:"units" validate:"required,gt=0"`
}

// HandleTopUp charges the payment provider and credits the converted STARS
// @Summary Top up the wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body TopUpRequest true "Top-up request"
// @Success 200 {object} wallet.Result
// @Router /wallet/topup [post]
func (h *WalletHandler) HandleTopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Top up wallet"); err != nil {
		return
	}

	result, err := h.service.TopUp(r.Context(), req.UserID, req.Units)
	if err != nil {
		respondServiceError(w, r, "top up wallet", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
