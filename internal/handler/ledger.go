package handler

import (
	"net/http"

	"github.com/getgifts/starcase/internal/ledger"
)

// LedgerHandler exposes profile, inventory, sale and promo redemption endpoints
type LedgerHandler struct {
	service ledger.Service
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

// HandleRegister creates a new user with the starting balance
// @Summary Register a user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} domain.Profile
// @Router /user/register [post]
func (h *LedgerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	profile, err := h.service.Register(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, "register user", err)
		return
	}

	respondJSON(w, http.StatusCreated, profile)
}

// HandleGetProfile returns the user's profile
func (h *LedgerHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "get profile", err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// HandleGetInventory returns the user's owned items
func (h *LedgerHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	inventory, err := h.service.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "get inventory", err)
		return
	}

	respondJSON(w, http.StatusOK, inventory)
}

type SellItemsRequest struct {
	UserID  string   `json:"user_id" validate:"required,uuid"`
	ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,required"`
}

// HandleSellItems liquidates the listed items for STARS
func (h *LedgerHandler) HandleSellItems(w http.ResponseWriter, r *http.Request) {
	var req SellItemsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell items"); err != nil {
		return
	}

	result, err := h.service.SellItems(r.Context(), req.UserID, req.ItemIDs)
	if err != nil {
		respondServiceError(w, r, "sell items", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type SellAllRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandleSellAll liquidates the entire inventory
func (h *LedgerHandler) HandleSellAll(w http.ResponseWriter, r *http.Request) {
	var req SellAllRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell all items"); err != nil {
		return
	}

	result, err := h.service.SellAll(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "sell all items", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type RedeemPromoRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Code   string `json:"code" validate:"required,max=64"`
}

// HandleRedeemPromo credits the flat reward attached to a general promo code
func (h *LedgerHandler) HandleRedeemPromo(w http.ResponseWriter, r *http.Request) {
	var req RedeemPromoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem promo"); err != nil {
		return
	}

	result, err := h.service.RedeemPromo(r.Context(), req.UserID, req.Code)
	if err != nil {
		respondServiceError(w, r, "redeem promo", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
