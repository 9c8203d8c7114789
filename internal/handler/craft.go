package handler

import (
	"net/http"

	"github.com/getgifts/starcase/internal/craft"
)

// CraftHandler exposes the combine endpoint
type CraftHandler struct {
	service craft.Service
}

// NewCraftHandler creates a new CraftHandler
func NewCraftHandler(service craft.Service) *CraftHandler {
	return &CraftHandler{service: service}
}

type CraftRequest struct {
	UserID  string   `json:"user_id" validate:"required,uuid"`
	ItemIDs []string `json:"item_ids" validate:"required,min=4,max=12,dive,required"`
}

// HandleCraft consumes the input items and awards one near the combined target value
// @Summary Craft items into one
// @Tags craft
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft request"
// @Success 200 {object} craft.Result
// @Router /craft [post]
func (h *CraftHandler) HandleCraft(w http.ResponseWriter, r *http.Request) {
	var req CraftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
		return
	}

	result, err := h.service.Resolve(r.Context(), req.UserID, req.ItemIDs)
	if err != nil {
		respondServiceError(w, r, "craft", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
