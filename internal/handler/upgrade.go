package handler

import (
	"net/http"

	"github.com/getgifts/starcase/internal/upgrade"
)

// UpgradeHandler exposes the double-or-nothing upgrade endpoints
type UpgradeHandler struct {
	service upgrade.Service
}

// NewUpgradeHandler creates a new UpgradeHandler
func NewUpgradeHandler(service upgrade.Service) *UpgradeHandler {
	return &UpgradeHandler{service: service}
}

// HandleTargets lists templates an owned item can be upgraded into
func (h *UpgradeHandler) HandleTargets(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	itemID, ok := GetQueryParam(r, w, "item_id")
	if !ok {
		return
	}

	targets, err := h.service.Targets(r.Context(), userID, itemID)
	if err != nil {
		respondServiceError(w, r, "list upgrade targets", err)
		return
	}

	respondJSON(w, http.StatusOK, targets)
}

type UpgradeRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	ItemID     string `json:"item_id" validate:"required"`
	TargetName string `json:"target_name" validate:"required"`
}

// HandleResolve spins the upgrade wheel. The source item is consumed either
// way; the target is minted only on a win.
// @Summary Resolve an upgrade
// @Tags upgrade
// @Accept json
// @Produce json
// @Param request body UpgradeRequest true "Upgrade request"
// @Success 200 {object} upgrade.Result
// @Router /upgrade [post]
func (h *UpgradeHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve upgrade"); err != nil {
		return
	}

	result, err := h.service.Resolve(r.Context(), req.UserID, req.ItemID, req.TargetName)
	if err != nil {
		respondServiceError(w, r, "resolve upgrade", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
