package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/getgifts/starcase/internal/pvp"
)

// PvPHandler exposes the wheel duel endpoints
type PvPHandler struct {
	service pvp.Service
}

// NewPvPHandler creates a new PvPHandler
func NewPvPHandler(service pvp.Service) *PvPHandler {
	return &PvPHandler{service: service}
}

type JoinMatchRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Bet    int    `json:"bet" validate:"required,gt=0"`
}

// HandleJoin stakes the bet and opens a match against a synthesized opponent
// @Summary Join a wheel duel
// @Tags pvp
// @Accept json
// @Produce json
// @Param request body JoinMatchRequest true "Join request"
// @Success 201 {object} domain.Match
// @Router /pvp/join [post]
func (h *PvPHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	var req JoinMatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Join match"); err != nil {
		return
	}

	match, err := h.service.Join(r.Context(), req.UserID, req.Bet)
	if err != nil {
		respondServiceError(w, r, "join match", err)
		return
	}

	respondJSON(w, http.StatusCreated, match)
}

type SpinMatchRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// HandleSpin resolves the caller's match before the deadline does
func (h *PvPHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	var req SpinMatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin match"); err != nil {
		return
	}

	match, err := h.service.Spin(r.Context(), req.UserID, matchID)
	if err != nil {
		respondServiceError(w, r, "spin match", err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// HandleGetMatch returns a live or recently resolved match
func (h *PvPHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	match, err := h.service.Get(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, r, "get match", err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

func parseMatchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	matchID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidMatchID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return matchID, true
}
