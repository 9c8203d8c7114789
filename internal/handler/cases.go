package handler

import (
	"net/http"

	"github.com/getgifts/starcase/internal/cases"
)

// CasesHandler exposes case listing and opening endpoints
type CasesHandler struct {
	service cases.Service
}

// NewCasesHandler creates a new CasesHandler
func NewCasesHandler(service cases.Service) *CasesHandler {
	return &CasesHandler{service: service}
}

// HandleListCases returns every configured case
func (h *CasesHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

type OpenCaseRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	CaseID   string `json:"case_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1,max=10"`
	Code     string `json:"code" validate:"omitempty,max=64"`
}

// HandleOpenCase opens a case and awards the drawn items
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Param request body OpenCaseRequest true "Open request"
// @Success 200 {object} cases.OpenResult
// @Router /cases/open [post]
func (h *CasesHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	var req OpenCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	result, err := h.service.Open(r.Context(), req.UserID, req.CaseID, req.Quantity, req.Code)
	if err != nil {
		respondServiceError(w, r, "open case", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
