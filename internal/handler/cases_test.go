package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/getgifts/starcase/internal/cases"
	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/testing/fake"
)

func newCasesHandler(t *testing.T, repo *fake.Ledger) *CasesHandler {
	t.Helper()
	counter := 0
	eng := engine.NewWithSource(
		func() float64 { return 0 },
		func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		func() string { counter++; return fmt.Sprintf("minted-%d", counter) },
	)
	return NewCasesHandler(cases.NewService(repo, testCatalog(t), eng, event.NewMemoryBus()))
}

func TestHandleListCases(t *testing.T) {
	h := newCasesHandler(t, fake.NewLedger())

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	rec := httptest.NewRecorder()
	h.HandleListCases(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"starter"`)
}

func TestHandleOpenCase(t *testing.T) {
	tests := []struct {
		name           string
		body           OpenCaseRequest
		balance        int
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success With Default Quantity",
			body:           OpenCaseRequest{UserID: testUserID, CaseID: "starter"},
			balance:        1500,
			expectedStatus: http.StatusOK,
			expectedBody:   `"new_balance":1400`,
		},
		{
			name:           "Insufficient Balance",
			body:           OpenCaseRequest{UserID: testUserID, CaseID: "starter", Quantity: 2},
			balance:        150,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughStarsError,
		},
		{
			name:           "Unknown Case",
			body:           OpenCaseRequest{UserID: testUserID, CaseID: "phantom"},
			balance:        1500,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgCaseNotFoundError,
		},
		{
			name:           "Quantity Above Limit",
			body:           OpenCaseRequest{UserID: testUserID, CaseID: "starter", Quantity: 11},
			balance:        5000,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fake.NewLedger()
			repo.Seed(domain.Profile{UserID: testUserID, Username: "astra", Balance: tt.balance})
			h := newCasesHandler(t, repo)

			rec := postJSON(t, h.HandleOpenCase, "/cases/open", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
