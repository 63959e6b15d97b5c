package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stripe_books_bridge/internal/adapter/http/handlers/mocks"
	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(uc *mocks.MockIReconciliationUseCase) *gin.Engine {
	h := NewWebhookHandler(uc)
	r := gin.New()
	r.POST("/v1/webhooks/stripe", h.HandleStripeWebhook)
	return r
}

func postWebhook(r *gin.Engine, body string, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_HandleStripeWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), []byte(body), "t=1,v1=abc").Return(entities.ReconciliationResult{
			RunID:      "run-1",
			State:      entities.RunStateSucceeded,
			EventID:    "evt_1",
			CustomerID: "c-1",
			Ledger:     entities.LedgerRecord{InvoiceID: "inv-1", PaymentID: "pay-1"},
			Transaction: entities.Transaction{
				ReferenceID: "pi_1",
				Amount:      decimal.RequireFromString("100"),
				Currency:    "NZD",
				SettledDate: "2023-11-15",
			},
		}, nil)

		w := postWebhook(r, body, "t=1,v1=abc")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if got["invoice_id"] != "inv-1" || got["payment_id"] != "pay-1" || got["amount"] != "100.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("ignored event type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciliationResult{
			RunID:     "run-2",
			State:     entities.RunStateIgnored,
			EventType: "invoice.paid",
		}, nil)

		w := postWebhook(r, body, "t=1,v1=abc")
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Wrong event type")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newWebhookRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), "").Return(
			entities.ReconciliationResult{RunID: "run-3", State: entities.RunStateRejected},
			fmt.Errorf("%w: missing header", usecase.ErrMalformedInput),
		)

		w := postWebhook(r, body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newWebhookRouter(uc)

		w := postWebhook(r, string(bytes.Repeat([]byte("a"), maxWebhookBodyBytes+1)), "t=1,v1=abc")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapReconciliationError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"signature", fmt.Errorf("%w: bad", usecase.ErrAuthenticationFailure), http.StatusBadRequest, "INVALID_SIGNATURE"},
		{"malformed", usecase.ErrMalformedInput, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing config", fmt.Errorf("%w: ZOHO_ORG_ID", usecase.ErrConfigurationMissing), http.StatusBadRequest, "CONFIGURATION_MISSING"},
		{"data integrity", usecase.ErrDataIntegrity, http.StatusInternalServerError, "DATA_INTEGRITY"},
		{"upstream auth", usecase.ErrUpstreamAuth, http.StatusInternalServerError, "UPSTREAM_AUTH_FAILED"},
		{"refused access token during lookup", fmt.Errorf("%w: %w", usecase.ErrUpstreamAuth, &usecase.ReferenceResolutionError{Kind: usecase.RefCustomer, Err: errors.New("code=57")}), http.StatusInternalServerError, "UPSTREAM_AUTH_FAILED"},
		{"reference", &usecase.ReferenceResolutionError{Kind: usecase.RefItem, Err: errors.New("boom")}, http.StatusInternalServerError, "REFERENCE_RESOLUTION_FAILED"},
		{"invoice", &usecase.LedgerWriteError{Stage: usecase.StageInvoice, Err: errors.New("dup")}, http.StatusInternalServerError, "LEDGER_INVOICE_FAILED"},
		{"payment", &usecase.LedgerWriteError{Stage: usecase.StagePayment, InvoiceID: "inv-1", Err: errors.New("boom")}, http.StatusInternalServerError, "LEDGER_PAYMENT_FAILED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapReconciliationError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
