package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	response "stripe_books_bridge/internal/adapter/http/dto/response"
	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/infrastructure/metrics"
	"stripe_books_bridge/internal/usecase"
	"stripe_books_bridge/pkg"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 512 << 10
)

// WebhookHandler receives Stripe webhook deliveries.
type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleStripeWebhook reconciles one Stripe event into Zoho Books.
//
// @Summary      Reconcile a Stripe webhook event
// @Description  Verifies the Stripe-Signature header and records a completed checkout as an invoice plus payment in Zoho Books.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Stripe webhook signature"
// @Success      200  {object}  response.ReconciliationResponse
// @Success      202  {object}  response.ReconciliationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	started := time.Now()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[reconcile][handler] read body failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		metrics.ObserveRun(string(entities.RunStateRejected), appErr.Code, time.Since(started))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Reconcile(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		appErr := mapReconciliationError(err)
		log.Printf("[reconcile][handler] run failed run_id=%s state=%s code=%s err=%v", result.RunID, result.State, appErr.Code, err)
		metrics.ObserveRun(stateOrFailed(result.State), appErr.Code, time.Since(started))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.ObserveRun(string(result.State), "", time.Since(started))
	if result.State == entities.RunStateIgnored {
		c.JSON(http.StatusAccepted, response.FromReconciliationResult(result))
		return
	}
	log.Printf("[reconcile][handler] run succeeded run_id=%s reference=%s invoice_id=%s payment_id=%s",
		result.RunID, result.Transaction.ReferenceID, result.Ledger.InvoiceID, result.Ledger.PaymentID)
	c.JSON(http.StatusOK, response.FromReconciliationResult(result))
}

func stateOrFailed(s entities.RunState) string {
	if s == "" {
		return string(entities.RunStateFailed)
	}
	return string(s)
}

func mapReconciliationError(err error) *pkg.AppError {
	var lwe *usecase.LedgerWriteError
	switch {
	case errors.Is(err, usecase.ErrAuthenticationFailure):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationMissing):
		return pkg.NewDomainErrorSimple("CONFIGURATION_MISSING", "Environment details not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDataIntegrity):
		return pkg.NewDomainError("DATA_INTEGRITY", "Event data is inconsistent", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUpstreamAuth):
		return pkg.NewDomainError("UPSTREAM_AUTH_FAILED", "Accounting system rejected the credentials", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrReferenceResolution):
		return pkg.NewDomainError("REFERENCE_RESOLUTION_FAILED", "Could not resolve accounting references", err, http.StatusInternalServerError)
	case errors.As(err, &lwe) && lwe.Stage == usecase.StageInvoice:
		return pkg.NewDomainError("LEDGER_INVOICE_FAILED", "Could not create invoice", err, http.StatusInternalServerError)
	case errors.As(err, &lwe) && lwe.Stage == usecase.StagePayment:
		return pkg.NewDomainError("LEDGER_PAYMENT_FAILED", "Could not create payment", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
