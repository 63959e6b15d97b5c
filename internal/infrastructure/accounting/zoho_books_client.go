package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/infrastructure/metrics"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	maxResponseBytes   = 1 << 20
	defaultHTTPTimeout = 30 * time.Second

	// zohoCodeInvalidToken is the envelope code for an expired or revoked oauth token.
	zohoCodeInvalidToken = 57
)

// ZohoAPIError is a non-success answer from the Books API.
type ZohoAPIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *ZohoAPIError) Error() string {
	return fmt.Sprintf("zoho books: status=%d code=%d message=%s", e.HTTPStatus, e.Code, e.Message)
}

// Is reports a refused access token as interfaces.ErrAccessTokenInvalid.
func (e *ZohoAPIError) Is(target error) bool {
	if target != interfaces.ErrAccessTokenInvalid {
		return false
	}
	return e.HTTPStatus == http.StatusUnauthorized || e.Code == zohoCodeInvalidToken
}

// ZohoBooksClient talks to the Zoho Books v3 REST API.
//
// Every request carries organization_id and the Zoho-oauthtoken header.
// Zoho answers with an envelope whose `code` is 0 on success.
type ZohoBooksClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IAccountingGateway = (*ZohoBooksClient)(nil)

// BooksBaseURL returns the API root for a data-center zone such as ".com" or ".com.au".
func BooksBaseURL(zone string) string {
	return "https://www.zohoapis" + zone + "/books/v3"
}

func NewZohoBooksClient(baseURL string, httpClient *http.Client) *ZohoBooksClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &ZohoBooksClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type zohoEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *ZohoBooksClient) FindContactByName(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		Contacts []struct {
			ContactID   string `json:"contact_id"`
			ContactName string `json:"contact_name"`
		} `json:"contacts"`
	}
	q := url.Values{"contact_name_contains": {name}, "status": {"active"}}
	if err := c.do(ctx, s, "find_contact", http.MethodGet, "/contacts", q, nil, &out); err != nil {
		return "", err
	}
	if len(out.Contacts) == 0 {
		return "", nil
	}
	// contact_name_contains also returns longer names; prefer the exact one.
	for _, contact := range out.Contacts {
		if contact.ContactName == name {
			return contact.ContactID, nil
		}
	}
	return out.Contacts[0].ContactID, nil
}

func (c *ZohoBooksClient) CreateContact(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		Contact struct {
			ContactID string `json:"contact_id"`
		} `json:"contact"`
	}
	body := map[string]any{"contact_name": name, "contact_type": "customer"}
	if err := c.do(ctx, s, "create_contact", http.MethodPost, "/contacts", nil, body, &out); err != nil {
		return "", err
	}
	metrics.RemoteCreates.WithLabelValues("contact").Inc()
	return out.Contact.ContactID, nil
}

func (c *ZohoBooksClient) FindCurrencyID(ctx context.Context, s entities.AccountingSession, code string) (string, error) {
	var out struct {
		Currencies []struct {
			CurrencyID   string `json:"currency_id"`
			CurrencyCode string `json:"currency_code"`
		} `json:"currencies"`
	}
	if err := c.do(ctx, s, "list_currencies", http.MethodGet, "/settings/currencies", nil, nil, &out); err != nil {
		return "", err
	}
	for _, cur := range out.Currencies {
		if strings.EqualFold(cur.CurrencyCode, code) {
			return cur.CurrencyID, nil
		}
	}
	return "", nil
}

func (c *ZohoBooksClient) FindTaxID(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		Taxes []struct {
			TaxID   string `json:"tax_id"`
			TaxName string `json:"tax_name"`
		} `json:"taxes"`
	}
	if err := c.do(ctx, s, "list_taxes", http.MethodGet, "/settings/taxes", nil, nil, &out); err != nil {
		return "", err
	}
	for _, tax := range out.Taxes {
		if strings.EqualFold(strings.TrimSpace(tax.TaxName), strings.TrimSpace(name)) {
			return tax.TaxID, nil
		}
	}
	return "", nil
}

// FindItemID returns the id of the first item whose name matches exactly.
func (c *ZohoBooksClient) FindItemID(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		Items []struct {
			ItemID string `json:"item_id"`
			Name   string `json:"name"`
		} `json:"items"`
	}
	if err := c.do(ctx, s, "find_item", http.MethodGet, "/items", url.Values{"name": {name}}, nil, &out); err != nil {
		return "", err
	}
	for _, item := range out.Items {
		if strings.EqualFold(item.Name, name) {
			return item.ItemID, nil
		}
	}
	return "", nil
}

func (c *ZohoBooksClient) CreateItem(ctx context.Context, s entities.AccountingSession, item entities.ItemDraft) (string, error) {
	var out struct {
		Item struct {
			ItemID string `json:"item_id"`
		} `json:"item"`
	}
	body := map[string]any{
		"name":         item.Name,
		"rate":         json.Number(item.Rate.StringFixed(2)),
		"description":  item.Description,
		"product_type": "service",
	}
	if err := c.do(ctx, s, "create_item", http.MethodPost, "/items", nil, body, &out); err != nil {
		return "", err
	}
	metrics.RemoteCreates.WithLabelValues("item").Inc()
	return out.Item.ItemID, nil
}

func (c *ZohoBooksClient) FindBankAccountID(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		BankAccounts []struct {
			AccountID   string `json:"account_id"`
			AccountName string `json:"account_name"`
		} `json:"bankaccounts"`
	}
	if err := c.do(ctx, s, "list_bank_accounts", http.MethodGet, "/bankaccounts", nil, nil, &out); err != nil {
		return "", err
	}
	for _, acct := range out.BankAccounts {
		if acct.AccountName == name {
			return acct.AccountID, nil
		}
	}
	return "", nil
}

func (c *ZohoBooksClient) CreateBankAccount(ctx context.Context, s entities.AccountingSession, name string) (string, error) {
	var out struct {
		BankAccount struct {
			AccountID string `json:"account_id"`
		} `json:"bankaccount"`
	}
	body := map[string]any{
		"account_name": name,
		"account_type": "bank",
		"description":  "Stripe Clearing Account",
	}
	if err := c.do(ctx, s, "create_bank_account", http.MethodPost, "/bankaccounts", nil, body, &out); err != nil {
		return "", err
	}
	metrics.RemoteCreates.WithLabelValues("bank_account").Inc()
	return out.BankAccount.AccountID, nil
}

// CreateInvoice submits the reference as the invoice number, so Zoho rejects a
// second invoice for the same reference.
func (c *ZohoBooksClient) CreateInvoice(ctx context.Context, s entities.AccountingSession, inv entities.InvoiceDraft) (entities.CreatedInvoice, error) {
	var out struct {
		Invoice struct {
			InvoiceID string          `json:"invoice_id"`
			Total     decimal.Decimal `json:"total"`
		} `json:"invoice"`
	}

	line := map[string]any{
		"item_id":  inv.ItemID,
		"rate":     json.Number(inv.Rate.StringFixed(2)),
		"quantity": 1,
	}
	if inv.TaxID != "" {
		line["tax_id"] = inv.TaxID
	}
	body := map[string]any{
		"customer_id":      inv.CustomerID,
		"invoice_number":   inv.Number,
		"reference_number": inv.Reference,
		"date":             inv.Date,
		"is_inclusive_tax": inv.TaxInclusive,
		"line_items":       []map[string]any{line},
	}
	if inv.CurrencyID != "" {
		body["currency_id"] = inv.CurrencyID
	}

	q := url.Values{"ignore_auto_number_generation": {"true"}}
	if err := c.do(ctx, s, "create_invoice", http.MethodPost, "/invoices", q, body, &out); err != nil {
		return entities.CreatedInvoice{}, err
	}
	metrics.RemoteCreates.WithLabelValues("invoice").Inc()
	return entities.CreatedInvoice{ID: out.Invoice.InvoiceID, Total: out.Invoice.Total}, nil
}

// CreatePayment leaves payment_number to Zoho auto-numbering.
func (c *ZohoBooksClient) CreatePayment(ctx context.Context, s entities.AccountingSession, p entities.PaymentDraft) (string, error) {
	var out struct {
		Payment struct {
			PaymentID string `json:"payment_id"`
		} `json:"payment"`
	}
	amount := json.Number(p.Amount.StringFixed(2))
	body := map[string]any{
		"customer_id":      p.CustomerID,
		"payment_mode":     p.Mode,
		"amount":           amount,
		"date":             p.Date,
		"reference_number": p.Reference,
		"description":      p.Description,
		"account_id":       p.AccountID,
		"invoices": []map[string]any{
			{"invoice_id": p.InvoiceID, "amount_applied": amount},
		},
	}
	if err := c.do(ctx, s, "create_payment", http.MethodPost, "/customerpayments", nil, body, &out); err != nil {
		return "", err
	}
	metrics.RemoteCreates.WithLabelValues("payment").Inc()
	return out.Payment.PaymentID, nil
}

func (c *ZohoBooksClient) do(ctx context.Context, s entities.AccountingSession, op, method, path string, query url.Values, body any, out any) (err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.AccountingRequests.WithLabelValues(op, outcome).Inc()
	}()

	if query == nil {
		query = url.Values{}
	}
	query.Set("organization_id", s.OrganizationID)
	endpoint := c.baseURL + path + "?" + query.Encode()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+s.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zoho books %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("zoho books %s: read response: %w", op, err)
	}

	var env zohoEnvelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 || (decodeErr == nil && env.Code != 0) {
		apiErr := &ZohoAPIError{HTTPStatus: resp.StatusCode, Code: env.Code, Message: env.Message}
		if decodeErr != nil {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		log.Printf("[zoho][client] request failed op=%s status=%d code=%d message=%q", op, resp.StatusCode, env.Code, apiErr.Message)
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("zoho books %s: decode response: %w", op, decodeErr)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("zoho books %s: decode response: %w", op, err)
		}
	}
	return nil
}

// IsZohoAPIError reports whether err came back from the Books API itself.
func IsZohoAPIError(err error) bool {
	var apiErr *ZohoAPIError
	return errors.As(err, &apiErr)
}
