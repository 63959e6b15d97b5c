package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stripe_books_bridge/internal/domain/entities"
	"stripe_books_bridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = entities.AccountingSession{AccessToken: "tok-1", OrganizationID: "org-9"}

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

// fakeBooks answers with a canned body per "METHOD /path" and records what it saw.
func fakeBooks(t *testing.T, responses map[string]string) (*ZohoBooksClient, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Zoho-oauthtoken tok-1" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k := range r.URL.Query() {
			rec.Query[k] = r.URL.Query().Get(k)
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&rec.Body); err != nil {
				t.Errorf("request body is not json: %v", err)
			}
		}
		seen = append(seen, rec)

		body, ok := responses[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":1004,"message":"not mocked"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewZohoBooksClient(srv.URL+"/books/v3", srv.Client()), &seen
}

func TestZohoBooksClient_Lookups(t *testing.T) {
	c, seen := fakeBooks(t, map[string]string{
		"GET /books/v3/contacts":            `{"code":0,"contacts":[{"contact_id":"c-1","contact_name":"Acme Co"}]}`,
		"GET /books/v3/settings/currencies": `{"code":0,"currencies":[{"currency_id":"cur-usd","currency_code":"USD"},{"currency_id":"cur-nzd","currency_code":"NZD"}]}`,
		"GET /books/v3/settings/taxes":      `{"code":0,"taxes":[{"tax_id":"tax-gst","tax_name":"GST"}]}`,
		"GET /books/v3/items":               `{"code":0,"items":[{"item_id":"it-2","name":"Stripe Sale Extra"},{"item_id":"it-1","name":"Stripe Sale"}]}`,
		"GET /books/v3/bankaccounts":        `{"code":0,"bankaccounts":[{"account_id":"ba-1","account_name":"Stripe Clearing"}]}`,
	})
	ctx := context.Background()

	id, err := c.FindContactByName(ctx, testSession, "Acme Co")
	require.NoError(t, err)
	assert.Equal(t, "c-1", id)
	assert.Equal(t, "Acme Co", (*seen)[0].Query["contact_name_contains"])
	assert.Equal(t, "org-9", (*seen)[0].Query["organization_id"])

	id, err = c.FindCurrencyID(ctx, testSession, "nzd")
	require.NoError(t, err)
	assert.Equal(t, "cur-nzd", id)

	id, err = c.FindCurrencyID(ctx, testSession, "EUR")
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = c.FindTaxID(ctx, testSession, "gst")
	require.NoError(t, err)
	assert.Equal(t, "tax-gst", id)

	id, err = c.FindItemID(ctx, testSession, "Stripe Sale")
	require.NoError(t, err)
	assert.Equal(t, "it-1", id)

	id, err = c.FindBankAccountID(ctx, testSession, "Stripe Clearing")
	require.NoError(t, err)
	assert.Equal(t, "ba-1", id)

	id, err = c.FindBankAccountID(ctx, testSession, "stripe clearing")
	require.NoError(t, err)
	assert.Empty(t, id, "bank account names match exactly")
}

func TestZohoBooksClient_EmptyContactList(t *testing.T) {
	c, _ := fakeBooks(t, map[string]string{
		"GET /books/v3/contacts": `{"code":0,"contacts":[]}`,
	})
	id, err := c.FindContactByName(context.Background(), testSession, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestZohoBooksClient_ContactPrefersExactName(t *testing.T) {
	c, _ := fakeBooks(t, map[string]string{
		"GET /books/v3/contacts": `{"code":0,"contacts":[{"contact_id":"c-long","contact_name":"Stripe: Acme Co"},{"contact_id":"c-exact","contact_name":"Stripe: Acme"}]}`,
	})
	id, err := c.FindContactByName(context.Background(), testSession, "Stripe: Acme")
	require.NoError(t, err)
	assert.Equal(t, "c-exact", id)

	id, err = c.FindContactByName(context.Background(), testSession, "Stripe: Ac")
	require.NoError(t, err)
	assert.Equal(t, "c-long", id, "falls back to the first partial match")
}

func TestZohoBooksClient_Creates(t *testing.T) {
	c, seen := fakeBooks(t, map[string]string{
		"POST /books/v3/contacts":         `{"code":0,"contact":{"contact_id":"c-new"}}`,
		"POST /books/v3/items":            `{"code":0,"item":{"item_id":"it-new"}}`,
		"POST /books/v3/bankaccounts":     `{"code":0,"bankaccount":{"account_id":"ba-new"}}`,
		"POST /books/v3/invoices":         `{"code":0,"invoice":{"invoice_id":"inv-1","total":66.67}}`,
		"POST /books/v3/customerpayments": `{"code":0,"payment":{"payment_id":"pay-1"}}`,
	})
	ctx := context.Background()

	id, err := c.CreateContact(ctx, testSession, "Acme Co")
	require.NoError(t, err)
	assert.Equal(t, "c-new", id)
	assert.Equal(t, "customer", (*seen)[0].Body["contact_type"])

	id, err = c.CreateItem(ctx, testSession, entities.ItemDraft{Name: "Stripe Sale", Rate: decimal.Zero, Description: "Stripe clearing item"})
	require.NoError(t, err)
	assert.Equal(t, "it-new", id)
	assert.Equal(t, json.Number("0.00"), (*seen)[1].Body["rate"])

	id, err = c.CreateBankAccount(ctx, testSession, "Stripe Clearing")
	require.NoError(t, err)
	assert.Equal(t, "ba-new", id)
	assert.Equal(t, "bank", (*seen)[2].Body["account_type"])

	created, err := c.CreateInvoice(ctx, testSession, entities.InvoiceDraft{
		CustomerID: "c-1",
		Number:     "pi_1",
		Reference:  "pi_1",
		Date:       "2023-11-15",
		ItemID:     "it-1",
		Rate:       decimal.RequireFromString("66.67"),
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", created.ID)
	assert.Equal(t, "66.67", created.Total.StringFixed(2))
	inv := (*seen)[3]
	assert.Equal(t, "true", inv.Query["ignore_auto_number_generation"])
	assert.Equal(t, "pi_1", inv.Body["invoice_number"])
	assert.NotContains(t, inv.Body, "currency_id")
	lines := inv.Body["line_items"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, json.Number("66.67"), line["rate"])
	assert.NotContains(t, line, "tax_id")

	id, err = c.CreatePayment(ctx, testSession, entities.PaymentDraft{
		CustomerID:  "c-1",
		InvoiceID:   "inv-1",
		Mode:        "Stripe",
		Amount:      decimal.RequireFromString("66.67"),
		Date:        "2023-11-15",
		Reference:   "pi_1",
		Description: "No description provided",
		AccountID:   "ba-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", id)
	pay := (*seen)[4]
	assert.Equal(t, json.Number("66.67"), pay.Body["amount"])
	assert.Equal(t, "ba-1", pay.Body["account_id"])
	applied := pay.Body["invoices"].([]any)[0].(map[string]any)
	assert.Equal(t, "inv-1", applied["invoice_id"])
	assert.Equal(t, json.Number("66.67"), applied["amount_applied"])
}

func TestZohoBooksClient_InvoiceCarriesOptionalIDs(t *testing.T) {
	c, seen := fakeBooks(t, map[string]string{
		"POST /books/v3/invoices": `{"code":0,"invoice":{"invoice_id":"inv-2"}}`,
	})
	created, err := c.CreateInvoice(context.Background(), testSession, entities.InvoiceDraft{
		CustomerID:   "c-1",
		Number:       "pi_2",
		Reference:    "pi_2",
		Date:         "2023-11-15",
		CurrencyID:   "cur-nzd",
		TaxID:        "tax-gst",
		ItemID:       "it-1",
		Rate:         decimal.RequireFromString("10"),
		TaxInclusive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-2", created.ID)
	assert.True(t, created.Total.IsZero(), "absent total decodes as zero")

	body := (*seen)[0].Body
	assert.Equal(t, "cur-nzd", body["currency_id"])
	assert.Equal(t, true, body["is_inclusive_tax"])
	line := body["line_items"].([]any)[0].(map[string]any)
	assert.Equal(t, "tax-gst", line["tax_id"])
	assert.Equal(t, json.Number("10.00"), line["rate"])
}

func TestZohoBooksClient_InvoiceTotalIncludesAddedTax(t *testing.T) {
	c, seen := fakeBooks(t, map[string]string{
		"POST /books/v3/invoices": `{"code":0,"invoice":{"invoice_id":"inv-3","sub_total":100.00,"tax_total":15.00,"total":115.00}}`,
	})
	created, err := c.CreateInvoice(context.Background(), testSession, entities.InvoiceDraft{
		CustomerID: "c-1",
		Number:     "pi_3",
		ItemID:     "it-1",
		TaxID:      "tax-gst",
		Rate:       decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, false, (*seen)[0].Body["is_inclusive_tax"])
	assert.Equal(t, "115.00", created.Total.StringFixed(2))
}

func TestZohoBooksClient_Errors(t *testing.T) {
	t.Run("non-zero code on 200", func(t *testing.T) {
		c, _ := fakeBooks(t, map[string]string{
			"POST /books/v3/invoices": `{"code":1001,"message":"Invoice \"pi_1\" already exists."}`,
		})
		_, err := c.CreateInvoice(context.Background(), testSession, entities.InvoiceDraft{Number: "pi_1", Rate: decimal.Zero})
		require.Error(t, err)
		var apiErr *ZohoAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 1001, apiErr.Code)
		assert.Contains(t, apiErr.Message, "already exists")
	})

	t.Run("http error status", func(t *testing.T) {
		c, _ := fakeBooks(t, map[string]string{})
		_, err := c.FindCurrencyID(context.Background(), testSession, "NZD")
		require.Error(t, err)
		assert.True(t, IsZohoAPIError(err))
	})

	t.Run("non-json error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer srv.Close()

		c := NewZohoBooksClient(srv.URL, srv.Client())
		_, err := c.FindTaxID(context.Background(), testSession, "GST")
		var apiErr *ZohoAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
		assert.Equal(t, "upstream down", apiErr.Message)
	})

	t.Run("invalid oauth token code", func(t *testing.T) {
		c, _ := fakeBooks(t, map[string]string{
			"GET /books/v3/contacts": `{"code":57,"message":"You are not authorized to perform this operation"}`,
		})
		_, err := c.FindContactByName(context.Background(), testSession, "Acme")
		assert.ErrorIs(t, err, interfaces.ErrAccessTokenInvalid)
	})

	t.Run("unauthorized status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":14,"message":"Invalid value passed for authtoken."}`))
		}))
		defer srv.Close()

		c := NewZohoBooksClient(srv.URL, srv.Client())
		_, err := c.FindTaxID(context.Background(), testSession, "GST")
		assert.ErrorIs(t, err, interfaces.ErrAccessTokenInvalid)
	})

	t.Run("other api errors keep the token", func(t *testing.T) {
		c, _ := fakeBooks(t, map[string]string{})
		_, err := c.FindCurrencyID(context.Background(), testSession, "NZD")
		require.Error(t, err)
		assert.NotErrorIs(t, err, interfaces.ErrAccessTokenInvalid)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		c := NewZohoBooksClient(base, nil)
		_, err := c.FindItemID(context.Background(), testSession, "Stripe Sale")
		require.Error(t, err)
		assert.False(t, IsZohoAPIError(err))
	})
}

func TestBooksBaseURL(t *testing.T) {
	assert.Equal(t, "https://www.zohoapis.com/books/v3", BooksBaseURL(".com"))
	assert.Equal(t, "https://www.zohoapis.com.au/books/v3", BooksBaseURL(".com.au"))
}
