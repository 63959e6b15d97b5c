package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stripe_books_bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const settledDateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

type checkoutSessionPayload struct {
	ID                 string          `json:"id"`
	AmountTotal        *int64          `json:"amount_total"`
	Created            int64           `json:"created"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	PaymentIntent      json.RawMessage `json:"payment_intent"`
	CurrencyConversion *struct {
		FxRate         json.RawMessage `json:"fx_rate"`
		SourceCurrency string          `json:"source_currency"`
	} `json:"currency_conversion"`
}

// ExtractTransaction maps a verified checkout event to a Transaction.
//
// It reports false with a nil error for any other event kind. The amount is
// (amount_total / fx_rate) / 100 rounded half away from zero to two places, and
// the settled date is the session creation time in loc.
func ExtractTransaction(ev entities.VerifiedEvent, defaultCurrency string, loc *time.Location) (entities.Transaction, bool, error) {
	if ev.Kind != entities.EventKindCheckoutCompleted {
		return entities.Transaction{}, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var session checkoutSessionPayload
	if err := json.Unmarshal(ev.Payload, &session); err != nil {
		return entities.Transaction{}, true, fmt.Errorf("%w: decode checkout session: %v", ErrMalformedInput, err)
	}
	if session.AmountTotal == nil || *session.AmountTotal < 0 {
		return entities.Transaction{}, true, fmt.Errorf("%w: amount_total missing or negative", ErrDataIntegrity)
	}

	fx := decimal.NewFromInt(1)
	currency := defaultCurrency
	if cc := session.CurrencyConversion; cc != nil {
		if hasJSONValue(cc.FxRate) {
			rate, err := parseFxRate(cc.FxRate)
			if err != nil {
				return entities.Transaction{}, true, err
			}
			fx = rate
		}
		if s := strings.TrimSpace(cc.SourceCurrency); s != "" {
			currency = s
		}
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return entities.Transaction{}, true, fmt.Errorf("%w: currency %q is not an ISO code", ErrDataIntegrity, currency)
	}

	reference := paymentIntentID(session.PaymentIntent)
	if reference == "" {
		reference = session.ID
	}
	if reference == "" {
		return entities.Transaction{}, true, fmt.Errorf("%w: no payment reference", ErrDataIntegrity)
	}

	created := session.Created
	if created == 0 {
		created = ev.Created
	}

	description := strings.TrimSpace(session.Description)
	if description == "" {
		description = entities.DefaultTransactionDescription
	}

	amount := decimal.NewFromInt(*session.AmountTotal).Div(fx).Div(hundred).Round(2)

	return entities.Transaction{
		ReferenceID: reference,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Status:      session.Status,
		SettledDate: SettledDate(created, loc),
	}, true, nil
}

// SettledDate formats a Unix timestamp as a calendar date in loc.
func SettledDate(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format(settledDateLayout)
}

func parseFxRate(raw json.RawMessage) (decimal.Decimal, error) {
	text := string(bytes.TrimSpace(raw))
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: fx_rate %s", ErrDataIntegrity, raw)
		}
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: fx_rate %q is not numeric", ErrDataIntegrity, text)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: fx_rate %s must be positive", ErrDataIntegrity, rate)
	}
	return rate, nil
}

// payment_intent is either an id or an expanded object.
func paymentIntentID(raw json.RawMessage) string {
	if !hasJSONValue(raw) {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return strings.TrimSpace(id)
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.ID)
	}
	return ""
}

func hasJSONValue(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && !bytes.Equal(t, []byte("null"))
}
