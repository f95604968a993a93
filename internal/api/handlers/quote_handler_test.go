package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resellhub/pricing-engine/internal/cache"
	"github.com/resellhub/pricing-engine/internal/models"
	"github.com/resellhub/pricing-engine/internal/pricing"
	"github.com/resellhub/pricing-engine/internal/service"
)

func newTestHandler(t *testing.T) *QuoteHandler {
	t.Helper()

	sgd := models.Currency{
		ID: 1, Code: "SGD", Symbol: "S$", Locale: "en-SG",
		Rate: 1, Precision: 0.1, PayoutPrecision: 0.1, MaxDecimals: 1,
	}
	sg := models.Country{
		ID: 1, Shortcode: "SG", CurrencyID: 1,
		DeliveryBase: 5, DeliveryIncrement: 0.002,
	}

	refCache := cache.NewRefDataCache()
	refCache.Set(&pricing.RefData{
		Currencies: []models.Currency{sgd},
		Countries:  []models.Country{sg},
	})
	return NewQuoteHandler(service.NewQuoteService(refCache))
}

func TestBuyQuoteHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	body, err := json.Marshal(map[string]interface{}{
		"currency":   "SGD",
		"country":    "SG",
		"price":      150,
		"product":    map[string]interface{}{"actual_weight": 1000},
		"deliver_to": "address",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/quotes/buy", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.BuyQuote(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var quote models.BuyQuote
	require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
	require.InDelta(t, 157, quote.TotalPrice, 1e-9)
}

func TestBuyQuoteHandlerRejectsNegativePrice(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/quotes/buy",
		bytes.NewReader([]byte(`{"currency":"SGD","country":"SG","price":-5}`)))
	w := httptest.NewRecorder()
	h.BuyQuote(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuyQuoteHandlerUnknownCurrencyIsBadRequest(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/quotes/buy",
		bytes.NewReader([]byte(`{"currency":"XXX","country":"SG","price":150}`)))
	w := httptest.NewRecorder()
	h.BuyQuote(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandlerRefDataNotLoaded(t *testing.T) {
	t.Parallel()

	h := NewQuoteHandler(service.NewQuoteService(cache.NewRefDataCache()))

	req := httptest.NewRequest(http.MethodPost, "/quotes/buy",
		bytes.NewReader([]byte(`{"currency":"SGD","country":"SG","price":150}`)))
	w := httptest.NewRecorder()
	h.BuyQuote(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFormatAmountHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/format?amount=157&currency=SGD", nil)
	w := httptest.NewRecorder()
	h.FormatAmount(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, "S$ 157", resp["formatted"])
}

func TestBulkListQuotesHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	body := []byte(`{
		"currency": "SGD",
		"country": "SG",
		"user": {"selling_fee": {"value": 9, "promotions_applicable": true, "shipping_fee_multiplier": 1}},
		"items": [
			{"price": 200, "product": {"actual_weight": 1000}},
			{"price": 300, "product": {"actual_weight": 1000}}
		]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/quotes/bulk-list", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.BulkListQuotes(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quotes []models.SellQuote `json:"quotes"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Quotes, 2)
}
