package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/resellhub/pricing-engine/internal/pricing"
	"github.com/resellhub/pricing-engine/internal/service"
)

// QuoteHandler exposes the fee calculators over HTTP. It owns input
// validation: the engine propagates NaN internally, so non-finite numbers
// must be rejected here before they reach it.
type QuoteHandler struct {
	service *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeQuoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrRefDataNotLoaded) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "reference_data_not_loaded"})
		return
	}
	// Unknown currency/country codes are caller input problems.
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func validAmount(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// --- Handlers ---

// BuyQuote handles POST /quotes/buy
func (h *QuoteHandler) BuyQuote(w http.ResponseWriter, r *http.Request) {
	var req service.BuyQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}
	if !validAmount(req.BasePrice) || !validAmount(req.DeliveryDeclare) || !validAmount(req.Promocode.Value) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price, delivery_declare and promocode value must be finite and non-negative"})
		return
	}

	quote, err := h.service.BuyQuote(req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// OfferQuote handles POST /quotes/offer
func (h *QuoteHandler) OfferQuote(w http.ResponseWriter, r *http.Request) {
	var req service.OfferQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}
	if !validAmount(req.LocalPrice) || !validAmount(req.DeliveryDeclare) || !validAmount(req.Promocode.Value) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price, delivery_declare and promocode value must be finite and non-negative"})
		return
	}

	quote, err := h.service.OfferQuote(req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// SellQuote handles POST /quotes/sell
func (h *QuoteHandler) SellQuote(w http.ResponseWriter, r *http.Request) {
	var req service.SellQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}
	if !validAmount(req.BasePrice) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be finite and non-negative"})
		return
	}

	quote, err := h.service.SellQuote(req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// ListQuote handles POST /quotes/list
func (h *QuoteHandler) ListQuote(w http.ResponseWriter, r *http.Request) {
	var req service.ListQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}
	if !validAmount(req.LocalPrice) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price must be finite and non-negative"})
		return
	}

	quote, err := h.service.ListQuote(req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// BulkListQuotes handles POST /quotes/bulk-list
func (h *QuoteHandler) BulkListQuotes(w http.ResponseWriter, r *http.Request) {
	var req service.BulkListQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}
	for _, item := range req.Items {
		if !validAmount(item.LocalPrice) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "every item price must be finite and non-negative"})
			return
		}
	}

	quotes, err := h.service.BulkListQuotes(r.Context(), req)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}

// FormatAmount handles GET /format?amount=&currency=&decimals=&position=
func (h *QuoteHandler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || !validAmount(amount) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be a finite non-negative number"})
		return
	}
	decimals := 0
	if d := q.Get("decimals"); d != "" {
		if decimals, err = strconv.Atoi(d); err != nil || decimals < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid decimals"})
			return
		}
	}
	position := pricing.SymbolFront
	if q.Get("position") == "back" {
		position = pricing.SymbolBack
	}

	formatted, err := h.service.FormatAmount(q.Get("currency"), amount, decimals, position)
	if err != nil {
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"formatted": formatted})
}
