package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resellhub/pricing-engine/internal/api/handlers"
	"github.com/resellhub/pricing-engine/internal/service"
)

// NewRouter builds the HTTP router for the pricing-service
func NewRouter(svc *service.QuoteService) http.Handler {
	r := chi.NewRouter()

	quoteHandler := handlers.NewQuoteHandler(svc)

	// Quote endpoints
	r.Route("/quotes", func(r chi.Router) {
		r.Post("/buy", quoteHandler.BuyQuote)
		r.Post("/offer", quoteHandler.OfferQuote)
		r.Post("/sell", quoteHandler.SellQuote)
		r.Post("/list", quoteHandler.ListQuote)
		r.Post("/bulk-list", quoteHandler.BulkListQuotes)
	})

	// Display formatting
	r.Get("/format", quoteHandler.FormatAmount)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
