package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/resellhub/pricing-engine/internal/cache"
	"github.com/resellhub/pricing-engine/internal/concurrency"
	"github.com/resellhub/pricing-engine/internal/models"
	"github.com/resellhub/pricing-engine/internal/pricing"
)

// ErrRefDataNotLoaded is returned when quoting is attempted before the
// reference-data snapshot has been loaded.
var ErrRefDataNotLoaded = errors.New("reference data not loaded")

// RefDataLoader is the loading side of the reference-data collaborator
// (interface so tests can feed snapshots without a database).
type RefDataLoader interface {
	LoadRefData(ctx context.Context) (*pricing.RefData, error)
}

// QuoteService resolves a session view of the reference data and runs the
// pure fee calculators against it.
type QuoteService struct {
	cache *cache.RefDataCache
}

func NewQuoteService(c *cache.RefDataCache) *QuoteService {
	return &QuoteService{cache: c}
}

// Reload replaces the cached snapshot from the loader.
func (s *QuoteService) Reload(ctx context.Context, loader RefDataLoader) error {
	data, err := loader.LoadRefData(ctx)
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}
	s.cache.Set(data)
	return nil
}

// Session identifies the requesting session's currency and country.
type Session struct {
	CurrencyCode     string `json:"currency"`
	CountryShortcode string `json:"country"`
}

func (s *QuoteService) snapshot(sess Session) (*pricing.RefData, error) {
	data, ok := s.cache.Get()
	if !ok {
		return nil, ErrRefDataNotLoaded
	}
	return data.WithCurrent(sess.CurrencyCode, sess.CountryShortcode)
}

// BuyQuoteRequest quotes an immediate purchase of a list at its base price.
type BuyQuoteRequest struct {
	Session
	BasePrice            float64                `json:"price"`
	Product              models.Product         `json:"product"`
	User                 models.User            `json:"user"`
	Promocode            pricing.Promocode      `json:"promocode"`
	AddOn                *models.AddOnSelection `json:"add_on,omitempty"`
	PaymentMethod        string                 `json:"payment_method"`
	DeliverTo            pricing.DeliverTo      `json:"deliver_to"`
	DeliveryDeclare      float64                `json:"delivery_declare"`
	InstantFeeApplicable bool                   `json:"instant_fee_applicable"`
}

func (s *QuoteService) BuyQuote(req BuyQuoteRequest) (models.BuyQuote, error) {
	ref, err := s.snapshot(req.Session)
	if err != nil {
		return models.BuyQuote{}, err
	}
	opts := pricing.BuyOptions{
		PaymentMethod:        req.PaymentMethod,
		DeliverTo:            req.DeliverTo,
		DeliveryDeclare:      req.DeliveryDeclare,
		InstantFeeApplicable: req.InstantFeeApplicable,
	}
	return pricing.ComputeBuyFees(ref, req.BasePrice, req.Product, req.User, req.Promocode, req.AddOn, opts), nil
}

// OfferQuoteRequest quotes a posted offer at a local-currency price.
type OfferQuoteRequest struct {
	Session
	LocalPrice      float64           `json:"price"`
	Product         models.Product    `json:"product"`
	User            models.User       `json:"user"`
	Promocode       pricing.Promocode `json:"promocode"`
	PaymentMethod   string            `json:"payment_method"`
	DeliverTo       pricing.DeliverTo `json:"deliver_to"`
	DeliveryDeclare float64           `json:"delivery_declare"`
}

func (s *QuoteService) OfferQuote(req OfferQuoteRequest) (models.BuyQuote, error) {
	ref, err := s.snapshot(req.Session)
	if err != nil {
		return models.BuyQuote{}, err
	}
	opts := pricing.BuyOptions{
		PaymentMethod:   req.PaymentMethod,
		DeliverTo:       req.DeliverTo,
		DeliveryDeclare: req.DeliveryDeclare,
	}
	return pricing.ComputeOfferFees(ref, req.LocalPrice, req.Product, req.User, req.Promocode, opts), nil
}

// SellQuoteRequest quotes accepting an offer at its base price.
type SellQuoteRequest struct {
	Session
	BasePrice      float64        `json:"price"`
	SaleStorageRef string         `json:"sale_storage_ref,omitempty"`
	Product        models.Product `json:"product"`
	User           models.User    `json:"user"`
}

func (s *QuoteService) SellQuote(req SellQuoteRequest) (models.SellQuote, error) {
	ref, err := s.snapshot(req.Session)
	if err != nil {
		return models.SellQuote{}, err
	}
	return pricing.ComputeSellFees(ref, req.BasePrice, req.SaleStorageRef, req.Product, req.User), nil
}

// ListQuoteRequest quotes a listing at a local-currency price.
type ListQuoteRequest struct {
	Session
	LocalPrice     float64        `json:"price"`
	SaleStorageRef string         `json:"sale_storage_ref,omitempty"`
	Product        models.Product `json:"product"`
	User           models.User    `json:"user"`
}

func (s *QuoteService) ListQuote(req ListQuoteRequest) (models.SellQuote, error) {
	ref, err := s.snapshot(req.Session)
	if err != nil {
		return models.SellQuote{}, err
	}
	return pricing.ComputeListFees(ref, req.LocalPrice, req.SaleStorageRef, req.Product, req.User), nil
}

// FormatAmount renders an amount for display in the given currency.
func (s *QuoteService) FormatAmount(currencyCode string, amount float64, decimals int, pos pricing.SymbolPosition) (string, error) {
	data, ok := s.cache.Get()
	if !ok {
		return "", ErrRefDataNotLoaded
	}
	c, ok := data.CurrencyByCode(currencyCode)
	if !ok {
		return "", fmt.Errorf("unknown currency code %q", currencyCode)
	}
	return pricing.FormatCurrency(amount, c, decimals, pos), nil
}

// BulkListItem is one listing in a bulk quote.
type BulkListItem struct {
	LocalPrice     float64        `json:"price"`
	SaleStorageRef string         `json:"sale_storage_ref,omitempty"`
	Product        models.Product `json:"product"`
}

// BulkListQuoteRequest quotes many listings for one seller in one call.
type BulkListQuoteRequest struct {
	Session
	User  models.User    `json:"user"`
	Items []BulkListItem `json:"items"`
}

// BulkListQuotes computes each item's quote independently, fanning out
// over a small worker pool. Each item is pure computation, so results are
// deterministic regardless of scheduling.
func (s *QuoteService) BulkListQuotes(ctx context.Context, req BulkListQuoteRequest) ([]models.SellQuote, error) {
	ref, err := s.snapshot(req.Session)
	if err != nil {
		return nil, err
	}

	quotes := make([]models.SellQuote, len(req.Items))

	workers := 4
	if len(req.Items) < workers {
		workers = len(req.Items)
	}
	if workers == 0 {
		return quotes, nil
	}

	next := make(chan int)
	go func() {
		defer close(next)
		for i := range req.Items {
			select {
			case next <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	concurrency.SimpleWorkerPool(ctx, workers, func(_ context.Context, _ int) {
		for i := range next {
			item := req.Items[i]
			quotes[i] = pricing.ComputeListFees(ref, item.LocalPrice, item.SaleStorageRef, item.Product, req.User)
		}
	})

	return quotes, ctx.Err()
}
