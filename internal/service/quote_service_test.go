package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resellhub/pricing-engine/internal/cache"
	"github.com/resellhub/pricing-engine/internal/models"
	"github.com/resellhub/pricing-engine/internal/pricing"
)

type staticLoader struct {
	data *pricing.RefData
}

func (l *staticLoader) LoadRefData(_ context.Context) (*pricing.RefData, error) {
	return l.data, nil
}

func testRefData() *pricing.RefData {
	sgd := models.Currency{
		ID: 1, Code: "SGD", Symbol: "S$", Locale: "en-SG",
		Rate: 1, Precision: 0.1, PayoutPrecision: 0.1, MaxDecimals: 1,
	}
	sg := models.Country{
		ID: 1, Shortcode: "SG", CurrencyID: 1,
		DeliveryBase: 5, DeliveryIncrement: 0.002,
		ShippingBase: 4, ShippingIncrement: 0.001,
	}
	return &pricing.RefData{
		Currencies: []models.Currency{sgd},
		Countries:  []models.Country{sg},
	}
}

func testSeller() models.User {
	return models.User{
		ID: 8,
		SellingFee: models.SellingFee{
			Value:                 9,
			PromotionsApplicable:  true,
			ShippingFeeMultiplier: 1,
		},
	}
}

func newTestService(t *testing.T) *QuoteService {
	t.Helper()
	svc := NewQuoteService(cache.NewRefDataCache())
	require.NoError(t, svc.Reload(context.Background(), &staticLoader{data: testRefData()}))
	return svc
}

func sgSession() Session {
	return Session{CurrencyCode: "SGD", CountryShortcode: "SG"}
}

func TestQuoteServiceRequiresLoadedRefData(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(cache.NewRefDataCache())
	_, err := svc.BuyQuote(BuyQuoteRequest{Session: sgSession(), BasePrice: 150})
	require.ErrorIs(t, err, ErrRefDataNotLoaded)
}

func TestQuoteServiceRejectsUnknownSessionCodes(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.BuyQuote(BuyQuoteRequest{
		Session:   Session{CurrencyCode: "XXX", CountryShortcode: "SG"},
		BasePrice: 150,
	})
	require.ErrorContains(t, err, "unknown currency")

	_, err = svc.BuyQuote(BuyQuoteRequest{
		Session:   Session{CurrencyCode: "SGD", CountryShortcode: "ZZ"},
		BasePrice: 150,
	})
	require.ErrorContains(t, err, "unknown country")
}

func TestQuoteServiceBuyQuote(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	quote, err := svc.BuyQuote(BuyQuoteRequest{
		Session:   sgSession(),
		BasePrice: 150,
		Product:   models.Product{ActualWeight: 1000},
		DeliverTo: pricing.DeliverToAddress,
	})
	require.NoError(t, err)
	require.InDelta(t, 157, quote.TotalPrice, 1e-9)
}

func TestQuoteServiceSellQuote(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	quote, err := svc.SellQuote(SellQuoteRequest{
		Session:   sgSession(),
		BasePrice: 200,
		Product:   models.Product{ActualWeight: 1000},
		User:      testSeller(),
	})
	require.NoError(t, err)
	require.InDelta(t, 171, quote.TotalPrice, 1e-9)
}

func TestQuoteServiceBulkListQuotes(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	seller := testSeller()

	items := []BulkListItem{
		{LocalPrice: 200, Product: models.Product{ActualWeight: 1000}},
		{LocalPrice: 300, Product: models.Product{ActualWeight: 1000}},
		{LocalPrice: 200, SaleStorageRef: "ref-1", Product: models.Product{ActualWeight: 1000}},
	}
	quotes, err := svc.BulkListQuotes(context.Background(), BulkListQuoteRequest{
		Session: sgSession(),
		User:    seller,
		Items:   items,
	})
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	// Each bulk result matches the single-quote path exactly.
	for i, item := range items {
		single, err := svc.ListQuote(ListQuoteRequest{
			Session:        sgSession(),
			LocalPrice:     item.LocalPrice,
			SaleStorageRef: item.SaleStorageRef,
			Product:        item.Product,
			User:           seller,
		})
		require.NoError(t, err)
		require.Equal(t, single, quotes[i])
	}

	// Storage sale in the batch shipped free.
	require.InDelta(t, 0, quotes[2].Fees.Shipping, 1e-9)

	quotes, err = svc.BulkListQuotes(context.Background(), BulkListQuoteRequest{Session: sgSession(), User: seller})
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestQuoteServiceFormatAmount(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	got, err := svc.FormatAmount("SGD", 157, 0, pricing.SymbolFront)
	require.NoError(t, err)
	require.Equal(t, "S$ 157", got)

	_, err = svc.FormatAmount("XXX", 157, 0, pricing.SymbolFront)
	require.ErrorContains(t, err, "unknown currency")
}
