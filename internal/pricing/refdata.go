package pricing

import (
	"fmt"

	"github.com/resellhub/pricing-engine/internal/models"
)

// RefData is the immutable reference-data snapshot every calculator runs
// against. It is threaded explicitly into each entry point instead of being
// read from a global store, so the engine computes the same answer for the
// same inputs with no ambient state.
//
// Promotion slices are kept in their supplied order; the resolver's
// first-wins tie-break makes that order semantically significant, so they
// must never be reordered or deduplicated.
type RefData struct {
	Currencies            []models.Currency
	Countries             []models.Country
	DeliveryFeePromotions []models.DeliveryFeePromotion
	ShippingFeePromotions []models.ShippingFeePromotion
	SellingFeePromotions  []models.SellingFeePromotion
	ProcessingFees        []models.ProcessingFeeRate

	// CurrentCurrency and CurrentCountry reflect the session's locale
	// selection and act as fallbacks when a user has no country set.
	CurrentCurrency models.Currency
	CurrentCountry  models.Country
}

// CurrencyByID resolves a currency referenced by id. Reference rows point at
// each other by id; a dangling reference is a loading bug upstream, so this
// panics rather than degrading silently.
func (r *RefData) CurrencyByID(id int) models.Currency {
	for _, c := range r.Currencies {
		if c.ID == id {
			return c
		}
	}
	panic(fmt.Sprintf("pricing: currency id %d not in reference data", id))
}

// CountryByShortcode looks a country up by its shortcode.
func (r *RefData) CountryByShortcode(code string) (models.Country, bool) {
	for _, c := range r.Countries {
		if c.Shortcode == code {
			return c, true
		}
	}
	return models.Country{}, false
}

// CurrencyByCode looks a currency up by its ISO code.
func (r *RefData) CurrencyByCode(code string) (models.Currency, bool) {
	for _, c := range r.Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return models.Currency{}, false
}

// WithCurrent returns a shallow copy of the snapshot with the session
// currency and country resolved from their codes. The underlying slices are
// shared; they are read-only for the snapshot's lifetime.
func (r *RefData) WithCurrent(currencyCode, countryShortcode string) (*RefData, error) {
	cur, ok := r.CurrencyByCode(currencyCode)
	if !ok {
		return nil, fmt.Errorf("unknown currency code %q", currencyCode)
	}
	country, ok := r.CountryByShortcode(countryShortcode)
	if !ok {
		return nil, fmt.Errorf("unknown country shortcode %q", countryShortcode)
	}

	view := *r
	view.CurrentCurrency = cur
	view.CurrentCountry = country
	return &view, nil
}
