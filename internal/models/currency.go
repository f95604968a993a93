package models

// Currency is an immutable reference entity loaded once per session.
// Rate converts base-currency amounts to this currency by multiplication.
type Currency struct {
	ID                     int     `json:"id"`
	Name                   string  `json:"name,omitempty"`
	Code                   string  `json:"code"`
	Symbol                 string  `json:"symbol"`
	Locale                 string  `json:"locale"`
	Rate                   float64 `json:"rate"`
	MinOfferPrice          float64 `json:"min_offer_price"`
	MinListPrice           float64 `json:"min_list_price"`
	OfferStep              float64 `json:"offer_step"`
	ListStep               float64 `json:"list_step"`
	MaxDecimals            int     `json:"max_decimals"`
	Precision              float64 `json:"precision"`
	PayoutPrecision        float64 `json:"payout_precision"`
	ReferrerPromocodeValue float64 `json:"referrer_promocode_value"`
}

// DefaultCurrency mirrors the backend's fallback currency record.
var DefaultCurrency = Currency{
	Code:            "USD",
	Locale:          "en-US",
	MinOfferPrice:   30,
	MinListPrice:    30,
	OfferStep:       1,
	ListStep:        1,
	MaxDecimals:     2,
	Precision:       0.01,
	PayoutPrecision: 0.1,
}
