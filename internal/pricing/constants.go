package pricing

import "fmt"

// CurrencyConstants are the per-currency thresholds that do not live in the
// currency table itself: delivery-insurance pricing, referral discounts for
// the referred side, and offer caps.
type CurrencyConstants struct {
	DeliveryInsurancePrecision float64
	DeliveryInsuranceMaxFree   float64
	OfferPriceMax              float64

	// Referrer = referral giver, referee = referral receiver.
	RefereeDiscountValue  float64
	RefereeDiscountMinBuy float64
}

var currencyConstants = map[string]CurrencyConstants{
	"SGD": {1, 100, 100000, 20, 150},
	"USD": {1, 30, 80000, 15, 100},
	"MYR": {1, 150, 300000, 60, 450},
	"HKD": {1, 200, 500000, 100, 750},
	"AUD": {1, 50, 100000, 20, 150},
	"IDR": {1000, 0, 1000000000, 200000, 1500000},
	"JPY": {100, 5000, 8000000, 2000, 10000},
	"NZD": {1, 50, 100000, 20, 150},
	"EUR": {1, 30, 100000, 20, 100},
	"TWD": {1, 1000, 2000000, 415, 3000},
	"CNY": {1, 100, 500000, 100, 800},
}

// ConstantsFor returns the constants for a currency code. A missing code is
// a reference-data wiring bug, not user input, so it panics.
func ConstantsFor(code string) CurrencyConstants {
	k, ok := currencyConstants[code]
	if !ok {
		panic(fmt.Sprintf("pricing: no currency constants configured for %q", code))
	}
	return k
}
