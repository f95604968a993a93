package pricing

import (
	"math"

	"github.com/resellhub/pricing-engine/internal/models"
)

// RoundMode is the direction a monetary rounding takes. Buyer-facing totals
// round up (never undercharge), seller payouts round down (never overpay).
type RoundMode int

const (
	RoundNearest RoundMode = iota
	RoundUp
	RoundDown
)

// Platform-wide fee rates mirrored from the backend ledger.
const (
	PaymentProcessingFeeSelling = 0.03
	DeliveryProtectionFeeBuying = 0.03
)

// precisionUnits are the only valid currency rounding granularities.
var precisionUnits = [...]float64{0.01, 0.1, 1, 10, 100, 1000}

// Normalize rounds x to a fixed number of decimal digits to strip
// floating-point noise before any precision rounding. Numerical guard,
// not a business rule.
func Normalize(x float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(x*pow) / pow
}

// Normalize4 is Normalize at the ledger's working precision of 4 digits.
func Normalize4(x float64) float64 {
	return Normalize(x, 4)
}

// ToPrecision rounds x to a multiple of unit in the given direction.
// NaN propagates; an unrecognized unit leaves the normalized input as is.
func ToPrecision(x, unit float64, mode RoundMode) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	result := Normalize4(x)

	round := math.Round
	switch mode {
	case RoundUp:
		round = math.Ceil
	case RoundDown:
		round = math.Floor
	}

	for _, u := range precisionUnits {
		if u == unit {
			return Normalize4(round(Normalize4(result/unit)) * unit)
		}
	}
	return result
}

// ToLocalCurrency converts a base-currency amount into c and rounds to the
// currency's display precision.
func ToLocalCurrency(base float64, c models.Currency) float64 {
	if math.IsNaN(base) {
		return base
	}
	return Normalize4(math.Round(base*c.Rate/c.Precision) * c.Precision)
}

// ToBaseCurrency converts back to the base accounting currency. No rounding:
// base is the precise unit.
func ToBaseCurrency(local float64, c models.Currency) float64 {
	return local / c.Rate
}

// ToList converts a base amount to c rounded up to a whole unit, the
// buyer-facing convention for asking prices.
func ToList(base float64, c models.Currency) float64 {
	return ToPrecision(ToLocalCurrency(base, c), 1, RoundUp)
}

// ToOffer converts a base amount to c rounded down to a whole unit, so an
// offer never rounds in the offerer's favor.
func ToOffer(base float64, c models.Currency) float64 {
	return ToPrecision(ToLocalCurrency(base, c), 1, RoundDown)
}
