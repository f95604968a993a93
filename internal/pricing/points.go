package pricing

import (
	"math"

	"github.com/resellhub/pricing-engine/internal/models"
)

// Loyalty accrual rates mirrored from the backend ledger.
const (
	NewUserSalePoints             = 50
	PointsPerPriceBeforeThreshold = 0.05
)

// PointsForSale derives the loyalty points a purchase earns: a first-time
// bonus plus a fraction of the base-currency price net of any promocode.
func PointsForSale(ref *RefData, basePrice float64, user models.User, promocodeValue float64) int {
	points := 0.0
	if user.FirstTimePromocodeEligible {
		points += NewUserSalePoints
	}
	points += PointsPerPriceBeforeThreshold * (basePrice - ToBaseCurrency(promocodeValue, ref.CurrentCurrency))
	return int(math.Ceil(points))
}

// ReferralSide distinguishes the referral giver from the receiver.
type ReferralSide string

const (
	Referrer ReferralSide = "referrer" // gives the referral
	Referee  ReferralSide = "referee"  // receives it
)

// ReferralDiscount is the promocode value a referral side is entitled to in
// the given currency. Referrer values live on the currency record; referee
// values come from the per-currency constants.
func ReferralDiscount(side ReferralSide, c models.Currency) float64 {
	if side == Referrer {
		return c.ReferrerPromocodeValue
	}
	return ConstantsFor(c.Code).RefereeDiscountValue
}

// WelcomePromo is a first-purchase promocode for a country.
type WelcomePromo struct {
	Code   string
	Value  float64
	MinBuy float64
}

// First-time-purchase promocodes by country shortcode.
var welcomePromos = map[string]WelcomePromo{
	"SG": {Code: "WELCOMESG", Value: 20, MinBuy: 150},
	"AU": {Code: "WELCOMEAU", Value: 20, MinBuy: 150},
	"NZ": {Code: "WELCOMENZ", Value: 20, MinBuy: 150},
	"TW": {Code: "NSCREW400", Value: 400, MinBuy: 3000},
	"JP": {Code: "WELCOMEJP", Value: 1670, MinBuy: 12500},
}

// WelcomePromoFor returns the welcome promocode for a country shortcode,
// if one is configured.
func WelcomePromoFor(shortcode string) (WelcomePromo, bool) {
	p, ok := welcomePromos[shortcode]
	return p, ok
}
