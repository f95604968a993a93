package pricing

import (
	"math"

	"github.com/resellhub/pricing-engine/internal/models"
)

// SellMode distinguishes accepting an offer from posting a listing.
type SellMode string

const (
	ModeSell SellMode = "sell"
	ModeList SellMode = "list"
)

// sellerShippingCountry is the seller's shipping country when set, else the
// session country.
func sellerShippingCountry(ref *RefData, seller models.User) models.Country {
	if seller.ShippingCountry.ID != 0 {
		return seller.ShippingCountry
	}
	return ref.CurrentCountry
}

// SellerFeePercent is the selling-fee percentage actually charged: the
// seller's assigned tier rate, or the best applicable promotion's rate if
// lower. The applied promotion, if any, is returned alongside.
func SellerFeePercent(ref *RefData, seller models.User, product models.Product, price float64, mode SellMode, isSellFromStorage bool) (float64, models.AppliedPromotion) {
	promo := BestSellingFeePromotion(ref, product, seller, price, mode, isSellFromStorage)
	return math.Min(seller.SellingFee.Value, promo.Fee), promo
}

// sellFees assembles the seller fee lines for a price in the transaction
// currency. Roundings use the shipping currency's payout precision; the
// payout total rounds Down so a seller payout never rounds in the
// seller's favor.
func sellFees(ref *RefData, price float64, product models.Product, seller models.User, mode SellMode, saleStorageRef string) (models.SellFees, *models.AppliedPromotion, float64) {
	country := sellerShippingCountry(ref, seller)
	shippingCurrency := ref.CurrencyByID(country.CurrencyID)
	cur := ref.CurrentCurrency
	precision := shippingCurrency.PayoutPrecision

	roundUp := func(x float64) float64 { return ToPrecision(x, precision, RoundUp) }
	convert := func(x float64) float64 {
		return (x / shippingCurrency.Rate) * cur.Rate * seller.SellingFee.ShippingFeeMultiplier
	}

	weight := EffectiveWeight(product, nil)

	// A sale fulfilled from platform storage ships nothing.
	isShippingFree := saleStorageRef != ""

	var shippingSurcharge, shippingFeeOnlyRegular, shippingFeeRegular, shipping float64
	var shippingPromo models.AppliedPromotion
	if !isShippingFree {
		shippingSurcharge = roundUp(convert(country.ShippingSurcharge * weight))
		shippingFeeOnlyRegular = roundUp(convert(country.ShippingBase + country.ShippingIncrement*weight))
		shippingFeeRegular = shippingFeeOnlyRegular + shippingSurcharge

		shippingPromo = BestShippingFeePromotion(ref, shippingFeeRegular, product, seller, price)
		shipping = roundUp(math.Min(shippingFeeRegular, shippingPromo.Fee))
	}

	sellingPercent, sellingPromo := SellerFeePercent(ref, seller, product, price, mode, isShippingFree)

	fees := models.SellFees{
		Selling:                roundUp(price * sellingPercent / 100),
		ProcessingSell:         roundUp(PaymentProcessingFeeSelling * price),
		Shipping:               shipping,
		ShippingSurcharge:      shippingSurcharge,
		ShippingFeeRegular:     shippingFeeRegular,
		ShippingFeeOnlyRegular: shippingFeeOnlyRegular,
	}

	total := ToPrecision(price-fees.Selling-fees.ProcessingSell-fees.Shipping, precision, RoundDown)

	var applied *models.AppliedPromotion
	if sellingPromo.Applied() {
		p := sellingPromo
		applied = &p
	} else if shippingPromo.Applied() {
		p := shippingPromo
		applied = &p
	}
	return fees, applied, total
}

// ComputeSellFees quotes accepting an offer whose price is in base currency
// units. The price the seller confirms is the offer conversion (whole
// units, rounded down).
func ComputeSellFees(ref *RefData, basePrice float64, saleStorageRef string, product models.Product, seller models.User) models.SellQuote {
	price := ToOffer(basePrice, ref.CurrentCurrency)

	fees, promo, total := sellFees(ref, price, product, seller, ModeSell, saleStorageRef)
	return models.SellQuote{
		Price:      price,
		Fees:       fees,
		Promotion:  promo,
		TotalPrice: total,
	}
}

// ComputeListFees quotes posting a listing at a price already in the
// transaction currency.
func ComputeListFees(ref *RefData, localPrice float64, saleStorageRef string, product models.Product, seller models.User) models.SellQuote {
	fees, promo, total := sellFees(ref, localPrice, product, seller, ModeList, saleStorageRef)
	return models.SellQuote{
		Price:      localPrice,
		Fees:       fees,
		Promotion:  promo,
		TotalPrice: total,
	}
}

// SuggestedListPrice pre-fills a listing input from the current best prices
// on either side. Returns false when there is nothing to suggest or the
// suggestion would fall under the currency's minimum list price.
func SuggestedListPrice(c models.Currency, highestOfferPrice, lowestListPrice float64) (float64, bool) {
	if lowestListPrice == 0 && highestOfferPrice == 0 {
		return 0, false
	}
	if lowestListPrice == 0 {
		return highestOfferPrice, true
	}
	if highestOfferPrice == 0 {
		return lowestListPrice - c.ListStep*10, true
	}

	diff := lowestListPrice - highestOfferPrice
	if diff <= c.ListStep {
		return highestOfferPrice, true
	}

	suggested := lowestListPrice - c.ListStep*10
	if diff <= c.ListStep*10 {
		suggested = lowestListPrice - c.ListStep
	}
	if suggested < c.MinListPrice {
		return 0, false
	}
	return suggested, true
}
