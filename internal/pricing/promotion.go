package pricing

import (
	"github.com/resellhub/pricing-engine/internal/models"
)

// SellFromStorageName marks the promotion that only applies when a sale is
// fulfilled from platform storage.
const SellFromStorageName = "Sell_From_Storage"

// Eligibility checks. Each constraint is optional on the promotion; a zero
// value passes unconditionally.

func checkUserGroup(group string, user models.User) bool {
	return group == "" || user.InGroup(group)
}

func checkCountry(promotionCountryID, effectiveCountryID int) bool {
	return promotionCountryID == 0 || effectiveCountryID == promotionCountryID
}

func checkMinimumValue(minimum, price float64) bool {
	return minimum == 0 || price >= minimum
}

func checkProductCollection(slug string, product models.Product) bool {
	return slug == "" || product.InCollection(slug)
}

// effectiveCountryID picks the user-side country for an eligibility check,
// falling back to the session country when the user has none set.
func effectiveCountryID(userCountryID int, ref *RefData) int {
	if userCountryID != 0 {
		return userCountryID
	}
	return ref.CurrentCountry.ID
}

func deliveryPromotionApplicable(p models.DeliveryFeePromotion, product models.Product, user models.User, price float64, ref *RefData) bool {
	return checkUserGroup(p.UserGroup, user) &&
		checkCountry(p.CountryID, effectiveCountryID(user.Country.ID, ref)) &&
		checkMinimumValue(p.MinimumPurchaseValue, price) &&
		checkProductCollection(p.ProductCollection, product)
}

func sellerPromotionApplicable(base models.BasePromotion, minimumSales float64, product models.Product, seller models.User, price float64, ref *RefData) bool {
	return checkUserGroup(base.UserGroup, seller) &&
		checkCountry(base.CountryID, effectiveCountryID(seller.ShippingCountry.ID, ref)) &&
		checkMinimumValue(minimumSales, price) &&
		checkProductCollection(base.ProductCollection, product)
}

// feeAfterDiscount applies a percentage discount and rounds up to 0.1.
func feeAfterDiscount(fee, discount float64) float64 {
	return ToPrecision(fee-(fee*discount)/100, 0.1, RoundUp)
}

// PromotionalFee computes the fee that would result if the promotion were
// applied to the regular fee. A "fixed" discount acts as a flat cap.
func PromotionalFee(dtype models.DiscountType, regularFee, discount float64) float64 {
	switch dtype {
	case models.DiscountPercentage:
		return feeAfterDiscount(regularFee, discount)
	case models.DiscountFixedReduction:
		if regularFee > discount {
			return regularFee - discount
		}
		return 0
	default:
		if discount < regularFee {
			return discount
		}
		return regularFee
	}
}

// betterPromotion is one fold step: the incumbent survives unless this
// promotion's fee strictly beats both it and the regular fee. Strict
// comparison means equal fees keep the earlier promotion, so input order is
// the tie-break.
func betterPromotion(p models.BasePromotion, incumbent models.AppliedPromotion, regularFee, discount float64) models.AppliedPromotion {
	fee := PromotionalFee(p.DiscountType, regularFee, discount)
	if fee < incumbent.Fee && fee < regularFee {
		return models.AppliedPromotion{
			ID:       p.ID,
			Name:     p.Name,
			Type:     p.DiscountType,
			Fee:      fee,
			Discount: discount,
		}
	}
	return incumbent
}

// BestDeliveryFeePromotion resolves the lowest-fee applicable delivery
// promotion against the regular delivery fee. Returns NoPromotion when
// nothing beats the regular fee.
func BestDeliveryFeePromotion(ref *RefData, regularFee float64, product models.Product, user models.User, price float64) models.AppliedPromotion {
	best := models.NoPromotion()
	for _, p := range ref.DeliveryFeePromotions {
		if !deliveryPromotionApplicable(p, product, user, price, ref) {
			continue
		}
		best = betterPromotion(p.BasePromotion, best, regularFee, p.DeliveryFee)
	}
	return best
}

// BestShippingFeePromotion resolves the lowest-fee applicable shipping
// promotion for the seller.
func BestShippingFeePromotion(ref *RefData, regularFee float64, product models.Product, seller models.User, price float64) models.AppliedPromotion {
	best := models.NoPromotion()
	for _, p := range ref.ShippingFeePromotions {
		if !sellerPromotionApplicable(p.BasePromotion, p.MinimumSalesValue, product, seller, price, ref) {
			continue
		}
		best = betterPromotion(p.BasePromotion, best, regularFee, p.ShippingFee)
	}
	return best
}

// BestSellingFeePromotion resolves the lowest selling-fee promotion against
// the seller's assigned fee tier. Sellers on tiers with promotions disabled
// short-circuit to no promotion; the storage-only promotion is skipped
// unless the sale is fulfilled from storage. For list quotes the listing
// discount is consulted when present, falling back to the selling discount.
func BestSellingFeePromotion(ref *RefData, product models.Product, seller models.User, price float64, mode SellMode, isSellFromStorage bool) models.AppliedPromotion {
	best := models.NoPromotion()
	if !seller.SellingFee.PromotionsApplicable {
		return best
	}

	regularFee := seller.SellingFee.Value
	for _, p := range ref.SellingFeePromotions {
		if p.Name == SellFromStorageName && !isSellFromStorage {
			continue
		}
		if !sellerPromotionApplicable(p.BasePromotion, p.MinimumSalesValue, product, seller, price, ref) {
			continue
		}

		discount := p.SellingFee
		if mode == ModeList && p.ListingFee != 0 {
			discount = p.ListingFee
		}
		best = betterPromotion(p.BasePromotion, best, regularFee, discount)
	}
	return best
}
