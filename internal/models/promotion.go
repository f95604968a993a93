package models

import "math"

type DiscountType string

const (
	DiscountPercentage     DiscountType = "percentage"
	DiscountFixedReduction DiscountType = "fixed-reduction"
	DiscountFixed          DiscountType = "fixed"
)

// BasePromotion holds the eligibility fields shared by all promotion kinds.
// A zero value on any constraint field means "no constraint".
type BasePromotion struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	DiscountType      DiscountType `json:"discount_type"`
	UserGroup         string       `json:"user_group,omitempty"`
	CountryID         int          `json:"country_id,omitempty"`
	ProductCollection string       `json:"product_collection,omitempty"`
}

// DeliveryFeePromotion discounts the buyer's delivery fee. Eligibility is
// checked against the buyer's country.
type DeliveryFeePromotion struct {
	BasePromotion
	DeliveryFee          float64 `json:"delivery_fee"`
	MinimumPurchaseValue float64 `json:"minimum_purchase_value,omitempty"`
}

// ShippingFeePromotion discounts the seller's shipping fee. Eligibility is
// checked against the seller's shipping country.
type ShippingFeePromotion struct {
	BasePromotion
	ShippingFee       float64 `json:"shipping_fee"`
	MinimumSalesValue float64 `json:"minimum_sales_value,omitempty"`
}

// SellingFeePromotion discounts the seller's selling-fee percentage.
// ListingFee, when non-zero, is the discount consulted for list quotes;
// sell quotes always consult SellingFee.
type SellingFeePromotion struct {
	BasePromotion
	SellingFee        float64 `json:"selling_fee"`
	ListingFee        float64 `json:"listing_fee,omitempty"`
	MinimumSalesValue float64 `json:"minimum_sales_value,omitempty"`
}

// AppliedPromotion is the resolver's pick: the single promotion yielding the
// lowest fee, if any beat the regular fee.
type AppliedPromotion struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Type     DiscountType `json:"type"`
	Fee      float64      `json:"fee"`
	Discount float64      `json:"discount"`
}

// NoPromotion is the fold's identity: its +Inf fee loses to any real fee.
func NoPromotion() AppliedPromotion {
	return AppliedPromotion{Fee: math.Inf(1), Type: DiscountPercentage}
}

// Applied reports whether the resolver attributed a real promotion.
func (p AppliedPromotion) Applied() bool {
	return p.ID != 0
}
