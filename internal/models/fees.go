package models

// ProcessingFeeRate is one row of the buy processing-fee config table.
// Zero CountryID, empty PaymentMethod and empty Mode mean "matches any".
// The largest matching fee wins, so specific overrides must be configured
// numerically above their general fallbacks.
type ProcessingFeeRate struct {
	CountryID     int     `json:"country_id,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Mode          string  `json:"mode,omitempty"` // "buy" | "offer" | any
	Fee           float64 `json:"fee"`            // percent
}

// BuyFees are the buyer-facing fee lines, all rounded up in the
// transaction currency.
type BuyFees struct {
	ProcessingBuy          float64 `json:"processing_buy"`
	ProcessingBuyPercent   float64 `json:"processing_buy_percent"`
	DeliveryInsurance      float64 `json:"delivery_insurance"`
	Delivery               float64 `json:"delivery"`
	DeliveryInstant        float64 `json:"delivery_instant"`
	DeliverySurcharge      float64 `json:"delivery_surcharge"`
	DeliveryFeeOnlyRegular float64 `json:"delivery_fee_only_regular"`
	DeliveryFeeRegular     float64 `json:"delivery_fee_regular"`
}

// BuyQuote is the computed breakdown for a buy or offer. Never persisted;
// recomputed fresh on every price or option change.
type BuyQuote struct {
	Price         float64           `json:"price"`
	Fees          BuyFees           `json:"fees"`
	Promotion     *AppliedPromotion `json:"promotion,omitempty"`
	TotalPrice    float64           `json:"total_price"`
	LoyaltyPoints int               `json:"loyalty_points"`
}

// SellFees are the seller-facing fee lines, rounded with the shipping
// currency's payout precision.
type SellFees struct {
	Selling                float64 `json:"selling"`
	ProcessingSell         float64 `json:"processing_sell"`
	Shipping               float64 `json:"shipping"`
	ShippingSurcharge      float64 `json:"shipping_surcharge"`
	ShippingFeeRegular     float64 `json:"shipping_fee_regular"`
	ShippingFeeOnlyRegular float64 `json:"shipping_fee_only_regular"`
}

// SellQuote is the computed breakdown for a sale or listing. TotalPrice is
// the seller payout, rounded down.
type SellQuote struct {
	Price      float64           `json:"price"`
	Fees       SellFees          `json:"fees"`
	Promotion  *AppliedPromotion `json:"promotion,omitempty"`
	TotalPrice float64           `json:"total_price"`
}
