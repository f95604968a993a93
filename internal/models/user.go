package models

// SellingFee is the seller's assigned fee tier.
type SellingFee struct {
	Level                 int     `json:"level"`
	Name                  string  `json:"name"`
	Value                 float64 `json:"value"` // percent of sale price
	PromotionsApplicable  bool    `json:"promotions_applicable"`
	ShippingFeeMultiplier float64 `json:"shipping_fee_multiplier"`
	PowerFeatures         bool    `json:"power_features"`
}

type Address struct {
	IsRemoteArea bool `json:"is_remote_area"`
}

// User is the pricing-relevant subset of an account. Country (buyer side)
// and ShippingCountry (seller side) fall back to the session's current
// country when their ID is zero.
type User struct {
	ID                         int        `json:"id"`
	Country                    Country    `json:"country"`
	ShippingCountry            Country    `json:"shipping_country"`
	Groups                     []string   `json:"groups"`
	SellingFee                 SellingFee `json:"selling_fee"`
	Points                     int        `json:"points"`
	Address                    *Address   `json:"address,omitempty"`
	FirstTimePromocodeEligible bool       `json:"first_time_promocode_eligible"`
}

// InGroup reports membership in a promotion user group.
func (u User) InGroup(group string) bool {
	for _, g := range u.Groups {
		if g == group {
			return true
		}
	}
	return false
}
