package models

// Country carries the delivery and shipping cost curves for one market.
// The curve is linear in weight: fee = base + increment*weight, plus the
// surcharge terms. All curve fields are in the country's native currency.
type Country struct {
	ID                      int     `json:"id"`
	Shortcode               string  `json:"shortcode"`
	CurrencyID              int     `json:"currency_id"`
	DeliveryBase            float64 `json:"delivery_base"`
	DeliveryIncrement       float64 `json:"delivery_increment"`
	DeliverySurcharge       float64 `json:"delivery_surcharge"`
	DeliverySurchargeRemote float64 `json:"delivery_surcharge_remote"`
	DeliveryInstant         float64 `json:"delivery_instant"`
	ShippingBase            float64 `json:"shipping_base"`
	ShippingIncrement       float64 `json:"shipping_increment"`
	ShippingSurcharge       float64 `json:"shipping_surcharge"`
}
