package models

// Product is the pricing-relevant subset of a catalog product.
// Weights are in grams.
type Product struct {
	ID             int      `json:"id"`
	ActualWeight   float64  `json:"actual_weight"`
	VolWeight      float64  `json:"vol_weight"`
	Collections    []string `json:"collections,omitempty"`
	CategoryLevel2 string   `json:"category_level_2,omitempty"`
}

// InCollection reports whether the product belongs to the collection slug.
func (p Product) InCollection(slug string) bool {
	for _, c := range p.Collections {
		if c == slug {
			return true
		}
	}
	return false
}

// ProductAddOn is an optional extra shipped with the product.
type ProductAddOn struct {
	ID           int     `json:"id"`
	ActualWeight float64 `json:"actual_weight"`
	VolumeWeight float64 `json:"volume_weight"`
}

// AddOnSelection is a chosen add-on with quantity and its (local) price.
type AddOnSelection struct {
	AddOn    *ProductAddOn `json:"add_on,omitempty"`
	Quantity int           `json:"quantity"`
	Price    float64       `json:"price"`
}
