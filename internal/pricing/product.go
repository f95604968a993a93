package pricing

import (
	"math"

	"github.com/resellhub/pricing-engine/internal/models"
)

// EffectiveWeight is the chargeable weight in grams: the larger of
// volumetric and actual weight (add-ons included), lifted to the courier
// bracket above it. Brackets are 500 g steps below 5000 g and 1000 g steps
// from there, matching real courier pricing tiers.
func EffectiveWeight(product models.Product, sel *models.AddOnSelection) float64 {
	var addActual, addVol float64
	if sel != nil && sel.AddOn != nil {
		addActual = sel.AddOn.ActualWeight * float64(sel.Quantity)
		addVol = sel.AddOn.VolumeWeight * float64(sel.Quantity)
	}

	weight := math.Max(product.VolWeight+addVol, product.ActualWeight+addActual)
	if weight < 5000 {
		return math.Ceil(weight/500) * 500
	}
	// Heavy parcels always move to the next 1000 g bracket, exact
	// multiples included.
	return math.Floor(weight/1000)*1000 + 1000
}
