package pricing

import (
	"math"

	"github.com/resellhub/pricing-engine/internal/models"
)

// BuyMode distinguishes an immediate purchase from a posted offer.
type BuyMode string

const (
	ModeBuy   BuyMode = "buy"
	ModeOffer BuyMode = "offer"
)

// DeliverTo is the buyer's fulfilment choice.
type DeliverTo string

const (
	DeliverToAddress DeliverTo = "address"
	DeliverToStorage DeliverTo = "storage"
)

// Promocode is a pre-validated promo code with its value in the transaction
// currency. Validation happens at the input layer, not here.
type Promocode struct {
	Code  string  `json:"code,omitempty"`
	Value float64 `json:"value"`
}

// BuyOptions are the transaction options for a buy/offer quote.
type BuyOptions struct {
	PaymentMethod        string
	DeliverTo            DeliverTo
	DeliveryDeclare      float64
	InstantFeeApplicable bool
	Mode                 BuyMode
}

// ProcessingFeePercent returns the buy processing rate as a fraction. Each
// config row optionally constrains country, payment method and mode; of all
// matching rows the largest fee wins. There is no specificity priority
// beyond magnitude, so a general fallback configured above an intended
// override silently wins. Kept to match the backend's resolution exactly.
func ProcessingFeePercent(ref *RefData, country models.Country, paymentMethod string, mode BuyMode) float64 {
	fee := 0.0
	for _, row := range ref.ProcessingFees {
		if (row.CountryID == country.ID || row.CountryID == 0) &&
			(row.PaymentMethod == paymentMethod || row.PaymentMethod == "") &&
			(row.Mode == string(mode) || row.Mode == "") &&
			row.Fee > fee {
			fee = row.Fee
		}
	}
	return fee / 100
}

// buyerDeliveryCountry is the buyer's own country when set, else the
// session country.
func buyerDeliveryCountry(ref *RefData, user models.User) models.Country {
	if user.Country.ID != 0 {
		return user.Country
	}
	return ref.CurrentCountry
}

// DeliveryInstantFee is the instant-delivery add-on for the buyer's country,
// converted into the transaction currency and rounded up.
func DeliveryInstantFee(ref *RefData, user models.User) float64 {
	country := buyerDeliveryCountry(ref, user)
	deliveryCurrency := ref.CurrencyByID(country.CurrencyID)
	cur := ref.CurrentCurrency

	return ToPrecision((country.DeliveryInstant/deliveryCurrency.Rate)*cur.Rate, cur.Precision, RoundUp)
}

// DeliveryInsuranceFee charges 3% of the declared value above the
// currency's free-coverage threshold, rounded up at the insurance precision.
func DeliveryInsuranceFee(declared float64, c models.Currency) float64 {
	k := ConstantsFor(c.Code)
	if declared == 0 || declared <= k.DeliveryInsuranceMaxFree {
		return 0
	}
	return ToPrecision((declared-k.DeliveryInsuranceMaxFree)*DeliveryProtectionFeeBuying, k.DeliveryInsurancePrecision, RoundUp)
}

// buyFees assembles the buyer fee lines for a price already expressed in the
// transaction currency. Every rounding on this path is Up: a buy total may
// never round in the buyer's favor.
func buyFees(ref *RefData, price float64, product models.Product, user models.User, promocode Promocode, addOn *models.AddOnSelection, opts BuyOptions) (models.BuyFees, *models.AppliedPromotion, float64) {
	country := buyerDeliveryCountry(ref, user)
	deliveryCurrency := ref.CurrencyByID(country.CurrencyID)
	cur := ref.CurrentCurrency

	roundUp := func(x float64) float64 { return ToPrecision(x, cur.Precision, RoundUp) }
	// Cost curves are defined in the country's native currency; divide out
	// its rate and apply the transaction currency's.
	convert := func(x float64) float64 { return (x / deliveryCurrency.Rate) * cur.Rate }

	weight := EffectiveWeight(product, addOn)
	isStorageRequest := opts.DeliverTo == DeliverToStorage

	deliveryInsurance := DeliveryInsuranceFee(opts.DeliveryDeclare, cur)

	deliveryInstant := 0.0
	if opts.InstantFeeApplicable {
		deliveryInstant = roundUp(convert(country.DeliveryInstant))
	}

	deliverySurcharge := roundUp(convert(country.DeliverySurcharge * weight))

	remoteSurcharge := 0.0
	if user.Address != nil && user.Address.IsRemoteArea {
		remoteSurcharge = roundUp(convert(country.DeliverySurchargeRemote))
	}

	deliveryFeeOnlyRegular := roundUp(convert(country.DeliveryBase+country.DeliveryIncrement*weight)) + remoteSurcharge
	deliveryFeeRegular := deliveryFeeOnlyRegular + deliverySurcharge

	promo := BestDeliveryFeePromotion(ref, deliveryFeeRegular, product, user, price)
	minDeliveryFee := math.Min(deliveryFeeRegular, promo.Fee)

	processingPercent := ProcessingFeePercent(ref, country, opts.PaymentMethod, opts.Mode)

	fees := models.BuyFees{
		ProcessingBuy:        roundUp(processingPercent * price),
		ProcessingBuyPercent: processingPercent,
		DeliveryInsurance:    deliveryInsurance,
	}

	if isStorageRequest {
		// Storage deliveries defer the base delivery fee to a later
		// withdrawal; only the instant add-on is charged now.
		fees.Delivery = deliveryInstant
	} else {
		fees.Delivery = roundUp(minDeliveryFee + deliveryInstant)
		fees.DeliverySurcharge = deliverySurcharge
		fees.DeliveryFeeOnlyRegular = roundUp(deliveryFeeOnlyRegular)
		fees.DeliveryFeeRegular = roundUp(deliveryFeeRegular)
	}
	if opts.InstantFeeApplicable {
		fees.DeliveryInstant = deliveryInstant
	}

	addOnPrice := 0.0
	if addOn != nil {
		addOnPrice = addOn.Price
	}

	total := ToPrecision(
		price+fees.Delivery+fees.ProcessingBuy+fees.DeliveryInsurance-promocode.Value+addOnPrice,
		cur.Precision, RoundUp)

	var applied *models.AppliedPromotion
	if promo.Applied() {
		p := promo
		applied = &p
	}
	return fees, applied, total
}

// ComputeBuyFees quotes a purchase at a list price given in base currency
// units. The price the buyer sees is the list conversion (whole units,
// rounded up); loyalty points derive from the base price.
func ComputeBuyFees(ref *RefData, basePrice float64, product models.Product, user models.User, promocode Promocode, addOn *models.AddOnSelection, opts BuyOptions) models.BuyQuote {
	opts.Mode = ModeBuy
	price := ToList(basePrice, ref.CurrentCurrency)

	fees, promo, total := buyFees(ref, price, product, user, promocode, addOn, opts)
	return models.BuyQuote{
		Price:         price,
		Fees:          fees,
		Promotion:     promo,
		TotalPrice:    total,
		LoyaltyPoints: PointsForSale(ref, basePrice, user, promocode.Value),
	}
}

// ComputeOfferFees quotes a posted offer at a price already in the
// transaction currency.
func ComputeOfferFees(ref *RefData, localPrice float64, product models.Product, user models.User, promocode Promocode, opts BuyOptions) models.BuyQuote {
	opts.Mode = ModeOffer

	fees, promo, total := buyFees(ref, localPrice, product, user, promocode, nil, opts)
	return models.BuyQuote{
		Price:         localPrice,
		Fees:          fees,
		Promotion:     promo,
		TotalPrice:    total,
		LoyaltyPoints: PointsForSale(ref, ToBaseCurrency(localPrice, ref.CurrentCurrency), user, promocode.Value),
	}
}

// SuggestedOfferPrice pre-fills an offer input from the current best prices
// on either side. Returns false when there is nothing to suggest. UI
// convenience only; submissions are not validated against it.
func SuggestedOfferPrice(c models.Currency, highestOfferPrice, lowestListPrice float64) (float64, bool) {
	if lowestListPrice == 0 && highestOfferPrice == 0 {
		return 0, false
	}
	if lowestListPrice != 0 && highestOfferPrice == 0 {
		return lowestListPrice, true
	}
	if lowestListPrice == 0 {
		return highestOfferPrice + c.OfferStep*10, true
	}

	diff := lowestListPrice - highestOfferPrice
	switch {
	case diff <= c.OfferStep:
		return lowestListPrice, true
	case diff <= c.OfferStep*10:
		return highestOfferPrice + c.OfferStep, true
	default:
		return highestOfferPrice + c.OfferStep*10, true
	}
}
