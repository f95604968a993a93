package pricing

import (
	"github.com/resellhub/pricing-engine/internal/models"
)

// Fixture reference data: SGD as the session currency pegged 1:1 to base,
// so expected fee lines can be read straight off the cost curves.

func testSGD() models.Currency {
	return models.Currency{
		ID:              1,
		Code:            "SGD",
		Symbol:          "S$",
		Locale:          "en-SG",
		Rate:            1,
		Precision:       0.1,
		PayoutPrecision: 0.1,
		MaxDecimals:     1,
		OfferStep:       5,
		ListStep:        5,
		MinListPrice:    30,

		ReferrerPromocodeValue: 25,
	}
}

func testUSD() models.Currency {
	return models.Currency{
		ID:              2,
		Code:            "USD",
		Symbol:          "$",
		Locale:          "en-US",
		Rate:            0.74,
		Precision:       0.01,
		PayoutPrecision: 0.1,
		MaxDecimals:     2,
		OfferStep:       1,
		ListStep:        1,
		MinListPrice:    30,
	}
}

func testSG() models.Country {
	return models.Country{
		ID:                      1,
		Shortcode:               "SG",
		CurrencyID:              1,
		DeliveryBase:            5,
		DeliveryIncrement:       0.002,
		DeliverySurchargeRemote: 20,
		DeliveryInstant:         10,
		ShippingBase:            4,
		ShippingIncrement:       0.001,
	}
}

func testRefData() *RefData {
	sgd := testSGD()
	sg := testSG()
	return &RefData{
		Currencies:      []models.Currency{sgd, testUSD()},
		Countries:       []models.Country{sg},
		CurrentCurrency: sgd,
		CurrentCountry:  sg,
	}
}

func testBuyer() models.User {
	return models.User{
		ID:      7,
		Country: testSG(),
	}
}

func testSeller() models.User {
	return models.User{
		ID:              8,
		ShippingCountry: testSG(),
		SellingFee: models.SellingFee{
			Value:                 9,
			PromotionsApplicable:  true,
			ShippingFeeMultiplier: 1,
		},
	}
}

func testProduct() models.Product {
	return models.Product{ID: 3, ActualWeight: 1000}
}
