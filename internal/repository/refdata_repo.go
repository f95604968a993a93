package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/resellhub/pricing-engine/internal/models"
	"github.com/resellhub/pricing-engine/internal/pricing"
)

// RefDataRepo loads the pricing reference data (currencies, countries,
// promotions, processing-fee config) in one shot at session start. The
// engine never touches the database after that.
type RefDataRepo struct {
	db *sql.DB
}

func NewRefDataRepo(db *sql.DB) *RefDataRepo {
	return &RefDataRepo{db: db}
}

func (r *RefDataRepo) LoadRefData(ctx context.Context) (*pricing.RefData, error) {
	currencies, err := r.loadCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}
	countries, err := r.loadCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	delivery, err := r.loadDeliveryFeePromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load delivery fee promotions: %w", err)
	}
	shipping, err := r.loadShippingFeePromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shipping fee promotions: %w", err)
	}
	selling, err := r.loadSellingFeePromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load selling fee promotions: %w", err)
	}
	processing, err := r.loadProcessingFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load buy processing fees: %w", err)
	}

	return &pricing.RefData{
		Currencies:            currencies,
		Countries:             countries,
		DeliveryFeePromotions: delivery,
		ShippingFeePromotions: shipping,
		SellingFeePromotions:  selling,
		ProcessingFees:        processing,
	}, nil
}

func (r *RefDataRepo) loadCurrencies(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT id, name, code, symbol, locale, rate,
		       min_offer_price, min_list_price, offer_step, list_step,
		       max_decimals, precision, payout_precision, referrer_promocode_value
		FROM currencies
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []models.Currency
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Code, &c.Symbol, &c.Locale, &c.Rate,
			&c.MinOfferPrice, &c.MinListPrice, &c.OfferStep, &c.ListStep,
			&c.MaxDecimals, &c.Precision, &c.PayoutPrecision, &c.ReferrerPromocodeValue,
		); err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, rows.Err()
}

func (r *RefDataRepo) loadCountries(ctx context.Context) ([]models.Country, error) {
	query := `
		SELECT id, shortcode, currency_id,
		       delivery_base, delivery_increment, delivery_surcharge,
		       delivery_surcharge_remote, delivery_instant,
		       shipping_base, shipping_increment, shipping_surcharge
		FROM countries
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(
			&c.ID, &c.Shortcode, &c.CurrencyID,
			&c.DeliveryBase, &c.DeliveryIncrement, &c.DeliverySurcharge,
			&c.DeliverySurchargeRemote, &c.DeliveryInstant,
			&c.ShippingBase, &c.ShippingIncrement, &c.ShippingSurcharge,
		); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// scanBasePromotion maps the nullable eligibility columns shared by all
// promotion tables. NULL means "no constraint" and scans to the zero value.
func scanBasePromotion(id int, name, discountType string, userGroup sql.NullString, countryID sql.NullInt64, collection sql.NullString) models.BasePromotion {
	return models.BasePromotion{
		ID:                id,
		Name:              name,
		DiscountType:      models.DiscountType(discountType),
		UserGroup:         userGroup.String,
		CountryID:         int(countryID.Int64),
		ProductCollection: collection.String,
	}
}

func (r *RefDataRepo) loadDeliveryFeePromotions(ctx context.Context) ([]models.DeliveryFeePromotion, error) {
	query := `
		SELECT id, name, discount_type, delivery_fee,
		       user_group, country_id, product_collection, minimum_purchase_value
		FROM delivery_fee_promotions
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []models.DeliveryFeePromotion
	for rows.Next() {
		var (
			id                    int
			name, discountType    string
			deliveryFee           float64
			userGroup, collection sql.NullString
			countryID             sql.NullInt64
			minPurchase           sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &discountType, &deliveryFee, &userGroup, &countryID, &collection, &minPurchase); err != nil {
			return nil, err
		}
		promotions = append(promotions, models.DeliveryFeePromotion{
			BasePromotion:        scanBasePromotion(id, name, discountType, userGroup, countryID, collection),
			DeliveryFee:          deliveryFee,
			MinimumPurchaseValue: minPurchase.Float64,
		})
	}
	return promotions, rows.Err()
}

func (r *RefDataRepo) loadShippingFeePromotions(ctx context.Context) ([]models.ShippingFeePromotion, error) {
	query := `
		SELECT id, name, discount_type, shipping_fee,
		       user_group, country_id, product_collection, minimum_sales_value
		FROM shipping_fee_promotions
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []models.ShippingFeePromotion
	for rows.Next() {
		var (
			id                    int
			name, discountType    string
			shippingFee           float64
			userGroup, collection sql.NullString
			countryID             sql.NullInt64
			minSales              sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &discountType, &shippingFee, &userGroup, &countryID, &collection, &minSales); err != nil {
			return nil, err
		}
		promotions = append(promotions, models.ShippingFeePromotion{
			BasePromotion:     scanBasePromotion(id, name, discountType, userGroup, countryID, collection),
			ShippingFee:       shippingFee,
			MinimumSalesValue: minSales.Float64,
		})
	}
	return promotions, rows.Err()
}

func (r *RefDataRepo) loadSellingFeePromotions(ctx context.Context) ([]models.SellingFeePromotion, error) {
	query := `
		SELECT id, name, discount_type, selling_fee, listing_fee,
		       user_group, country_id, product_collection, minimum_sales_value
		FROM selling_fee_promotions
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []models.SellingFeePromotion
	for rows.Next() {
		var (
			id                    int
			name, discountType    string
			sellingFee            float64
			listingFee            sql.NullFloat64
			userGroup, collection sql.NullString
			countryID             sql.NullInt64
			minSales              sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &discountType, &sellingFee, &listingFee, &userGroup, &countryID, &collection, &minSales); err != nil {
			return nil, err
		}
		promotions = append(promotions, models.SellingFeePromotion{
			BasePromotion:     scanBasePromotion(id, name, discountType, userGroup, countryID, collection),
			SellingFee:        sellingFee,
			ListingFee:        listingFee.Float64,
			MinimumSalesValue: minSales.Float64,
		})
	}
	return promotions, rows.Err()
}

func (r *RefDataRepo) loadProcessingFees(ctx context.Context) ([]models.ProcessingFeeRate, error) {
	query := `
		SELECT country_id, payment_method, mode, fee
		FROM buy_processing_fees
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []models.ProcessingFeeRate
	for rows.Next() {
		var (
			countryID           sql.NullInt64
			paymentMethod, mode sql.NullString
			fee                 float64
		)
		if err := rows.Scan(&countryID, &paymentMethod, &mode, &fee); err != nil {
			return nil, err
		}
		rates = append(rates, models.ProcessingFeeRate{
			CountryID:     int(countryID.Int64),
			PaymentMethod: paymentMethod.String,
			Mode:          mode.String,
			Fee:           fee,
		})
	}
	return rates, rows.Err()
}
