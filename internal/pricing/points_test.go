package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointsForSale(t *testing.T) {
	t.Parallel()

	ref := testRefData()
	buyer := testBuyer()

	require.Equal(t, 8, PointsForSale(ref, 150, buyer, 0)) // ceil(0.05 * 150)

	buyer.FirstTimePromocodeEligible = true
	require.Equal(t, 58, PointsForSale(ref, 150, buyer, 0))

	// Promocode value comes off the price before accrual.
	buyer.FirstTimePromocodeEligible = false
	require.Equal(t, 7, PointsForSale(ref, 150, buyer, 20)) // ceil(0.05 * 130)
}

func TestReferralDiscount(t *testing.T) {
	t.Parallel()

	sgd := testSGD()
	require.InDelta(t, 25, ReferralDiscount(Referrer, sgd), 1e-9)
	require.InDelta(t, 20, ReferralDiscount(Referee, sgd), 1e-9)
}

func TestWelcomePromoFor(t *testing.T) {
	t.Parallel()

	promo, ok := WelcomePromoFor("SG")
	require.True(t, ok)
	require.Equal(t, "WELCOMESG", promo.Code)
	require.InDelta(t, 20, promo.Value, 1e-9)
	require.InDelta(t, 150, promo.MinBuy, 1e-9)

	_, ok = WelcomePromoFor("ZZ")
	require.False(t, ok)
}

func TestConstantsForUnknownCodePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { ConstantsFor("XXX") })
}
