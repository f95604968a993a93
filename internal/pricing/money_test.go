package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resellhub/pricing-engine/internal/models"
)

func TestToPrecisionMultipleOfUnit(t *testing.T) {
	t.Parallel()

	units := []float64{0.01, 0.1, 1, 10, 100, 1000}
	inputs := []float64{0, 0.004, 0.05, 1.337, 99.99, 123.456, 4999.5, 123456.789}
	modes := []RoundMode{RoundNearest, RoundUp, RoundDown}

	for _, unit := range units {
		for _, x := range inputs {
			for _, mode := range modes {
				got := ToPrecision(x, unit, mode)
				steps := got / unit
				require.InDelta(t, math.Round(steps), steps, 1e-6,
					"ToPrecision(%v, %v, %v) = %v is not a multiple of the unit", x, unit, mode, got)
			}
		}
	}
}

func TestToPrecisionDirection(t *testing.T) {
	t.Parallel()

	units := []float64{0.01, 0.1, 1, 10, 100, 1000}
	inputs := []float64{0.004, 1.337, 99.99, 123.456, 4999.5}

	for _, unit := range units {
		for _, x := range inputs {
			up := ToPrecision(x, unit, RoundUp)
			down := ToPrecision(x, unit, RoundDown)
			require.GreaterOrEqual(t, up, x-1e-9, "round up went below input")
			require.LessOrEqual(t, down, x+1e-9, "round down went above input")
			require.GreaterOrEqual(t, up, down)
		}
	}
}

func TestToPrecisionEdgeCases(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsNaN(ToPrecision(math.NaN(), 1, RoundUp)))

	// An unrecognized unit leaves the normalized input unchanged.
	require.InDelta(t, 1.2346, ToPrecision(1.23456789, 0.5, RoundUp), 1e-9)

	require.InDelta(t, 0, ToPrecision(0, 1, RoundUp), 1e-9)
	require.InDelta(t, 7, ToPrecision(6.01, 1, RoundUp), 1e-9)
	require.InDelta(t, 6, ToPrecision(6.99, 1, RoundDown), 1e-9)
	require.InDelta(t, 1000, ToPrecision(501, 1000, RoundNearest), 1e-9)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 1.2346, Normalize4(1.23456789), 1e-12)
	require.InDelta(t, 1.23, Normalize(1.23456789, 2), 1e-12)
	// Strips accumulated float noise.
	require.InDelta(t, 0.3, Normalize4(0.1+0.2), 1e-12)
}

func TestLocalBaseRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []float64{1, 42.5, 123.4567, 999.99, 15000}
	for _, c := range []models.Currency{testSGD(), testUSD()} {
		for _, x := range inputs {
			local := ToLocalCurrency(x, c)
			back := ToBaseCurrency(local, c)
			// Round trip stays within one precision unit of c,
			// expressed in base units.
			require.InDelta(t, x, back, c.Precision/c.Rate+1e-9,
				"%s round trip drifted: %v -> %v -> %v", c.Code, x, local, back)
		}
	}
}

func TestToLocalCurrency(t *testing.T) {
	t.Parallel()

	sgd := testSGD()
	require.InDelta(t, 123.5, ToLocalCurrency(123.46, sgd), 1e-9)

	usd := testUSD()
	require.InDelta(t, 91.36, ToLocalCurrency(123.4567, usd), 1e-9)

	nan := ToLocalCurrency(math.NaN(), sgd)
	require.True(t, math.IsNaN(nan))
}

func TestToListAndToOffer(t *testing.T) {
	t.Parallel()

	sgd := testSGD()
	require.InDelta(t, 100, ToList(99.2, sgd), 1e-9)
	require.InDelta(t, 99, ToOffer(99.2, sgd), 1e-9)

	// A list price never rounds below an offer price for the same amount.
	for _, x := range []float64{0.3, 17.77, 149.5, 4999.01} {
		require.GreaterOrEqual(t, ToList(x, sgd), ToOffer(x, sgd))
	}
}
