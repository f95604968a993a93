package pricing

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/resellhub/pricing-engine/internal/models"
)

// SymbolPosition controls where the currency marker goes in a formatted
// amount: "$ 120" (front) or "120.00 USD" (back).
type SymbolPosition int

const (
	SymbolFront SymbolPosition = iota
	SymbolBack
)

// FormatCurrency renders an amount for display with locale-aware grouping.
// Decimals are clamped to the currency's max decimals. NaN formats as the
// empty string; display paths never fail. An unparseable locale falls back
// to a plain fixed-point rendering.
func FormatCurrency(x float64, c models.Currency, decimals int, pos SymbolPosition) string {
	if math.IsNaN(x) {
		return ""
	}

	d := decimals
	if d > c.MaxDecimals {
		d = c.MaxDecimals
	}

	formatted := ""
	if tag, err := language.Parse(c.Locale); err == nil {
		p := message.NewPrinter(tag)
		formatted = p.Sprintf("%v", number.Decimal(x,
			number.MinFractionDigits(d),
			number.MaxFractionDigits(d)))
	} else {
		formatted = strconv.FormatFloat(x, 'f', d, 64)
	}

	if pos == SymbolFront {
		return c.Symbol + " " + formatted
	}
	return formatted + " " + c.Code
}

// FormatList renders a base amount as a buyer-facing list price.
func FormatList(base float64, c models.Currency) string {
	return FormatCurrency(ToList(base, c), c, 0, SymbolFront)
}

// FormatOffer renders a base amount as a buyer-facing offer price.
func FormatOffer(base float64, c models.Currency) string {
	return FormatCurrency(ToOffer(base, c), c, 0, SymbolFront)
}
