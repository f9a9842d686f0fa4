package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rupeePrinter groups digits the Indian way (lakh/crore): 10,00,000.
var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

// IsFinite reports whether the number is neither Inf nor NaN
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Money converts a computed amount into a decimal rounded to paise.
// Only presentation code should call it; calculations stay in float64.
func Money(value float64) decimal.Decimal {
	if !IsFinite(value) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value).Round(2)
}

// FormatRupees renders a whole-rupee amount, e.g. 1000000 -> "₹10,00,000".
func FormatRupees(value float64) string {
	if !IsFinite(value) {
		return ""
	}
	rounded := int64(math.Round(value))
	if rounded < 0 {
		return "-₹" + rupeePrinter.Sprintf("%d", -rounded)
	}
	return "₹" + rupeePrinter.Sprintf("%d", rounded)
}
