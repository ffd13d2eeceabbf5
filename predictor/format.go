package predictor

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySymbol = "₹"

// FormatPrice renders v as rupees with thousands separators and two decimals.
func FormatPrice(v float64) string {
	return CurrencySymbol + message.NewPrinter(language.English).Sprintf("%.2f", v)
}
