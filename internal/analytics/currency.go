package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD renders an amount as US dollars with grouping and two decimals,
// for example "$1,234.50" or "-$1,500.00".
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprintf("%.2f", rounded.Abs().InexactFloat64())
}
