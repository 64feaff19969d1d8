package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatPrice renders an amount of đồng the way the storefront shows it,
// e.g. 250000 -> "250.000₫".
func FormatPrice(amount int64) string {
	return printer.Sprintf("%d₫", amount)
}

// MarkdownLabel renders how far price is below original as a rounded
// percentage, e.g. "-26%". It is empty when there is no markdown.
func MarkdownLabel(price, original int64) string {
	if original <= 0 || price >= original {
		return ""
	}
	pct := decimal.NewFromInt(original - price).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(original)).
		Round(0)
	return "-" + pct.String() + "%"
}
