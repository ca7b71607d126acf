package common

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencyLabel = "Rupees"

// English grouping gives "1,234".
var amountPrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount with the currency label and thousands grouping.
func FormatRupees(amount int64) string {
	return CurrencyLabel + " " + amountPrinter.Sprintf("%d", amount)
}
