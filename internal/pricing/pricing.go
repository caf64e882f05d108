// Package pricing computes discounted prices and formats amounts for display.
// Arithmetic is exact; rounding happens only when an amount is formatted.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency catalog prices are quoted in
const BaseCurrency = "USD"

var hundred = decimal.NewFromInt(100)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"TRY": "₺",
	"CHF": "CHF ",
}

// DiscountedPrice returns price × (1 − discountPercentage/100) without rounding
func DiscountedPrice(price, discountPercentage float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discountPercentage).Div(hundred))
	return decimal.NewFromFloat(price).Mul(factor)
}

// Convert applies an exchange rate to amount
func Convert(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(rate))
}

// FormatPrice renders amount in the base currency, e.g. "$12.34"
func FormatPrice(amount decimal.Decimal) string {
	return FormatPriceIn(amount, BaseCurrency)
}

// FormatPriceIn renders amount with two decimals prefixed by the currency symbol.
// Currencies without a known symbol are prefixed with their code.
func FormatPriceIn(amount decimal.Decimal, currency string) string {
	return Symbol(currency) + amount.StringFixed(2)
}

// Symbol returns the display prefix for a currency code
func Symbol(currency string) string {
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = BaseCurrency
	}
	if s, ok := symbols[currency]; ok {
		return s
	}
	return currency + " "
}

// DiscountLabel renders the badge shown next to a discounted price, e.g. "15% OFF".
// It is empty when there is no discount.
func DiscountLabel(discountPercentage float64) string {
	if discountPercentage <= 0 {
		return ""
	}
	return decimal.NewFromFloat(discountPercentage).StringFixed(0) + "% OFF"
}
