package utils

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency prefixes the amount with the currency symbol and two decimals.
// Example: 12.5 with EUR returns "€12.50"; unknown codes use "$".
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	return domain.CurrencySymbol(currencyCode) + amount.StringFixed(2)
}

// FormatPercentage renders a fraction as a percentage with one decimal.
// Example: 0.756 returns "75.6%".
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(1) + "%"
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
