package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$12.50", FormatCurrency(decimal.RequireFromString("12.5"), "USD"))
	assert.Equal(t, "€0.00", FormatCurrency(decimal.Zero, "EUR"))
	assert.Equal(t, "₹1000.00", FormatCurrency(decimal.NewFromInt(1000), "INR"))
	assert.Equal(t, "$3.46", FormatCurrency(decimal.RequireFromString("3.456"), "XYZ"))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "75.0%", FormatPercentage(decimal.RequireFromString("0.75")))
	assert.Equal(t, "66.7%", FormatPercentage(decimal.RequireFromString("0.6666")))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
