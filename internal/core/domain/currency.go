package domain

// DefaultCurrency is the currency of a fresh snapshot.
const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// Currency is the display currency of the snapshot. No conversion is ever applied.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// CurrencySymbol returns the display symbol for code, falling back to "$".
func CurrencySymbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return "$"
}

// NewCurrency builds a Currency with its display symbol.
func NewCurrency(code string) Currency {
	return Currency{Code: code, Symbol: CurrencySymbol(code)}
}
