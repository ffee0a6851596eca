package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// SetCurrencyRequest defines the data needed to change the display currency.
type SetCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" example:"EUR"`
}

// CurrencyResponse defines the data returned for the display currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{CurrencyCode: c.Code, Symbol: c.Symbol}
}
