package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Field checks happen in the validation package so clients get a per-field map.
type CreateTransactionRequest struct {
	Description string `json:"description" example:"Groceries"`
	Amount      Amount `json:"amount" swaggertype:"number" example:"42.50"`
	Type        string `json:"type" example:"expense"`
	Category    string `json:"category" example:"Food"`
	Date        string `json:"date" example:"2024-01-10"` // YYYY-MM-DD; today when empty
}

// ToInput converts the request to the raw validation input.
func (r CreateTransactionRequest) ToInput() validation.TransactionInput {
	return validation.TransactionInput{
		Description: r.Description,
		Amount:      r.Amount.String(),
		Type:        r.Type,
		Category:    r.Category,
		Date:        r.Date,
	}
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	DateRange string `form:"dateRange" binding:"omitempty,oneof=all today week month"`
	From      string `form:"from"`
	To        string `form:"to"`
	MinAmount string `form:"minAmount"`
	MaxAmount string `form:"maxAmount"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ToFilter converts the query into a domain filter. Dates are read in loc.
// Malformed values are reported as field errors.
func (p ListTransactionsParams) ToFilter(loc *time.Location) (domain.TransactionFilter, validation.Errors) {
	f := domain.TransactionFilter{
		Type:      p.Type,
		Category:  p.Category,
		Search:    p.Search,
		DateRange: domain.DateRange(p.DateRange),
	}
	if loc == nil {
		loc = time.Local
	}
	errs := validation.Errors{}
	parseDay := func(field, v string) *time.Time {
		if strings.TrimSpace(v) == "" {
			return nil
		}
		t, err := time.ParseInLocation(mapping.DateLayout, strings.TrimSpace(v), loc)
		if err != nil {
			errs[field] = field + " must be a date in YYYY-MM-DD format"
			return nil
		}
		return &t
	}
	parseAmount := func(field, v string) *decimal.Decimal {
		if strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			errs[field] = field + " must be a number"
			return nil
		}
		return &d
	}
	f.From = parseDay("from", p.From)
	f.To = parseDay("to", p.To)
	f.MinAmount = parseAmount("minAmount", p.MinAmount)
	f.MaxAmount = parseAmount("maxAmount", p.MaxAmount)
	return f, errs
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        mapping.FormatDate(t.Date),
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToListTransactionsResponse converts a page into its DTO.
func ToListTransactionsResponse(page domain.TransactionPage) ListTransactionsResponse {
	res := ListTransactionsResponse{Transactions: ToTransactionResponses(page.Transactions)}
	if page.NextToken != "" {
		token := page.NextToken
		res.NextToken = &token
	}
	return res
}
