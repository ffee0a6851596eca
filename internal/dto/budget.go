package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create (or replace) a budget.
type CreateBudgetRequest struct {
	Category string `json:"category" example:"Food"`
	Amount   Amount `json:"amount" swaggertype:"number" example:"300"`
	Period   string `json:"period,omitempty" example:"monthly"` // monthly when empty
}

// ToInput converts the request to the raw validation input.
func (r CreateBudgetRequest) ToInput() validation.BudgetInput {
	return validation.BudgetInput{
		Category: r.Category,
		Amount:   r.Amount.String(),
		Period:   r.Period,
	}
}

// UpdateBudgetRequest carries a partial budget; nil fields are left unchanged.
type UpdateBudgetRequest struct {
	Category *string `json:"category,omitempty"`
	Amount   *Amount `json:"amount,omitempty" swaggertype:"number"`
	Period   *string `json:"period,omitempty"`
}

// BudgetResponse defines the data returned for a budget, including its progress.
type BudgetResponse struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
	Period     string          `json:"period"`
	Spent      decimal.Decimal `json:"spent" swaggertype:"number"`
	Remaining  decimal.Decimal `json:"remaining" swaggertype:"number"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"number"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToBudgetResponse converts a domain.BudgetProgress to BudgetResponse DTO.
func ToBudgetResponse(p domain.BudgetProgress) BudgetResponse {
	return BudgetResponse{
		ID:         p.Budget.ID,
		Category:   p.Budget.Category,
		Amount:     p.Budget.Amount,
		Period:     string(p.Budget.Period),
		Spent:      p.Spent,
		Remaining:  p.Remaining,
		Percentage: p.Percentage,
		Status:     string(p.Band),
		CreatedAt:  p.Budget.CreatedAt,
	}
}

// ToBudgetResponses converts a slice of progress values.
func ToBudgetResponses(ps []domain.BudgetProgress) []BudgetResponse {
	res := make([]BudgetResponse, len(ps))
	for i, p := range ps {
		res[i] = ToBudgetResponse(p)
	}
	return res
}
