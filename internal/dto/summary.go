package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// SummaryParams defines the query parameters of the dashboard summary.
type SummaryParams struct {
	Months int `form:"months" binding:"omitempty,min=1,max=120"`
	Recent int `form:"recent" binding:"omitempty,min=1,max=100"`
}

// CategoryAmountResponse is one row of the expenses-by-category breakdown.
type CategoryAmountResponse struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Share     decimal.Decimal `json:"share" swaggertype:"number"`
	Formatted string          `json:"formatted"`
}

// MonthlyTotalsResponse is one month of the income/expense chart.
type MonthlyTotalsResponse struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income" swaggertype:"number"`
	Expense decimal.Decimal `json:"expense" swaggertype:"number"`
}

// SummaryResponse is the dashboard payload.
type SummaryResponse struct {
	Currency           CurrencyResponse         `json:"currency"`
	Balance            decimal.Decimal          `json:"balance" swaggertype:"number"`
	TotalIncome        decimal.Decimal          `json:"totalIncome" swaggertype:"number"`
	TotalExpenses      decimal.Decimal          `json:"totalExpenses" swaggertype:"number"`
	FormattedBalance   string                   `json:"formattedBalance"`
	ExpensesByCategory []CategoryAmountResponse `json:"expensesByCategory"`
	RecentTransactions []TransactionResponse    `json:"recentTransactions"`
	Monthly            []MonthlyTotalsResponse  `json:"monthly"`
	Budgets            []BudgetResponse         `json:"budgets"`
}

// ToCategoryAmountResponses converts the breakdown, formatting amounts in currencyCode.
func ToCategoryAmountResponses(rows []domain.CategoryAmount, currencyCode string) []CategoryAmountResponse {
	res := make([]CategoryAmountResponse, len(rows))
	for i, r := range rows {
		res[i] = CategoryAmountResponse{
			Category:  r.Category,
			Amount:    r.Amount,
			Share:     r.Share,
			Formatted: utils.FormatCurrency(r.Amount, currencyCode),
		}
	}
	return res
}

// ToMonthlyTotalsResponses converts the monthly grouping.
func ToMonthlyTotalsResponses(months []domain.MonthlyTotals) []MonthlyTotalsResponse {
	res := make([]MonthlyTotalsResponse, len(months))
	for i, m := range months {
		res[i] = MonthlyTotalsResponse{
			Label:   m.Label,
			Year:    m.Year,
			Month:   m.Month,
			Income:  m.Income,
			Expense: m.Expense,
		}
	}
	return res
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Currency:           ToCurrencyResponse(s.Currency),
		Balance:            s.Balance,
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		FormattedBalance:   utils.FormatCurrency(s.Balance, s.Currency.Code),
		ExpensesByCategory: ToCategoryAmountResponses(s.ExpensesByCategory, s.Currency.Code),
		RecentTransactions: ToTransactionResponses(s.RecentTransactions),
		Monthly:            ToMonthlyTotalsResponses(s.Monthly),
		Budgets:            ToBudgetResponses(s.Budgets),
	}
}

// ValidationResponse is the advisory result of the validate endpoints.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// StatusResponse describes the store health.
type StatusResponse struct {
	Status      string  `json:"status"`
	LastError   *string `json:"lastError,omitempty"`
	LastSavedAt *string `json:"lastSavedAt,omitempty"`
}
