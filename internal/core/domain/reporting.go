package domain

import (
	"github.com/shopspring/decimal"
)

// Totals holds the headline figures over a set of transactions.
type Totals struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// CategoryAmount is the expense total for one category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"` // percent of all expenses
}

// MonthlyTotals is the income and expense sum of one calendar month.
type MonthlyTotals struct {
	Label   string          `json:"label"` // short month name, e.g. "Jan"
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summary is the dashboard view over the current snapshot.
type Summary struct {
	Totals
	Currency           Currency         `json:"currency"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
	Monthly            []MonthlyTotals  `json:"monthly"`
	Budgets            []BudgetProgress `json:"budgets"`
}
