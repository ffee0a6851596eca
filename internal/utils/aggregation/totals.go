// Package aggregation holds the pure summary functions over transactions and
// budgets. Nothing here touches shared state; callers pass in copies.
package aggregation

import (
	"sort"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SignedAmount is +amount for income and -amount for expenses.
func SignedAmount(t domain.Transaction) decimal.Decimal {
	switch t.Type {
	case domain.Income:
		return t.Amount
	case domain.Expense:
		return t.Amount.Neg()
	}
	return decimal.Zero
}

// TotalIncome sums all income transactions.
func TotalIncome(txs []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.IsIncome() {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// TotalExpenses sums all expense transactions.
func TotalExpenses(txs []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.IsExpense() {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Balance is total income minus total expenses.
func Balance(txs []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		sum = sum.Add(SignedAmount(t))
	}
	return sum
}

// Totals computes balance, income and expenses in one pass.
func Totals(txs []domain.Transaction) domain.Totals {
	income, expenses := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case domain.Income:
			income = income.Add(t.Amount)
		case domain.Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return domain.Totals{
		Balance:       income.Sub(expenses),
		TotalIncome:   income,
		TotalExpenses: expenses,
	}
}

// ExpensesByCategory sums expenses per category, largest first. Categories
// with equal totals keep the order they were first seen in.
func ExpensesByCategory(txs []domain.Transaction) []domain.CategoryAmount {
	index := make(map[string]int)
	out := make([]domain.CategoryAmount, 0)
	total := decimal.Zero

	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		total = total.Add(t.Amount)
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, domain.CategoryAmount{Category: t.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Amount.GreaterThan(out[b].Amount)
	})

	for i := range out {
		if total.IsPositive() {
			out[i].Share = out[i].Amount.Div(total).Mul(hundred).Round(2)
		} else {
			out[i].Share = decimal.Zero
		}
	}
	return out
}

// RecentTransactions returns up to n transactions, newest date first. Equal
// dates keep their original relative order.
func RecentTransactions(txs []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	sorted := make([]domain.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date.After(sorted[b].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
