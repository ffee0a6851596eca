package aggregation

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultMonths is the window used by the dashboard chart.
const DefaultMonths = 6

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// LastMonths returns the first day of each of the trailing n calendar months
// ending with now's month, oldest first.
func LastMonths(now time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		// time.Date normalises negative months into earlier years.
		out[i] = time.Date(now.Year(), now.Month()-time.Month(n-1-i), 1, 0, 0, 0, 0, now.Location())
	}
	return out
}

// GroupByMonth buckets income and expenses into the trailing months calendar
// months, oldest first. Transactions outside the window, including future
// months, are ignored.
func GroupByMonth(txs []domain.Transaction, now time.Time, months int) []domain.MonthlyTotals {
	starts := LastMonths(now, months)
	out := make([]domain.MonthlyTotals, len(starts))
	for i, s := range starts {
		out[i] = domain.MonthlyTotals{
			Label:   s.Format("Jan"),
			Year:    s.Year(),
			Month:   int(s.Month()),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	if len(out) == 0 {
		return out
	}

	current := monthIndex(now)
	for _, t := range txs {
		diff := current - monthIndex(t.Date.In(now.Location()))
		if diff < 0 || diff >= months {
			continue
		}
		i := months - 1 - diff
		switch t.Type {
		case domain.Income:
			out[i].Income = out[i].Income.Add(t.Amount)
		case domain.Expense:
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}
	return out
}
