package aggregation

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	nearLimitPct = decimal.NewFromInt(90)
	cautionPct   = decimal.NewFromInt(75)
	onTrackPct   = decimal.NewFromInt(50)
)

// StartOfDay is midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek is Sunday 00:00 of the week containing now.
func StartOfWeek(now time.Time) time.Time {
	day := StartOfDay(now)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// InPeriod reports whether date falls in the current period as of now.
// Unknown periods match every date.
func InPeriod(date time.Time, period domain.BudgetPeriod, now time.Time) bool {
	date = date.In(now.Location())
	switch period {
	case domain.Weekly:
		return !date.Before(StartOfWeek(now))
	case domain.Monthly:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case domain.Yearly:
		return date.Year() == now.Year()
	}
	return true
}

// BudgetSpent sums expenses in the budget's category within its current period.
func BudgetSpent(b domain.Budget, txs []domain.Transaction, now time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range txs {
		if !t.IsExpense() || t.Category != b.Category {
			continue
		}
		if !InPeriod(t.Date, b.Period, now) {
			continue
		}
		spent = spent.Add(t.Amount)
	}
	return spent
}

// Percentage is spent/limit*100 rounded to two places and clamped to [0, 100];
// zero when limit is not positive.
func Percentage(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Div(limit).Mul(hundred).Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// Band classifies a percentage into the colour bands shown next to a budget.
func Band(pct decimal.Decimal) domain.BudgetBand {
	switch {
	case pct.GreaterThanOrEqual(hundred):
		return domain.BandExceeded
	case pct.GreaterThanOrEqual(nearLimitPct):
		return domain.BandNearLimit
	case pct.GreaterThanOrEqual(cautionPct):
		return domain.BandCaution
	case pct.GreaterThanOrEqual(onTrackPct):
		return domain.BandOnTrack
	}
	return domain.BandWellWithin
}

// Progress computes the standing of one budget as of now.
func Progress(b domain.Budget, txs []domain.Transaction, now time.Time) domain.BudgetProgress {
	spent := BudgetSpent(b, txs, now)
	pct := Percentage(spent, b.Amount)
	b.Spent = spent
	return domain.BudgetProgress{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: pct.Round(2),
		Band:       Band(pct),
	}
}

// ProgressAll computes Progress for every budget, keeping the budgets' order.
func ProgressAll(budgets []domain.Budget, txs []domain.Transaction, now time.Time) []domain.BudgetProgress {
	out := make([]domain.BudgetProgress, len(budgets))
	for i, b := range budgets {
		out[i] = Progress(b, txs, now)
	}
	return out
}

// RefreshSpent returns a copy of budgets with Spent recomputed.
func RefreshSpent(budgets []domain.Budget, txs []domain.Transaction, now time.Time) []domain.Budget {
	out := make([]domain.Budget, len(budgets))
	for i, b := range budgets {
		b.Spent = BudgetSpent(b, txs, now)
		out[i] = b
	}
	return out
}
