package aggregation

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// Filter returns the transactions matching f, in their original order.
func Filter(txs []domain.Transaction, f domain.TransactionFilter, now time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if Matches(t, f, now) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single transaction passes every criterion of f.
func Matches(t domain.Transaction, f domain.TransactionFilter, now time.Time) bool {
	if f.Type != "" && f.Type != "all" && string(t.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != "all" && t.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(strings.TrimSpace(f.Search))) {
		return false
	}

	date := t.Date.In(now.Location())
	today := StartOfDay(now)
	switch f.DateRange {
	case domain.RangeToday:
		if date.Before(today) || !date.Before(today.AddDate(0, 0, 1)) {
			return false
		}
	case domain.RangeWeek:
		if date.Before(today.AddDate(0, 0, -7)) {
			return false
		}
	case domain.RangeMonth:
		if date.Before(today.AddDate(0, -1, 0)) {
			return false
		}
	}

	if f.From != nil && date.Before(StartOfDay(f.From.In(now.Location()))) {
		return false
	}
	if f.To != nil && !date.Before(StartOfDay(f.To.In(now.Location())).AddDate(0, 0, 1)) {
		return false
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}
