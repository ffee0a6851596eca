package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a preset window relative to the current day.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"  // last 7 days
	RangeMonth DateRange = "month" // since the same day last month
)

// TransactionFilter narrows a transaction list. Zero values match everything;
// "all" is accepted for Type and Category.
type TransactionFilter struct {
	Type      string
	Category  string
	Search    string
	DateRange DateRange
	From      *time.Time
	To        *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}
