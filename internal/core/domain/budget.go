package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence window a budget limit applies to.
type BudgetPeriod string

const (
	Weekly  BudgetPeriod = "weekly"
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

// DefaultBudgetPeriod is used when a budget is created without a period.
const DefaultBudgetPeriod = Monthly

// IsValid reports whether p is one of the known periods.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Budget is a spending limit for one category over a recurring period.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	Spent     decimal.Decimal `json:"spent"` // derived from transactions, never authoritative
	CreatedAt time.Time       `json:"createdAt"`
}

// BudgetBand classifies how close spending is to the limit.
type BudgetBand string

const (
	BandExceeded   BudgetBand = "exceeded"
	BandNearLimit  BudgetBand = "near_limit"
	BandCaution    BudgetBand = "caution"
	BandOnTrack    BudgetBand = "on_track"
	BandWellWithin BudgetBand = "well_within"
)

// BudgetProgress is a budget together with its current standing.
type BudgetProgress struct {
	Budget     Budget          `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`  // may be negative
	Percentage decimal.Decimal `json:"percentage"` // clamped to [0, 100]
	Band       BudgetBand      `json:"band"`
}

// IsExceeded reports whether spending reached the limit.
func (p BudgetProgress) IsExceeded() bool {
	return p.Band == BandExceeded
}

// IsNearLimit reports whether spending is at 90% or more but below the limit.
func (p BudgetProgress) IsNearLimit() bool {
	return p.Band == BandNearLimit
}
