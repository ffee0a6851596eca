package domain

import "github.com/shopspring/decimal"

func init() {
	// Persisted amounts are JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the complete persisted state of the tracker.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Categories   []Category    `json:"categories"`
	Currency     string        `json:"currency"`
}

// DefaultSnapshot returns the state of a fresh install.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Transactions: []Transaction{},
		Budgets:      []Budget{},
		Categories:   DefaultCategories(),
		Currency:     DefaultCurrency,
	}
}

// Clone returns a deep copy; the slices of the copy share nothing with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Transactions: make([]Transaction, len(s.Transactions)),
		Budgets:      make([]Budget, len(s.Budgets)),
		Categories:   make([]Category, len(s.Categories)),
		Currency:     s.Currency,
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Budgets, s.Budgets)
	copy(out.Categories, s.Categories)
	return out
}
