package domain

import "time"

// TransactionPage is one page of a filtered, newest-first transaction list.
type TransactionPage struct {
	Transactions []Transaction
	NextToken    string // empty on the last page
}

// StoreStatus reports the outcome of the most recent persistence attempt.
type StoreStatus struct {
	LastError   error
	LastSavedAt time.Time // zero until the first successful write
}

// Healthy reports whether the last write succeeded.
func (s StoreStatus) Healthy() bool {
	return s.LastError == nil
}

// ChangeOperation names a state mutation.
type ChangeOperation string

const (
	OpAddTransaction    ChangeOperation = "transaction.added"
	OpDeleteTransaction ChangeOperation = "transaction.deleted"
	OpAddBudget         ChangeOperation = "budget.added"
	OpUpdateBudget      ChangeOperation = "budget.updated"
	OpDeleteBudget      ChangeOperation = "budget.deleted"
	OpAddCategory       ChangeOperation = "category.added"
	OpSetCurrency       ChangeOperation = "currency.set"
	OpClearAll          ChangeOperation = "data.cleared"
	OpInitialize        ChangeOperation = "data.initialized"
)

// ChangeEvent describes a mutation that was persisted successfully.
type ChangeEvent struct {
	Operation        ChangeOperation `json:"operation"`
	EntityID         string          `json:"entityId,omitempty"`
	TransactionCount int             `json:"transactionCount"`
	BudgetCount      int             `json:"budgetCount"`
	Currency         string          `json:"currency"`
	OccurredAt       time.Time       `json:"occurredAt"`
}
