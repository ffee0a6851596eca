package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions returns one newest-first page of the filtered transactions.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken string) (domain.TransactionPage, error)

	// FilterTransactions returns every matching transaction, newest first.
	FilterTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// RecentTransactions returns at most n transactions by date, newest first.
	RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// AddTransaction validates, records and persists a transaction.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction; unknown ids are a no-op.
	DeleteTransaction(ctx context.Context, id string) error
}

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	// ListBudgets returns every budget with freshly computed progress.
	ListBudgets(ctx context.Context) ([]domain.BudgetProgress, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// AddBudget creates a budget, replacing any budget with the same category.
	AddBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.BudgetProgress, error)

	// UpdateBudget merges the non-nil fields of req. It returns nil, nil for unknown ids.
	UpdateBudget(ctx context.Context, id string, req dto.UpdateBudgetRequest) (*domain.BudgetProgress, error)

	// DeleteBudget removes a budget; unknown ids are a no-op.
	DeleteBudget(ctx context.Context, id string) error
}

// CategorySvc defines operations for categories
type CategorySvc interface {
	// ListCategories returns the categories in insertion order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// AddCategory adds a category unless one with the same name exists, in
	// which case the existing one is returned with created false.
	AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (category *domain.Category, created bool, err error)
}

// SettingsSvc defines operations on store-wide settings and lifecycle
type SettingsSvc interface {
	// GetCurrency returns the display currency.
	GetCurrency(ctx context.Context) (domain.Currency, error)

	// SetCurrency replaces the display currency. Amounts are not converted.
	SetCurrency(ctx context.Context, code string) (domain.Currency, error)

	// ClearAllData resets to the default snapshot. Irreversible.
	ClearAllData(ctx context.Context) error

	// Snapshot returns a deep copy of the current state.
	Snapshot(ctx context.Context) (domain.Snapshot, error)

	// Status reports the outcome of the last persistence attempt.
	Status() domain.StoreStatus
}

// SummarySvc defines the aggregated read views
type SummarySvc interface {
	// Summary returns the dashboard view.
	Summary(ctx context.Context, months, recent int) (*domain.Summary, error)

	// ExpensesByCategory returns expense totals per category, largest first.
	ExpensesByCategory(ctx context.Context) ([]domain.CategoryAmount, error)

	// MonthlyTotals returns income/expense for the trailing months, oldest first.
	MonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotals, error)
}

// FinanceSvcFacade combines all finance store interfaces
type FinanceSvcFacade interface {
	// Load reads the persisted snapshot, initialising storage when empty.
	Load(ctx context.Context) error

	TransactionReaderSvc
	TransactionWriterSvc
	BudgetReaderSvc
	BudgetWriterSvc
	CategorySvc
	SettingsSvc
	SummarySvc
}
