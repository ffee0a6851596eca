package domain

import "strings"

// DefaultCategoryColor is applied to categories that carry no colour of their own.
const DefaultCategoryColor = "#6c757d"

// Category is a label for transactions and budgets. Type is empty for
// categories that apply to both income and expenses.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Type  TransactionType `json:"type,omitempty"`
}

// NormalizeCategoryName is the key used for name uniqueness.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultCategories returns a fresh copy of the categories a new snapshot starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food", Color: "#38b000", Type: Expense},
		{ID: "transportation", Name: "Transportation", Color: "#ffb700", Type: Expense},
		{ID: "entertainment", Name: "Entertainment", Color: "#9d4edd", Type: Expense},
		{ID: "housing", Name: "Housing", Color: "#e63946", Type: Expense},
		{ID: "utilities", Name: "Utilities", Color: "#0466c8", Type: Expense},
		{ID: "healthcare", Name: "Healthcare", Color: "#2a9d8f", Type: Expense},
		{ID: "shopping", Name: "Shopping", Color: "#e85d04", Type: Expense},
		{ID: "education", Name: "Education", Color: "#4361ee", Type: Expense},
		{ID: "salary", Name: "Salary", Color: "#38b000", Type: Income},
		{ID: "investments", Name: "Investments", Color: "#0466c8", Type: Income},
		{ID: "other", Name: "Other", Color: DefaultCategoryColor, Type: Expense},
	}
}
