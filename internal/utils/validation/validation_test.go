package validation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() validation.TransactionInput {
	return validation.TransactionInput{
		Description: "Coffee",
		Amount:      "3.50",
		Type:        "expense",
		Category:    "Food",
		Date:        "2024-01-10",
	}
}

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*validation.TransactionInput)
		want   validation.Errors
	}{
		{
			name:   "valid",
			mutate: func(*validation.TransactionInput) {},
			want:   validation.Errors{},
		},
		{
			name:   "blank description",
			mutate: func(in *validation.TransactionInput) { in.Description = "   " },
			want:   validation.Errors{"description": "Description is required"},
		},
		{
			name:   "zero amount",
			mutate: func(in *validation.TransactionInput) { in.Amount = "0" },
			want:   validation.Errors{"amount": "Amount must be a valid positive number"},
		},
		{
			name:   "negative amount",
			mutate: func(in *validation.TransactionInput) { in.Amount = "-4" },
			want:   validation.Errors{"amount": "Amount must be a valid positive number"},
		},
		{
			name:   "non numeric amount",
			mutate: func(in *validation.TransactionInput) { in.Amount = "abc" },
			want:   validation.Errors{"amount": "Amount must be a valid positive number"},
		},
		{
			name:   "bad type",
			mutate: func(in *validation.TransactionInput) { in.Type = "transfer" },
			want:   validation.Errors{"type": "Type must be one of: income, expense"},
		},
		{
			name: "everything missing",
			mutate: func(in *validation.TransactionInput) {
				*in = validation.TransactionInput{Type: "income"}
			},
			want: validation.Errors{
				"description": "Description is required",
				"amount":      "Amount must be a valid positive number",
				"category":    "Category is required",
				"date":        "Date is required",
			},
		},
		{
			name:   "unparseable date",
			mutate: func(in *validation.TransactionInput) { in.Date = "10/01/2024" },
			want:   validation.Errors{"date": "Date must be a date in YYYY-MM-DD format"},
		},
		{
			name:   "timestamp date",
			mutate: func(in *validation.TransactionInput) { in.Date = "2024-01-10T10:00:00Z" },
			want:   validation.Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validTransaction()
			tt.mutate(&in)
			got := validation.ValidateTransaction(in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.Valid())
		})
	}
}

func TestCheckTransaction_Classification(t *testing.T) {
	assert.NoError(t, validation.CheckTransaction(validTransaction()))

	in := validTransaction()
	in.Amount = "-1"
	err := validation.CheckTransaction(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrMissingField)

	in = validTransaction()
	in.Description = ""
	in.Amount = "0"
	err = validation.CheckTransaction(in)
	assert.ErrorIs(t, err, apperrors.ErrMissingField, "missing fields win over bad amounts")

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 2)
}

func TestValidateBudget(t *testing.T) {
	assert.Empty(t, validation.ValidateBudget(validation.BudgetInput{Category: "Food", Amount: "300"}))
	assert.Empty(t, validation.ValidateBudget(validation.BudgetInput{Category: "Food", Amount: "300", Period: "weekly"}))

	got := validation.ValidateBudget(validation.BudgetInput{Category: "", Amount: "0", Period: "daily"})
	assert.Equal(t, validation.Errors{
		"category": "Category is required",
		"amount":   "Budget limit must be a valid positive number",
		"period":   "Period must be one of: weekly, monthly, yearly",
	}, got)

	assert.ErrorIs(t, validation.CheckBudget(validation.BudgetInput{Category: "Food", Amount: "x"}), apperrors.ErrInvalidAmount)
}

func TestValidateCategory(t *testing.T) {
	assert.Empty(t, validation.ValidateCategory(validation.CategoryInput{Name: "Pets"}))
	assert.Empty(t, validation.ValidateCategory(validation.CategoryInput{Name: "Pets", Color: "#aabbcc", Type: "expense"}))

	got := validation.ValidateCategory(validation.CategoryInput{Name: " ", Color: "green", Type: "savings"})
	assert.Len(t, got, 3)
	assert.Equal(t, "Name is required", got["name"])
	assert.ErrorIs(t, validation.CheckCategory(validation.CategoryInput{}), apperrors.ErrMissingField)
}

func TestCheckCurrency(t *testing.T) {
	assert.NoError(t, validation.CheckCurrency("EUR"))
	assert.NoError(t, validation.CheckCurrency("CHF"))
	assert.ErrorIs(t, validation.CheckCurrency(""), apperrors.ErrMissingField)
	assert.ErrorIs(t, validation.CheckCurrency("eur"), apperrors.ErrValidation)
	assert.ErrorIs(t, validation.CheckCurrency("EURO"), apperrors.ErrValidation)
	assert.ErrorIs(t, validation.CheckCurrency("E1R"), apperrors.ErrValidation)
}

func TestParseAmount(t *testing.T) {
	d, ok := validation.ParseAmount(" 12.50 ")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	for _, bad := range []string{"", "0", "-0.01", "NaN", "Infinity", "1,000"} {
		_, ok := validation.ParseAmount(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsFutureDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	assert.False(t, validation.IsFutureDate(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, validation.IsFutureDate(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, validation.IsFutureDate(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), now))
}

func TestAsError(t *testing.T) {
	assert.NoError(t, validation.AsError(validation.Errors{}))

	in := validTransaction()
	in.Amount = "abc"
	err := validation.AsError(validation.ValidateTransaction(in))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	in.Category = "  "
	err = validation.AsError(validation.ValidateTransaction(in))
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	err = validation.AsError(validation.Errors{"type": "Type must be one of: income, expense"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrMissingField)
}
