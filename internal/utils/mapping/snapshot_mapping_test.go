package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() domain.Snapshot {
	s := domain.DefaultSnapshot()
	s.Currency = "EUR"
	s.Transactions = []domain.Transaction{
		{
			ID:          "t1",
			Description: "Salary",
			Amount:      decimal.NewFromInt(1000),
			Type:        domain.Income,
			Category:    "Salary",
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          "t2",
			Description: "Groceries",
			Amount:      decimal.RequireFromString("12.5"),
			Type:        domain.Expense,
			Category:    "Food",
			Date:        time.Date(2024, 1, 10, 18, 45, 0, 0, time.UTC),
			CreatedAt:   time.Date(2024, 1, 10, 18, 46, 0, 0, time.UTC),
		},
	}
	s.Budgets = []domain.Budget{
		{
			ID:        "b1",
			Category:  "Food",
			Amount:    decimal.NewFromInt(300),
			Period:    domain.Monthly,
			Spent:     decimal.RequireFromString("12.5"),
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	return s
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleSnapshot()

	first, err := mapping.EncodeSnapshot(original)
	require.NoError(t, err)

	decoded, err := mapping.DecodeSnapshot(first, time.UTC)
	require.NoError(t, err)

	second, err := mapping.EncodeSnapshot(decoded)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, string(first), string(second), "re-encoding must be byte stable")

	require.Len(t, decoded.Transactions, 2)
	for i := range original.Transactions {
		o, d := original.Transactions[i], decoded.Transactions[i]
		assert.Equal(t, o.ID, d.ID)
		assert.Equal(t, o.Description, d.Description)
		assert.True(t, o.Amount.Equal(d.Amount))
		assert.Equal(t, o.Type, d.Type)
		assert.Equal(t, o.Category, d.Category)
		assert.True(t, o.Date.Equal(d.Date))
		assert.True(t, o.CreatedAt.Equal(d.CreatedAt))
	}
	assert.Equal(t, original.Categories, decoded.Categories)
	assert.Equal(t, "EUR", decoded.Currency)
	require.Len(t, decoded.Budgets, 1)
	assert.True(t, decoded.Budgets[0].Spent.Equal(decimal.RequireFromString("12.5")))
}

func TestEncodeSnapshot_Layout(t *testing.T) {
	data, err := mapping.EncodeSnapshot(sampleSnapshot())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	txs := raw["transactions"].([]any)
	first := txs[0].(map[string]any)
	assert.Equal(t, "2024-01-05", first["date"], "midnight dates are written date-only")
	assert.Equal(t, float64(1000), first["amount"], "amounts are JSON numbers")
	second := txs[1].(map[string]any)
	assert.Equal(t, "2024-01-10T18:45:00Z", second["date"])

	cats := raw["categories"].([]any)
	_, isRecord := cats[0].(map[string]any)
	assert.True(t, isRecord, "categories are always written as records")
	assert.Equal(t, "EUR", raw["currency"])
}

func TestDecodeSnapshot_LegacyLayout(t *testing.T) {
	blob := `{
		"transactions": [
			{"id": "1700000000000", "description": "Lunch", "amount": "15.75", "type": "expense",
			 "category": "Food", "date": "2024-03-02", "timestamp": "2024-03-02T12:00:00.000Z"}
		],
		"budgets": [
			{"id": "b", "category": "Food", "amount": 200, "spent": 0}
		],
		"categories": ["Food", {"id": "c9", "name": "Pets", "color": "#112233", "type": "expense"}],
		"currency": "GBP"
	}`

	s, err := mapping.DecodeSnapshot([]byte(blob), time.UTC)
	require.NoError(t, err)

	require.Len(t, s.Transactions, 1)
	tx := s.Transactions[0]
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("15.75")), "string amounts are accepted")
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), tx.CreatedAt, "legacy timestamp feeds CreatedAt")

	require.Len(t, s.Budgets, 1)
	assert.Equal(t, domain.Monthly, s.Budgets[0].Period, "missing period defaults to monthly")

	require.Len(t, s.Categories, 2)
	assert.Equal(t, domain.Category{ID: "Food", Name: "Food", Color: domain.DefaultCategoryColor}, s.Categories[0])
	assert.Equal(t, domain.Category{ID: "c9", Name: "Pets", Color: "#112233", Type: domain.Expense}, s.Categories[1])
	assert.Equal(t, "GBP", s.Currency)
}

func TestDecodeSnapshot_MissingParts(t *testing.T) {
	s, err := mapping.DecodeSnapshot([]byte(`{}`), time.UTC)
	require.NoError(t, err)

	assert.NotNil(t, s.Transactions)
	assert.NotNil(t, s.Budgets)
	assert.Equal(t, domain.DefaultCategories(), s.Categories)
	assert.Equal(t, domain.DefaultCurrency, s.Currency)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":     `{"transactions": [`,
		"bad date":     `{"transactions": [{"id": "x", "amount": 1, "type": "expense", "date": "yesterday"}]}`,
		"bad amount":   `{"transactions": [{"id": "x", "amount": "abc", "type": "expense", "date": "2024-01-01"}]}`,
		"wrong shapes": `{"transactions": {}}`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mapping.DecodeSnapshot([]byte(blob), time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestParseDate_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	d, err := mapping.ParseDate("2024-06-01", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, d.Location())
	assert.Equal(t, 0, d.Hour())

	d, err = mapping.ParseDate("2024-06-01T22:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Day(), "instants are converted into loc")
}
