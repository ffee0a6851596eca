package aggregation_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(id string, typ domain.TransactionType, amount string, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Description: "tx " + id,
		Amount:      decimal.RequireFromString(amount),
		Type:        typ,
		Category:    category,
		Date:        date,
	}
}

// scenarioTransactions is the three-transaction January/February example.
func scenarioTransactions() []domain.Transaction {
	return []domain.Transaction{
		tx("1", domain.Income, "1000", "Salary", day(2024, 1, 5)),
		tx("2", domain.Expense, "200", "Food", day(2024, 1, 10)),
		tx("3", domain.Expense, "50", "Food", day(2024, 2, 1)),
	}
}

func randomTransactions(r *rand.Rand, n int) []domain.Transaction {
	cats := []string{"Food", "Housing", "Salary", "Other"}
	out := make([]domain.Transaction, 0, n)
	for i := 0; i < n; i++ {
		typ := domain.Expense
		if r.Intn(3) == 0 {
			typ = domain.Income
		}
		cents := r.Int63n(100000) + 1
		out = append(out, domain.Transaction{
			ID:       fmt.Sprintf("r%d", i),
			Amount:   decimal.New(cents, -2),
			Type:     typ,
			Category: cats[r.Intn(len(cats))],
			Date:     day(2024, time.Month(r.Intn(12)+1), r.Intn(28)+1),
		})
	}
	return out
}

func TestTotals_Scenario(t *testing.T) {
	txs := scenarioTransactions()

	assert.True(t, aggregation.TotalIncome(txs).Equal(decimal.NewFromInt(1000)))
	assert.True(t, aggregation.TotalExpenses(txs).Equal(decimal.NewFromInt(250)))
	assert.True(t, aggregation.Balance(txs).Equal(decimal.NewFromInt(750)))

	totals := aggregation.Totals(txs)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(750)))
	assert.True(t, totals.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.TotalExpenses.Equal(decimal.NewFromInt(250)))
}

func TestTotals_Empty(t *testing.T) {
	assert.True(t, aggregation.Balance(nil).IsZero())
	assert.True(t, aggregation.TotalIncome(nil).IsZero())
	assert.True(t, aggregation.TotalExpenses(nil).IsZero())
	assert.Empty(t, aggregation.ExpensesByCategory(nil))
	assert.Empty(t, aggregation.RecentTransactions(nil, 5))
}

func TestBalanceEqualsIncomeMinusExpenses(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		txs := randomTransactions(r, r.Intn(40))
		// delete a random subset to mimic add/delete sequences
		if len(txs) > 0 {
			k := r.Intn(len(txs))
			txs = append(txs[:k], txs[k+1:]...)
		}
		want := aggregation.TotalIncome(txs).Sub(aggregation.TotalExpenses(txs))
		assert.True(t, aggregation.Balance(txs).Equal(want), "round %d", round)
	}
}

func TestExpensesByCategory(t *testing.T) {
	txs := []domain.Transaction{
		tx("1", domain.Expense, "10", "Food", day(2024, 1, 1)),
		tx("2", domain.Expense, "30", "Housing", day(2024, 1, 2)),
		tx("3", domain.Income, "500", "Salary", day(2024, 1, 3)),
		tx("4", domain.Expense, "20", "Food", day(2024, 1, 4)),
		tx("5", domain.Expense, "5", "Fun", day(2024, 1, 5)),
		tx("6", domain.Expense, "25", "Fun", day(2024, 1, 6)),
	}

	got := aggregation.ExpensesByCategory(txs)
	require.Len(t, got, 3)

	// Food (30) was seen before Housing (30) and Fun (30): all tie, first-seen order wins.
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "Housing", got[1].Category)
	assert.Equal(t, "Fun", got[2].Category)
	for _, c := range got {
		assert.True(t, c.Amount.Equal(decimal.NewFromInt(30)))
		assert.True(t, c.Share.Equal(decimal.RequireFromString("33.33")))
	}
}

func TestExpensesByCategory_SortedDescending(t *testing.T) {
	txs := []domain.Transaction{
		tx("1", domain.Expense, "5", "Small", day(2024, 1, 1)),
		tx("2", domain.Expense, "50", "Big", day(2024, 1, 2)),
		tx("3", domain.Expense, "20", "Mid", day(2024, 1, 3)),
	}
	got := aggregation.ExpensesByCategory(txs)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Big", "Mid", "Small"}, []string{got[0].Category, got[1].Category, got[2].Category})
}

func TestExpensesByCategory_SumsToTotalExpenses(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		txs := randomTransactions(r, r.Intn(60))
		sum := decimal.Zero
		for _, c := range aggregation.ExpensesByCategory(txs) {
			sum = sum.Add(c.Amount)
		}
		assert.True(t, sum.Equal(aggregation.TotalExpenses(txs)), "round %d", round)
	}
}

func TestRecentTransactions(t *testing.T) {
	txs := []domain.Transaction{
		tx("a", domain.Expense, "1", "Food", day(2024, 1, 1)),
		tx("b", domain.Expense, "1", "Food", day(2024, 3, 1)),
		tx("c", domain.Expense, "1", "Food", day(2024, 2, 1)),
		tx("d", domain.Expense, "1", "Food", day(2024, 3, 1)),
		tx("e", domain.Expense, "1", "Food", day(2023, 12, 1)),
		tx("f", domain.Expense, "1", "Food", day(2024, 2, 15)),
	}

	got := aggregation.RecentTransactions(txs, 5)
	require.Len(t, got, 5)
	ids := make([]string, len(got))
	for i, g := range got {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"b", "d", "f", "c", "a"}, ids, "ties keep insertion order")

	assert.Len(t, aggregation.RecentTransactions(txs, 100), len(txs))
	assert.Empty(t, aggregation.RecentTransactions(txs, 0))
	assert.Empty(t, aggregation.RecentTransactions(txs, -1))
	assert.Equal(t, "a", txs[0].ID, "input is not reordered")
}

func TestRecentTransactions_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 30; round++ {
		txs := randomTransactions(r, r.Intn(20))
		got := aggregation.RecentTransactions(txs, 5)
		assert.LessOrEqual(t, len(got), 5)

		byID := map[string]bool{}
		for _, t := range txs {
			byID[t.ID] = true
		}
		for i, g := range got {
			assert.True(t, byID[g.ID], "result must be a subset of the input")
			if i > 0 {
				assert.False(t, g.Date.After(got[i-1].Date), "dates must be non-increasing")
			}
		}
	}
}

func TestGroupByMonth(t *testing.T) {
	now := time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)
	txs := append(scenarioTransactions(),
		tx("old", domain.Expense, "999", "Food", day(2023, 8, 31)),
		tx("future", domain.Income, "999", "Salary", day(2024, 3, 1)),
	)

	got := aggregation.GroupByMonth(txs, now, 6)
	require.Len(t, got, 6)

	labels := make([]string, len(got))
	for i, m := range got {
		labels[i] = m.Label
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, labels)
	assert.Equal(t, 2023, got[0].Year)

	jan, feb := got[4], got[5]
	assert.True(t, jan.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, jan.Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, feb.Income.IsZero(), "future months are excluded")
	assert.True(t, feb.Expense.Equal(decimal.NewFromInt(50)))
	for _, m := range got[:4] {
		assert.True(t, m.Income.IsZero())
		assert.True(t, m.Expense.IsZero(), "months before the window are excluded")
	}

	assert.Empty(t, aggregation.GroupByMonth(txs, now, 0))
}

func TestLastMonths_CrossesYear(t *testing.T) {
	got := aggregation.LastMonths(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 3)
	require.Len(t, got, 3)
	assert.Equal(t, day(2023, 11, 1), got[0])
	assert.Equal(t, day(2023, 12, 1), got[1])
	assert.Equal(t, day(2024, 1, 1), got[2])
}

func TestBudgetProgress_Scenario(t *testing.T) {
	budget := domain.Budget{ID: "b1", Category: "Food", Amount: decimal.NewFromInt(300), Period: domain.Monthly}
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	p := aggregation.Progress(budget, scenarioTransactions(), now)

	assert.True(t, p.Spent.Equal(decimal.NewFromInt(200)), "February expense is outside the period")
	assert.True(t, p.Budget.Spent.Equal(decimal.NewFromInt(200)))
	pct, _ := p.Percentage.Float64()
	assert.InDelta(t, 66.7, pct, 0.05)
	assert.False(t, p.IsExceeded())
	assert.False(t, p.IsNearLimit())
	assert.Equal(t, domain.BandOnTrack, p.Band)
	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(100)))
}

func TestBudgetSpent_Periods(t *testing.T) {
	// Wednesday 2024-05-15; the week starts on Sunday 2024-05-12.
	now := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		tx("sat", domain.Expense, "1", "Food", day(2024, 5, 11)),
		tx("sun", domain.Expense, "2", "Food", day(2024, 5, 12)),
		tx("wed", domain.Expense, "4", "Food", day(2024, 5, 15)),
		tx("apr", domain.Expense, "8", "Food", day(2024, 4, 30)),
		tx("lastyear", domain.Expense, "16", "Food", day(2023, 5, 15)),
		tx("income", domain.Income, "32", "Food", day(2024, 5, 15)),
		tx("other", domain.Expense, "64", "Housing", day(2024, 5, 15)),
	}

	cases := map[domain.BudgetPeriod]int64{
		domain.Weekly:  6,
		domain.Monthly: 7,
		domain.Yearly:  15,
		"decade":       31,
	}
	for period, want := range cases {
		b := domain.Budget{Category: "Food", Amount: decimal.NewFromInt(100), Period: period}
		got := aggregation.BudgetSpent(b, txs, now)
		assert.True(t, got.Equal(decimal.NewFromInt(want)), "period %s: got %s want %d", period, got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	assert.Equal(t, day(2024, 5, 12), aggregation.StartOfWeek(time.Date(2024, 5, 12, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, day(2024, 5, 12), aggregation.StartOfWeek(time.Date(2024, 5, 18, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, day(2023, 12, 31), aggregation.StartOfWeek(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
}

func TestPercentageAndBand(t *testing.T) {
	cases := []struct {
		spent, limit string
		pct          string
		band         domain.BudgetBand
	}{
		{"0", "100", "0", domain.BandWellWithin},
		{"49.99", "100", "49.99", domain.BandWellWithin},
		{"50", "100", "50", domain.BandOnTrack},
		{"75", "100", "75", domain.BandCaution},
		{"90", "100", "90", domain.BandNearLimit},
		{"99.99", "100", "99.99", domain.BandNearLimit},
		{"100", "100", "100", domain.BandExceeded},
		{"250", "100", "100", domain.BandExceeded},
		{"10", "0", "0", domain.BandWellWithin},
		{"10", "-5", "0", domain.BandWellWithin},
	}
	for _, c := range cases {
		pct := aggregation.Percentage(decimal.RequireFromString(c.spent), decimal.RequireFromString(c.limit))
		assert.True(t, pct.Equal(decimal.RequireFromString(c.pct)), "%s/%s gave %s", c.spent, c.limit, pct)
		assert.Equal(t, c.band, aggregation.Band(pct), "%s/%s", c.spent, c.limit)
	}
}

func TestPercentage_AlwaysClamped(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		spent := decimal.New(r.Int63n(1000000), -2)
		limit := decimal.New(r.Int63n(200000)-1000, -2)
		pct := aggregation.Percentage(spent, limit)
		assert.True(t, pct.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, pct.LessThanOrEqual(decimal.NewFromInt(100)))
	}
}

func TestProgress_NegativeRemaining(t *testing.T) {
	b := domain.Budget{Category: "Food", Amount: decimal.NewFromInt(100), Period: domain.Yearly}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := aggregation.Progress(b, []domain.Transaction{tx("x", domain.Expense, "130", "Food", day(2024, 2, 1))}, now)

	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(-30)))
	assert.True(t, p.Percentage.Equal(decimal.NewFromInt(100)))
	assert.True(t, p.IsExceeded())
}

func TestRefreshSpent(t *testing.T) {
	budgets := []domain.Budget{
		{ID: "b1", Category: "Food", Amount: decimal.NewFromInt(300), Period: domain.Monthly, Spent: decimal.NewFromInt(999)},
	}
	got := aggregation.RefreshSpent(budgets, scenarioTransactions(), time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, got[0].Spent.Equal(decimal.NewFromInt(50)))
	assert.True(t, budgets[0].Spent.Equal(decimal.NewFromInt(999)), "input is left untouched")
}
