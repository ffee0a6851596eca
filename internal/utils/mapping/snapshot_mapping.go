package mapping

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// DateLayout is the layout of date-only values in the persisted snapshot.
const DateLayout = "2006-01-02"

// FormatDate writes midnight values as a plain date and anything else as RFC 3339.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(time.RFC3339Nano)
}

// ParseDate accepts a plain date (interpreted as midnight in loc) or an RFC 3339 timestamp.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q: %w", s, err)
	}
	return t.In(loc), nil
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ToModelTransaction converts a domain Transaction to its persisted form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        string(d.Type),
		Category:    d.Category,
		Date:        FormatDate(d.Date),
		CreatedAt:   formatInstant(d.CreatedAt),
	}
}

// ToDomainTransaction converts a persisted Transaction, falling back to the
// legacy timestamp field for the creation time.
func ToDomainTransaction(m models.Transaction, loc *time.Location) (domain.Transaction, error) {
	date, err := ParseDate(m.Date, loc)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.ID, err)
	}
	created := m.CreatedAt
	if created == "" {
		created = m.Timestamp
	}
	createdAt, err := parseInstant(created, loc)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s created time: %w", m.ID, err)
	}
	return domain.Transaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        domain.TransactionType(m.Type),
		Category:    m.Category,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}

// ToModelBudget converts a domain Budget to its persisted form.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		ID:        d.ID,
		Category:  d.Category,
		Amount:    d.Amount,
		Period:    string(d.Period),
		Spent:     d.Spent,
		CreatedAt: formatInstant(d.CreatedAt),
	}
}

// ToDomainBudget converts a persisted Budget. A missing period becomes monthly.
func ToDomainBudget(m models.Budget, loc *time.Location) (domain.Budget, error) {
	createdAt, err := parseInstant(m.CreatedAt, loc)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("budget %s created time: %w", m.ID, err)
	}
	period := domain.BudgetPeriod(m.Period)
	if period == "" {
		period = domain.DefaultBudgetPeriod
	}
	return domain.Budget{
		ID:        m.ID,
		Category:  m.Category,
		Amount:    m.Amount,
		Period:    period,
		Spent:     m.Spent,
		CreatedAt: createdAt,
	}, nil
}

// ToModelCategory always produces the record form.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		ID:    d.ID,
		Name:  d.Name,
		Color: d.Color,
		Type:  string(d.Type),
	}
}

// ToDomainCategory upgrades legacy string categories to records keyed by name.
func ToDomainCategory(m models.Category) domain.Category {
	c := domain.Category{
		ID:    m.ID,
		Name:  m.Name,
		Color: m.Color,
		Type:  domain.TransactionType(m.Type),
	}
	if c.ID == "" {
		c.ID = m.Name
	}
	if c.Color == "" {
		c.Color = domain.DefaultCategoryColor
	}
	return c
}

// ToModelSnapshot converts the whole domain snapshot to its persisted layout.
func ToModelSnapshot(d domain.Snapshot) models.Snapshot {
	m := models.Snapshot{
		Transactions: make([]models.Transaction, len(d.Transactions)),
		Budgets:      make([]models.Budget, len(d.Budgets)),
		Categories:   make([]models.Category, len(d.Categories)),
		Currency:     d.Currency,
	}
	for i, t := range d.Transactions {
		m.Transactions[i] = ToModelTransaction(t)
	}
	for i, b := range d.Budgets {
		m.Budgets[i] = ToModelBudget(b)
	}
	for i, c := range d.Categories {
		m.Categories[i] = ToModelCategory(c)
	}
	return m
}

// ToDomainSnapshot converts a persisted snapshot, filling absent parts with defaults.
func ToDomainSnapshot(m models.Snapshot, loc *time.Location) (domain.Snapshot, error) {
	d := domain.Snapshot{
		Transactions: make([]domain.Transaction, 0, len(m.Transactions)),
		Budgets:      make([]domain.Budget, 0, len(m.Budgets)),
		Currency:     m.Currency,
	}
	for _, mt := range m.Transactions {
		t, err := ToDomainTransaction(mt, loc)
		if err != nil {
			return domain.Snapshot{}, err
		}
		d.Transactions = append(d.Transactions, t)
	}
	for _, mb := range m.Budgets {
		b, err := ToDomainBudget(mb, loc)
		if err != nil {
			return domain.Snapshot{}, err
		}
		d.Budgets = append(d.Budgets, b)
	}
	if m.Categories == nil {
		d.Categories = domain.DefaultCategories()
	} else {
		d.Categories = make([]domain.Category, 0, len(m.Categories))
		for _, mc := range m.Categories {
			d.Categories = append(d.Categories, ToDomainCategory(mc))
		}
	}
	if d.Currency == "" {
		d.Currency = domain.DefaultCurrency
	}
	return d, nil
}

// EncodeSnapshot serialises a snapshot to the persisted JSON layout.
func EncodeSnapshot(d domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(ToModelSnapshot(d))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted blob. Dates without a zone are read in loc.
func DecodeSnapshot(data []byte, loc *time.Location) (domain.Snapshot, error) {
	if loc == nil {
		loc = time.Local
	}
	var m models.Snapshot
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	d, err := ToDomainSnapshot(m, loc)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return d, nil
}
