package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted layout of a transaction. Dates are kept as
// ISO-8601 strings so the blob stays readable by the browser client.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty"` // legacy creation time, read only
}

// Budget is the persisted layout of a budget.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	Spent     decimal.Decimal `json:"spent"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// Category is the persisted layout of a category. Older snapshots store
// categories as bare strings; those decode with Legacy set and only Name filled.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Type   string `json:"type"`
	Legacy bool   `json:"-"`
}

// UnmarshalJSON accepts either a string or an object.
func (c *Category) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*c = Category{Name: name, Legacy: true}
		return nil
	}

	type plain Category
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*c = Category(p)
	c.Legacy = false
	return nil
}

// Snapshot is the single blob stored under the storage key.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Categories   []Category    `json:"categories"`
	Currency     string        `json:"currency"`
}
