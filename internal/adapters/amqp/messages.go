package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// SnapshotChangedMessage tells subscribers that the stored snapshot changed.
// It carries counts only; consumers read the snapshot endpoint for details.
type SnapshotChangedMessage struct {
	Operation        string    `json:"operation"`
	EntityID         string    `json:"entityId,omitempty"`
	TransactionCount int       `json:"transactionCount"`
	BudgetCount      int       `json:"budgetCount"`
	Currency         string    `json:"currency"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewSnapshotChangedMessage builds a message from a change event.
func NewSnapshotChangedMessage(e domain.ChangeEvent) *SnapshotChangedMessage {
	ts := e.OccurredAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return &SnapshotChangedMessage{
		Operation:        string(e.Operation),
		EntityID:         e.EntityID,
		TransactionCount: e.TransactionCount,
		BudgetCount:      e.BudgetCount,
		Currency:         e.Currency,
		Timestamp:        ts.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SnapshotChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotChangedMessageFromJSON creates a message from JSON bytes
func SnapshotChangedMessageFromJSON(data []byte) (*SnapshotChangedMessage, error) {
	var msg SnapshotChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
