package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	exchange, key string
	msg           amqp091.Publishing
	hasDeadline   bool
	err           error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	_, f.hasDeadline = ctx.Deadline()
	return f.err
}

func event() domain.ChangeEvent {
	return domain.ChangeEvent{
		Operation:        domain.OpAddTransaction,
		EntityID:         "tx-1",
		TransactionCount: 3,
		BudgetCount:      1,
		Currency:         "EUR",
		OccurredAt:       time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotify_PublishesPersistentJSON(t *testing.T) {
	pub := &fakePublisher{}
	c := &Client{pub: pub, exchangeName: "finance", queueName: "finance.snapshot"}

	require.NoError(t, c.Notify(context.Background(), event()))

	assert.Equal(t, "finance", pub.exchange)
	assert.Equal(t, "finance.snapshot", pub.key)
	assert.True(t, pub.hasDeadline, "publish is bounded by a timeout")
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, pub.msg.DeliveryMode)
	assert.Equal(t, "transaction.added", pub.msg.Type)

	msg, err := SnapshotChangedMessageFromJSON(pub.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", msg.EntityID)
	assert.Equal(t, 3, msg.TransactionCount)
	assert.Equal(t, "EUR", msg.Currency)
}

func TestNotify_WrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	c := &Client{pub: &fakePublisher{err: boom}, exchangeName: "x", queueName: "q"}

	err := c.Notify(context.Background(), event())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "publish message")
}

func TestSnapshotChangedMessage_JSON(t *testing.T) {
	data, err := NewSnapshotChangedMessage(event()).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"operation":"transaction.added","entityId":"tx-1","transactionCount":3,"budgetCount":1,"currency":"EUR","timestamp":"2024-01-15T12:00:00Z"}`, string(data))

	_, err = SnapshotChangedMessageFromJSON([]byte("{invalid"))
	assert.Error(t, err)
}
