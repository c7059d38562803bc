package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	order := NewOrder(99.99)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, 99.99, order.Value)
	assert.False(t, order.IsDelivered())
}

func TestOrder_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewOrder(1).ID, NewOrder(1).ID)
}

func TestOrder_Deliver(t *testing.T) {
	order := NewOrder(10)

	order.Deliver()
	assert.True(t, order.IsDelivered())

	order.Deliver()
	assert.True(t, order.IsDelivered(), "delivering twice keeps the order delivered")
}

func TestRestoreOrder(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		delivered bool
	}{
		{name: "pending", delivered: false},
		{name: "delivered", delivered: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := RestoreOrder(id, 42.5, tt.delivered)

			assert.Equal(t, id, order.ID)
			assert.Equal(t, 42.5, order.Value)
			assert.Equal(t, tt.delivered, order.IsDelivered())
		})
	}
}
