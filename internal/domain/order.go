package domain

import "github.com/google/uuid"

type Order struct {
	ID        uuid.UUID
	Value     float64
	delivered bool
}

func NewOrder(value float64) *Order {
	return &Order{
		ID:    uuid.New(),
		Value: value,
	}
}

// RestoreOrder rebuilds an order read back from storage.
func RestoreOrder(id uuid.UUID, value float64, delivered bool) *Order {
	return &Order{
		ID:        id,
		Value:     value,
		delivered: delivered,
	}
}

// Deliver marks the order delivered. Once delivered an order stays delivered.
func (o *Order) Deliver() {
	o.delivered = true
}

func (o *Order) IsDelivered() bool {
	return o.delivered
}
