package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_Creation(t *testing.T) {
	customer := NewCustomer("Fred", "London")

	assert.Equal(t, "Fred", customer.Name)
	assert.Equal(t, "London", customer.City)
	assert.Empty(t, customer.Orders())
}

func TestCustomer_TotalOrderValue(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "no orders", values: nil, expected: 0},
		{name: "single order", values: []float64{50}, expected: 50},
		{name: "several orders", values: []float64{50, 21, 0.5}, expected: 71.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := NewCustomer("Fred", "London")
			for _, v := range tt.values {
				customer.AddOrder(NewOrder(v))
			}

			assert.Equal(t, tt.expected, customer.TotalOrderValue())
		})
	}
}

func TestCustomer_OrdersKeepInsertionOrder(t *testing.T) {
	customer := NewCustomer("Mary", "Liphook")
	first := NewOrder(1)
	second := NewOrder(2)
	customer.AddOrder(first)
	customer.AddOrder(second)

	orders := customer.Orders()
	assert.Len(t, orders, 2)
	assert.Same(t, first, orders[0])
	assert.Same(t, second, orders[1])
}

func TestSupplier_Creation(t *testing.T) {
	assert.Equal(t, "Doxins", NewSupplier("Doxins").Name)
}
