package domain

import "companykata/internal/collections"

type Customer struct {
	Name   string
	City   string
	orders []*Order
}

func NewCustomer(name, city string) *Customer {
	return &Customer{
		Name: name,
		City: city,
	}
}

func (c *Customer) AddOrder(order *Order) {
	c.orders = append(c.orders, order)
}

func (c *Customer) Orders() []*Order {
	return c.orders
}

func (c *Customer) TotalOrderValue() float64 {
	return collections.Sum(collections.Map(c.orders, func(o *Order) float64 { return o.Value }))
}
