// Package query answers questions about a company by chaining collection operations.
package query

import (
	"companykata/internal/collections"
	"companykata/internal/domain"
)

func totalOrderValue(c *domain.Customer) float64 { return c.TotalOrderValue() }

func isDelivered(o *domain.Order) bool { return o.IsDelivered() }

func byTotalOrderValue() func(a, b *domain.Customer) int {
	return collections.Comparing(totalOrderValue)
}

// TotalOrderValues lists each customer's total order value in customer order.
func TotalOrderValues(company *domain.Company) []float64 {
	return collections.Map(company.Customers(), totalOrderValue)
}

func SortedTotalOrderValues(company *domain.Company) []float64 {
	return collections.Sorted(TotalOrderValues(company), collections.Comparing(func(v float64) float64 { return v }))
}

// MaxTotalOrderValue folds the total order values with max, seeded with the first one.
func MaxTotalOrderValue(company *domain.Company) (float64, error) {
	return collections.ReduceFirst(TotalOrderValues(company), func(left, right float64) float64 {
		return max(left, right)
	})
}

func CustomerWithMaxTotalOrderValue(company *domain.Company) (*domain.Customer, error) {
	return collections.MaxBy(company.Customers(), byTotalOrderValue())
}

// CustomerWithMaxTotalOrderValueByFold selects the same customer as CustomerWithMaxTotalOrderValue
// with a hand-written fold. The left element is kept on ties.
func CustomerWithMaxTotalOrderValueByFold(company *domain.Company) (*domain.Customer, error) {
	best := collections.Reduce(company.Customers(), (*domain.Customer)(nil),
		func(left, right *domain.Customer) *domain.Customer {
			if left != nil && left.TotalOrderValue() >= right.TotalOrderValue() {
				return left
			}
			return right
		})
	if best == nil {
		return nil, collections.ErrEmptySequence
	}
	return best, nil
}

// SupplierNames joins the supplier names with separator, without a leading separator.
func SupplierNames(company *domain.Company, separator string) string {
	names := collections.Map(company.Suppliers(), func(s *domain.Supplier) string { return s.Name })

	joined := collections.Reduce(names, (*string)(nil), func(left *string, right string) *string {
		next := right
		if left != nil {
			next = *left + separator + right
		}
		return &next
	})
	if joined == nil {
		return ""
	}
	return *joined
}

func CustomersInCity(company *domain.Company, city string) []*domain.Customer {
	return collections.Filter(company.Customers(), func(c *domain.Customer) bool { return c.City == city })
}

// DeliverOrdersToCity delivers every order of every customer living in city and returns those orders.
func DeliverOrdersToCity(company *domain.Company, city string) []*domain.Order {
	orders := collections.FlatMap(CustomersInCity(company, city), (*domain.Customer).Orders)
	collections.ForEach(orders, (*domain.Order).Deliver)
	return orders
}

func AllOrdersDelivered(customer *domain.Customer) bool {
	return collections.AllMatch(customer.Orders(), isDelivered)
}

func NoOrdersDelivered(customer *domain.Customer) bool {
	return collections.AllMatch(customer.Orders(), collections.Not(isDelivered))
}
