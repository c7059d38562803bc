package domain

import (
	"fmt"

	"companykata/internal/errors"
)

// Company owns its customers and suppliers. Customer names are unique within a company and
// both sequences keep insertion order.
type Company struct {
	Name      string
	customers []*Customer
	suppliers []*Supplier
}

func NewCompany(name string) *Company {
	return &Company{Name: name}
}

func (c *Company) AddCustomer(customer *Customer) error {
	for _, existing := range c.customers {
		if existing.Name == customer.Name {
			return errors.NewConflictError(fmt.Sprintf("customer %s already exists in %s", customer.Name, c.Name))
		}
	}
	c.customers = append(c.customers, customer)
	return nil
}

func (c *Company) AddSupplier(supplier *Supplier) {
	c.suppliers = append(c.suppliers, supplier)
}

func (c *Company) Customers() []*Customer {
	return c.customers
}

func (c *Company) Suppliers() []*Supplier {
	return c.suppliers
}

func (c *Company) CustomerNamed(name string) (*Customer, error) {
	for _, customer := range c.customers {
		if customer.Name == name {
			return customer, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("customer %s not found", name))
}
