package fixture

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"companykata/internal/domain"
	"companykata/internal/errors"
)

type companyDocument struct {
	Name      string             `yaml:"name"`
	Customers []customerDocument `yaml:"customers"`
	Suppliers []string           `yaml:"suppliers"`
}

type customerDocument struct {
	Name   string          `yaml:"name"`
	City   string          `yaml:"city"`
	Orders []orderDocument `yaml:"orders"`
}

type orderDocument struct {
	Value     float64 `yaml:"value"`
	Delivered bool    `yaml:"delivered"`
}

func LoadFile(path string) (*domain.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading company file: %w", err)
	}

	return Parse(data)
}

// Parse builds a company from a YAML document:
//
//	name: Bloggs Shed Supplies
//	customers:
//	  - name: Fred
//	    city: London
//	    orders:
//	      - value: 50.0
//	suppliers: [Shedtastic, SFD]
func Parse(data []byte) (*domain.Company, error) {
	var doc companyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing company file: %w", err)
	}

	var details []errors.ValidationDetail
	if doc.Name == "" {
		details = append(details, errors.ValidationDetail{Field: "name", Message: "company name is required"})
	}
	for i, c := range doc.Customers {
		if c.Name == "" {
			details = append(details, errors.ValidationDetail{
				Field:   fmt.Sprintf("customers[%d].name", i),
				Message: "customer name is required",
			})
		}
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("invalid company file", details...)
	}

	company := domain.NewCompany(doc.Name)
	for _, c := range doc.Customers {
		customer := domain.NewCustomer(c.Name, c.City)
		for _, o := range c.Orders {
			order := domain.NewOrder(o.Value)
			if o.Delivered {
				order.Deliver()
			}
			customer.AddOrder(order)
		}
		if err := company.AddCustomer(customer); err != nil {
			return nil, err
		}
	}
	for _, name := range doc.Suppliers {
		company.AddSupplier(domain.NewSupplier(name))
	}

	return company, nil
}
