// Package fixture builds the Bloggs Shed Supplies company the collection queries run against.
package fixture

import "companykata/internal/domain"

const CompanyName = "Bloggs Shed Supplies"

type customerEntry struct {
	name   string
	city   string
	orders []float64
}

var customers = []customerEntry{
	{name: "Fred", city: "London", orders: []float64{50.0, 21.0}},
	{name: "Mary", city: "Liphook", orders: []float64{652.0, 205.0}},
	{name: "Bill", city: "London", orders: []float64{480.0, 25.5}},
}

var suppliers = []string{
	"Shedtastic",
	"Splendid Crocks",
	"Annoying Pets",
	"Gnomes 'R' Us",
	"Furniture Hamlet",
	"SFD",
	"Doxins",
}

// NewCompany returns a freshly built company on every call, so deliveries made through one
// instance are never visible through another.
func NewCompany() *domain.Company {
	company := domain.NewCompany(CompanyName)

	for _, entry := range customers {
		customer := domain.NewCustomer(entry.name, entry.city)
		for _, value := range entry.orders {
			customer.AddOrder(domain.NewOrder(value))
		}
		// names above are distinct
		_ = company.AddCustomer(customer)
	}

	for _, name := range suppliers {
		company.AddSupplier(domain.NewSupplier(name))
	}

	return company
}
