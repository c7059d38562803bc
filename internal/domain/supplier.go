package domain

type Supplier struct {
	Name string
}

func NewSupplier(name string) *Supplier {
	return &Supplier{Name: name}
}
