package dto

type CustomerSummaryDTO struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	OrderCount      int     `json:"orderCount"`
	TotalOrderValue float64 `json:"totalOrderValue"`
}

type OrderDTO struct {
	ID        string  `json:"id"`
	Value     float64 `json:"value"`
	Delivered bool    `json:"delivered"`
}

type CustomerDetailDTO struct {
	CustomerSummaryDTO
	Orders []OrderDTO `json:"orders"`
}

type CustomersResponse struct {
	TraceID   string               `json:"traceId"`
	Company   string               `json:"company"`
	Customers []CustomerSummaryDTO `json:"customers"`
}

type CustomerResponse struct {
	TraceID  string            `json:"traceId"`
	Customer CustomerDetailDTO `json:"customer"`
}

type TotalOrderValuesResponse struct {
	TraceID string    `json:"traceId"`
	Values  []float64 `json:"values"`
	Lowest  float64   `json:"lowest"`
	Highest float64   `json:"highest"`
}

type TopCustomerResponse struct {
	TraceID  string             `json:"traceId"`
	Customer CustomerSummaryDTO `json:"customer"`
}

type SupplierNamesResponse struct {
	TraceID   string `json:"traceId"`
	Separator string `json:"separator"`
	Names     string `json:"names"`
}

type DeliveryResponse struct {
	TraceID   string   `json:"traceId"`
	City      string   `json:"city"`
	Delivered int      `json:"delivered"`
	OrderIDs  []string `json:"orderIds"`
}

type ErrorResponse struct {
	TraceID string `json:"traceId"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
