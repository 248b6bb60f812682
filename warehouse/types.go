// Package warehouse holds the DTO model projected from the store entities.
package warehouse

// OrderDto is the transport shape of store.Order.
type OrderDto struct {
	ID         int
	OrderNo    string
	Status     string
	CustomerID *int

	OrderDetails []OrderDetailDto
	Customer     *CustomerDto
}

// OrderDetailDto is the transport shape of store.OrderDetail.
type OrderDetailDto struct {
	ID        int
	ProductNo string

	Supplier *SupplierDto
}

// CustomerDto is the transport shape of store.Customer.
type CustomerDto struct {
	ID   int
	Name string

	Orders []OrderDto
}

// SupplierDto is the transport shape of store.Supplier.
type SupplierDto struct {
	ID   int
	Name string
}

// OrderSummary reads an order with its lines flattened into a single supplier.
// Mapping OrderDetails onto Supplier is a cardinality mismatch.
type OrderSummary struct {
	ID       int
	Supplier *SupplierDto
}
