// Package store holds the entity model used by the examples, tests and the CLI.
// Entities form a relational graph that is only partially loaded at a time.
package store

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order represents a transaction made by a customer.
type Order struct {
	ID         int         `db:"id"`
	Reference  uuid.UUID   `db:"reference"`
	OrderNo    string      `db:"order_no"`
	Price      float64     `db:"price"`
	CustomerID int         `db:"customer_id"`
	Status     OrderStatus `db:"status"`
	PlacedAt   time.Time   `db:"placed_at"`

	OrderDetails []OrderDetail `db:"-"` // Has-Many relationship
	Customer     *Customer     `db:"-"`
}

// OrderDetail represents a product line within an order.
type OrderDetail struct {
	ID         int    `db:"id"`
	ProductNo  string `db:"product_no"`
	OrderID    int    `db:"order_id"`
	SupplierID *int   `db:"supplier_id"`

	Order    *Order    `db:"-"`
	Supplier *Supplier `db:"-"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID    int     `db:"id"`
	Name  string  `db:"name"`
	Email *string `db:"email"`

	Orders []*Order `db:"-"`
}

// Supplier delivers the products of order details.
type Supplier struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
