package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SampleOrders builds a fully loaded graph: two orders, each with a customer and
// three order details that each carry a supplier. Identifiers are deterministic.
func SampleOrders() []Order {
	placed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	orders := make([]Order, 0, 2)
	detailID, supplierID := 0, 0

	for i, price := range []float64{42, 1999.5} {
		orderID := i + 1
		customer := &Customer{ID: 100 + orderID, Name: fmt.Sprintf("Customer_%d", orderID)}

		order := Order{
			ID:         orderID,
			Reference:  uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("order-%d", orderID))),
			OrderNo:    fmt.Sprintf("OrderNo_%d", orderID),
			Price:      price,
			CustomerID: customer.ID,
			Status:     StatusPaid,
			PlacedAt:   placed.Add(time.Duration(i) * time.Hour),
			Customer:   customer,
		}

		for range 3 {
			detailID++
			supplierID++
			sid := supplierID

			order.OrderDetails = append(order.OrderDetails, OrderDetail{
				ID:         detailID,
				ProductNo:  fmt.Sprintf("ProductNo_%d", detailID),
				OrderID:    orderID,
				SupplierID: &sid,
				Supplier:   &Supplier{ID: sid, Name: fmt.Sprintf("Supplier_%d", sid)},
			})
		}

		orders = append(orders, order)
	}

	return orders
}
