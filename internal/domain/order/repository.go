package order

import "context"

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	// Create inserts the order together with its items
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindAllWithItems returns all orders, newest first, with items and their meat parts
	FindAllWithItems(ctx context.Context) ([]Order, error)
	// UpdatePayment persists IsPaid and PaymentStatus only
	UpdatePayment(ctx context.Context, order *Order) error
}
