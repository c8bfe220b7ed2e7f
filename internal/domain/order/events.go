package order

import (
	"github.com/meatkonnex/backend/internal/domain/shared"
)

// Aggregate and event type names
const (
	AggregateTypeOrder = "Order"

	EventTypeOrderPlaced         = "order.placed"
	EventTypeOrderPaymentUpdated = "order.payment_updated"
)

// OrderPlacedEvent is published after an order and its item are committed
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	MeatType     string `json:"meat_type"`
	Seasoning    string `json:"seasoning_package"`
	Pounds       string `json:"pounds"`
	TotalJMD     int64  `json:"total_cost_jmd"`
	Location     string `json:"location"`
	StockDrawn   bool   `json:"stock_drawn"`
}

// NewOrderPlacedEvent creates an OrderPlacedEvent for a persisted order
func NewOrderPlacedEvent(o *Order, quote Quote, stockDrawn bool) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		CustomerName:    o.CustomerName,
		PhoneNumber:     o.PhoneNumber,
		MeatType:        string(quote.MeatType),
		Seasoning:       string(quote.Seasoning),
		Pounds:          quote.Pounds.String(),
		TotalJMD:        quote.TotalJMD(),
		Location:        o.Location,
		StockDrawn:      stockDrawn,
	}
}

// OrderPaymentUpdatedEvent is published when an order's paid flag changes
type OrderPaymentUpdatedEvent struct {
	shared.BaseDomainEvent
	IsPaid        bool   `json:"is_paid"`
	PaymentStatus string `json:"payment_status"`
}

// NewOrderPaymentUpdatedEvent creates an OrderPaymentUpdatedEvent
func NewOrderPaymentUpdatedEvent(o *Order) *OrderPaymentUpdatedEvent {
	return &OrderPaymentUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaymentUpdated, AggregateTypeOrder, o.ID),
		IsPaid:          o.IsPaid,
		PaymentStatus:   o.PaymentStatus,
	}
}
