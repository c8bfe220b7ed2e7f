package order

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/meatkonnex/backend/internal/domain/order"
)

// PlaceOrderRequest is the public order form
type PlaceOrderRequest struct {
	CustomerName     string   `json:"customer_name" binding:"required,max=200"`
	PhoneNumber      string   `json:"phone_number" binding:"required,phone10"`
	MeatType         string   `json:"meat_type" binding:"required"`
	SeasoningPackage string   `json:"seasoning_package" binding:"required"`
	PepperLevel      string   `json:"pepper_level" binding:"required"`
	RemoveItems      []string `json:"remove_items"`
	Pounds           float64  `json:"pounds" binding:"required,gt=0,lte=10000"`
	City             string   `json:"city" binding:"required,max=100"`
}

// OrderSummary echoes the order back with its price breakdown
type OrderSummary struct {
	CustomerName     string   `json:"customer_name"`
	PhoneNumber      string   `json:"phone_number"`
	MeatType         string   `json:"meat_type"`
	SeasoningPackage string   `json:"seasoning_package"`
	PepperLevel      string   `json:"pepper_level"`
	RemovedItems     []string `json:"removed_items"`
	Pounds           float64  `json:"pounds"`
	City             string   `json:"city"`
	Location         string   `json:"location"`
	PricePerPound    float64  `json:"price_per_pound"`
	BaseCost         float64  `json:"base_cost"`
	SeasoningCost    float64  `json:"seasoning_cost"`
	DeliveryFee      float64  `json:"delivery_fee"`
	TotalCostJMD     int64    `json:"total_cost_jmd"`
	ConfirmationPIN  string   `json:"confirmation_pin"`
}

// PlaceOrderResponse is returned once an order is committed
type PlaceOrderResponse struct {
	Message      string       `json:"message"`
	OrderID      uint         `json:"order_id"`
	OrderSummary OrderSummary `json:"order_summary"`
	WhatsAppLink string       `json:"whatsapp_link"`
}

// OrderItemResponse is an order line in the admin listing
type OrderItemResponse struct {
	MeatPart      string  `json:"meat_part"`
	PoundsOrdered float64 `json:"pounds_ordered"`
	Seasoned      bool    `json:"seasoned"`
	Seasonings    string  `json:"seasonings"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}

// OrderResponse is an order in the admin listing
type OrderResponse struct {
	ID            uint                `json:"id"`
	CustomerName  string              `json:"customer_name"`
	PhoneNumber   string              `json:"phone_number"`
	Location      string              `json:"location"`
	CustomerPIN   string              `json:"customer_pin"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	IsPaid        bool                `json:"is_paid"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

// UpdatePaymentStatusRequest is the admin payment body
type UpdatePaymentStatusRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// MarkPaidRequest is the body of the authenticated mark-paid route. It is
// either {"paid": true} or a bare JSON boolean.
type MarkPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// UnmarshalJSON accepts both body forms
func (r *MarkPaidRequest) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' && !bytes.Equal(trimmed, []byte("null")) {
		var paid bool
		if err := json.Unmarshal(trimmed, &paid); err != nil {
			return err
		}
		r.Paid = &paid
		return nil
	}
	type body MarkPaidRequest
	return json.Unmarshal(data, (*body)(r))
}

// PaymentStatusResponse reports the payment state after an update
type PaymentStatusResponse struct {
	OrderID       uint   `json:"order_id"`
	IsPaid        bool   `json:"is_paid"`
	PaymentStatus string `json:"payment_status"`
	Message       string `json:"message"`
}

// ToOrderResponse converts a domain Order to its admin listing form
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items[i] = OrderItemResponse{
			MeatPart:      it.MeatPartName(),
			PoundsOrdered: it.PoundsOrdered.InexactFloat64(),
			Seasoned:      it.Seasoned,
			Seasonings:    it.Seasonings,
			UnitPrice:     it.UnitPrice.InexactFloat64(),
			TotalPrice:    it.TotalPrice.InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		PhoneNumber:   o.PhoneNumber,
		Location:      o.Location,
		CustomerPIN:   o.CustomerPIN,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		IsPaid:        o.IsPaid,
		CreatedAt:     o.DateOrdered,
		Items:         items,
	}
}
