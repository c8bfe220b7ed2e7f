package order

import (
	"regexp"
	"strings"
	"time"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order status values
const (
	StatusPending = "pending"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhoneNumber reports whether s is a 10 digit phone number
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// Order is a customer order. Orders own their items.
type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	CustomerName  string    `gorm:"type:varchar(200);not null"`
	PhoneNumber   string    `gorm:"type:varchar(10);not null"`
	CustomerPIN   string    `gorm:"column:customer_pin;type:varchar(4)"`
	Location      string    `gorm:"type:varchar(100);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	DateOrdered   time.Time `gorm:"column:date_ordered;not null;index"`
	IsPaid        bool      `gorm:"not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one priced line within an order
type OrderItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	OrderID       uint            `gorm:"not null;index"`
	MeatPartID    *uint           `gorm:"index"`
	PoundsOrdered decimal.Decimal `gorm:"column:pounds_ordered;type:decimal(12,3);not null"`
	Seasoned      bool            `gorm:"not null"`
	Seasonings    string          `gorm:"type:varchar(50)"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	MeatPart *catalog.MeatPart `gorm:"foreignKey:MeatPartID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// MeatPartName returns the linked part's name, or "N/A" when the item has none
func (i *OrderItem) MeatPartName() string {
	if i.MeatPart == nil || i.MeatPartID == nil {
		return "N/A"
	}
	return i.MeatPart.PartName
}

// Customer identifies who placed an order
type Customer struct {
	Name        string
	PhoneNumber string
}

// NewOrder creates a pending, unpaid order with a single item priced by quote.
// meatPartID is the part the stock was drawn from, if any.
func NewOrder(customer Customer, location, pin string, quote Quote, meatPartID *uint) (*Order, error) {
	name := strings.TrimSpace(customer.Name)
	if name == "" {
		return nil, shared.NewInvalidInputError("Customer name cannot be empty")
	}
	if !ValidPhoneNumber(customer.PhoneNumber) {
		return nil, shared.NewInvalidInputError("Phone number must be exactly 10 digits")
	}
	if len(pin) != 4 {
		return nil, shared.NewInvalidInputError("Confirmation PIN must be 4 digits")
	}
	if !quote.Pounds.IsPositive() {
		return nil, shared.NewInvalidInputError("Pounds must be greater than zero")
	}

	item := OrderItem{
		MeatPartID:    meatPartID,
		PoundsOrdered: quote.Pounds,
		Seasoned:      quote.Seasoning != SeasoningNone,
		Seasonings:    string(quote.Seasoning),
		UnitPrice:     quote.PricePerPound,
		TotalPrice:    quote.ItemTotal(),
	}

	return &Order{
		CustomerName:  name,
		PhoneNumber:   customer.PhoneNumber,
		CustomerPIN:   pin,
		Location:      location,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
		DateOrdered:   time.Now().UTC(),
		IsPaid:        false,
		Items:         []OrderItem{item},
	}, nil
}

// SetPaid records the payment state, keeping PaymentStatus in step with IsPaid
func (o *Order) SetPaid(paid bool) {
	o.IsPaid = paid
	if paid {
		o.PaymentStatus = PaymentPaid
	} else {
		o.PaymentStatus = PaymentUnpaid
	}
}
