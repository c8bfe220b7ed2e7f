package catalog

import (
	"strings"
	"time"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Animal is a purchased carcass that meat parts are cut from.
type Animal struct {
	ID               uint            `gorm:"primaryKey;autoIncrement"`
	Name             string          `gorm:"type:varchar(100);not null;index"`
	TotalWeightKg    decimal.Decimal `gorm:"column:total_weight_kg;type:decimal(12,3);not null"`
	PurchasePriceJMD decimal.Decimal `gorm:"column:purchase_price_jmd;type:decimal(14,2);not null"`
	DatePurchased    time.Time       `gorm:"column:date_purchased;not null"`

	MeatParts []MeatPart `gorm:"foreignKey:AnimalID;references:ID"`
}

// TableName returns the table name for GORM
func (Animal) TableName() string {
	return "animal"
}

// NewAnimal creates an animal record. A zero purchase date means "now".
func NewAnimal(name string, totalWeightKg, purchasePriceJMD decimal.Decimal, datePurchased time.Time) (*Animal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Animal name cannot be empty")
	}
	if totalWeightKg.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Total weight cannot be negative")
	}
	if purchasePriceJMD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if datePurchased.IsZero() {
		datePurchased = time.Now().UTC()
	}

	return &Animal{
		Name:             name,
		TotalWeightKg:    totalWeightKg,
		PurchasePriceJMD: purchasePriceJMD,
		DatePurchased:    datePurchased,
		MeatParts:        make([]MeatPart, 0),
	}, nil
}

// AddPart cuts a new meat part from this animal. The part is linked to the
// animal once the animal has been persisted and has an ID.
func (a *Animal) AddPart(partName string, weightLb, pricePerLbJMD decimal.Decimal) (*MeatPart, error) {
	part, err := NewMeatPart(a.ID, partName, weightLb, pricePerLbJMD)
	if err != nil {
		return nil, err
	}
	a.MeatParts = append(a.MeatParts, *part)
	return &a.MeatParts[len(a.MeatParts)-1], nil
}
