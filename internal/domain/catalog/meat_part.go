package catalog

import (
	"strings"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MeatPart is a named cut taken from exactly one animal.
type MeatPart struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	AnimalID      uint            `gorm:"not null;index"`
	PartName      string          `gorm:"type:varchar(100);not null"`
	WeightLb      decimal.Decimal `gorm:"column:weight_lb;type:decimal(12,3);not null"`
	PricePerLbJMD decimal.Decimal `gorm:"column:price_per_lb_jmd;type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (MeatPart) TableName() string {
	return "meat_parts"
}

// NewMeatPart creates a meat part for the given animal.
// animalID may be zero while the parent animal is still unsaved.
func NewMeatPart(animalID uint, partName string, weightLb, pricePerLbJMD decimal.Decimal) (*MeatPart, error) {
	partName = strings.TrimSpace(partName)
	if partName == "" {
		return nil, shared.NewDomainError("INVALID_PART_NAME", "Part name cannot be empty")
	}
	if weightLb.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Part weight cannot be negative")
	}
	if pricePerLbJMD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per pound cannot be negative")
	}

	return &MeatPart{
		AnimalID:      animalID,
		PartName:      partName,
		WeightLb:      weightLb,
		PricePerLbJMD: pricePerLbJMD,
	}, nil
}
