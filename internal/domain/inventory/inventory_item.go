package inventory

import (
	"strings"

	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InventoryItem is the sellable stock record for one meat part at a location.
// Items are never physically removed; IsActive is the soft-delete marker.
type InventoryItem struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement"`
	MeatPartID         uint            `gorm:"not null;index"`
	CurrentStockLb     decimal.Decimal `gorm:"column:current_stock_lb;type:decimal(12,3);not null"`
	IsSeasoned         bool            `gorm:"not null"`
	Location           string          `gorm:"type:varchar(100);not null"`
	IsActive           bool            `gorm:"not null;index"`
	SeasoningPackageID *uint           `gorm:"index"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory"
}

// NewInventoryItem creates an active inventory item
func NewInventoryItem(meatPartID uint, stockLb decimal.Decimal, seasoned bool, location string, seasoningPackageID *uint) (*InventoryItem, error) {
	if meatPartID == 0 {
		return nil, shared.NewDomainError("INVALID_MEAT_PART", "Meat part ID is required")
	}
	if stockLb.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location cannot be empty")
	}

	return &InventoryItem{
		MeatPartID:         meatPartID,
		CurrentStockLb:     stockLb,
		IsSeasoned:         seasoned,
		Location:           location,
		IsActive:           true,
		SeasoningPackageID: seasoningPackageID,
	}, nil
}

// Decrease removes pounds from stock, clamping at zero.
// It returns the quantity actually removed.
func (i *InventoryItem) Decrease(pounds decimal.Decimal) (decimal.Decimal, error) {
	if !pounds.IsPositive() {
		return decimal.Zero, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	removed := decimal.Min(pounds, i.CurrentStockLb)
	i.CurrentStockLb = decimal.Max(decimal.Zero, i.CurrentStockLb.Sub(pounds))
	return removed, nil
}

// Deactivate soft-deletes the item
func (i *InventoryItem) Deactivate() {
	i.IsActive = false
}

// Restore re-activates a soft-deleted item
func (i *InventoryItem) Restore() {
	i.IsActive = true
}

// Patch lists the mutable fields of an inventory item. Nil means "leave unchanged".
// Activation is not patchable; it changes only through Deactivate and Restore.
type Patch struct {
	MeatPartID            *uint
	CurrentStockLb        *decimal.Decimal
	IsSeasoned            *bool
	Location              *string
	SeasoningPackageID    *uint
	ClearSeasoningPackage bool
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.MeatPartID == nil && p.CurrentStockLb == nil && p.IsSeasoned == nil &&
		p.Location == nil && p.SeasoningPackageID == nil && !p.ClearSeasoningPackage
}

// Apply validates and applies the patch. On error the item is left untouched.
func (i *InventoryItem) Apply(p Patch) error {
	next := *i

	if p.MeatPartID != nil {
		if *p.MeatPartID == 0 {
			return shared.NewDomainError("INVALID_MEAT_PART", "Meat part ID is required")
		}
		next.MeatPartID = *p.MeatPartID
	}
	if p.CurrentStockLb != nil {
		if p.CurrentStockLb.IsNegative() {
			return shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
		}
		next.CurrentStockLb = *p.CurrentStockLb
	}
	if p.IsSeasoned != nil {
		next.IsSeasoned = *p.IsSeasoned
	}
	if p.Location != nil {
		loc := strings.TrimSpace(*p.Location)
		if loc == "" {
			return shared.NewDomainError("INVALID_LOCATION", "Location cannot be empty")
		}
		next.Location = loc
	}
	if p.ClearSeasoningPackage {
		next.SeasoningPackageID = nil
	} else if p.SeasoningPackageID != nil {
		id := *p.SeasoningPackageID
		next.SeasoningPackageID = &id
	}

	*i = next
	return nil
}
