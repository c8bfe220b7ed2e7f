package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockView is one inventory row joined with its meat part and animal names
type StockView struct {
	InventoryID uint
	MeatPart    string
	Animal      string
	StockLb     decimal.Decimal
	Seasoned    bool
	Location    string
	IsActive    bool
}

// InventoryItemRepository defines persistence operations for inventory items
type InventoryItemRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	Save(ctx context.Context, item *InventoryItem) error
	FindByID(ctx context.Context, id uint) (*InventoryItem, error)
	FindActive(ctx context.Context) ([]InventoryItem, error)
	ExistsForMeatPart(ctx context.Context, meatPartID uint) (bool, error)

	// FindSellableForAnimal resolves the active item that sells meat from the
	// named animal (inventory -> meat part -> animal). "Standard" cuts win, then
	// the lowest id. Where the store supports it the row is locked for update.
	FindSellableForAnimal(ctx context.Context, animalName string) (*InventoryItem, error)

	// StockOverview returns every inventory row with its meat part and animal names
	StockOverview(ctx context.Context) ([]StockView, error)
}
