package inventory

import (
	"github.com/meatkonnex/backend/internal/domain/inventory"
)

// CreateInventoryRequest creates an inventory row for a meat part
type CreateInventoryRequest struct {
	MeatPartID         uint    `json:"meat_part_id" binding:"required"`
	CurrentStockLb     float64 `json:"current_stock_lb" binding:"gte=0"`
	IsSeasoned         bool    `json:"is_seasoned"`
	Location           string  `json:"location" binding:"max=100"`
	SeasoningPackageID *uint   `json:"seasoning_package_id"`
}

// InventoryResponse represents an inventory row in API responses
type InventoryResponse struct {
	ID                 uint    `json:"id"`
	MeatPartID         uint    `json:"meat_part_id"`
	CurrentStockLb     float64 `json:"current_stock_lb"`
	IsSeasoned         bool    `json:"is_seasoned"`
	Location           string  `json:"location"`
	IsActive           bool    `json:"is_active"`
	SeasoningPackageID *uint   `json:"seasoning_package_id"`
}

// StockViewResponse is one row of the stock overview
type StockViewResponse struct {
	InventoryID uint    `json:"inventory_id"`
	MeatPart    string  `json:"meat_part"`
	Animal      string  `json:"animal"`
	StockLb     float64 `json:"stock_lb"`
	Seasoned    bool    `json:"seasoned"`
	Location    string  `json:"location"`
	IsActive    bool    `json:"is_active"`
}

// ToInventoryResponse converts a domain InventoryItem to its response
func ToInventoryResponse(item *inventory.InventoryItem) InventoryResponse {
	return InventoryResponse{
		ID:                 item.ID,
		MeatPartID:         item.MeatPartID,
		CurrentStockLb:     item.CurrentStockLb.InexactFloat64(),
		IsSeasoned:         item.IsSeasoned,
		Location:           item.Location,
		IsActive:           item.IsActive,
		SeasoningPackageID: item.SeasoningPackageID,
	}
}

// ToStockViewResponse converts a joined stock row to its response
func ToStockViewResponse(v inventory.StockView) StockViewResponse {
	return StockViewResponse{
		InventoryID: v.InventoryID,
		MeatPart:    v.MeatPart,
		Animal:      v.Animal,
		StockLb:     v.StockLb.InexactFloat64(),
		Seasoned:    v.Seasoned,
		Location:    v.Location,
		IsActive:    v.IsActive,
	}
}
