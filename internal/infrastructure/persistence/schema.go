package persistence

import (
	"fmt"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/order"
	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order
func Models() []any {
	return []any{
		&catalog.Animal{},
		&catalog.MeatPart{},
		&catalog.SeasoningPackage{},
		&inventory.InventoryItem{},
		&order.Order{},
		&order.OrderItem{},
	}
}

// AutoMigrate creates or updates the schema from the entity definitions.
// PostgreSQL deployments use the versioned migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
