package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens a migrated in-memory database on a single connection
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedAnimal(t *testing.T, db *gorm.DB, name string, parts ...string) (*catalog.Animal, []catalog.MeatPart) {
	t.Helper()
	ctx := context.Background()

	animal, err := catalog.NewAnimal(name, decimal.NewFromInt(30), decimal.NewFromInt(45000), time.Time{})
	require.NoError(t, err)
	require.NoError(t, NewGormAnimalRepository(db).Create(ctx, animal))

	created := make([]catalog.MeatPart, 0, len(parts))
	for _, partName := range parts {
		part, err := catalog.NewMeatPart(animal.ID, partName, decimal.NewFromInt(10), decimal.NewFromInt(1400))
		require.NoError(t, err)
		require.NoError(t, NewGormMeatPartRepository(db).Create(ctx, part))
		created = append(created, *part)
	}
	return animal, created
}

func seedInventory(t *testing.T, db *gorm.DB, meatPartID uint, stock string, active bool) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(meatPartID, decimal.RequireFromString(stock), false, "St. Thomas", nil)
	require.NoError(t, err)
	if !active {
		item.Deactivate()
	}
	require.NoError(t, NewGormInventoryItemRepository(db).Create(context.Background(), item))
	return item
}
