package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInventoryItemRepository_FindSellableForAnimal(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers standard cuts over lower ids", func(t *testing.T) {
		db := newSQLiteDB(t)
		_, parts := seedAnimal(t, db, "Goat", "Goat Head", "Standard Goat Cut")
		seedInventory(t, db, parts[0].ID, "40", true)
		standard := seedInventory(t, db, parts[1].ID, "25.5", true)

		item, err := NewGormInventoryItemRepository(db).FindSellableForAnimal(ctx, "goat")
		require.NoError(t, err)
		assert.Equal(t, standard.ID, item.ID)
		assert.True(t, item.CurrentStockLb.Equal(decimal.RequireFromString("25.5")))
	})

	t.Run("falls back to lowest id and skips inactive rows", func(t *testing.T) {
		db := newSQLiteDB(t)
		_, parts := seedAnimal(t, db, "Pork", "Standard Pork Cut", "Pork Belly", "Pork Chop")
		seedInventory(t, db, parts[0].ID, "10", false)
		belly := seedInventory(t, db, parts[1].ID, "10", true)
		seedInventory(t, db, parts[2].ID, "10", true)

		item, err := NewGormInventoryItemRepository(db).FindSellableForAnimal(ctx, "Pork")
		require.NoError(t, err)
		assert.Equal(t, belly.ID, item.ID)
	})

	t.Run("unknown animal is not found", func(t *testing.T) {
		db := newSQLiteDB(t)
		_, parts := seedAnimal(t, db, "Beef", "Standard Beef Cut")
		seedInventory(t, db, parts[0].ID, "10", true)

		_, err := NewGormInventoryItemRepository(db).FindSellableForAnimal(ctx, "chicken")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, "No inventory for chicken", err.Error())
	})

	t.Run("locks the row on postgres", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "meat_part_id", "current_stock_lb", "is_seasoned", "location", "is_active", "seasoning_package_id"}).
			AddRow(3, 9, "12.5", false, "St. Thomas", true, nil)
		mock.ExpectQuery(`SELECT inventory\.\* FROM "inventory" JOIN meat_parts .* JOIN animal .* WHERE LOWER\(animal\.name\) = LOWER\(\$1\) AND inventory\.is_active = \$2 ORDER BY .* FOR UPDATE OF "inventory"`).
			WithArgs("goat", true, 1).
			WillReturnRows(rows)

		item, err := NewGormInventoryItemRepository(db.DB).FindSellableForAnimal(ctx, "goat")
		require.NoError(t, err)
		assert.Equal(t, uint(3), item.ID)
		assert.Equal(t, uint(9), item.MeatPartID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepository_FindActiveAndExists(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormInventoryItemRepository(db)

	_, parts := seedAnimal(t, db, "Goat", "Standard Goat Cut", "Goat Head")
	active := seedInventory(t, db, parts[0].ID, "10", true)
	inactive := seedInventory(t, db, parts[0].ID, "3", false)

	items, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, active.ID, items[0].ID)

	// FindByID ignores the active flag
	found, err := repo.FindByID(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	_, err = repo.FindByID(ctx, 9999)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	exists, err := repo.ExistsForMeatPart(ctx, parts[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForMeatPart(ctx, parts[1].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormInventoryItemRepository_SaveClearsSeasoningPackage(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormInventoryItemRepository(db)

	_, parts := seedAnimal(t, db, "Goat", "Standard Goat Cut")
	pkgID := uint(1)
	item, err := inventory.NewInventoryItem(parts[0].ID, decimal.NewFromInt(8), true, "Kingston", &pkgID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, item.Apply(inventory.Patch{ClearSeasoningPackage: true}))
	require.NoError(t, repo.Save(ctx, item))

	reloaded, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.SeasoningPackageID)
	assert.Equal(t, "Kingston", reloaded.Location)
}

func TestGormInventoryItemRepository_StockOverview(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	_, goatParts := seedAnimal(t, db, "Goat", "Standard Goat Cut")
	_, porkParts := seedAnimal(t, db, "Pork", "Pork Belly")
	first := seedInventory(t, db, goatParts[0].ID, "12.5", true)
	second := seedInventory(t, db, porkParts[0].ID, "4", false)

	views, err := NewGormInventoryItemRepository(db).StockOverview(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, first.ID, views[0].InventoryID)
	assert.Equal(t, "Standard Goat Cut", views[0].MeatPart)
	assert.Equal(t, "Goat", views[0].Animal)
	assert.True(t, views[0].StockLb.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, views[0].IsActive)

	assert.Equal(t, second.ID, views[1].InventoryID)
	assert.Equal(t, "Pork", views[1].Animal)
	assert.False(t, views[1].IsActive)
	assert.Equal(t, "St. Thomas", views[1].Location)
}
