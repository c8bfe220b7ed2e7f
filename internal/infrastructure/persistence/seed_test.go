package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeeder_Seed(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	seeder := NewSeeder(db, zap.NewNop())

	stats, err := seeder.Seed(ctx, DefaultSeedData())
	require.NoError(t, err)
	assert.Equal(t, SeedStats{Animals: 4, MeatParts: 18, Inventory: 18, Seasonings: 3}, stats)

	animals, err := NewGormAnimalRepository(db).FindAllWithParts(ctx)
	require.NoError(t, err)
	require.Len(t, animals, 4)

	items, err := NewGormInventoryItemRepository(db).FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 18)
	for _, item := range items {
		assert.True(t, item.CurrentStockLb.Equal(testDecimal("20")))
		assert.Equal(t, "St. Thomas", item.Location)
		assert.False(t, item.IsSeasoned)
	}

	curry, err := NewGormSeasoningPackageRepository(db).FindByName(ctx, "Curry")
	require.NoError(t, err)
	assert.Equal(t, "Curry Powder, Onion, Pimento, Garlic, Thyme", curry.Ingredients)
}

func TestSeeder_SeedIsIdempotent(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	seeder := NewSeeder(db, zap.NewNop())

	_, err := seeder.Seed(ctx, DefaultSeedData())
	require.NoError(t, err)

	stats, err := seeder.Seed(ctx, DefaultSeedData())
	require.NoError(t, err)
	assert.Equal(t, SeedStats{}, stats)

	parts, err := NewGormMeatPartRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 18)
}

func TestSeeder_FillsGaps(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	_, parts := seedAnimal(t, db, "Goat", "Goat Head")
	seedInventory(t, db, parts[0].ID, "7", true)

	stats, err := NewSeeder(db, zap.NewNop()).Seed(ctx, DefaultSeedData())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Animals)
	assert.Equal(t, 17, stats.MeatParts)
	assert.Equal(t, 17, stats.Inventory)

	item, err := NewGormInventoryItemRepository(db).FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, item.CurrentStockLb.Equal(testDecimal("7")))
}
