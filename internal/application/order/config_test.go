package order

import (
	"testing"

	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("zero settings keep the defaults", func(t *testing.T) {
		cfg, err := NewConfig(Settings{})
		require.NoError(t, err)
		assert.Equal(t, "St. Thomas", cfg.Prices.Location)
		assert.True(t, cfg.Prices.MinimumPounds.Equal(decimal.NewFromInt(5)))
		assert.True(t, cfg.Prices.DeliveryFee.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, "Goat", cfg.MeatTypeAnimals[order.MeatGoat])
	})

	t.Run("overrides", func(t *testing.T) {
		fee := 500.0
		cfg, err := NewConfig(Settings{
			Location:        "Portland",
			MinimumPounds:   10,
			DeliveryFee:     &fee,
			MeatTypeAnimals: map[string]string{"Pork": "Hog"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Portland", cfg.Prices.Location)
		assert.True(t, cfg.Prices.MinimumPounds.Equal(decimal.NewFromInt(10)))
		assert.True(t, cfg.Prices.DeliveryFee.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "Hog", cfg.MeatTypeAnimals[order.MeatPork])
		assert.Equal(t, "Cow", cfg.MeatTypeAnimals[order.MeatBeef])
	})

	t.Run("zero delivery fee is kept", func(t *testing.T) {
		free := 0.0
		cfg, err := NewConfig(Settings{DeliveryFee: &free})
		require.NoError(t, err)
		assert.True(t, cfg.Prices.DeliveryFee.IsZero())

		quote, err := cfg.Prices.Quote(order.MeatPork, order.SeasoningNone, decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, int64(2500), quote.TotalJMD())
	})

	t.Run("negative delivery fee", func(t *testing.T) {
		fee := -1.0
		_, err := NewConfig(Settings{DeliveryFee: &fee})
		assert.Error(t, err)
	})

	t.Run("unknown meat type", func(t *testing.T) {
		_, err := NewConfig(Settings{MeatTypeAnimals: map[string]string{"lamb": "Sheep"}})
		assert.Error(t, err)
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		_, err := NewConfig(Settings{MeatTypeAnimals: map[string]string{"goat": "Ram"}})
		require.NoError(t, err)
		assert.Equal(t, "Goat", DefaultConfig().MeatTypeAnimals[order.MeatGoat])
	})
}
