package order

import (
	"fmt"
	"strings"

	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// Settings are the configurable delivery rules layered over the default price list
type Settings struct {
	Location        string
	MinimumPounds   float64
	DeliveryFee     *float64 // nil keeps the default; zero means free delivery
	MeatTypeAnimals map[string]string
}

// NewConfig builds a Config from settings. Zero values and a nil delivery fee
// keep the defaults; meat type overrides are merged into the default animal mapping.
func NewConfig(s Settings) (Config, error) {
	cfg := DefaultConfig()

	if loc := strings.TrimSpace(s.Location); loc != "" {
		cfg.Prices.Location = loc
	}
	if s.MinimumPounds > 0 {
		cfg.Prices.MinimumPounds = decimal.NewFromFloat(s.MinimumPounds)
	}
	if s.DeliveryFee != nil {
		if *s.DeliveryFee < 0 {
			return Config{}, fmt.Errorf("delivery fee cannot be negative")
		}
		cfg.Prices.DeliveryFee = decimal.NewFromFloat(*s.DeliveryFee)
	}
	for rawType, animal := range s.MeatTypeAnimals {
		meat, err := order.ParseMeatType(strings.ToLower(rawType))
		if err != nil {
			return Config{}, fmt.Errorf("meat type animals: %w", err)
		}
		if strings.TrimSpace(animal) == "" {
			return Config{}, fmt.Errorf("meat type animals: empty animal for %q", rawType)
		}
		cfg.MeatTypeAnimals[meat] = animal
	}
	return cfg, nil
}
