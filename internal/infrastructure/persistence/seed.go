package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedPart is one meat part of a seeded animal
type SeedPart struct {
	Name       string
	WeightLb   float64
	PricePerLb int64
}

// SeedAnimal is one animal of the starter catalog
type SeedAnimal struct {
	Name             string
	TotalWeightKg    float64
	PurchasePriceJMD int64
	Parts            []SeedPart
}

// SeedSeasoning is one seasoning package of the starter catalog
type SeedSeasoning struct {
	Name        string
	Ingredients string
}

// SeedData is the full starter data set
type SeedData struct {
	Animals    []SeedAnimal
	Seasonings []SeedSeasoning
	// StockLb is the opening stock of every part's inventory row
	StockLb  float64
	Location string
}

// DefaultSeedData returns the St. Thomas starter catalog
func DefaultSeedData() SeedData {
	return SeedData{
		Animals: []SeedAnimal{
			{Name: "Goat", TotalWeightKg: 22, PurchasePriceJMD: 22000, Parts: []SeedPart{
				{"Standard Goat Meat", 5, 1500},
				{"Goat Head", 3, 900},
				{"Goat Liver", 1.5, 800},
			}},
			{Name: "Chicken", TotalWeightKg: 10, PurchasePriceJMD: 6000, Parts: []SeedPart{
				{"Standard Chicken Meat", 4, 700},
				{"Chicken Neck", 1, 300},
				{"Chicken Liver", 1, 400},
			}},
			{Name: "Pig", TotalWeightKg: 80, PurchasePriceJMD: 42000, Parts: []SeedPart{
				{"Standard Pork Meat", 6, 1200},
				{"Pig Tail", 2.5, 950},
				{"Pork Belly", 4, 1400},
				{"Pork Shoulder", 5, 1300},
			}},
			{Name: "Cow", TotalWeightKg: 300, PurchasePriceJMD: 280000, Parts: []SeedPart{
				{"Standard Beef Meat", 6, 1800},
				{"Cow Head", 5, 1000},
				{"Cow Tail", 4, 1500},
				{"Cow Skin", 3, 1100},
				{"Ribeye", 2.5, 2000},
				{"Sirloin", 2, 1900},
				{"Steak", 3, 1950},
				{"Oxtail", 3.5, 2200},
			}},
		},
		Seasonings: []SeedSeasoning{
			{"Basic", "Salt, Pepper, Garlic, Thyme"},
			{"Curry", "Curry Powder, Onion, Pimento, Garlic, Thyme"},
			{"Jerk", "Jerk Seasoning, Scallion, Scotch Bonnet, Thyme"},
		},
		StockLb:  20,
		Location: "St. Thomas",
	}
}

// SeedStats counts the rows a seeding run inserted
type SeedStats struct {
	Animals    int
	MeatParts  int
	Inventory  int
	Seasonings int
}

// Seeder inserts starter data, skipping rows that already exist
type Seeder struct {
	animals    *GormAnimalRepository
	meatParts  *GormMeatPartRepository
	inventory  *GormInventoryItemRepository
	seasonings *GormSeasoningPackageRepository
	logger     *zap.Logger
}

// NewSeeder creates a Seeder over db
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		animals:    NewGormAnimalRepository(db),
		meatParts:  NewGormMeatPartRepository(db),
		inventory:  NewGormInventoryItemRepository(db),
		seasonings: NewGormSeasoningPackageRepository(db),
		logger:     logger,
	}
}

// Seed inserts whatever part of data is missing. Running it twice is a no-op.
func (s *Seeder) Seed(ctx context.Context, data SeedData) (SeedStats, error) {
	var stats SeedStats

	for _, a := range data.Animals {
		animal, created, err := s.ensureAnimal(ctx, a)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Animals++
		}

		for _, p := range a.Parts {
			part, created, err := s.ensurePart(ctx, animal.ID, p)
			if err != nil {
				return stats, err
			}
			if created {
				stats.MeatParts++
			}

			stocked, err := s.inventory.ExistsForMeatPart(ctx, part.ID)
			if err != nil {
				return stats, fmt.Errorf("check inventory for %q: %w", p.Name, err)
			}
			if stocked {
				continue
			}
			item, err := inventory.NewInventoryItem(part.ID, decimal.NewFromFloat(data.StockLb), false, data.Location, nil)
			if err != nil {
				return stats, err
			}
			if err := s.inventory.Create(ctx, item); err != nil {
				return stats, fmt.Errorf("stock %q: %w", p.Name, err)
			}
			stats.Inventory++
		}
	}

	for _, sp := range data.Seasonings {
		_, err := s.seasonings.FindByName(ctx, sp.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return stats, err
		}
		pkg, err := catalog.NewSeasoningPackage(sp.Name, sp.Ingredients)
		if err != nil {
			return stats, err
		}
		if err := s.seasonings.Create(ctx, pkg); err != nil {
			return stats, fmt.Errorf("create seasoning %q: %w", sp.Name, err)
		}
		stats.Seasonings++
	}

	s.logger.Info("Seeding complete",
		zap.Int("animals", stats.Animals),
		zap.Int("meat_parts", stats.MeatParts),
		zap.Int("inventory", stats.Inventory),
		zap.Int("seasonings", stats.Seasonings),
	)
	return stats, nil
}

func (s *Seeder) ensureAnimal(ctx context.Context, a SeedAnimal) (*catalog.Animal, bool, error) {
	existing, err := s.animals.FindByName(ctx, a.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	animal, err := catalog.NewAnimal(a.Name, decimal.NewFromFloat(a.TotalWeightKg), decimal.NewFromInt(a.PurchasePriceJMD), time.Time{})
	if err != nil {
		return nil, false, err
	}
	if err := s.animals.Create(ctx, animal); err != nil {
		return nil, false, fmt.Errorf("create animal %q: %w", a.Name, err)
	}
	return animal, true, nil
}

func (s *Seeder) ensurePart(ctx context.Context, animalID uint, p SeedPart) (*catalog.MeatPart, bool, error) {
	existing, err := s.meatParts.FindByAnimalAndName(ctx, animalID, p.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	part, err := catalog.NewMeatPart(animalID, p.Name, decimal.NewFromFloat(p.WeightLb), decimal.NewFromInt(p.PricePerLb))
	if err != nil {
		return nil, false, err
	}
	if err := s.meatParts.Create(ctx, part); err != nil {
		return nil, false, fmt.Errorf("create meat part %q: %w", p.Name, err)
	}
	return part, true, nil
}
