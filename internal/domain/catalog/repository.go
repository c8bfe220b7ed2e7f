package catalog

import "context"

// AnimalRepository defines persistence operations for animals
type AnimalRepository interface {
	// Create inserts the animal row only; parts are persisted through MeatPartRepository
	Create(ctx context.Context, animal *Animal) error
	FindByID(ctx context.Context, id uint) (*Animal, error)
	FindByName(ctx context.Context, name string) (*Animal, error)
	// FindAllWithParts returns every animal with its meat parts loaded
	FindAllWithParts(ctx context.Context) ([]Animal, error)
}

// MeatPartRepository defines persistence operations for meat parts
type MeatPartRepository interface {
	Create(ctx context.Context, part *MeatPart) error
	FindByID(ctx context.Context, id uint) (*MeatPart, error)
	FindAll(ctx context.Context) ([]MeatPart, error)
	FindByAnimalID(ctx context.Context, animalID uint) ([]MeatPart, error)
	FindByAnimalAndName(ctx context.Context, animalID uint, partName string) (*MeatPart, error)
}

// SeasoningPackageRepository defines persistence operations for seasoning packages
type SeasoningPackageRepository interface {
	Create(ctx context.Context, pkg *SeasoningPackage) error
	FindByID(ctx context.Context, id uint) (*SeasoningPackage, error)
	FindByName(ctx context.Context, name string) (*SeasoningPackage, error)
	FindAll(ctx context.Context) ([]SeasoningPackage, error)
}
