package persistence

import (
	"context"
	"errors"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAnimalRepository implements AnimalRepository using GORM
type GormAnimalRepository struct {
	db *gorm.DB
}

// NewGormAnimalRepository creates a new GormAnimalRepository
func NewGormAnimalRepository(db *gorm.DB) *GormAnimalRepository {
	return &GormAnimalRepository{db: db}
}

// Create inserts the animal row. Associated meat parts are not written.
func (r *GormAnimalRepository) Create(ctx context.Context, animal *catalog.Animal) error {
	return r.db.WithContext(ctx).Omit("MeatParts").Create(animal).Error
}

// FindByID finds an animal by its ID
func (r *GormAnimalRepository) FindByID(ctx context.Context, id uint) (*catalog.Animal, error) {
	var animal catalog.Animal
	if err := r.db.WithContext(ctx).First(&animal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Animal not found")
		}
		return nil, err
	}
	return &animal, nil
}

// FindByName finds the first animal with the given name
func (r *GormAnimalRepository) FindByName(ctx context.Context, name string) (*catalog.Animal, error) {
	var animal catalog.Animal
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").First(&animal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Animal not found")
		}
		return nil, err
	}
	return &animal, nil
}

// FindAllWithParts returns every animal ordered by id, parts preloaded
func (r *GormAnimalRepository) FindAllWithParts(ctx context.Context) ([]catalog.Animal, error) {
	var animals []catalog.Animal
	err := r.db.WithContext(ctx).
		Preload("MeatParts", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// Ensure GormAnimalRepository implements AnimalRepository
var _ catalog.AnimalRepository = (*GormAnimalRepository)(nil)
