package persistence

import (
	"context"
	"errors"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMeatPartRepository implements MeatPartRepository using GORM
type GormMeatPartRepository struct {
	db *gorm.DB
}

// NewGormMeatPartRepository creates a new GormMeatPartRepository
func NewGormMeatPartRepository(db *gorm.DB) *GormMeatPartRepository {
	return &GormMeatPartRepository{db: db}
}

// Create inserts a meat part
func (r *GormMeatPartRepository) Create(ctx context.Context, part *catalog.MeatPart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// FindByID finds a meat part by its ID
func (r *GormMeatPartRepository) FindByID(ctx context.Context, id uint) (*catalog.MeatPart, error) {
	var part catalog.MeatPart
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Meat part not found")
		}
		return nil, err
	}
	return &part, nil
}

// FindAll returns every meat part ordered by id
func (r *GormMeatPartRepository) FindAll(ctx context.Context) ([]catalog.MeatPart, error) {
	var parts []catalog.MeatPart
	if err := r.db.WithContext(ctx).Order("id").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// FindByAnimalID returns the parts cut from one animal
func (r *GormMeatPartRepository) FindByAnimalID(ctx context.Context, animalID uint) ([]catalog.MeatPart, error) {
	var parts []catalog.MeatPart
	if err := r.db.WithContext(ctx).Where("animal_id = ?", animalID).Order("id").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// FindByAnimalAndName finds a part of an animal by its name
func (r *GormMeatPartRepository) FindByAnimalAndName(ctx context.Context, animalID uint, partName string) (*catalog.MeatPart, error) {
	var part catalog.MeatPart
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND part_name = ?", animalID, partName).
		Order("id").
		First(&part).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Meat part not found")
		}
		return nil, err
	}
	return &part, nil
}

var _ catalog.MeatPartRepository = (*GormMeatPartRepository)(nil)
