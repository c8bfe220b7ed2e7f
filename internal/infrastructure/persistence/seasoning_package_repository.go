package persistence

import (
	"context"
	"errors"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSeasoningPackageRepository implements SeasoningPackageRepository using GORM
type GormSeasoningPackageRepository struct {
	db *gorm.DB
}

// NewGormSeasoningPackageRepository creates a new GormSeasoningPackageRepository
func NewGormSeasoningPackageRepository(db *gorm.DB) *GormSeasoningPackageRepository {
	return &GormSeasoningPackageRepository{db: db}
}

func (r *GormSeasoningPackageRepository) Create(ctx context.Context, pkg *catalog.SeasoningPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *GormSeasoningPackageRepository) FindByID(ctx context.Context, id uint) (*catalog.SeasoningPackage, error) {
	var pkg catalog.SeasoningPackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Seasoning package not found")
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *GormSeasoningPackageRepository) FindByName(ctx context.Context, name string) (*catalog.SeasoningPackage, error) {
	var pkg catalog.SeasoningPackage
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Seasoning package not found")
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *GormSeasoningPackageRepository) FindAll(ctx context.Context) ([]catalog.SeasoningPackage, error) {
	var pkgs []catalog.SeasoningPackage
	if err := r.db.WithContext(ctx).Order("id").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

var _ catalog.SeasoningPackageRepository = (*GormSeasoningPackageRepository)(nil)
