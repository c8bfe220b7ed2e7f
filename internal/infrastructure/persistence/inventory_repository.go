package persistence

import (
	"context"
	"errors"

	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// Create inserts an inventory item
func (r *GormInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save writes every column of an existing inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByID finds an inventory item by ID regardless of its active flag
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uint) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Inventory not found")
		}
		return nil, err
	}
	return &item, nil
}

// FindActive returns active items ordered by id
func (r *GormInventoryItemRepository) FindActive(ctx context.Context) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsForMeatPart reports whether any inventory row references the part
func (r *GormInventoryItemRepository) ExistsForMeatPart(ctx context.Context, meatPartID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).
		Where("meat_part_id = ?", meatPartID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindSellableForAnimal joins inventory -> meat_parts -> animal on the animal's name.
// On PostgreSQL the inventory row is locked until the surrounding transaction ends.
func (r *GormInventoryItemRepository) FindSellableForAnimal(ctx context.Context, animalName string) (*inventory.InventoryItem, error) {
	query := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Select("inventory.*").
		Joins("JOIN meat_parts ON meat_parts.id = inventory.meat_part_id").
		Joins("JOIN animal ON animal.id = meat_parts.animal_id").
		Where("LOWER(animal.name) = LOWER(?) AND inventory.is_active = ?", animalName, true).
		Order("CASE WHEN meat_parts.part_name LIKE 'Standard%' THEN 0 ELSE 1 END, inventory.id")

	if IsPostgres(r.db) {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "inventory"}})
	}

	var item inventory.InventoryItem
	if err := query.Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("No inventory for " + animalName)
		}
		return nil, err
	}
	return &item, nil
}

type stockViewRow struct {
	InventoryID uint            `gorm:"column:inventory_id"`
	MeatPart    string          `gorm:"column:meat_part"`
	Animal      string          `gorm:"column:animal"`
	StockLb     decimal.Decimal `gorm:"column:stock_lb"`
	Seasoned    bool            `gorm:"column:seasoned"`
	Location    string          `gorm:"column:location"`
	IsActive    bool            `gorm:"column:is_active"`
}

// StockOverview returns every inventory row with part and animal names, ordered by id
func (r *GormInventoryItemRepository) StockOverview(ctx context.Context) ([]inventory.StockView, error) {
	var rows []stockViewRow
	err := r.db.WithContext(ctx).
		Table("inventory").
		Select(`inventory.id AS inventory_id, meat_parts.part_name AS meat_part, animal.name AS animal,
			inventory.current_stock_lb AS stock_lb, inventory.is_seasoned AS seasoned,
			inventory.location AS location, inventory.is_active AS is_active`).
		Joins("JOIN meat_parts ON meat_parts.id = inventory.meat_part_id").
		Joins("JOIN animal ON animal.id = meat_parts.animal_id").
		Order("inventory.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]inventory.StockView, len(rows))
	for i, row := range rows {
		views[i] = inventory.StockView(row)
	}
	return views, nil
}

var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
