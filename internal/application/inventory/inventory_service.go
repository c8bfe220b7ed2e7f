package inventory

import (
	"context"
	"strings"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Messages returned by the activation operations
const (
	MessageSoftDeleted = "Inventory soft deleted"
	MessageRestored    = "Inventory restored"
)

// InventoryService handles inventory-related business operations
type InventoryService struct {
	inventoryRepo   inventory.InventoryItemRepository
	meatPartRepo    catalog.MeatPartRepository
	seasoningRepo   catalog.SeasoningPackageRepository
	defaultLocation string
	logger          *zap.Logger
}

// NewInventoryService creates a new InventoryService. Rows created without a
// location are placed at defaultLocation.
func NewInventoryService(
	inventoryRepo inventory.InventoryItemRepository,
	meatPartRepo catalog.MeatPartRepository,
	seasoningRepo catalog.SeasoningPackageRepository,
	defaultLocation string,
	logger *zap.Logger,
) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		inventoryRepo:   inventoryRepo,
		meatPartRepo:    meatPartRepo,
		seasoningRepo:   seasoningRepo,
		defaultLocation: defaultLocation,
		logger:          logger,
	}
}

// Create adds an active inventory row for an existing meat part
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryRequest) (*InventoryResponse, error) {
	if err := s.checkReferences(ctx, &req.MeatPartID, req.SeasoningPackageID); err != nil {
		return nil, err
	}

	location := req.Location
	if strings.TrimSpace(location) == "" {
		location = s.defaultLocation
	}

	item, err := inventory.NewInventoryItem(
		req.MeatPartID,
		decimal.NewFromFloat(req.CurrentStockLb),
		req.IsSeasoned,
		location,
		req.SeasoningPackageID,
	)
	if err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory created",
		zap.Uint("inventory_id", item.ID),
		zap.Uint("meat_part_id", item.MeatPartID),
		zap.String("stock_lb", item.CurrentStockLb.String()),
	)
	resp := ToInventoryResponse(item)
	return &resp, nil
}

// ListActive returns every inventory row that has not been soft deleted
func (s *InventoryService) ListActive(ctx context.Context) ([]InventoryResponse, error) {
	items, err := s.inventoryRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]InventoryResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryResponse(&items[i])
	}
	return responses, nil
}

// GetByID returns one inventory row, active or not
func (s *InventoryService) GetByID(ctx context.Context, id uint) (*InventoryResponse, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInventoryResponse(item)
	return &resp, nil
}

// Update applies an allow-listed patch to an inventory row
func (s *InventoryService) Update(ctx context.Context, id uint, patch inventory.Patch) (*InventoryResponse, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, patch.MeatPartID, patch.SeasoningPackageID); err != nil {
		return nil, err
	}
	if err := item.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToInventoryResponse(item)
	return &resp, nil
}

// SoftDelete marks an inventory row inactive
func (s *InventoryService) SoftDelete(ctx context.Context, id uint) (string, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	item.Deactivate()
	if err := s.inventoryRepo.Save(ctx, item); err != nil {
		return "", err
	}
	s.logger.Info("Inventory soft deleted", zap.Uint("inventory_id", id))
	return MessageSoftDeleted, nil
}

// Restore re-activates a soft deleted inventory row
func (s *InventoryService) Restore(ctx context.Context, id uint) (string, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	item.Restore()
	if err := s.inventoryRepo.Save(ctx, item); err != nil {
		return "", err
	}
	s.logger.Info("Inventory restored", zap.Uint("inventory_id", id))
	return MessageRestored, nil
}

// StockOverview returns every inventory row joined with its part and animal names
func (s *InventoryService) StockOverview(ctx context.Context) ([]StockViewResponse, error) {
	views, err := s.inventoryRepo.StockOverview(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]StockViewResponse, len(views))
	for i, v := range views {
		responses[i] = ToStockViewResponse(v)
	}
	return responses, nil
}

func (s *InventoryService) checkReferences(ctx context.Context, meatPartID, seasoningPackageID *uint) error {
	if meatPartID != nil && *meatPartID != 0 {
		if _, err := s.meatPartRepo.FindByID(ctx, *meatPartID); err != nil {
			return err
		}
	}
	if seasoningPackageID != nil {
		if _, err := s.seasoningRepo.FindByID(ctx, *seasoningPackageID); err != nil {
			return err
		}
	}
	return nil
}
