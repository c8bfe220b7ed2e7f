package inventory

import (
	"context"
	"testing"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// MockInventoryItemRepository is a mock implementation of InventoryItemRepository
type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) FindByID(ctx context.Context, id uint) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindActive(ctx context.Context) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) ExistsForMeatPart(ctx context.Context, meatPartID uint) (bool, error) {
	args := m.Called(ctx, meatPartID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryItemRepository) FindSellableForAnimal(ctx context.Context, animalName string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, animalName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) StockOverview(ctx context.Context) ([]inventory.StockView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.StockView), args.Error(1)
}

// MockMeatPartRepository is a mock implementation of catalog.MeatPartRepository
type MockMeatPartRepository struct {
	mock.Mock
}

func (m *MockMeatPartRepository) Create(ctx context.Context, part *catalog.MeatPart) error {
	return m.Called(ctx, part).Error(0)
}

func (m *MockMeatPartRepository) FindByID(ctx context.Context, id uint) (*catalog.MeatPart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MeatPart), args.Error(1)
}

func (m *MockMeatPartRepository) FindAll(ctx context.Context) ([]catalog.MeatPart, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.MeatPart), args.Error(1)
}

func (m *MockMeatPartRepository) FindByAnimalID(ctx context.Context, animalID uint) ([]catalog.MeatPart, error) {
	args := m.Called(ctx, animalID)
	return args.Get(0).([]catalog.MeatPart), args.Error(1)
}

func (m *MockMeatPartRepository) FindByAnimalAndName(ctx context.Context, animalID uint, partName string) (*catalog.MeatPart, error) {
	args := m.Called(ctx, animalID, partName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MeatPart), args.Error(1)
}

// MockSeasoningPackageRepository is a mock implementation of catalog.SeasoningPackageRepository
type MockSeasoningPackageRepository struct {
	mock.Mock
}

func (m *MockSeasoningPackageRepository) Create(ctx context.Context, pkg *catalog.SeasoningPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *MockSeasoningPackageRepository) FindByID(ctx context.Context, id uint) (*catalog.SeasoningPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SeasoningPackage), args.Error(1)
}

func (m *MockSeasoningPackageRepository) FindByName(ctx context.Context, name string) (*catalog.SeasoningPackage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SeasoningPackage), args.Error(1)
}

func (m *MockSeasoningPackageRepository) FindAll(ctx context.Context) ([]catalog.SeasoningPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.SeasoningPackage), args.Error(1)
}

type serviceFixture struct {
	svc           *InventoryService
	invRepo       *MockInventoryItemRepository
	partRepo      *MockMeatPartRepository
	seasoningRepo *MockSeasoningPackageRepository
	logs          *observer.ObservedLogs
}

func newServiceFixture() serviceFixture {
	core, logs := observer.New(zap.InfoLevel)
	f := serviceFixture{
		invRepo:       new(MockInventoryItemRepository),
		partRepo:      new(MockMeatPartRepository),
		seasoningRepo: new(MockSeasoningPackageRepository),
		logs:          logs,
	}
	f.svc = NewInventoryService(f.invRepo, f.partRepo, f.seasoningRepo, "St. Thomas", zap.New(core))
	return f
}

func stockItem(id uint, stock int64) *inventory.InventoryItem {
	return &inventory.InventoryItem{
		ID:             id,
		MeatPartID:     3,
		CurrentStockLb: decimal.NewFromInt(stock),
		Location:       "St. Thomas",
		IsActive:       true,
	}
}

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active row at default location", func(t *testing.T) {
		f := newServiceFixture()
		f.partRepo.On("FindByID", ctx, uint(3)).Return(&catalog.MeatPart{ID: 3}, nil)
		f.invRepo.On("Create", ctx, mock.AnythingOfType("*inventory.InventoryItem")).
			Run(func(args mock.Arguments) { args.Get(1).(*inventory.InventoryItem).ID = 11 }).
			Return(nil)

		resp, err := f.svc.Create(ctx, CreateInventoryRequest{MeatPartID: 3, CurrentStockLb: 20})

		require.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "St. Thomas", resp.Location)
		assert.Equal(t, 20.0, resp.CurrentStockLb)
		assert.Equal(t, 1, f.logs.FilterMessage("Inventory created").Len())
	})

	t.Run("unknown meat part", func(t *testing.T) {
		f := newServiceFixture()
		f.partRepo.On("FindByID", ctx, uint(3)).Return(nil, shared.NewNotFoundError("Meat part not found"))

		_, err := f.svc.Create(ctx, CreateInventoryRequest{MeatPartID: 3})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.invRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown seasoning package", func(t *testing.T) {
		f := newServiceFixture()
		pkgID := uint(9)
		f.partRepo.On("FindByID", ctx, uint(3)).Return(&catalog.MeatPart{ID: 3}, nil)
		f.seasoningRepo.On("FindByID", ctx, pkgID).Return(nil, shared.NewNotFoundError("Seasoning package not found"))

		_, err := f.svc.Create(ctx, CreateInventoryRequest{MeatPartID: 3, SeasoningPackageID: &pkgID})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInventoryService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	f.invRepo.On("FindByID", ctx, uint(404)).Return(nil, shared.NewNotFoundError("Inventory not found"))

	_, err := f.svc.GetByID(ctx, 404)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Inventory not found", domainErr.Message)
}

func TestInventoryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only present fields", func(t *testing.T) {
		f := newServiceFixture()
		item := stockItem(1, 20)
		f.invRepo.On("FindByID", ctx, uint(1)).Return(item, nil)
		f.invRepo.On("Save", ctx, item).Return(nil)

		patch, err := ParsePatch([]byte(`{"current_stock_lb": 12.5}`))
		require.NoError(t, err)

		resp, err := f.svc.Update(ctx, 1, patch)

		require.NoError(t, err)
		assert.Equal(t, 12.5, resp.CurrentStockLb)
		assert.Equal(t, "St. Thomas", resp.Location)
		assert.True(t, resp.IsActive)
	})

	t.Run("negative stock leaves row untouched", func(t *testing.T) {
		f := newServiceFixture()
		item := stockItem(1, 20)
		f.invRepo.On("FindByID", ctx, uint(1)).Return(item, nil)

		patch, err := ParsePatch([]byte(`{"current_stock_lb": -1}`))
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, 1, patch)

		require.Error(t, err)
		assert.True(t, item.CurrentStockLb.Equal(decimal.NewFromInt(20)))
		f.invRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("new meat part must exist", func(t *testing.T) {
		f := newServiceFixture()
		f.invRepo.On("FindByID", ctx, uint(1)).Return(stockItem(1, 20), nil)
		f.partRepo.On("FindByID", ctx, uint(77)).Return(nil, shared.NewNotFoundError("Meat part not found"))

		patch, err := ParsePatch([]byte(`{"meat_part_id": 77}`))
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, 1, patch)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInventoryService_SoftDeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	item := stockItem(5, 8)
	f.invRepo.On("FindByID", ctx, uint(5)).Return(item, nil)
	f.invRepo.On("Save", ctx, item).Return(nil)

	msg, err := f.svc.SoftDelete(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Inventory soft deleted", msg)
	assert.False(t, item.IsActive)

	msg, err = f.svc.Restore(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Inventory restored", msg)
	assert.True(t, item.IsActive)
	assert.True(t, item.CurrentStockLb.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "St. Thomas", item.Location)
}

func TestInventoryService_ListActiveAndOverview(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	f.invRepo.On("FindActive", ctx).Return([]inventory.InventoryItem{*stockItem(1, 20), *stockItem(2, 0)}, nil)
	f.invRepo.On("StockOverview", ctx).Return([]inventory.StockView{
		{InventoryID: 1, MeatPart: "Standard Goat Meat", Animal: "Goat", StockLb: decimal.NewFromInt(20), Location: "St. Thomas", IsActive: true},
	}, nil)

	active, err := f.svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	overview, err := f.svc.StockOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, "Goat", overview[0].Animal)
	assert.Equal(t, 20.0, overview[0].StockLb)
}
