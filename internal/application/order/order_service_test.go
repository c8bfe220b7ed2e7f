package order

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	err    error
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return m.err
}

func (m *MockEventPublisher) GetEvents() []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, len(m.events))
	copy(result, m.events)
	return result
}

type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
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

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllWithItems(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdatePayment(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type recordedSale struct {
	meatType string
	pounds   float64
	total    int64
}

type fakeSalesRecorder struct {
	sales []recordedSale
}

func (f *fakeSalesRecorder) RecordOrderPlaced(_ context.Context, meatType string, pounds float64, totalJMD int64) {
	f.sales = append(f.sales, recordedSale{meatType, pounds, totalJMD})
}

type orderFixture struct {
	svc       *OrderService
	invRepo   *MockInventoryItemRepository
	orderRepo *MockOrderRepository
	publisher *MockEventPublisher
	sales     *fakeSalesRecorder
	logs      *observer.ObservedLogs
}

func newOrderFixture() orderFixture {
	core, logs := observer.New(zap.InfoLevel)
	f := orderFixture{
		invRepo:   new(MockInventoryItemRepository),
		orderRepo: new(MockOrderRepository),
		publisher: &MockEventPublisher{},
		sales:     &fakeSalesRecorder{},
		logs:      logs,
	}
	scope := NewNoOpTransactionScope(f.invRepo, f.orderRepo)
	f.svc = NewOrderService(f.orderRepo, scope, order.FixedPINGenerator("4821"), DefaultConfig(), zap.New(core))
	f.svc.SetEventPublisher(f.publisher)
	f.svc.SetSalesRecorder(f.sales)
	return f
}

func goatRequest(pounds float64) PlaceOrderRequest {
	return PlaceOrderRequest{
		CustomerName:     "Andre",
		PhoneNumber:      "8765551234",
		MeatType:         "goat",
		SeasoningPackage: "curry",
		PepperLevel:      "hot",
		RemoveItems:      []string{"skin"},
		Pounds:           pounds,
		City:             "Morant Bay",
	}
}

func expectOrderCreate(f orderFixture, id uint) {
	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*order.Order).ID = id }).
		Return(nil).Once()
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("prices, draws stock and publishes", func(t *testing.T) {
		f := newOrderFixture()
		stock := &inventory.InventoryItem{ID: 2, MeatPartID: 6, CurrentStockLb: decimal.NewFromInt(20), Location: "St. Thomas", IsActive: true}
		f.invRepo.On("FindSellableForAnimal", ctx, "Goat").Return(stock, nil)
		f.invRepo.On("Save", ctx, stock).Return(nil)
		expectOrderCreate(f, 41)

		resp, err := f.svc.PlaceOrder(ctx, goatRequest(5))

		require.NoError(t, err)
		assert.Equal(t, "Order placed successfully!", resp.Message)
		assert.Equal(t, uint(41), resp.OrderID)
		assert.Equal(t, int64(7550), resp.OrderSummary.TotalCostJMD)
		assert.Equal(t, 1400.0, resp.OrderSummary.PricePerPound)
		assert.Equal(t, 7000.0, resp.OrderSummary.BaseCost)
		assert.Equal(t, 250.0, resp.OrderSummary.SeasoningCost)
		assert.Equal(t, 300.0, resp.OrderSummary.DeliveryFee)
		assert.Equal(t, "St. Thomas", resp.OrderSummary.Location)
		assert.Equal(t, "4821", resp.OrderSummary.ConfirmationPIN)
		assert.True(t, stock.CurrentStockLb.Equal(decimal.NewFromInt(15)))

		created := f.orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		require.Len(t, created.Items, 1)
		require.NotNil(t, created.Items[0].MeatPartID)
		assert.Equal(t, uint(6), *created.Items[0].MeatPartID)
		assert.True(t, created.Items[0].TotalPrice.Equal(decimal.NewFromInt(7250)))
		assert.Equal(t, "curry", created.Items[0].Seasonings)

		events := f.publisher.GetEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventTypeOrderPlaced, events[0].EventType())
		assert.Equal(t, uint(41), events[0].AggregateID())

		require.Len(t, f.sales.sales, 1)
		assert.Equal(t, recordedSale{"goat", 5, 7550}, f.sales.sales[0])

		require.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/8765551234?text="))
		assert.NotContains(t, resp.WhatsAppLink, " ")
		u, err := url.Parse(resp.WhatsAppLink)
		require.NoError(t, err)
		text := u.Query().Get("text")
		assert.Contains(t, text, "Thank you, Andre!")
		assert.Contains(t, text, "with curry seasoning (removed: skin)")
		assert.Contains(t, text, "Total: JMD 7550")
		assert.Contains(t, text, "PIN: 4821")
	})

	t.Run("below minimum is rejected before any write", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.svc.PlaceOrder(ctx, goatRequest(4.5))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MINIMUM_ORDER", domainErr.Code)
		assert.Equal(t, "Minimum order for St. Thomas is 5 lbs.", domainErr.Message)
		f.invRepo.AssertNotCalled(t, "FindSellableForAnimal", mock.Anything, mock.Anything)
		f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, f.publisher.GetEvents())
	})

	t.Run("missing inventory still records the order", func(t *testing.T) {
		f := newOrderFixture()
		f.invRepo.On("FindSellableForAnimal", ctx, "Chicken").Return(nil, shared.NewNotFoundError("No inventory for Chicken"))
		expectOrderCreate(f, 3)

		req := goatRequest(6)
		req.MeatType = "chicken"
		req.SeasoningPackage = "none"
		resp, err := f.svc.PlaceOrder(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(6*400+300), resp.OrderSummary.TotalCostJMD)
		created := f.orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Nil(t, created.Items[0].MeatPartID)
		assert.False(t, created.Items[0].Seasoned)
		f.invRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Equal(t, 1, f.logs.FilterMessage("No inventory for meat type; order recorded without stock").Len())
	})

	t.Run("stock is clamped at zero", func(t *testing.T) {
		f := newOrderFixture()
		stock := &inventory.InventoryItem{ID: 1, MeatPartID: 1, CurrentStockLb: decimal.NewFromInt(3), Location: "St. Thomas", IsActive: true}
		f.invRepo.On("FindSellableForAnimal", ctx, "Cow").Return(stock, nil)
		f.invRepo.On("Save", ctx, stock).Return(nil)
		expectOrderCreate(f, 9)

		req := goatRequest(8)
		req.MeatType = "beef"
		_, err := f.svc.PlaceOrder(ctx, req)

		require.NoError(t, err)
		assert.True(t, stock.CurrentStockLb.IsZero())
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		f := newOrderFixture()
		f.invRepo.On("FindSellableForAnimal", ctx, "Pig").Return(nil, errors.New("connection reset"))

		req := goatRequest(5)
		req.MeatType = "pork"
		_, err := f.svc.PlaceOrder(ctx, req)

		require.Error(t, err)
		f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, f.publisher.GetEvents())
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		f := newOrderFixture()
		f.publisher.err = errors.New("broker down")
		f.invRepo.On("FindSellableForAnimal", ctx, "Goat").Return(nil, shared.NewNotFoundError("none"))
		expectOrderCreate(f, 12)

		resp, err := f.svc.PlaceOrder(ctx, goatRequest(5))

		require.NoError(t, err)
		assert.Equal(t, uint(12), resp.OrderID)
		assert.Equal(t, 1, f.logs.FilterMessage("Failed to publish domain event").Len())
	})

	invalid := []struct {
		name   string
		mutate func(*PlaceOrderRequest)
	}{
		{"unknown meat type", func(r *PlaceOrderRequest) { r.MeatType = "mutton" }},
		{"unknown seasoning", func(r *PlaceOrderRequest) { r.SeasoningPackage = "jerk" }},
		{"unknown pepper level", func(r *PlaceOrderRequest) { r.PepperLevel = "scotch" }},
		{"blank city", func(r *PlaceOrderRequest) { r.City = "  " }},
		{"short phone", func(r *PlaceOrderRequest) { r.PhoneNumber = "876555" }},
		{"blank name", func(r *PlaceOrderRequest) { r.CustomerName = "" }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture()
			req := goatRequest(5)
			tt.mutate(&req)

			_, err := f.svc.PlaceOrder(ctx, req)

			assert.ErrorIs(t, err, shared.ErrInvalidInput)
			f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_PlaceOrder_TotalFormula(t *testing.T) {
	ctx := context.Background()
	prices := order.DefaultPriceList()

	for _, meat := range []string{"goat", "pork", "beef", "chicken"} {
		for _, seasoning := range []string{"none", "basic", "curry", "brown_stew"} {
			for _, pounds := range []float64{5, 7.5, 12} {
				f := newOrderFixture()
				f.invRepo.On("FindSellableForAnimal", ctx, mock.Anything).Return(nil, shared.NewNotFoundError("none"))
				expectOrderCreate(f, 1)

				req := goatRequest(pounds)
				req.MeatType = meat
				req.SeasoningPackage = seasoning
				resp, err := f.svc.PlaceOrder(ctx, req)
				require.NoError(t, err)

				want := prices.PerPound[order.MeatType(meat)].Mul(decimal.NewFromFloat(pounds)).
					Add(prices.SeasoningFees[order.Seasoning(seasoning)]).
					Add(prices.DeliveryFee).IntPart()
				assert.Equal(t, want, resp.OrderSummary.TotalCostJMD, "%s/%s/%v", meat, seasoning, pounds)
			}
		}
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	partID := uint(4)
	f.orderRepo.On("FindAllWithItems", ctx).Return([]order.Order{
		{
			ID: 2, CustomerName: "B", IsPaid: true, PaymentStatus: order.PaymentPaid,
			Items: []order.OrderItem{{MeatPartID: &partID, MeatPart: &catalog.MeatPart{ID: 4, PartName: "Oxtail"}, PoundsOrdered: decimal.NewFromInt(6)}},
		},
		{
			ID: 1, CustomerName: "A", PaymentStatus: order.PaymentUnpaid,
			Items: []order.OrderItem{{PoundsOrdered: decimal.NewFromInt(5)}},
		},
	}, nil)

	orders, err := f.svc.ListOrders(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Oxtail", orders[0].Items[0].MeatPart)
	assert.Equal(t, "N/A", orders[1].Items[0].MeatPart)
	assert.Equal(t, 6.0, orders[0].Items[0].PoundsOrdered)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("marks paid and publishes", func(t *testing.T) {
		f := newOrderFixture()
		o := &order.Order{ID: 8, PaymentStatus: order.PaymentUnpaid}
		f.orderRepo.On("FindByID", ctx, uint(8)).Return(o, nil)
		f.orderRepo.On("UpdatePayment", ctx, o).Return(nil)

		resp, err := f.svc.UpdatePaymentStatus(ctx, 8, true)

		require.NoError(t, err)
		assert.True(t, resp.IsPaid)
		assert.Equal(t, "paid", resp.PaymentStatus)
		assert.Equal(t, "Order 8 payment status updated to paid", resp.Message)
		events := f.publisher.GetEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventTypeOrderPaymentUpdated, events[0].EventType())
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.NewNotFoundError("Order not found"))

		_, err := f.svc.UpdatePaymentStatus(ctx, 99, true)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.orderRepo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything)
	})
}
