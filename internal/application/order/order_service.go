package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MessageOrderPlaced is returned with every accepted order
const MessageOrderPlaced = "Order placed successfully!"

// DefaultMeatTypeAnimals maps each meat type to the animal its stock is cut from
func DefaultMeatTypeAnimals() map[order.MeatType]string {
	return map[order.MeatType]string{
		order.MeatGoat:    "Goat",
		order.MeatPork:    "Pig",
		order.MeatBeef:    "Cow",
		order.MeatChicken: "Chicken",
	}
}

// SalesRecorder receives a sample for every committed order
type SalesRecorder interface {
	RecordOrderPlaced(ctx context.Context, meatType string, pounds float64, totalJMD int64)
}

// Config holds the pricing and stock lookup rules for order placement
type Config struct {
	Prices          order.PriceList
	MeatTypeAnimals map[order.MeatType]string
}

// DefaultConfig returns the St. Thomas configuration
func DefaultConfig() Config {
	return Config{
		Prices:          order.DefaultPriceList(),
		MeatTypeAnimals: DefaultMeatTypeAnimals(),
	}
}

// OrderService places orders and manages their payment state
type OrderService struct {
	orderRepo      order.OrderRepository
	txScope        TransactionScope
	pins           order.PINGenerator
	config         Config
	eventPublisher shared.EventPublisher
	sales          SalesRecorder
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	txScope TransactionScope,
	pins order.PINGenerator,
	config Config,
	logger *zap.Logger,
) *OrderService {
	if pins == nil {
		pins = order.RandomPINGenerator{}
	}
	if config.MeatTypeAnimals == nil {
		config.MeatTypeAnimals = DefaultMeatTypeAnimals()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
		pins:      pins,
		config:    config,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetSalesRecorder sets the recorder notified after each committed order
func (s *OrderService) SetSalesRecorder(recorder SalesRecorder) {
	s.sales = recorder
}

// PlaceOrder prices the order, draws stock and stores the order in one transaction.
// Orders below the location minimum are rejected before anything is written.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	meat, err := order.ParseMeatType(req.MeatType)
	if err != nil {
		return nil, err
	}
	seasoning, err := order.ParseSeasoning(req.SeasoningPackage)
	if err != nil {
		return nil, err
	}
	pepper, err := order.ParsePepperLevel(req.PepperLevel)
	if err != nil {
		return nil, err
	}
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, shared.NewInvalidInputError("City cannot be empty")
	}

	pounds := decimal.NewFromFloat(req.Pounds)
	quote, err := s.config.Prices.Quote(meat, seasoning, pounds)
	if err != nil {
		return nil, err
	}

	customer := order.Customer{Name: req.CustomerName, PhoneNumber: req.PhoneNumber}
	placed, err := order.NewOrder(customer, s.config.Prices.Location, s.pins.Generate(), quote, nil)
	if err != nil {
		return nil, err
	}

	stockDrawn := false
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		animal := s.config.MeatTypeAnimals[meat]
		item, err := repos.InventoryRepo().FindSellableForAnimal(ctx, animal)
		switch {
		case err == nil:
			if _, err := item.Decrease(pounds); err != nil {
				return err
			}
			if err := repos.InventoryRepo().Save(ctx, item); err != nil {
				return fmt.Errorf("update inventory: %w", err)
			}
			partID := item.MeatPartID
			placed.Items[0].MeatPartID = &partID
			stockDrawn = true
		case errors.Is(err, shared.ErrNotFound):
			s.logger.Warn("No inventory for meat type; order recorded without stock",
				zap.String("meat_type", string(meat)),
				zap.String("animal", animal),
			)
		default:
			return fmt.Errorf("find inventory: %w", err)
		}

		if err := repos.OrderRepo().Create(ctx, placed); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", placed.ID),
		zap.String("meat_type", string(meat)),
		zap.String("pounds", pounds.String()),
		zap.Int64("total_cost_jmd", quote.TotalJMD()),
		zap.Bool("stock_drawn", stockDrawn),
	)
	s.publish(ctx, order.NewOrderPlacedEvent(placed, quote, stockDrawn))
	if s.sales != nil {
		s.sales.RecordOrderPlaced(ctx, string(meat), pounds.InexactFloat64(), quote.TotalJMD())
	}

	removed := req.RemoveItems
	if removed == nil {
		removed = []string{}
	}
	confirmation := order.Confirmation{
		CustomerName: placed.CustomerName,
		PhoneNumber:  placed.PhoneNumber,
		Pounds:       pounds.String(),
		MeatType:     meat,
		Seasoning:    seasoning,
		PepperLevel:  pepper,
		RemovedItems: removed,
		City:         city,
		Location:     placed.Location,
		TotalJMD:     quote.TotalJMD(),
		PIN:          placed.CustomerPIN,
	}

	return &PlaceOrderResponse{
		Message: MessageOrderPlaced,
		OrderID: placed.ID,
		OrderSummary: OrderSummary{
			CustomerName:     placed.CustomerName,
			PhoneNumber:      placed.PhoneNumber,
			MeatType:         string(meat),
			SeasoningPackage: string(seasoning),
			PepperLevel:      string(pepper),
			RemovedItems:     removed,
			Pounds:           pounds.InexactFloat64(),
			City:             city,
			Location:         placed.Location,
			PricePerPound:    quote.PricePerPound.InexactFloat64(),
			BaseCost:         quote.BaseCost.InexactFloat64(),
			SeasoningCost:    quote.SeasoningCost.InexactFloat64(),
			DeliveryFee:      quote.DeliveryFee.InexactFloat64(),
			TotalCostJMD:     quote.TotalJMD(),
			ConfirmationPIN:  placed.CustomerPIN,
		},
		WhatsAppLink: confirmation.WhatsAppLink(),
	}, nil
}

// ListOrders returns all orders, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAllWithItems(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// UpdatePaymentStatus sets whether an order has been paid
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id uint, paid bool) (*PaymentStatusResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.SetPaid(paid)
	if err := s.orderRepo.UpdatePayment(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order payment updated",
		zap.Uint("order_id", o.ID),
		zap.String("payment_status", o.PaymentStatus),
	)
	s.publish(ctx, order.NewOrderPaymentUpdatedEvent(o))

	return &PaymentStatusResponse{
		OrderID:       o.ID,
		IsPaid:        o.IsPaid,
		PaymentStatus: o.PaymentStatus,
		Message:       fmt.Sprintf("Order %d payment status updated to %s", o.ID, o.PaymentStatus),
	}, nil
}

// publish never fails the caller; the write it follows is already committed
func (s *OrderService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish domain event",
			zap.String("event_type", event.EventType()),
			zap.Uint("aggregate_id", event.AggregateID()),
			zap.Error(err),
		)
	}
}
