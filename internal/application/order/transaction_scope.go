package order

import (
	"context"

	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/order"
)

// TransactionScope runs order placement against repositories sharing one transaction
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories scoped to the current transaction
type TransactionalRepositories interface {
	InventoryRepo() inventory.InventoryItemRepository
	OrderRepo() order.OrderRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// It is used in tests.
type NoOpTransactionScope struct {
	inventoryRepo inventory.InventoryItemRepository
	orderRepo     order.OrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(inventoryRepo inventory.InventoryItemRepository, orderRepo order.OrderRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{inventoryRepo: inventoryRepo, orderRepo: orderRepo}
}

// Execute runs fn directly without a transaction
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryItemRepository {
	return s.inventoryRepo
}

func (s *NoOpTransactionScope) OrderRepo() order.OrderRepository {
	return s.orderRepo
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
