package persistence

import (
	"context"

	appcatalog "github.com/meatkonnex/backend/internal/application/catalog"
	apporder "github.com/meatkonnex/backend/internal/application/order"
	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/inventory"
	"github.com/meatkonnex/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormTransactionScope implements the catalog and order TransactionScopes using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// CatalogScope returns the scope used when creating animals with their parts
func (s *GormTransactionScope) CatalogScope() appcatalog.TransactionScope {
	return catalogScope{db: s.db}
}

// OrderScope returns the scope used when placing orders
func (s *GormTransactionScope) OrderScope() apporder.TransactionScope {
	return orderScope{db: s.db}
}

type catalogScope struct {
	db *gorm.DB
}

// Execute runs fn in a transaction, rolling back if it returns an error.
func (s catalogScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type orderScope struct {
	db *gorm.DB
}

// Execute runs fn in a transaction, rolling back if it returns an error.
func (s orderScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AnimalRepo() catalog.AnimalRepository {
	return NewGormAnimalRepository(r.tx)
}

func (r *gormTransactionalRepositories) MeatPartRepo() catalog.MeatPartRepository {
	return NewGormMeatPartRepository(r.tx)
}

func (r *gormTransactionalRepositories) InventoryRepo() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

var (
	_ appcatalog.TransactionScope          = catalogScope{}
	_ apporder.TransactionScope            = orderScope{}
	_ appcatalog.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ apporder.TransactionalRepositories   = (*gormTransactionalRepositories)(nil)
)
