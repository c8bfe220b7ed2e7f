package catalog

import (
	"context"

	"github.com/meatkonnex/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to catalog repositories.
// All repository operations inside Execute commit or roll back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes catalog repositories bound to one transaction
type TransactionalRepositories interface {
	AnimalRepo() catalog.AnimalRepository
	MeatPartRepo() catalog.MeatPartRepository
}

// NoOpTransactionScope runs the function against plain repositories without a transaction
type NoOpTransactionScope struct {
	animalRepo   catalog.AnimalRepository
	meatPartRepo catalog.MeatPartRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(animalRepo catalog.AnimalRepository, meatPartRepo catalog.MeatPartRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{animalRepo: animalRepo, meatPartRepo: meatPartRepo}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AnimalRepo() catalog.AnimalRepository {
	return s.animalRepo
}

func (s *NoOpTransactionScope) MeatPartRepo() catalog.MeatPartRepository {
	return s.meatPartRepo
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
