package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogService manages animals, the meat parts cut from them, and seasoning packages
type CatalogService struct {
	animalRepo    catalog.AnimalRepository
	meatPartRepo  catalog.MeatPartRepository
	seasoningRepo catalog.SeasoningPackageRepository
	txScope       TransactionScope
	logger        *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	animalRepo catalog.AnimalRepository,
	meatPartRepo catalog.MeatPartRepository,
	seasoningRepo catalog.SeasoningPackageRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		animalRepo:    animalRepo,
		meatPartRepo:  meatPartRepo,
		seasoningRepo: seasoningRepo,
		txScope:       txScope,
		logger:        logger,
	}
}

// CreateAnimal persists an animal and all of its parts in one transaction
func (s *CatalogService) CreateAnimal(ctx context.Context, req CreateAnimalRequest) (*AnimalResponse, error) {
	var purchased time.Time
	if req.DatePurchased != nil {
		purchased = *req.DatePurchased
	}

	animal, err := catalog.NewAnimal(
		req.Name,
		decimal.NewFromFloat(req.TotalWeightKg),
		decimal.NewFromFloat(req.PurchasePriceJMD),
		purchased,
	)
	if err != nil {
		return nil, err
	}
	for _, p := range req.MeatParts {
		if _, err := animal.AddPart(p.PartName, decimal.NewFromFloat(p.WeightLb), decimal.NewFromFloat(p.PricePerLbJMD)); err != nil {
			return nil, err
		}
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.AnimalRepo().Create(ctx, animal); err != nil {
			return fmt.Errorf("create animal: %w", err)
		}
		for i := range animal.MeatParts {
			animal.MeatParts[i].AnimalID = animal.ID
			if err := repos.MeatPartRepo().Create(ctx, &animal.MeatParts[i]); err != nil {
				return fmt.Errorf("create meat part %q: %w", animal.MeatParts[i].PartName, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Animal created",
		zap.Uint("animal_id", animal.ID),
		zap.String("name", animal.Name),
		zap.Int("meat_parts", len(animal.MeatParts)),
	)

	resp := ToAnimalResponse(animal)
	return &resp, nil
}

// ListAnimals returns every animal with its meat parts
func (s *CatalogService) ListAnimals(ctx context.Context) ([]AnimalResponse, error) {
	animals, err := s.animalRepo.FindAllWithParts(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = ToAnimalResponse(&animals[i])
	}
	return responses, nil
}

// ListMeatParts returns every meat part
func (s *CatalogService) ListMeatParts(ctx context.Context) ([]MeatPartResponse, error) {
	parts, err := s.meatPartRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToMeatPartResponses(parts), nil
}

// ListMeatPartsByAnimal returns the parts of one animal. An unknown animal yields an empty list.
func (s *CatalogService) ListMeatPartsByAnimal(ctx context.Context, animalID uint) ([]MeatPartResponse, error) {
	parts, err := s.meatPartRepo.FindByAnimalID(ctx, animalID)
	if err != nil {
		return nil, err
	}
	return ToMeatPartResponses(parts), nil
}

// ListSeasoningPackages returns every seasoning package
func (s *CatalogService) ListSeasoningPackages(ctx context.Context) ([]SeasoningPackageResponse, error) {
	pkgs, err := s.seasoningRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]SeasoningPackageResponse, len(pkgs))
	for i := range pkgs {
		responses[i] = ToSeasoningPackageResponse(&pkgs[i])
	}
	return responses, nil
}
