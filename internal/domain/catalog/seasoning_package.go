package catalog

import (
	"strings"

	"github.com/meatkonnex/backend/internal/domain/shared"
)

// SeasoningPackage is a named seasoning blend that pre-seasoned stock can carry.
type SeasoningPackage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Ingredients string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (SeasoningPackage) TableName() string {
	return "seasoning_packages"
}

// NewSeasoningPackage creates a seasoning package
func NewSeasoningPackage(name, ingredients string) (*SeasoningPackage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Seasoning package name cannot be empty")
	}
	return &SeasoningPackage{
		Name:        name,
		Ingredients: strings.TrimSpace(ingredients),
	}, nil
}
