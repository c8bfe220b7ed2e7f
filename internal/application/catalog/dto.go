package catalog

import (
	"time"

	"github.com/meatkonnex/backend/internal/domain/catalog"
)

// CreateMeatPartRequest is one part nested in CreateAnimalRequest
type CreateMeatPartRequest struct {
	PartName      string  `json:"part_name" binding:"required,max=100"`
	WeightLb      float64 `json:"weight_lb" binding:"gte=0"`
	PricePerLbJMD float64 `json:"price_per_lb_jmd" binding:"gte=0"`
}

// CreateAnimalRequest creates an animal together with the parts cut from it
type CreateAnimalRequest struct {
	Name             string                  `json:"name" binding:"required,max=100"`
	TotalWeightKg    float64                 `json:"total_weight_kg" binding:"gte=0"`
	PurchasePriceJMD float64                 `json:"purchase_price_jmd" binding:"gte=0"`
	DatePurchased    *time.Time              `json:"date_purchased"`
	MeatParts        []CreateMeatPartRequest `json:"meat_parts" binding:"omitempty,dive"`
}

// MeatPartResponse represents a meat part in API responses
type MeatPartResponse struct {
	ID            uint    `json:"id"`
	AnimalID      uint    `json:"animal_id"`
	PartName      string  `json:"part_name"`
	WeightLb      float64 `json:"weight_lb"`
	PricePerLbJMD float64 `json:"price_per_lb_jmd"`
}

// AnimalResponse represents an animal and its parts in API responses
type AnimalResponse struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	TotalWeightKg    float64            `json:"total_weight_kg"`
	PurchasePriceJMD float64            `json:"purchase_price_jmd"`
	DatePurchased    time.Time          `json:"date_purchased"`
	MeatParts        []MeatPartResponse `json:"meat_parts"`
}

// SeasoningPackageResponse represents a seasoning package in API responses
type SeasoningPackageResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// ToMeatPartResponse converts a domain MeatPart to its response
func ToMeatPartResponse(p *catalog.MeatPart) MeatPartResponse {
	return MeatPartResponse{
		ID:            p.ID,
		AnimalID:      p.AnimalID,
		PartName:      p.PartName,
		WeightLb:      p.WeightLb.InexactFloat64(),
		PricePerLbJMD: p.PricePerLbJMD.InexactFloat64(),
	}
}

// ToMeatPartResponses converts a slice of meat parts
func ToMeatPartResponses(parts []catalog.MeatPart) []MeatPartResponse {
	responses := make([]MeatPartResponse, len(parts))
	for i := range parts {
		responses[i] = ToMeatPartResponse(&parts[i])
	}
	return responses
}

// ToAnimalResponse converts a domain Animal to its response
func ToAnimalResponse(a *catalog.Animal) AnimalResponse {
	return AnimalResponse{
		ID:               a.ID,
		Name:             a.Name,
		TotalWeightKg:    a.TotalWeightKg.InexactFloat64(),
		PurchasePriceJMD: a.PurchasePriceJMD.InexactFloat64(),
		DatePurchased:    a.DatePurchased,
		MeatParts:        ToMeatPartResponses(a.MeatParts),
	}
}

// ToSeasoningPackageResponse converts a domain SeasoningPackage to its response
func ToSeasoningPackageResponse(p *catalog.SeasoningPackage) SeasoningPackageResponse {
	return SeasoningPackageResponse{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}
