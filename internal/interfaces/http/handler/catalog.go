package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/meatkonnex/backend/internal/application/catalog"
)

// CatalogHandler handles animals, meat parts and seasoning packages
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateAnimal godoc
// @ID           createAnimal
// @Summary      Record a purchased animal with its meat parts
// @Description  The animal and every nested part are stored in one transaction
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateAnimalRequest true "Animal with parts"
// @Success      201 {object} APIResponse[catalogapp.AnimalResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /animals [post]
func (h *CatalogHandler) CreateAnimal(c *gin.Context) {
	var req catalogapp.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	animal, err := h.catalogService.CreateAnimal(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, animal)
}

// ListAnimals godoc
// @ID           listAnimals
// @Summary      List animals with their meat parts
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.AnimalResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /animals [get]
func (h *CatalogHandler) ListAnimals(c *gin.Context) {
	animals, err := h.catalogService.ListAnimals(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, animals)
}

// ListMeatParts godoc
// @ID           listMeatParts
// @Summary      List all meat parts
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.MeatPartResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /meat_parts [get]
func (h *CatalogHandler) ListMeatParts(c *gin.Context) {
	parts, err := h.catalogService.ListMeatParts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, parts)
}

// ListMeatPartsByAnimal godoc
// @ID           listMeatPartsByAnimal
// @Summary      List the meat parts of one animal
// @Tags         catalog
// @Produce      json
// @Param        animal_id path int true "Animal ID"
// @Success      200 {object} APIResponse[[]catalogapp.MeatPartResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /meat_parts/{animal_id} [get]
func (h *CatalogHandler) ListMeatPartsByAnimal(c *gin.Context) {
	animalID, ok := h.parseID(c, "animal_id")
	if !ok {
		return
	}

	parts, err := h.catalogService.ListMeatPartsByAnimal(c.Request.Context(), animalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, parts)
}

// ListSeasoningPackages godoc
// @ID           listSeasoningPackages
// @Summary      List seasoning packages
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.SeasoningPackageResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /seasonings [get]
func (h *CatalogHandler) ListSeasoningPackages(c *gin.Context) {
	packages, err := h.catalogService.ListSeasoningPackages(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, packages)
}
