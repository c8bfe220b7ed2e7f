package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/meatkonnex/backend/internal/application/inventory"
	"github.com/meatkonnex/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles inventory-related API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create godoc
// @ID           createInventory
// @Summary      Create an inventory row
// @Description  New rows are always active
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateInventoryRequest true "Inventory row"
// @Success      201 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// ListActive godoc
// @ID           listInventory
// @Summary      List active inventory
// @Tags         inventory
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.InventoryResponse]
// @Router       /inventory [get]
func (h *InventoryHandler) ListActive(c *gin.Context) {
	items, err := h.inventoryService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Overview godoc
// @ID           getInventoryOverview
// @Summary      Stock overview
// @Description  Inventory joined with meat part and animal names
// @Tags         inventory
// @Produce      json
// @Success      200 {object} APIResponse[[]inventoryapp.StockViewResponse]
// @Router       /inventory/overview [get]
func (h *InventoryHandler) Overview(c *gin.Context) {
	rows, err := h.inventoryService.StockOverview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// GetByID godoc
// @ID           getInventory
// @Summary      Get an inventory row
// @Tags         inventory
// @Produce      json
// @Param        id path int true "Inventory ID"
// @Success      200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.inventoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Update godoc
// @ID           updateInventory
// @Summary      Patch an inventory row
// @Description  Accepts current_stock_lb, is_seasoned, location, meat_part_id and seasoning_package_id.
// @Description  Any other key, is_active included, is rejected.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Inventory ID"
// @Param        request body object true "Fields to change"
// @Success      200 {object} APIResponse[inventoryapp.InventoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.BindingError(c, err)
		return
	}
	patch, err := inventoryapp.ParsePatch(body)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	item, err := h.inventoryService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// SoftDelete godoc
// @ID           deleteInventory
// @Summary      Deactivate an inventory row
// @Tags         inventory
// @Produce      json
// @Param        id path int true "Inventory ID"
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/{id} [delete]
func (h *InventoryHandler) SoftDelete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	msg, err := h.inventoryService.SoftDelete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: msg})
}

// Restore godoc
// @ID           restoreInventory
// @Summary      Reactivate an inventory row
// @Tags         inventory
// @Produce      json
// @Param        id path int true "Inventory ID"
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/restore/{id} [put]
func (h *InventoryHandler) Restore(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	msg, err := h.inventoryService.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: msg})
}
