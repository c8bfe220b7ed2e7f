package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/meatkonnex/backend/internal/application/order"
)

// OrderHandler handles order placement and payment tracking
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// MarkPaidResponse confirms a payment flag change
// @name HandlerMarkPaidResponse
type MarkPaidResponse struct {
	Message string `json:"message" example:"Payment status updated"`
	Paid    bool   `json:"paid" example:"true"`
}

// PlaceOrder godoc
// @ID           placeOrder
// @Summary      Place a customer order
// @Description  Prices the order, draws down stock and returns a confirmation PIN with a WhatsApp link
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body orderapp.PlaceOrderRequest true "Order form"
// @Success      201 {object} APIResponse[orderapp.PlaceOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /order [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListOrders godoc
// @ID           listOrders
// @Summary      List all orders
// @Description  Newest first, with each line's meat part name or "N/A"
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[[]orderapp.OrderResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// UpdatePaymentStatus godoc
// @ID           updateOrderPaymentStatus
// @Summary      Set an order's payment status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Order ID"
// @Param        request body orderapp.UpdatePaymentStatusRequest true "Payment flag"
// @Success      200 {object} APIResponse[orderapp.PaymentStatusResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admin/orders/{id}/payment-status [put]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req orderapp.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), id, *req.IsPaid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid godoc
// @ID           markOrderPaid
// @Summary      Mark an order paid or unpaid
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Order ID"
// @Param        request body orderapp.MarkPaidRequest true "Payment flag, as an object or a bare boolean"
// @Success      200 {object} APIResponse[MarkPaidResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{id}/paid [post]
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req orderapp.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), id, *req.Paid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MarkPaidResponse{Message: "Payment status updated", Paid: resp.IsPaid})
}
