package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	inventoryapp "github.com/meatkonnex/backend/internal/application/inventory"
	orderapp "github.com/meatkonnex/backend/internal/application/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderBody(pounds float64) map[string]any {
	return map[string]any{
		"customer_name":     "Andre",
		"phone_number":      "8765551234",
		"meat_type":         "goat",
		"seasoning_package": "curry",
		"pepper_level":      "hot",
		"remove_items":      []string{"skin"},
		"pounds":            pounds,
		"city":              "Morant Bay",
	}
}

func (a *testAPI) placeOrder(t *testing.T) orderapp.PlaceOrderResponse {
	t.Helper()
	w := a.do(http.MethodPost, "/order", orderBody(5))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[orderapp.PlaceOrderResponse](t, w).Data
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	api := newTestAPI(t)
	_, item := api.goatWithStock(t, 20)

	placed := api.placeOrder(t)

	assert.Equal(t, "Order placed successfully!", placed.Message)
	assert.NotZero(t, placed.OrderID)
	assert.Equal(t, int64(7550), placed.OrderSummary.TotalCostJMD)
	assert.Equal(t, testPIN, placed.OrderSummary.ConfirmationPIN)
	assert.Equal(t, "St. Thomas", placed.OrderSummary.Location)
	assert.Equal(t, []string{"skin"}, placed.OrderSummary.RemovedItems)
	assert.True(t, strings.HasPrefix(placed.WhatsAppLink, "https://wa.me/"), placed.WhatsAppLink)

	w := api.do(http.MethodGet, fmt.Sprintf("/inventory/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 15.0, decode[inventoryapp.InventoryResponse](t, w).Data.CurrentStockLb)
}

func TestOrderHandler_PlaceOrderWithoutStock(t *testing.T) {
	api := newTestAPI(t)

	placed := api.placeOrder(t)
	assert.Equal(t, int64(7550), placed.OrderSummary.TotalCostJMD)

	w := api.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]orderapp.OrderResponse](t, w).Data, 1)
}

func TestOrderHandler_PlaceOrderRejections(t *testing.T) {
	api := newTestAPI(t)
	_, item := api.goatWithStock(t, 20)

	t.Run("below minimum", func(t *testing.T) {
		w := api.do(http.MethodPost, "/order", orderBody(4))
		resp := requireErrorCode(t, w, http.StatusBadRequest, "MINIMUM_ORDER")
		assert.Equal(t, "Minimum order for St. Thomas is 5 lbs.", resp.Error.Message)
	})

	t.Run("bad phone number", func(t *testing.T) {
		body := orderBody(5)
		body["phone_number"] = "876-555"
		resp := requireErrorCode(t, api.do(http.MethodPost, "/order", body), http.StatusBadRequest, "VALIDATION_ERROR")
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "phone_number", resp.Error.Details[0].Field)
	})

	t.Run("above maximum", func(t *testing.T) {
		resp := requireErrorCode(t, api.do(http.MethodPost, "/order", orderBody(1e17)), http.StatusBadRequest, "VALIDATION_ERROR")
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "pounds", resp.Error.Details[0].Field)
	})

	t.Run("unknown meat type", func(t *testing.T) {
		body := orderBody(5)
		body["meat_type"] = "lamb"
		requireErrorCode(t, api.do(http.MethodPost, "/order", body), http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := requireErrorCode(t, api.do(http.MethodPost, "/order", `{}`), http.StatusBadRequest, "VALIDATION_ERROR")
		assert.NotEmpty(t, resp.Error.Details)
	})

	t.Run("stock and orders untouched", func(t *testing.T) {
		w := api.do(http.MethodGet, fmt.Sprintf("/inventory/%d", item.ID), nil)
		assert.Equal(t, 20.0, decode[inventoryapp.InventoryResponse](t, w).Data.CurrentStockLb)

		w = api.do(http.MethodGet, "/admin/orders", nil)
		assert.Empty(t, decode[[]orderapp.OrderResponse](t, w).Data)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	api := newTestAPI(t)
	api.goatWithStock(t, 20)
	placed := api.placeOrder(t)

	w := api.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode[[]orderapp.OrderResponse](t, w).Data
	require.Len(t, orders, 1)
	assert.Equal(t, placed.OrderID, orders[0].ID)
	assert.Equal(t, "Andre", orders[0].CustomerName)
	assert.Equal(t, testPIN, orders[0].CustomerPIN)
	assert.False(t, orders[0].IsPaid)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 5.0, orders[0].Items[0].PoundsOrdered)
	assert.True(t, orders[0].Items[0].Seasoned)
}

func TestOrderHandler_UpdatePaymentStatus(t *testing.T) {
	api := newTestAPI(t)
	placed := api.placeOrder(t)
	path := fmt.Sprintf("/admin/orders/%d/payment-status", placed.OrderID)

	w := api.do(http.MethodPut, path, `{"is_paid": true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	status := decode[orderapp.PaymentStatusResponse](t, w).Data
	assert.True(t, status.IsPaid)
	assert.Equal(t, "paid", status.PaymentStatus)

	w = api.do(http.MethodGet, "/admin/orders", nil)
	orders := decode[[]orderapp.OrderResponse](t, w).Data
	require.Len(t, orders, 1)
	assert.True(t, orders[0].IsPaid)

	t.Run("is_paid is required", func(t *testing.T) {
		resp := requireErrorCode(t, api.do(http.MethodPut, path, `{}`), http.StatusBadRequest, "VALIDATION_ERROR")
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "is_paid", resp.Error.Details[0].Field)
	})

	t.Run("missing order", func(t *testing.T) {
		w := api.do(http.MethodPut, "/admin/orders/999/payment-status", `{"is_paid": true}`)
		requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

func TestOrderHandler_MarkPaid(t *testing.T) {
	api := newTestAPI(t)
	placed := api.placeOrder(t)
	path := fmt.Sprintf("/orders/%d/paid", placed.OrderID)

	t.Run("requires a token", func(t *testing.T) {
		requireErrorCode(t, api.do(http.MethodPost, path, `{"paid": true}`), http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("marks the order paid", func(t *testing.T) {
		w := api.do(http.MethodPost, path, `{"paid": true}`, "Authorization", "Bearer "+api.token(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[MarkPaidResponse](t, w).Data
		assert.Equal(t, "Payment status updated", resp.Message)
		assert.True(t, resp.Paid)
	})

	t.Run("can be reverted", func(t *testing.T) {
		w := api.do(http.MethodPost, path, `{"paid": false}`, "Authorization", "Bearer "+api.token(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.False(t, decode[MarkPaidResponse](t, w).Data.Paid)
	})

	t.Run("accepts a bare boolean", func(t *testing.T) {
		w := api.do(http.MethodPost, path, `true`, "Authorization", "Bearer "+api.token(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, decode[MarkPaidResponse](t, w).Data.Paid)

		w = api.do(http.MethodPost, path, ` false `, "Authorization", "Bearer "+api.token(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.False(t, decode[MarkPaidResponse](t, w).Data.Paid)
	})

	t.Run("rejects a missing flag", func(t *testing.T) {
		for _, body := range []string{`null`, `{}`} {
			w := api.do(http.MethodPost, path, body, "Authorization", "Bearer "+api.token(t))
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}
