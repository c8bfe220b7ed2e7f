package router

import (
	"github.com/gin-gonic/gin"
	"github.com/meatkonnex/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers of the API
type Handlers struct {
	System    *handler.SystemHandler
	Catalog   *handler.CatalogHandler
	Inventory *handler.InventoryHandler
	Order     *handler.OrderHandler
	Auth      *handler.AuthHandler
}

// Guards are the access-control middleware applied to protected routes
type Guards struct {
	RequireAuth  gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
	// LoginLimit throttles credential guessing on /login; nil disables it
	LoginLimit gin.HandlerFunc
}

// APIGroups returns the route groups of the MeatKonnex API
func APIGroups(h Handlers, g Guards) []RouteRegistrar {
	system := NewDomainGroup("system", "").
		GET("/", h.System.Welcome).
		GET("/health", h.System.Health)

	catalog := NewDomainGroup("catalog", "").
		POST("/animals", h.Catalog.CreateAnimal).
		GET("/animals", h.Catalog.ListAnimals).
		GET("/meat_parts", h.Catalog.ListMeatParts).
		GET("/meat_parts/:animal_id", h.Catalog.ListMeatPartsByAnimal).
		GET("/seasonings", h.Catalog.ListSeasoningPackages)

	inventory := NewDomainGroup("inventory", "/inventory").
		POST("", h.Inventory.Create).
		GET("", h.Inventory.ListActive).
		GET("/overview", h.Inventory.Overview).
		GET("/:id", h.Inventory.GetByID).
		PUT("/:id", h.Inventory.Update).
		DELETE("/:id", h.Inventory.SoftDelete).
		PUT("/restore/:id", h.Inventory.Restore)

	login := []gin.HandlerFunc{h.Auth.Login}
	if g.LoginLimit != nil {
		login = append([]gin.HandlerFunc{g.LoginLimit}, login...)
	}
	auth := NewDomainGroup("auth", "").
		POST("/login", login...).
		POST("/logout", g.RequireAuth, h.Auth.Logout)

	orders := NewDomainGroup("orders", "").
		POST("/order", h.Order.PlaceOrder).
		POST("/orders/:id/paid", g.RequireAuth, h.Order.MarkPaid)

	admin := NewDomainGroup("admin", "/admin").Use(g.RequireAuth, g.RequireAdmin)
	admin.Group("orders", "/orders").
		GET("", h.Order.ListOrders).
		PUT("/:id/payment-status", h.Order.UpdatePaymentStatus)

	return []RouteRegistrar{system, catalog, inventory, auth, orders, admin}
}
