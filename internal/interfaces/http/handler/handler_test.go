package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/meatkonnex/backend/internal/application/catalog"
	"github.com/meatkonnex/backend/internal/application/identity"
	inventoryapp "github.com/meatkonnex/backend/internal/application/inventory"
	orderapp "github.com/meatkonnex/backend/internal/application/order"
	"github.com/meatkonnex/backend/internal/domain/catalog"
	"github.com/meatkonnex/backend/internal/domain/order"
	"github.com/meatkonnex/backend/internal/infrastructure/auth"
	"github.com/meatkonnex/backend/internal/infrastructure/config"
	"github.com/meatkonnex/backend/internal/infrastructure/persistence"
	"github.com/meatkonnex/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testPIN           = "4821"
	testAdminUser     = "admin"
	testAdminPassword = "s3cret"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

// testAPI wires every handler to real services over an in-memory database
type testAPI struct {
	db     *gorm.DB
	engine *gin.Engine
	auth   *identity.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, persistence.AutoMigrate(db))

	log := zap.NewNop()
	animalRepo := persistence.NewGormAnimalRepository(db)
	meatPartRepo := persistence.NewGormMeatPartRepository(db)
	seasoningRepo := persistence.NewGormSeasoningPackageRepository(db)
	inventoryRepo := persistence.NewGormInventoryItemRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	txScope := persistence.NewGormTransactionScope(db)

	catalogService := catalogapp.NewCatalogService(animalRepo, meatPartRepo, seasoningRepo, txScope.CatalogScope(), log)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, meatPartRepo, seasoningRepo, "St. Thomas", log)
	orderService := orderapp.NewOrderService(orderRepo, txScope.OrderScope(), order.FixedPINGenerator(testPIN), orderapp.DefaultConfig(), log)

	credentials, err := auth.NewAdminCredentials(config.AuthConfig{AdminUsername: testAdminUser, AdminPassword: testAdminPassword})
	require.NoError(t, err)
	authService := identity.NewAuthService(
		auth.NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-at-least-32-chars",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "meatkonnex-test",
		}),
		credentials,
		auth.NewInMemoryTokenBlacklist(),
		log,
	)

	system := NewSystemHandler(sqlDB)
	catalogHandler := NewCatalogHandler(catalogService)
	inventoryHandler := NewInventoryHandler(inventoryService)
	orderHandler := NewOrderHandler(orderService)
	authHandler := NewAuthHandler(authService)
	requireAuth := middleware.RequireAuth(authService, log)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", system.Welcome)
	r.GET("/health", system.Health)
	r.POST("/animals", catalogHandler.CreateAnimal)
	r.GET("/animals", catalogHandler.ListAnimals)
	r.GET("/meat_parts", catalogHandler.ListMeatParts)
	r.GET("/meat_parts/:animal_id", catalogHandler.ListMeatPartsByAnimal)
	r.GET("/seasonings", catalogHandler.ListSeasoningPackages)
	r.POST("/inventory", inventoryHandler.Create)
	r.GET("/inventory", inventoryHandler.ListActive)
	r.GET("/inventory/overview", inventoryHandler.Overview)
	r.GET("/inventory/:id", inventoryHandler.GetByID)
	r.PUT("/inventory/:id", inventoryHandler.Update)
	r.DELETE("/inventory/:id", inventoryHandler.SoftDelete)
	r.PUT("/inventory/restore/:id", inventoryHandler.Restore)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", requireAuth, authHandler.Logout)
	r.POST("/order", orderHandler.PlaceOrder)
	r.POST("/orders/:id/paid", requireAuth, orderHandler.MarkPaid)
	r.GET("/admin/orders", orderHandler.ListOrders)
	r.PUT("/admin/orders/:id/payment-status", orderHandler.UpdatePaymentStatus)

	return &testAPI{db: db, engine: r, auth: authService}
}

func (a *testAPI) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) token(t *testing.T) string {
	t.Helper()
	result, err := a.auth.Login(context.Background(), identity.LoginInput{Username: testAdminUser, Password: testAdminPassword})
	require.NoError(t, err)
	return result.AccessToken
}

func (a *testAPI) seedSeasoning(t *testing.T, name string) *catalog.SeasoningPackage {
	t.Helper()
	pkg, err := catalog.NewSeasoningPackage(name, "scallion, thyme, pimento")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormSeasoningPackageRepository(a.db).Create(context.Background(), pkg))
	return pkg
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) APIResponse[T] {
	t.Helper()
	var resp APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) APIResponse[any] {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode[any](t, w)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
	return resp
}

// goatWithStock creates a goat with a standard cut and stocks it
func (a *testAPI) goatWithStock(t *testing.T, stockLb float64) (catalogapp.AnimalResponse, inventoryapp.InventoryResponse) {
	t.Helper()

	w := a.do(http.MethodPost, "/animals", catalogapp.CreateAnimalRequest{
		Name:             "Goat",
		TotalWeightKg:    30,
		PurchasePriceJMD: 45000,
		MeatParts: []catalogapp.CreateMeatPartRequest{
			{PartName: "Standard Cut", WeightLb: 40, PricePerLbJMD: 1400},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	animal := decode[catalogapp.AnimalResponse](t, w).Data
	require.Len(t, animal.MeatParts, 1)

	w = a.do(http.MethodPost, "/inventory", inventoryapp.CreateInventoryRequest{
		MeatPartID:     animal.MeatParts[0].ID,
		CurrentStockLb: stockLb,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return animal, decode[inventoryapp.InventoryResponse](t, w).Data
}
