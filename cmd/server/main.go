package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/meatkonnex/backend/docs"
	catalogapp "github.com/meatkonnex/backend/internal/application/catalog"
	identityapp "github.com/meatkonnex/backend/internal/application/identity"
	inventoryapp "github.com/meatkonnex/backend/internal/application/inventory"
	orderapp "github.com/meatkonnex/backend/internal/application/order"
	"github.com/meatkonnex/backend/internal/infrastructure/auth"
	"github.com/meatkonnex/backend/internal/infrastructure/config"
	"github.com/meatkonnex/backend/internal/infrastructure/event"
	"github.com/meatkonnex/backend/internal/infrastructure/logger"
	"github.com/meatkonnex/backend/internal/infrastructure/migration"
	"github.com/meatkonnex/backend/internal/infrastructure/persistence"
	"github.com/meatkonnex/backend/internal/infrastructure/telemetry"
	"github.com/meatkonnex/backend/internal/interfaces/http/handler"
	"github.com/meatkonnex/backend/internal/interfaces/http/middleware"
	"github.com/meatkonnex/backend/internal/interfaces/http/router"
	"github.com/meatkonnex/backend/migrations"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

//	@title			MeatKonnex API
//	@version		1.0
//	@description	Order backend for a St. Thomas meat retailer: catalog, inventory, orders and admin payment tracking.

//	@contact.name	MeatKonnex
//	@contact.url	https://github.com/meatkonnex/backend

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	if loggerProvider.IsEnabled() {
		// rebuild the logger so every entry is also exported over OTLP
		log, err = logger.New(logCfg, loggerProvider.Core(logger.ParseLevel(cfg.Log.Level)))
		if err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Warn("Failed to start profiler", zap.Error(err))
	} else if profiler.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	log.Info("Starting MeatKonnex backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("tracing", tracerProvider.IsEnabled()),
		zap.Bool("metrics", meterProvider.IsEnabled()),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	dbSystem := "postgresql"
	if cfg.Database.Driver == persistence.DriverSQLite {
		dbSystem = "sqlite"
	}
	if err := telemetry.NewDBTracingPlugin(cfg.Telemetry, dbSystem, tracerProvider.Provider(), log).Register(db.DB); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}
	if err := migrateSchema(cfg, db, log); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Repositories and services
	animalRepo := persistence.NewGormAnimalRepository(db.DB)
	meatPartRepo := persistence.NewGormMeatPartRepository(db.DB)
	seasoningRepo := persistence.NewGormSeasoningPackageRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	orderCfg, err := orderapp.NewConfig(orderapp.Settings{
		Location:        cfg.Order.Location,
		MinimumPounds:   cfg.Order.MinimumPounds,
		DeliveryFee:     &cfg.Order.DeliveryFee,
		MeatTypeAnimals: cfg.Order.MeatTypeAnimals,
	})
	if err != nil {
		log.Fatal("Invalid order configuration", zap.Error(err))
	}

	catalogService := catalogapp.NewCatalogService(animalRepo, meatPartRepo, seasoningRepo, txScope.CatalogScope(), log)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, meatPartRepo, seasoningRepo, orderCfg.Prices.Location, log)
	orderService := orderapp.NewOrderService(orderRepo, txScope.OrderScope(), nil, orderCfg, log)

	meter := meterProvider.Meter(cfg.Telemetry.ServiceName)
	if salesMetrics, err := telemetry.NewSalesMetrics(meter); err != nil {
		log.Warn("Failed to create sales metrics", zap.Error(err))
	} else {
		orderService.SetSalesRecorder(salesMetrics)
	}

	// Domain events
	eventBus := event.NewInMemoryEventBus(log)
	if cfg.Kafka.Enabled {
		writer, err := event.NewKafkaWriter(cfg.Kafka, cfg.Telemetry.ServiceName, tracerProvider.Provider())
		if err != nil {
			log.Fatal("Failed to create Kafka writer", zap.Error(err))
		}
		forwarder := event.NewKafkaForwarder(writer, cfg.Kafka.WriteTimeout, log)
		defer func() {
			if err := forwarder.Close(); err != nil {
				log.Error("Error closing Kafka writer", zap.Error(err))
			}
		}()
		eventBus.Subscribe(forwarder)
		log.Info("Order events forwarded to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	} else {
		eventBus.Subscribe(event.NewLoggingHandler(log))
	}
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	orderService.SetEventPublisher(eventBus)

	// Authentication
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		memBlacklist := auth.NewInMemoryTokenBlacklist()
		go memBlacklist.Run(ctx, cfg.JWT.AccessTokenExpiration)
		blacklist = memBlacklist
	}
	credentials, err := auth.NewAdminCredentials(cfg.Auth)
	if err != nil {
		log.Fatal("Failed to load admin credentials", zap.Error(err))
	}
	authService := identityapp.NewAuthService(auth.NewJWTService(cfg.JWT), credentials, blacklist, log)

	// HTTP
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to set up validator", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	httpMeter := meter
	if !meterProvider.IsEnabled() {
		httpMeter = nil
	}
	httpMetrics, err := middleware.HTTPMetrics(httpMeter)
	if err != nil {
		log.Fatal("Failed to create HTTP metrics", zap.Error(err))
	}

	skipPaths := []string{"/health"}
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		Enabled:        tracerProvider.IsEnabled(),
		TracerProvider: tracerProvider.Provider(),
		SkipPaths:      skipPaths,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(httpMetrics)
	engine.Use(middleware.Profiling(profiler != nil && profiler.IsEnabled(), skipPaths...))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	requireAuth := middleware.RequireAuth(authService, log)
	requireAdmin := middleware.RequireAdmin()
	guards := router.Guards{RequireAuth: requireAuth, RequireAdmin: requireAdmin}
	if cfg.HTTP.AuthRateLimitEnabled {
		loginLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		go loginLimiter.Run(ctx)
		guards.LoginLimit = middleware.RateLimit(loginLimiter)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database handle", zap.Error(err))
	}
	handlers := router.Handlers{
		System:    handler.NewSystemHandler(sqlDB),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Order:     handler.NewOrderHandler(orderService),
		Auth:      handler.NewAuthHandler(authService),
	}
	routes := router.NewRouter(engine).Register(router.APIGroups(handlers, guards)...).Setup()
	for _, route := range routes {
		log.Debug("Route mounted",
			zap.String("group", route.Group),
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}
	log.Info("Routes registered", zap.Int("count", len(routes)))

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, requireAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if profiler != nil {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}
	for _, shutdown := range []func(context.Context) error{
		tracerProvider.Shutdown,
		meterProvider.Shutdown,
		loggerProvider.Shutdown,
	} {
		if err := shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}

// migrateSchema creates the schema on SQLite from the entity definitions and,
// when auto_migrate is set, applies the versioned migrations on PostgreSQL
func migrateSchema(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	if cfg.Database.Driver == persistence.DriverSQLite {
		return persistence.AutoMigrate(db.DB)
	}
	if !cfg.Database.AutoMigrate {
		return nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	migrator, err := migration.New(sqlDB, migrations.FS, log)
	if err != nil {
		return err
	}
	return migrator.Up()
}
