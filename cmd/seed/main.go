package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/meatkonnex/backend/internal/infrastructure/config"
	"github.com/meatkonnex/backend/internal/infrastructure/logger"
	"github.com/meatkonnex/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		view     bool
		logLevel string
	)

	flag.BoolVar(&view, "view", false, "Print the catalog instead of seeding it")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel)))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if cfg.Database.Driver == persistence.DriverSQLite {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
	}

	ctx := context.Background()
	if view {
		if err := printCatalog(ctx, db); err != nil {
			log.Fatal("Failed to read catalog", zap.Error(err))
		}
		return
	}

	stats, err := persistence.NewSeeder(db.DB, log).Seed(ctx, persistence.DefaultSeedData())
	if err != nil {
		errorf("Seeding failed: %v", err)
		os.Exit(1)
	}
	if stats == (persistence.SeedStats{}) {
		warningf("Nothing to seed, the catalog is already populated")
		return
	}
	successf("Seeded %d animals, %d meat parts, %d inventory rows, %d seasonings",
		stats.Animals, stats.MeatParts, stats.Inventory, stats.Seasonings)
}

func printUsage() {
	fmt.Println(`MeatKonnex catalog seeder

Usage:
  seed [flags]

Flags:
  -view              Print animals and meat parts instead of seeding
  -log-level <lvl>   Log level (debug, info, warn, error)

Connection settings come from config.toml and MEATKONNEX_* environment variables.`)
}
