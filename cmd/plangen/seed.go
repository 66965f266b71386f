package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"mealplan/config"
	"mealplan/internal/infra/catalog"
	logs "mealplan/internal/infra/log"
	"mealplan/internal/infra/persistence/gormdb"
	"mealplan/internal/usecase/impl"

	"github.com/pkg/errors"
)

// runSeed imports a seed into the database of the service configuration.
func runSeed(ctx context.Context, catalogPath string, out io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if catalogPath == "" && cfg.Catalog != nil {
		catalogPath = cfg.Catalog.SeedPath
	}
	if catalogPath == "" {
		return errors.New("--catalog flag is required when catalog.seedPath is not configured")
	}

	logger, err := logs.NewWithWriter(cfg.Env.Log, os.Stderr)
	if err != nil {
		return err
	}

	db, err := gormdb.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := gormdb.Migrate(db); err != nil {
		return err
	}

	seed, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return err
	}

	catalogSvc := impl.NewCatalogService(gormdb.NewTransactionManager(db), logger)
	summary, err := catalogSvc.ImportCatalog(ctx, seed)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d recipes and %d foods from %s\n", summary.Recipes, summary.Foods, catalogPath)

	return nil
}
