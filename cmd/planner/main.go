package main

import (
	"context"
	"log/slog"
	"os"

	"mealplan/config"
	"mealplan/internal/delivery"
	"mealplan/internal/delivery/http"
	"mealplan/internal/delivery/http/router/handler"
	"mealplan/internal/infra/catalog"
	logs "mealplan/internal/infra/log"
	"mealplan/internal/infra/persistence/gormdb"
	"mealplan/internal/infra/pubsub"
	"mealplan/internal/usecase"
	"mealplan/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedCatalogParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	CatalogSvc usecase.CatalogUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormdb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormdb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			impl.NewGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewPlannerService,
			impl.NewCatalogService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewPlanHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog imports the configured seed file on startup while the catalog is still empty.
func seedCatalog(params seedCatalogParams) {
	if params.Config.Catalog == nil || !params.Config.Catalog.SeedOnStart || params.Config.Catalog.SeedPath == "" {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			current, err := params.CatalogSvc.GetCatalog(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to read catalog")
			}
			if current.Size() > 0 {
				return nil
			}

			seed, err := catalog.LoadFile(params.Config.Catalog.SeedPath)
			if err != nil {
				return err
			}
			summary, err := params.CatalogSvc.ImportCatalog(ctx, seed)
			if err != nil {
				return errors.Wrap(err, "failed to seed catalog")
			}
			params.Logger.Info("Seeded catalog",
				slog.String("path", params.Config.Catalog.SeedPath),
				slog.Int("recipes", summary.Recipes),
				slog.Int("foods", summary.Foods),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
