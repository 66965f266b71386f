package impl

import (
	"context"
	"log/slog"

	deliverycontext "mealplan/internal/delivery/context"
	"mealplan/internal/domain/entity"
	domainerrors "mealplan/internal/domain/errors"
	"mealplan/internal/domain/repository"
	"mealplan/internal/planner/validation"
	"mealplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCatalog returns every stored recipe and food.
func (srv *catalogService) GetCatalog(ctx context.Context) (*entity.Catalog, error) {
	var catalog *entity.Catalog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCatalogRepository().LoadCatalog(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load catalog")
		}
		catalog = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get catalog")
	}

	return catalog, nil
}

func (srv *catalogService) ListRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var recipes []entity.Recipe

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCatalogRepository().ListRecipes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list recipes")
		}
		recipes = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *catalogService) ListFoods(ctx context.Context) ([]entity.Food, error) {
	var foods []entity.Food

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCatalogRepository().ListFoods(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list foods")
		}
		foods = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list foods")
	}

	return foods, nil
}

// ImportCatalog validates a catalog and upserts its items by id. An invalid catalog writes nothing.
func (srv *catalogService) ImportCatalog(ctx context.Context, catalog *entity.Catalog) (*usecase.ImportSummary, error) {
	if catalog == nil {
		return nil, domainerrors.ErrCatalogImportFailed.WithDetails("catalog is empty")
	}
	if err := validation.ValidateCatalog(catalog); err != nil {
		return nil, catalogError(err)
	}
	srv.log(ctx).Info("Importing catalog",
		slog.Int("recipes", len(catalog.Recipes)),
		slog.Int("foods", len(catalog.Foods)),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()
		if err := catalogRepo.UpsertRecipes(ctx, catalog.Recipes); err != nil {
			return errors.Wrap(err, "failed to upsert recipes")
		}
		if err := catalogRepo.UpsertFoods(ctx, catalog.Foods); err != nil {
			return errors.Wrap(err, "failed to upsert foods")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to import catalog", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to import catalog")
	}

	return &usecase.ImportSummary{
		Recipes: len(catalog.Recipes),
		Foods:   len(catalog.Foods),
	}, nil
}
