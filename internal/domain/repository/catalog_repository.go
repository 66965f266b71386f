package repository

import (
	"context"

	"mealplan/internal/domain/entity"
)

// CatalogRepository persists the recipe and food catalog.
type CatalogRepository interface {
	// ListRecipes returns every recipe ordered by id.
	ListRecipes(ctx context.Context) ([]entity.Recipe, error)

	// ListFoods returns every food ordered by id.
	ListFoods(ctx context.Context) ([]entity.Food, error)

	// UpsertRecipes inserts recipes or overwrites them by id.
	UpsertRecipes(ctx context.Context, recipes []entity.Recipe) error

	// UpsertFoods inserts foods or overwrites them by id.
	UpsertFoods(ctx context.Context, foods []entity.Food) error

	// LoadCatalog returns recipes and foods together.
	LoadCatalog(ctx context.Context) (*entity.Catalog, error)
}
