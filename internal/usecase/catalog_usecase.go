package usecase

import (
	"context"

	"mealplan/internal/domain/entity"
)

// CatalogUsecase defines the interface for reading and importing the recipe and food catalog.
type CatalogUsecase interface {
	GetCatalog(ctx context.Context) (*entity.Catalog, error)
	ListRecipes(ctx context.Context) ([]entity.Recipe, error)
	ListFoods(ctx context.Context) ([]entity.Food, error)
	ImportCatalog(ctx context.Context, catalog *entity.Catalog) (*ImportSummary, error)
}

// --- Output DTOs ---

// ImportSummary counts the items written by an import.
type ImportSummary struct {
	Recipes int `json:"recipes"`
	Foods   int `json:"foods"`
}
