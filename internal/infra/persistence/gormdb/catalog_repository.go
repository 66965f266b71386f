package gormdb

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/domain/repository"
	"mealplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const catalogBatchSize = 100

// catalogRepository implements repository.CatalogRepository using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListRecipes returns every recipe ordered by id.
func (repo *catalogRepository) ListRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

// ListFoods returns every food ordered by id.
func (repo *catalogRepository) ListFoods(ctx context.Context) ([]entity.Food, error) {
	var foodMs []model.FoodModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&foodMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list foods")
	}

	foods := make([]entity.Food, 0, len(foodMs))
	for i := range foodMs {
		foods = append(foods, toFoodDomain(&foodMs[i]))
	}

	return foods, nil
}

// UpsertRecipes inserts recipes or overwrites them by id.
func (repo *catalogRepository) UpsertRecipes(ctx context.Context, recipes []entity.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	recipeMs := make([]*model.RecipeModel, 0, len(recipes))
	for i := range recipes {
		recipeMs = append(recipeMs, fromRecipeDomain(&recipes[i]))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(recipeMs, catalogBatchSize).Error
	if err != nil {
		return translateWriteError(err, "failed to upsert recipes")
	}

	return nil
}

// UpsertFoods inserts foods or overwrites them by id.
func (repo *catalogRepository) UpsertFoods(ctx context.Context, foods []entity.Food) error {
	if len(foods) == 0 {
		return nil
	}

	foodMs := make([]*model.FoodModel, 0, len(foods))
	for i := range foods {
		foodMs = append(foodMs, fromFoodDomain(&foods[i]))
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(foodMs, catalogBatchSize).Error
	if err != nil {
		return translateWriteError(err, "failed to upsert foods")
	}

	return nil
}

// LoadCatalog returns recipes and foods together.
func (repo *catalogRepository) LoadCatalog(ctx context.Context) (*entity.Catalog, error) {
	recipes, err := repo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := repo.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Catalog{Recipes: recipes, Foods: foods}, nil
}
