package gormdb

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/domain/repository"
	"mealplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealPlanRepository implements repository.MealPlanRepository using GORM.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func orderedMeals(db *gorm.DB) *gorm.DB {
	return db.Order("sequence")
}

// FindMealPlan retrieves a user's plan for a date with its meals in plan order.
func (repo *mealPlanRepository) FindMealPlan(ctx context.Context, userID uuid.UUID, date string) (*entity.MealPlan, error) {
	var planM model.MealPlanModel
	err := repo.db.WithContext(ctx).
		Preload("Meals", orderedMeals).
		Where("user_id = ? AND date = ?", userID, date).
		First(&planM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	return toMealPlanDomain(&planM), nil
}

// SaveMealPlan replaces whatever was stored for the plan's user and date.
func (repo *mealPlanRepository) SaveMealPlan(ctx context.Context, plan *entity.MealPlan) error {
	planM := fromMealPlanDomain(plan)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planIDs []uuid.UUID
		if err := tx.Model(&model.MealPlanModel{}).
			Where("user_id = ? AND date = ?", plan.UserID, plan.Date).
			Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		planIDs = append(planIDs, plan.ID)

		if err := tx.Where("plan_id IN ?", planIDs).Delete(&model.MealModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", planIDs).Delete(&model.MealPlanModel{}).Error; err != nil {
			return err
		}

		return tx.Create(planM).Error
	})
	if err != nil {
		return translateWriteError(err, "failed to save meal plan")
	}

	plan.CreatedAt = planM.CreatedAt

	return nil
}

// ListMealPlans returns a user's plans with from <= date <= to, ordered by date.
func (repo *mealPlanRepository) ListMealPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.MealPlan, error) {
	var planMs []model.MealPlanModel
	err := repo.db.WithContext(ctx).
		Preload("Meals", orderedMeals).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date").
		Find(&planMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	plans := make([]*entity.MealPlan, 0, len(planMs))
	for i := range planMs {
		plans = append(plans, toMealPlanDomain(&planMs[i]))
	}

	return plans, nil
}
