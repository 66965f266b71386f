package repository

import (
	"context"
	"errors"

	"mealplan/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealPlanNotFound is returned when a user has no plan for a date.
var ErrMealPlanNotFound = errors.New("meal plan not found")

// MealPlanRepository is the meal store. Plans are keyed by user and date.
type MealPlanRepository interface {
	// FindMealPlan retrieves a user's plan for a date (YYYY-MM-DD).
	FindMealPlan(ctx context.Context, userID uuid.UUID, date string) (*entity.MealPlan, error)

	// SaveMealPlan stores the plan, replacing every meal previously stored for its user and date.
	SaveMealPlan(ctx context.Context, plan *entity.MealPlan) error

	// ListMealPlans returns a user's plans with from <= date <= to, ordered by date.
	ListMealPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.MealPlan, error)
}
