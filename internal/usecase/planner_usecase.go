package usecase

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/generator"

	"github.com/google/uuid"
)

// PlannerUsecase defines the interface for generating and looking up meal plans.
type PlannerUsecase interface {
	GenerateDailyPlan(ctx context.Context, input *GenerateDailyPlanInput) (*generator.GenerationResult, error)
	GenerateWeekPlan(ctx context.Context, input *GenerateWeekPlanInput) (*generator.GenerationResult, error)
	GetMealPlan(ctx context.Context, userID uuid.UUID, date string) (*entity.MealPlan, error)
	ListMealPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.MealPlan, error)
	EstimateGenerationTime(ctx context.Context, input *EstimateInput) (*Estimate, error)
}

// --- Input DTOs ---

// GenerateDailyPlanInput defines one day's generation request.
type GenerateDailyPlanInput struct {
	UserID      uuid.UUID
	Date        string `json:"date,omitempty"`
	Mode        string `json:"mode,omitempty"`
	MaxPrepTime int    `json:"maxPrepTime,omitempty" validate:"gte=0"`
	// Persist stores the plan, replacing the user's plan for the date, and announces it.
	Persist bool `json:"persist"`
}

// GenerateWeekPlanInput defines a consecutive-days generation request.
type GenerateWeekPlanInput struct {
	UserID      uuid.UUID
	StartDate   string `json:"startDate,omitempty"`
	Days        int    `json:"days,omitempty" validate:"gte=0"`
	Mode        string `json:"mode,omitempty"`
	MaxPrepTime int    `json:"maxPrepTime,omitempty" validate:"gte=0"`
	Persist     bool   `json:"persist"`
}

// EstimateInput defines a generation time estimate request.
type EstimateInput struct {
	Mode string `json:"mode,omitempty"`
	Days int    `json:"days,omitempty" validate:"gte=0"`
	// CatalogSize defaults to the size of the stored catalog.
	CatalogSize *int `json:"catalogSize,omitempty" validate:"omitempty,gte=0"`
}

// --- Output DTOs ---

// Estimate is a predicted generation time.
type Estimate struct {
	Mode            generator.Mode `json:"mode"`
	Days            int            `json:"days"`
	CatalogSize     int            `json:"catalogSize"`
	EstimatedMillis int64          `json:"estimatedMillis"`
}
