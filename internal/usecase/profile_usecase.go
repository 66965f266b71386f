// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/nutrition"
	"mealplan/internal/planner/structure"
	"mealplan/internal/planner/validation"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	SaveProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error)
	ValidateProfile(ctx context.Context, userID uuid.UUID) (*ProfileValidation, error)
	GetNutritionTargets(ctx context.Context, userID uuid.UUID, date string) (*NutritionTargets, error)
}

// --- Output DTOs ---

// ProfileValidation is the pre-flight report of a stored profile.
type ProfileValidation struct {
	Profile validation.Result `json:"profile"`
	// Portions is set when the profile carries custom portion sizes.
	Portions *validation.Result `json:"portions,omitempty"`
	// Structure is set when the profile has what a day structure needs.
	Structure *structure.Validation `json:"structure,omitempty"`
	// ReadyToGenerate reports whether generation prerequisites are met.
	ReadyToGenerate bool `json:"readyToGenerate"`
}

// NutritionTargets are the daily and per-slot targets of a profile for one date.
type NutritionTargets struct {
	Date      string                         `json:"date"`
	Daily     *nutrition.DailyTargets        `json:"daily"`
	Meals     []entity.MealNutritionalTarget `json:"meals"`
	Structure *structure.DayStructure        `json:"structure,omitempty"`
}
