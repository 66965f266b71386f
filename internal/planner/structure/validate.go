package structure

import (
	"fmt"
	"math"

	"mealplan/internal/domain/entity"
)

const (
	maxMeals             = 8
	maxPortionMultiplier = 3.0
	minMainCalories      = 200
	maxMainDailyShare    = 0.60
	calorieSumTolerance  = 0.15
)

// Validation lists problems found in a day structure. Errors make it unusable; warnings are
// advisory.
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateMealStructure checks that all three main meals exist and that every slot has a
// usable multiplier and calorie target, and warns on unusual distributions.
func ValidateMealStructure(ds *DayStructure) Validation {
	var v Validation
	if ds == nil {
		v.Errors = append(v.Errors, "day structure is missing")

		return v
	}

	present := make(map[entity.MealType]bool, len(entity.MainMealTypes))
	total := 0
	for _, meal := range ds.Meals {
		if meal.MealType.IsMain() {
			present[meal.MealType] = true
		}
		total += meal.CalorieTarget

		if meal.PortionMultiplier <= 0 || meal.PortionMultiplier > maxPortionMultiplier {
			v.Errors = append(v.Errors, fmt.Sprintf("%s portion multiplier %.2f is outside (0, %.0f]",
				meal.SlotKey(), meal.PortionMultiplier, maxPortionMultiplier))
		}
		if meal.CalorieTarget <= 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("%s has no calorie target", meal.SlotKey()))

			continue
		}
		if meal.MealType.IsMain() {
			if meal.CalorieTarget < minMainCalories {
				v.Warnings = append(v.Warnings, fmt.Sprintf("%s target of %d kcal is below %d kcal",
					meal.MealType, meal.CalorieTarget, minMainCalories))
			}
			if ds.DailyCalories > 0 && float64(meal.CalorieTarget) > ds.DailyCalories*maxMainDailyShare {
				v.Warnings = append(v.Warnings, fmt.Sprintf("%s takes more than 60%% of daily calories", meal.MealType))
			}
		}
	}

	for _, mt := range entity.MainMealTypes {
		if !present[mt] {
			v.Errors = append(v.Errors, fmt.Sprintf("%s is missing from the day", mt))
		}
	}
	if len(ds.Meals) > maxMeals {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%d meals exceed the recommended maximum of %d", len(ds.Meals), maxMeals))
	}
	if ds.DailyCalories > 0 {
		if diff := math.Abs(float64(total)-ds.DailyCalories) / ds.DailyCalories; diff > calorieSumTolerance {
			v.Warnings = append(v.Warnings, fmt.Sprintf("meal targets sum to %d kcal, %.0f%% away from the daily %.0f kcal",
				total, diff*100, ds.DailyCalories))
		}
	}

	v.Valid = len(v.Errors) == 0

	return v
}
