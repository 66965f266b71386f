package generator

import (
	"math"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/knapsack"

	"github.com/google/uuid"
)

// planNamespace seeds the name-based UUIDs of plans.
var planNamespace = uuid.MustParse("6f1c2a4e-8d3b-5e7f-9a0b-1c2d3e4f5a6b")

// PlanID is the stable id of a user's plan for a date, so regenerating a date replaces the
// same plan.
func PlanID(userID uuid.UUID, date string) uuid.UUID {
	return uuid.NewSHA1(planNamespace, []byte(entity.PlanKey(userID, date)))
}

// PlaceholderName is the name given to a meal synthesized for an empty slot.
func PlaceholderName(mealType entity.MealType) string {
	return "Default " + string(mealType)
}

func mealFromItem(
	planID, userID uuid.UUID,
	date string,
	target entity.MealNutritionalTarget,
	item knapsack.Item,
) entity.Meal {
	source := item.Metadata.Source
	macros := source.Macros()

	meal := entity.Meal{
		ID:       uuid.NewSHA1(planID, []byte(item.ID)),
		Type:     target.MealType,
		Name:     source.Name(),
		Position: target.Position,
		UserID:   userID,
		Date:     date,
		Calories: round1(macros.Calories),
		Protein:  round1(macros.Protein),
		Carbs:    round1(macros.Carbs),
		Fat:      round1(macros.Fat),
	}
	switch source.Kind {
	case entity.ItemKindRecipe:
		meal.RecipeID = source.ID()
	case entity.ItemKindFood:
		meal.FoodID = source.ID()
	}

	return meal
}

// placeholderMeal fills a slot the optimizer left empty. Its nutrition is unknown and stays 0.
func placeholderMeal(planID, userID uuid.UUID, date string, target entity.MealNutritionalTarget) entity.Meal {
	slot := target.SlotKey()

	return entity.Meal{
		ID:            uuid.NewSHA1(planID, []byte(string(slot)+"/placeholder")),
		Type:          target.MealType,
		Name:          PlaceholderName(target.MealType),
		Position:      target.Position,
		UserID:        userID,
		Date:          date,
		IsPlaceholder: true,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
