package knapsack

import (
	"math"

	"mealplan/internal/domain/entity"
)

const (
	baseRecipeValue = 50.0
	baseFoodValue   = 40.0
	maxVolume       = 5.0
)

// RecipeToItem scores a recipe for one meal slot.
func RecipeToItem(recipe *entity.Recipe, target entity.MealNutritionalTarget) Item {
	value := baseRecipeValue + calorieRatioBonus(recipe.Calories, target.Target.Calories)

	switch total := recipe.TotalTime(); {
	case total <= 15:
		value += 15
	case total <= 30:
		value += 10
	case total > 60:
		value -= 10
	}
	if recipe.HasCategory(string(target.MealType)) {
		value += 15
	}

	return Item{
		ID:    itemID(target, recipe.ID),
		Name:  recipe.Name,
		Value: value,
		Weights: Weights{
			Calories: recipe.Calories,
			Protein:  recipe.Protein,
			Carbs:    recipe.Carbs,
			Fat:      recipe.Fat,
			Volume:   RecipeVolume(recipe),
			PrepTime: float64(recipe.TotalTime()),
			Cost:     RecipeCost(recipe),
		},
		Metadata: Metadata{
			Slot:       target.SlotKey(),
			MealType:   target.MealType,
			Position:   target.Position,
			Categories: recipe.Categories,
			Source:     entity.RecipeItem(recipe),
		},
	}
}

// FoodToItem scores a food for one meal slot.
func FoodToItem(food *entity.Food, target entity.MealNutritionalTarget) Item {
	value := baseFoodValue + calorieRatioBonus(food.Calories, target.Target.Calories)
	if food.Protein > 10 {
		value += 10
	}
	if food.Calories < 100 {
		value += 5
	}

	var categories []string
	if food.Category != "" {
		categories = []string{food.Category}
	}

	return Item{
		ID:    itemID(target, food.ID),
		Name:  food.Name,
		Value: value,
		Weights: Weights{
			Calories: food.Calories,
			Protein:  food.Protein,
			Carbs:    food.Carbs,
			Fat:      food.Fat,
			Volume:   volumeForCalories(food.Calories),
			Cost:     1,
		},
		Metadata: Metadata{
			Slot:       target.SlotKey(),
			MealType:   target.MealType,
			Position:   target.Position,
			Categories: categories,
			Source:     entity.FoodItem(food),
		},
	}
}

// RecipeVolume estimates plate volume on a 1-5 scale from calories and ingredient count.
func RecipeVolume(recipe *entity.Recipe) float64 {
	volume := volumeForCalories(recipe.Calories)
	if n := len(recipe.Ingredients); n > 5 {
		volume++
		if n > 8 {
			volume++
		}
	}

	return math.Min(volume, maxVolume)
}

// RecipeCost estimates cost as half a unit per ingredient plus a surcharge for long recipes,
// never below 1.
func RecipeCost(recipe *entity.Recipe) float64 {
	cost := 0.5 * float64(len(recipe.Ingredients))
	switch total := recipe.TotalTime(); {
	case total > 60:
		cost += 2
	case total > 30:
		cost++
	}

	return math.Max(cost, 1)
}

func volumeForCalories(calories float64) float64 {
	switch {
	case calories < 150:
		return 1
	case calories < 300:
		return 2
	case calories < 500:
		return 3
	default:
		return 4
	}
}

func calorieRatioBonus(calories, target float64) float64 {
	if target <= 0 {
		return 0
	}
	ratio := calories / target
	switch {
	case ratio >= 0.8 && ratio <= 1.2:
		return 20
	case ratio >= 0.6 && ratio <= 1.4:
		return 10
	default:
		return 0
	}
}

func itemID(target entity.MealNutritionalTarget, sourceID string) string {
	return string(target.SlotKey()) + "/" + sourceID
}
