package filtering

import (
	"strings"

	"mealplan/internal/domain/entity"
)

// SnackCategories are the recipe categories that qualify a recipe as a snack.
var SnackCategories = []string{"Snack", "Appetizer", "Side Dish"}

var foodCategoriesByMeal = map[entity.MealType][]string{
	entity.MealTypeBreakfast: {"Dairy", "Fruits", "Grains", "Beverages", "Protein"},
	entity.MealTypeLunch:     {"Protein", "Vegetables", "Grains", "Legumes", "Dairy"},
	entity.MealTypeDinner:    {"Protein", "Vegetables", "Grains", "Legumes"},
	entity.MealTypeSnack:     {"Fruits", "Nuts", "Dairy", "Vegetables", "Snacks", "Beverages"},
}

// FilterByMealType keeps the recipes categorized for the meal and the foods whose category
// suits it. Main meals need an exact category match on the meal type name.
func FilterByMealType(
	recipes []entity.Recipe,
	foods []entity.Food,
	mealType entity.MealType,
	position entity.SnackPosition,
) ([]entity.Recipe, []entity.Food) {
	if position != "" {
		mealType = entity.MealTypeSnack
	}

	keptRecipes := make([]entity.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if RecipeMatchesMealType(&recipe, mealType) {
			keptRecipes = append(keptRecipes, recipe)
		}
	}

	keptFoods := make([]entity.Food, 0, len(foods))
	for _, food := range foods {
		if FoodSuitsMealType(&food, mealType) {
			keptFoods = append(keptFoods, food)
		}
	}

	return keptRecipes, keptFoods
}

// RecipeMatchesMealType reports whether the recipe's categories place it in mealType.
func RecipeMatchesMealType(recipe *entity.Recipe, mealType entity.MealType) bool {
	if mealType.IsMain() {
		return recipe.HasCategory(string(mealType))
	}
	for _, category := range SnackCategories {
		if recipe.HasCategory(category) {
			return true
		}
	}

	return false
}

// FoodSuitsMealType reports whether the food's category is in the meal's bucket.
func FoodSuitsMealType(food *entity.Food, mealType entity.MealType) bool {
	for _, category := range foodCategoriesByMeal[mealType] {
		if strings.EqualFold(strings.TrimSpace(food.Category), category) {
			return true
		}
	}

	return false
}
