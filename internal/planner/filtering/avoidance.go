// Package filtering narrows and ranks the recipe and food catalog for a meal slot.
package filtering

import (
	"fmt"
	"strings"

	"mealplan/internal/domain/entity"
)

// FilteredItem records a catalog item that was excluded and why.
type FilteredItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Kind   entity.ItemKind `json:"kind"`
	Reason string          `json:"reason"`
}

// AvoidanceResult is the catalog left after applying the user's avoid list.
type AvoidanceResult struct {
	Recipes  []entity.Recipe `json:"recipes"`
	Foods    []entity.Food   `json:"foods"`
	Filtered []FilteredItem  `json:"filtered"`
}

// ApplyAvoidanceFilters removes every recipe whose allergens, food types or ingredient names
// contain an avoid term, and every food whose name contains one. Matching is a
// case-insensitive substring test.
func ApplyAvoidanceFilters(recipes []entity.Recipe, foods []entity.Food, user *entity.UserProfile) AvoidanceResult {
	var terms []string
	if user != nil {
		terms = user.AvoidMeals.Terms()
	}

	result := AvoidanceResult{
		Recipes: make([]entity.Recipe, 0, len(recipes)),
		Foods:   make([]entity.Food, 0, len(foods)),
	}
	if len(terms) == 0 {
		result.Recipes = append(result.Recipes, recipes...)
		result.Foods = append(result.Foods, foods...)

		return result
	}

	for _, recipe := range recipes {
		if reason, avoided := recipeAvoidReason(&recipe, terms); avoided {
			result.Filtered = append(result.Filtered, FilteredItem{
				ID:     recipe.ID,
				Name:   recipe.Name,
				Kind:   entity.ItemKindRecipe,
				Reason: reason,
			})

			continue
		}
		result.Recipes = append(result.Recipes, recipe)
	}

	for _, food := range foods {
		if term, ok := matchTerm(food.Name, terms); ok {
			result.Filtered = append(result.Filtered, FilteredItem{
				ID:     food.ID,
				Name:   food.Name,
				Kind:   entity.ItemKindFood,
				Reason: fmt.Sprintf("name matches avoided %q", term),
			})

			continue
		}
		result.Foods = append(result.Foods, food)
	}

	return result
}

func recipeAvoidReason(recipe *entity.Recipe, terms []string) (string, bool) {
	for _, allergen := range recipe.Allergens {
		if term, ok := matchTerm(allergen, terms); ok {
			return fmt.Sprintf("contains allergen %q (avoiding %q)", allergen, term), true
		}
	}
	for _, foodType := range recipe.FoodTypes {
		if term, ok := matchTerm(foodType, terms); ok {
			return fmt.Sprintf("food type %q is avoided (%q)", foodType, term), true
		}
	}
	for _, ingredient := range recipe.Ingredients {
		if term, ok := matchTerm(ingredient.Name, terms); ok {
			return fmt.Sprintf("ingredient %q matches avoided %q", ingredient.Name, term), true
		}
	}

	return "", false
}

// matchTerm returns the first avoid term contained in value.
func matchTerm(value string, terms []string) (string, bool) {
	lower := strings.ToLower(value)
	if lower == "" {
		return "", false
	}
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return term, true
		}
	}

	return "", false
}
