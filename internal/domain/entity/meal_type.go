// Package entity contains the core business objects of the meal planner.
package entity

import "strings"

// MealType is the kind of a meal slot.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// MainMealTypes lists the main meals in daily order.
var MainMealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// IsMain reports whether the meal type is Breakfast, Lunch or Dinner.
func (t MealType) IsMain() bool {
	return t == MealTypeBreakfast || t == MealTypeLunch || t == MealTypeDinner
}

// SnackPosition is one of the fixed named places a snack can occupy in the day.
type SnackPosition string

const (
	SnackBeforeBreakfast       SnackPosition = "Before Breakfast"
	SnackBetweenBreakfastLunch SnackPosition = "Between Breakfast and Lunch"
	SnackBetweenLunchDinner    SnackPosition = "Between Lunch and Dinner"
	SnackAfterDinner           SnackPosition = "After Dinner"
)

// SnackPositions lists every valid snack position in daily order.
var SnackPositions = []SnackPosition{
	SnackBeforeBreakfast,
	SnackBetweenBreakfastLunch,
	SnackBetweenLunchDinner,
	SnackAfterDinner,
}

// IsValid reports whether p is one of the four fixed snack positions.
func (p SnackPosition) IsValid() bool {
	for _, known := range SnackPositions {
		if p == known {
			return true
		}
	}

	return false
}

// ParseSnackPosition resolves a snack position case-insensitively.
func ParseSnackPosition(raw string) (SnackPosition, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range SnackPositions {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}

	return "", false
}

// Priority ranks how important it is to hit a slot's target.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)
