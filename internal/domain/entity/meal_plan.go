package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the on-the-wire format of plan dates.
const DateLayout = "2006-01-02"

// MealNutritionalTarget is the nutrition owed to one meal slot. Derived, never persisted.
type MealNutritionalTarget struct {
	MealType          MealType      `json:"mealType"`
	Position          SnackPosition `json:"position,omitempty"`
	Target            Macros        `json:"target"`
	PortionMultiplier float64       `json:"portionMultiplier"`
	Priority          Priority      `json:"priority"`
}

// SlotKey identifies the slot: the snack position when set, otherwise the meal type.
func (t MealNutritionalTarget) SlotKey() Slot {
	return SlotFor(t.MealType, t.Position)
}

// Meal is one entry of a generated plan.
type Meal struct {
	ID            uuid.UUID     `json:"id"`
	Type          MealType      `json:"type"`
	Name          string        `json:"name"`
	Position      SnackPosition `json:"position,omitempty"`
	UserID        uuid.UUID     `json:"userId"`
	Date          string        `json:"date"`
	RecipeID      string        `json:"recipeId,omitempty"`
	FoodID        string        `json:"foodId,omitempty"`
	Calories      float64       `json:"calories"`
	Protein       float64       `json:"protein"`
	Carbs         float64       `json:"carbs"`
	Fat           float64       `json:"fat"`
	IsPlaceholder bool          `json:"isPlaceholder,omitempty"`
}

// Macros returns the meal's nutrition.
func (m Meal) Macros() Macros {
	return Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

// SlotKey identifies the slot the meal fills.
func (m Meal) SlotKey() Slot {
	return SlotFor(m.Type, m.Position)
}

// MealPlan is one user's meals for one date.
type MealPlan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Date      string    `json:"date"`
	Meals     []Meal    `json:"meals"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key is the meal-store key of the plan.
func (p *MealPlan) Key() string {
	return PlanKey(p.UserID, p.Date)
}

// PlanKey builds the "userId-date" key under which plans are merged.
func PlanKey(userID uuid.UUID, date string) string {
	return userID.String() + "-" + date
}

// ParseDate validates a YYYY-MM-DD date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
