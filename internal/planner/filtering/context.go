package filtering

import (
	"strings"
	"time"

	"mealplan/internal/domain/entity"
)

// TimeOfDay is the coarse part of the day a slot falls in.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Midday  TimeOfDay = "midday"
	Evening TimeOfDay = "evening"
)

// Season is a northern-hemisphere meteorological season.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

const (
	workoutMinProteinShare = 0.15
	morningMaxMinutes      = 30
)

var ovenKeywords = []string{"bake", "baking", "oven"}

// Context carries the situational signals applied on top of meal-type filtering.
type Context struct {
	IsWorkoutDay bool      `json:"isWorkoutDay"`
	TimeOfDay    TimeOfDay `json:"timeOfDay,omitempty"`
	Season       Season    `json:"season,omitempty"`
}

// ContextFor derives the context of a slot on date for user.
func ContextFor(user *entity.UserProfile, date time.Time, mealType entity.MealType, position entity.SnackPosition) Context {
	return Context{
		IsWorkoutDay: user.IsWorkoutDay(date),
		TimeOfDay:    TimeOfDayFor(mealType, position),
		Season:       SeasonFor(date),
	}
}

// TimeOfDayFor maps a slot to the part of the day it is eaten in.
func TimeOfDayFor(mealType entity.MealType, position entity.SnackPosition) TimeOfDay {
	switch position {
	case entity.SnackBeforeBreakfast, entity.SnackBetweenBreakfastLunch:
		return Morning
	case entity.SnackBetweenLunchDinner:
		return Midday
	case entity.SnackAfterDinner:
		return Evening
	}

	switch mealType {
	case entity.MealTypeBreakfast:
		return Morning
	case entity.MealTypeLunch:
		return Midday
	case entity.MealTypeDinner:
		return Evening
	default:
		return ""
	}
}

// SeasonFor returns the season of date's month.
func SeasonFor(date time.Time) Season {
	switch date.Month() {
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	case time.September, time.October, time.November:
		return Autumn
	default:
		return Winter
	}
}

// ApplyContextualFilters narrows recipes by the context. Workout days keep recipes with at
// least 15% of calories from protein, mornings keep recipes ready within 30 minutes, and
// summer drops recipes whose instructions mention baking or an oven. Foods pass through.
func ApplyContextualFilters(recipes []entity.Recipe, foods []entity.Food, ctx Context) ([]entity.Recipe, []entity.Food) {
	kept := make([]entity.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if ctx.IsWorkoutDay && ProteinShare(recipe.Macros()) < workoutMinProteinShare {
			continue
		}
		if ctx.TimeOfDay == Morning && recipe.TotalTime() > morningMaxMinutes {
			continue
		}
		if ctx.Season == Summer && mentionsOven(&recipe) {
			continue
		}
		kept = append(kept, recipe)
	}

	return kept, append([]entity.Food(nil), foods...)
}

// FilterByMaxPrepTime keeps recipes whose prep plus cook time is within maxMinutes.
// A non-positive limit keeps everything.
func FilterByMaxPrepTime(recipes []entity.Recipe, maxMinutes int) []entity.Recipe {
	if maxMinutes <= 0 {
		return append([]entity.Recipe(nil), recipes...)
	}

	kept := make([]entity.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.TotalTime() <= maxMinutes {
			kept = append(kept, recipe)
		}
	}

	return kept
}

// ProteinShare is the fraction of calories supplied by protein.
func ProteinShare(m entity.Macros) float64 {
	if m.Calories <= 0 {
		return 0
	}

	return m.Protein * 4 / m.Calories
}

func mentionsOven(recipe *entity.Recipe) bool {
	for _, step := range recipe.Instructions {
		lower := strings.ToLower(step)
		for _, keyword := range ovenKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}

	return false
}
