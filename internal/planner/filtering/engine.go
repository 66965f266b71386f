package filtering

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/nutrition"
)

const (
	// BaseRecipeScore and BaseFoodScore are the starting user-preference scores.
	BaseRecipeScore = 50.0
	BaseFoodScore   = 40.0

	weightNutritionalFit = 0.40
	weightUserPreference = 0.30
	weightAvailability   = 0.20
	weightVariety        = 0.10

	minRecipeFit        = 20.0
	minRecipePreference = 10.0
	minFoodFit          = 15.0

	foodAvailability = 90.0
	freshVariety     = 80.0
	repeatedVariety  = 20.0
)

// ScoreBreakdown holds the four 0-100 components of an item's score.
type ScoreBreakdown struct {
	NutritionalFit float64 `json:"nutritionalFit"`
	UserPreference float64 `json:"userPreference"`
	Availability   float64 `json:"availability"`
	Variety        float64 `json:"variety"`
}

// ScoredItem is an eligible catalog item and its weighted score.
type ScoredItem struct {
	Item      entity.CatalogItem `json:"item"`
	Score     float64            `json:"score"`
	Breakdown ScoreBreakdown     `json:"breakdown"`
}

// Criteria describes the meal slot being filled.
type Criteria struct {
	Target        entity.MealNutritionalTarget
	User          *entity.UserProfile
	Context       Context
	PreviousMeals []string
}

// CriteriaFor builds the criteria of a slot on date, deriving the context from the profile.
func CriteriaFor(user *entity.UserProfile, target entity.MealNutritionalTarget, date time.Time, previousMeals []string) Criteria {
	return Criteria{
		Target:        target,
		User:          user,
		Context:       ContextFor(user, date, target.MealType, target.Position),
		PreviousMeals: previousMeals,
	}
}

// Stats summarizes a filtering run.
type Stats struct {
	Considered   int     `json:"considered"`
	Eligible     int     `json:"eligible"`
	Rejected     int     `json:"rejected"`
	AverageScore float64 `json:"averageScore"`
	TopScore     float64 `json:"topScore"`
}

// Results is the ranked output of FilterForMeal.
type Results struct {
	Items    []ScoredItem   `json:"items"`
	Filtered []FilteredItem `json:"filtered"`
	Stats    Stats          `json:"stats"`
}

// FilterForMeal runs avoidance, meal-type and contextual filtering, then scores what is left
// and returns the eligible items best first.
func FilterForMeal(recipes []entity.Recipe, foods []entity.Food, criteria Criteria) Results {
	avoided := ApplyAvoidanceFilters(recipes, foods, criteria.User)
	byMeal, byMealFoods := FilterByMealType(avoided.Recipes, avoided.Foods, criteria.Target.MealType, criteria.Target.Position)
	candidates, candidateFoods := ApplyContextualFilters(byMeal, byMealFoods, criteria.Context)

	results := Results{Filtered: avoided.Filtered}
	results.Stats.Considered = len(candidates) + len(candidateFoods)

	for i := range candidates {
		scored := EvaluateRecipe(&candidates[i], criteria)
		if scored.Breakdown.NutritionalFit < minRecipeFit || scored.Breakdown.UserPreference < minRecipePreference {
			results.Filtered = append(results.Filtered, FilteredItem{
				ID:     candidates[i].ID,
				Name:   candidates[i].Name,
				Kind:   entity.ItemKindRecipe,
				Reason: fmt.Sprintf("score too low (fit %.0f, preference %.0f)", scored.Breakdown.NutritionalFit, scored.Breakdown.UserPreference),
			})

			continue
		}
		results.Items = append(results.Items, scored)
	}

	for i := range candidateFoods {
		scored := EvaluateFood(&candidateFoods[i], criteria)
		if scored.Breakdown.NutritionalFit < minFoodFit {
			results.Filtered = append(results.Filtered, FilteredItem{
				ID:     candidateFoods[i].ID,
				Name:   candidateFoods[i].Name,
				Kind:   entity.ItemKindFood,
				Reason: fmt.Sprintf("nutritional fit too low (%.0f)", scored.Breakdown.NutritionalFit),
			})

			continue
		}
		results.Items = append(results.Items, scored)
	}

	SortByScore(results.Items)

	results.Stats.Eligible = len(results.Items)
	results.Stats.Rejected = results.Stats.Considered - results.Stats.Eligible
	if len(results.Items) > 0 {
		var total float64
		for _, item := range results.Items {
			total += item.Score
		}
		results.Stats.AverageScore = total / float64(len(results.Items))
		results.Stats.TopScore = results.Items[0].Score
	}

	return results
}

// EvaluateRecipe scores a recipe against the criteria.
func EvaluateRecipe(recipe *entity.Recipe, criteria Criteria) ScoredItem {
	breakdown := ScoreBreakdown{
		NutritionalFit: NutritionalFit(recipe.Macros(), criteria.Target.Target),
		UserPreference: recipePreference(recipe, criteria),
		Availability:   RecipeAvailability(recipe),
		Variety:        Variety(recipe.Name, criteria.PreviousMeals),
	}

	return ScoredItem{
		Item:      entity.RecipeItem(recipe),
		Score:     weightedScore(breakdown),
		Breakdown: breakdown,
	}
}

// EvaluateFood scores a food against the criteria.
func EvaluateFood(food *entity.Food, criteria Criteria) ScoredItem {
	breakdown := ScoreBreakdown{
		NutritionalFit: NutritionalFit(food.Macros(), criteria.Target.Target),
		UserPreference: foodPreference(food, criteria),
		Availability:   foodAvailability,
		Variety:        Variety(food.Name, criteria.PreviousMeals),
	}

	return ScoredItem{
		Item:      entity.FoodItem(food),
		Score:     weightedScore(breakdown),
		Breakdown: breakdown,
	}
}

// NutritionalFit inverts the weighted percent deviation from target into a 0-100 score.
func NutritionalFit(actual, target entity.Macros) float64 {
	deviation := nutrition.PercentDeviation(actual.Calories, target.Calories)*0.40 +
		nutrition.PercentDeviation(actual.Protein, target.Protein)*0.25 +
		nutrition.PercentDeviation(actual.Carbs, target.Carbs)*0.20 +
		nutrition.PercentDeviation(actual.Fat, target.Fat)*0.15

	return math.Max(0, 100-deviation)
}

// RecipeAvailability scores how easy a recipe is to source by its ingredient count.
func RecipeAvailability(recipe *entity.Recipe) float64 {
	score := 80.0
	n := len(recipe.Ingredients)
	switch {
	case n > 10:
		score -= 20
	case n > 6:
		score -= 10
	case n <= 4:
		score += 10
	}

	return score
}

// Variety penalizes items that appear in the recently eaten list.
func Variety(name string, previousMeals []string) float64 {
	for _, prev := range previousMeals {
		if strings.EqualFold(strings.TrimSpace(prev), name) {
			return repeatedVariety
		}
	}

	return freshVariety
}

// SortByScore orders items by score descending, then by name and id.
func SortByScore(items []ScoredItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Item.Name() != items[j].Item.Name() {
			return items[i].Item.Name() < items[j].Item.Name()
		}

		return items[i].Item.ID() < items[j].Item.ID()
	})
}

// Flatten lists every recipe and food with its baseline score, recipes first.
func Flatten(recipes []entity.Recipe, foods []entity.Food) []ScoredItem {
	items := make([]ScoredItem, 0, len(recipes)+len(foods))
	for i := range recipes {
		items = append(items, ScoredItem{Item: entity.RecipeItem(&recipes[i]), Score: BaseRecipeScore})
	}
	for i := range foods {
		items = append(items, ScoredItem{Item: entity.FoodItem(&foods[i]), Score: BaseFoodScore})
	}

	return items
}

func recipePreference(recipe *entity.Recipe, criteria Criteria) float64 {
	score := BaseRecipeScore
	if RecipeMatchesMealType(recipe, slotMealType(criteria.Target)) {
		score += 15
	}
	switch total := recipe.TotalTime(); {
	case total <= 30:
		score += 10
	case total > 60:
		score -= 15
	}
	if criteria.Context.IsWorkoutDay && ProteinShare(recipe.Macros()) >= 0.20 {
		score += 10
	}

	return clamp(score)
}

func foodPreference(food *entity.Food, criteria Criteria) float64 {
	score := BaseFoodScore
	if FoodSuitsMealType(food, slotMealType(criteria.Target)) {
		score += 15
	}
	if food.Protein > 10 {
		score += 10
	}

	return clamp(score)
}

func slotMealType(target entity.MealNutritionalTarget) entity.MealType {
	if target.Position != "" {
		return entity.MealTypeSnack
	}

	return target.MealType
}

func weightedScore(b ScoreBreakdown) float64 {
	return b.NutritionalFit*weightNutritionalFit +
		b.UserPreference*weightUserPreference +
		b.Availability*weightAvailability +
		b.Variety*weightVariety
}

func clamp(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}
