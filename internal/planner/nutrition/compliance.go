package nutrition

import (
	"math"

	"mealplan/internal/domain/entity"
)

// ComplianceLevel buckets the overall deviation of a plan from its targets.
type ComplianceLevel string

const (
	ComplianceExcellent  ComplianceLevel = "excellent"
	ComplianceGood       ComplianceLevel = "good"
	ComplianceAcceptable ComplianceLevel = "acceptable"
	CompliancePoor       ComplianceLevel = "poor"
)

// Deviation holds absolute percent deviations from target.
type Deviation struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionalAnalysis compares the nutrition of a set of meals with the targets.
type NutritionalAnalysis struct {
	Actual           entity.Macros   `json:"actual"`
	Target           entity.Macros   `json:"target"`
	Deviation        Deviation       `json:"deviation"`
	OverallDeviation float64         `json:"overallDeviation"`
	Compliance       ComplianceLevel `json:"compliance"`
	MatchedMeals     int             `json:"matchedMeals"`
	UnmatchedMeals   int             `json:"unmatchedMeals"`
}

// AnalyzeMealPlanCompliance sums the nutrition of every meal whose name matches a recipe or a
// food and compares the total with targets. Unmatched meals, placeholders included, add nothing.
func AnalyzeMealPlanCompliance(
	meals []entity.Meal,
	recipes []entity.Recipe,
	foods []entity.Food,
	targets entity.Macros,
) *NutritionalAnalysis {
	analysis := &NutritionalAnalysis{Target: targets}

	for _, meal := range meals {
		if recipe, ok := entity.FindRecipeByName(recipes, meal.Name); ok {
			analysis.Actual = analysis.Actual.Add(recipe.Macros())
			analysis.MatchedMeals++

			continue
		}
		if food, ok := entity.FindFoodByName(foods, meal.Name); ok {
			analysis.Actual = analysis.Actual.Add(food.Macros())
			analysis.MatchedMeals++

			continue
		}
		analysis.UnmatchedMeals++
	}

	analysis.Deviation = Deviation{
		Calories: PercentDeviation(analysis.Actual.Calories, targets.Calories),
		Protein:  PercentDeviation(analysis.Actual.Protein, targets.Protein),
		Carbs:    PercentDeviation(analysis.Actual.Carbs, targets.Carbs),
		Fat:      PercentDeviation(analysis.Actual.Fat, targets.Fat),
	}
	analysis.OverallDeviation = analysis.Deviation.Calories*0.4 +
		analysis.Deviation.Protein*0.2 +
		analysis.Deviation.Carbs*0.2 +
		analysis.Deviation.Fat*0.2
	analysis.Compliance = ClassifyDeviation(analysis.OverallDeviation)

	return analysis
}

// PercentDeviation is |actual-target| as a percentage of target. A zero target deviates by
// 0 when actual is also zero and by 100 otherwise.
func PercentDeviation(actual, target float64) float64 {
	if target == 0 {
		if actual == 0 {
			return 0
		}

		return 100
	}

	return math.Abs(actual-target) / target * 100
}

// ClassifyDeviation buckets an overall deviation percentage.
func ClassifyDeviation(deviation float64) ComplianceLevel {
	switch {
	case deviation <= 5:
		return ComplianceExcellent
	case deviation <= 10:
		return ComplianceGood
	case deviation <= 20:
		return ComplianceAcceptable
	default:
		return CompliancePoor
	}
}
