package generator

import (
	"math"

	"mealplan/internal/planner/nutrition"
)

func evaluate(r *run) QualityMetrics {
	meals := r.plan.Meals
	analysis := nutrition.AnalyzeMealPlanCompliance(
		meals,
		r.catalog.Recipes,
		r.catalog.Foods,
		nutrition.SumTargets(r.targets),
	)

	unique := make(map[string]struct{}, len(meals))
	placeholders := 0
	for _, m := range meals {
		unique[m.Name] = struct{}{}
		if m.IsPlaceholder {
			placeholders++
		}
	}

	q := QualityMetrics{
		NutritionalAccuracy:     clampScore(100 - analysis.OverallDeviation),
		ConstraintCompliance:    complianceScores[analysis.Compliance],
		UserPreferenceAlignment: UserPreferenceAlignment,
		UserPreferenceDeclared:  true,
		Breakdown: &QualityBreakdown{
			Deviation:        analysis.Deviation,
			OverallDeviation: round1(analysis.OverallDeviation),
			Compliance:       analysis.Compliance,
			Feasible:         r.solution.Feasible,
			Violations:       r.solution.Violations,
			TotalMeals:       len(meals),
			UniqueMeals:      len(unique),
			PlaceholderMeals: placeholders,
			MatchedMeals:     analysis.MatchedMeals,
		},
	}
	if len(meals) > 0 {
		q.VarietyScore = round1(float64(len(unique)) / float64(len(meals)) * 100)
	}
	q.Overall = overallScore(q)

	return q
}

func overallScore(q QualityMetrics) float64 {
	return clampScore(q.NutritionalAccuracy*weightNutritionalAccuracy +
		q.VarietyScore*weightVariety +
		q.ConstraintCompliance*weightConstraintCompliance +
		q.UserPreferenceAlignment*weightPreferenceAlignment)
}

func clampScore(v float64) float64 {
	return round1(math.Max(0, math.Min(100, v)))
}
