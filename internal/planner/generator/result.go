package generator

import (
	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/knapsack"
	"mealplan/internal/planner/nutrition"
)

// UserPreferenceAlignment is a declared constant. No preference signal is computed yet.
const UserPreferenceAlignment = 75.0

const (
	weightNutritionalAccuracy  = 0.35
	weightVariety              = 0.25
	weightConstraintCompliance = 0.25
	weightPreferenceAlignment  = 0.15
)

var complianceScores = map[nutrition.ComplianceLevel]float64{
	nutrition.ComplianceExcellent:  95,
	nutrition.ComplianceGood:       80,
	nutrition.ComplianceAcceptable: 65,
	nutrition.CompliancePoor:       40,
}

// QualityBreakdown explains the quality sub-scores.
type QualityBreakdown struct {
	Deviation        nutrition.Deviation       `json:"deviation"`
	OverallDeviation float64                   `json:"overallDeviation"`
	Compliance       nutrition.ComplianceLevel `json:"compliance"`
	Feasible         bool                      `json:"feasible"`
	Violations       []string                  `json:"violations,omitempty"`
	TotalMeals       int                       `json:"totalMeals"`
	UniqueMeals      int                       `json:"uniqueMeals"`
	PlaceholderMeals int                       `json:"placeholderMeals"`
	MatchedMeals     int                       `json:"matchedMeals"`
}

// QualityMetrics scores a generated plan from 0 to 100.
type QualityMetrics struct {
	Overall                 float64 `json:"overall"`
	NutritionalAccuracy     float64 `json:"nutritionalAccuracy"`
	VarietyScore            float64 `json:"varietyScore"`
	ConstraintCompliance    float64 `json:"constraintCompliance"`
	UserPreferenceAlignment float64 `json:"userPreferenceAlignment"`
	// UserPreferenceDeclared is always true: the alignment is not measured.
	UserPreferenceDeclared bool              `json:"userPreferenceDeclared"`
	Breakdown              *QualityBreakdown `json:"breakdown,omitempty"`
}

// Metadata describes how a plan was produced. Optimality is the solver's declared figure.
type Metadata struct {
	Mode                Mode                 `json:"mode"`
	AlgorithmsUsed      []knapsack.Algorithm `json:"algorithmsUsed"`
	IterationsCompleted int                  `json:"iterationsCompleted"`
	RecipesConsidered   int                  `json:"recipesConsidered"`
	ItemsFiltered       int                  `json:"itemsFiltered"`
	FinalOptimality     float64              `json:"finalOptimality"`
	OptimalityDeclared  bool                 `json:"optimalityDeclared"`
}

// GenerationResult is the outcome of a generation run. Callers must check Success before
// reading MealPlan or WeekPlan. A failed result carries zero QualityMetrics.
type GenerationResult struct {
	Success      bool                    `json:"success"`
	MealPlan     *entity.MealPlan        `json:"mealPlan,omitempty"`
	WeekPlan     []*entity.MealPlan      `json:"weekPlan,omitempty"`
	DailyTargets *nutrition.DailyTargets `json:"dailyTargets,omitempty"`
	Quality      QualityMetrics          `json:"quality"`
	// GenerationTime is the wall time of the run in milliseconds.
	GenerationTime int64    `json:"generationTime"`
	Error          string   `json:"error,omitempty"`
	Err            error    `json:"-"`
	Warnings       []string `json:"warnings,omitempty"`
	Metadata       Metadata `json:"metadata"`
}

// Plans returns the day plan or the week plans of a successful result.
func (r *GenerationResult) Plans() []*entity.MealPlan {
	if r == nil || !r.Success {
		return nil
	}
	if r.MealPlan != nil {
		return []*entity.MealPlan{r.MealPlan}
	}

	return r.WeekPlan
}
