package knapsack

import (
	"mealplan/internal/domain/entity"
)

const (
	DefaultTolerancePercent = 20.0

	defaultVolumePerTarget   = 5.0
	defaultPrepTimePerTarget = 45.0
	defaultCostPerTarget     = 10.0
)

// ConstraintOptions tunes CreateConstraintsFromTargets. Zero values take the defaults, which
// scale with the number of targets.
type ConstraintOptions struct {
	TolerancePercent float64
	MaxPrepTime      float64
	MaxCost          float64
	MaxVolume        float64
}

// CreateConstraintsFromTargets sums the meal targets and opens a tolerance band around the sum:
// max = sum*(100+tol)/100 and min = sum*(100-tol)/100.
func CreateConstraintsFromTargets(targets []entity.MealNutritionalTarget, opts ConstraintOptions) Constraints {
	tol := opts.TolerancePercent
	if tol <= 0 {
		tol = DefaultTolerancePercent
	}

	var sum entity.Macros
	for _, t := range targets {
		sum = sum.Add(t.Target)
	}

	n := float64(len(targets))
	maxVolume := opts.MaxVolume
	if maxVolume <= 0 {
		maxVolume = defaultVolumePerTarget * n
	}
	maxPrep := opts.MaxPrepTime
	if maxPrep <= 0 {
		maxPrep = defaultPrepTimePerTarget * n
	}
	maxCost := opts.MaxCost
	if maxCost <= 0 {
		maxCost = defaultCostPerTarget * n
	}

	upper := func(v float64) float64 { return v * (100 + tol) / 100 }
	lower := func(v float64) float64 { return v * (100 - tol) / 100 }

	return Constraints{
		MinCalories: lower(sum.Calories),
		MaxCalories: upper(sum.Calories),
		MinProtein:  lower(sum.Protein),
		MaxProtein:  upper(sum.Protein),
		MinCarbs:    lower(sum.Carbs),
		MaxCarbs:    upper(sum.Carbs),
		MinFat:      lower(sum.Fat),
		MaxFat:      upper(sum.Fat),
		MaxVolume:   maxVolume,
		MaxPrepTime: maxPrep,
		MaxCost:     maxCost,
	}
}
