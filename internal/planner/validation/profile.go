// Package validation runs pre-flight checks on generation inputs: user profiles, portion
// sizes and catalogs. It never modifies its input.
package validation

import (
	"fmt"

	"mealplan/internal/domain/entity"
)

// MinValidScore is the lowest score a valid profile may have.
const MinValidScore = 60

const (
	penaltyMissingTDCI            = 30
	penaltyMissingMealPreferences = 25
	penaltyMissingPortionSizes    = 15
)

type rangeCheck struct {
	name     string
	min, max float64
	penalty  int
}

var (
	ageCheck      = rangeCheck{name: "age", min: 13, max: 100, penalty: 5}
	heightCheck   = rangeCheck{name: "height (cm)", min: 120, max: 230, penalty: 3}
	weightCheck   = rangeCheck{name: "weight (kg)", min: 30, max: 300, penalty: 5}
	bodyFatCheck  = rangeCheck{name: "body fat %", min: 3, max: 60, penalty: 3}
	activityCheck = rangeCheck{name: "activity multiplier", min: 1.0, max: 2.5, penalty: 3}
	tdciCheck     = rangeCheck{name: "daily calorie target", min: 800, max: 6000, penalty: 5}
)

// Result is the outcome of a validation.
type Result struct {
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// IsValid reports whether the result has no errors and a score of at least MinValidScore.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0 && r.Score >= MinValidScore
}

func (r *Result) deduct(points int) {
	r.Score -= points
	if r.Score < 0 {
		r.Score = 0
	}
}

// ValidateUserProfile scores the completeness and sanity of a profile from 100 down.
// Missing TDCI or meal preferences are errors; everything else is a warning.
func ValidateUserProfile(user *entity.UserProfile) Result {
	r := Result{Score: 100}
	if user == nil {
		r.Score = 0
		r.Errors = append(r.Errors, "user profile is missing")

		return r
	}

	if !user.HasTDCI() {
		r.deduct(penaltyMissingTDCI)
		r.Errors = append(r.Errors, "daily calorie target (TDCI) is required")
	} else {
		r.checkRange(tdciCheck, user.TDCI.AdjustedTDCI)
	}

	if !user.HasMealPreferences() {
		r.deduct(penaltyMissingMealPreferences)
		r.Errors = append(r.Errors, "meal preferences are required")
	} else {
		r.Errors = append(r.Errors, ValidateSnackPositions(user.MealPreferences.SnackPositions)...)
	}

	if len(user.PortionSizes) == 0 {
		r.deduct(penaltyMissingPortionSizes)
		r.Warnings = append(r.Warnings, "portion sizes are not configured; defaults will be used")
	} else {
		portions := ValidatePortionSizes(user.PortionSizes, user.DistinctSnackPositions())
		r.Errors = append(r.Errors, portions.Errors...)
		r.Warnings = append(r.Warnings, portions.Warnings...)
	}

	r.checkRange(ageCheck, float64(user.Age))
	r.checkRange(heightCheck, user.HeightCM)
	r.checkRange(weightCheck, user.WeightKG)
	if user.BodyFatPercent != nil {
		r.checkRange(bodyFatCheck, *user.BodyFatPercent)
	}
	if user.ActivityMultiplier != 0 {
		r.checkRange(activityCheck, user.ActivityMultiplier)
	}

	r.Valid = r.IsValid()

	return r
}

// ValidateSnackPositions reports unknown positions and positions listed more than once.
func ValidateSnackPositions(positions []entity.SnackPosition) []string {
	var problems []string
	seen := make(map[entity.SnackPosition]struct{}, len(positions))
	for _, pos := range positions {
		if !pos.IsValid() {
			problems = append(problems, fmt.Sprintf("unknown snack position %q", pos))

			continue
		}
		if _, dup := seen[pos]; dup {
			problems = append(problems, fmt.Sprintf("snack position %q is listed more than once", pos))

			continue
		}
		seen[pos] = struct{}{}
	}

	return problems
}

// RequireGenerationPrerequisites returns the first missing prerequisite of generation.
func RequireGenerationPrerequisites(user *entity.UserProfile) error {
	if !user.HasTDCI() {
		return entity.ErrMissingTDCI
	}
	if !user.HasMealPreferences() {
		return entity.ErrMissingMealPreferences
	}

	return nil
}

func (r *Result) checkRange(c rangeCheck, value float64) {
	if value >= c.min && value <= c.max {
		return
	}
	r.deduct(c.penalty)
	if value == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s is missing", c.name))

		return
	}
	r.Warnings = append(r.Warnings, fmt.Sprintf("%s %.4g is outside the expected range [%.4g, %.4g]", c.name, value, c.min, c.max))
}
