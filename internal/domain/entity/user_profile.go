package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Generation prerequisites.
var (
	ErrMissingTDCI            = errors.New("user profile has no daily calorie target (tdci.adjustedTDCI)")
	ErrMissingMealPreferences = errors.New("user profile has no meal preferences")
)

// Gender selects the constant set used by the BMR and macro formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// FitnessGoal is the user's training goal. Each goal carries a calorie adjustment.
type FitnessGoal string

const (
	GoalLoseFat            FitnessGoal = "Lose Fat"
	GoalMaintenance        FitnessGoal = "Maintenance"
	GoalBuildMuscle        FitnessGoal = "Build Muscle"
	GoalLoseFatBuildMuscle FitnessGoal = "Lose Fat & Build Muscle"
)

var goalAdjustments = map[FitnessGoal]float64{
	GoalLoseFat:            -20,
	GoalMaintenance:        0,
	GoalBuildMuscle:        10,
	GoalLoseFatBuildMuscle: -10,
}

// CalorieAdjustmentPercent returns the TDEE adjustment for the goal. Unknown goals adjust by 0.
func (g FitnessGoal) CalorieAdjustmentPercent() float64 {
	return goalAdjustments[g]
}

// TDCI is the user's total daily calorie intake target.
type TDCI struct {
	AdjustedTDCI float64 `json:"adjustedTDCI" yaml:"adjustedTDCI"`
}

// MealPreferences holds the ordered snack slots the user wants each day.
type MealPreferences struct {
	SnackPositions []SnackPosition `json:"snackPositions" yaml:"snackPositions"`
}

// UserProfile is the subject of meal plan generation.
type UserProfile struct {
	ID                 uuid.UUID        `json:"id" yaml:"id"`
	Name               string           `json:"name,omitempty" yaml:"name,omitempty"`
	Age                int              `json:"age" yaml:"age"`
	Gender             Gender           `json:"gender" yaml:"gender"`
	HeightCM           float64          `json:"heightCm" yaml:"heightCm"`
	WeightKG           float64          `json:"weightKg" yaml:"weightKg"`
	BodyFatPercent     *float64         `json:"bodyFatPercent,omitempty" yaml:"bodyFatPercent,omitempty"`
	ActivityMultiplier float64          `json:"activityMultiplier" yaml:"activityMultiplier"`
	FitnessGoal        FitnessGoal      `json:"fitnessGoal" yaml:"fitnessGoal"`
	TDCI               *TDCI            `json:"tdci,omitempty" yaml:"tdci,omitempty"`
	MealPreferences    *MealPreferences `json:"mealPreferences,omitempty" yaml:"mealPreferences,omitempty"`
	PortionSizes       PortionSizes     `json:"portionSizes,omitempty" yaml:"portionSizes,omitempty"`
	AvoidMeals         AvoidList        `json:"avoidMeals" yaml:"avoidMeals"`
	WorkoutDays        []string         `json:"workoutDays,omitempty" yaml:"workoutDays,omitempty"`
	CreatedAt          time.Time        `json:"createdAt" yaml:"-"`
	UpdatedAt          time.Time        `json:"updatedAt" yaml:"-"`
}

// HasTDCI reports whether a usable daily calorie target is present.
func (u *UserProfile) HasTDCI() bool {
	return u != nil && u.TDCI != nil && u.TDCI.AdjustedTDCI > 0
}

// HasMealPreferences reports whether meal preferences were configured.
func (u *UserProfile) HasMealPreferences() bool {
	return u != nil && u.MealPreferences != nil
}

// SnackPositions returns the configured snack slots, or nil.
func (u *UserProfile) SnackPositions() []SnackPosition {
	if !u.HasMealPreferences() {
		return nil
	}

	return u.MealPreferences.SnackPositions
}

// DistinctSnackPositions returns the configured snack slots with repeats dropped, keeping the
// first occurrence of each.
func (u *UserProfile) DistinctSnackPositions() []SnackPosition {
	positions := u.SnackPositions()
	if positions == nil {
		return nil
	}

	seen := make(map[SnackPosition]struct{}, len(positions))
	out := make([]SnackPosition, 0, len(positions))
	for _, pos := range positions {
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}

	return out
}

// IsWorkoutDay reports whether the weekday of t is one of the user's workout days.
// Workout days are weekday names ("Monday") matched case-insensitively.
func (u *UserProfile) IsWorkoutDay(t time.Time) bool {
	if u == nil {
		return false
	}
	day := t.Weekday().String()
	for _, d := range u.WorkoutDays {
		if strings.EqualFold(strings.TrimSpace(d), day) {
			return true
		}
	}

	return false
}
