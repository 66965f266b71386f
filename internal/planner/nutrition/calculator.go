// Package nutrition computes daily and per-meal nutrition targets and scores how closely a set
// of meals meets them.
package nutrition

import (
	"math"
	"strings"

	"mealplan/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	// DefaultActivityMultiplier is applied when the profile has no activity multiplier.
	DefaultActivityMultiplier = 1.2
	// DefaultSnackShare is the fraction of the day given to each snack without custom portions.
	DefaultSnackShare = 0.10

	caloriesPerGramProtein = 4.0
	caloriesPerGramCarbs   = 4.0
	caloriesPerGramFat     = 9.0

	minFatPercent = 20.0
	maxFatPercent = 35.0
)

var (
	ErrMissingProfile      = errors.New("user profile is required")
	ErrInsufficientProfile = errors.New("age, height and weight are required to estimate calories")
)

// Source tells where the daily calorie figure came from.
type Source string

const (
	SourceTDCI       Source = "tdci"
	SourceCalculated Source = "calculated"
)

// DailyTargets is a user's daily calorie and macro target. Grams are whole numbers and the
// three percentages always sum to 100.
type DailyTargets struct {
	Calories          float64 `json:"calories"`
	Protein           float64 `json:"protein"`
	Carbs             float64 `json:"carbs"`
	Fat               float64 `json:"fat"`
	ProteinPercentage int     `json:"proteinPercentage"`
	CarbsPercentage   int     `json:"carbsPercentage"`
	FatPercentage     int     `json:"fatPercentage"`
	BMR               float64 `json:"bmr,omitempty"`
	TDEE              float64 `json:"tdee,omitempty"`
	Source            Source  `json:"source"`
}

// Macros returns the targets as a macro vector.
func (d *DailyTargets) Macros() entity.Macros {
	return entity.Macros{Calories: d.Calories, Protein: d.Protein, Carbs: d.Carbs, Fat: d.Fat}
}

type proteinStep struct {
	maxBodyFat float64
	multiplier float64
}

// Leaner bodies get a higher multiplier. Above the last threshold the last multiplier applies.
var proteinSteps = map[entity.Gender][]proteinStep{
	entity.GenderMale: {
		{8, 3.55}, {10, 3.4}, {12, 3.25}, {15, 3.1}, {18, 2.95}, {22, 2.8}, {25, 2.65},
	},
	entity.GenderFemale: {
		{15, 3.55}, {18, 3.4}, {21, 3.25}, {24, 3.1}, {28, 2.95}, {32, 2.8}, {36, 2.65},
	},
}

type bodyFatBounds struct {
	min, max, fallback float64
}

var fatBounds = map[entity.Gender]bodyFatBounds{
	entity.GenderMale:   {min: 8, max: 35, fallback: 20},
	entity.GenderFemale: {min: 15, max: 45, fallback: 28},
}

// CalculateDailyTargets returns the user's daily targets. A stored TDCI is the source of truth
// for calories; the Mifflin-St Jeor estimate is only used without one.
func CalculateDailyTargets(user *entity.UserProfile) (*DailyTargets, error) {
	if user == nil {
		return nil, ErrMissingProfile
	}

	targets := &DailyTargets{}
	if user.HasTDCI() {
		targets.Calories = math.Round(user.TDCI.AdjustedTDCI)
		targets.Source = SourceTDCI
	} else {
		bmr, err := CalculateBMR(user)
		if err != nil {
			return nil, err
		}
		activity := user.ActivityMultiplier
		if activity <= 0 {
			activity = DefaultActivityMultiplier
		}
		tdee := bmr * activity
		targets.BMR = math.Round(bmr)
		targets.TDEE = math.Round(tdee)
		targets.Calories = math.Round(tdee * (1 + user.FitnessGoal.CalorieAdjustmentPercent()/100))
		targets.Source = SourceCalculated
	}

	splitMacros(user, targets)

	return targets, nil
}

// CalculateBMR applies the Mifflin-St Jeor equation.
func CalculateBMR(user *entity.UserProfile) (float64, error) {
	if user == nil {
		return 0, ErrMissingProfile
	}
	if user.Age <= 0 || user.HeightCM <= 0 || user.WeightKG <= 0 {
		return 0, ErrInsufficientProfile
	}

	bmr := 10*user.WeightKG + 6.25*user.HeightCM - 5*float64(user.Age)
	if genderOf(user) == entity.GenderFemale {
		return bmr - 161, nil
	}

	return bmr + 5, nil
}

// ProteinMultiplier returns the grams of protein per kg of lean body mass for a body fat level.
func ProteinMultiplier(gender entity.Gender, bodyFat float64) float64 {
	steps := proteinSteps[normalizeGender(gender)]
	for _, step := range steps {
		if bodyFat <= step.maxBodyFat {
			return step.multiplier
		}
	}

	return steps[len(steps)-1].multiplier
}

// FatPercent interpolates the fat share of calories between 20 and 35 percent by where body
// fat sits inside the gender's bounds.
func FatPercent(gender entity.Gender, bodyFat float64) float64 {
	b := fatBounds[normalizeGender(gender)]
	pct := minFatPercent + (bodyFat-b.min)/(b.max-b.min)*(maxFatPercent-minFatPercent)

	return math.Min(maxFatPercent, math.Max(minFatPercent, pct))
}

func splitMacros(user *entity.UserProfile, t *DailyTargets) {
	if t.Calories <= 0 {
		t.CarbsPercentage = 100

		return
	}

	gender := genderOf(user)
	bodyFat := fatBounds[gender].fallback
	if user.BodyFatPercent != nil {
		bodyFat = *user.BodyFatPercent
	}

	fatCalories := t.Calories * FatPercent(gender, bodyFat) / 100
	t.Fat = math.Round(fatCalories / caloriesPerGramFat)

	if user.WeightKG > 0 {
		leanMass := user.WeightKG * (1 - bodyFat/100)
		t.Protein = math.Round(leanMass * ProteinMultiplier(gender, bodyFat))
	} else {
		// Without a weight there is no lean mass; fall back to a 30% protein share.
		t.Protein = math.Round(t.Calories * 0.30 / caloriesPerGramProtein)
	}

	// Protein never pushes carbs below zero.
	if maxProtein := math.Floor((t.Calories - t.Fat*caloriesPerGramFat) / caloriesPerGramProtein); t.Protein > maxProtein {
		t.Protein = math.Max(0, maxProtein)
	}

	remaining := t.Calories - t.Protein*caloriesPerGramProtein - t.Fat*caloriesPerGramFat
	t.Carbs = math.Max(0, math.Round(remaining/caloriesPerGramCarbs))

	t.ProteinPercentage = int(math.Round(t.Protein * caloriesPerGramProtein / t.Calories * 100))
	t.FatPercentage = int(math.Round(t.Fat * caloriesPerGramFat / t.Calories * 100))
	if t.ProteinPercentage+t.FatPercentage > 100 {
		t.ProteinPercentage = 100 - t.FatPercentage
	}
	t.CarbsPercentage = 100 - t.ProteinPercentage - t.FatPercentage
}

func genderOf(user *entity.UserProfile) entity.Gender {
	return normalizeGender(user.Gender)
}

func normalizeGender(g entity.Gender) entity.Gender {
	if strings.EqualFold(strings.TrimSpace(string(g)), string(entity.GenderFemale)) {
		return entity.GenderFemale
	}

	return entity.GenderMale
}
