package structure

import (
	"testing"
	"time"

	"mealplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func profileWithSnacks(positions ...entity.SnackPosition) *entity.UserProfile {
	return &entity.UserProfile{
		TDCI:            &entity.TDCI{AdjustedTDCI: 2000},
		MealPreferences: &entity.MealPreferences{SnackPositions: positions},
	}
}

func slots(ds *DayStructure) []entity.Slot {
	out := make([]entity.Slot, 0, len(ds.Meals))
	for _, m := range ds.Meals {
		out = append(out, m.SlotKey())
	}

	return out
}

func TestBuildDayStructure_DefaultPortions(t *testing.T) {
	t.Parallel()

	ds, err := BuildDayStructure(profileWithSnacks(entity.SnackBetweenLunchDinner), testDate)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", ds.Date)
	assert.False(t, ds.UsesCustomPortions)
	assert.Equal(t, []entity.Slot{
		entity.Slot(entity.MealTypeBreakfast),
		entity.Slot(entity.MealTypeLunch),
		entity.Slot(entity.SnackBetweenLunchDinner),
		entity.Slot(entity.MealTypeDinner),
	}, slots(ds))

	calories := map[entity.Slot]int{}
	for _, m := range ds.Meals {
		calories[m.SlotKey()] = m.CalorieTarget
	}
	assert.Equal(t, 476, calories[entity.Slot(entity.MealTypeBreakfast)])
	assert.Equal(t, 646, calories[entity.Slot(entity.MealTypeLunch)])
	assert.Equal(t, 578, calories[entity.Slot(entity.MealTypeDinner)])
	assert.Equal(t, 300, calories[entity.Slot(entity.SnackBetweenLunchDinner)])

	assert.Equal(t, 1700, ds.Distribution.MainMealCalories)
	assert.Equal(t, 300, ds.Distribution.SnackCalories)
	assert.True(t, ds.Distribution.Balanced)
	assert.Equal(t, entity.PriorityMedium, ds.Meals[2].Priority)
}

func TestBuildDayStructure_CustomPortions(t *testing.T) {
	t.Parallel()

	user := profileWithSnacks(entity.SnackBetweenLunchDinner)
	user.PortionSizes = entity.PortionSizes{
		entity.Slot(entity.MealTypeBreakfast):       0.25,
		entity.Slot(entity.MealTypeLunch):           0.35,
		entity.Slot(entity.SnackBetweenLunchDinner): 0.10,
	}

	ds, err := BuildDayStructure(user, testDate)
	require.NoError(t, err)

	assert.True(t, ds.UsesCustomPortions)
	require.Len(t, ds.Meals, 4)
	assert.Equal(t, 500, ds.Meals[0].CalorieTarget)
	assert.Equal(t, 700, ds.Meals[1].CalorieTarget)
	assert.Equal(t, 200, ds.Meals[2].CalorieTarget)
	assert.Equal(t, 600, ds.Meals[3].CalorieTarget, "dinner falls back to 30%")
	assert.InDelta(t, 1.4, ds.Meals[1].PortionMultiplier, 0.0001)
}

func TestBuildDayStructure_CanonicalOrder(t *testing.T) {
	t.Parallel()

	ds, err := BuildDayStructure(profileWithSnacks(
		entity.SnackAfterDinner,
		entity.SnackBeforeBreakfast,
		entity.SnackBetweenBreakfastLunch,
	), testDate)
	require.NoError(t, err)

	assert.Equal(t, []entity.Slot{
		entity.Slot(entity.SnackBeforeBreakfast),
		entity.Slot(entity.MealTypeBreakfast),
		entity.Slot(entity.SnackBetweenBreakfastLunch),
		entity.Slot(entity.MealTypeLunch),
		entity.Slot(entity.MealTypeDinner),
		entity.Slot(entity.SnackAfterDinner),
	}, slots(ds))
}

func TestBuildDayStructure_Prerequisites(t *testing.T) {
	t.Parallel()

	_, err := BuildDayStructure(&entity.UserProfile{TDCI: &entity.TDCI{AdjustedTDCI: 2000}}, testDate)
	require.ErrorIs(t, err, entity.ErrMissingMealPreferences)

	_, err = BuildDayStructure(&entity.UserProfile{MealPreferences: &entity.MealPreferences{}}, testDate)
	require.ErrorIs(t, err, entity.ErrMissingTDCI)

	_, err = BuildDayStructure(nil, testDate)
	require.ErrorIs(t, err, entity.ErrMissingMealPreferences)
}

func TestCalculateDefaultPortionSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		snacks int
		share  float64
	}{
		{snacks: 0, share: 0},
		{snacks: 1, share: 0.15},
		{snacks: 2, share: 0.12},
		{snacks: 3, share: 0.08},
		{snacks: 4, share: 0.06},
	}

	for _, tt := range tests {
		positions := entity.SnackPositions[:tt.snacks]
		sizes := CalculateDefaultPortionSizes(positions)

		assert.Len(t, sizes, 3+tt.snacks)
		assert.InDelta(t, 1.0, sizes.Total(), 0.0001, "snacks=%d", tt.snacks)
		for _, pos := range positions {
			assert.InDelta(t, tt.share, sizes[entity.Slot(pos)], 0.0001)
		}

		remainder := 1 - tt.share*float64(tt.snacks)
		assert.InDelta(t, remainder*0.38, sizes[entity.Slot(entity.MealTypeLunch)], 0.0001)
	}
}

func TestValidateMealStructure_ValidDefault(t *testing.T) {
	t.Parallel()

	ds, err := BuildDayStructure(profileWithSnacks(entity.SnackBetweenLunchDinner), testDate)
	require.NoError(t, err)

	v := ValidateMealStructure(ds)

	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
	assert.Empty(t, v.Warnings)
}

func TestValidateMealStructure_Problems(t *testing.T) {
	t.Parallel()

	main := func(mt entity.MealType, kcal int) MealEntry {
		return MealEntry{MealType: mt, PortionMultiplier: 1, CalorieTarget: kcal, Priority: entity.PriorityHigh}
	}

	tests := []struct {
		name     string
		ds       *DayStructure
		valid    bool
		errors   int
		warnings int
	}{
		{
			name:   "missing dinner",
			ds:     &DayStructure{DailyCalories: 1000, Meals: []MealEntry{main(entity.MealTypeBreakfast, 500), main(entity.MealTypeLunch, 500)}},
			valid:  false,
			errors: 1,
		},
		{
			name: "bad multiplier and empty target",
			ds: &DayStructure{DailyCalories: 1500, Meals: []MealEntry{
				main(entity.MealTypeBreakfast, 500), main(entity.MealTypeLunch, 500),
				{MealType: entity.MealTypeDinner, PortionMultiplier: 0, CalorieTarget: 0},
			}},
			valid:    false,
			errors:   2,
			warnings: 1,
		},
		{
			name: "tiny breakfast and huge dinner",
			ds: &DayStructure{DailyCalories: 2000, Meals: []MealEntry{
				main(entity.MealTypeBreakfast, 150), main(entity.MealTypeLunch, 500), main(entity.MealTypeDinner, 1350),
			}},
			valid:    true,
			warnings: 2,
		},
		{
			name: "too many meals",
			ds: func() *DayStructure {
				meals := []MealEntry{main(entity.MealTypeBreakfast, 400), main(entity.MealTypeLunch, 400), main(entity.MealTypeDinner, 400)}
				for i := 0; i < 6; i++ {
					meals = append(meals, MealEntry{MealType: entity.MealTypeSnack, PortionMultiplier: 0.5, CalorieTarget: 100})
				}

				return &DayStructure{DailyCalories: 1800, Meals: meals}
			}(),
			valid:    true,
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := ValidateMealStructure(tt.ds)

			assert.Equal(t, tt.valid, v.Valid)
			assert.Len(t, v.Errors, tt.errors, "errors: %v", v.Errors)
			assert.Len(t, v.Warnings, tt.warnings, "warnings: %v", v.Warnings)
		})
	}
}

func TestValidateMealStructure_Nil(t *testing.T) {
	t.Parallel()

	v := ValidateMealStructure(nil)
	assert.False(t, v.Valid)
	assert.NotEmpty(t, v.Errors)
}
