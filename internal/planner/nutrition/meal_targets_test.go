package nutrition

import (
	"testing"

	"mealplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMealTargets_CoversEverySlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		positions []entity.SnackPosition
	}{
		{name: "no snacks", positions: []entity.SnackPosition{}},
		{name: "one snack", positions: []entity.SnackPosition{entity.SnackBetweenLunchDinner}},
		{name: "all snacks", positions: entity.SnackPositions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := newMaleProfile()
			user.TDCI = &entity.TDCI{AdjustedTDCI: 2000}
			user.MealPreferences = &entity.MealPreferences{SnackPositions: tt.positions}

			daily, err := CalculateDailyTargets(user)
			require.NoError(t, err)

			targets := CalculateMealTargets(user, daily)
			require.Len(t, targets, 3+len(tt.positions))

			for i, mt := range entity.MainMealTypes {
				assert.Equal(t, mt, targets[i].MealType)
				assert.Equal(t, entity.PriorityHigh, targets[i].Priority)
				assert.Empty(t, targets[i].Position)
			}
			for i, pos := range tt.positions {
				target := targets[3+i]
				assert.Equal(t, entity.MealTypeSnack, target.MealType)
				assert.Equal(t, pos, target.Position)
				assert.Equal(t, entity.PriorityMedium, target.Priority)
			}

			assert.InDelta(t, 2000.0, SumTargets(targets).Calories, 0.01)
		})
	}
}

func TestCalculateMealTargets_RepeatedPositionGetsOneSlot(t *testing.T) {
	t.Parallel()

	user := newMaleProfile()
	user.TDCI = &entity.TDCI{AdjustedTDCI: 2000}
	user.MealPreferences = &entity.MealPreferences{SnackPositions: []entity.SnackPosition{
		entity.SnackBetweenLunchDinner,
		entity.SnackAfterDinner,
		entity.SnackBetweenLunchDinner,
	}}

	daily, err := CalculateDailyTargets(user)
	require.NoError(t, err)

	targets := CalculateMealTargets(user, daily)
	require.Len(t, targets, 5)
	assert.Equal(t, entity.SnackBetweenLunchDinner, targets[3].Position)
	assert.Equal(t, entity.SnackAfterDinner, targets[4].Position)
	assert.InDelta(t, 2000.0, SumTargets(targets).Calories, 0.01)
}

func TestCalculateMealTargets_DefaultSplit(t *testing.T) {
	t.Parallel()

	user := newMaleProfile()
	user.TDCI = &entity.TDCI{AdjustedTDCI: 2000}
	user.MealPreferences = &entity.MealPreferences{
		SnackPositions: []entity.SnackPosition{entity.SnackBetweenLunchDinner},
	}

	daily, err := CalculateDailyTargets(user)
	require.NoError(t, err)

	targets := CalculateMealTargets(user, daily)
	require.Len(t, targets, 4)

	assert.InDelta(t, 600.0, targets[0].Target.Calories, 0.01)
	assert.InDelta(t, 600.0, targets[1].Target.Calories, 0.01)
	assert.InDelta(t, 600.0, targets[2].Target.Calories, 0.01)
	assert.InDelta(t, 200.0, targets[3].Target.Calories, 0.01)
	assert.InDelta(t, 1.2, targets[0].PortionMultiplier, 0.0001)
	assert.InDelta(t, 0.4, targets[3].PortionMultiplier, 0.0001)
}

func TestCalculateMealTargets_CustomPortions(t *testing.T) {
	t.Parallel()

	user := newMaleProfile()
	user.TDCI = &entity.TDCI{AdjustedTDCI: 2000}
	user.MealPreferences = &entity.MealPreferences{
		SnackPositions: []entity.SnackPosition{entity.SnackBetweenLunchDinner},
	}
	user.PortionSizes = entity.PortionSizes{
		entity.Slot(entity.MealTypeBreakfast):       0.25,
		entity.Slot(entity.MealTypeLunch):           0.35,
		entity.Slot(entity.MealTypeDinner):          0.30,
		entity.Slot(entity.SnackBetweenLunchDinner): 0.10,
	}

	daily, err := CalculateDailyTargets(user)
	require.NoError(t, err)

	targets := CalculateMealTargets(user, daily)
	require.Len(t, targets, 4)

	assert.InDelta(t, 500.0, targets[0].Target.Calories, 0.01)
	assert.InDelta(t, 700.0, targets[1].Target.Calories, 0.01)
	assert.InDelta(t, 600.0, targets[2].Target.Calories, 0.01)
	assert.InDelta(t, 200.0, targets[3].Target.Calories, 0.01)
	assert.InDelta(t, daily.Protein*0.35, targets[1].Target.Protein, 0.01)
	assert.Equal(t, entity.Slot(entity.SnackBetweenLunchDinner), targets[3].SlotKey())
}

func TestCalculateMealTargets_NilDaily(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CalculateMealTargets(newMaleProfile(), nil))
}
