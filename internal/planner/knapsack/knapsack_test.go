package knapsack

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mealplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caloriesOnly(maxCalories float64) Constraints {
	return Constraints{
		MaxCalories: maxCalories,
		MaxProtein:  1000,
		MaxCarbs:    1000,
		MaxFat:      1000,
		MaxVolume:   1000,
		MaxPrepTime: 1000,
		MaxCost:     1000,
	}
}

// blockingItems makes greedy pick a cheap low-value item that blocks the valuable one.
func blockingItems() []Item {
	return []Item{
		{ID: "a", Name: "small", Value: 10, Weights: Weights{Calories: 10}},
		{ID: "b", Name: "large", Value: 50, Weights: Weights{Calories: 95}},
	}
}

func selectedIDs(sol *Solution) []string {
	ids := make([]string, 0, len(sol.Selected))
	for _, item := range sol.Selected {
		ids = append(ids, item.ID)
	}

	return ids
}

func generatedItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			ID:    fmt.Sprintf("item-%03d", i),
			Value: float64(40 + (i*37)%60),
			Weights: Weights{
				Calories: float64(80 + (i*53)%520),
				Protein:  float64(5 + (i*11)%40),
				Carbs:    float64(10 + (i*17)%70),
				Fat:      float64(2 + (i*7)%30),
				Volume:   float64(1 + i%4),
				PrepTime: float64((i * 13) % 70),
				Cost:     float64(1 + i%5),
			},
		})
	}

	return items
}

func TestCreateConstraintsFromTargets_ToleranceScaling(t *testing.T) {
	t.Parallel()

	targets := []entity.MealNutritionalTarget{{Target: entity.Macros{Calories: 1000}}}

	c := CreateConstraintsFromTargets(targets, ConstraintOptions{TolerancePercent: 20})

	assert.Equal(t, 1200.0, c.MaxCalories)
	assert.Equal(t, 800.0, c.MinCalories)
	assert.Equal(t, 5.0, c.MaxVolume)
	assert.Equal(t, 45.0, c.MaxPrepTime)
	assert.Equal(t, 10.0, c.MaxCost)
}

func TestCreateConstraintsFromTargets_SumsTargets(t *testing.T) {
	t.Parallel()

	targets := []entity.MealNutritionalTarget{
		{Target: entity.Macros{Calories: 500, Protein: 30, Carbs: 60, Fat: 15}},
		{Target: entity.Macros{Calories: 700, Protein: 40, Carbs: 80, Fat: 25}},
		{Target: entity.Macros{Calories: 300, Protein: 30, Carbs: 10, Fat: 10}},
	}

	c := CreateConstraintsFromTargets(targets, ConstraintOptions{MaxPrepTime: 90})

	assert.InDelta(t, 1800.0, c.MaxCalories, 0.0001)
	assert.InDelta(t, 1200.0, c.MinCalories, 0.0001)
	assert.InDelta(t, 120.0, c.MaxProtein, 0.0001)
	assert.InDelta(t, 40.0, c.MinFat, 0.0001)
	assert.Equal(t, 90.0, c.MaxPrepTime)
	assert.Equal(t, 15.0, c.MaxVolume)
}

func TestCheckFeasibility(t *testing.T) {
	t.Parallel()

	c := Constraints{
		MinCalories: 100, MaxCalories: 200,
		MaxProtein: 50, MaxCarbs: 50, MaxFat: 50,
		MaxVolume: 3, MaxPrepTime: 30, MaxCost: 5,
	}

	ok, violations := CheckFeasibility([]Item{{Weights: Weights{Calories: 150, Volume: 2}}}, c)
	assert.True(t, ok)
	assert.Empty(t, violations)

	ok, violations = CheckFeasibility([]Item{{Weights: Weights{Calories: 50, Volume: 4}}}, c)
	assert.False(t, ok)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "calories")
	assert.Contains(t, violations[1], "volume")

	assert.True(t, CanAddItem(Weights{Calories: 100}, Item{Weights: Weights{Calories: 100}}, c))
	assert.False(t, CanAddItem(Weights{Calories: 150}, Item{Weights: Weights{Calories: 100}}, c))
}

func TestSolve_Greedy(t *testing.T) {
	t.Parallel()

	sol, err := Solve(context.Background(), blockingItems(), caloriesOnly(100), Options{Algorithm: Greedy})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, selectedIDs(sol))
	assert.Equal(t, Greedy, sol.Algorithm)
	assert.InDelta(t, GreedyOptimality, sol.Optimality, 0.0001)
	assert.True(t, sol.OptimalityDeclared)
}

func TestSolve_HybridSwapsOutOfGreedyTrap(t *testing.T) {
	t.Parallel()

	sol, err := Solve(context.Background(), blockingItems(), caloriesOnly(100), Options{Algorithm: Hybrid})
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, selectedIDs(sol))
	assert.InDelta(t, 50.0, sol.TotalValue, 0.0001)
	assert.Equal(t, Hybrid, sol.Algorithm)
	assert.Equal(t, 2, sol.Iterations)
	assert.InDelta(t, HybridOptimality, sol.Optimality, 0.0001)
}

func TestSolve_HybridNeverRemovesWithoutReplacement(t *testing.T) {
	t.Parallel()

	// Dropping "a" alone would let "b" and "c" both fit, but that needs a removal move.
	items := []Item{
		{ID: "a", Value: 32, Weights: Weights{Calories: 60}},
		{ID: "b", Value: 25, Weights: Weights{Calories: 50}},
		{ID: "c", Value: 25, Weights: Weights{Calories: 50}},
	}

	sol, err := Solve(context.Background(), items, caloriesOnly(100), Options{Algorithm: Hybrid})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, selectedIDs(sol))
	assert.InDelta(t, 32.0, sol.TotalValue, 0.0001)
}

func TestSolve_Dynamic(t *testing.T) {
	t.Parallel()

	sol, err := Solve(context.Background(), blockingItems(), caloriesOnly(100), Options{Algorithm: Dynamic})
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, selectedIDs(sol))
	assert.Equal(t, Dynamic, sol.Algorithm)
	assert.InDelta(t, DynamicOptimality, sol.Optimality, 0.0001)
}

func TestSolve_DynamicFallsBackToGreedy(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: "a", Value: 10, Weights: Weights{Calories: 10, Volume: 1}},
		{ID: "b", Value: 50, Weights: Weights{Calories: 95, Volume: 10}},
	}
	c := caloriesOnly(100)
	c.MaxVolume = 5

	sol, err := Solve(context.Background(), items, c, Options{Algorithm: Dynamic})
	require.NoError(t, err)

	assert.Equal(t, Greedy, sol.Algorithm)
	assert.Equal(t, []string{"a"}, selectedIDs(sol))
	assert.InDelta(t, GreedyOptimality, sol.Optimality, 0.0001)
}

func TestSolve_DynamicDelegatesLargeSetsToHybrid(t *testing.T) {
	t.Parallel()

	items := generatedItems(MaxDynamicItems + 1)
	c := CreateConstraintsFromTargets([]entity.MealNutritionalTarget{
		{Target: entity.Macros{Calories: 600, Protein: 40, Carbs: 60, Fat: 20}},
		{Target: entity.Macros{Calories: 800, Protein: 50, Carbs: 90, Fat: 30}},
	}, ConstraintOptions{})

	sol, err := Solve(context.Background(), items, c, Options{Algorithm: Dynamic})
	require.NoError(t, err)
	assert.Equal(t, Hybrid, sol.Algorithm)
}

func TestSolve_SelectionRespectsBounds(t *testing.T) {
	t.Parallel()

	items := generatedItems(40)
	c := CreateConstraintsFromTargets([]entity.MealNutritionalTarget{
		{Target: entity.Macros{Calories: 500, Protein: 30, Carbs: 55, Fat: 18}},
		{Target: entity.Macros{Calories: 700, Protein: 45, Carbs: 75, Fat: 25}},
		{Target: entity.Macros{Calories: 600, Protein: 40, Carbs: 60, Fat: 22}},
		{Target: entity.Macros{Calories: 200, Protein: 10, Carbs: 25, Fat: 8}},
	}, ConstraintOptions{})

	for _, algo := range []Algorithm{Greedy, Dynamic, Hybrid} {
		t.Run(string(algo), func(t *testing.T) {
			t.Parallel()

			sol, err := Solve(context.Background(), items, c, Options{Algorithm: algo})
			require.NoError(t, err)

			assert.True(t, withinMax(Usage(sol.Selected), c))
			feasible, violations := CheckFeasibility(sol.Selected, c)
			assert.Equal(t, feasible, sol.Feasible)
			assert.Equal(t, violations, sol.Violations)
			assert.Equal(t, Usage(sol.Selected), sol.Usage)
		})
	}
}

func TestSolve_Deterministic(t *testing.T) {
	t.Parallel()

	items := generatedItems(45)
	c := CreateConstraintsFromTargets([]entity.MealNutritionalTarget{
		{Target: entity.Macros{Calories: 900, Protein: 60, Carbs: 100, Fat: 30}},
		{Target: entity.Macros{Calories: 900, Protein: 60, Carbs: 100, Fat: 30}},
	}, ConstraintOptions{})

	first, err := Solve(context.Background(), items, c, Options{})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Solve(context.Background(), items, c, Options{})
		require.NoError(t, err)
		assert.Equal(t, selectedIDs(first), selectedIDs(again))
	}
}

func TestSolve_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := Solve(ctx, blockingItems(), caloriesOnly(100), Options{})

	require.ErrorIs(t, err, ErrCancelled)
	require.NotNil(t, sol)
	assert.Empty(t, sol.Selected)
}

func TestSolve_TimeBudgetKeepsBestSoFar(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		if calls <= 2 {
			return start
		}

		return start.Add(time.Hour)
	}

	sol, err := Solve(context.Background(), blockingItems(), caloriesOnly(100), Options{
		Algorithm: Hybrid,
		TimeLimit: time.Second,
		Now:       clock,
	})
	require.NoError(t, err)

	assert.True(t, sol.TimedOut)
	assert.Zero(t, sol.Iterations)
	assert.Equal(t, []string{"a"}, selectedIDs(sol), "greedy seed is kept")
}

func TestRecipeToItem(t *testing.T) {
	t.Parallel()

	recipe := &entity.Recipe{
		ID: "r1", Name: "Omelette", Categories: []string{"Breakfast"},
		PrepTime: 5, CookTime: 5, Calories: 500, Protein: 30, Carbs: 20, Fat: 30,
		Ingredients: make([]entity.Ingredient, 6),
	}
	target := entity.MealNutritionalTarget{
		MealType: entity.MealTypeBreakfast,
		Target:   entity.Macros{Calories: 500},
	}

	item := RecipeToItem(recipe, target)

	assert.Equal(t, "Breakfast/r1", item.ID)
	assert.InDelta(t, 100.0, item.Value, 0.0001)
	assert.InDelta(t, 5.0, item.Weights.Volume, 0.0001)
	assert.InDelta(t, 3.0, item.Weights.Cost, 0.0001)
	assert.InDelta(t, 10.0, item.Weights.PrepTime, 0.0001)
	assert.Equal(t, entity.Slot(entity.MealTypeBreakfast), item.Metadata.Slot)
	assert.Equal(t, "r1", item.Metadata.Source.ID())

	snack := entity.MealNutritionalTarget{
		MealType: entity.MealTypeSnack,
		Position: entity.SnackAfterDinner,
		Target:   entity.Macros{Calories: 1000},
	}
	item = RecipeToItem(recipe, snack)
	assert.Equal(t, "After Dinner/r1", item.ID)
	assert.InDelta(t, 65.0, item.Value, 0.0001, "no ratio or category bonus")
}

func TestFoodToItem(t *testing.T) {
	t.Parallel()

	target := entity.MealNutritionalTarget{MealType: entity.MealTypeLunch, Target: entity.Macros{Calories: 200}}

	apple := FoodToItem(&entity.Food{ID: "f1", Name: "Apple", Calories: 52, Protein: 0.3}, target)
	assert.InDelta(t, 45.0, apple.Value, 0.0001)
	assert.InDelta(t, 1.0, apple.Weights.Volume, 0.0001)
	assert.InDelta(t, 1.0, apple.Weights.Cost, 0.0001)
	assert.Zero(t, apple.Weights.PrepTime)

	chicken := FoodToItem(&entity.Food{ID: "f2", Name: "Chicken", Category: "Protein", Calories: 165, Protein: 31}, target)
	assert.InDelta(t, 70.0, chicken.Value, 0.0001)
	assert.Equal(t, []string{"Protein"}, chicken.Metadata.Categories)
}

func TestRecipeVolumeAndCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recipe entity.Recipe
		volume float64
		cost   float64
	}{
		{name: "light and simple", recipe: entity.Recipe{Calories: 120, PrepTime: 10, Ingredients: make([]entity.Ingredient, 1)}, volume: 1, cost: 1},
		{name: "medium", recipe: entity.Recipe{Calories: 350, PrepTime: 45, Ingredients: make([]entity.Ingredient, 4)}, volume: 3, cost: 3},
		{name: "long cook", recipe: entity.Recipe{Calories: 250, CookTime: 90, Ingredients: make([]entity.Ingredient, 4)}, volume: 2, cost: 4},
		{name: "volume capped", recipe: entity.Recipe{Calories: 600, Ingredients: make([]entity.Ingredient, 9)}, volume: 5, cost: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.volume, RecipeVolume(&tt.recipe), 0.0001)
			assert.InDelta(t, tt.cost, RecipeCost(&tt.recipe), 0.0001)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]Algorithm{"greedy": Greedy, " Dynamic ": Dynamic, "HYBRID": Hybrid, "": ""} {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("annealing")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
