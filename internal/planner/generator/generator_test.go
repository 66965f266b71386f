package generator

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/knapsack"
	"mealplan/internal/planner/structure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 2, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type generatorFixtures struct {
	generator *Generator
	user      *entity.UserProfile
	catalog   *entity.Catalog
}

func createTestGenerator(t *testing.T) *generatorFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &generatorFixtures{
		generator: New(Config{}, logger, WithClock(fixedClock)),
		user:      testUser(),
		catalog:   testCatalog(),
	}
}

func testUser() *entity.UserProfile {
	return &entity.UserProfile{
		ID:              uuid.MustParse("0b7f5d8e-3c1a-4e2b-9f6d-7a8b9c0d1e2f"),
		Gender:          entity.GenderMale,
		TDCI:            &entity.TDCI{AdjustedTDCI: 2000},
		MealPreferences: &entity.MealPreferences{SnackPositions: []entity.SnackPosition{entity.SnackBetweenLunchDinner}},
	}
}

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Recipes: []entity.Recipe{
			{ID: "r-oats", Name: "Overnight Oats", Categories: []string{"Breakfast"}, PrepTime: 10, Calories: 420, Protein: 18, Carbs: 60, Fat: 12},
			{ID: "r-omelette", Name: "Veggie Omelette", Categories: []string{"Breakfast"}, Allergens: []string{"Eggs"}, PrepTime: 15, CookTime: 10, Calories: 380, Protein: 24, Carbs: 10, Fat: 26},
			{ID: "r-bowl", Name: "Chicken Quinoa Bowl", Categories: []string{"Lunch"}, PrepTime: 15, CookTime: 20, Calories: 620, Protein: 45, Carbs: 65, Fat: 18},
			{ID: "r-wrap", Name: "Turkey Wrap", Categories: []string{"Lunch"}, PrepTime: 10, Calories: 540, Protein: 35, Carbs: 50, Fat: 20},
			{ID: "r-salmon", Name: "Baked Salmon", Categories: []string{"Dinner"}, PrepTime: 10, CookTime: 25, Calories: 580, Protein: 42, Carbs: 30, Fat: 30},
			{ID: "r-lasagna", Name: "Cheese Lasagna", Categories: []string{"Dinner"}, FoodTypes: []string{"Pasta"}, Allergens: []string{"Dairy"}, PrepTime: 20, CookTime: 40, Calories: 650, Protein: 30, Carbs: 60, Fat: 30},
			{ID: "r-hummus", Name: "Hummus Plate", Categories: []string{"Snack"}, PrepTime: 5, Calories: 220, Protein: 8, Carbs: 24, Fat: 10},
		},
		Foods: []entity.Food{
			{ID: "f-apple", Name: "Apple", Category: "Fruits", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
			{ID: "f-almonds", Name: "Almonds", Category: "Nuts", Calories: 160, Protein: 6, Carbs: 6, Fat: 14},
		},
	}
}

func withoutDinners(c *entity.Catalog) *entity.Catalog {
	out := &entity.Catalog{Foods: c.Foods}
	for _, r := range c.Recipes {
		if !r.HasCategory("Dinner") {
			out.Recipes = append(out.Recipes, r)
		}
	}

	return out
}

func slotsOf(plan *entity.MealPlan) map[entity.Slot]int {
	out := map[entity.Slot]int{}
	for _, m := range plan.Meals {
		out[m.SlotKey()]++
	}

	return out
}

// splitSlots counts selected and placeholder meals per slot separately.
func splitSlots(plan *entity.MealPlan) (selected, placeholders map[entity.Slot]int) {
	selected, placeholders = map[entity.Slot]int{}, map[entity.Slot]int{}
	for _, m := range plan.Meals {
		if m.IsPlaceholder {
			placeholders[m.SlotKey()]++

			continue
		}
		selected[m.SlotKey()]++
	}

	return selected, placeholders
}

func TestGenerate_EndToEnd(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Mode: ModeBalanced})

	require.True(t, res.Success, "error: %s", res.Error)
	require.NotNil(t, res.MealPlan)
	assert.GreaterOrEqual(t, len(res.MealPlan.Meals), 4)
	assert.GreaterOrEqual(t, res.Quality.Overall, 0.0)
	assert.LessOrEqual(t, res.Quality.Overall, 100.0)
	assert.GreaterOrEqual(t, res.GenerationTime, int64(0))
	assert.Empty(t, res.Error)
	assert.NoError(t, res.Err)

	plan := res.MealPlan
	assert.Equal(t, "2026-03-02", plan.Date)
	assert.Equal(t, f.user.ID, plan.UserID)
	assert.Equal(t, PlanID(f.user.ID, "2026-03-02"), plan.ID)
	assert.Equal(t, fixedNow, plan.CreatedAt)

	// The pooled selection spends the dinner budget on breakfast items, so dinner is the one
	// slot that falls back to a placeholder for this catalog.
	selected, placeholders := splitSlots(plan)
	for _, slot := range []entity.Slot{
		entity.Slot(entity.MealTypeBreakfast),
		entity.Slot(entity.MealTypeLunch),
		entity.Slot(entity.SnackBetweenLunchDinner),
	} {
		assert.GreaterOrEqual(t, selected[slot], 1, "slot %s", slot)
		assert.Zero(t, placeholders[slot], "slot %s", slot)
	}
	assert.Zero(t, selected[entity.Slot(entity.MealTypeDinner)])
	assert.Equal(t, 1, placeholders[entity.Slot(entity.MealTypeDinner)])
	require.NotNil(t, res.Quality.Breakdown)
	assert.Equal(t, 1, res.Quality.Breakdown.PlaceholderMeals)
	assert.False(t, res.Quality.Breakdown.Feasible)

	for i := 1; i < len(plan.Meals); i++ {
		assert.LessOrEqual(t,
			structure.Rank(plan.Meals[i-1].SlotKey()),
			structure.Rank(plan.Meals[i].SlotKey()),
			"meals must follow the daily order",
		)
	}
	for _, m := range plan.Meals {
		assert.Equal(t, f.user.ID, m.UserID)
		assert.Equal(t, "2026-03-02", m.Date)
		assert.NotEqual(t, uuid.Nil, m.ID)
		if !m.IsPlaceholder {
			assert.True(t, m.RecipeID != "" || m.FoodID != "", "meal %s has no source", m.Name)
		}
	}

	assert.Equal(t, ModeBalanced, res.Metadata.Mode)
	assert.Equal(t, []knapsack.Algorithm{knapsack.Hybrid}, res.Metadata.AlgorithmsUsed)
	assert.Equal(t, 9, res.Metadata.RecipesConsidered)
	assert.Equal(t, knapsack.HybridOptimality, res.Metadata.FinalOptimality)
	assert.True(t, res.Metadata.OptimalityDeclared)
	assert.Equal(t, UserPreferenceAlignment, res.Quality.UserPreferenceAlignment)
	assert.True(t, res.Quality.UserPreferenceDeclared)
	require.NotNil(t, res.DailyTargets)
	assert.InDelta(t, 2000, res.DailyTargets.Calories, 0.0001)
}

func TestGenerate_PlaceholderForEmptySlot(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.Generate(context.Background(), f.user, withoutDinners(f.catalog), Options{Date: "2026-03-02"})
	require.True(t, res.Success, "error: %s", res.Error)

	var dinners []entity.Meal
	for _, m := range res.MealPlan.Meals {
		if m.Type == entity.MealTypeDinner {
			dinners = append(dinners, m)
		}
	}
	require.Len(t, dinners, 1)
	assert.Equal(t, "Default Dinner", dinners[0].Name)
	assert.True(t, dinners[0].IsPlaceholder)
	assert.Zero(t, dinners[0].Calories)
	assert.Empty(t, dinners[0].RecipeID)

	require.NotNil(t, res.Quality.Breakdown)
	assert.Equal(t, 1, res.Quality.Breakdown.PlaceholderMeals)
	assert.Contains(t, res.Warnings, "no item was selected for Dinner, added a placeholder")
}

func TestGenerate_AvoidedDinnerBecomesPlaceholder(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)
	catalog := withoutDinners(f.catalog)
	catalog.Recipes = append(catalog.Recipes, f.catalog.Recipes[5])
	f.user.AvoidMeals = entity.NewAvoidList("Dairy")

	res := f.generator.Generate(context.Background(), f.user, catalog, Options{Date: "2026-03-02"})
	require.True(t, res.Success, "error: %s", res.Error)

	for _, m := range res.MealPlan.Meals {
		assert.NotEqual(t, "Cheese Lasagna", m.Name)
	}
	assert.Equal(t, 1, slotsOf(res.MealPlan)[entity.Slot(entity.MealTypeDinner)])
	assert.Equal(t, 1, res.Metadata.ItemsFiltered)
}

func TestGenerate_RepeatedSnackPosition(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)
	want := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Mode: ModeBalanced})
	require.True(t, want.Success, "error: %s", want.Error)

	f.user.MealPreferences = &entity.MealPreferences{SnackPositions: []entity.SnackPosition{
		entity.SnackBetweenLunchDinner,
		entity.SnackBetweenLunchDinner,
	}}
	res := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Mode: ModeBalanced})
	require.True(t, res.Success, "error: %s", res.Error)

	assert.Equal(t, want.MealPlan.Meals, res.MealPlan.Meals)
	ids := make(map[uuid.UUID]string, len(res.MealPlan.Meals))
	for _, m := range res.MealPlan.Meals {
		prev, dup := ids[m.ID]
		assert.False(t, dup, "meal id %s shared by %q and %q", m.ID, prev, m.Name)
		ids[m.ID] = m.Name
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			t.Parallel()

			f := createTestGenerator(t)
			opts := Options{Date: "2026-03-02", Mode: mode}

			first := f.generator.Generate(context.Background(), f.user, f.catalog, opts)
			second := f.generator.Generate(context.Background(), f.user, f.catalog, opts)

			require.True(t, first.Success, "error: %s", first.Error)
			require.True(t, second.Success, "error: %s", second.Error)
			assert.Equal(t, first.MealPlan, second.MealPlan)
			assert.Equal(t, first.Quality, second.Quality)
		})
	}
}

func TestGenerate_MaxPrepTime(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", MaxPrepTime: 20})
	require.True(t, res.Success, "error: %s", res.Error)

	for _, m := range res.MealPlan.Meals {
		if m.RecipeID == "" {
			continue
		}
		recipe, ok := entity.FindRecipeByName(f.catalog.Recipes, m.Name)
		require.True(t, ok)
		assert.LessOrEqual(t, recipe.TotalTime(), 20, "recipe %s", recipe.Name)
	}
	assert.Equal(t, 5, res.Metadata.RecipesConsidered)
}

func TestGenerate_ModeSelectsAlgorithm(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Mode: ModeSpeed})
	require.True(t, res.Success, "error: %s", res.Error)
	assert.Equal(t, []knapsack.Algorithm{knapsack.Greedy}, res.Metadata.AlgorithmsUsed)
	assert.Equal(t, knapsack.GreedyOptimality, res.Metadata.FinalOptimality)
}

func TestGenerate_DefaultDateFromClock(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.Generate(context.Background(), f.user, f.catalog, Options{})
	require.True(t, res.Success, "error: %s", res.Error)
	assert.Equal(t, "2026-03-02", res.MealPlan.Date)
	assert.Equal(t, ModeBalanced, res.Metadata.Mode)
}

func TestGenerate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(u *entity.UserProfile)
		catalog func(c *entity.Catalog) *entity.Catalog
		opts    Options
		wantErr error
	}{
		{
			name:    "missing tdci",
			mutate:  func(u *entity.UserProfile) { u.TDCI = nil },
			wantErr: ErrMissingTDCI,
		},
		{
			name:    "missing meal preferences",
			mutate:  func(u *entity.UserProfile) { u.MealPreferences = nil },
			wantErr: ErrMissingMealPreferences,
		},
		{
			name:    "malformed date",
			opts:    Options{Date: "2026/03/02"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown mode",
			opts:    Options{Mode: "turbo"},
			wantErr: ErrInvalidMode,
		},
		{
			name:    "everything avoided",
			mutate:  func(u *entity.UserProfile) { u.AvoidMeals = entity.NewAvoidList("Dairy") },
			catalog: func(c *entity.Catalog) *entity.Catalog {
				return &entity.Catalog{
					Recipes: []entity.Recipe{c.Recipes[5]},
					Foods:   []entity.Food{{ID: "f-milk", Name: "Dairy Milk", Category: "Dairy", Calories: 60}},
				}
			},
			wantErr: ErrNoEligibleItems,
		},
		{
			name:    "no catalog",
			catalog: func(*entity.Catalog) *entity.Catalog { return nil },
			wantErr: ErrNoEligibleItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := createTestGenerator(t)
			if tt.mutate != nil {
				tt.mutate(f.user)
			}
			catalog := f.catalog
			if tt.catalog != nil {
				catalog = tt.catalog(f.catalog)
			}

			res := f.generator.Generate(context.Background(), f.user, catalog, tt.opts)

			assert.False(t, res.Success)
			assert.Nil(t, res.MealPlan)
			assert.Equal(t, QualityMetrics{}, res.Quality)
			require.ErrorIs(t, res.Err, tt.wantErr)
			assert.Equal(t, res.Err.Error(), res.Error)
		})
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.generator.Generate(ctx, f.user, f.catalog, Options{Date: "2026-03-02"})

	assert.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrGenerationCancelled)
}

func TestGenerate_RecoversPanics(t *testing.T) {
	t.Parallel()

	calls := 0
	clock := func() time.Time {
		calls++
		if calls == 2 {
			panic("clock failure")
		}

		return fixedNow
	}
	g := New(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), WithClock(clock))

	var res *GenerationResult
	require.NotPanics(t, func() {
		res = g.Generate(context.Background(), testUser(), testCatalog(), Options{})
	})

	assert.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrUnexpected)
	assert.Contains(t, res.Error, "clock failure")
}

func TestGenerateWeek(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.GenerateWeek(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Days: 3})

	require.True(t, res.Success, "error: %s", res.Error)
	assert.Nil(t, res.MealPlan)
	require.Len(t, res.WeekPlan, 3)

	for i, date := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		assert.Equal(t, date, res.WeekPlan[i].Date)
		assert.Equal(t, PlanID(f.user.ID, date), res.WeekPlan[i].ID)
		assert.GreaterOrEqual(t, len(res.WeekPlan[i].Meals), 4)
	}
	assert.Len(t, res.Plans(), 3)
	assert.Equal(t, []knapsack.Algorithm{knapsack.Hybrid}, res.Metadata.AlgorithmsUsed)
	assert.GreaterOrEqual(t, res.Quality.Overall, 0.0)
	assert.LessOrEqual(t, res.Quality.Overall, 100.0)
}

func TestGenerateWeek_DaysAreIndependent(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	week := f.generator.GenerateWeek(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Days: 2})
	day := f.generator.Generate(context.Background(), f.user, f.catalog, Options{Date: "2026-03-03"})

	require.True(t, week.Success, "error: %s", week.Error)
	require.True(t, day.Success, "error: %s", day.Error)
	assert.Equal(t, day.MealPlan, week.WeekPlan[1])
}

func TestGenerateWeek_Failures(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	res := f.generator.GenerateWeek(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Days: 30})
	assert.False(t, res.Success)
	require.ErrorIs(t, res.Err, ErrInvalidRange)

	res = f.generator.GenerateWeek(context.Background(), f.user, f.catalog, Options{Date: "03-02-2026"})
	require.ErrorIs(t, res.Err, ErrInvalidDate)

	f.user.TDCI = nil
	res = f.generator.GenerateWeek(context.Background(), f.user, f.catalog, Options{Date: "2026-03-02", Days: 3})
	assert.False(t, res.Success)
	assert.Empty(t, res.WeekPlan)
	require.ErrorIs(t, res.Err, ErrMissingTDCI)
}

func TestEstimateGenerationTime(t *testing.T) {
	t.Parallel()

	f := createTestGenerator(t)

	speed := f.generator.EstimateGenerationTime(Options{Mode: ModeSpeed}, 100)
	balanced := f.generator.EstimateGenerationTime(Options{Mode: ModeBalanced}, 100)
	quality := f.generator.EstimateGenerationTime(Options{Mode: ModeQuality}, 100)

	assert.Greater(t, quality, speed)
	assert.Greater(t, quality, balanced)
	assert.Greater(t, balanced, speed)
	assert.Equal(t, 250*time.Millisecond, speed)

	assert.Equal(t, 7*speed, f.generator.EstimateGenerationTime(Options{Mode: ModeSpeed, Days: 7}, 100))
	assert.Equal(t, balanced, f.generator.EstimateGenerationTime(Options{}, 100))
	assert.Greater(t, f.generator.EstimateGenerationTime(Options{Mode: ModeSpeed}, 500), speed)
}

func TestConfig_ModeOverrides(t *testing.T) {
	t.Parallel()

	g := New(Config{
		DefaultMode: ModeQuality,
		Modes:       map[Mode]ModeSettings{ModeSpeed: {TolerancePercent: 50}},
	}, nil)

	cfg := g.Config()
	assert.Equal(t, ModeQuality, cfg.DefaultMode)
	assert.Equal(t, ModeSettings{Algorithm: knapsack.Greedy, TimeLimit: 2 * time.Second, TolerancePercent: 50}, cfg.Modes[ModeSpeed])
	assert.Equal(t, ModeSettings{Algorithm: knapsack.Hybrid, TimeLimit: 5 * time.Second, TolerancePercent: 20}, cfg.Modes[ModeBalanced])
	assert.Equal(t, 4, cfg.WeekWorkers)
	assert.Equal(t, 14, cfg.MaxWeekDays)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode(" Quality ")
	require.NoError(t, err)
	assert.Equal(t, ModeQuality, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = ParseMode("turbo")
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestSuitsSlot(t *testing.T) {
	t.Parallel()

	lunch := entity.MealNutritionalTarget{MealType: entity.MealTypeLunch}
	snack := entity.MealNutritionalTarget{MealType: entity.MealTypeSnack, Position: entity.SnackAfterDinner}

	bowl := &entity.Recipe{Name: "Bowl", Categories: []string{"Lunch"}, Calories: 600}
	lightLunch := &entity.Recipe{Name: "Soup", Categories: []string{"Lunch"}, Calories: 250}
	heavyLunch := &entity.Recipe{Name: "Burger", Categories: []string{"Lunch"}, Calories: 900}
	chips := &entity.Recipe{Name: "Chips", Categories: []string{"Side Dish"}, Calories: 450}
	apple := &entity.Food{Name: "Apple", Category: "Fruits", Calories: 95}
	steak := &entity.Food{Name: "Steak", Category: "Protein", Calories: 450}

	tests := []struct {
		name   string
		item   entity.CatalogItem
		target entity.MealNutritionalTarget
		want   bool
	}{
		{name: "main meal by category", item: entity.RecipeItem(bowl), target: lunch, want: true},
		{name: "snack category for main meal", item: entity.RecipeItem(chips), target: lunch, want: false},
		{name: "light recipe as snack", item: entity.RecipeItem(lightLunch), target: snack, want: true},
		{name: "heavy recipe as snack", item: entity.RecipeItem(heavyLunch), target: snack, want: false},
		{name: "snack category regardless of calories", item: entity.RecipeItem(chips), target: snack, want: true},
		{name: "fruit for snack", item: entity.FoodItem(apple), target: snack, want: true},
		{name: "fruit not a lunch food", item: entity.FoodItem(apple), target: lunch, want: false},
		{name: "protein for lunch", item: entity.FoodItem(steak), target: lunch, want: true},
		{name: "heavy protein not a snack", item: entity.FoodItem(steak), target: snack, want: false},
		{name: "empty item", item: entity.CatalogItem{}, target: lunch, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, suitsSlot(tt.item, tt.target))
		})
	}
}
