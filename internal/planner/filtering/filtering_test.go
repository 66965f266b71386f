package filtering

import (
	"testing"
	"time"

	"mealplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredients(names ...string) []entity.Ingredient {
	out := make([]entity.Ingredient, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Ingredient{Name: n})
	}

	return out
}

func testRecipes() []entity.Recipe {
	return []entity.Recipe{
		{
			ID: "r1", Name: "Greek Yogurt Parfait", Categories: []string{"Breakfast"},
			FoodTypes: []string{"Dairy"}, Allergens: []string{"Dairy"},
			PrepTime: 5, Calories: 350, Protein: 20, Carbs: 45, Fat: 10,
			Ingredients: ingredients("greek yogurt", "granola", "berries"),
		},
		{
			ID: "r2", Name: "Pork Stir Fry", Categories: []string{"Dinner"}, FoodTypes: []string{"Pork"},
			PrepTime: 15, CookTime: 15, Calories: 600, Protein: 40, Carbs: 50, Fat: 25,
			Ingredients: ingredients("pork loin", "peppers", "soy sauce", "rice"),
		},
		{
			ID: "r3", Name: "Baked Salmon", Categories: []string{"Dinner"},
			PrepTime: 10, CookTime: 25, Calories: 550, Protein: 40, Carbs: 30, Fat: 28,
			Ingredients:  ingredients("salmon", "lemon", "dill"),
			Instructions: []string{"Season the fish.", "Bake in the oven at 200C for 20 minutes."},
		},
		{
			ID: "r4", Name: "Veggie Omelette", Categories: []string{"Breakfast"},
			PrepTime: 10, CookTime: 10, Calories: 300, Protein: 21, Carbs: 5, Fat: 22,
			Ingredients: ingredients("eggs", "spinach", "peppers"),
		},
		{
			ID: "r5", Name: "Slow Roast Beef Hash", Categories: []string{"Breakfast"},
			PrepTime: 20, CookTime: 40, Calories: 520, Protein: 35, Carbs: 40, Fat: 24,
			Ingredients: ingredients("beef", "potatoes", "onion", "eggs", "paprika"),
		},
		{
			ID: "r6", Name: "Hummus Plate", Categories: []string{"Snack", "Appetizer"},
			PrepTime: 5, Calories: 200, Protein: 6, Carbs: 20, Fat: 10,
			Ingredients: ingredients("chickpeas", "tahini", "carrots"),
		},
		{
			ID: "r7", Name: "Pasta Carbonara", Categories: []string{"Lunch"},
			PrepTime: 10, CookTime: 15, Calories: 700, Protein: 30, Carbs: 80, Fat: 28,
			Ingredients: ingredients("spaghetti", "eggs", "Parmesan cheese", "pancetta"),
		},
	}
}

func testFoods() []entity.Food {
	return []entity.Food{
		{ID: "f1", Name: "Whole Milk", Category: "Dairy", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
		{ID: "f2", Name: "Apple", Category: "Fruits", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
		{ID: "f3", Name: "Almonds", Category: "Nuts", Calories: 579, Protein: 21, Carbs: 22, Fat: 50},
		{ID: "f4", Name: "Chicken Breast", Category: "Protein", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	}
}

func recipeNames(recipes []entity.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}

	return names
}

func foodNames(foods []entity.Food) []string {
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}

	return names
}

func TestApplyAvoidanceFilters_ExcludesAllergen(t *testing.T) {
	t.Parallel()

	user := &entity.UserProfile{AvoidMeals: entity.NewAvoidList("Dairy")}

	result := ApplyAvoidanceFilters(testRecipes(), testFoods(), user)

	assert.NotContains(t, recipeNames(result.Recipes), "Greek Yogurt Parfait")
	require.Len(t, result.Filtered, 1)
	assert.Equal(t, "r1", result.Filtered[0].ID)
	assert.Equal(t, entity.ItemKindRecipe, result.Filtered[0].Kind)
	assert.Contains(t, result.Filtered[0].Reason, `allergen "Dairy"`)
	assert.Len(t, result.Foods, 4)
}

func TestApplyAvoidanceFilters_StructuredList(t *testing.T) {
	t.Parallel()

	user := &entity.UserProfile{AvoidMeals: entity.AvoidList{
		FoodTypes: []string{"pork"},
		Allergens: []string{"cheese"},
	}}

	result := ApplyAvoidanceFilters(testRecipes(), testFoods(), user)

	names := recipeNames(result.Recipes)
	assert.NotContains(t, names, "Pork Stir Fry")
	assert.NotContains(t, names, "Pasta Carbonara")
	require.Len(t, result.Filtered, 2)
	assert.Contains(t, result.Filtered[0].Reason, "food type")
	assert.Contains(t, result.Filtered[1].Reason, `ingredient "Parmesan cheese"`)
}

func TestApplyAvoidanceFilters_FoodsByName(t *testing.T) {
	t.Parallel()

	user := &entity.UserProfile{AvoidMeals: entity.NewAvoidList("milk")}

	result := ApplyAvoidanceFilters(testRecipes(), testFoods(), user)

	assert.Equal(t, []string{"Apple", "Almonds", "Chicken Breast"}, foodNames(result.Foods))
	require.Len(t, result.Filtered, 1)
	assert.Equal(t, entity.ItemKindFood, result.Filtered[0].Kind)
}

func TestApplyAvoidanceFilters_EmptyListKeepsEverything(t *testing.T) {
	t.Parallel()

	result := ApplyAvoidanceFilters(testRecipes(), testFoods(), &entity.UserProfile{})

	assert.Len(t, result.Recipes, 7)
	assert.Len(t, result.Foods, 4)
	assert.Empty(t, result.Filtered)

	result = ApplyAvoidanceFilters(testRecipes(), testFoods(), nil)
	assert.Len(t, result.Recipes, 7)
}

func TestFilterByMealType(t *testing.T) {
	t.Parallel()

	recipes, foods := FilterByMealType(testRecipes(), testFoods(), entity.MealTypeBreakfast, "")
	assert.Equal(t, []string{"Greek Yogurt Parfait", "Veggie Omelette", "Slow Roast Beef Hash"}, recipeNames(recipes))
	assert.Equal(t, []string{"Whole Milk", "Apple", "Chicken Breast"}, foodNames(foods))

	recipes, foods = FilterByMealType(testRecipes(), testFoods(), entity.MealTypeSnack, entity.SnackAfterDinner)
	assert.Equal(t, []string{"Hummus Plate"}, recipeNames(recipes))
	assert.Equal(t, []string{"Whole Milk", "Apple", "Almonds"}, foodNames(foods))

	recipes, _ = FilterByMealType(testRecipes(), testFoods(), entity.MealTypeDinner, "")
	assert.Equal(t, []string{"Pork Stir Fry", "Baked Salmon"}, recipeNames(recipes))
}

func TestApplyContextualFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      Context
		excluded []string
	}{
		{name: "workout day drops low protein", ctx: Context{IsWorkoutDay: true}, excluded: []string{"Hummus Plate"}},
		{name: "morning drops slow recipes", ctx: Context{TimeOfDay: Morning}, excluded: []string{"Baked Salmon", "Slow Roast Beef Hash"}},
		{name: "summer drops oven recipes", ctx: Context{Season: Summer}, excluded: []string{"Baked Salmon"}},
		{name: "neutral context keeps everything", ctx: Context{TimeOfDay: Evening, Season: Winter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recipes, foods := ApplyContextualFilters(testRecipes(), testFoods(), tt.ctx)

			assert.Len(t, foods, 4)
			assert.Len(t, recipes, 7-len(tt.excluded))
			for _, name := range tt.excluded {
				assert.NotContains(t, recipeNames(recipes), name)
			}
		})
	}
}

func TestFilterByMaxPrepTime(t *testing.T) {
	t.Parallel()

	assert.Len(t, FilterByMaxPrepTime(testRecipes(), 0), 7)
	assert.Equal(t, []string{"Greek Yogurt Parfait", "Hummus Plate"}, recipeNames(FilterByMaxPrepTime(testRecipes(), 5)))
}

func TestContextFor(t *testing.T) {
	t.Parallel()

	user := &entity.UserProfile{WorkoutDays: []string{"monday", "Thursday"}}
	monday := time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC)

	ctx := ContextFor(user, monday, entity.MealTypeSnack, entity.SnackBeforeBreakfast)
	assert.True(t, ctx.IsWorkoutDay)
	assert.Equal(t, Morning, ctx.TimeOfDay)
	assert.Equal(t, Summer, ctx.Season)

	ctx = ContextFor(user, monday.AddDate(0, 0, 1), entity.MealTypeDinner, "")
	assert.False(t, ctx.IsWorkoutDay)
	assert.Equal(t, Evening, ctx.TimeOfDay)
}

func TestSeasonFor(t *testing.T) {
	t.Parallel()

	tests := map[time.Month]Season{
		time.January: Winter, time.March: Spring, time.July: Summer,
		time.October: Autumn, time.December: Winter,
	}
	for month, expected := range tests {
		assert.Equal(t, expected, SeasonFor(time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)), month.String())
	}
}

func TestEvaluateRecipe(t *testing.T) {
	t.Parallel()

	omelette := testRecipes()[3]
	criteria := Criteria{Target: entity.MealNutritionalTarget{
		MealType: entity.MealTypeBreakfast,
		Target:   entity.Macros{Calories: 300, Protein: 21, Carbs: 5, Fat: 22},
	}}

	scored := EvaluateRecipe(&omelette, criteria)

	assert.InDelta(t, 100.0, scored.Breakdown.NutritionalFit, 0.001)
	assert.InDelta(t, 75.0, scored.Breakdown.UserPreference, 0.001)
	assert.InDelta(t, 90.0, scored.Breakdown.Availability, 0.001)
	assert.InDelta(t, 80.0, scored.Breakdown.Variety, 0.001)
	assert.InDelta(t, 88.5, scored.Score, 0.001)
	assert.Equal(t, "r4", scored.Item.ID())

	criteria.PreviousMeals = []string{"veggie omelette"}
	assert.InDelta(t, 20.0, EvaluateRecipe(&omelette, criteria).Breakdown.Variety, 0.001)
}

func TestEvaluateFood(t *testing.T) {
	t.Parallel()

	apple := testFoods()[1]
	criteria := Criteria{Target: entity.MealNutritionalTarget{
		MealType: entity.MealTypeSnack,
		Position: entity.SnackAfterDinner,
		Target:   apple.Macros(),
	}}

	scored := EvaluateFood(&apple, criteria)

	assert.InDelta(t, 100.0, scored.Breakdown.NutritionalFit, 0.001)
	assert.InDelta(t, 55.0, scored.Breakdown.UserPreference, 0.001)
	assert.InDelta(t, 82.5, scored.Score, 0.001)
	assert.Equal(t, entity.ItemKindFood, scored.Item.Kind)
}

func TestRecipeAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count    int
		expected float64
	}{
		{count: 3, expected: 90},
		{count: 4, expected: 90},
		{count: 5, expected: 80},
		{count: 7, expected: 70},
		{count: 11, expected: 60},
	}

	for _, tt := range tests {
		recipe := entity.Recipe{Ingredients: make([]entity.Ingredient, tt.count)}
		assert.InDelta(t, tt.expected, RecipeAvailability(&recipe), 0.001, "ingredients=%d", tt.count)
	}
}

func TestFilterForMeal(t *testing.T) {
	t.Parallel()

	recipes := append(testRecipes(), entity.Recipe{
		ID: "r8", Name: "Giant Pancake Stack", Categories: []string{"Breakfast"},
		PrepTime: 10, CookTime: 10, Calories: 2400, Protein: 30, Carbs: 400, Fat: 80,
	})
	user := &entity.UserProfile{AvoidMeals: entity.NewAvoidList("Dairy")}
	criteria := Criteria{
		Target: entity.MealNutritionalTarget{
			MealType: entity.MealTypeBreakfast,
			Target:   entity.Macros{Calories: 400, Protein: 25, Carbs: 40, Fat: 15},
		},
		User:          user,
		Context:       Context{TimeOfDay: Morning},
		PreviousMeals: []string{"Veggie Omelette"},
	}

	results := FilterForMeal(recipes, testFoods(), criteria)

	ids := make([]string, 0, len(results.Items))
	for _, item := range results.Items {
		ids = append(ids, item.Item.ID())
	}
	assert.Contains(t, ids, "r4")
	assert.NotContains(t, ids, "r1", "avoided")
	assert.NotContains(t, ids, "r5", "too slow for the morning")
	assert.NotContains(t, ids, "r8", "too far from target")

	for i := 1; i < len(results.Items); i++ {
		assert.GreaterOrEqual(t, results.Items[i-1].Score, results.Items[i].Score)
	}

	var rejected []string
	for _, f := range results.Filtered {
		rejected = append(rejected, f.ID)
	}
	assert.Contains(t, rejected, "r1")
	assert.Contains(t, rejected, "r8")

	assert.Equal(t, len(results.Items), results.Stats.Eligible)
	assert.Equal(t, results.Stats.Considered-results.Stats.Eligible, results.Stats.Rejected)
	require.NotEmpty(t, results.Items)
	assert.InDelta(t, results.Items[0].Score, results.Stats.TopScore, 0.0001)
	assert.LessOrEqual(t, results.Stats.AverageScore, results.Stats.TopScore)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	items := Flatten(testRecipes(), testFoods())

	require.Len(t, items, 11)
	assert.Equal(t, entity.ItemKindRecipe, items[0].Item.Kind)
	assert.InDelta(t, BaseRecipeScore, items[0].Score, 0.001)
	assert.Equal(t, entity.ItemKindFood, items[10].Item.Kind)
	assert.InDelta(t, BaseFoodScore, items[10].Score, 0.001)
}
