package entity

import "strings"

// Macros is a calorie and macronutrient vector. Protein, carbs and fat are grams.
type Macros struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Add returns the element-wise sum.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Scale multiplies every component by f.
func (m Macros) Scale(f float64) Macros {
	return Macros{
		Calories: m.Calories * f,
		Protein:  m.Protein * f,
		Carbs:    m.Carbs * f,
		Fat:      m.Fat * f,
	}
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string `json:"name" yaml:"name"`
	Amount string `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Recipe is immutable reference data. Nutrition values are per serving; times are minutes.
type Recipe struct {
	ID           string       `json:"id" yaml:"id" validate:"required"`
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Categories   []string     `json:"categories" yaml:"categories"`
	FoodTypes    []string     `json:"foodTypes" yaml:"foodTypes"`
	Allergens    []string     `json:"allergens" yaml:"allergens"`
	PrepTime     int          `json:"prepTime" yaml:"prepTime" validate:"gte=0"`
	CookTime     int          `json:"cookTime" yaml:"cookTime" validate:"gte=0"`
	Calories     float64      `json:"calories" yaml:"calories" validate:"gte=0"`
	Protein      float64      `json:"protein" yaml:"protein" validate:"gte=0"`
	Carbs        float64      `json:"carbs" yaml:"carbs" validate:"gte=0"`
	Fat          float64      `json:"fat" yaml:"fat" validate:"gte=0"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions []string     `json:"instructions" yaml:"instructions"`
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Macros returns the per-serving nutrition.
func (r *Recipe) Macros() Macros {
	return Macros{Calories: r.Calories, Protein: r.Protein, Carbs: r.Carbs, Fat: r.Fat}
}

// HasCategory reports whether the recipe is tagged with category (exact match).
func (r *Recipe) HasCategory(category string) bool {
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}

	return false
}

// Food is a standalone catalog item. Nutrition values are per 100g-equivalent unit.
type Food struct {
	ID       string  `json:"id" yaml:"id" validate:"required"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Category string  `json:"category" yaml:"category"`
	Calories float64 `json:"calories" yaml:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" yaml:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" yaml:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" yaml:"fat" validate:"gte=0"`
}

// Macros returns the per-unit nutrition.
func (f *Food) Macros() Macros {
	return Macros{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}

// ItemKind tags a CatalogItem.
type ItemKind string

const (
	ItemKindRecipe ItemKind = "recipe"
	ItemKindFood   ItemKind = "food"
)

// CatalogItem is either a recipe or a food. Exactly one of Recipe and Food is set.
type CatalogItem struct {
	Kind   ItemKind `json:"kind"`
	Recipe *Recipe  `json:"recipe,omitempty"`
	Food   *Food    `json:"food,omitempty"`
}

// RecipeItem wraps a recipe.
func RecipeItem(r *Recipe) CatalogItem {
	return CatalogItem{Kind: ItemKindRecipe, Recipe: r}
}

// FoodItem wraps a food.
func FoodItem(f *Food) CatalogItem {
	return CatalogItem{Kind: ItemKindFood, Food: f}
}

// ID returns the wrapped item's id.
func (c CatalogItem) ID() string {
	if c.Recipe != nil {
		return c.Recipe.ID
	}
	if c.Food != nil {
		return c.Food.ID
	}

	return ""
}

// Name returns the wrapped item's name.
func (c CatalogItem) Name() string {
	if c.Recipe != nil {
		return c.Recipe.Name
	}
	if c.Food != nil {
		return c.Food.Name
	}

	return ""
}

// Macros returns the wrapped item's nutrition.
func (c CatalogItem) Macros() Macros {
	if c.Recipe != nil {
		return c.Recipe.Macros()
	}
	if c.Food != nil {
		return c.Food.Macros()
	}

	return Macros{}
}

// Categories returns recipe categories, or the food's single category.
func (c CatalogItem) Categories() []string {
	if c.Recipe != nil {
		return c.Recipe.Categories
	}
	if c.Food != nil && c.Food.Category != "" {
		return []string{c.Food.Category}
	}

	return nil
}

// Catalog is the read-only recipe and food database handed to a generation run.
type Catalog struct {
	Recipes []Recipe `json:"recipes" yaml:"recipes" validate:"dive"`
	Foods   []Food   `json:"foods" yaml:"foods" validate:"dive"`
}

// Size is the number of recipes plus foods.
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}

	return len(c.Recipes) + len(c.Foods)
}

// FindRecipeByName returns the recipe with the given name, matching exactly first and then
// case-insensitively.
func FindRecipeByName(recipes []Recipe, name string) (*Recipe, bool) {
	for i := range recipes {
		if recipes[i].Name == name {
			return &recipes[i], true
		}
	}
	for i := range recipes {
		if strings.EqualFold(recipes[i].Name, name) {
			return &recipes[i], true
		}
	}

	return nil, false
}

// FindFoodByName is FindRecipeByName for foods.
func FindFoodByName(foods []Food, name string) (*Food, bool) {
	for i := range foods {
		if foods[i].Name == name {
			return &foods[i], true
		}
	}
	for i := range foods {
		if strings.EqualFold(foods[i].Name, name) {
			return &foods[i], true
		}
	}

	return nil, false
}
