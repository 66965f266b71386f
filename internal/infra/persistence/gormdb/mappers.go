package gormdb

import (
	"mealplan/internal/domain/entity"
	"mealplan/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func fromProfileDomain(p *entity.UserProfile) *model.UserProfileModel {
	m := &model.UserProfileModel{
		ID:                 p.ID,
		Name:               p.Name,
		Age:                p.Age,
		Gender:             string(p.Gender),
		HeightCM:           p.HeightCM,
		WeightKG:           p.WeightKG,
		BodyFatPercent:     p.BodyFatPercent,
		ActivityMultiplier: p.ActivityMultiplier,
		FitnessGoal:        string(p.FitnessGoal),
		HasMealPreferences: p.MealPreferences != nil,
		AvoidFoodTypes:     datatypes.NewJSONSlice(nonNil(p.AvoidMeals.FoodTypes)),
		AvoidAllergens:     datatypes.NewJSONSlice(nonNil(p.AvoidMeals.Allergens)),
		WorkoutDays:        datatypes.NewJSONSlice(nonNil(p.WorkoutDays)),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.TDCI != nil {
		tdci := p.TDCI.AdjustedTDCI
		m.AdjustedTDCI = &tdci
	}

	positions := make([]string, 0, len(p.SnackPositions()))
	for _, pos := range p.SnackPositions() {
		positions = append(positions, string(pos))
	}
	m.SnackPositions = datatypes.NewJSONSlice(positions)

	portions := make(map[string]float64, len(p.PortionSizes))
	for slot, v := range p.PortionSizes {
		portions[string(slot)] = v
	}
	m.PortionSizes = datatypes.NewJSONType(portions)

	return m
}

func toProfileDomain(m *model.UserProfileModel) *entity.UserProfile {
	p := &entity.UserProfile{
		ID:                 m.ID,
		Name:               m.Name,
		Age:                m.Age,
		Gender:             entity.Gender(m.Gender),
		HeightCM:           m.HeightCM,
		WeightKG:           m.WeightKG,
		BodyFatPercent:     m.BodyFatPercent,
		ActivityMultiplier: m.ActivityMultiplier,
		FitnessGoal:        entity.FitnessGoal(m.FitnessGoal),
		AvoidMeals: entity.AvoidList{
			FoodTypes: []string(m.AvoidFoodTypes),
			Allergens: []string(m.AvoidAllergens),
		},
		WorkoutDays: []string(m.WorkoutDays),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.AdjustedTDCI != nil {
		p.TDCI = &entity.TDCI{AdjustedTDCI: *m.AdjustedTDCI}
	}
	if m.HasMealPreferences {
		prefs := &entity.MealPreferences{SnackPositions: make([]entity.SnackPosition, 0, len(m.SnackPositions))}
		for _, pos := range m.SnackPositions {
			prefs.SnackPositions = append(prefs.SnackPositions, entity.SnackPosition(pos))
		}
		p.MealPreferences = prefs
	}
	if portions := m.PortionSizes.Data(); len(portions) > 0 {
		p.PortionSizes = make(entity.PortionSizes, len(portions))
		for slot, v := range portions {
			p.PortionSizes[entity.Slot(slot)] = v
		}
	}

	return p
}

func fromRecipeDomain(r *entity.Recipe) *model.RecipeModel {
	ingredients := make([]model.IngredientModel, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		ingredients = append(ingredients, model.IngredientModel{Name: in.Name, Amount: in.Amount})
	}

	return &model.RecipeModel{
		ID:           r.ID,
		Name:         r.Name,
		Categories:   datatypes.NewJSONSlice(nonNil(r.Categories)),
		FoodTypes:    datatypes.NewJSONSlice(nonNil(r.FoodTypes)),
		Allergens:    datatypes.NewJSONSlice(nonNil(r.Allergens)),
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Calories:     r.Calories,
		Protein:      r.Protein,
		Carbs:        r.Carbs,
		Fat:          r.Fat,
		Ingredients:  datatypes.NewJSONSlice(ingredients),
		Instructions: datatypes.NewJSONSlice(nonNil(r.Instructions)),
	}
}

func toRecipeDomain(m *model.RecipeModel) entity.Recipe {
	r := entity.Recipe{
		ID:           m.ID,
		Name:         m.Name,
		Categories:   []string(m.Categories),
		FoodTypes:    []string(m.FoodTypes),
		Allergens:    []string(m.Allergens),
		PrepTime:     m.PrepTime,
		CookTime:     m.CookTime,
		Calories:     m.Calories,
		Protein:      m.Protein,
		Carbs:        m.Carbs,
		Fat:          m.Fat,
		Instructions: []string(m.Instructions),
	}
	for _, in := range m.Ingredients {
		r.Ingredients = append(r.Ingredients, entity.Ingredient{Name: in.Name, Amount: in.Amount})
	}

	return r
}

func fromFoodDomain(f *entity.Food) *model.FoodModel {
	return &model.FoodModel{
		ID:       f.ID,
		Name:     f.Name,
		Category: f.Category,
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
	}
}

func toFoodDomain(m *model.FoodModel) entity.Food {
	return entity.Food{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
	}
}

func fromMealPlanDomain(p *entity.MealPlan) *model.MealPlanModel {
	m := &model.MealPlanModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
		Meals:     make([]model.MealModel, 0, len(p.Meals)),
	}
	for i, meal := range p.Meals {
		m.Meals = append(m.Meals, model.MealModel{
			ID:            meal.ID,
			PlanID:        p.ID,
			Sequence:      i,
			Type:          string(meal.Type),
			Name:          meal.Name,
			Position:      string(meal.Position),
			UserID:        meal.UserID,
			Date:          meal.Date,
			RecipeID:      meal.RecipeID,
			FoodID:        meal.FoodID,
			Calories:      meal.Calories,
			Protein:       meal.Protein,
			Carbs:         meal.Carbs,
			Fat:           meal.Fat,
			IsPlaceholder: meal.IsPlaceholder,
		})
	}

	return m
}

func toMealPlanDomain(m *model.MealPlanModel) *entity.MealPlan {
	p := &entity.MealPlan{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		Meals:     make([]entity.Meal, 0, len(m.Meals)),
	}
	for _, meal := range m.Meals {
		p.Meals = append(p.Meals, entity.Meal{
			ID:            meal.ID,
			Type:          entity.MealType(meal.Type),
			Name:          meal.Name,
			Position:      entity.SnackPosition(meal.Position),
			UserID:        meal.UserID,
			Date:          meal.Date,
			RecipeID:      meal.RecipeID,
			FoodID:        meal.FoodID,
			Calories:      meal.Calories,
			Protein:       meal.Protein,
			Carbs:         meal.Carbs,
			Fat:           meal.Fat,
			IsPlaceholder: meal.IsPlaceholder,
		})
	}

	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
