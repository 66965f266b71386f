package impl

import (
	"context"
	"io"
	"log/slog"

	"mealplan/internal/domain/entity"
	"mealplan/internal/domain/repository"
	mockRepo "mealplan/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testUserID = uuid.MustParse("0b7f5d8e-3c1a-4e2b-9f6d-7a8b9c0d1e2f")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the next Execute call run fn against factory and return fn's error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:                 testUserID,
		Name:               "Test User",
		Age:                30,
		Gender:             entity.GenderMale,
		HeightCM:           180,
		WeightKG:           80,
		ActivityMultiplier: 1.55,
		FitnessGoal:        entity.GoalMaintenance,
		TDCI:               &entity.TDCI{AdjustedTDCI: 2000},
		MealPreferences:    &entity.MealPreferences{SnackPositions: []entity.SnackPosition{entity.SnackBetweenLunchDinner}},
	}
}

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Recipes: []entity.Recipe{
			{ID: "r-oats", Name: "Overnight Oats", Categories: []string{"Breakfast"}, PrepTime: 10, Calories: 420, Protein: 18, Carbs: 60, Fat: 12},
			{ID: "r-bowl", Name: "Chicken Quinoa Bowl", Categories: []string{"Lunch"}, PrepTime: 15, CookTime: 20, Calories: 620, Protein: 45, Carbs: 65, Fat: 18},
			{ID: "r-salmon", Name: "Baked Salmon", Categories: []string{"Dinner"}, PrepTime: 10, CookTime: 25, Calories: 580, Protein: 42, Carbs: 30, Fat: 30},
			{ID: "r-hummus", Name: "Hummus Plate", Categories: []string{"Snack"}, PrepTime: 5, Calories: 220, Protein: 8, Carbs: 24, Fat: 10},
		},
		Foods: []entity.Food{
			{ID: "f-apple", Name: "Apple", Category: "Fruits", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
		},
	}
}
