package gormdb

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/domain/repository"
	"mealplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var profileUpdateColumns = []string{
	"name", "age", "gender", "height_cm", "weight_kg", "body_fat_percent",
	"activity_multiplier", "fitness_goal", "adjusted_tdci", "has_meal_preferences",
	"snack_positions", "portion_sizes", "avoid_food_types", "avoid_allergens",
	"workout_days", "updated_at",
}

// userProfileRepository implements repository.UserProfileRepository using GORM.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{db: db}
}

// FindProfileByID retrieves the profile of a user.
func (repo *userProfileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// SaveProfile inserts the profile or overwrites every stored field of it.
func (repo *userProfileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(profileUpdateColumns),
		}).
		Create(profileM).Error
	if err != nil {
		return translateWriteError(err, "failed to save user profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}
