// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mealplan/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("user profile not found")

// UserProfileRepository persists user profiles.
type UserProfileRepository interface {
	// FindProfileByID retrieves the profile of a user.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// SaveProfile creates the profile or replaces the stored one.
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error
}
