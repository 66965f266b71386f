// Package impl contains the application-specific business rules implementations.
package impl

import (
	"strings"

	domainerrors "mealplan/internal/domain/errors"
	"mealplan/internal/planner/generator"
	"mealplan/internal/planner/validation"

	"github.com/pkg/errors"
)

// generationError maps a failed generation onto the application error a client can act on.
func generationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, generator.ErrMissingTDCI), errors.Is(err, generator.ErrMissingMealPreferences):
		return domainerrors.ErrProfileIncomplete.WithDetails(err.Error())
	case errors.Is(err, generator.ErrInvalidDate):
		return domainerrors.ErrInvalidDate.WithDetails(err.Error())
	case errors.Is(err, generator.ErrInvalidMode):
		return domainerrors.ErrInvalidMode.WithDetails(err.Error())
	case errors.Is(err, generator.ErrInvalidRange):
		return domainerrors.ErrWeekRangeTooLarge.WithDetails(err.Error())
	case errors.Is(err, generator.ErrNoEligibleItems):
		return domainerrors.ErrNoEligibleItems.WithDetails(err.Error())
	case errors.Is(err, generator.ErrGenerationCancelled):
		return domainerrors.ErrGenerationCancelled.WithDetails(err.Error())
	default:
		return domainerrors.ErrGenerationFailed.WithDetails(err.Error())
	}
}

// catalogError maps a rejected catalog import.
func catalogError(err error) error {
	if errors.Is(err, validation.ErrInvalidCatalog) {
		return domainerrors.ErrCatalogImportFailed.WithDetails(err.Error())
	}

	return err
}

func joinProblems(problems []string) string {
	return strings.Join(problems, "; ")
}
