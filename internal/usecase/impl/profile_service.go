package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mealplan/internal/delivery/context"
	"mealplan/internal/domain/entity"
	domainerrors "mealplan/internal/domain/errors"
	"mealplan/internal/domain/repository"
	"mealplan/internal/planner/nutrition"
	"mealplan/internal/planner/structure"
	"mealplan/internal/planner/validation"
	"mealplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a stored profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("user_id", userID))

	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return profile, nil
}

// SaveProfile creates or replaces a profile. Unknown or repeated snack positions and custom
// portion sizes with errors are rejected; everything else the validator reports is advisory.
func (srv *profileService) SaveProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	if profile == nil || profile.ID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile id is required")
	}
	srv.log(ctx).Info("Saving user profile", slog.Any("user_id", profile.ID))

	if problems := validation.ValidateSnackPositions(profile.SnackPositions()); len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(joinProblems(problems))
	}
	if len(profile.PortionSizes) > 0 {
		portions := validation.ValidatePortionSizes(profile.PortionSizes, profile.DistinctSnackPositions())
		if len(portions.Errors) > 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(joinProblems(portions.Errors))
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserProfileRepository().SaveProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to save user profile", slog.Any("error", err), slog.Any("user_id", profile.ID))

		return nil, errors.Wrap(err, "failed to save user profile")
	}

	return profile, nil
}

// ValidateProfile reports whether a stored profile can be used for generation and why not.
func (srv *profileService) ValidateProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileValidation, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &usecase.ProfileValidation{
		Profile:         validation.ValidateUserProfile(profile),
		ReadyToGenerate: validation.RequireGenerationPrerequisites(profile) == nil,
	}
	if len(profile.PortionSizes) > 0 {
		portions := validation.ValidatePortionSizes(profile.PortionSizes, profile.DistinctSnackPositions())
		report.Portions = &portions
	}
	if ds, err := structure.BuildDayStructure(profile, srv.now().UTC()); err == nil {
		v := structure.ValidateMealStructure(ds)
		report.Structure = &v
	}

	return report, nil
}

// GetNutritionTargets computes the daily and per-slot targets for a date (today when empty).
func (srv *profileService) GetNutritionTargets(ctx context.Context, userID uuid.UUID, date string) (*usecase.NutritionTargets, error) {
	day, err := srv.resolveDate(date)
	if err != nil {
		return nil, err
	}

	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	daily, err := nutrition.CalculateDailyTargets(profile)
	if err != nil {
		return nil, domainerrors.ErrProfileIncomplete.WithDetails(err.Error())
	}

	targets := &usecase.NutritionTargets{
		Date:  day.Format(entity.DateLayout),
		Daily: daily,
		Meals: nutrition.CalculateMealTargets(profile, daily),
	}
	if ds, err := structure.BuildDayStructure(profile, day); err == nil {
		targets.Structure = ds
	}

	return targets, nil
}

func (srv *profileService) resolveDate(date string) (time.Time, error) {
	if date == "" {
		now := srv.now().UTC()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	day, err := entity.ParseDate(date)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate.WithDetails(date)
	}

	return day, nil
}

func findProfile(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := repoFactory.NewUserProfileRepository().FindProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
