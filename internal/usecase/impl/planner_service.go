package impl

import (
	"context"
	"log/slog"

	deliverycontext "mealplan/internal/delivery/context"
	"mealplan/internal/domain/entity"
	domainerrors "mealplan/internal/domain/errors"
	"mealplan/internal/domain/repository"
	"mealplan/internal/domain/service"
	"mealplan/internal/planner/generator"
	"mealplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// plannerService implements the PlannerUsecase interface.
type plannerService struct {
	fx.In

	txManager repository.TransactionManager
	generator *generator.Generator
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPlannerService is the constructor for plannerService.
func NewPlannerService(
	txManager repository.TransactionManager,
	gen *generator.Generator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PlannerUsecase {
	return &plannerService{
		txManager: txManager,
		generator: gen,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateDailyPlan generates one day's plan and optionally stores it.
func (srv *plannerService) GenerateDailyPlan(
	ctx context.Context,
	input *usecase.GenerateDailyPlanInput,
) (*generator.GenerationResult, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Generating daily meal plan",
		slog.Any("user_id", input.UserID),
		slog.String("date", input.Date),
		slog.String("mode", string(mode)),
	)

	profile, catalog, err := srv.loadInputs(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	res := srv.generator.Generate(ctx, profile, catalog, generator.Options{
		Date:        input.Date,
		Mode:        mode,
		MaxPrepTime: input.MaxPrepTime,
	})
	if !res.Success {
		return nil, generationError(res.Err)
	}

	if input.Persist {
		if err := srv.persist(ctx, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// GenerateWeekPlan generates consecutive days and optionally stores them in one transaction.
func (srv *plannerService) GenerateWeekPlan(
	ctx context.Context,
	input *usecase.GenerateWeekPlanInput,
) (*generator.GenerationResult, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Generating week meal plan",
		slog.Any("user_id", input.UserID),
		slog.String("start_date", input.StartDate),
		slog.Int("days", input.Days),
		slog.String("mode", string(mode)),
	)

	profile, catalog, err := srv.loadInputs(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	res := srv.generator.GenerateWeek(ctx, profile, catalog, generator.Options{
		Date:        input.StartDate,
		Days:        input.Days,
		Mode:        mode,
		MaxPrepTime: input.MaxPrepTime,
	})
	if !res.Success {
		return nil, generationError(res.Err)
	}

	if input.Persist {
		if err := srv.persist(ctx, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// GetMealPlan retrieves a stored plan.
func (srv *plannerService) GetMealPlan(ctx context.Context, userID uuid.UUID, date string) (*entity.MealPlan, error) {
	if _, err := entity.ParseDate(date); err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails(date)
	}

	var plan *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewMealPlanRepository().FindMealPlan(ctx, userID, date)
		if err != nil {
			if errors.Is(err, repository.ErrMealPlanNotFound) {
				return errors.Wrap(domainerrors.ErrMealPlanNotFound, "meal plan not found")
			}

			return errors.Wrap(err, "failed to find meal plan")
		}
		plan = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get meal plan")
	}

	return plan, nil
}

// ListMealPlans returns the stored plans of a user between two dates, inclusive.
func (srv *plannerService) ListMealPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]*entity.MealPlan, error) {
	fromDay, err := entity.ParseDate(from)
	if err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails(from)
	}
	toDay, err := entity.ParseDate(to)
	if err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails(to)
	}
	if toDay.Before(fromDay) {
		return nil, domainerrors.ErrInvalidDate.WithDetails("from must not be after to")
	}

	var plans []*entity.MealPlan

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewMealPlanRepository().ListMealPlans(ctx, userID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list meal plans")
		}
		plans = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return plans, nil
}

// EstimateGenerationTime predicts a run's duration, sized by the stored catalog unless given.
func (srv *plannerService) EstimateGenerationTime(ctx context.Context, input *usecase.EstimateInput) (*usecase.Estimate, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = srv.generator.Config().DefaultMode
	}
	days := input.Days
	if days < 1 {
		days = 1
	}

	size := 0
	if input.CatalogSize != nil {
		size = *input.CatalogSize
	} else {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			catalog, err := repoFactory.NewCatalogRepository().LoadCatalog(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to load catalog")
			}
			size = catalog.Size()

			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to estimate generation time")
		}
	}

	estimate := srv.generator.EstimateGenerationTime(generator.Options{Mode: mode, Days: days}, size)

	return &usecase.Estimate{
		Mode:            mode,
		Days:            days,
		CatalogSize:     size,
		EstimatedMillis: estimate.Milliseconds(),
	}, nil
}

// loadInputs reads the profile and catalog a run needs. Generation itself runs outside the
// transaction.
func (srv *plannerService) loadInputs(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, *entity.Catalog, error) {
	var (
		profile *entity.UserProfile
		catalog *entity.Catalog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		profile = found

		catalog, err = repoFactory.NewCatalogRepository().LoadCatalog(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load catalog")
		}

		return nil
	})

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load generation inputs")
	}

	return profile, catalog, nil
}

// persist stores every plan of the result atomically, then announces each one.
func (srv *plannerService) persist(ctx context.Context, res *generator.GenerationResult) error {
	plans := res.Plans()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()
		for _, plan := range plans {
			if err := mealPlanRepo.SaveMealPlan(ctx, plan); err != nil {
				return errors.Wrapf(err, "failed to save meal plan for %s", plan.Date)
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to persist meal plans", slog.Any("error", err))

		return errors.Wrap(err, "failed to persist meal plans")
	}

	for _, plan := range plans {
		srv.announce(ctx, plan, res)
	}

	return nil
}

// announce publishes a plan-generated event. Publishing failures do not fail the request.
func (srv *plannerService) announce(ctx context.Context, plan *entity.MealPlan, res *generator.GenerationResult) {
	placeholders := 0
	for _, m := range plan.Meals {
		if m.IsPlaceholder {
			placeholders++
		}
	}

	event := &service.PlanGeneratedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		PlanID:       plan.ID.String(),
		UserID:       plan.UserID.String(),
		Date:         plan.Date,
		Mode:         string(res.Metadata.Mode),
		MealCount:    len(plan.Meals),
		Placeholders: placeholders,
		QualityScore: res.Quality.Overall,
	}
	if err := srv.publisher.PublishPlanGeneratedEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish plan generated event",
			slog.Any("error", err),
			slog.String("plan_id", event.PlanID),
		)
	}
}

func parseMode(s string) (generator.Mode, error) {
	mode, err := generator.ParseMode(s)
	if err != nil {
		return "", domainerrors.ErrInvalidMode.WithDetails(s)
	}

	return mode, nil
}
