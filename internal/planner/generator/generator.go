// Package generator assembles a day's meal plan from a user profile and a catalog. A run goes
// through preparation, pre-filtering, optimization, construction and quality evaluation, in
// that order, and never returns an error across its boundary: failures come back as a
// GenerationResult with Success unset.
package generator

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/filtering"
	"mealplan/internal/planner/knapsack"
	"mealplan/internal/planner/nutrition"
	"mealplan/internal/planner/structure"
	"mealplan/internal/planner/validation"

	"github.com/pkg/errors"
)

var (
	ErrMissingTDCI            = entity.ErrMissingTDCI
	ErrMissingMealPreferences = entity.ErrMissingMealPreferences
	ErrNoEligibleItems        = errors.New("no catalog item is left after filtering")
	ErrInvalidDate            = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidMode            = errors.New("mode must be one of speed, balanced or quality")
	ErrInvalidRange           = errors.New("day count is out of range")
	ErrGenerationCancelled    = errors.New("generation cancelled")
	ErrUnexpected             = errors.New("unexpected generation failure")
)

// snackCalorieCeiling admits any item under it to a snack slot regardless of category.
const snackCalorieCeiling = 300

// Generator runs the meal plan pipeline. It holds no per-run state and is safe for concurrent
// use.
type Generator struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock used for default dates, timestamps and time budgets.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator.
func New(cfg Config, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{
		cfg:    cfg.withDefaults(),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// run carries the state of one Generate call between stages.
type run struct {
	user     *entity.UserProfile
	catalog  *entity.Catalog
	opts     Options
	date     time.Time
	mode     Mode
	settings ModeSettings
	logger   *slog.Logger

	daily    *nutrition.DailyTargets
	targets  []entity.MealNutritionalTarget
	eligible []filtering.ScoredItem
	filtered int
	solution *knapsack.Solution
	plan     *entity.MealPlan
	warnings []string
}

func (r *run) warn(msg string) {
	r.warnings = append(r.warnings, msg)
	r.logger.Warn("Meal plan generation warning", "warning", msg)
}

// Generate builds the meal plan of one date.
func (g *Generator) Generate(
	ctx context.Context,
	user *entity.UserProfile,
	catalog *entity.Catalog,
	opts Options,
) (res *GenerationResult) {
	start := g.now()
	defer func() {
		if p := recover(); p != nil {
			g.logger.Error("Meal plan generation panicked", "panic", p)
			res = g.failure(errors.Wrapf(ErrUnexpected, "%v", p), start)
		}
	}()

	r, err := g.prepare(ctx, user, catalog, opts)
	if err != nil {
		return g.failure(err, start)
	}
	if err := g.prefilter(r); err != nil {
		return g.failure(err, start)
	}
	if err := g.optimize(ctx, r); err != nil {
		return g.failure(err, start)
	}
	g.construct(r)
	quality := evaluate(r)

	r.logger.Debug("Meal plan generated",
		"meals", len(r.plan.Meals),
		"overall", quality.Overall,
		"algorithm", r.solution.Algorithm,
	)

	return &GenerationResult{
		Success:        true,
		MealPlan:       r.plan,
		DailyTargets:   r.daily,
		Quality:        quality,
		GenerationTime: g.elapsedMillis(start),
		Warnings:       r.warnings,
		Metadata: Metadata{
			Mode:                r.mode,
			AlgorithmsUsed:      []knapsack.Algorithm{r.solution.Algorithm},
			IterationsCompleted: r.solution.Iterations,
			RecipesConsidered:   len(r.eligible),
			ItemsFiltered:       r.filtered,
			FinalOptimality:     r.solution.Optimality,
			OptimalityDeclared:  r.solution.OptimalityDeclared,
		},
	}
}

func (g *Generator) prepare(
	ctx context.Context,
	user *entity.UserProfile,
	catalog *entity.Catalog,
	opts Options,
) (*run, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(ErrGenerationCancelled, err.Error())
	}
	if err := validation.RequireGenerationPrerequisites(user); err != nil {
		return nil, err
	}

	mode, settings, err := g.resolveMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	date, err := g.resolveDate(opts.Date)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = &entity.Catalog{}
	}

	r := &run{
		user:     user,
		catalog:  catalog,
		opts:     opts,
		date:     date,
		mode:     mode,
		settings: settings,
		logger: g.logger.With(
			"userID", user.ID,
			"date", date.Format(entity.DateLayout),
			"mode", mode,
		),
	}

	daily, err := nutrition.CalculateDailyTargets(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate daily targets")
	}
	r.daily = daily
	r.targets = nutrition.CalculateMealTargets(user, daily)

	ds, err := structure.BuildDayStructure(user, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build day structure")
	}
	sort.SliceStable(r.targets, func(i, j int) bool {
		return structure.Rank(r.targets[i].SlotKey()) < structure.Rank(r.targets[j].SlotKey())
	})

	// Validation findings are advisory and never block generation.
	check := structure.ValidateMealStructure(ds)
	for _, msg := range append(check.Errors, check.Warnings...) {
		r.warn(msg)
	}
	for _, msg := range ds.Distribution.Issues {
		r.warn(msg)
	}
	profile := validation.ValidateUserProfile(user)
	for _, msg := range append(profile.Errors, profile.Warnings...) {
		r.warn(msg)
	}

	r.logger.Debug("Preparation complete",
		"dailyCalories", daily.Calories,
		"source", daily.Source,
		"slots", len(r.targets),
		"profileScore", profile.Score,
	)

	return r, nil
}

func (g *Generator) prefilter(r *run) error {
	avoided := filtering.ApplyAvoidanceFilters(r.catalog.Recipes, r.catalog.Foods, r.user)
	recipes := avoided.Recipes
	if r.opts.MaxPrepTime > 0 {
		recipes = filtering.FilterByMaxPrepTime(recipes, r.opts.MaxPrepTime)
	}

	r.eligible = filtering.Flatten(recipes, avoided.Foods)
	r.filtered = r.catalog.Size() - len(r.eligible)

	r.logger.Debug("Pre-filtering complete",
		"eligible", len(r.eligible),
		"avoided", len(avoided.Filtered),
		"filtered", r.filtered,
	)

	if len(r.eligible) == 0 {
		return errors.Wrapf(ErrNoEligibleItems, "%d of %d catalog items filtered", r.filtered, r.catalog.Size())
	}

	return nil
}

func (g *Generator) optimize(ctx context.Context, r *run) error {
	items := buildItems(r.eligible, r.targets)
	if len(items) == 0 {
		r.warn("no catalog item suits any meal slot")
	}

	constraints := knapsack.CreateConstraintsFromTargets(r.targets, knapsack.ConstraintOptions{
		TolerancePercent: r.settings.TolerancePercent,
	})
	solution, err := knapsack.Solve(ctx, items, constraints, knapsack.Options{
		Algorithm: r.settings.Algorithm,
		TimeLimit: r.settings.TimeLimit,
		Now:       g.now,
	})
	if err != nil {
		if errors.Is(err, knapsack.ErrCancelled) {
			return errors.Wrap(ErrGenerationCancelled, err.Error())
		}

		return errors.Wrap(err, "failed to optimize meal selection")
	}
	r.solution = solution

	if !solution.Feasible {
		r.warn("optimization could not meet every constraint, keeping the best selection found")
	}
	if solution.TimedOut {
		r.warn("optimization reached its time limit, keeping the best selection found")
	}

	r.logger.Debug("Optimization complete",
		"items", len(items),
		"selected", len(solution.Selected),
		"algorithm", solution.Algorithm,
		"iterations", solution.Iterations,
		"feasible", solution.Feasible,
	)

	return nil
}

// buildItems specializes every eligible item for every slot it suits, slot by slot.
func buildItems(eligible []filtering.ScoredItem, targets []entity.MealNutritionalTarget) []knapsack.Item {
	items := make([]knapsack.Item, 0, len(eligible)*len(targets))
	for _, target := range targets {
		for _, candidate := range eligible {
			if !suitsSlot(candidate.Item, target) {
				continue
			}
			switch candidate.Item.Kind {
			case entity.ItemKindRecipe:
				items = append(items, knapsack.RecipeToItem(candidate.Item.Recipe, target))
			case entity.ItemKindFood:
				items = append(items, knapsack.FoodToItem(candidate.Item.Food, target))
			}
		}
	}

	return items
}

// suitsSlot gates a candidate for a slot. Main meals need the exact category. Snacks take a
// snack category or anything under snackCalorieCeiling.
func suitsSlot(item entity.CatalogItem, target entity.MealNutritionalTarget) bool {
	mealType := target.MealType
	if target.Position != "" {
		mealType = entity.MealTypeSnack
	}
	light := !mealType.IsMain() && item.Macros().Calories < snackCalorieCeiling

	switch {
	case item.Recipe != nil:
		return filtering.RecipeMatchesMealType(item.Recipe, mealType) || light
	case item.Food != nil:
		return filtering.FoodSuitsMealType(item.Food, mealType) || light
	default:
		return false
	}
}

func (g *Generator) construct(r *run) {
	dateStr := r.date.Format(entity.DateLayout)
	planID := PlanID(r.user.ID, dateStr)

	bySlot := make(map[entity.Slot][]knapsack.Item, len(r.targets))
	for _, item := range r.solution.Selected {
		bySlot[item.Metadata.Slot] = append(bySlot[item.Metadata.Slot], item)
	}

	meals := make([]entity.Meal, 0, len(r.solution.Selected)+len(r.targets))
	for _, target := range r.targets {
		selected := bySlot[target.SlotKey()]
		if len(selected) == 0 {
			meals = append(meals, placeholderMeal(planID, r.user.ID, dateStr, target))
			r.warn("no item was selected for " + string(target.SlotKey()) + ", added a placeholder")

			continue
		}
		for _, item := range selected {
			meals = append(meals, mealFromItem(planID, r.user.ID, dateStr, target, item))
		}
	}

	r.plan = &entity.MealPlan{
		ID:        planID,
		UserID:    r.user.ID,
		Date:      dateStr,
		Meals:     meals,
		CreatedAt: g.now().UTC(),
	}

	r.logger.Debug("Construction complete", "meals", len(meals))
}

func (g *Generator) resolveMode(m Mode) (Mode, ModeSettings, error) {
	if m == "" {
		m = g.cfg.DefaultMode
	}
	settings, ok := g.cfg.Modes[m]
	if !ok {
		return "", ModeSettings{}, errors.Wrapf(ErrInvalidMode, "unknown mode %q", m)
	}

	return m, settings, nil
}

func (g *Generator) resolveDate(date string) (time.Time, error) {
	if date == "" {
		now := g.now()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := entity.ParseDate(date)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "got %q", date)
	}

	return t, nil
}

func (g *Generator) failure(err error, start time.Time) *GenerationResult {
	g.logger.Warn("Meal plan generation failed", "error", err)

	return &GenerationResult{
		Success:        false,
		Error:          err.Error(),
		Err:            err,
		GenerationTime: g.elapsedMillis(start),
	}
}

func (g *Generator) elapsedMillis(start time.Time) int64 {
	ms := g.now().Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}

	return ms
}
