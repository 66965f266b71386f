package generator

import (
	"context"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/knapsack"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// GenerateWeek runs Generate once per date from opts.Date for opts.Days days (7 when unset).
// Days are independent and generated concurrently; plans come back in date order. The first
// failing day fails the whole result.
func (g *Generator) GenerateWeek(
	ctx context.Context,
	user *entity.UserProfile,
	catalog *entity.Catalog,
	opts Options,
) *GenerationResult {
	start := g.now()

	days := opts.Days
	if days == 0 {
		days = defaultWeekDays
	}
	if days < 1 || days > g.cfg.MaxWeekDays {
		return g.failure(errors.Wrapf(ErrInvalidRange, "days must be between 1 and %d, got %d", g.cfg.MaxWeekDays, days), start)
	}
	first, err := g.resolveDate(opts.Date)
	if err != nil {
		return g.failure(err, start)
	}

	results := make([]*GenerationResult, days)
	dayErrs := make([]error, days)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.WeekWorkers)
	for i := range days {
		dayOpts := opts
		dayOpts.Days = 0
		dayOpts.Date = first.AddDate(0, 0, i).Format(entity.DateLayout)

		eg.Go(func() error {
			res := g.Generate(egCtx, user, catalog, dayOpts)
			results[i] = res
			if !res.Success {
				dayErrs[i] = errors.Wrapf(res.Err, "failed to generate %s", dayOpts.Date)

				return dayErrs[i]
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return g.failure(firstDayFailure(dayErrs, err), start)
	}

	res := mergeWeek(results)
	res.GenerationTime = g.elapsedMillis(start)

	return res
}

// firstDayFailure picks the earliest day that failed on its own rather than because a sibling
// cancelled the group.
func firstDayFailure(dayErrs []error, fallback error) error {
	for _, err := range dayErrs {
		if err != nil && !errors.Is(err, ErrGenerationCancelled) {
			return err
		}
	}

	return fallback
}

func mergeWeek(results []*GenerationResult) *GenerationResult {
	merged := &GenerationResult{
		Success:  true,
		WeekPlan: make([]*entity.MealPlan, 0, len(results)),
	}

	seen := make(map[knapsack.Algorithm]bool)
	var q QualityMetrics
	for i, res := range results {
		merged.WeekPlan = append(merged.WeekPlan, res.MealPlan)
		for _, w := range res.Warnings {
			merged.Warnings = append(merged.Warnings, res.MealPlan.Date+": "+w)
		}
		if i == 0 {
			merged.DailyTargets = res.DailyTargets
			merged.Metadata.Mode = res.Metadata.Mode
			merged.Metadata.RecipesConsidered = res.Metadata.RecipesConsidered
			merged.Metadata.ItemsFiltered = res.Metadata.ItemsFiltered
			merged.Metadata.OptimalityDeclared = res.Metadata.OptimalityDeclared
		}
		for _, algo := range res.Metadata.AlgorithmsUsed {
			if !seen[algo] {
				seen[algo] = true
				merged.Metadata.AlgorithmsUsed = append(merged.Metadata.AlgorithmsUsed, algo)
			}
		}
		merged.Metadata.IterationsCompleted += res.Metadata.IterationsCompleted
		merged.Metadata.FinalOptimality += res.Metadata.FinalOptimality

		q.NutritionalAccuracy += res.Quality.NutritionalAccuracy
		q.VarietyScore += res.Quality.VarietyScore
		q.ConstraintCompliance += res.Quality.ConstraintCompliance
	}

	n := float64(len(results))
	if n > 0 {
		merged.Metadata.FinalOptimality /= n
		q.NutritionalAccuracy = round1(q.NutritionalAccuracy / n)
		q.VarietyScore = round1(q.VarietyScore / n)
		q.ConstraintCompliance = round1(q.ConstraintCompliance / n)
	}
	q.UserPreferenceAlignment = UserPreferenceAlignment
	q.UserPreferenceDeclared = true
	q.Overall = overallScore(q)
	merged.Quality = q

	return merged
}
