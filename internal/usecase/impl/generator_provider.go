package impl

import (
	"log/slog"

	"mealplan/config"
	"mealplan/internal/planner/generator"
	"mealplan/internal/planner/knapsack"

	"github.com/pkg/errors"
)

// NewGenerator builds the meal plan generator from the planner section of the configuration.
// Unknown mode or algorithm names are configuration errors.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (*generator.Generator, error) {
	genCfg, err := GeneratorConfig(cfg.Planner)
	if err != nil {
		return nil, err
	}

	return generator.New(genCfg, logger), nil
}

// GeneratorConfig converts the planner configuration.
func GeneratorConfig(cfg config.PlannerConfig) (generator.Config, error) {
	defaultMode, err := generator.ParseMode(cfg.DefaultMode)
	if err != nil {
		return generator.Config{}, errors.Wrap(err, "planner.defaultMode")
	}

	modes := make(map[generator.Mode]generator.ModeSettings, len(cfg.Modes))
	for name, override := range cfg.Modes {
		mode, err := generator.ParseMode(name)
		if err != nil || mode == "" {
			return generator.Config{}, errors.Errorf("planner.modes: unknown mode %q", name)
		}
		algorithm, err := knapsack.ParseAlgorithm(override.Algorithm)
		if err != nil {
			return generator.Config{}, errors.Wrapf(err, "planner.modes.%s.algorithm", name)
		}
		if override.TimeLimit < 0 || override.TolerancePercent < 0 {
			return generator.Config{}, errors.Errorf("planner.modes.%s: time limit and tolerance must not be negative", name)
		}
		modes[mode] = generator.ModeSettings{
			Algorithm:        algorithm,
			TimeLimit:        override.TimeLimit,
			TolerancePercent: override.TolerancePercent,
		}
	}

	return generator.Config{
		DefaultMode: defaultMode,
		WeekWorkers: cfg.WeekWorkers,
		MaxWeekDays: cfg.MaxWeekDays,
		Modes:       modes,
	}, nil
}
