package impl

import (
	"testing"
	"time"

	"mealplan/config"
	"mealplan/internal/planner/generator"
	"mealplan/internal/planner/knapsack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorConfig(t *testing.T) {
	cfg, err := GeneratorConfig(config.PlannerConfig{
		DefaultMode: "Quality",
		WeekWorkers: 2,
		MaxWeekDays: 10,
		Modes: map[string]config.ModeConfig{
			"speed": {Algorithm: "dynamic", TimeLimit: 750 * time.Millisecond, TolerancePercent: 25},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, generator.ModeQuality, cfg.DefaultMode)
	assert.Equal(t, 2, cfg.WeekWorkers)
	assert.Equal(t, 10, cfg.MaxWeekDays)
	assert.Equal(t, generator.ModeSettings{
		Algorithm:        knapsack.Dynamic,
		TimeLimit:        750 * time.Millisecond,
		TolerancePercent: 25,
	}, cfg.Modes[generator.ModeSpeed])
}

func TestGeneratorConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PlannerConfig
	}{
		{name: "unknown default mode", cfg: config.PlannerConfig{DefaultMode: "turbo"}},
		{name: "unknown mode key", cfg: config.PlannerConfig{Modes: map[string]config.ModeConfig{"turbo": {}}}},
		{name: "unknown algorithm", cfg: config.PlannerConfig{Modes: map[string]config.ModeConfig{"speed": {Algorithm: "annealing"}}}},
		{name: "negative time limit", cfg: config.PlannerConfig{Modes: map[string]config.ModeConfig{"speed": {TimeLimit: -time.Second}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratorConfig(tt.cfg)

			assert.Error(t, err)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(&config.Config{Planner: config.PlannerConfig{DefaultMode: "speed"}}, discardLogger())

	require.NoError(t, err)
	assert.Equal(t, generator.ModeSpeed, gen.Config().DefaultMode)
}
