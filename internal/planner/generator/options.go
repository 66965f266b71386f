package generator

import (
	"strings"
	"time"

	"mealplan/internal/planner/knapsack"

	"github.com/pkg/errors"
)

// Mode trades generation time for plan quality.
type Mode string

const (
	ModeSpeed    Mode = "speed"
	ModeBalanced Mode = "balanced"
	ModeQuality  Mode = "quality"
)

// Modes lists every mode from fastest to slowest.
var Modes = []Mode{ModeSpeed, ModeBalanced, ModeQuality}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeSpeed, ModeBalanced, ModeQuality:
		return true
	default:
		return false
	}
}

// ParseMode parses a mode name case-insensitively. An empty name yields an empty mode, which
// the generator replaces with its configured default.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" || m.IsValid() {
		return m, nil
	}

	return "", errors.Wrapf(ErrInvalidMode, "unknown mode %q", s)
}

// ModeSettings is what a mode selects for the optimizer.
type ModeSettings struct {
	Algorithm        knapsack.Algorithm `json:"algorithm"`
	TimeLimit        time.Duration      `json:"timeLimit"`
	TolerancePercent float64            `json:"tolerancePercent"`
}

var defaultModeSettings = map[Mode]ModeSettings{
	ModeSpeed:    {Algorithm: knapsack.Greedy, TimeLimit: 2 * time.Second, TolerancePercent: 30},
	ModeBalanced: {Algorithm: knapsack.Hybrid, TimeLimit: 5 * time.Second, TolerancePercent: 20},
	ModeQuality:  {Algorithm: knapsack.Dynamic, TimeLimit: 10 * time.Second, TolerancePercent: 15},
}

// DefaultModeSettings returns the built-in settings of m.
func DefaultModeSettings(m Mode) (ModeSettings, bool) {
	s, ok := defaultModeSettings[m]

	return s, ok
}

// Options are the per-call knobs of Generate and GenerateWeek.
type Options struct {
	// Date is the plan date, or the first date of a week, as YYYY-MM-DD. Empty means today.
	Date string `json:"date,omitempty"`
	// Days is the length of a week plan. Ignored by Generate.
	Days int  `json:"days,omitempty"`
	Mode Mode `json:"mode,omitempty"`
	// MaxPrepTime drops recipes whose prep plus cook time exceeds it, in minutes.
	MaxPrepTime int `json:"maxPrepTime,omitempty"`
}

// Config holds generator-wide settings.
type Config struct {
	DefaultMode Mode
	WeekWorkers int
	MaxWeekDays int
	// Modes overrides the built-in settings per mode. Zero fields keep the built-in value.
	Modes map[Mode]ModeSettings
}

const (
	defaultWeekDays    = 7
	defaultWeekWorkers = 4
	defaultMaxWeekDays = 14
)

func (c Config) withDefaults() Config {
	if !c.DefaultMode.IsValid() {
		c.DefaultMode = ModeBalanced
	}
	if c.WeekWorkers <= 0 {
		c.WeekWorkers = defaultWeekWorkers
	}
	if c.MaxWeekDays <= 0 {
		c.MaxWeekDays = defaultMaxWeekDays
	}

	merged := make(map[Mode]ModeSettings, len(defaultModeSettings))
	for m, s := range defaultModeSettings {
		o := c.Modes[m]
		if o.Algorithm != "" {
			s.Algorithm = o.Algorithm
		}
		if o.TimeLimit > 0 {
			s.TimeLimit = o.TimeLimit
		}
		if o.TolerancePercent > 0 {
			s.TolerancePercent = o.TolerancePercent
		}
		merged[m] = s
	}
	c.Modes = merged

	return c
}
