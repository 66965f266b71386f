package main

import (
	"io"
	"time"

	"mealplan/internal/domain/entity"
	"mealplan/internal/planner/nutrition"
	"mealplan/internal/planner/structure"

	"github.com/pkg/errors"
)

type targetsOutput struct {
	Date      string                         `json:"date"`
	Daily     *nutrition.DailyTargets        `json:"daily"`
	Meals     []entity.MealNutritionalTarget `json:"meals"`
	Structure *structure.DayStructure        `json:"structure,omitempty"`
}

func runTargets(profilePath, date string, out io.Writer) error {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		day, err = time.Parse(entity.DateLayout, date)
		if err != nil {
			return errors.Wrapf(err, "invalid --date %q", date)
		}
	}

	daily, err := nutrition.CalculateDailyTargets(profile)
	if err != nil {
		return err
	}

	result := targetsOutput{
		Date:  day.Format(entity.DateLayout),
		Daily: daily,
		Meals: nutrition.CalculateMealTargets(profile, daily),
	}
	if ds, err := structure.BuildDayStructure(profile, day); err == nil {
		result.Structure = ds
	}

	return writeJSON(out, result)
}
