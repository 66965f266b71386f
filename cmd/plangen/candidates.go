package main

import (
	"io"
	"time"

	"mealplan/internal/domain/entity"
	"mealplan/internal/infra/catalog"
	"mealplan/internal/planner/filtering"
	"mealplan/internal/planner/nutrition"

	"github.com/pkg/errors"
)

type candidatesRequest struct {
	profilePath string
	catalogPath string
	date        string
	slot        string
	limit       int
}

type candidatesOutput struct {
	Date     string                       `json:"date"`
	Slot     entity.Slot                  `json:"slot"`
	Target   entity.MealNutritionalTarget `json:"target"`
	Context  filtering.Context            `json:"context"`
	Stats    filtering.Stats              `json:"stats"`
	Items    []filtering.ScoredItem       `json:"items"`
	Filtered []filtering.FilteredItem     `json:"filtered,omitempty"`
}

// runCandidates ranks the catalog items eligible for one slot of the profile's day.
func runCandidates(req candidatesRequest, out io.Writer) error {
	slot, ok := entity.CanonicalSlot(req.slot)
	if !ok {
		return errors.Errorf("unknown --slot %q", req.slot)
	}

	profile, err := loadProfile(req.profilePath)
	if err != nil {
		return err
	}
	seed, err := catalog.LoadFile(req.catalogPath)
	if err != nil {
		return err
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if req.date != "" {
		day, err = time.Parse(entity.DateLayout, req.date)
		if err != nil {
			return errors.Wrapf(err, "invalid --date %q", req.date)
		}
	}

	daily, err := nutrition.CalculateDailyTargets(profile)
	if err != nil {
		return err
	}

	var target *entity.MealNutritionalTarget
	for _, t := range nutrition.CalculateMealTargets(profile, daily) {
		if t.SlotKey() == slot {
			target = &t

			break
		}
	}
	if target == nil {
		return errors.Errorf("slot %q is not part of this profile's day", slot)
	}

	criteria := filtering.CriteriaFor(profile, *target, day, nil)
	results := filtering.FilterForMeal(seed.Recipes, seed.Foods, criteria)

	items := results.Items
	if req.limit > 0 && len(items) > req.limit {
		items = items[:req.limit]
	}

	return writeJSON(out, candidatesOutput{
		Date:     day.Format(entity.DateLayout),
		Slot:     slot,
		Target:   *target,
		Context:  criteria.Context,
		Stats:    results.Stats,
		Items:    items,
		Filtered: results.Filtered,
	})
}
