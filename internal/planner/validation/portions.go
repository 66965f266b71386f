package validation

import (
	"fmt"

	"mealplan/internal/domain/entity"
)

const (
	minMainPortion      = 0.1
	maxMainPortion      = 1.0
	minTotalPortion     = 0.7
	maxTotalPortion     = 1.5
	minMainPortionShare = 0.6
	maxMainPortionShare = 0.9
	maxSnackShare       = 0.4
	maxMainVariation    = 3.0
)

// ValidatePortionSizes checks custom portions for the configured snack positions.
func ValidatePortionSizes(portions entity.PortionSizes, snackPositions []entity.SnackPosition) Result {
	r := Result{Score: 100}

	var mainTotal, largest, smallest float64
	var mainCount int
	for _, mt := range entity.MainMealTypes {
		v, ok := portions.Get(entity.Slot(mt))
		switch {
		case !ok:
			r.Errors = append(r.Errors, fmt.Sprintf("%s portion is missing", mt))

			continue
		case v <= 0:
			r.Errors = append(r.Errors, fmt.Sprintf("%s portion must be positive", mt))

			continue
		case v < minMainPortion || v > maxMainPortion:
			r.Warnings = append(r.Warnings, fmt.Sprintf("%s portion %.2f is outside [%.1f, %.1f]", mt, v, minMainPortion, maxMainPortion))
		}

		mainTotal += v
		if mainCount == 0 || v > largest {
			largest = v
		}
		if mainCount == 0 || v < smallest {
			smallest = v
		}
		mainCount++
	}

	configured := make(map[entity.Slot]bool, len(snackPositions))
	var snackTotal float64
	for _, pos := range snackPositions {
		configured[entity.Slot(pos)] = true
		if v, ok := portions.Get(entity.Slot(pos)); ok {
			if v < 0 {
				r.Errors = append(r.Errors, fmt.Sprintf("%s portion must not be negative", pos))

				continue
			}
			snackTotal += v
		}
	}
	for _, pos := range entity.SnackPositions {
		if _, ok := portions.Get(entity.Slot(pos)); ok && !configured[entity.Slot(pos)] {
			r.Warnings = append(r.Warnings, fmt.Sprintf("portion for %s is set but no snack is planned there", pos))
		}
	}

	total := mainTotal + snackTotal
	if total < minTotalPortion || total > maxTotalPortion {
		r.Warnings = append(r.Warnings, fmt.Sprintf("portions add up to %.2f, expected close to 1.0", total))
	}
	if total > 0 {
		if share := mainTotal / total; share < minMainPortionShare || share > maxMainPortionShare {
			r.Warnings = append(r.Warnings, fmt.Sprintf("main meals take %.0f%% of portions, expected 60-90%%", share*100))
		}
		if share := snackTotal / total; share > maxSnackShare {
			r.Warnings = append(r.Warnings, fmt.Sprintf("snacks take %.0f%% of portions, expected at most 40%%", share*100))
		}
	}
	if mainCount > 1 && smallest > 0 && largest/smallest > maxMainVariation {
		r.Warnings = append(r.Warnings, fmt.Sprintf("largest main meal is %.1fx the smallest", largest/smallest))
	}

	r.Valid = len(r.Errors) == 0

	return r
}
