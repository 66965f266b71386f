package nutrition

import (
	"mealplan/internal/domain/entity"
)

// CalculateMealTargets splits the daily targets into one target per main meal followed by one
// per configured snack position, in that order. A position listed twice gets one slot.
//
// A slot's share comes from the user's portion sizes. Slots without one get the even-split
// default: every snack takes DefaultSnackShare and the main meals divide the rest equally.
func CalculateMealTargets(user *entity.UserProfile, daily *DailyTargets) []entity.MealNutritionalTarget {
	if daily == nil {
		return nil
	}

	positions := user.DistinctSnackPositions()
	mealCount := float64(len(entity.MainMealTypes) + len(positions))
	mainDefault := (1 - DefaultSnackShare*float64(len(positions))) / float64(len(entity.MainMealTypes))
	if mainDefault < 0 {
		mainDefault = 0
	}

	var portions entity.PortionSizes
	if user != nil {
		portions = user.PortionSizes
	}

	targets := make([]entity.MealNutritionalTarget, 0, int(mealCount))
	for _, mt := range entity.MainMealTypes {
		fraction, ok := portions.Get(entity.SlotFor(mt, ""))
		if !ok {
			fraction = mainDefault
		}
		targets = append(targets, entity.MealNutritionalTarget{
			MealType:          mt,
			Target:            daily.Macros().Scale(fraction),
			PortionMultiplier: fraction * mealCount,
			Priority:          entity.PriorityHigh,
		})
	}
	for _, pos := range positions {
		fraction, ok := portions.Get(entity.SlotFor(entity.MealTypeSnack, pos))
		if !ok {
			fraction = DefaultSnackShare
		}
		targets = append(targets, entity.MealNutritionalTarget{
			MealType:          entity.MealTypeSnack,
			Position:          pos,
			Target:            daily.Macros().Scale(fraction),
			PortionMultiplier: fraction * mealCount,
			Priority:          entity.PriorityMedium,
		})
	}

	return targets
}

// SumTargets adds up the macro targets of every slot.
func SumTargets(targets []entity.MealNutritionalTarget) entity.Macros {
	var total entity.Macros
	for _, t := range targets {
		total = total.Add(t.Target)
	}

	return total
}
