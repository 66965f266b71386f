// Package structure derives the day's meal skeleton and the calories owed to each slot.
package structure

import (
	"math"
	"sort"
	"time"

	"mealplan/internal/domain/entity"
)

const (
	minMainShare = 0.60
	maxMainShare = 0.85
)

// Fallback shares of a main meal when custom portions leave it out.
var customMainFallback = map[entity.MealType]float64{
	entity.MealTypeBreakfast: 0.25,
	entity.MealTypeLunch:     0.35,
	entity.MealTypeDinner:    0.30,
}

// Split of the non-snack remainder between the main meals when no custom portions exist.
var defaultMainSplit = map[entity.MealType]float64{
	entity.MealTypeBreakfast: 0.28,
	entity.MealTypeLunch:     0.38,
	entity.MealTypeDinner:    0.34,
}

var slotRank = map[entity.Slot]int{
	entity.Slot(entity.SnackBeforeBreakfast):       0,
	entity.Slot(entity.MealTypeBreakfast):          1,
	entity.Slot(entity.SnackBetweenBreakfastLunch): 2,
	entity.Slot(entity.MealTypeLunch):              3,
	entity.Slot(entity.SnackBetweenLunchDinner):    4,
	entity.Slot(entity.MealTypeDinner):             5,
	entity.Slot(entity.SnackAfterDinner):           6,
}

// MealEntry is one slot of the day.
type MealEntry struct {
	MealType          entity.MealType      `json:"mealType"`
	Position          entity.SnackPosition `json:"position,omitempty"`
	PortionSize       float64              `json:"portionSize"`
	PortionMultiplier float64              `json:"portionMultiplier"`
	CalorieTarget     int                  `json:"calorieTarget"`
	Priority          entity.Priority      `json:"priority"`
}

// SlotKey identifies the entry's slot.
func (e MealEntry) SlotKey() entity.Slot {
	return entity.SlotFor(e.MealType, e.Position)
}

// Distribution summarizes how calories are split between main meals and snacks.
type Distribution struct {
	MainMealCalories int      `json:"mainMealCalories"`
	SnackCalories    int      `json:"snackCalories"`
	MainMealShare    float64  `json:"mainMealShare"`
	Balanced         bool     `json:"balanced"`
	Issues           []string `json:"issues,omitempty"`
}

// DayStructure is the ordered set of slots for one date.
type DayStructure struct {
	Date               string       `json:"date"`
	DailyCalories      float64      `json:"dailyCalories"`
	Meals              []MealEntry  `json:"meals"`
	UsesCustomPortions bool         `json:"usesCustomPortions"`
	Distribution       Distribution `json:"distribution"`
}

// BuildDayStructure lays out the main meals and every configured snack position in daily
// order, each with a whole-calorie target.
func BuildDayStructure(user *entity.UserProfile, date time.Time) (*DayStructure, error) {
	if !user.HasMealPreferences() {
		return nil, entity.ErrMissingMealPreferences
	}
	if !user.HasTDCI() {
		return nil, entity.ErrMissingTDCI
	}

	daily := user.TDCI.AdjustedTDCI
	positions := user.DistinctSnackPositions()
	custom := len(user.PortionSizes) > 0
	defaults := CalculateDefaultPortionSizes(positions)
	mealCount := float64(len(entity.MainMealTypes) + len(positions))

	ds := &DayStructure{
		Date:               date.Format(entity.DateLayout),
		DailyCalories:      daily,
		Meals:              make([]MealEntry, 0, int(mealCount)),
		UsesCustomPortions: custom,
	}

	for _, mt := range entity.MainMealTypes {
		share, _ := defaults.Get(entity.Slot(mt))
		if custom {
			if v, ok := user.PortionSizes.Get(entity.Slot(mt)); ok {
				share = v
			} else {
				share = customMainFallback[mt]
			}
		}
		ds.Meals = append(ds.Meals, newEntry(mt, "", share, mealCount, daily))
	}
	for _, pos := range positions {
		share, _ := defaults.Get(entity.Slot(pos))
		if custom {
			if v, ok := user.PortionSizes.Get(entity.Slot(pos)); ok {
				share = v
			}
		}
		ds.Meals = append(ds.Meals, newEntry(entity.MealTypeSnack, pos, share, mealCount, daily))
	}

	SortEntries(ds.Meals)
	ds.Distribution = analyzeDistribution(ds.Meals, daily)

	return ds, nil
}

// CalculateDefaultPortionSizes synthesizes portions for the snack count: 1 snack takes 15%,
// 2 take 12% each, 3 take 8% each and 4 or more take 6% each. The remainder goes to
// breakfast, lunch and dinner at 28/38/34.
func CalculateDefaultPortionSizes(positions []entity.SnackPosition) entity.PortionSizes {
	var snackShare float64
	switch n := len(positions); {
	case n == 0:
		snackShare = 0
	case n == 1:
		snackShare = 0.15
	case n == 2:
		snackShare = 0.12
	case n == 3:
		snackShare = 0.08
	default:
		snackShare = 0.06
	}

	sizes := make(entity.PortionSizes, len(entity.MainMealTypes)+len(positions))
	remainder := 1 - snackShare*float64(len(positions))
	for _, mt := range entity.MainMealTypes {
		sizes[entity.Slot(mt)] = remainder * defaultMainSplit[mt]
	}
	for _, pos := range positions {
		sizes[entity.Slot(pos)] = snackShare
	}

	return sizes
}

// SortEntries orders entries from morning to evening. Main meals come first within a slot.
func SortEntries(entries []MealEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := rankOf(entries[i]), rankOf(entries[j])
		if ri != rj {
			return ri < rj
		}

		return entries[i].MealType.IsMain() && !entries[j].MealType.IsMain()
	})
}

// Rank returns the position of a slot in the canonical daily order.
func Rank(slot entity.Slot) int {
	if r, ok := slotRank[slot]; ok {
		return r
	}

	return len(slotRank)
}

func rankOf(e MealEntry) int {
	return Rank(e.SlotKey())
}

func newEntry(mt entity.MealType, pos entity.SnackPosition, share, mealCount, daily float64) MealEntry {
	priority := entity.PriorityHigh
	if !mt.IsMain() {
		priority = entity.PriorityMedium
	}

	return MealEntry{
		MealType:          mt,
		Position:          pos,
		PortionSize:       share,
		PortionMultiplier: share * mealCount,
		CalorieTarget:     int(math.Round(daily * share)),
		Priority:          priority,
	}
}

func analyzeDistribution(entries []MealEntry, daily float64) Distribution {
	var d Distribution
	for _, e := range entries {
		if e.MealType.IsMain() {
			d.MainMealCalories += e.CalorieTarget
		} else {
			d.SnackCalories += e.CalorieTarget
		}
	}
	if daily > 0 {
		d.MainMealShare = float64(d.MainMealCalories) / daily
	}

	d.Balanced = true
	if d.MainMealShare < minMainShare {
		d.Balanced = false
		d.Issues = append(d.Issues, "main meals carry less than 60% of daily calories")
	}
	if d.MainMealShare > maxMainShare {
		d.Balanced = false
		d.Issues = append(d.Issues, "main meals carry more than 85% of daily calories")
	}

	return d
}
