package knapsack

import "fmt"

// epsilon absorbs floating point noise when comparing sums against bounds.
const epsilon = 1e-9

// Usage sums the weights of items.
func Usage(items []Item) Weights {
	var total Weights
	for _, item := range items {
		total = total.Add(item.Weights)
	}

	return total
}

// CanAddItem reports whether adding item to usage stays within every maximum bound.
func CanAddItem(usage Weights, item Item, c Constraints) bool {
	return withinMax(usage.Add(item.Weights), c)
}

// CheckFeasibility reports whether the summed items keep every nutrient within [min, max]
// and volume, prep time and cost under their maximums. Violations describe each failed bound.
func CheckFeasibility(items []Item, c Constraints) (bool, []string) {
	return checkUsage(Usage(items), c)
}

func checkUsage(u Weights, c Constraints) (bool, []string) {
	var violations []string
	check := func(name string, value, minBound, maxBound float64) {
		if value < minBound-epsilon {
			violations = append(violations, fmt.Sprintf("%s %.1f below minimum %.1f", name, value, minBound))
		}
		if value > maxBound+epsilon {
			violations = append(violations, fmt.Sprintf("%s %.1f above maximum %.1f", name, value, maxBound))
		}
	}

	check("calories", u.Calories, c.MinCalories, c.MaxCalories)
	check("protein", u.Protein, c.MinProtein, c.MaxProtein)
	check("carbs", u.Carbs, c.MinCarbs, c.MaxCarbs)
	check("fat", u.Fat, c.MinFat, c.MaxFat)
	check("volume", u.Volume, 0, c.MaxVolume)
	check("prep time", u.PrepTime, 0, c.MaxPrepTime)
	check("cost", u.Cost, 0, c.MaxCost)

	return len(violations) == 0, violations
}

func withinMax(u Weights, c Constraints) bool {
	return u.Calories <= c.MaxCalories+epsilon &&
		u.Protein <= c.MaxProtein+epsilon &&
		u.Carbs <= c.MaxCarbs+epsilon &&
		u.Fat <= c.MaxFat+epsilon &&
		u.Volume <= c.MaxVolume+epsilon &&
		u.PrepTime <= c.MaxPrepTime+epsilon &&
		u.Cost <= c.MaxCost+epsilon
}

func meetsMin(u Weights, c Constraints) bool {
	return u.Calories >= c.MinCalories-epsilon &&
		u.Protein >= c.MinProtein-epsilon &&
		u.Carbs >= c.MinCarbs-epsilon &&
		u.Fat >= c.MinFat-epsilon
}
