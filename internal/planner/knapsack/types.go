// Package knapsack selects a set of meal candidates that maximizes total value under several
// simultaneous nutrient, volume, time and cost bounds.
package knapsack

import (
	"strings"
	"time"

	"mealplan/internal/domain/entity"

	"github.com/pkg/errors"
)

// Algorithm names a solution strategy.
type Algorithm string

const (
	Greedy  Algorithm = "greedy"
	Dynamic Algorithm = "dynamic"
	Hybrid  Algorithm = "hybrid"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("algorithm must be one of greedy, dynamic or hybrid")

// ParseAlgorithm resolves an algorithm name case-insensitively. An empty name yields "".
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case "", Greedy, Dynamic, Hybrid:
		return a, nil
	default:
		return "", errors.Wrapf(ErrUnknownAlgorithm, "unknown algorithm %q", s)
	}
}

// Optimality figures are declared per algorithm. They are never measured against a real
// optimum and must be reported as declared.
const (
	GreedyOptimality  = 0.70
	DynamicOptimality = 0.95
	HybridOptimality  = 0.85
)

const (
	DefaultTimeLimit     = 5 * time.Second
	DefaultMaxIterations = 100
	// MaxDynamicItems is the largest item set solved exactly; bigger sets go to Hybrid.
	MaxDynamicItems = 50
)

// Weights is the constraint vector of an item, or the summed usage of a selection.
type Weights struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Volume   float64 `json:"volume"`
	PrepTime float64 `json:"prepTime"`
	Cost     float64 `json:"cost"`
}

// Add returns the element-wise sum.
func (w Weights) Add(o Weights) Weights {
	return Weights{
		Calories: w.Calories + o.Calories,
		Protein:  w.Protein + o.Protein,
		Carbs:    w.Carbs + o.Carbs,
		Fat:      w.Fat + o.Fat,
		Volume:   w.Volume + o.Volume,
		PrepTime: w.PrepTime + o.PrepTime,
		Cost:     w.Cost + o.Cost,
	}
}

// Sub returns the element-wise difference.
func (w Weights) Sub(o Weights) Weights {
	return Weights{
		Calories: w.Calories - o.Calories,
		Protein:  w.Protein - o.Protein,
		Carbs:    w.Carbs - o.Carbs,
		Fat:      w.Fat - o.Fat,
		Volume:   w.Volume - o.Volume,
		PrepTime: w.PrepTime - o.PrepTime,
		Cost:     w.Cost - o.Cost,
	}
}

// Metadata ties an item back to the catalog entry and the slot it was built for.
type Metadata struct {
	Slot       entity.Slot          `json:"slot"`
	MealType   entity.MealType      `json:"mealType"`
	Position   entity.SnackPosition `json:"position,omitempty"`
	Categories []string             `json:"categories,omitempty"`
	Source     entity.CatalogItem   `json:"-"`
}

// Item is one catalog entry specialized for one meal slot. The same recipe considered for
// two slots yields two items.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Weights  Weights  `json:"weights"`
	Metadata Metadata `json:"metadata"`
}

// Constraints bounds the summed weights of a selection. Volume, prep time and cost only
// have upper bounds.
type Constraints struct {
	MinCalories float64 `json:"minCalories"`
	MaxCalories float64 `json:"maxCalories"`
	MinProtein  float64 `json:"minProtein"`
	MaxProtein  float64 `json:"maxProtein"`
	MinCarbs    float64 `json:"minCarbs"`
	MaxCarbs    float64 `json:"maxCarbs"`
	MinFat      float64 `json:"minFat"`
	MaxFat      float64 `json:"maxFat"`
	MaxVolume   float64 `json:"maxVolume"`
	MaxPrepTime float64 `json:"maxPrepTime"`
	MaxCost     float64 `json:"maxCost"`
}

// Options configures Solve. Zero values take the defaults.
type Options struct {
	Algorithm     Algorithm
	TimeLimit     time.Duration
	MaxIterations int
	// Now replaces the wall clock used for the time budget.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Algorithm == "" {
		o.Algorithm = Hybrid
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = DefaultTimeLimit
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

// Solution is the outcome of Solve.
type Solution struct {
	Selected           []Item        `json:"selected"`
	TotalValue         float64       `json:"totalValue"`
	Usage              Weights       `json:"usage"`
	Feasible           bool          `json:"feasible"`
	Violations         []string      `json:"violations,omitempty"`
	Algorithm          Algorithm     `json:"algorithm"`
	Iterations         int           `json:"iterations"`
	Optimality         float64       `json:"optimality"`
	OptimalityDeclared bool          `json:"optimalityDeclared"`
	TimedOut           bool          `json:"timedOut,omitempty"`
	Elapsed            time.Duration `json:"elapsed"`
}
