package knapsack

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// ErrCancelled is returned with the best solution found before the context was cancelled.
var ErrCancelled = errors.New("knapsack solve cancelled")

const (
	maxDPCapacity = 10000
	minItemCost   = 1e-6
)

// Solve selects a subset of items under constraints with the requested algorithm.
//
// The time budget is checked cooperatively before each local-search iteration; running out
// of time is not an error and yields the best selection so far with TimedOut set. A cancelled
// ctx yields the best selection so far together with ErrCancelled.
func Solve(ctx context.Context, items []Item, c Constraints, opts Options) (*Solution, error) {
	opts = opts.withDefaults()
	s := &solver{
		ctx:      ctx,
		items:    items,
		c:        c,
		opts:     opts,
		started:  opts.Now(),
		deadline: opts.Now().Add(opts.TimeLimit),
	}

	if err := ctx.Err(); err != nil {
		return s.finish(make([]bool, len(items)), opts.Algorithm, 0), errors.Wrap(ErrCancelled, err.Error())
	}

	var (
		selected []bool
		algo     Algorithm
		err      error
	)
	switch opts.Algorithm {
	case Greedy:
		selected, algo = s.greedy(), Greedy
	case Dynamic:
		selected, algo, err = s.dynamic()
	default:
		selected, err = s.hybrid()
		algo = Hybrid
	}

	return s.finish(selected, algo, s.iterations), err
}

type solver struct {
	ctx        context.Context
	items      []Item
	c          Constraints
	opts       Options
	started    time.Time
	deadline   time.Time
	iterations int
	timedOut   bool
}

func (s *solver) finish(selected []bool, algo Algorithm, iterations int) *Solution {
	sol := &Solution{
		Selected:           make([]Item, 0),
		Algorithm:          algo,
		Iterations:         iterations,
		OptimalityDeclared: true,
		TimedOut:           s.timedOut,
	}
	for i, keep := range selected {
		if keep {
			sol.Selected = append(sol.Selected, s.items[i])
			sol.TotalValue += s.items[i].Value
		}
	}
	sol.Usage = Usage(sol.Selected)
	sol.Feasible, sol.Violations = checkUsage(sol.Usage, s.c)
	sol.Optimality = declaredOptimality(algo)
	sol.Elapsed = s.opts.Now().Sub(s.started)

	return sol
}

func declaredOptimality(algo Algorithm) float64 {
	switch algo {
	case Greedy:
		return GreedyOptimality
	case Dynamic:
		return DynamicOptimality
	default:
		return HybridOptimality
	}
}

// Efficiency is value per unit of weighted, bound-normalized constraint cost.
func Efficiency(item Item, c Constraints) float64 {
	cost := normalized(item.Weights.Calories, c.MaxCalories)*0.30 +
		normalized(item.Weights.Protein, c.MaxProtein)*0.20 +
		normalized(item.Weights.Carbs, c.MaxCarbs)*0.15 +
		normalized(item.Weights.Fat, c.MaxFat)*0.15 +
		normalized(item.Weights.Volume, c.MaxVolume)*0.10 +
		normalized(item.Weights.PrepTime, c.MaxPrepTime)*0.10

	return item.Value / math.Max(cost, minItemCost)
}

func normalized(value, bound float64) float64 {
	if bound <= 0 {
		return 0
	}

	return value / bound
}

// greedy admits items by descending efficiency while they fit under every maximum.
func (s *solver) greedy() []bool {
	order := make([]int, len(s.items))
	efficiency := make([]float64, len(s.items))
	for i := range s.items {
		order[i] = i
		efficiency[i] = Efficiency(s.items[i], s.c)
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if efficiency[ia] != efficiency[ib] {
			return efficiency[ia] > efficiency[ib]
		}
		if s.items[ia].Value != s.items[ib].Value {
			return s.items[ia].Value > s.items[ib].Value
		}

		return s.items[ia].ID < s.items[ib].ID
	})

	selected := make([]bool, len(s.items))
	var usage Weights
	for _, i := range order {
		if CanAddItem(usage, s.items[i], s.c) {
			selected[i] = true
			usage = usage.Add(s.items[i].Weights)
		}
	}

	return selected
}

// dynamic solves a 0/1 knapsack over the calorie dimension only. Sets larger than
// MaxDynamicItems go to hybrid; a result that breaks any other maximum falls back to greedy.
func (s *solver) dynamic() ([]bool, Algorithm, error) {
	if len(s.items) > MaxDynamicItems {
		selected, err := s.hybrid()

		return selected, Hybrid, err
	}

	capacity := int(math.Floor(s.c.MaxCalories + epsilon))
	if capacity < 0 {
		capacity = 0
	}
	scale := 1
	if capacity > maxDPCapacity {
		scale = int(math.Ceil(float64(capacity) / maxDPCapacity))
		capacity /= scale
	}

	weights := make([]int, len(s.items))
	for i, item := range s.items {
		weights[i] = int(math.Ceil(math.Max(0, item.Weights.Calories)/float64(scale) - epsilon))
	}

	best := make([]float64, capacity+1)
	keep := make([][]bool, len(s.items))
	for i, item := range s.items {
		if err := s.ctx.Err(); err != nil {
			return s.greedy(), Greedy, errors.Wrap(ErrCancelled, err.Error())
		}
		keep[i] = make([]bool, capacity+1)
		if item.Value <= 0 || weights[i] > capacity {
			continue
		}
		for w := capacity; w >= weights[i]; w-- {
			if candidate := best[w-weights[i]] + item.Value; candidate > best[w] {
				best[w] = candidate
				keep[i][w] = true
			}
		}
	}

	selected := make([]bool, len(s.items))
	w := capacity
	for i := len(s.items) - 1; i >= 0; i-- {
		if keep[i][w] {
			selected[i] = true
			w -= weights[i]
		}
	}

	var usage Weights
	for i, keepItem := range selected {
		if keepItem {
			usage = usage.Add(s.items[i].Weights)
		}
	}
	if !withinMax(usage, s.c) {
		return s.greedy(), Greedy, nil
	}

	return selected, Dynamic, nil
}

// hybrid seeds with greedy and improves by local search. A move either swaps one selected item
// for an unselected one or adds an unselected item; an item is never removed without a
// replacement. Moves must raise total value, stay within every maximum, and keep the minimums
// once they are met.
func (s *solver) hybrid() ([]bool, error) {
	selected := s.greedy()
	var usage Weights
	for i, keep := range selected {
		if keep {
			usage = usage.Add(s.items[i].Weights)
		}
	}

	for s.iterations < s.opts.MaxIterations {
		if err := s.ctx.Err(); err != nil {
			return selected, errors.Wrap(ErrCancelled, err.Error())
		}
		if !s.opts.Now().Before(s.deadline) {
			s.timedOut = true

			break
		}
		s.iterations++

		if next, ok := s.bestSwap(selected, usage); ok {
			selected[next.out] = false
			selected[next.in] = true
			usage = next.usage

			continue
		}
		if next, ok := s.bestAdd(selected, usage); ok {
			selected[next.in] = true
			usage = next.usage

			continue
		}

		break
	}

	return selected, nil
}

type move struct {
	out, in int
	gain    float64
	usage   Weights
}

func (s *solver) acceptable(current, next Weights) bool {
	if !withinMax(next, s.c) {
		return false
	}

	return !meetsMin(current, s.c) || meetsMin(next, s.c)
}

func (s *solver) bestSwap(selected []bool, usage Weights) (move, bool) {
	var (
		best  move
		found bool
	)
	for out, isOut := range selected {
		if !isOut {
			continue
		}
		without := usage.Sub(s.items[out].Weights)
		for in, isIn := range selected {
			if isIn {
				continue
			}
			gain := s.items[in].Value - s.items[out].Value
			if gain <= epsilon || (found && gain <= best.gain) {
				continue
			}
			next := without.Add(s.items[in].Weights)
			if !s.acceptable(usage, next) {
				continue
			}
			best = move{out: out, in: in, gain: gain, usage: next}
			found = true
		}
	}

	return best, found
}

func (s *solver) bestAdd(selected []bool, usage Weights) (move, bool) {
	var (
		best  move
		found bool
	)
	for in, isIn := range selected {
		if isIn {
			continue
		}
		gain := s.items[in].Value
		if gain <= epsilon || (found && gain <= best.gain) {
			continue
		}
		next := usage.Add(s.items[in].Weights)
		if !s.acceptable(usage, next) {
			continue
		}
		best = move{out: -1, in: in, gain: gain, usage: next}
		found = true
	}

	return best, found
}
