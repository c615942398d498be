package category

import (
	"math"
	"sort"

	"github.com/pennantlab/pennant/internal/domain/roster"
)

// Baseline is the league-wide summary for one category, computed across all
// teams' aggregated roster values for one snapshot. Baselines are rebuilt
// whole whenever the team set changes, never patched.
type Baseline struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// Baselines holds the per-category baselines for a snapshot, keyed by
// canonical category name.
type Baselines struct {
	Batting  map[string]Baseline
	Pitching map[string]Baseline
}

// For returns the baseline for a canonical category name.
func (b Baselines) For(kind Kind, name string) (Baseline, bool) {
	m := b.Batting
	if kind == Pitching {
		m = b.Pitching
	}
	bl, ok := m[name]
	return bl, ok
}

// ComputeBaselines aggregates every team's roster table per resolved
// category and summarizes the league. A category with zero contributing
// teams is dropped from the output rather than raising a division error.
// teamIDs fixes the iteration order so output is deterministic.
func ComputeBaselines(tables map[int]roster.Table, teamIDs []int, reg Registry) Baselines {
	out := Baselines{
		Batting:  make(map[string]Baseline),
		Pitching: make(map[string]Baseline),
	}
	for _, def := range battingCatalog {
		col, ok := reg.Batting[def.Name]
		if !ok {
			continue
		}
		values := collectAggregates(tables, teamIDs, Batting, def, col)
		if len(values) > 0 {
			out.Batting[def.Name] = summarize(values)
		}
	}
	for _, def := range pitchingCatalog {
		col, ok := reg.Pitching[def.Name]
		if !ok {
			continue
		}
		values := collectAggregates(tables, teamIDs, Pitching, def, col)
		if len(values) > 0 {
			out.Pitching[def.Name] = summarize(values)
		}
	}
	return out
}

func collectAggregates(tables map[int]roster.Table, teamIDs []int, kind Kind, def Definition, col string) []float64 {
	values := make([]float64, 0, len(teamIDs))
	for _, id := range teamIDs {
		table, ok := tables[id]
		if !ok {
			continue
		}
		if v, ok := teamAggregate(table, kind, def, col); ok {
			values = append(values, v)
		}
	}
	return values
}

// teamAggregate computes one team's value for a category: counting stats sum
// across the eligible sub-roster, rate stats take the unweighted mean. A team
// with no eligible players (or no values at all for a rate stat) contributes
// nothing.
func teamAggregate(table roster.Table, kind Kind, def Definition, col string) (float64, bool) {
	sub := table.Batters()
	if kind == Pitching {
		sub = table.Pitchers()
	}
	if len(sub) == 0 {
		return 0, false
	}
	if def.Rate {
		return sub.Mean(col)
	}
	return sub.Sum(col), true
}

func summarize(values []float64) Baseline {
	return Baseline{
		Mean:   mean(values),
		Median: median(values),
		Std:    popStd(values),
		Min:    minOf(values),
		Max:    maxOf(values),
	}
}

func mean(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// popStd is the population standard deviation (divide by n, not n-1),
// matching how baselines were defined historically.
func popStd(values []float64) float64 {
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

func minOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maxOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}
