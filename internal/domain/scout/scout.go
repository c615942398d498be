// Package scout scans the league-wide player pool for projection deltas
// and position scarcity.
package scout

import (
	"math"
	"sort"
	"strings"

	"github.com/pennantlab/pennant/internal/domain/roster"
)

// DefaultDeltaThreshold is the minimum actual-vs-projected gap, as a
// fraction of the projection, for a player to be flagged.
const DefaultDeltaThreshold = 0.2

const (
	topTierSize = 5
	midTierEnd  = 15
)

// Delta is one flagged player in a projection-delta scan.
type Delta struct {
	Name      string  `json:"name"`
	ProTeam   string  `json:"team"`
	Positions string  `json:"positions"`
	Actual    float64 `json:"actual"`
	Projected float64 `json:"projected"`
	Diff      float64 `json:"diff"`
	DiffPct   float64 `json:"diff_pct"`
}

// DeltaReport lists players whose actual production diverges from their
// projection by more than the threshold, sorted by relative gap.
type DeltaReport struct {
	Err           string  `json:"error,omitempty"`
	ActualStat    string  `json:"actual_stat,omitempty"`
	ProjectedStat string  `json:"projected_stat,omitempty"`
	Threshold     float64 `json:"threshold,omitempty"`
	Players       []Delta `json:"players,omitempty"`
}

// Undervalued flags players running behind their projection: the projected
// value exceeds the actual by more than threshold as a fraction of the
// projection. A non-positive threshold falls back to the default.
func Undervalued(table roster.Table, actualStat, projectedStat string, threshold float64) DeltaReport {
	return deltaScan(table, actualStat, projectedStat, threshold, func(actual, projected float64) float64 {
		return projected - actual
	})
}

// Overperforming flags players running ahead of their projection.
func Overperforming(table roster.Table, actualStat, projectedStat string, threshold float64) DeltaReport {
	return deltaScan(table, actualStat, projectedStat, threshold, func(actual, projected float64) float64 {
		return actual - projected
	})
}

func deltaScan(table roster.Table, actualStat, projectedStat string, threshold float64, diff func(actual, projected float64) float64) DeltaReport {
	if threshold <= 0 {
		threshold = DefaultDeltaThreshold
	}
	if len(table) == 0 {
		return DeltaReport{Err: "no player data available"}
	}
	report := DeltaReport{
		ActualStat:    actualStat,
		ProjectedStat: projectedStat,
		Threshold:     threshold,
	}
	for _, row := range table {
		actual, okA := row.Stat(actualStat)
		projected, okP := row.Stat(projectedStat)
		if !okA || !okP || projected == 0 {
			continue
		}
		d := diff(actual, projected)
		pct := d / projected
		if pct <= threshold {
			continue
		}
		report.Players = append(report.Players, Delta{
			Name:      row.Name,
			ProTeam:   row.ProTeam,
			Positions: row.Positions,
			Actual:    actual,
			Projected: projected,
			Diff:      d,
			DiffPct:   pct,
		})
	}
	sort.SliceStable(report.Players, func(i, j int) bool {
		return report.Players[i].DiffPct > report.Players[j].DiffPct
	})
	return report
}

// DepthMetric describes the drop-off in one stat between a position's top
// tier and its mid tier.
type DepthMetric struct {
	Stat    string  `json:"stat"`
	TopAvg  float64 `json:"top_avg"`
	MidAvg  float64 `json:"mid_avg"`
	Dropoff float64 `json:"dropoff"`
}

// ScarcityReport summarizes how thin each position is across the league.
type ScarcityReport struct {
	Err            string                   `json:"error,omitempty"`
	PositionCounts map[string]int           `json:"position_counts,omitempty"`
	PositionDepth  map[string][]DepthMetric `json:"position_depth,omitempty"`
}

// PositionScarcity counts players by position and, for positions with more
// than five players, measures the per-stat drop-off between the top five
// and the next tier. A steep drop-off marks a scarce position.
func PositionScarcity(table roster.Table) ScarcityReport {
	if len(table) == 0 {
		return ScarcityReport{Err: "no player data available"}
	}

	counts := make(map[string]int)
	for _, row := range table {
		for _, pos := range strings.Split(row.Positions, ",") {
			pos = strings.TrimSpace(pos)
			if pos == "" {
				continue
			}
			counts[pos]++
		}
	}

	depth := make(map[string][]DepthMetric)
	for pos, n := range counts {
		if n <= topTierSize {
			continue
		}
		group := table.FilterPosition(pos)
		var metrics []DepthMetric
		for _, stat := range table.Columns() {
			sorted := group.SortBy(stat, false)
			present := withStat(sorted, stat)
			if len(present) <= topTierSize {
				continue
			}
			topAvg := columnMean(present[:topTierSize], stat)
			mid := present[topTierSize:]
			if len(present) > midTierEnd {
				mid = present[topTierSize:midTierEnd]
			}
			midAvg := columnMean(mid, stat)
			if midAvg <= 0 {
				continue
			}
			metrics = append(metrics, DepthMetric{
				Stat:    stat,
				TopAvg:  topAvg,
				MidAvg:  midAvg,
				Dropoff: (topAvg - midAvg) / midAvg,
			})
		}
		if len(metrics) > 0 {
			depth[pos] = metrics
		}
	}

	report := ScarcityReport{PositionCounts: counts}
	if len(depth) > 0 {
		report.PositionDepth = depth
	}
	return report
}

func withStat(table roster.Table, stat string) roster.Table {
	out := make(roster.Table, 0, len(table))
	for _, row := range table {
		if _, ok := row.Stat(stat); ok {
			out = append(out, row)
		}
	}
	return out
}

func columnMean(table roster.Table, stat string) float64 {
	var sum float64
	var n int
	for _, row := range table {
		if v, ok := row.Stat(stat); ok && !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
