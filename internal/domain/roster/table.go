package roster

import (
	"sort"
	"strings"
)

// Table is an ordered set of flattened player rows. All selection helpers
// return sub-tables sharing the underlying rows; nothing mutates a row after
// flattening.
type Table []Row

// Pitchers selects rows eligible at SP or RP.
func (t Table) Pitchers() Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if r.IsPitcher() {
			out = append(out, r)
		}
	}
	return out
}

// Batters selects everyone who is not a pitcher.
func (t Table) Batters() Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if !r.IsPitcher() {
			out = append(out, r)
		}
	}
	return out
}

// FilterPosition selects rows whose positions string contains pos.
func (t Table) FilterPosition(pos string) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if r.HasPosition(pos) {
			out = append(out, r)
		}
	}
	return out
}

// Sum adds the present values of a column. Rows missing the column simply do
// not contribute; an all-missing column sums to zero.
func (t Table) Sum(col string) float64 {
	var total float64
	for _, r := range t {
		if v, ok := r.Stats[col]; ok {
			total += v
		}
	}
	return total
}

// Mean averages the present values of a column. The second return is false
// when no row carries the column.
func (t Table) Mean(col string) (float64, bool) {
	var total float64
	var n int
	for _, r := range t {
		if v, ok := r.Stats[col]; ok {
			total += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Column collects the present values of a column in row order.
func (t Table) Column(col string) []float64 {
	out := make([]float64, 0, len(t))
	for _, r := range t {
		if v, ok := r.Stats[col]; ok {
			out = append(out, v)
		}
	}
	return out
}

// SortBy returns a copy ordered by a column. The sort is stable, so ties keep
// input order; rows missing the column sort after all rows that have it.
func (t Table) SortBy(col string, ascending bool) Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := out[i].Stats[col]
		vj, okj := out[j].Stats[col]
		switch {
		case oki && !okj:
			return true
		case !oki:
			return false
		case ascending:
			return vi < vj
		default:
			return vi > vj
		}
	})
	return out
}

// Head returns the first n rows (or fewer).
func (t Table) Head(n int) Table {
	if n >= len(t) {
		return t
	}
	if n < 0 {
		n = 0
	}
	return t[:n]
}

// Names collects the name column.
func (t Table) Names() []string {
	out := make([]string, 0, len(t))
	for _, r := range t {
		out = append(out, r.Name)
	}
	return out
}

// ProjectionColumn finds the column carrying projected fantasy points: the
// first column (in sorted order, for determinism) whose name contains
// "projected_points", falling back to any column containing "projected".
func (t Table) ProjectionColumn() (string, bool) {
	cols := t.Columns()
	for _, col := range cols {
		if strings.Contains(col, "projected_points") {
			return col, true
		}
	}
	for _, col := range cols {
		if strings.Contains(col, "projected") {
			return col, true
		}
	}
	return "", false
}
