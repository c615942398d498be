// Package roster normalizes heterogeneous player stat records into flat,
// comparable tabular rows. Flattening happens once at ingestion; analyzers
// downstream never re-probe nested shapes.
package roster

import (
	"sort"
	"strings"

	"github.com/pennantlab/pennant/internal/domain/model"
)

// positionSeparator joins a player's eligible slots into the positions
// column, matching the delimited-string shape analyzers filter on.
const positionSeparator = ", "

// Row is one flattened player: identity columns plus one entry per
// discoverable scalar stat. A stat missing for this player is simply absent
// from Stats, never zero.
type Row struct {
	PlayerID  int
	Name      string
	ProTeam   string
	Positions string // delimited eligible slots, e.g. "1B, OF, UTIL"
	Stats     map[string]float64
}

// Stat looks up a flattened column value. The second return distinguishes
// "unknown" from zero.
func (r Row) Stat(col string) (float64, bool) {
	v, ok := r.Stats[col]
	return v, ok
}

// HasPosition reports whether the row's positions string contains pos,
// case-insensitively. Containment on the joined string is the league's slot
// predicate (so "OF" matches a "LF, CF, OF" player).
func (r Row) HasPosition(pos string) bool {
	return strings.Contains(strings.ToLower(r.Positions), strings.ToLower(pos))
}

// IsPitcher classifies the row. Eligibility at SP or RP makes a player a
// pitcher even when also batter-eligible; the slot string is the only
// discriminator.
func (r Row) IsPitcher() bool {
	return r.HasPosition("SP") || r.HasPosition("RP")
}

// Flatten converts players into a Table. For every nested stat mapping
// (scope -> name -> value) it emits a "{scope}_{name}" column, skipping
// values that are themselves nested structures so each column stays
// uniformly numeric. An empty input yields an empty table, never an error.
func Flatten(players []model.Player) Table {
	rows := make([]Row, 0, len(players))
	for _, p := range players {
		row := Row{
			PlayerID:  p.ID,
			Name:      p.Name,
			ProTeam:   p.ProTeam,
			Positions: strings.Join(p.EligibleSlots, positionSeparator),
			Stats:     make(map[string]float64),
		}
		for scope, stats := range p.Stats {
			for name, raw := range stats {
				if v, ok := scalarStat(raw); ok {
					row.Stats[scope+"_"+name] = v
				}
			}
		}
		rows = append(rows, row)
	}
	return Table(rows)
}

func scalarStat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Columns returns the union of stat columns across all rows, sorted for
// deterministic iteration.
func (t Table) Columns() []string {
	seen := make(map[string]struct{})
	for _, r := range t {
		for col := range r.Stats {
			seen[col] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
