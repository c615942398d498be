// Package model contains the league domain values passed between layers.
package model

// Player is a single rostered or free-agent player. Values are immutable for
// the duration of an analysis run; nothing in the engine writes back into a
// Player after ingestion.
type Player struct {
	ID            int
	Name          string
	ProTeam       string   // MLB team abbreviation, e.g. "NYY"
	EligibleSlots []string // position codes; a player may qualify at several
	// Stats maps a stat scope (a period identifier such as "curr" or
	// "proj") to stat name to value. Scopes are not uniform across players.
	// Values that are not scalars are carried as-is and skipped when the
	// roster normalizer flattens them.
	Stats map[string]map[string]any
}

// Stat looks up a single stat value. Absence of the scope or the name means
// "unknown", never zero; the second return reports presence of a scalar.
func (p Player) Stat(scope, name string) (float64, bool) {
	scoped, ok := p.Stats[scope]
	if !ok {
		return 0, false
	}
	v, ok := scoped[name]
	if !ok {
		return 0, false
	}
	return scalar(v)
}

// scalar converts the loosely typed stat values the feed produces into
// float64. Nested structures report false.
func scalar(v any) (float64, bool) {
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

// Owner describes a team owner. Purely descriptive; leagues may have
// co-owned teams, so a Team carries zero or more of these.
type Owner struct {
	ID          string
	DisplayName string
	FirstName   string
	LastName    string
}
