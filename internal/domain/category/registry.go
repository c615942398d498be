package category

import (
	"strings"

	"github.com/pennantlab/pennant/internal/domain/roster"
)

// Registry maps canonical category names to the flattened column carrying
// them, resolved once per snapshot from a representative roster table.
// Categories with no matching column are simply absent, not an error.
type Registry struct {
	Batting  map[string]string
	Pitching map[string]string
}

// ResolveRegistry discovers which categories the table's columns carry. A
// column "scope_name" matches an alias when its stat name equals the alias
// case-insensitively; when no column matches exactly, the looser substring
// rule is tried so feeds with decorated stat names still resolve. Columns
// are scanned in sorted order, so resolution is deterministic per input.
func ResolveRegistry(t roster.Table) Registry {
	cols := t.Columns()
	return Registry{
		Batting:  resolveKind(battingCatalog, cols),
		Pitching: resolveKind(pitchingCatalog, cols),
	}
}

// Column returns the resolved source column for a canonical category name.
func (r Registry) Column(kind Kind, name string) (string, bool) {
	m := r.Batting
	if kind == Pitching {
		m = r.Pitching
	}
	col, ok := m[name]
	return col, ok
}

// Names lists the resolved canonical names for a kind, in catalog order.
func (r Registry) Names(kind Kind) []string {
	m := r.Batting
	if kind == Pitching {
		m = r.Pitching
	}
	out := make([]string, 0, len(m))
	for _, def := range Catalog(kind) {
		if _, ok := m[def.Name]; ok {
			out = append(out, def.Name)
		}
	}
	return out
}

func resolveKind(catalog []Definition, cols []string) map[string]string {
	resolved := make(map[string]string)
	for _, def := range catalog {
		if col, ok := matchAlias(def.Aliases, cols); ok {
			resolved[def.Name] = col
		}
	}
	return resolved
}

func matchAlias(aliases, cols []string) (string, bool) {
	// Exact stat-name match first.
	for _, alias := range aliases {
		for _, col := range cols {
			if strings.EqualFold(statName(col), alias) {
				return col, true
			}
		}
	}
	// Substring fallback for decorated stat names.
	for _, alias := range aliases {
		for _, col := range cols {
			if strings.Contains(strings.ToLower(col), strings.ToLower(alias)) {
				return col, true
			}
		}
	}
	return "", false
}

// statName strips the scope prefix from a flattened column key. Scopes carry
// no underscores by convention, so the stat name starts after the first one.
func statName(col string) string {
	if i := strings.Index(col, "_"); i >= 0 {
		return col[i+1:]
	}
	return col
}
