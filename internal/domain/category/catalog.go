// Package category scores teams against league-wide baselines, one scoring
// category at a time, and derives strength/weakness driven recommendations.
package category

// Kind partitions categories into the two roster populations they are
// computed over.
type Kind string

// Category kinds.
const (
	Batting  Kind = "batting"
	Pitching Kind = "pitching"
)

// Definition describes one canonical scoring category: the aliases upstream
// feeds are known to use for it, whether lower values win it, and whether the
// team aggregate is an average rather than a sum.
type Definition struct {
	Name    string
	Aliases []string
	// LowerIsBetter marks direction-aware categories (ERA, WHIP, BB/9)
	// whose z-scores are negated before percentile mapping.
	LowerIsBetter bool
	// Rate marks categories aggregated as an unweighted mean across the
	// eligible sub-roster instead of a sum.
	Rate bool
}

// battingCatalog lists every batting category the registry knows how to
// discover. Order is the presentation order of analysis output.
var battingCatalog = []Definition{
	{Name: "AVG", Aliases: []string{"avg", "batting_avg", "ba"}},
	{Name: "HR", Aliases: []string{"hr", "home_runs", "hrs"}},
	{Name: "R", Aliases: []string{"r", "runs", "run"}},
	{Name: "RBI", Aliases: []string{"rbi", "rbis", "runs_batted_in"}},
	{Name: "SB", Aliases: []string{"sb", "stolen_bases", "steals"}},
	{Name: "OBP", Aliases: []string{"obp", "on_base_pct", "on_base_percentage"}},
	{Name: "SLG", Aliases: []string{"slg", "slugging", "slugging_pct"}},
	{Name: "OPS", Aliases: []string{"ops", "on_base_plus_slugging"}},
	{Name: "TB", Aliases: []string{"tb", "total_bases"}},
	{Name: "H", Aliases: []string{"h", "hits", "hit"}},
	{Name: "2B", Aliases: []string{"2b", "doubles", "double"}},
	{Name: "3B", Aliases: []string{"3b", "triples", "triple"}},
	{Name: "BB", Aliases: []string{"bb", "walks", "walk"}},
	{Name: "XBH", Aliases: []string{"xbh", "extra_base_hits"}},
	{Name: "PA", Aliases: []string{"pa", "plate_appearances"}},
	{Name: "AB", Aliases: []string{"ab", "at_bats"}},
}

// pitchingCatalog lists every pitching category the registry knows how to
// discover.
var pitchingCatalog = []Definition{
	{Name: "ERA", Aliases: []string{"era", "earned_run_avg", "earned_run_average"}, LowerIsBetter: true, Rate: true},
	{Name: "WHIP", Aliases: []string{"whip", "walks_hits_per_ip"}, LowerIsBetter: true, Rate: true},
	{Name: "W", Aliases: []string{"w", "wins", "win"}},
	{Name: "SV", Aliases: []string{"sv", "saves", "save"}},
	{Name: "K", Aliases: []string{"k", "so", "strikeouts", "strikeout"}},
	{Name: "HLD", Aliases: []string{"hld", "holds", "hold"}},
	{Name: "QS", Aliases: []string{"qs", "quality_starts"}},
	{Name: "IP", Aliases: []string{"ip", "innings_pitched"}},
	{Name: "K/9", Aliases: []string{"k/9", "k_per_9", "strikeouts_per_9"}, Rate: true},
	{Name: "BB/9", Aliases: []string{"bb/9", "bb_per_9", "walks_per_9"}, LowerIsBetter: true, Rate: true},
	{Name: "K/BB", Aliases: []string{"k/bb", "k_per_bb", "strikeout_to_walk"}, Rate: true},
	{Name: "SVH", Aliases: []string{"svh", "saves_plus_holds"}},
}

// Catalog returns the category definitions for a kind, in presentation order.
func Catalog(kind Kind) []Definition {
	if kind == Pitching {
		return pitchingCatalog
	}
	return battingCatalog
}

// Lookup finds a definition by canonical name across both catalogs.
func Lookup(name string) (Definition, Kind, bool) {
	for _, d := range battingCatalog {
		if d.Name == name {
			return d, Batting, true
		}
	}
	for _, d := range pitchingCatalog {
		if d.Name == name {
			return d, Pitching, true
		}
	}
	return Definition{}, "", false
}
