package category

import (
	"fmt"

	"github.com/pennantlab/pennant/internal/domain/model"
	"github.com/pennantlab/pennant/internal/domain/roster"
)

// Default recommendation list sizes.
const (
	defaultFreeAgentPicks = 5
	defaultTargetsPerTeam = 2
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithFreeAgentPicks caps how many free agents are suggested per weak
// category.
func WithFreeAgentPicks(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.freeAgentPicks = n
		}
	}
}

// WithTargetsPerTeam caps how many roster players each strong team
// contributes as trade candidates.
func WithTargetsPerTeam(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.targetsPerTeam = n
		}
	}
}

// Analyzer scores teams in one league snapshot against the snapshot's own
// baselines. All derived state (tables, registry, baselines) is built at
// construction in one step, so a live Analyzer never exposes a partially
// updated view; swap the whole Analyzer to change the team set.
type Analyzer struct {
	snapshot  model.LeagueSnapshot
	tables    map[int]roster.Table
	teamIDs   []int // snapshot order, for deterministic iteration
	registry  Registry
	baselines Baselines

	freeAgentPicks int
	targetsPerTeam int
}

// NewAnalyzer flattens every roster, resolves the category registry from the
// first team with roster data, and computes league baselines.
func NewAnalyzer(snapshot model.LeagueSnapshot, opts ...Option) *Analyzer {
	a := &Analyzer{
		snapshot:       snapshot,
		tables:         make(map[int]roster.Table),
		freeAgentPicks: defaultFreeAgentPicks,
		targetsPerTeam: defaultTargetsPerTeam,
	}
	for _, opt := range opts {
		opt(a)
	}
	for _, team := range snapshot.Teams {
		if len(team.Roster) == 0 {
			continue
		}
		a.tables[team.ID] = roster.Flatten(team.Roster)
		a.teamIDs = append(a.teamIDs, team.ID)
	}
	if len(a.teamIDs) > 0 {
		a.registry = ResolveRegistry(a.tables[a.teamIDs[0]])
	}
	a.baselines = ComputeBaselines(a.tables, a.teamIDs, a.registry)
	return a
}

// Registry exposes the snapshot's resolved category mapping.
func (a *Analyzer) Registry() Registry { return a.registry }

// Baselines exposes the snapshot's league baselines.
func (a *Analyzer) Baselines() Baselines { return a.baselines }

// Snapshot returns the snapshot this analyzer was built from.
func (a *Analyzer) Snapshot() model.LeagueSnapshot { return a.snapshot }

// Table returns the flattened roster table for a team, if it has one.
func (a *Analyzer) Table(teamID int) (roster.Table, bool) {
	t, ok := a.tables[teamID]
	return t, ok
}

// LeagueTable returns every rostered player in the snapshot as one table,
// in snapshot team order.
func (a *Analyzer) LeagueTable() roster.Table {
	var out roster.Table
	for _, id := range a.teamIDs {
		out = append(out, a.tables[id]...)
	}
	return out
}

// CategoryScore is one team's standing in one category.
type CategoryScore struct {
	Value        float64 `json:"value"`
	LeagueMean   float64 `json:"league_mean"`
	LeagueMedian float64 `json:"league_median"`
	ZScore       float64 `json:"z_score"`
	Percentile   float64 `json:"percentile"`
	Tier         Tier    `json:"tier"`
}

// GroupedNames lists category names split by kind, in catalog order.
type GroupedNames struct {
	Batting  []string `json:"batting"`
	Pitching []string `json:"pitching"`
}

// TeamAnalysis is the full strength/weakness report for one team. Err is
// non-empty for expected missing-data conditions; callers must check it
// before consuming the other fields.
type TeamAnalysis struct {
	Err        string                   `json:"error,omitempty"`
	TeamID     int                      `json:"team_id"`
	TeamName   string                   `json:"team_name"`
	Batting    map[string]CategoryScore `json:"batting"`
	Pitching   map[string]CategoryScore `json:"pitching"`
	Strengths  GroupedNames             `json:"strengths"`
	Weaknesses GroupedNames             `json:"weaknesses"`
}

// AnalyzeTeam scores one team against the league baselines. Recomputing on
// unchanged inputs yields identical output.
func (a *Analyzer) AnalyzeTeam(teamID int) TeamAnalysis {
	table, ok := a.tables[teamID]
	if !ok {
		return TeamAnalysis{Err: fmt.Sprintf("no roster data for team %d", teamID), TeamID: teamID}
	}
	team, ok := a.snapshot.Team(teamID)
	if !ok {
		return TeamAnalysis{Err: fmt.Sprintf("team %d not found", teamID), TeamID: teamID}
	}

	result := TeamAnalysis{
		TeamID:   teamID,
		TeamName: team.Name,
		Batting:  make(map[string]CategoryScore),
		Pitching: make(map[string]CategoryScore),
	}
	a.scoreKind(table, Batting, result.Batting)
	a.scoreKind(table, Pitching, result.Pitching)

	result.Strengths = a.grouped(result, TierStrong, TierVeryStrong)
	result.Weaknesses = a.grouped(result, TierWeak, TierVeryWeak)
	return result
}

func (a *Analyzer) scoreKind(table roster.Table, kind Kind, out map[string]CategoryScore) {
	for _, def := range Catalog(kind) {
		col, ok := a.registry.Column(kind, def.Name)
		if !ok {
			continue
		}
		baseline, ok := a.baselines.For(kind, def.Name)
		if !ok {
			continue
		}
		value, ok := teamAggregate(table, kind, def, col)
		if !ok {
			continue
		}

		z := 0.0
		if baseline.Std > 0 {
			z = (value - baseline.Mean) / baseline.Std
			if def.LowerIsBetter {
				// Direction inversion: for lower-is-better categories a
				// value below the mean is a strength.
				z = -z
			}
		}
		pct := Percentile(z)
		out[def.Name] = CategoryScore{
			Value:        value,
			LeagueMean:   baseline.Mean,
			LeagueMedian: baseline.Median,
			ZScore:       z,
			Percentile:   pct,
			Tier:         TierFor(pct),
		}
	}
}

func (a *Analyzer) grouped(analysis TeamAnalysis, tiers ...Tier) GroupedNames {
	match := func(t Tier) bool {
		for _, want := range tiers {
			if t == want {
				return true
			}
		}
		return false
	}
	var out GroupedNames
	for _, def := range battingCatalog {
		if score, ok := analysis.Batting[def.Name]; ok && match(score.Tier) {
			out.Batting = append(out.Batting, def.Name)
		}
	}
	for _, def := range pitchingCatalog {
		if score, ok := analysis.Pitching[def.Name]; ok && match(score.Tier) {
			out.Pitching = append(out.Pitching, def.Name)
		}
	}
	return out
}

// FreeAgentPick is one suggested pickup for a weak category.
type FreeAgentPick struct {
	Name      string  `json:"name"`
	ProTeam   string  `json:"pro_team"`
	Positions string  `json:"positions"`
	Value     float64 `json:"value"`
}

// ImprovementPlan pairs each weak category with a canned strategy and, when
// free agents were supplied, the best available pickups for it.
type ImprovementPlan struct {
	Err        string       `json:"error,omitempty"`
	TeamID     int          `json:"team_id"`
	TeamName   string       `json:"team_name"`
	Weaknesses GroupedNames `json:"weaknesses"`
	Strategies struct {
		Batting  map[string]string `json:"batting"`
		Pitching map[string]string `json:"pitching"`
	} `json:"improvement_strategies"`
	FreeAgents struct {
		Batting  map[string][]FreeAgentPick `json:"batting"`
		Pitching map[string][]FreeAgentPick `json:"pitching"`
	} `json:"free_agent_recommendations"`
}

// RecommendImprovements builds the improvement plan for a team's weak
// categories. An empty free-agent table still yields the strategy entries
// with empty recommendation lists.
func (a *Analyzer) RecommendImprovements(teamID int, freeAgents roster.Table) ImprovementPlan {
	analysis := a.AnalyzeTeam(teamID)
	if analysis.Err != "" {
		return ImprovementPlan{Err: analysis.Err, TeamID: teamID}
	}

	plan := ImprovementPlan{
		TeamID:     teamID,
		TeamName:   analysis.TeamName,
		Weaknesses: analysis.Weaknesses,
	}
	plan.Strategies.Batting = make(map[string]string)
	plan.Strategies.Pitching = make(map[string]string)
	plan.FreeAgents.Batting = make(map[string][]FreeAgentPick)
	plan.FreeAgents.Pitching = make(map[string][]FreeAgentPick)

	for _, cat := range analysis.Weaknesses.Batting {
		if s, ok := battingStrategies[cat]; ok {
			plan.Strategies.Batting[cat] = s
		}
	}
	for _, cat := range analysis.Weaknesses.Pitching {
		if s, ok := pitchingStrategies[cat]; ok {
			plan.Strategies.Pitching[cat] = s
		}
	}

	if len(freeAgents) == 0 {
		return plan
	}
	for _, cat := range analysis.Weaknesses.Batting {
		picks := a.topByCategory(freeAgents.Batters(), Batting, cat, a.freeAgentPicks)
		if len(picks) > 0 {
			plan.FreeAgents.Batting[cat] = picks
		}
	}
	for _, cat := range analysis.Weaknesses.Pitching {
		picks := a.topByCategory(freeAgents.Pitchers(), Pitching, cat, a.freeAgentPicks)
		if len(picks) > 0 {
			plan.FreeAgents.Pitching[cat] = picks
		}
	}
	return plan
}

// topByCategory ranks a sub-population by raw category value, ascending for
// lower-is-better categories and descending otherwise.
func (a *Analyzer) topByCategory(sub roster.Table, kind Kind, cat string, n int) []FreeAgentPick {
	def, _, ok := Lookup(cat)
	if !ok {
		return nil
	}
	col, ok := a.registry.Column(kind, cat)
	if !ok {
		return nil
	}
	ranked := sub.SortBy(col, def.LowerIsBetter).Head(n)
	picks := make([]FreeAgentPick, 0, len(ranked))
	for _, row := range ranked {
		v, ok := row.Stat(col)
		if !ok {
			continue
		}
		picks = append(picks, FreeAgentPick{
			Name:      row.Name,
			ProTeam:   row.ProTeam,
			Positions: row.Positions,
			Value:     v,
		})
	}
	return picks
}

// TradeTarget is one roster player on another team worth pursuing for a weak
// category, annotated with the owning team.
type TradeTarget struct {
	Name      string  `json:"name"`
	ProTeam   string  `json:"pro_team"`
	Positions string  `json:"positions"`
	Value     float64 `json:"value"`
	OwnerTeam string  `json:"owner_team"`
}

// TradePlan lists trade candidates per weak category.
type TradePlan struct {
	Err      string                   `json:"error,omitempty"`
	TeamID   int                      `json:"team_id"`
	TeamName string                   `json:"team_name"`
	Batting  map[string][]TradeTarget `json:"batting"`
	Pitching map[string][]TradeTarget `json:"pitching"`
}

// IdentifyTradeTargets scans every other team's strength analysis: a team
// rated Strong or better in one of the analyzed team's weak categories
// contributes its top roster players for it. Quadratic in league size, which
// is fine at league scale.
func (a *Analyzer) IdentifyTradeTargets(teamID int) TradePlan {
	analysis := a.AnalyzeTeam(teamID)
	if analysis.Err != "" {
		return TradePlan{Err: analysis.Err, TeamID: teamID}
	}

	plan := TradePlan{
		TeamID:   teamID,
		TeamName: analysis.TeamName,
		Batting:  make(map[string][]TradeTarget),
		Pitching: make(map[string][]TradeTarget),
	}
	for _, cat := range analysis.Weaknesses.Batting {
		targets := a.targetsFor(teamID, Batting, cat)
		if len(targets) > 0 {
			plan.Batting[cat] = targets
		}
	}
	for _, cat := range analysis.Weaknesses.Pitching {
		targets := a.targetsFor(teamID, Pitching, cat)
		if len(targets) > 0 {
			plan.Pitching[cat] = targets
		}
	}
	return plan
}

func (a *Analyzer) targetsFor(teamID int, kind Kind, cat string) []TradeTarget {
	def, _, ok := Lookup(cat)
	if !ok {
		return nil
	}
	col, ok := a.registry.Column(kind, cat)
	if !ok {
		return nil
	}

	var targets []TradeTarget
	for _, otherID := range a.teamIDs {
		if otherID == teamID {
			continue
		}
		other := a.AnalyzeTeam(otherID)
		if other.Err != "" {
			continue
		}
		scores := other.Batting
		if kind == Pitching {
			scores = other.Pitching
		}
		score, ok := scores[cat]
		if !ok || (score.Tier != TierStrong && score.Tier != TierVeryStrong) {
			continue
		}

		sub := a.tables[otherID].Batters()
		if kind == Pitching {
			sub = a.tables[otherID].Pitchers()
		}
		for _, row := range sub.SortBy(col, def.LowerIsBetter).Head(a.targetsPerTeam) {
			v, ok := row.Stat(col)
			if !ok {
				continue
			}
			targets = append(targets, TradeTarget{
				Name:      row.Name,
				ProTeam:   row.ProTeam,
				Positions: row.Positions,
				Value:     v,
				OwnerTeam: other.TeamName,
			})
		}
	}
	return targets
}
