package leaguegen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pennantlab/pennant/internal/adapters/feed"
	"github.com/pennantlab/pennant/internal/domain/schedule"
)

// Stat generation ranges for hitters.
const (
	avgMin, avgRange = 0.220, 0.090
	obpMin, obpRange = 0.290, 0.100
	hrMin, hrRange   = 2, 34
	runMin, runRange = 20, 80
	rbiMin, rbiRange = 18, 85
	sbMin, sbRange   = 0, 35
)

// Stat generation ranges for pitchers.
const (
	eraMin, eraRange   = 2.40, 3.20
	whipMin, whipRange = 0.95, 0.60
	winMin, winRange   = 2, 14
	kMin, kRange       = 40, 180
	ipMin, ipRange     = 40, 140
	k9Min, k9Range     = 6.5, 5.0
	saveMax            = 38
)

// Season-long fantasy point projections, used to rank roster tables.
const (
	hitterPointsMin, hitterPointsRange   = 180.0, 320.0
	pitcherPointsMin, pitcherPointsRange = 120.0, 330.0
)

// Projection drift: actuals wander up to this fraction away from the
// projected line, in either direction.
const projectionDrift = 0.35

const dateLayout = "2006-01-02"

// probableStartChance is the fraction of starting pitchers with a confirmed
// start in the generated window.
const probableStartChance = 0.8

// Generate builds a complete snapshot document from cfg. The same seed
// always yields the same league apart from the snapshot taken time.
func Generate(cfg Config) feed.Document {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))
	scorer := schedule.NewScorer()

	g := &generator{cfg: cfg, rng: rng, scorer: scorer, nextPlayerID: 1000}

	doc := feed.Document{Taken: time.Now()}
	for i := 0; i < cfg.Teams; i++ {
		doc.Teams = append(doc.Teams, g.team(i))
	}
	g.applyStandings(doc.Teams)
	doc.Weeks = g.weeks(doc.Teams)
	g.applySchedules(doc.Teams, doc.Weeks)
	doc.Games = g.games()
	doc.Free = g.freeAgents()
	doc.Probables = g.probableStarts(doc.Teams)
	return doc
}

type generator struct {
	cfg          Config
	rng          *rand.Rand
	scorer       *schedule.Scorer
	nextPlayerID int
}

func (g *generator) team(index int) feed.TeamDoc {
	name := teamAdjectives[g.rng.Intn(len(teamAdjectives))] + " " + teamNouns[index%len(teamNouns)]
	owner := g.person()

	team := feed.TeamDoc{
		ID:           index + 1,
		Name:         name,
		Abbrev:       fmt.Sprintf("T%02d", index+1),
		DivisionID:   index % len(divisionNames),
		DivisionName: divisionNames[index%len(divisionNames)],
		Owners: []feed.OwnerDoc{{
			ID:          uuid.NewString(),
			DisplayName: owner,
		}},
	}
	for i := 0; i < g.cfg.Hitters; i++ {
		team.Roster = append(team.Roster, g.hitter(hitterSlots[i%len(hitterSlots)]))
	}
	for i := 0; i < g.cfg.Pitchers; i++ {
		team.Roster = append(team.Roster, g.pitcher(pitcherSlots[i%len(pitcherSlots)]))
	}
	return team
}

func (g *generator) person() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *generator) hitter(slots []string) feed.PlayerDoc {
	proj := map[string]any{
		"avg": round3(avgMin + g.rng.Float64()*avgRange),
		"obp": round3(obpMin + g.rng.Float64()*obpRange),
		"hr":  float64(hrMin + g.rng.Intn(hrRange)),
		"r":   float64(runMin + g.rng.Intn(runRange)),
		"rbi": float64(rbiMin + g.rng.Intn(rbiRange)),
		"sb":  float64(sbMin + g.rng.Intn(sbRange)),
	}
	return g.player(slots, proj, hitterPointsMin+g.rng.Float64()*hitterPointsRange)
}

func (g *generator) pitcher(slots []string) feed.PlayerDoc {
	proj := map[string]any{
		"era":     round3(eraMin + g.rng.Float64()*eraRange),
		"whip":    round3(whipMin + g.rng.Float64()*whipRange),
		"w":       float64(winMin + g.rng.Intn(winRange)),
		"so":      float64(kMin + g.rng.Intn(kRange)),
		"ip":      round3(ipMin + g.rng.Float64()*ipRange),
		"k_per_9": round3(k9Min + g.rng.Float64()*k9Range),
	}
	// Relievers rack up saves; starters rarely do.
	if contains(slots, "RP") && !contains(slots, "SP") {
		proj["sv"] = float64(g.rng.Intn(saveMax))
	} else {
		proj["sv"] = 0.0
	}
	return g.player(slots, proj, pitcherPointsMin+g.rng.Float64()*pitcherPointsRange)
}

// player assembles a PlayerDoc whose current-season line drifts around the
// projected one, so projection-delta scans have something to find. The
// points value lands only in the projection scope.
func (g *generator) player(slots []string, proj map[string]any, points float64) feed.PlayerDoc {
	id := g.nextPlayerID
	g.nextPlayerID++

	actual := make(map[string]any, len(proj))
	for stat, v := range proj {
		base, _ := v.(float64)
		drift := 1 + (g.rng.Float64()*2-1)*projectionDrift
		actual[stat] = round3(base * drift)
	}
	proj["projected_points"] = round3(points)

	return feed.PlayerDoc{
		ID:        id,
		Name:      g.person(),
		ProTeam:   mlbTeams[g.rng.Intn(len(mlbTeams))],
		Positions: slots,
		Stats: map[string]map[string]any{
			"curr": actual,
			"proj": proj,
		},
	}
}

// applyStandings assigns ranks and plausible records. Records follow the
// rank so standings and win percentages stay coherent.
func (g *generator) applyStandings(teams []feed.TeamDoc) {
	played := 2 * (len(teams) - 1)
	for i := range teams {
		teams[i].Standing = i + 1
		wins := played - i - 1 - g.rng.Intn(2)
		if wins < 0 {
			wins = 0
		}
		if wins > played {
			wins = played
		}
		teams[i].Wins = wins
		teams[i].Ties = g.rng.Intn(2)
		teams[i].Losses = played - wins - teams[i].Ties
	}
}

// weeks lays out a round-robin: each scoring period pairs every team using
// the circle method, repeating once the rotation is exhausted.
func (g *generator) weeks(teams []feed.TeamDoc) []feed.WeekDoc {
	n := len(teams)
	ids := make([]int, n)
	for i, t := range teams {
		ids[i] = t.ID
	}

	var out []feed.WeekDoc
	for week := 1; week <= g.cfg.Weeks; week++ {
		for i := 0; i < n/2; i++ {
			home, away := ids[i], ids[n-1-i]
			if week%2 == 0 {
				home, away = away, home
			}
			out = append(out, feed.WeekDoc{Week: week, HomeID: home, AwayID: away})
		}
		// Rotate all but the first entry.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}
	return out
}

// applySchedules mirrors the week pairings into each team's own schedule.
func (g *generator) applySchedules(teams []feed.TeamDoc, weeks []feed.WeekDoc) {
	byID := make(map[int]int, len(teams))
	for i, t := range teams {
		byID[t.ID] = i
	}
	for _, w := range weeks {
		if i, ok := byID[w.HomeID]; ok {
			teams[i].Schedule = append(teams[i].Schedule, feed.ScheduledDoc{Week: w.Week, OpponentID: w.AwayID})
		}
		if i, ok := byID[w.AwayID]; ok {
			teams[i].Schedule = append(teams[i].Schedule, feed.ScheduledDoc{Week: w.Week, OpponentID: w.HomeID})
		}
	}
}

// games shuffles the pro teams into daily pairings for the configured
// window.
func (g *generator) games() []feed.GameDoc {
	var out []feed.GameDoc
	for day := 0; day < g.cfg.GameDays; day++ {
		date := g.cfg.Start.AddDate(0, 0, day).Format(dateLayout)
		order := g.rng.Perm(len(mlbTeams))
		for i := 0; i+1 < len(order); i += 2 {
			home := mlbTeams[order[i]]
			away := mlbTeams[order[i+1]]
			out = append(out, feed.GameDoc{
				Date:     date,
				Home:     home,
				Away:     away,
				Ballpark: g.scorer.HomePark(home),
			})
		}
	}
	return out
}

func (g *generator) freeAgents() []feed.PlayerDoc {
	out := make([]feed.PlayerDoc, 0, g.cfg.FreeAgents)
	for i := 0; i < g.cfg.FreeAgents; i++ {
		if i%3 == 0 {
			out = append(out, g.pitcher(pitcherSlots[g.rng.Intn(len(pitcherSlots))]))
			continue
		}
		out = append(out, g.hitter(hitterSlots[g.rng.Intn(len(hitterSlots))]))
	}
	return out
}

// probableStarts confirms a start for most rostered starting pitchers inside
// the game window.
func (g *generator) probableStarts(teams []feed.TeamDoc) []feed.StartDoc {
	var out []feed.StartDoc
	for _, team := range teams {
		for _, p := range team.Roster {
			if !contains(p.Positions, "SP") {
				continue
			}
			if g.rng.Float64() > probableStartChance {
				continue
			}
			opponent := mlbTeams[g.rng.Intn(len(mlbTeams))]
			for opponent == p.ProTeam {
				opponent = mlbTeams[g.rng.Intn(len(mlbTeams))]
			}
			home := g.rng.Intn(2) == 0
			park := g.scorer.HomePark(p.ProTeam)
			if !home {
				park = g.scorer.HomePark(opponent)
			}
			out = append(out, feed.StartDoc{
				PlayerID: p.ID,
				Date:     g.cfg.Start.AddDate(0, 0, g.rng.Intn(g.cfg.GameDays)).Format(dateLayout),
				Opponent: opponent,
				Ballpark: park,
				Home:     home,
			})
		}
	}
	return out
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
