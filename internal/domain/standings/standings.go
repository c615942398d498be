// Package standings summarizes league records: overall and divisional
// standings plus two-team comparisons.
package standings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pennantlab/pennant/internal/domain/model"
)

// Row is one team's line in the standings.
type Row struct {
	TeamID   int     `json:"team_id"`
	Name     string  `json:"name"`
	Owner    string  `json:"owner"`
	Standing int     `json:"standing"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
	WinPct   float64 `json:"win_percentage"`
}

// Table returns the league standings ordered by rank.
func Table(teams []model.Team) []Row {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, Row{
			TeamID:   t.ID,
			Name:     t.Name,
			Owner:    t.OwnerName(),
			Standing: t.Standing,
			Wins:     t.Wins,
			Losses:   t.Losses,
			Ties:     t.Ties,
			WinPct:   t.WinPct(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Standing < rows[j].Standing })
	return rows
}

// ByDivision groups standings by division name. Leagues without divisions
// yield an empty map.
func ByDivision(teams []model.Team) map[string][]Row {
	byName := make(map[string][]model.Team)
	for _, t := range teams {
		if t.DivisionName == "" {
			continue
		}
		byName[t.DivisionName] = append(byName[t.DivisionName], t)
	}
	out := make(map[string][]Row, len(byName))
	for name, group := range byName {
		out[name] = Table(group)
	}
	return out
}

// Comparison is the head-to-head record summary of two teams.
type Comparison struct {
	Err          string `json:"error,omitempty"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Standing1    int    `json:"team1_standing"`
	Standing2    int    `json:"team2_standing"`
	StandingDiff int    `json:"standing_difference"`
	Record1      string `json:"team1_record"`
	Record2      string `json:"team2_record"`
	WinDiff      int    `json:"win_difference"`
}

// Compare matches two teams by case-insensitive name containment and
// summarizes their records. A name matching no team yields a tagged error
// identifying it.
func Compare(teams []model.Team, name1, name2 string) Comparison {
	t1, ok := findByName(teams, name1)
	if !ok {
		return Comparison{Err: fmt.Sprintf("no team found with name containing %q", name1)}
	}
	t2, ok := findByName(teams, name2)
	if !ok {
		return Comparison{Err: fmt.Sprintf("no team found with name containing %q", name2)}
	}
	return Comparison{
		Team1:        t1.Name,
		Team2:        t2.Name,
		Standing1:    t1.Standing,
		Standing2:    t2.Standing,
		StandingDiff: t1.Standing - t2.Standing,
		Record1:      fmt.Sprintf("%d-%d", t1.Wins, t1.Losses),
		Record2:      fmt.Sprintf("%d-%d", t2.Wins, t2.Losses),
		WinDiff:      t1.Wins - t2.Wins,
	}
}

func findByName(teams []model.Team, name string) (model.Team, bool) {
	needle := strings.ToLower(name)
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return t, true
		}
	}
	return model.Team{}, false
}
