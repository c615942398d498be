// Package feed loads league snapshot documents from files or HTTP and
// converts them into domain values at the edge.
package feed

import (
	"time"

	"github.com/pennantlab/pennant/internal/domain/matchup"
	"github.com/pennantlab/pennant/internal/domain/model"
	"github.com/pennantlab/pennant/internal/domain/schedule"
)

// Document is the wire form of a league snapshot. Field pairs like
// name/team_name tolerate the two namings seen in exported league data;
// the primary field wins when both are set.
type Document struct {
	Taken     time.Time   `json:"taken"`
	Teams     []TeamDoc   `json:"teams"`
	Weeks     []WeekDoc   `json:"weeks,omitempty"`
	Games     []GameDoc   `json:"games,omitempty"`
	Free      []PlayerDoc `json:"free_agents,omitempty"`
	Probables []StartDoc  `json:"probable_starts,omitempty"`
}

// TeamDoc is one fantasy team on the wire.
type TeamDoc struct {
	ID           int            `json:"team_id"`
	Name         string         `json:"name"`
	AltName      string         `json:"team_name,omitempty"`
	Abbrev       string         `json:"abbrev"`
	DivisionID   int            `json:"division_id,omitempty"`
	DivisionName string         `json:"division_name,omitempty"`
	Standing     int            `json:"standing"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Ties         int            `json:"ties"`
	Owners       []OwnerDoc     `json:"owners,omitempty"`
	Roster       []PlayerDoc    `json:"roster"`
	Schedule     []ScheduledDoc `json:"schedule,omitempty"`
}

// OwnerDoc is one team owner on the wire.
type OwnerDoc struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

// PlayerDoc is one player on the wire. Stats carry arbitrary scoped maps;
// non-scalar values survive the wire and are dropped at flatten time.
type PlayerDoc struct {
	ID        int                       `json:"player_id"`
	Name      string                    `json:"name"`
	ProTeam   string                    `json:"pro_team"`
	AltTeam   string                    `json:"team,omitempty"`
	Positions []string                  `json:"eligible_slots"`
	Stats     map[string]map[string]any `json:"stats"`
}

// ScheduledDoc is one entry of a team's season schedule.
type ScheduledDoc struct {
	Week       int `json:"week"`
	OpponentID int `json:"opponent_id"`
}

// WeekDoc pairs two teams for one scoring period.
type WeekDoc struct {
	Week      int     `json:"week"`
	HomeID    int     `json:"home_id"`
	AwayID    int     `json:"away_id"`
	HomeScore float64 `json:"home_score"`
	AwayScore float64 `json:"away_score"`
}

// GameDoc is one real-world game on the wire.
type GameDoc struct {
	Date     string `json:"date"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	Ballpark string `json:"ballpark,omitempty"`
}

// StartDoc is a confirmed probable start for one pitcher.
type StartDoc struct {
	PlayerID int    `json:"player_id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Ballpark string `json:"ballpark"`
	Home     bool   `json:"home"`
}

func (d TeamDoc) name() string {
	if d.Name != "" {
		return d.Name
	}
	return d.AltName
}

func (d PlayerDoc) proTeam() string {
	if d.ProTeam != "" {
		return d.ProTeam
	}
	return d.AltTeam
}

// Snapshot converts the document into an immutable league snapshot.
func (d Document) Snapshot() model.LeagueSnapshot {
	taken := d.Taken
	if taken.IsZero() {
		taken = time.Now()
	}
	teams := make([]model.Team, 0, len(d.Teams))
	for _, td := range d.Teams {
		teams = append(teams, td.team())
	}
	return model.NewLeagueSnapshot(taken, teams)
}

func (d TeamDoc) team() model.Team {
	owners := make([]model.Owner, 0, len(d.Owners))
	for _, od := range d.Owners {
		owners = append(owners, model.Owner{
			ID:          od.ID,
			DisplayName: od.DisplayName,
			FirstName:   od.FirstName,
			LastName:    od.LastName,
		})
	}
	roster := make([]model.Player, 0, len(d.Roster))
	for _, pd := range d.Roster {
		roster = append(roster, pd.player())
	}
	sched := make([]model.ScheduledMatchup, 0, len(d.Schedule))
	for _, sd := range d.Schedule {
		sched = append(sched, model.ScheduledMatchup{Week: sd.Week, OpponentID: sd.OpponentID})
	}
	return model.Team{
		ID:           d.ID,
		Name:         d.name(),
		Abbrev:       d.Abbrev,
		Owners:       owners,
		DivisionID:   d.DivisionID,
		DivisionName: d.DivisionName,
		Standing:     d.Standing,
		Wins:         d.Wins,
		Losses:       d.Losses,
		Ties:         d.Ties,
		Roster:       roster,
		Schedule:     sched,
	}
}

func (d PlayerDoc) player() model.Player {
	return model.Player{
		ID:            d.ID,
		Name:          d.Name,
		ProTeam:       d.proTeam(),
		EligibleSlots: d.Positions,
		Stats:         d.Stats,
	}
}

// FreeAgents converts the document's free agent pool.
func (d Document) FreeAgents() []model.Player {
	out := make([]model.Player, 0, len(d.Free))
	for _, pd := range d.Free {
		out = append(out, pd.player())
	}
	return out
}

// ProbableStarts converts confirmed starts keyed by player ID. Entries
// with an unparseable date are skipped rather than guessed at.
func (d Document) ProbableStarts() map[int]matchup.StartInfo {
	out := make(map[int]matchup.StartInfo, len(d.Probables))
	for _, sd := range d.Probables {
		if _, err := time.Parse("2006-01-02", sd.Date); err != nil {
			continue
		}
		out[sd.PlayerID] = matchup.StartInfo{
			Known:    true,
			Date:     sd.Date,
			Opponent: sd.Opponent,
			Ballpark: sd.Ballpark,
			Home:     sd.Home,
		}
	}
	return out
}

// ScheduleGames converts the document's real-world game slate.
func (d Document) ScheduleGames() []schedule.Game {
	out := make([]schedule.Game, 0, len(d.Games))
	for _, gd := range d.Games {
		if _, err := time.Parse("2006-01-02", gd.Date); err != nil {
			continue
		}
		out = append(out, schedule.Game{
			Date:     gd.Date,
			Home:     gd.Home,
			Away:     gd.Away,
			Ballpark: gd.Ballpark,
		})
	}
	return out
}
