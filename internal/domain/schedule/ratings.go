// Package schedule scores the favorability of real-world matchups: opponent
// quality and ballpark factors combined into a single rating consumed by the
// pitcher-start optimizer and by streaming-opportunity scans.
package schedule

// OffenseRating describes one MLB team's offense relative to a league
// average of 100.
type OffenseRating struct {
	Rating        float64
	StrikeoutRate float64
	WalkRate      float64
}

// PitchingRating describes one MLB team's pitching relative to a league
// average of 100.
type PitchingRating struct {
	Rating        float64
	StrikeoutRate float64
	WalkRate      float64
	HomeRunRate   float64
}

// Default rating and park tables. These stand in for a live ratings feed;
// callers with fresher data override them via options.
var defaultOffenseRatings = map[string]OffenseRating{
	"NYY": {Rating: 112, StrikeoutRate: 22.5, WalkRate: 9.8},
	"BOS": {Rating: 108, StrikeoutRate: 21.0, WalkRate: 8.5},
	"TB":  {Rating: 103, StrikeoutRate: 24.2, WalkRate: 8.9},
	"BAL": {Rating: 96, StrikeoutRate: 23.8, WalkRate: 7.5},
	"TOR": {Rating: 105, StrikeoutRate: 20.5, WalkRate: 8.2},
	"LAD": {Rating: 115, StrikeoutRate: 20.8, WalkRate: 10.3},
	"SF":  {Rating: 101, StrikeoutRate: 23.1, WalkRate: 9.5},
	"SD":  {Rating: 103, StrikeoutRate: 22.7, WalkRate: 8.8},
	"ARI": {Rating: 100, StrikeoutRate: 22.3, WalkRate: 8.2},
	"COL": {Rating: 95, StrikeoutRate: 24.5, WalkRate: 7.3},
	"ATL": {Rating: 110, StrikeoutRate: 23.1, WalkRate: 8.7},
	"NYM": {Rating: 102, StrikeoutRate: 21.9, WalkRate: 8.4},
	"PHI": {Rating: 106, StrikeoutRate: 22.7, WalkRate: 8.9},
	"WSH": {Rating: 94, StrikeoutRate: 20.8, WalkRate: 7.6},
	"MIA": {Rating: 90, StrikeoutRate: 25.3, WalkRate: 7.1},
	"CHC": {Rating: 98, StrikeoutRate: 24.1, WalkRate: 8.3},
	"CIN": {Rating: 101, StrikeoutRate: 23.5, WalkRate: 8.5},
	"MIL": {Rating: 100, StrikeoutRate: 23.8, WalkRate: 9.1},
	"PIT": {Rating: 92, StrikeoutRate: 24.2, WalkRate: 7.5},
	"STL": {Rating: 102, StrikeoutRate: 19.8, WalkRate: 8.7},
	"HOU": {Rating: 108, StrikeoutRate: 19.5, WalkRate: 9.3},
	"TEX": {Rating: 105, StrikeoutRate: 23.1, WalkRate: 8.2},
	"LAA": {Rating: 100, StrikeoutRate: 24.7, WalkRate: 7.9},
	"OAK": {Rating: 88, StrikeoutRate: 24.9, WalkRate: 7.3},
	"SEA": {Rating: 97, StrikeoutRate: 25.6, WalkRate: 8.8},
	"CLE": {Rating: 99, StrikeoutRate: 21.2, WalkRate: 7.9},
	"DET": {Rating: 93, StrikeoutRate: 23.8, WalkRate: 7.3},
	"KC":  {Rating: 95, StrikeoutRate: 22.1, WalkRate: 7.1},
	"MIN": {Rating: 102, StrikeoutRate: 22.9, WalkRate: 8.7},
	"CWS": {Rating: 97, StrikeoutRate: 23.5, WalkRate: 7.6},
}

var defaultPitchingRatings = map[string]PitchingRating{
	"NYY": {Rating: 105, StrikeoutRate: 24.5, WalkRate: 7.8, HomeRunRate: 3.2},
	"BOS": {Rating: 98, StrikeoutRate: 22.0, WalkRate: 8.5, HomeRunRate: 3.5},
	"TB":  {Rating: 108, StrikeoutRate: 25.2, WalkRate: 7.9, HomeRunRate: 2.9},
	"BAL": {Rating: 102, StrikeoutRate: 23.8, WalkRate: 7.5, HomeRunRate: 3.3},
	"TOR": {Rating: 100, StrikeoutRate: 21.5, WalkRate: 8.2, HomeRunRate: 3.4},
	"LAD": {Rating: 112, StrikeoutRate: 26.8, WalkRate: 7.3, HomeRunRate: 2.7},
	"SF":  {Rating: 106, StrikeoutRate: 24.1, WalkRate: 7.5, HomeRunRate: 2.9},
	"SD":  {Rating: 107, StrikeoutRate: 25.7, WalkRate: 7.8, HomeRunRate: 2.8},
	"ARI": {Rating: 101, StrikeoutRate: 22.3, WalkRate: 8.2, HomeRunRate: 3.1},
	"COL": {Rating: 90, StrikeoutRate: 20.5, WalkRate: 8.3, HomeRunRate: 3.9},
	"ATL": {Rating: 110, StrikeoutRate: 26.1, WalkRate: 7.7, HomeRunRate: 2.7},
	"NYM": {Rating: 107, StrikeoutRate: 24.9, WalkRate: 7.4, HomeRunRate: 2.9},
	"PHI": {Rating: 103, StrikeoutRate: 23.7, WalkRate: 7.9, HomeRunRate: 3.1},
	"WSH": {Rating: 94, StrikeoutRate: 20.8, WalkRate: 8.6, HomeRunRate: 3.6},
	"MIA": {Rating: 105, StrikeoutRate: 25.3, WalkRate: 8.1, HomeRunRate: 2.8},
	"CHC": {Rating: 99, StrikeoutRate: 23.1, WalkRate: 8.3, HomeRunRate: 3.3},
	"CIN": {Rating: 97, StrikeoutRate: 22.5, WalkRate: 8.5, HomeRunRate: 3.7},
	"MIL": {Rating: 104, StrikeoutRate: 24.8, WalkRate: 7.6, HomeRunRate: 3.1},
	"PIT": {Rating: 96, StrikeoutRate: 21.2, WalkRate: 8.5, HomeRunRate: 3.4},
	"STL": {Rating: 102, StrikeoutRate: 22.8, WalkRate: 7.7, HomeRunRate: 3.2},
	"HOU": {Rating: 109, StrikeoutRate: 25.5, WalkRate: 7.3, HomeRunRate: 2.9},
	"TEX": {Rating: 104, StrikeoutRate: 23.1, WalkRate: 7.9, HomeRunRate: 3.2},
	"LAA": {Rating: 95, StrikeoutRate: 21.7, WalkRate: 8.5, HomeRunRate: 3.5},
	"OAK": {Rating: 97, StrikeoutRate: 22.9, WalkRate: 8.3, HomeRunRate: 3.2},
	"SEA": {Rating: 106, StrikeoutRate: 25.6, WalkRate: 7.8, HomeRunRate: 2.9},
	"CLE": {Rating: 105, StrikeoutRate: 24.2, WalkRate: 7.6, HomeRunRate: 3.0},
	"DET": {Rating: 102, StrikeoutRate: 23.8, WalkRate: 8.3, HomeRunRate: 3.1},
	"KC":  {Rating: 98, StrikeoutRate: 22.1, WalkRate: 8.1, HomeRunRate: 3.3},
	"MIN": {Rating: 103, StrikeoutRate: 24.5, WalkRate: 7.7, HomeRunRate: 3.1},
	"CWS": {Rating: 99, StrikeoutRate: 23.5, WalkRate: 8.0, HomeRunRate: 3.4},
}

var defaultParkFactors = map[string]float64{
	"Yankee Stadium":           1.12,
	"Fenway Park":              1.25,
	"Tropicana Field":          0.94,
	"Camden Yards":             1.05,
	"Rogers Centre":            1.03,
	"Dodger Stadium":           0.98,
	"Oracle Park":              0.90,
	"Petco Park":               0.93,
	"Chase Field":              1.08,
	"Coors Field":              1.38,
	"Truist Park":              1.02,
	"Citi Field":               0.96,
	"Citizens Bank Park":       1.15,
	"Nationals Park":           1.00,
	"LoanDepot Park":           0.92,
	"Wrigley Field":            1.04,
	"Great American Ball Park": 1.11,
	"American Family Field":    1.05,
	"PNC Park":                 0.91,
	"Busch Stadium":            0.98,
	"Minute Maid Park":         1.08,
	"Globe Life Field":         0.97,
	"Angel Stadium":            0.97,
	"Oakland Coliseum":         0.93,
	"T-Mobile Park":            0.94,
	"Progressive Field":        0.98,
	"Comerica Park":            0.95,
	"Kauffman Stadium":         0.98,
	"Target Field":             1.00,
	"Guaranteed Rate Field":    1.01,
}

var defaultHomeParks = map[string]string{
	"NYY": "Yankee Stadium",
	"BOS": "Fenway Park",
	"TB":  "Tropicana Field",
	"BAL": "Camden Yards",
	"TOR": "Rogers Centre",
	"LAD": "Dodger Stadium",
	"SF":  "Oracle Park",
	"SD":  "Petco Park",
	"ARI": "Chase Field",
	"COL": "Coors Field",
	"ATL": "Truist Park",
	"NYM": "Citi Field",
	"PHI": "Citizens Bank Park",
	"WSH": "Nationals Park",
	"MIA": "LoanDepot Park",
	"CHC": "Wrigley Field",
	"CIN": "Great American Ball Park",
	"MIL": "American Family Field",
	"PIT": "PNC Park",
	"STL": "Busch Stadium",
	"HOU": "Minute Maid Park",
	"TEX": "Globe Life Field",
	"LAA": "Angel Stadium",
	"OAK": "Oakland Coliseum",
	"SEA": "T-Mobile Park",
	"CLE": "Progressive Field",
	"DET": "Comerica Park",
	"KC":  "Kauffman Stadium",
	"MIN": "Target Field",
	"CWS": "Guaranteed Rate Field",
}
