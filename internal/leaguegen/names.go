package leaguegen

// Name pools for synthetic teams and players.

var teamAdjectives = []string{
	"Roaring", "Midnight", "Electric", "Rusty", "Golden",
	"Howling", "Iron", "Crimson", "Lucky", "Wandering",
	"Thundering", "Silent", "Blazing", "Frozen", "Mighty",
}

var teamNouns = []string{
	"Moose", "Bandits", "Captains", "Herons", "Pilots",
	"Badgers", "Sluggers", "Mudcats", "Rovers", "Admirals",
	"Foxes", "Otters", "Raiders", "Penguins", "Wolves",
}

var firstNames = []string{
	"Jake", "Marcus", "Tony", "Luis", "Carlos", "Hideo", "Trevor",
	"Andre", "Felix", "Omar", "Dustin", "Ramon", "Kyle", "Shin",
	"Victor", "Pedro", "Aaron", "Jorge", "Brett", "Salvador",
}

var lastNames = []string{
	"Alvarez", "Brooks", "Castillo", "Donaldson", "Eaton",
	"Fujita", "Gomez", "Hernandez", "Ishikawa", "Jennings",
	"Kim", "Lopez", "Martinez", "Nakamura", "Ortega",
	"Petrov", "Quinn", "Ramirez", "Suzuki", "Torres",
}

var divisionNames = []string{"East", "West"}

// mlbTeams lists the pro team abbreviations players and games draw from,
// matching the default rating tables.
var mlbTeams = []string{
	"NYY", "BOS", "TB", "BAL", "TOR",
	"CLE", "DET", "KC", "MIN", "CWS",
	"HOU", "TEX", "LAA", "OAK", "SEA",
	"ATL", "NYM", "PHI", "WSH", "MIA",
	"CHC", "CIN", "MIL", "PIT", "STL",
	"LAD", "SF", "SD", "ARI", "COL",
}

var hitterSlots = [][]string{
	{"C", "UTIL"},
	{"1B", "UTIL"},
	{"2B", "MI", "UTIL"},
	{"3B", "CI", "UTIL"},
	{"SS", "MI", "UTIL"},
	{"LF", "OF", "UTIL"},
	{"CF", "OF", "UTIL"},
	{"RF", "OF", "UTIL"},
	{"1B", "3B", "CI", "UTIL"},
}

var pitcherSlots = [][]string{
	{"SP", "P"},
	{"SP", "P"},
	{"SP", "P"},
	{"SP", "P"},
	{"RP", "P"},
	{"RP", "P"},
	{"SP", "RP", "P"},
}
