package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pennantlab/pennant/internal/leaguegen"
)

// Default generation flags.
const (
	defaultTeams      = 10
	defaultWeeks      = 21
	defaultFreeAgents = 60
	defaultGameDays   = 7
)

func main() {
	var (
		teams      = flag.Int("teams", defaultTeams, "Number of fantasy teams")
		weeks      = flag.Int("weeks", defaultWeeks, "Number of scoring periods")
		freeAgents = flag.Int("free-agents", defaultFreeAgents, "Size of the free-agent pool")
		gameDays   = flag.Int("days", defaultGameDays, "Days of MLB games to lay out")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "Random seed (fixed seed reproduces the league)")
		output     = flag.String("out", "", "Output file (default: stdout)")
	)
	flag.Parse()

	doc := leaguegen.Generate(leaguegen.Config{
		Teams:      *teams,
		Weeks:      *weeks,
		FreeAgents: *freeAgents,
		GameDays:   *gameDays,
		Seed:       *seed,
	})

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			os.Stderr.WriteString("failed to create output file: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		os.Stderr.WriteString("failed to encode snapshot: " + err.Error() + "\n")
		os.Exit(1)
	}
}
