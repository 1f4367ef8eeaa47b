package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/mlu11/poker-adviser/internal/store"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	DB    string `kong:"default='poker-adviser.db',help='Path to the sqlite database'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Import   ImportCmd        `cmd:"" help:"Import poker log files into the database"`
	Stats    StatsCmd         `cmd:"" help:"Show the hero's statistics"`
	Leaks    LeaksCmd         `cmd:"" help:"Detect leaks in the hero's play"`
	Hands    HandsCmd         `cmd:"" help:"List stored hands"`
	Export   ExportCmd        `cmd:"" help:"Export hands as a PHH session file"`
	Analyze  AnalyzeCmd       `cmd:"" help:"AI strategy analysis of a session, a hand, or the costliest hands"`
	Train    TrainCmd         `cmd:"" help:"Practice decisions extracted from your own hands"`
	Plan     PlanCmd          `cmd:"" help:"Build a practice schedule from your detected leaks"`
	Progress ProgressCmd      `cmd:"" help:"Training history and average score"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-adviser"),
		kong.Description("Reconstructs poker logs into hands and tells you where the money leaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func openStore(g *Globals, logger *log.Logger) (*store.Store, error) {
	return store.Open(g.DB, logger)
}
