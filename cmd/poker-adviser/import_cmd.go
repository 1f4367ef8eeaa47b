package main

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/handlog"
)

// ImportCmd parses one or more log files and stores the reconstructed
// hands, one session per file.
type ImportCmd struct {
	Files []string `kong:"arg,required,help='Poker log files to import'"`
	Notes string   `kong:"help='Free-form note stored with each session'"`
	Jobs  int      `kong:"default='4',help='Parallel parse workers'"`
}

func (c *ImportCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	parser := handlog.NewParser(logger)
	results := make([]*handlog.Result, len(c.Files))

	var eg errgroup.Group
	eg.SetLimit(c.Jobs)
	for i, file := range c.Files {
		i, file := i, file
		eg.Go(func() error {
			res, err := parser.ParseFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	totalHands := 0
	for i, res := range results {
		name := filepath.Base(c.Files[i])
		if len(res.Hands) == 0 {
			fmt.Println(warningStyle.Render(fmt.Sprintf("%s: no hands found (%s dialect)", name, res.Dialect)))
			continue
		}

		sessionID, err := st.SaveSession(res.Hands, name, c.Notes)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		totalHands += len(res.Hands)

		fmt.Println(successStyle.Render(fmt.Sprintf("%s: %d hands imported (session %s, %s dialect)",
			name, len(res.Hands), sessionID, res.Dialect)))
		if len(res.Anomalies) > 0 {
			fmt.Println(warningStyle.Render(fmt.Sprintf("  %d anomalies:", len(res.Anomalies))))
			for _, a := range res.Anomalies {
				fmt.Println(dimStyle.Render("    " + a.String()))
			}
		}
	}

	fmt.Println(handInfoStyle.Render(fmt.Sprintf("Done: %d hands across %d files", totalHands, len(c.Files))))
	return nil
}
