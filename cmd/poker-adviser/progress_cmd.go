package main

import (
	"fmt"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/training"
)

// ProgressCmd shows the training history and the running average score.
type ProgressCmd struct {
	Limit int `kong:"default='50',help='Most recent answers to show'"`
}

func (c *ProgressCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := st.TrainingResults(c.Limit)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(" Training progress "))
	fmt.Println(training.FormatProgress(results))
	return nil
}
