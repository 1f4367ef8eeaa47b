package main

import (
	"errors"
	"fmt"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
	"github.com/mlu11/poker-adviser/internal/training"
)

// PlanCmd builds a practice schedule from the hero's detected leaks.
type PlanCmd struct {
	Session string `kong:"help='Limit to one session id'"`
	Player  string `kong:"help='Hero name override'"`
}

func (c *PlanCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	hands, err := st.Hands(c.Session)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return errors.New("no hands stored, run import first")
	}

	calc := &stats.Calculator{}
	profile := calc.Calculate(hands, c.Player)
	found := leaks.NewDetector(nil).Detect(profile)

	plan := training.GeneratePlan(found)
	fmt.Println(training.FormatPlan(plan))
	return nil
}
