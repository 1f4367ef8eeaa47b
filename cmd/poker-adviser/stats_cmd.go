package main

import (
	"errors"
	"fmt"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/ai"
	"github.com/mlu11/poker-adviser/internal/stats"
)

// StatsCmd prints the hero's statistics over stored hands.
type StatsCmd struct {
	Session string `kong:"help='Limit to one session id'"`
	Player  string `kong:"help='Hero name override when the logs never reveal it'"`
}

func (c *StatsCmd) Run(g *Globals) error {
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
	if profile.Overall.Hands == 0 {
		return errors.New("no hands with a resolved hero, pass --player")
	}

	fmt.Println(headerStyle.Render(" Player statistics "))
	fmt.Println(ai.FormatStats(profile))

	if positions := ai.FormatPositions(profile); positions != "" {
		fmt.Println()
		fmt.Println(handInfoStyle.Render("By position:"))
		fmt.Println(positions)
	}
	return nil
}
