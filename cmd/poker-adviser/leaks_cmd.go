package main

import (
	"errors"
	"fmt"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/ai"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
)

// LeaksCmd compares the hero's numbers against baseline ranges and reports
// deviations worth fixing.
type LeaksCmd struct {
	Session string `kong:"help='Limit to one session id'"`
	Player  string `kong:"help='Hero name override'"`
	Config  string `kong:"help='HCL file with baseline overrides'"`
}

func (c *LeaksCmd) Run(g *Globals) error {
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

	cfg := leaks.DefaultDetectorConfig()
	if c.Config != "" {
		cfg, err = leaks.LoadDetectorConfig(c.Config)
		if err != nil {
			return err
		}
	}

	calc := &stats.Calculator{}
	profile := calc.Calculate(hands, c.Player)
	found := leaks.NewDetector(cfg).Detect(profile)

	fmt.Println(headerStyle.Render(" Leak analysis "))
	fmt.Printf("%d hands analyzed\n\n", profile.Overall.Hands)
	fmt.Println(ai.FormatLeaks(found))
	return nil
}
