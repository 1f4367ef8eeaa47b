package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/ai"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
	"github.com/mlu11/poker-adviser/internal/store"
	"github.com/mlu11/poker-adviser/internal/training"
)

// TrainCmd runs an interactive practice session over decision points
// extracted from the player's own hands.
type TrainCmd struct {
	Session string `kong:"help='Limit to one session id'"`
	Player  string `kong:"help='Hero name override'"`
	Count   int    `kong:"default='10',help='Number of scenarios'"`
	Focus   string `kong:"help='Focus area, e.g. preflop, cbet, river'"`
	Env     string `kong:"default='.env',help='Env file with POKER_AI_* credentials'"`
}

func (c *TrainCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	if err := godotenv.Load(c.Env); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", c.Env, err)
	}

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

	scenarios := training.NewGenerator().Generate(hands, c.Count, found, c.Focus)
	if len(scenarios) == 0 {
		return errors.New("no training scenarios could be extracted")
	}

	// Without credentials the session still runs, just without grading.
	var coach *training.Coach
	if client, err := ai.NewClient(ai.ConfigFromEnv(), logger); err == nil {
		coach = training.NewCoach(client)
	} else {
		fmt.Println(warningStyle.Render("AI coach unavailable, answers will be recorded without grading"))
	}

	ctx := shared.SetupSignalHandler()
	reader := bufio.NewReader(os.Stdin)

	for i, scenario := range scenarios {
		fmt.Println(headerStyle.Render(fmt.Sprintf(" Scenario %d/%d: %s ", i+1, len(scenarios), scenario.Type)))
		fmt.Println(scenario.Description)
		fmt.Println()
		for n, action := range scenario.AvailableActions {
			fmt.Printf("  %d) %s\n", n+1, action)
		}
		fmt.Print("\n> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		choice := strings.TrimSpace(line)
		if choice == "" || choice == "q" {
			return nil
		}
		userAction := choice
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(scenario.AvailableActions) {
			userAction = scenario.AvailableActions[n-1]
		}

		result := store.TrainingResult{
			ScenarioType: scenario.Type,
			UserAction:   userAction,
			FocusArea:    c.Focus,
			Score:        5,
		}
		if coach != nil {
			eval, err := coach.Evaluate(ctx, scenario, userAction, "")
			if err != nil {
				return err
			}
			result.Score = eval.Score
			result.OptimalAction = eval.OptimalAction
			result.Feedback = eval.Feedback

			fmt.Println()
			fmt.Println(scoreStyle(eval.Score).Render(fmt.Sprintf("Score: %d/10", eval.Score)))
			fmt.Println(eval.Feedback)
		}
		if err := st.SaveTrainingResult(result); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Println(successStyle.Render("Training session complete"))
	fmt.Println(dimStyle.Render("Run the progress command to see your history."))
	return nil
}
