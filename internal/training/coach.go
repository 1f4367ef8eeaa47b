package training

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/mlu11/poker-adviser/internal/ai"
)

const coachSystem = `You are a no-limit hold'em training coach. Your job is to grade a player's
decision in a specific spot and teach from it.

Rules:
- Grade the decision from 1 to 10 (10 is optimal)
- Explain the optimal play and why
- Discuss the relevant ranges
- Consider stack depth, position, and opponent tendencies
- If the player's choice is reasonable but not optimal, say so
- Structure the answer in Markdown

Answer format:
## Score: X/10

## Analysis
(your analysis)

## Optimal play
(the optimal play and why)

## Key takeaways
(what to remember)`

// Evaluation is the coach's grading of one training decision.
type Evaluation struct {
	Score         int
	Feedback      string
	OptimalAction string
}

// Coach grades training decisions using the analysis model.
type Coach struct {
	client *ai.Client
}

func NewCoach(client *ai.Client) *Coach {
	return &Coach{client: client}
}

// Evaluate grades the player's chosen action for a scenario.
func (c *Coach) Evaluate(ctx context.Context, scenario Scenario, userAction, reasoning string) (Evaluation, error) {
	prompt := buildEvalPrompt(scenario.Description, userAction, reasoning)
	response, err := c.client.Ask(ctx, coachSystem, prompt)
	if err != nil {
		return Evaluation{}, err
	}
	return parseEvaluation(response, userAction), nil
}

func buildEvalPrompt(scenarioText, userAction, reasoning string) string {
	parts := []string{
		"Grade the player's decision in this spot.",
		"",
		"## Scenario",
		scenarioText,
		"",
		"## Player's decision",
		userAction,
	}
	if reasoning != "" {
		parts = append(parts, "", "## Player's reasoning", reasoning)
	}
	return strings.Join(parts, "\n")
}

var (
	reScore   = regexp.MustCompile(`(?i)score[:：]?\s*(\d+)\s*/\s*10`)
	reOptimal = regexp.MustCompile(`(?is)##\s*optimal play\s*\n+(.*?)(?:\n##|$)`)
)

// parseEvaluation pulls the score and optimal-action summary out of the
// coach's structured Markdown answer. An unparseable answer falls back to a
// middle score with the player's own action as the optimum.
func parseEvaluation(response, userAction string) Evaluation {
	eval := Evaluation{Score: 5, Feedback: response, OptimalAction: userAction}

	if m := reScore.FindStringSubmatch(response); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if n < 1 {
				n = 1
			}
			if n > 10 {
				n = 10
			}
			eval.Score = n
		}
	}

	if m := reOptimal.FindStringSubmatch(response); m != nil {
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
			if line == "" {
				continue
			}
			if len(line) > 100 {
				line = line[:100]
			}
			eval.OptimalAction = line
			break
		}
	}
	return eval
}
