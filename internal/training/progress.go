package training

import (
	"fmt"
	"strings"

	"github.com/mlu11/poker-adviser/internal/store"
)

// FormatProgress renders answered training scenarios as a text table,
// newest first, with the running average underneath.
func FormatProgress(results []store.TrainingResult) string {
	if len(results) == 0 {
		return "No training results yet. Run a training session first."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-17s %-22s %-20s %-20s %s\n",
		"Date", "Scenario", "Your action", "Optimal", "Score")

	total := 0
	for _, r := range results {
		date := r.SessionDate
		if len(date) > 16 {
			date = date[:16]
		}
		fmt.Fprintf(&b, "%-17s %-22s %-20s %-20s %d/10\n",
			date, truncate(r.ScenarioType, 22), truncate(r.UserAction, 20),
			truncate(r.OptimalAction, 20), r.Score)
		total += r.Score
	}

	avg := float64(total) / float64(len(results))
	fmt.Fprintf(&b, "\nAverage score: %.1f/10  |  Answers: %d", avg, len(results))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
