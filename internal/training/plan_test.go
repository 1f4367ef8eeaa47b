package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/store"
)

func TestGeneratePlanFromLeaks(t *testing.T) {
	t.Parallel()

	found := []leaks.Leak{
		{Metric: "vpip", Severity: leaks.Major},
		{Metric: "cbet_pct", Severity: leaks.Moderate},
		{Metric: "vpip", Severity: leaks.Minor, Position: "Early"},
	}
	plan := GeneratePlan(found)

	// The positional repeat of the same metric collapses into one module.
	require.Len(t, plan.Modules, 2)
	assert.Equal(t, "Preflop range tightening", plan.Modules[0].Name)
	assert.Equal(t, "preflop", plan.Modules[0].Focus)
	assert.Equal(t, "vpip", plan.Modules[0].Metric)
	assert.Equal(t, "Continuation betting", plan.Modules[1].Name)

	assert.Equal(t, Advanced, plan.Difficulty)
	assert.Equal(t, 4, plan.Days)
	assert.Positive(t, plan.DailyMinutes)
}

func TestGeneratePlanCapsModules(t *testing.T) {
	t.Parallel()

	found := []leaks.Leak{
		{Metric: "vpip", Severity: leaks.Moderate},
		{Metric: "pfr", Severity: leaks.Moderate},
		{Metric: "three_bet_pct", Severity: leaks.Moderate},
		{Metric: "cbet_pct", Severity: leaks.Minor},
		{Metric: "fold_to_cbet", Severity: leaks.Minor},
		{Metric: "af", Severity: leaks.Minor},
		{Metric: "wtsd", Severity: leaks.Minor},
	}
	plan := GeneratePlan(found)

	assert.Len(t, plan.Modules, 5)
	assert.Equal(t, Intermediate, plan.Difficulty)
}

func TestGeneratePlanWithoutLeaks(t *testing.T) {
	t.Parallel()

	plan := GeneratePlan(nil)
	require.Len(t, plan.Modules, 1)
	assert.Equal(t, "Preflop fundamentals", plan.Modules[0].Name)
	assert.Equal(t, Beginner, plan.Difficulty)
}

func TestFormatPlan(t *testing.T) {
	t.Parallel()

	plan := GeneratePlan([]leaks.Leak{{Metric: "wtsd", Severity: leaks.Major}})
	out := FormatPlan(plan)

	assert.Contains(t, out, "Level: advanced")
	assert.Contains(t, out, "1. Disciplined folding")
	assert.Contains(t, out, "train --focus river --count 15")
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	assert.Contains(t, FormatProgress(nil), "No training results yet")

	results := []store.TrainingResult{
		{SessionDate: "2026-08-30 21:15:02", ScenarioType: "preflop_open", UserAction: "Raise 60", OptimalAction: "Raise 60", Score: 9},
		{SessionDate: "2026-08-30 21:14:40", ScenarioType: "river_facing_bet", UserAction: "Call 200", OptimalAction: "Fold", Score: 3},
	}
	out := FormatProgress(results)

	assert.Contains(t, out, "2026-08-30 21:15")
	assert.Contains(t, out, "preflop_open")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "3/10")
	assert.Contains(t, out, "Average score: 6.0/10  |  Answers: 2")
}
