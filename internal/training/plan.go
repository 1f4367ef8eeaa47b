package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlu11/poker-adviser/internal/leaks"
)

// Difficulty is the suggested starting level of a training plan.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

func (d Difficulty) String() string {
	switch d {
	case Advanced:
		return "advanced"
	case Intermediate:
		return "intermediate"
	default:
		return "beginner"
	}
}

// PlanModule is one practice block targeting a specific weakness. Focus
// matches the Generator's focus filter, so a module maps directly onto a
// practice session.
type PlanModule struct {
	Name        string
	Focus       string
	Metric      string
	Description string
	Scenarios   int
	Minutes     int
}

// Plan is a personalized practice schedule derived from detected leaks.
type Plan struct {
	CreatedAt    time.Time
	Modules      []PlanModule
	Difficulty   Difficulty
	Days         int
	DailyMinutes int
}

// leakModules maps a leak metric to the module that trains it.
var leakModules = map[string]PlanModule{
	"vpip": {
		Name:        "Preflop range tightening",
		Focus:       "preflop",
		Description: "Work on standard opening ranges and folding marginal hands, especially from early seats.",
		Scenarios:   10,
		Minutes:     30,
	},
	"pfr": {
		Name:        "Preflop raising",
		Focus:       "preflop",
		Description: "Raise the hands worth playing instead of limping in behind.",
		Scenarios:   10,
		Minutes:     30,
	},
	"vpip_pfr_gap": {
		Name:        "Cutting cold calls",
		Focus:       "preflop",
		Description: "Replace passive preflop flat-calls with raises or folds.",
		Scenarios:   12,
		Minutes:     35,
	},
	"three_bet_pct": {
		Name:        "3-bet spots",
		Focus:       "3bet",
		Description: "Practice 3-betting against late-position opens, for value and as a bluff.",
		Scenarios:   10,
		Minutes:     30,
	},
	"cbet_pct": {
		Name:        "Continuation betting",
		Focus:       "cbet",
		Description: "Decide which flop textures to c-bet as the preflop raiser and which to check.",
		Scenarios:   12,
		Minutes:     35,
	},
	"fold_to_cbet": {
		Name:        "Defending against c-bets",
		Focus:       "facing",
		Description: "Call, raise, or fold versus continuation bets based on board and range.",
		Scenarios:   12,
		Minutes:     35,
	},
	"af": {
		Name:        "Postflop aggression",
		Focus:       "bet_decision",
		Description: "Take the betting lead on favorable boards instead of checking it down.",
		Scenarios:   15,
		Minutes:     45,
	},
	"wtsd": {
		Name:        "Disciplined folding",
		Focus:       "river",
		Description: "Release marginal hands on later streets instead of calling down.",
		Scenarios:   15,
		Minutes:     40,
	},
	"wsd": {
		Name:        "Showdown value selection",
		Focus:       "river",
		Description: "Only take hands to showdown that beat the opponent's calling range.",
		Scenarios:   12,
		Minutes:     40,
	},
}

var defaultModule = PlanModule{
	Name:        "Preflop fundamentals",
	Focus:       "preflop",
	Metric:      "basics",
	Description: "Review standard opening ranges position by position.",
	Scenarios:   10,
	Minutes:     30,
}

// GeneratePlan turns detected leaks into a practice schedule. found must be
// ordered most severe first, the way the detector emits it; the top leaks
// become modules, one per distinct weakness.
func GeneratePlan(found []leaks.Leak) *Plan {
	plan := &Plan{CreatedAt: time.Now()}

	seen := make(map[string]bool)
	for _, leak := range found {
		if len(plan.Modules) >= 5 {
			break
		}
		module, ok := leakModules[leak.Metric]
		if !ok || seen[module.Name] {
			continue
		}
		seen[module.Name] = true
		module.Metric = leak.Metric
		plan.Modules = append(plan.Modules, module)
	}
	if len(plan.Modules) == 0 {
		plan.Modules = append(plan.Modules, defaultModule)
	}

	plan.Difficulty = overallDifficulty(found)
	plan.Days = len(plan.Modules) * 2
	total := 0
	for _, m := range plan.Modules {
		total += m.Minutes
	}
	plan.DailyMinutes = total / len(plan.Modules)
	return plan
}

func overallDifficulty(found []leaks.Leak) Difficulty {
	moderate := 0
	for _, leak := range found {
		switch leak.Severity {
		case leaks.Major:
			return Advanced
		case leaks.Moderate:
			moderate++
		}
	}
	if moderate > 0 {
		return Intermediate
	}
	return Beginner
}

// FormatPlan renders a plan as a text report.
func FormatPlan(p *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Training Plan (%s) ===\n", p.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Suggested span: %d days  |  Daily: ~%d minutes  |  Level: %s\n",
		p.Days, p.DailyMinutes, p.Difficulty)

	for i, m := range p.Modules {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, m.Name)
		fmt.Fprintf(&b, "   Targets: %s  |  %d scenarios  |  %d minutes\n", m.Metric, m.Scenarios, m.Minutes)
		fmt.Fprintf(&b, "   %s\n", m.Description)
		fmt.Fprintf(&b, "   Practice with: train --focus %s --count %d\n", m.Focus, m.Scenarios)
	}

	b.WriteString("\nWork through the modules in order and re-run the leak check afterwards.")
	return b.String()
}
