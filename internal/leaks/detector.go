// Package leaks compares a player's measured statistics against baseline
// ranges and reports the deviations worth working on.
package leaks

import (
	"fmt"
	"sort"

	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/stats"
)

// Severity grades how far outside its baseline a metric landed.
type Severity int

const (
	Minor Severity = iota
	Moderate
	Major
)

func (s Severity) String() string {
	switch s {
	case Major:
		return "major"
	case Moderate:
		return "moderate"
	default:
		return "minor"
	}
}

// Leak is one detected weakness. Position is empty for overall leaks and a
// group name (Early, Middle, Late, Blinds) otherwise.
type Leak struct {
	Metric      string
	Description string
	Severity    Severity
	Value       float64
	Low         float64
	High        float64
	Position    string
	Advice      string
}

// Range is an acceptable low/high band for a metric.
type Range struct {
	Low  float64
	High float64
}

// defaultBaselines holds approximate 6-max cash ranges. Optimal values vary
// with game type and opponents; these mark where a stat deserves a look.
var defaultBaselines = map[string]Range{
	"vpip":          {22, 30},
	"pfr":           {17, 24},
	"three_bet_pct": {6, 10},
	"af":            {2, 4},
	"cbet_pct":      {55, 75},
	"fold_to_cbet":  {35, 55},
	"wtsd":          {25, 35},
	"wsd":           {48, 56},
}

// groupAdjustments tightens or widens the preflop ranges per seat group.
var groupAdjustments = map[string]map[string]Range{
	"Early": {
		"vpip": {14, 20},
		"pfr":  {12, 18},
	},
	"Middle": {
		"vpip": {18, 26},
		"pfr":  {15, 22},
	},
	"Late": {
		"vpip": {28, 40},
		"pfr":  {22, 32},
	},
	"Blinds": {
		"vpip": {20, 30},
		"pfr":  {12, 20},
	},
}

var groupNames = map[string]bool{
	"Early": true, "Middle": true, "Late": true, "Blinds": true,
}

// groupPositions maps each seat group to its member positions.
var groupPositions = map[string][]handlog.Position{
	"Early":  {handlog.UTG, handlog.UTG1, handlog.UTG2},
	"Middle": {handlog.MP, handlog.MP1, handlog.LJ, handlog.HJ},
	"Late":   {handlog.CO, handlog.BTN},
	"Blinds": {handlog.SB, handlog.BB},
}

var groupOrder = []string{"Early", "Middle", "Late", "Blinds"}

type leakText struct {
	description string
	advice      string
}

var leakTexts = map[string]leakText{
	"vpip/high": {
		"VPIP too high, playing too many hands",
		"Tighten the starting range, especially from early seats. Enter pots with strong holdings only.",
	},
	"vpip/low": {
		"VPIP too low, playing too tight",
		"Open up in favorable positions. A very tight range is easy for opponents to read and exploit.",
	},
	"pfr/high": {
		"PFR too high, raising too often preflop",
		"Cut marginal raises from early seats and flat-call more to balance the range.",
	},
	"pfr/low": {
		"PFR too low, too passive preflop",
		"Open-raise more of the hands you play instead of limping. Passive entries surrender initiative postflop.",
	},
	"three_bet_pct/high": {
		"3-bet frequency too high",
		"Reduce light 3-bets; an inflated frequency invites 4-bets that put you in bad spots.",
	},
	"three_bet_pct/low": {
		"3-bet frequency too low",
		"3-bet more against late-position opens and add some bluff combos such as suited A5 to balance.",
	},
	"af/high": {
		"Postflop aggression too high",
		"Not every board deserves pressure. Learn to check back and control the pot on unfavorable textures.",
	},
	"af/low": {
		"Postflop aggression too low",
		"Bet and raise more on favorable board textures. Passive postflop play leaves value on the table.",
	},
	"cbet_pct/high": {
		"Continuation betting too often",
		"Stop c-betting every flop. Check on wet boards that favor the caller's range.",
	},
	"cbet_pct/low": {
		"Continuation betting too rarely",
		"C-bet more on boards that favor the preflop raiser; you hold the range advantage.",
	},
	"fold_to_cbet/high": {
		"Folding to c-bets too often",
		"Defend more by calling or raising c-bets. Frequent folding lets opponents profit with any two cards.",
	},
	"fold_to_cbet/low": {
		"Folding to c-bets too rarely",
		"Stop defending with weak holdings on unfavorable boards; give up marginal hands sooner.",
	},
	"wtsd/high": {
		"Going to showdown too often, calling-station tendency",
		"Release marginal hands as streets progress. Chips already invested are not a reason to keep calling.",
	},
	"wtsd/low": {
		"Going to showdown too rarely, giving up too early",
		"Call down more with medium-strength hands. Folding too early makes opponents' bluffs automatic winners.",
	},
	"wsd/high": {
		"Showdown winrate unusually high, possibly too tight",
		"Only reaching showdown with monsters means folds elsewhere are too frequent; widen the showdown range.",
	},
	"wsd/low": {
		"Showdown winrate low, calling down too wide",
		"Take weak hands to showdown less often; losing there regularly means the calling standard is too loose.",
	},
}

// Detector finds leaks in a player profile.
type Detector struct {
	cfg *DetectorConfig
}

// NewDetector returns a Detector with the given thresholds, or the defaults
// when cfg is nil.
func NewDetector(cfg *DetectorConfig) *Detector {
	if cfg == nil {
		cfg = DefaultDetectorConfig()
	}
	return &Detector{cfg: cfg}
}

// Detect analyzes a profile and returns leaks ordered most severe first.
// Too small a sample returns nothing at all.
func (d *Detector) Detect(ps *stats.PlayerStats) []Leak {
	if ps.Overall.Hands < d.cfg.MinHands {
		return nil
	}

	leaks := d.checkBucket(&ps.Overall, "")

	for _, group := range groupOrder {
		merged := mergeBuckets(ps, groupPositions[group])
		if merged.Hands < d.cfg.MinPositionHands {
			continue
		}
		leaks = append(leaks, d.checkBucket(merged, group)...)
	}

	sort.SliceStable(leaks, func(i, j int) bool {
		return leaks[i].Severity > leaks[j].Severity
	})
	return leaks
}

// checkBucket compares one counter bucket against its effective baselines.
func (d *Detector) checkBucket(b *stats.Bucket, group string) []Leak {
	ranges := d.cfg.baselinesFor(group)

	type metric struct {
		name    string
		value   float64
		sampled bool
	}
	metrics := []metric{
		{"vpip", b.VPIP(), true},
		{"pfr", b.PFR(), true},
		{"three_bet_pct", b.ThreeBetPct(), b.ThreeBetChances >= 10},
		{"af", b.AggressionFactor(), true},
		{"cbet_pct", b.CBetPct(), b.CBetChances >= 5},
		{"fold_to_cbet", b.FoldToCBetPct(), b.FacedCBet >= 5},
		{"wtsd", b.WTSD(), b.SawFlop >= 10},
		{"wsd", b.WSD(), b.WentToShowdown >= 5},
	}

	var leaks []Leak
	for _, m := range metrics {
		if !m.sampled {
			continue
		}
		r, ok := ranges[m.name]
		if !ok {
			continue
		}
		switch {
		case m.value < r.Low:
			if leak, ok := newLeak(m.name, "low", m.value, r, group); ok {
				leaks = append(leaks, leak)
			}
		case m.value > r.High:
			if leak, ok := newLeak(m.name, "high", m.value, r, group); ok {
				leaks = append(leaks, leak)
			}
		}
	}

	// A wide VPIP-PFR gap means entering many pots passively.
	gap := b.VPIP() - b.PFR()
	if gap > d.cfg.MaxVPIPPFRGap && b.Hands >= d.cfg.MinHands {
		severity := Moderate
		if gap > d.cfg.MaxVPIPPFRGap+4 {
			severity = Major
		}
		leaks = append(leaks, Leak{
			Metric:      "vpip_pfr_gap",
			Description: withGroup(group, "VPIP-PFR gap too wide, too much cold calling"),
			Severity:    severity,
			Value:       gap,
			Low:         0,
			High:        6,
			Position:    group,
			Advice:      "Most hands worth playing are worth raising. Replace the bulk of preflop flat-calls with raises.",
		})
	}

	return leaks
}

func newLeak(metric, direction string, value float64, r Range, group string) (Leak, bool) {
	text, ok := leakTexts[metric+"/"+direction]
	if !ok {
		return Leak{}, false
	}

	width := r.High - r.Low
	if width == 0 {
		width = 1
	}
	deviation := (r.Low - value) / width
	if direction == "high" {
		deviation = (value - r.High) / width
	}

	severity := Minor
	switch {
	case deviation > 1:
		severity = Major
	case deviation > 0.5:
		severity = Moderate
	}

	return Leak{
		Metric:      metric,
		Description: withGroup(group, text.description),
		Severity:    severity,
		Value:       value,
		Low:         r.Low,
		High:        r.High,
		Position:    group,
		Advice:      text.advice,
	}, true
}

func withGroup(group, description string) string {
	if group == "" {
		return description
	}
	return fmt.Sprintf("[%s] %s", group, description)
}

// mergeBuckets sums the counters of several positions into one bucket.
func mergeBuckets(ps *stats.PlayerStats, positions []handlog.Position) *stats.Bucket {
	merged := &stats.Bucket{}
	for _, pos := range positions {
		b, ok := ps.ByPosition[pos]
		if !ok {
			continue
		}
		merged.Hands += b.Hands
		merged.VPIPHands += b.VPIPHands
		merged.PFRHands += b.PFRHands
		merged.ThreeBetChances += b.ThreeBetChances
		merged.ThreeBets += b.ThreeBets
		merged.Bets += b.Bets
		merged.Raises += b.Raises
		merged.Calls += b.Calls
		merged.Folds += b.Folds
		merged.CBetChances += b.CBetChances
		merged.CBets += b.CBets
		merged.FacedCBet += b.FacedCBet
		merged.FoldedToCBet += b.FoldedToCBet
		merged.SawFlop += b.SawFlop
		merged.WentToShowdown += b.WentToShowdown
		merged.WonAtShowdown += b.WonAtShowdown
		merged.WonWithoutShowdown += b.WonWithoutShowdown
		merged.TotalWon += b.TotalWon
		merged.TotalInvested += b.TotalInvested
	}
	return merged
}
