// Package stats derives playing-style metrics from reconstructed hands. All
// numbers are computed from the hero's perspective; hands where the hero
// could not be identified contribute nothing.
package stats

import (
	"math"

	"github.com/mlu11/poker-adviser/internal/handlog"
)

// Bucket accumulates raw counters for one slice of hands, either overall or
// one table position. Derived percentages live on methods so the counters
// stay trivially mergeable.
type Bucket struct {
	Position handlog.Position

	Hands     int
	VPIPHands int // voluntarily put chips in preflop
	PFRHands  int // raised preflop

	ThreeBetChances int
	ThreeBets       int

	// Postflop action counts for the aggression factor
	Bets   int
	Raises int
	Calls  int
	Folds  int

	CBetChances  int
	CBets        int
	FacedCBet    int
	FoldedToCBet int

	SawFlop            int
	WentToShowdown     int
	WonAtShowdown      int
	WonWithoutShowdown int

	TotalWon      int
	TotalInvested int
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}

// VPIP is the percentage of hands where the hero voluntarily put chips in
// preflop.
func (b *Bucket) VPIP() float64 { return ratio(b.VPIPHands, b.Hands) }

// PFR is the percentage of hands the hero raised preflop.
func (b *Bucket) PFR() float64 { return ratio(b.PFRHands, b.Hands) }

// ThreeBetPct is the percentage of 3-bet opportunities taken.
func (b *Bucket) ThreeBetPct() float64 { return ratio(b.ThreeBets, b.ThreeBetChances) }

// AggressionFactor is postflop (bets+raises)/calls. With no calls it is
// +Inf when any aggression exists and 0 otherwise.
func (b *Bucket) AggressionFactor() float64 {
	aggressive := b.Bets + b.Raises
	if b.Calls == 0 {
		if aggressive > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(aggressive) / float64(b.Calls)
}

// CBetPct is the percentage of continuation-bet opportunities taken.
func (b *Bucket) CBetPct() float64 { return ratio(b.CBets, b.CBetChances) }

// FoldToCBetPct is how often the hero folded when facing a continuation bet.
func (b *Bucket) FoldToCBetPct() float64 { return ratio(b.FoldedToCBet, b.FacedCBet) }

// WTSD is how often the hero reached showdown after seeing a flop.
func (b *Bucket) WTSD() float64 { return ratio(b.WentToShowdown, b.SawFlop) }

// WSD is how often the hero won once at showdown.
func (b *Bucket) WSD() float64 { return ratio(b.WonAtShowdown, b.WentToShowdown) }

// WWSF is how often the hero won without showdown after seeing a flop.
func (b *Bucket) WWSF() float64 { return ratio(b.WonWithoutShowdown, b.SawFlop) }

// ROI is profit over chips invested, as a percentage.
func (b *Bucket) ROI() float64 {
	if b.TotalInvested == 0 {
		return 0
	}
	return float64(b.TotalWon-b.TotalInvested) / float64(b.TotalInvested) * 100
}

// PlayerStats is the full profile: overall counters plus per-position
// breakdowns.
type PlayerStats struct {
	PlayerName string
	Overall    Bucket
	ByPosition map[handlog.Position]*Bucket

	TotalProfit  int
	BigBlindSize int
}

// NewPlayerStats returns an empty profile.
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{ByPosition: make(map[handlog.Position]*Bucket)}
}

// PositionBucket returns the bucket for a position, creating it on first use.
func (s *PlayerStats) PositionBucket(pos handlog.Position) *Bucket {
	b, ok := s.ByPosition[pos]
	if !ok {
		b = &Bucket{Position: pos}
		s.ByPosition[pos] = b
	}
	return b
}

// BBPer100 is the winrate in big blinds per hundred hands.
func (s *PlayerStats) BBPer100() float64 {
	if s.Overall.Hands == 0 || s.BigBlindSize == 0 {
		return 0
	}
	return float64(s.TotalProfit) / float64(s.BigBlindSize) / float64(s.Overall.Hands) * 100
}

// Summary flattens the headline numbers for display and export.
func (s *PlayerStats) Summary() map[string]float64 {
	return map[string]float64{
		"VPIP":           s.Overall.VPIP(),
		"PFR":            s.Overall.PFR(),
		"3-Bet%":         s.Overall.ThreeBetPct(),
		"AF":             s.Overall.AggressionFactor(),
		"C-Bet%":         s.Overall.CBetPct(),
		"Fold to C-Bet%": s.Overall.FoldToCBetPct(),
		"WTSD%":          s.Overall.WTSD(),
		"W$SD%":          s.Overall.WSD(),
		"WWSF%":          s.Overall.WWSF(),
		"ROI%":           s.Overall.ROI(),
		"BB/100":         s.BBPer100(),
		"Hands":          float64(s.Overall.Hands),
	}
}
