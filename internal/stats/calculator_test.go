package stats

import (
	"testing"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHand builds a three-handed hand with the hero in seat 1 on the button.
func testHand(id int) *handlog.HandRecord {
	h := handlog.NewHandRecord(id)
	h.Players = map[int]string{1: "hero", 2: "sb", 3: "bb"}
	h.Positions = map[int]handlog.Position{
		1: handlog.BTN,
		2: handlog.SB,
		3: handlog.BB,
	}
	h.HeroSeat = 1
	h.HeroName = "hero"
	h.SmallBlind = 10
	h.BigBlind = 20
	return h
}

func addAction(h *handlog.HandRecord, seat int, street handlog.Street, typ handlog.ActionType, amount int) {
	h.Actions = append(h.Actions, handlog.PlayerAction{
		Seat:       seat,
		PlayerName: h.Players[seat],
		Street:     street,
		Type:       typ,
		Amount:     amount,
		Index:      len(h.Actions),
	})
}

func dealFlop(h *handlog.HandRecord) {
	for _, s := range []string{"2s", "7h", "Jd"} {
		c, _ := deck.ParseCard(s)
		h.FlopCards = append(h.FlopCards, c)
	}
}

func TestCalculateVPIPAndPFR(t *testing.T) {
	t.Parallel()

	// Hand 1: hero open-raises. Hand 2: hero folds preflop.
	h1 := testHand(1)
	addAction(h1, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h1, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h1, 1, handlog.Preflop, handlog.Raise, 50)
	addAction(h1, 2, handlog.Preflop, handlog.Fold, 0)
	addAction(h1, 3, handlog.Preflop, handlog.Fold, 0)
	h1.Winners = map[int]int{1: 30}

	h2 := testHand(2)
	addAction(h2, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h2, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h2, 1, handlog.Preflop, handlog.Fold, 0)

	s := NewCalculator().Calculate([]*handlog.HandRecord{h1, h2}, "")

	assert.Equal(t, "hero", s.PlayerName)
	assert.Equal(t, 2, s.Overall.Hands)
	assert.InDelta(t, 50.0, s.Overall.VPIP(), 0.001)
	assert.InDelta(t, 50.0, s.Overall.PFR(), 0.001)

	// Positional split: both hands were played from the button.
	btn := s.ByPosition[handlog.BTN]
	require.NotNil(t, btn)
	assert.Equal(t, 2, btn.Hands)
	assert.Equal(t, 1, btn.PFRHands)
}

func TestBigBlindCheckIsNotVPIP(t *testing.T) {
	t.Parallel()

	h := testHand(1)
	h.HeroSeat = 3
	h.HeroName = "bb"
	addAction(h, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h, 1, handlog.Preflop, handlog.Fold, 0)
	addAction(h, 2, handlog.Preflop, handlog.Call, 10)
	// BB checks the option, logged as a zero-amount call by some exports.
	addAction(h, 3, handlog.Preflop, handlog.Call, 0)

	s := NewCalculator().Calculate([]*handlog.HandRecord{h}, "bb")
	assert.Equal(t, 0, s.Overall.VPIPHands)
}

func TestThreeBet(t *testing.T) {
	t.Parallel()

	// Villain opens, hero re-raises.
	h1 := testHand(1)
	addAction(h1, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h1, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h1, 2, handlog.Preflop, handlog.Raise, 60)
	addAction(h1, 1, handlog.Preflop, handlog.Raise, 180)

	// Villain opens, hero calls: opportunity not taken.
	h2 := testHand(2)
	addAction(h2, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h2, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h2, 2, handlog.Preflop, handlog.Raise, 60)
	addAction(h2, 1, handlog.Preflop, handlog.Call, 60)

	// Hero opens first in: no opportunity.
	h3 := testHand(3)
	addAction(h3, 2, handlog.Preflop, handlog.PostBlind, 10)
	addAction(h3, 3, handlog.Preflop, handlog.PostBlind, 20)
	addAction(h3, 1, handlog.Preflop, handlog.Raise, 50)

	s := NewCalculator().Calculate([]*handlog.HandRecord{h1, h2, h3}, "hero")
	assert.Equal(t, 2, s.Overall.ThreeBetChances)
	assert.Equal(t, 1, s.Overall.ThreeBets)
	assert.InDelta(t, 50.0, s.Overall.ThreeBetPct(), 0.001)
}

func TestCBetMadeAndFaced(t *testing.T) {
	t.Parallel()

	// Hero raises preflop and bets the flop first: c-bet made.
	h1 := testHand(1)
	addAction(h1, 1, handlog.Preflop, handlog.Raise, 50)
	addAction(h1, 3, handlog.Preflop, handlog.Call, 30)
	dealFlop(h1)
	addAction(h1, 3, handlog.Flop, handlog.Check, 0)
	addAction(h1, 1, handlog.Flop, handlog.Bet, 60)

	// Villain raises preflop, bets the flop, hero folds: fold to c-bet.
	h2 := testHand(2)
	addAction(h2, 3, handlog.Preflop, handlog.Raise, 60)
	addAction(h2, 1, handlog.Preflop, handlog.Call, 60)
	dealFlop(h2)
	addAction(h2, 3, handlog.Flop, handlog.Bet, 80)
	addAction(h2, 1, handlog.Flop, handlog.Fold, 0)

	s := NewCalculator().Calculate([]*handlog.HandRecord{h1, h2}, "hero")
	assert.Equal(t, 1, s.Overall.CBetChances)
	assert.Equal(t, 1, s.Overall.CBets)
	assert.Equal(t, 1, s.Overall.FacedCBet)
	assert.Equal(t, 1, s.Overall.FoldedToCBet)
	assert.InDelta(t, 100.0, s.Overall.FoldToCBetPct(), 0.001)
}

func TestShowdownCounters(t *testing.T) {
	t.Parallel()

	h := testHand(1)
	addAction(h, 1, handlog.Preflop, handlog.Raise, 50)
	addAction(h, 3, handlog.Preflop, handlog.Call, 30)
	dealFlop(h)
	addAction(h, 3, handlog.Flop, handlog.Check, 0)
	addAction(h, 1, handlog.Flop, handlog.Check, 0)
	h.WentToShowdown = true
	h.Winners = map[int]int{1: 110}

	s := NewCalculator().Calculate([]*handlog.HandRecord{h}, "hero")
	assert.Equal(t, 1, s.Overall.SawFlop)
	assert.Equal(t, 1, s.Overall.WentToShowdown)
	assert.Equal(t, 1, s.Overall.WonAtShowdown)
	assert.InDelta(t, 100.0, s.Overall.WTSD(), 0.001)
	assert.InDelta(t, 100.0, s.Overall.WSD(), 0.001)
}

func TestProfitAndWinrate(t *testing.T) {
	t.Parallel()

	h := testHand(1)
	addAction(h, 1, handlog.Preflop, handlog.Raise, 40)
	addAction(h, 3, handlog.Preflop, handlog.Call, 20)
	h.Winners = map[int]int{1: 100}

	s := NewCalculator().Calculate([]*handlog.HandRecord{h}, "hero")
	assert.Equal(t, 60, s.TotalProfit)
	assert.Equal(t, 100, s.Overall.TotalWon)
	assert.Equal(t, 40, s.Overall.TotalInvested)
	assert.InDelta(t, 150.0, s.Overall.ROI(), 0.001)

	// 60 chips at a 20 blind over one hand is 300 bb per hundred.
	assert.InDelta(t, 300.0, s.BBPer100(), 0.001)
}

func TestAggressionFactorEdges(t *testing.T) {
	t.Parallel()

	b := &Bucket{Bets: 2, Raises: 1, Calls: 0}
	assert.True(t, b.AggressionFactor() > 1e9)

	b = &Bucket{Calls: 0}
	assert.Zero(t, b.AggressionFactor())

	b = &Bucket{Bets: 3, Calls: 2}
	assert.InDelta(t, 1.5, b.AggressionFactor(), 0.001)
}

func TestHandsWithoutHeroSkipped(t *testing.T) {
	t.Parallel()

	h := testHand(1)
	h.HeroSeat = 0
	h.HeroName = ""
	h.Players = map[int]string{4: "a", 5: "b"}

	s := NewCalculator().Calculate([]*handlog.HandRecord{h}, "")
	assert.Zero(t, s.Overall.Hands)
}
