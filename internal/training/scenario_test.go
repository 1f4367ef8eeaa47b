package training

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
)

func scenarioHand(t *testing.T, id int) *handlog.HandRecord {
	t.Helper()
	h := handlog.NewHandRecord(id)
	h.DealerSeat = 1
	h.SmallBlind = 10
	h.BigBlind = 20
	h.Players = map[int]string{1: "hero", 2: "villain", 3: "third"}
	h.Positions = map[int]handlog.Position{1: handlog.BTN, 2: handlog.SB, 3: handlog.BB}
	h.Stacks = map[int]int{1: 2000, 2: 2000, 3: 2000}
	h.HeroSeat = 1
	h.HeroName = "hero"
	cards := func(shorts ...string) []deck.Card {
		out := make([]deck.Card, 0, len(shorts))
		for _, s := range shorts {
			c, err := deck.ParseCard(s)
			require.NoError(t, err)
			out = append(out, c)
		}
		return out
	}
	h.HeroCards = cards("Ah", "Kh")
	h.FlopCards = cards("2s", "7h", "Jd")
	h.Actions = []handlog.PlayerAction{
		{Seat: 2, PlayerName: "villain", Street: handlog.Preflop, Type: handlog.PostBlind, Amount: 10, Index: 0},
		{Seat: 3, PlayerName: "third", Street: handlog.Preflop, Type: handlog.PostBlind, Amount: 20, Index: 1},
		{Seat: 1, PlayerName: "hero", Street: handlog.Preflop, Type: handlog.Raise, Amount: 60, Index: 2},
		{Seat: 2, PlayerName: "villain", Street: handlog.Preflop, Type: handlog.Fold, Index: 3},
		{Seat: 3, PlayerName: "third", Street: handlog.Preflop, Type: handlog.Call, Amount: 40, Index: 4},
		{Seat: 3, PlayerName: "third", Street: handlog.Flop, Type: handlog.Check, Index: 5},
		{Seat: 1, PlayerName: "hero", Street: handlog.Flop, Type: handlog.Bet, Amount: 90, Index: 6},
		{Seat: 3, PlayerName: "third", Street: handlog.Flop, Type: handlog.Fold, Index: 7},
	}
	return h
}

func TestExtractScenarios(t *testing.T) {
	t.Parallel()

	scenarios := extractScenarios(scenarioHand(t, 1))
	require.Len(t, scenarios, 2)

	open := scenarios[0]
	assert.Equal(t, "preflop_open", open.Type)
	assert.Equal(t, handlog.Preflop, open.DecisionStreet)
	assert.Equal(t, 2, open.DecisionIndex)
	assert.Contains(t, open.Description, "Position: BTN")
	assert.Contains(t, open.Description, "Hole cards: Ah Kh")
	assert.Contains(t, open.Description, "Your action?")
	assert.NotContains(t, open.Description, "Flop:")

	cbet := scenarios[1]
	assert.Equal(t, "flop_cbet_decision", cbet.Type)
	assert.Contains(t, cbet.Description, "Flop: 2s 7h Jd")
	assert.Contains(t, cbet.Description, "you raises 60")
}

func TestAvailableActionsFacingBet(t *testing.T) {
	t.Parallel()

	h := scenarioHand(t, 2)
	// Villain leads the flop so the hero's decision is bet-facing.
	h.Actions = append(h.Actions[:5],
		handlog.PlayerAction{Seat: 3, PlayerName: "third", Street: handlog.Flop, Type: handlog.Bet, Amount: 80, Index: 5},
		handlog.PlayerAction{Seat: 1, PlayerName: "hero", Street: handlog.Flop, Type: handlog.Call, Amount: 80, Index: 6},
	)

	scenarios := extractScenarios(h)
	require.Len(t, scenarios, 2)
	facing := scenarios[1]
	assert.Equal(t, "flop_facing_bet", facing.Type)
	assert.Equal(t, []string{"Fold", "Call 80", "Raise 200", "All-in"}, facing.AvailableActions)
}

func TestAvailableActionsUnopened(t *testing.T) {
	t.Parallel()

	scenarios := extractScenarios(scenarioHand(t, 3))
	open := scenarios[0]
	// Blinds are in the pot but nobody has bet yet.
	assert.Equal(t, "Fold", open.AvailableActions[0])
	assert.Contains(t, open.AvailableActions, "Check")
	assert.Contains(t, open.AvailableActions, "Bet 30 (pot)")
	assert.Equal(t, "All-in", open.AvailableActions[len(open.AvailableActions)-1])
}

func TestGenerateFocusAndDiversity(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	hands := []*handlog.HandRecord{scenarioHand(t, 1), scenarioHand(t, 2), scenarioHand(t, 3)}

	focused := g.Generate(hands, 10, nil, "preflop")
	require.NotEmpty(t, focused)
	for _, s := range focused {
		assert.True(t, strings.HasPrefix(s.Type, "preflop_"), "unexpected type %s", s.Type)
	}

	// With more candidates than slots the selection round-robins types.
	two := g.Generate(hands, 2, nil, "")
	require.Len(t, two, 2)
	assert.NotEqual(t, two[0].Type, two[1].Type)
}

func TestGenerateLeakPrioritization(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	hands := []*handlog.HandRecord{scenarioHand(t, 1)}
	found := []leaks.Leak{{Metric: "cbet_pct", Severity: leaks.Major}}

	scenarios := g.Generate(hands, 10, found, "")
	require.NotEmpty(t, scenarios)
	assert.Equal(t, "flop_cbet_decision", scenarios[0].Type)
}

func TestHandsWithoutHeroYieldNothing(t *testing.T) {
	t.Parallel()

	h := scenarioHand(t, 4)
	h.HeroSeat = 0
	assert.Empty(t, extractScenarios(h))

	g := NewGenerator()
	assert.Nil(t, g.Generate([]*handlog.HandRecord{h}, 5, nil, ""))
}
