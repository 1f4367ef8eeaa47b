// Package training extracts decision points from real hands and turns
// them into practice scenarios.
package training

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
)

// Scenario is a single training exercise built from a real hand, frozen at
// the point where the hero has to act.
type Scenario struct {
	Hand             *handlog.HandRecord
	DecisionStreet   handlog.Street
	DecisionIndex    int // index into Hand.Actions where the hero decides
	Type             string
	Description      string
	AvailableActions []string
}

// Generator builds scenarios from hand histories. Detected leaks steer the
// selection toward the player's weak spots.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns up to count scenarios drawn from hands. When focus is
// non-empty only scenario types containing it are considered (falling back
// to the full pool if nothing matches).
func (g *Generator) Generate(hands []*handlog.HandRecord, count int, found []leaks.Leak, focus string) []Scenario {
	var candidates []Scenario
	for _, hand := range hands {
		candidates = append(candidates, extractScenarios(hand)...)
	}
	if len(candidates) == 0 {
		return nil
	}

	if focus != "" {
		var focused []Scenario
		needle := strings.ToLower(focus)
		for _, s := range candidates {
			if strings.Contains(s.Type, needle) {
				focused = append(focused, s)
			}
		}
		if len(focused) > 0 {
			candidates = focused
		}
	}

	if len(found) > 0 {
		prioritizeByLeaks(candidates, found)
	}
	return selectDiverse(candidates, count)
}

func extractScenarios(hand *handlog.HandRecord) []Scenario {
	if hand.HeroSeat == 0 {
		return nil
	}

	var scenarios []Scenario
	for i, action := range hand.Actions {
		if action.Seat != hand.HeroSeat || action.Type == handlog.PostBlind {
			continue
		}
		scenarioType := classifyDecision(hand, action, i)
		if scenarioType == "" {
			continue
		}
		scenarios = append(scenarios, Scenario{
			Hand:             hand,
			DecisionStreet:   action.Street,
			DecisionIndex:    i,
			Type:             scenarioType,
			Description:      buildDescription(hand, action.Street, i),
			AvailableActions: availableActions(hand, action, i),
		})
	}
	return scenarios
}

// classifyDecision names the kind of spot the hero is in, based on what
// happened on the street before the hero acts.
func classifyDecision(hand *handlog.HandRecord, action handlog.PlayerAction, index int) string {
	var street []handlog.PlayerAction
	for _, a := range hand.Actions[:index] {
		if a.Street == action.Street && a.Type != handlog.PostBlind {
			street = append(street, a)
		}
	}
	aggression := 0
	limpers := 0
	for _, a := range street {
		switch {
		case a.Type.IsAggressive():
			aggression++
		case a.Type == handlog.Call:
			limpers++
		}
	}

	switch action.Street {
	case handlog.Preflop:
		switch {
		case aggression == 0 && limpers > 0:
			return "preflop_vs_limpers"
		case aggression == 0:
			return "preflop_open"
		case aggression == 1:
			return "preflop_vs_raise"
		default:
			return "preflop_vs_3bet"
		}
	case handlog.Flop:
		heroRaisedPreflop := false
		for _, a := range hand.ActionsOnStreet(handlog.Preflop) {
			if a.Seat == hand.HeroSeat && a.Type.IsAggressive() {
				heroRaisedPreflop = true
			}
		}
		switch {
		case aggression == 0 && heroRaisedPreflop:
			return "flop_cbet_decision"
		case aggression > 0:
			return "flop_facing_bet"
		default:
			return "flop_check_decision"
		}
	case handlog.Turn:
		if aggression > 0 {
			return "turn_facing_bet"
		}
		return "turn_bet_decision"
	case handlog.River:
		if aggression > 0 {
			return "river_facing_bet"
		}
		return "river_bet_decision"
	}
	return ""
}

func buildDescription(hand *handlog.HandRecord, upTo handlog.Street, index int) string {
	var lines []string

	pos := "?"
	if p := hand.HeroPosition(); p != handlog.NoPosition {
		pos = p.String()
	}
	lines = append(lines, fmt.Sprintf("Position: %s  |  Players: %d  |  Blinds: %d/%d",
		pos, len(hand.Players), hand.SmallBlind, hand.BigBlind))

	if len(hand.HeroCards) == 2 {
		pct := deck.HandPercentile(hand.HeroCards)
		lines = append(lines, fmt.Sprintf("Hole cards: %s (top %.0f%% starting hand)",
			cardList(hand.HeroCards), (1-pct)*100))
	} else if len(hand.HeroCards) > 0 {
		lines = append(lines, "Hole cards: "+cardList(hand.HeroCards))
	}
	if stack, ok := hand.Stacks[hand.HeroSeat]; ok && hand.BigBlind > 0 {
		lines = append(lines, fmt.Sprintf("Stack: %d (%d BB)", stack, stack/hand.BigBlind))
	}

	if upTo >= handlog.Flop && len(hand.FlopCards) > 0 {
		lines = append(lines, "Flop: "+cardList(hand.FlopCards))
	}
	if upTo >= handlog.Turn && hand.TurnCard.Valid() {
		lines = append(lines, "Turn: "+hand.TurnCard.Short())
	}
	if upTo >= handlog.River && hand.RiverCard.Valid() {
		lines = append(lines, "River: "+hand.RiverCard.Short())
	}

	lines = append(lines, "", "Action so far:")
	pot := 0
	for _, a := range hand.Actions[:index] {
		pot += a.Amount
		if a.Type == handlog.PostBlind {
			continue
		}
		name := a.PlayerName
		if a.Seat == hand.HeroSeat {
			name = "you"
		}
		entry := fmt.Sprintf("  [%s] %s %ss", strings.ToUpper(a.Street.String()), name, a.Type)
		if a.Amount > 0 {
			entry += fmt.Sprintf(" %d", a.Amount)
		}
		lines = append(lines, entry)
	}

	lines = append(lines, "", fmt.Sprintf("Pot: ~%d", pot), "", "Your action?")
	return strings.Join(lines, "\n")
}

func availableActions(hand *handlog.HandRecord, action handlog.PlayerAction, index int) []string {
	lastBet := 0
	pot := 0
	for _, a := range hand.Actions[:index] {
		pot += a.Amount
		if a.Street == action.Street && a.Type.IsAggressive() {
			lastBet = a.Amount
		}
	}

	actions := []string{"Fold"}
	if lastBet > 0 {
		actions = append(actions,
			fmt.Sprintf("Call %d", lastBet),
			fmt.Sprintf("Raise %d", lastBet*5/2),
		)
	} else {
		actions = append(actions, "Check")
		if pot > 0 {
			actions = append(actions,
				fmt.Sprintf("Bet %d (1/3 pot)", pot/3),
				fmt.Sprintf("Bet %d (2/3 pot)", pot*2/3),
				fmt.Sprintf("Bet %d (pot)", pot),
			)
		} else if hand.BigBlind > 0 {
			actions = append(actions, fmt.Sprintf("Bet %d", hand.BigBlind*5/2))
		}
	}
	return append(actions, "All-in")
}

// prioritizeByLeaks sorts scenarios so the ones exercising detected leak
// areas come first.
func prioritizeByLeaks(candidates []Scenario, found []leaks.Leak) {
	areas := make(map[string]bool)
	for _, leak := range found {
		switch leak.Metric {
		case "vpip", "pfr", "vpip_pfr_gap":
			areas["preflop"] = true
		case "three_bet_pct":
			areas["3bet"] = true
		case "cbet_pct":
			areas["cbet"] = true
		case "fold_to_cbet":
			areas["facing"] = true
		case "af":
			areas["bet_decision"] = true
		case "wtsd", "wsd":
			areas["river"] = true
		}
	}
	score := func(s Scenario) int {
		n := 0
		for area := range areas {
			if strings.Contains(s.Type, area) {
				n++
			}
		}
		return n
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
}

// selectDiverse round-robins across scenario types so a session is not ten
// copies of the same spot.
func selectDiverse(candidates []Scenario, count int) []Scenario {
	if len(candidates) <= count {
		return candidates
	}

	byType := make(map[string][]Scenario)
	var order []string
	for _, s := range candidates {
		if _, ok := byType[s.Type]; !ok {
			order = append(order, s.Type)
		}
		byType[s.Type] = append(byType[s.Type], s)
	}

	selected := make([]Scenario, 0, count)
	for len(selected) < count {
		progress := false
		for _, t := range order {
			if len(byType[t]) == 0 {
				continue
			}
			selected = append(selected, byType[t][0])
			byType[t] = byType[t][1:]
			progress = true
			if len(selected) >= count {
				break
			}
		}
		if !progress {
			break
		}
	}
	return selected
}

func cardList(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
