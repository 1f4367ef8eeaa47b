package phh

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
)

// FromRecord converts a reconstructed hand into its PHH representation.
// Seat numbers from the source log are preserved in the seats array while
// players are re-ordered into betting order.
func FromRecord(h *handlog.HandRecord) HandHistory {
	order := bettingOrder(h)
	posOf := make(map[int]int, len(order))
	for i, seat := range order {
		posOf[seat] = i
	}

	hand := HandHistory{
		Variant:   "NT",
		SeatCount: len(order),
		MinBet:    h.BigBlind,
		HandID:    fmt.Sprintf("%d", h.HandID),
		Timestamp: h.Timestamp,
	}
	if !h.Timestamp.IsZero() {
		ts := h.Timestamp.UTC()
		hand.Time = ts.Format("15:04:05")
		hand.Year = ts.Year()
		hand.Month = int(ts.Month())
		hand.Day = ts.Day()
	}

	hand.Seats = append(hand.Seats, order...)
	hand.Antes = make([]int, len(order))
	hand.BlindsOrStraddles = make([]int, len(order))
	hand.StartingStacks = make([]int, len(order))
	hand.FinishingStacks = make([]int, len(order))
	hand.Winnings = make([]int, len(order))
	for i, seat := range order {
		hand.Players = append(hand.Players, h.Players[seat])
		hand.StartingStacks[i] = h.Stacks[seat]
		hand.Winnings[i] = h.Winners[seat]
		hand.FinishingStacks[i] = h.Stacks[seat] - h.NetContribution(seat) + h.Winners[seat]
	}
	for _, a := range h.Actions {
		if a.Type == handlog.PostBlind {
			if i, ok := posOf[a.Seat]; ok {
				hand.BlindsOrStraddles[i] += a.Amount
			}
		}
	}

	hand.Actions = buildActions(h, posOf, order)
	return hand
}

// bettingOrder returns seats sorted into acting order: small blind first,
// button last. Heads-up the button is the small blind and leads.
func bettingOrder(h *handlog.HandRecord) []int {
	seats := make([]int, 0, len(h.Players))
	for seat := range h.Players {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	dealerAt := -1
	for i, seat := range seats {
		if seat == h.DealerSeat {
			dealerAt = i
			break
		}
	}
	if dealerAt < 0 {
		return seats
	}
	if len(seats) == 2 {
		return []int{seats[dealerAt], seats[(dealerAt+1)%2]}
	}
	ordered := make([]int, 0, len(seats))
	for i := 1; i <= len(seats); i++ {
		ordered = append(ordered, seats[(dealerAt+i)%len(seats)])
	}
	return ordered
}

func buildActions(h *handlog.HandRecord, posOf map[int]int, order []int) []string {
	actions := make([]string, 0, len(h.Actions)+len(order)+4)

	for i, seat := range order {
		run := "????"
		if seat == h.HeroSeat && len(h.HeroCards) == 2 {
			run = cardRun(h.HeroCards)
		}
		actions = append(actions, fmt.Sprintf("d dh p%d %s", i+1, run))
	}

	contrib := make(map[int]int, len(order))
	for _, a := range h.Actions {
		if a.Type == handlog.PostBlind {
			contrib[a.Seat] += a.Amount
		}
	}

	streets := []struct {
		street handlog.Street
		board  []deck.Card
	}{
		{handlog.Preflop, nil},
		{handlog.Flop, h.FlopCards},
		{handlog.Turn, boardCard(h.TurnCard)},
		{handlog.River, boardCard(h.RiverCard)},
	}
	for _, st := range streets {
		if st.street != handlog.Preflop {
			if len(st.board) == 0 {
				break
			}
			actions = append(actions, fmt.Sprintf("d db %s", cardRun(st.board)))
			contrib = make(map[int]int, len(order))
		}
		for _, a := range h.ActionsOnStreet(st.street) {
			line, ok := formatAction(a, posOf, contrib)
			if ok {
				actions = append(actions, line)
			}
		}
	}

	shown := make([]int, 0, len(h.ShownCards))
	for seat := range h.ShownCards {
		shown = append(shown, seat)
	}
	sort.Ints(shown)
	for _, seat := range shown {
		i, ok := posOf[seat]
		if !ok || len(h.ShownCards[seat]) == 0 {
			continue
		}
		actions = append(actions, fmt.Sprintf("p%d sm %s", i+1, cardRun(h.ShownCards[seat])))
	}
	return actions
}

// formatAction renders one wagering decision as a PHH action token. The
// cbr amount is the player's total bet for the street, so incremental
// call and raise amounts are folded into a running contribution.
func formatAction(a handlog.PlayerAction, posOf map[int]int, contrib map[int]int) (string, bool) {
	i, ok := posOf[a.Seat]
	if !ok {
		return "", false
	}
	player := fmt.Sprintf("p%d", i+1)
	switch a.Type {
	case handlog.Fold:
		return player + " f", true
	case handlog.Check:
		return player + " cc", true
	case handlog.Call:
		contrib[a.Seat] += a.Amount
		return player + " cc", true
	case handlog.Bet, handlog.Raise:
		contrib[a.Seat] += a.Amount
		return fmt.Sprintf("%s cbr %d", player, contrib[a.Seat]), true
	default:
		// Blind posts live in blinds_or_straddles.
		return "", false
	}
}

func cardRun(cards []deck.Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.Short())
	}
	return sb.String()
}

func boardCard(c deck.Card) []deck.Card {
	if !c.Valid() {
		return nil
	}
	return []deck.Card{c}
}
