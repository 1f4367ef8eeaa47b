// Package handlog reconstructs structured hand records from the free-form
// textual logs the poker platform produces. The raw logs are adversarial:
// two incompatible dialects, newest-entry-first ordering, wager amounts
// reported as per-street running totals, and showdown lines that can appear
// after the hand they belong to has already ended. Everything downstream
// (statistics, leak detection, review) depends on this package getting the
// reconstruction right.
package handlog

import (
	"time"

	"github.com/mlu11/poker-adviser/internal/deck"
)

// Street represents a betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "?"
	}
}

// ParseStreet is the inverse of Street.String, used when loading stored hands.
func ParseStreet(s string) Street {
	switch s {
	case "flop":
		return Flop
	case "turn":
		return Turn
	case "river":
		return River
	default:
		return Preflop
	}
}

// ActionType represents a player's wagering decision
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	PostBlind
)

// String returns the string representation of an action type
func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case PostBlind:
		return "post_blind"
	default:
		return "?"
	}
}

// ParseActionType is the inverse of ActionType.String.
func ParseActionType(s string) ActionType {
	switch s {
	case "check":
		return Check
	case "call":
		return Call
	case "bet":
		return Bet
	case "raise":
		return Raise
	case "post_blind":
		return PostBlind
	default:
		return Fold
	}
}

// IsAggressive returns true for bets and raises
func (a ActionType) IsAggressive() bool {
	return a == Bet || a == Raise
}

// IsVoluntary returns true for actions that put money in by choice
func (a ActionType) IsVoluntary() bool {
	return a != PostBlind && a != Fold
}

// PlayerAction is one wagering or fold decision within a hand. Amount is
// always the incremental chips contributed by this action, never the
// cumulative street total the raw log reports.
type PlayerAction struct {
	Seat       int
	PlayerName string
	Street     Street
	Type       ActionType
	Amount     int
	AllIn      bool
	Index      int // position in the hand's chronological action sequence
}

// HandRecord is the reconstructed record of one played hand. It is built
// incrementally while the hand's log segment is consumed and must be treated
// as immutable once the segmenter has finalized it.
type HandRecord struct {
	HandID    int
	SessionID string // assigned when the hand is saved to a store
	Timestamp time.Time

	DealerSeat int
	SmallBlind int
	BigBlind   int

	Players   map[int]string   // seat -> display name, stable for this hand only
	Positions map[int]Position // seat -> table position
	Stacks    map[int]int      // seat -> starting stack

	HeroSeat  int // 0 when the hero could not be determined
	HeroName  string
	HeroCards []deck.Card

	FlopCards []deck.Card
	TurnCard  deck.Card // zero Card when the turn was never dealt
	RiverCard deck.Card

	Actions    []PlayerAction
	ShownCards map[int][]deck.Card
	Winners    map[int]int // seat -> amount collected from the pot
	Uncalled   map[int]int // seat -> amount returned uncalled

	PotTotal       int
	WentToShowdown bool

	// Flagged marks hands whose pot failed reconciliation; downstream
	// consumers may exclude them from statistics.
	Flagged bool
}

// NewHandRecord creates an empty accumulator for the given hand id.
func NewHandRecord(id int) *HandRecord {
	return &HandRecord{
		HandID:     id,
		Players:    make(map[int]string),
		Positions:  make(map[int]Position),
		Stacks:     make(map[int]int),
		ShownCards: make(map[int][]deck.Card),
		Winners:    make(map[int]int),
		Uncalled:   make(map[int]int),
	}
}

// Board returns the dealt community cards in order.
func (h *HandRecord) Board() []deck.Card {
	board := append([]deck.Card(nil), h.FlopCards...)
	if h.TurnCard.Valid() {
		board = append(board, h.TurnCard)
	}
	if h.RiverCard.Valid() {
		board = append(board, h.RiverCard)
	}
	return board
}

// ActionsOnStreet returns the hand's actions for one street, in log order.
func (h *HandRecord) ActionsOnStreet(street Street) []PlayerAction {
	var out []PlayerAction
	for _, a := range h.Actions {
		if a.Street == street {
			out = append(out, a)
		}
	}
	return out
}

// SeatOf returns the seat a named player occupies this hand, or 0.
func (h *HandRecord) SeatOf(name string) int {
	for seat, n := range h.Players {
		if n == name {
			return seat
		}
	}
	return 0
}

// NetContribution is the seat's true contribution to the pot: the sum of its
// incremental action amounts minus anything returned to it uncalled.
func (h *HandRecord) NetContribution(seat int) int {
	total := 0
	for _, a := range h.Actions {
		if a.Seat == seat && a.Amount > 0 {
			total += a.Amount
		}
	}
	total -= h.Uncalled[seat]
	if total < 0 {
		total = 0
	}
	return total
}

// TotalContributed sums net contributions across every seat.
func (h *HandRecord) TotalContributed() int {
	total := 0
	for seat := range h.Players {
		total += h.NetContribution(seat)
	}
	return total
}

// HeroWon reports whether the hero collected any part of the pot.
func (h *HandRecord) HeroWon() bool {
	if h.HeroSeat == 0 {
		return false
	}
	_, ok := h.Winners[h.HeroSeat]
	return ok
}

// HeroPosition returns the hero's position this hand, or NoPosition.
func (h *HandRecord) HeroPosition() Position {
	if h.HeroSeat == 0 {
		return NoPosition
	}
	return h.Positions[h.HeroSeat]
}

// SawFlop reports whether the given seat was still in the hand when the
// flop was dealt.
func (h *HandRecord) SawFlop(seat int) bool {
	if len(h.FlopCards) == 0 {
		return false
	}
	for _, a := range h.ActionsOnStreet(Preflop) {
		if a.Seat == seat && a.Type == Fold {
			return false
		}
	}
	return true
}
