package handlog

import (
	"time"

	"github.com/mlu11/poker-adviser/internal/deck"
)

// EventKind identifies a classified log event
type EventKind string

// EventKind constants for every line shape the classifier recognizes
const (
	KindUnrecognized EventKind = "unrecognized"
	KindHandStart    EventKind = "hand_start"
	KindHandEnd      EventKind = "hand_end"
	KindSeatStacks   EventKind = "seat_stacks"
	KindBlindsChange EventKind = "blinds_change"
	KindPostBlind    EventKind = "post_blind"
	KindAction       EventKind = "action"
	KindBoard        EventKind = "board"
	KindHeroCards    EventKind = "hero_cards"
	KindShowCards    EventKind = "show_cards"
	KindPotAward     EventKind = "pot_award"
	KindUncalledBet  EventKind = "uncalled_bet"
)

// Event is one typed line of the log after classification
type Event interface {
	Kind() EventKind
}

// UnrecognizedEvent is emitted for any line no pattern matched. It is never
// fatal; the segmenter counts these so callers can judge parse quality.
type UnrecognizedEvent struct {
	Line string
}

func (UnrecognizedEvent) Kind() EventKind { return KindUnrecognized }

// HandStartEvent marks the opening of a hand segment
type HandStartEvent struct {
	HandID int
	Dealer string // dealer display name, empty for very old logs
	At     time.Time
}

func (HandStartEvent) Kind() EventKind { return KindHandStart }

// HandEndEvent marks the closing of a hand segment
type HandEndEvent struct {
	HandID int
}

func (HandEndEvent) Kind() EventKind { return KindHandEnd }

// SeatStack is one entry of a stack-listing row
type SeatStack struct {
	Seat  int
	Name  string
	Stack int
}

// SeatStacksEvent carries the per-hand stack listing. In the tabular dialect
// this is also the only source of seat numbers for action rows.
type SeatStacksEvent struct {
	Seats []SeatStack
}

func (SeatStacksEvent) Kind() EventKind { return KindSeatStacks }

// BlindsChangeEvent reports a table-level blind size change
type BlindsChangeEvent struct {
	Small int
	Big   int
}

func (BlindsChangeEvent) Kind() EventKind { return KindBlindsChange }

// PostBlindEvent is a small/big/missing blind or straddle post. Unlike
// betting actions the posted amount is already incremental.
type PostBlindEvent struct {
	Name   string
	Seat   int    // 0 in the tabular dialect, resolved later by name
	Label  string // "small blind", "big blind", "missing small blind", "missing big blind" or "straddle"
	Amount int
}

func (PostBlindEvent) Kind() EventKind { return KindPostBlind }

// ActionEvent is a fold, check, call, bet or raise. For call/bet/raise the
// Amount is the CUMULATIVE total the player has contributed on the current
// street, exactly as the log states it; the amount reconstructor converts it
// to an increment.
type ActionEvent struct {
	Name   string
	Seat   int
	Type   ActionType
	Amount int
	AllIn  bool
}

func (ActionEvent) Kind() EventKind { return KindAction }

// BoardEvent reports community cards for one street
type BoardEvent struct {
	Street Street
	Cards  []deck.Card
}

func (BoardEvent) Kind() EventKind { return KindBoard }

// HeroCardsEvent is the "Your hand is ..." line addressed to the log's owner
type HeroCardsEvent struct {
	Cards []deck.Card
}

func (HeroCardsEvent) Kind() EventKind { return KindHeroCards }

// ShowCardsEvent is a voluntary reveal at or after showdown. The old dialect
// emits one card per line, so Cards may hold a single card that must be
// appended to an earlier reveal by the same seat.
type ShowCardsEvent struct {
	Name    string
	Seat    int
	Cards   []deck.Card
	Partial bool // single-card reveal line, append rather than replace
}

func (ShowCardsEvent) Kind() EventKind { return KindShowCards }

// PotAwardEvent reports chips collected from the pot. ResultLine marks the
// secondary "wins/gained" phrasing, which only applies when the seat has no
// collected entry yet and never contributes to the pot total.
type PotAwardEvent struct {
	Name       string
	Seat       int
	Amount     int
	ResultLine bool
}

func (PotAwardEvent) Kind() EventKind { return KindPotAward }

// UncalledBetEvent reports a wager returned to its bettor because nobody
// called. It is not a player action and reduces the seat's net contribution.
type UncalledBetEvent struct {
	Name   string
	Amount int
}

func (UncalledBetEvent) Kind() EventKind { return KindUncalledBet }
