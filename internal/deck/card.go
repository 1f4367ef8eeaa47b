package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the symbol representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter representation of a suit (s, h, d, c)
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit resolves any of the suit encodings seen in the wild: a letter
// ("h"), a symbol ("♥"), or a spelled-out word ("Hearts").
func ParseSuit(tok string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "s", "♠", "spades":
		return Spades, nil
	case "h", "♥", "hearts":
		return Hearts, nil
	case "d", "♦", "diamonds":
		return Diamonds, nil
	case "c", "♣", "clubs":
		return Clubs, nil
	}
	return 0, fmt.Errorf("unknown suit %q", tok)
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('0' + int(r)))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank resolves a rank token. A ten may appear as "T" or "10".
func ParseRank(tok string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(tok)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("unknown rank %q", tok)
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the symbol representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Short returns the two-letter representation of a card (e.g., "As")
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Valid reports whether the card holds a real rank. The zero Card is
// used as "no card" throughout the hand records.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric value of the card for comparison.
// Aces are high (14).
func (c Card) Value() int {
	return int(c.Rank)
}

// cardToken matches one card in short notation in any encoding the log
// emits: "Ah", "10♣", "T♠". Group 1 is the rank, group 2 the suit.
var cardToken = regexp.MustCompile(`(?i)(10|[2-9TJQKA])\s*([♥♦♣♠hdcs])`)

// namedToken matches spelled-out notation such as "A of Hearts".
var namedToken = regexp.MustCompile(`(?i)(10|[2-9TJQKA])\s+of\s+(Hearts|Diamonds|Clubs|Spades)`)

// ParseCard parses a single card in short ("Ah", "T♠", "10c") or spelled-out
// ("A of Hearts") notation.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	// Try the spelled-out form first: suit words contain letters that
	// double as rank and suit tokens, so the short pattern would misread
	// them.
	m := namedToken.FindStringSubmatch(s)
	if m == nil {
		m = cardToken.FindStringSubmatch(s)
	}
	if m == nil {
		return Card{}, fmt.Errorf("cannot parse card %q", s)
	}
	rank, err := ParseRank(m[1])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(m[2])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// FindCards extracts every card mentioned in free text, normalizing all
// encodings to canonical Cards. The spelled-out "X of Suit" form is scanned
// first because suit words contain letters the short pattern would misread;
// when none is present every short token is collected. Unparseable tokens
// are skipped rather than failing the whole extraction.
func FindCards(text string) []Card {
	var cards []Card
	for _, m := range namedToken.FindAllStringSubmatch(text, -1) {
		rank, err := ParseRank(m[1])
		if err != nil {
			continue
		}
		suit, err := ParseSuit(m[2])
		if err != nil {
			continue
		}
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	if len(cards) > 0 {
		return cards
	}
	for _, m := range cardToken.FindAllStringSubmatch(text, -1) {
		rank, err := ParseRank(m[1])
		if err != nil {
			continue
		}
		suit, err := ParseSuit(m[2])
		if err != nil {
			continue
		}
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards
}
