// Package showdown ranks made hands so reviews can name what a player
// actually held at the end of a hand.
package showdown

import (
	"sort"

	"github.com/mlu11/poker-adviser/internal/deck"
)

// Category orders made hands from worst to best.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case RoyalFlush:
		return "royal flush"
	default:
		return "high card"
	}
}

// Hand is an evaluated holding. Tiebreaks order hands within a category,
// most significant value first.
type Hand struct {
	Category  Category
	Tiebreaks []int
}

// Compare returns a negative number if h loses to other, zero on a chop,
// positive if h wins.
func (h Hand) Compare(other Hand) int {
	if h.Category != other.Category {
		return int(h.Category) - int(other.Category)
	}
	for i := 0; i < len(h.Tiebreaks) && i < len(other.Tiebreaks); i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			return h.Tiebreaks[i] - other.Tiebreaks[i]
		}
	}
	return 0
}

// Evaluate returns the best five-card hand makeable from 2..7 cards.
// Invalid cards are ignored; fewer than five usable cards are ranked on
// pairs and high cards alone.
func Evaluate(cards []deck.Card) Hand {
	usable := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if c.Valid() {
			usable = append(usable, c)
		}
	}
	if len(usable) <= 5 {
		return evaluateFive(usable)
	}

	best := Hand{Category: -1}
	pick := make([]deck.Card, 5)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == 5 {
			if h := evaluateFive(pick); best.Category < 0 || h.Compare(best) > 0 {
				best = h
			}
			return
		}
		for i := start; i <= len(usable)-(5-depth); i++ {
			pick[depth] = usable[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
	return best
}

func evaluateFive(cards []deck.Card) Hand {
	if len(cards) == 0 {
		return Hand{Category: HighCard}
	}
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	flush := len(cards) == 5
	for i := 1; i < len(cards) && flush; i++ {
		flush = cards[i].Suit == cards[0].Suit
	}
	straightHigh := straightHighCard(values)

	if flush && straightHigh > 0 {
		if straightHigh == 14 {
			return Hand{Category: RoyalFlush, Tiebreaks: []int{14}}
		}
		return Hand{Category: StraightFlush, Tiebreaks: []int{straightHigh}}
	}

	// Group by value: quads, trips, pairs.
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	type group struct{ count, value int }
	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{n, v})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	tiebreaks := make([]int, len(groups))
	for i, g := range groups {
		tiebreaks[i] = g.value
	}

	switch {
	case groups[0].count == 4:
		return Hand{Category: FourOfAKind, Tiebreaks: tiebreaks}
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		return Hand{Category: FullHouse, Tiebreaks: tiebreaks}
	case flush:
		return Hand{Category: Flush, Tiebreaks: values}
	case straightHigh > 0:
		return Hand{Category: Straight, Tiebreaks: []int{straightHigh}}
	case groups[0].count == 3:
		return Hand{Category: ThreeOfAKind, Tiebreaks: tiebreaks}
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		return Hand{Category: TwoPair, Tiebreaks: tiebreaks}
	case groups[0].count == 2:
		return Hand{Category: Pair, Tiebreaks: tiebreaks}
	default:
		return Hand{Category: HighCard, Tiebreaks: values}
	}
}

// straightHighCard returns the top card of a five-card straight, or 0.
// The wheel (A-2-3-4-5) counts with a high card of five.
func straightHighCard(sorted []int) int {
	if len(sorted) != 5 {
		return 0
	}
	distinct := true
	for i := 1; i < 5; i++ {
		if sorted[i] == sorted[i-1] {
			distinct = false
		}
	}
	if !distinct {
		return 0
	}
	if sorted[0]-sorted[4] == 4 {
		return sorted[0]
	}
	if sorted[0] == 14 && sorted[1] == 5 && sorted[1]-sorted[4] == 3 {
		return 5
	}
	return 0
}
