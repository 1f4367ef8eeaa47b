package showdown

import (
	"testing"

	"github.com/mlu11/poker-adviser/internal/deck"
)

func cards(t *testing.T, shorts ...string) []deck.Card {
	t.Helper()
	out := make([]deck.Card, 0, len(shorts))
	for _, s := range shorts {
		c, err := deck.ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		out = append(out, c)
	}
	return out
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want Category
	}{
		{"high card", []string{"Ah", "Kd", "9s", "5c", "2h"}, HighCard},
		{"pair", []string{"Ah", "Ad", "9s", "5c", "2h"}, Pair},
		{"two pair", []string{"Ah", "Ad", "9s", "9c", "2h"}, TwoPair},
		{"trips", []string{"Ah", "Ad", "As", "9c", "2h"}, ThreeOfAKind},
		{"straight", []string{"9h", "8d", "7s", "6c", "5h"}, Straight},
		{"wheel", []string{"Ah", "2d", "3s", "4c", "5h"}, Straight},
		{"flush", []string{"Ah", "Jh", "9h", "5h", "2h"}, Flush},
		{"full house", []string{"Ah", "Ad", "As", "9c", "9h"}, FullHouse},
		{"quads", []string{"Ah", "Ad", "As", "Ac", "9h"}, FourOfAKind},
		{"straight flush", []string{"9h", "8h", "7h", "6h", "5h"}, StraightFlush},
		{"royal flush", []string{"Ah", "Kh", "Qh", "Jh", "Th"}, RoyalFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(cards(t, tt.in...))
			if got.Category != tt.want {
				t.Fatalf("got %s, want %s", got.Category, tt.want)
			}
		})
	}
}

func TestEvaluatePicksBestOfSeven(t *testing.T) {
	t.Parallel()

	// Hole cards plus board: the board pair plus hole pair make two pair,
	// but the flush on the board wins.
	hand := Evaluate(cards(t, "Ah", "Ac", "Kh", "Qh", "Jh", "9h", "Kd"))
	if hand.Category != Flush {
		t.Fatalf("got %s, want flush", hand.Category)
	}
	if hand.Tiebreaks[0] != 14 {
		t.Fatalf("flush should be ace high, got %v", hand.Tiebreaks)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	acesUp := Evaluate(cards(t, "Ah", "Ad", "9s", "9c", "2h"))
	kingsUp := Evaluate(cards(t, "Kh", "Kd", "9s", "9c", "2h"))
	if acesUp.Compare(kingsUp) <= 0 {
		t.Fatal("aces up should beat kings up")
	}

	straight := Evaluate(cards(t, "9h", "8d", "7s", "6c", "5h"))
	wheel := Evaluate(cards(t, "Ah", "2d", "3s", "4c", "5h"))
	if straight.Compare(wheel) <= 0 {
		t.Fatal("nine-high straight should beat the wheel")
	}

	a := Evaluate(cards(t, "Ah", "Kd", "9s", "5c", "2h"))
	b := Evaluate(cards(t, "As", "Kc", "9d", "5h", "2s"))
	if a.Compare(b) != 0 {
		t.Fatal("identical values should chop")
	}
}

func TestEvaluateKickerOrder(t *testing.T) {
	t.Parallel()

	hand := Evaluate(cards(t, "Ah", "Ad", "Ks", "9c", "2h"))
	want := []int{14, 13, 9, 2}
	if len(hand.Tiebreaks) != len(want) {
		t.Fatalf("tiebreaks = %v", hand.Tiebreaks)
	}
	for i, v := range want {
		if hand.Tiebreaks[i] != v {
			t.Fatalf("tiebreaks = %v, want %v", hand.Tiebreaks, want)
		}
	}
}

func TestEvaluatePartialHands(t *testing.T) {
	t.Parallel()

	if got := Evaluate(cards(t, "Ah", "Ad")).Category; got != Pair {
		t.Fatalf("two-card pair evaluated as %s", got)
	}
	if got := Evaluate(nil).Category; got != HighCard {
		t.Fatalf("empty hand evaluated as %s", got)
	}
}
