package deck

import "testing"

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "short ace", input: "As", expected: Card{Suit: Spades, Rank: Ace}},
		{name: "short ten letter", input: "Th", expected: Card{Suit: Hearts, Rank: Ten}},
		{name: "short ten digits", input: "10h", expected: Card{Suit: Hearts, Rank: Ten}},
		{name: "suit symbol", input: "Q♦", expected: Card{Suit: Diamonds, Rank: Queen}},
		{name: "ten with symbol", input: "10♣", expected: Card{Suit: Clubs, Rank: Ten}},
		{name: "lowercase", input: "kc", expected: Card{Suit: Clubs, Rank: King}},
		{name: "named card", input: "A of Hearts", expected: Card{Suit: Hearts, Rank: Ace}},
		{name: "named ten", input: "10 of Spades", expected: Card{Suit: Spades, Rank: Ten}},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFindCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
	}{
		{
			name:  "bracketed flop",
			input: "[5♠, 10♥, 7♦]",
			expected: []Card{
				{Suit: Spades, Rank: Five},
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Seven},
			},
		},
		{
			name:  "letter suits",
			input: "Ah Kd",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
			},
		},
		{
			name:  "named fallback",
			input: "a Q of Clubs and a 2 of Hearts",
			expected: []Card{
				{Suit: Clubs, Rank: Queen},
				{Suit: Hearts, Rank: Two},
			},
		},
		{
			name:     "nothing to find",
			input:    "no cards here",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCards(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d cards %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCardStrings(t *testing.T) {
	c := Card{Suit: Hearts, Rank: Ten}
	if c.Short() != "Th" {
		t.Errorf("Short() = %q", c.Short())
	}
	if c.String() != "T♥" {
		t.Errorf("String() = %q", c.String())
	}
	if !c.IsRed() {
		t.Errorf("hearts should be red")
	}

	var zero Card
	if zero.Valid() {
		t.Errorf("zero card should be invalid")
	}
}

func TestSuitAndRankParsing(t *testing.T) {
	if s, err := ParseSuit("♠"); err != nil || s != Spades {
		t.Errorf("ParseSuit(♠) = %v, %v", s, err)
	}
	if s, err := ParseSuit("Diamonds"); err != nil || s != Diamonds {
		t.Errorf("ParseSuit(Diamonds) = %v, %v", s, err)
	}
	if _, err := ParseSuit("z"); err == nil {
		t.Errorf("ParseSuit(z) should fail")
	}
	if r, err := ParseRank("10"); err != nil || r != Ten {
		t.Errorf("ParseRank(10) = %v, %v", r, err)
	}
	if r, err := ParseRank("a"); err != nil || r != Ace {
		t.Errorf("ParseRank(a) = %v, %v", r, err)
	}
	if _, err := ParseRank("1"); err == nil {
		t.Errorf("ParseRank(1) should fail")
	}
}
