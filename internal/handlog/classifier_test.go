package handlog

import (
	"testing"

	"github.com/mlu11/poker-adviser/internal/deck"
)

func classify(t *testing.T, d Dialect, text string) Event {
	t.Helper()
	return NewLineClassifier(d).Classify(Line{Text: text})
}

func mustCard(t *testing.T, s string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(s)
	if err != nil {
		t.Fatalf("bad card %q: %v", s, err)
	}
	return c
}

func TestClassifyHandMarkers(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectLegacy, `-- starting hand #12 (dealer: "Player2") --`)
	start, ok := ev.(HandStartEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if start.HandID != 12 || start.Dealer != "Player2" {
		t.Errorf("start = %+v", start)
	}

	ev = classify(t, DialectTabular, `-- starting hand #358 (id: pyyqik)  No Limit Texas Hold'em (dealer: "Wesley @ 4KT6D07Q4u") --`)
	start, ok = ev.(HandStartEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if start.HandID != 358 || start.Dealer != "Wesley @ 4KT6D07Q4u" {
		t.Errorf("start = %+v", start)
	}

	ev = classify(t, DialectLegacy, `-- ending hand #12 --`)
	if end, ok := ev.(HandEndEvent); !ok || end.HandID != 12 {
		t.Errorf("got %T %+v", ev, ev)
	}
}

func TestClassifySeatStacks(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectLegacy, `"Player1" @ seat #1 ($100) "Player2" @ seat #3 ($250)`)
	st, ok := ev.(SeatStacksEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if len(st.Seats) != 2 {
		t.Fatalf("seats = %d", len(st.Seats))
	}
	if st.Seats[0] != (SeatStack{Seat: 1, Name: "Player1", Stack: 100}) {
		t.Errorf("first = %+v", st.Seats[0])
	}
	if st.Seats[1] != (SeatStack{Seat: 3, Name: "Player2", Stack: 250}) {
		t.Errorf("second = %+v", st.Seats[1])
	}

	ev = classify(t, DialectTabular, `Player stacks: #1 "Wesley @ 4KT6D07Q4u" (10789) | #4 "Maria @ Zk1PQ9xJvb" (9200)`)
	st, ok = ev.(SeatStacksEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if len(st.Seats) != 2 || st.Seats[1].Seat != 4 || st.Seats[1].Stack != 9200 {
		t.Errorf("seats = %+v", st.Seats)
	}
}

func TestClassifyBlindPosts(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectTabular, `"Wesley @ 4KT6D07Q4u" posts a small blind of 50`)
	post, ok := ev.(PostBlindEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if post.Label != "small blind" || post.Amount != 50 {
		t.Errorf("post = %+v", post)
	}

	ev = classify(t, DialectLegacy, `"Player3" @ seat #3 posts a missing big blind of 20`)
	post, ok = ev.(PostBlindEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if post.Seat != 3 || post.Label != "missing big blind" || post.Amount != 20 {
		t.Errorf("post = %+v", post)
	}
}

func TestClassifyActions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		typ  ActionType
		amt  int
	}{
		{`"P" folds`, Fold, 0},
		{`"P" checks`, Check, 0},
		{`"P" calls 100`, Call, 100},
		{`"P" bets 250`, Bet, 250},
		{`"P" raises to 400`, Raise, 400},
		{`"P" raises 400`, Raise, 400},
	}
	for _, c := range cases {
		ev := classify(t, DialectTabular, c.line)
		act, ok := ev.(ActionEvent)
		if !ok {
			t.Fatalf("%q: got %T", c.line, ev)
		}
		if act.Type != c.typ || act.Amount != c.amt {
			t.Errorf("%q: %+v", c.line, act)
		}
	}

	ev := classify(t, DialectTabular, `"P" calls 900 and go all in`)
	if act := ev.(ActionEvent); !act.AllIn {
		t.Errorf("all in not detected: %+v", act)
	}
}

func TestClassifyBoards(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectTabular, `Flop:  [5♠, 10♥, 7♦]`)
	b, ok := ev.(BoardEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if b.Street != Flop || len(b.Cards) != 3 {
		t.Errorf("flop = %+v", b)
	}
	if b.Cards[1] != mustCard(t, "Th") {
		t.Errorf("second card = %v", b.Cards[1])
	}

	ev = classify(t, DialectTabular, `Turn: 5♠, 10♥, 7♦ [3♣]`)
	b, ok = ev.(BoardEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if b.Street != Turn || len(b.Cards) != 1 || b.Cards[0] != mustCard(t, "3c") {
		t.Errorf("turn = %+v", b)
	}

	ev = classify(t, DialectTabular, `River: 5♠, 10♥, 7♦, 3♣ [A♦]`)
	b, ok = ev.(BoardEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if b.Street != River || b.Cards[0] != mustCard(t, "Ad") {
		t.Errorf("river = %+v", b)
	}
}

func TestClassifyReveals(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectTabular, `"Wesley @ 4KT6D07Q4u" shows a 5♦, 9♦.`)
	show, ok := ev.(ShowCardsEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if show.Partial || len(show.Cards) != 2 || show.Cards[0] != mustCard(t, "5d") {
		t.Errorf("show = %+v", show)
	}

	ev = classify(t, DialectLegacy, `"Player1" shows a A of Hearts`)
	show, ok = ev.(ShowCardsEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if !show.Partial || len(show.Cards) != 1 || show.Cards[0] != mustCard(t, "Ah") {
		t.Errorf("show = %+v", show)
	}

	ev = classify(t, DialectLegacy, `"Player1" shows [Ah Kd]`)
	show, ok = ev.(ShowCardsEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if show.Partial || len(show.Cards) != 2 || show.Cards[1] != mustCard(t, "Kd") {
		t.Errorf("show = %+v", show)
	}
}

func TestClassifyHeroCards(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectTabular, `Your hand is 10♥, J♣`)
	hero, ok := ev.(HeroCardsEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if hero.Cards[0] != mustCard(t, "Th") || hero.Cards[1] != mustCard(t, "Jc") {
		t.Errorf("hero = %+v", hero)
	}
}

func TestClassifyPotLines(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectTabular, `"P" collected 600 from pot with Two Pair`)
	award, ok := ev.(PotAwardEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if award.ResultLine || award.Amount != 600 {
		t.Errorf("award = %+v", award)
	}

	ev = classify(t, DialectLegacy, `"P" wins 600`)
	award, ok = ev.(PotAwardEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if !award.ResultLine {
		t.Errorf("award = %+v", award)
	}

	ev = classify(t, DialectTabular, `Uncalled bet of 200 returned to "P"`)
	unc, ok := ev.(UncalledBetEvent)
	if !ok {
		t.Fatalf("got %T", ev)
	}
	if unc.Name != "P" || unc.Amount != 200 {
		t.Errorf("uncalled = %+v", unc)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	t.Parallel()

	ev := classify(t, DialectLegacy, `The admin approved the player "Zed" participation`)
	if _, ok := ev.(UnrecognizedEvent); !ok {
		t.Errorf("got %T", ev)
	}
}
