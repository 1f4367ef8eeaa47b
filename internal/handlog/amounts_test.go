package handlog

import "testing"

func TestLedgerCumulativeToIncremental(t *testing.T) {
	t.Parallel()

	// One seat raising through 50, 150, 400 on a single street puts in
	// 50, then 100, then 250.
	l := newStreetLedger()
	steps := []struct {
		cumulative, want int
	}{
		{50, 50},
		{150, 100},
		{400, 250},
	}
	for _, s := range steps {
		if got := l.settle(3, s.cumulative); got != s.want {
			t.Errorf("settle(%d) = %d, want %d", s.cumulative, got, s.want)
		}
	}
	if l.committed(3) != 400 {
		t.Errorf("hand commitment = %d, want 400", l.committed(3))
	}
}

func TestLedgerResetsAtStreetBoundary(t *testing.T) {
	t.Parallel()

	l := newStreetLedger()
	l.settle(1, 100)
	l.advance()

	// A flop bet of 100 is a fresh 100, not zero.
	if got := l.settle(1, 100); got != 100 {
		t.Errorf("post-advance settle(100) = %d, want 100", got)
	}
	if l.committed(1) != 200 {
		t.Errorf("hand commitment = %d, want 200", l.committed(1))
	}
}

func TestLedgerBlindSeedsStreet(t *testing.T) {
	t.Parallel()

	l := newStreetLedger()
	l.post(2, 10)

	// The big blind calling a raise to 30 adds only 20 more.
	if got := l.settle(2, 30); got != 20 {
		t.Errorf("settle(30) after blind 10 = %d, want 20", got)
	}
}

func TestLedgerClampsNegativeIncrement(t *testing.T) {
	t.Parallel()

	l := newStreetLedger()
	l.settle(1, 100)
	if got := l.settle(1, 80); got != 0 {
		t.Errorf("regressing cumulative should yield 0, got %d", got)
	}
}

func TestLedgerTotal(t *testing.T) {
	t.Parallel()

	l := newStreetLedger()
	l.post(1, 5)
	l.post(2, 10)
	l.settle(3, 30)
	l.advance()
	l.settle(1, 50)
	if got := l.total(); got != 95 {
		t.Errorf("total = %d, want 95", got)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"400", 400},
		{"1,250", 1250},
		{"$75", 75},
		{"10789", 10789},
		{"bogus", 0},
	}
	for _, c := range cases {
		if got := parseAmount(c.in); got != c.want {
			t.Errorf("parseAmount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
