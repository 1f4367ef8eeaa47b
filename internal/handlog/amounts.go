package handlog

// streetLedger recovers incremental wagers from the cumulative amounts the
// logs carry. A call or raise line states the player's total commitment on
// the current street, so the increment is that total minus whatever the
// ledger already holds for the seat. Blind posts are the exception: they are
// logged incrementally and seed the ledger directly.
type streetLedger struct {
	street map[int]int
	hand   map[int]int
}

func newStreetLedger() *streetLedger {
	return &streetLedger{
		street: make(map[int]int),
		hand:   make(map[int]int),
	}
}

// advance resets the per-street commitments at a street boundary. Whole-hand
// totals carry through.
func (l *streetLedger) advance() {
	l.street = make(map[int]int)
}

// post records an incremental blind or straddle.
func (l *streetLedger) post(seat, amount int) {
	l.street[seat] += amount
	l.hand[seat] += amount
}

// settle takes the cumulative street commitment from a call, bet or raise
// line and returns the incremental amount newly put in. A cumulative value
// at or below the prior commitment yields zero rather than a negative
// increment.
func (l *streetLedger) settle(seat, cumulative int) int {
	prior := l.street[seat]
	inc := cumulative - prior
	if inc < 0 {
		inc = 0
	}
	l.street[seat] = cumulative
	l.hand[seat] += inc
	return inc
}

// committed reports the seat's total commitment across the whole hand.
func (l *streetLedger) committed(seat int) int {
	return l.hand[seat]
}

// total sums every seat's whole-hand commitment.
func (l *streetLedger) total() int {
	sum := 0
	for _, v := range l.hand {
		sum += v
	}
	return sum
}
