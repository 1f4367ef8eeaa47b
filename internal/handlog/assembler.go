package handlog

import (
	"fmt"

	"github.com/mlu11/poker-adviser/internal/deck"
)

// tableState carries the table facts that outlive a single hand: the current
// blind sizes and the name-to-seat mapping from the most recent stack
// listing. The tabular dialect never prints seat numbers on action rows, so
// the mapping is the only way those rows get a seat.
type tableState struct {
	smallBlind int
	bigBlind   int
	seatByName map[string]int
}

// newTableState starts with the 10/20 stakes the log format assumes until a
// blind post or a blinds-change line says otherwise.
func newTableState() *tableState {
	return &tableState{
		smallBlind: 10,
		bigBlind:   20,
		seatByName: make(map[string]int),
	}
}

// assembler accumulates one hand's events into a HandRecord. The segmenter
// creates one per hand-start marker and finalizes it after the matching end
// marker, possibly late so that deferred showdown reveals can be folded in.
type assembler struct {
	rec    *HandRecord
	ledger *streetLedger
	street Street
	state  *tableState
	dealer string
}

func newAssembler(start HandStartEvent, state *tableState) *assembler {
	rec := NewHandRecord(start.HandID)
	rec.Timestamp = start.At
	rec.SmallBlind = state.smallBlind
	rec.BigBlind = state.bigBlind
	return &assembler{
		rec:    rec,
		ledger: newStreetLedger(),
		state:  state,
		dealer: start.Dealer,
	}
}

func (a *assembler) apply(ev Event) {
	switch e := ev.(type) {
	case SeatStacksEvent:
		// A stack listing is the full table for this hand; rebuild the
		// carried name mapping so departed players do not linger.
		a.state.seatByName = make(map[string]int)
		for _, s := range e.Seats {
			a.rec.Players[s.Seat] = s.Name
			a.rec.Stacks[s.Seat] = s.Stack
			a.state.seatByName[s.Name] = s.Seat
		}

	case BlindsChangeEvent:
		a.state.smallBlind = e.Small
		a.state.bigBlind = e.Big
		a.rec.SmallBlind = e.Small
		a.rec.BigBlind = e.Big

	case PostBlindEvent:
		seat := a.resolveSeat(e.Name, e.Seat)
		a.ledger.post(seat, e.Amount)
		a.appendAction(PlayerAction{
			Seat:       seat,
			PlayerName: e.Name,
			Street:     a.street,
			Type:       PostBlind,
			Amount:     e.Amount,
		})
		// An observed post is the ground truth for this hand's stakes and
		// carries forward so a later hand missing its post lines inherits it.
		switch e.Label {
		case "small blind":
			a.rec.SmallBlind = e.Amount
			a.state.smallBlind = e.Amount
		case "big blind":
			a.rec.BigBlind = e.Amount
			a.state.bigBlind = e.Amount
		}

	case ActionEvent:
		seat := a.resolveSeat(e.Name, e.Seat)
		amount := 0
		switch e.Type {
		case Call, Bet, Raise:
			amount = a.ledger.settle(seat, e.Amount)
		}
		a.appendAction(PlayerAction{
			Seat:       seat,
			PlayerName: e.Name,
			Street:     a.street,
			Type:       e.Type,
			Amount:     amount,
			AllIn:      e.AllIn,
		})

	case BoardEvent:
		a.street = e.Street
		a.ledger.advance()
		switch e.Street {
		case Flop:
			a.rec.FlopCards = e.Cards
		case Turn:
			a.rec.TurnCard = e.Cards[0]
		case River:
			a.rec.RiverCard = e.Cards[0]
		}

	case HeroCardsEvent:
		a.rec.HeroCards = e.Cards

	case ShowCardsEvent:
		a.applyReveal(e)

	case PotAwardEvent:
		seat := a.resolveSeat(e.Name, e.Seat)
		if e.ResultLine {
			// The wins/gained phrasing restates a collect and must
			// not double the pot; it only fills in a missing winner.
			if _, ok := a.rec.Winners[seat]; !ok {
				a.rec.Winners[seat] = e.Amount
			}
			return
		}
		a.rec.Winners[seat] += e.Amount
		a.rec.PotTotal += e.Amount

	case UncalledBetEvent:
		// A return to a name no seat ever matched is dropped rather than
		// resolved: inventing a seat here would add a phantom player.
		if seat, ok := a.state.seatByName[e.Name]; ok {
			a.rec.Uncalled[seat] += e.Amount
		}
	}
}

// applyReveal records shown hole cards. The legacy dialect reveals one card
// per line, so partial reveals append to the seat's earlier cards instead of
// replacing them.
func (a *assembler) applyReveal(e ShowCardsEvent) {
	seat := a.resolveSeat(e.Name, e.Seat)
	if e.Partial {
		cards := a.rec.ShownCards[seat]
		if len(cards) < 2 {
			a.rec.ShownCards[seat] = append(cards, e.Cards...)
		}
	} else {
		a.rec.ShownCards[seat] = e.Cards
	}
	a.rec.WentToShowdown = true
}

func (a *assembler) appendAction(act PlayerAction) {
	act.Index = len(a.rec.Actions)
	a.rec.Actions = append(a.rec.Actions, act)
}

// resolveSeat maps a player name to a seat. A seat stated on the line itself
// wins; otherwise the carried table mapping is consulted; a never-seen name
// is given the next free seat so a log without a stack listing still
// assembles.
func (a *assembler) resolveSeat(name string, hint int) int {
	if hint > 0 {
		a.registerSeat(hint, name)
		return hint
	}
	if seat, ok := a.state.seatByName[name]; ok {
		a.registerSeat(seat, name)
		return seat
	}
	seat := 1
	for {
		if _, taken := a.rec.Players[seat]; !taken {
			break
		}
		seat++
	}
	a.registerSeat(seat, name)
	return seat
}

func (a *assembler) registerSeat(seat int, name string) {
	if _, ok := a.rec.Players[seat]; !ok {
		a.rec.Players[seat] = name
	}
	a.state.seatByName[name] = seat
}

// empty reports whether nothing substantive was applied; such a hand is
// dropped as an anomaly rather than emitted.
func (a *assembler) empty() bool {
	return len(a.rec.Actions) == 0 && len(a.rec.Players) == 0
}

// finalize completes the record: dealer seat and positions are resolved, the
// hero is linked through a matching reveal when possible, and the pot is
// reconciled against the summed contributions.
func (a *assembler) finalize() (*HandRecord, []Anomaly) {
	var anomalies []Anomaly
	rec := a.rec

	if a.dealer != "" {
		rec.DealerSeat = rec.SeatOf(a.dealer)
	}
	if rec.DealerSeat != 0 {
		seats := make([]int, 0, len(rec.Players))
		for seat := range rec.Players {
			seats = append(seats, seat)
		}
		if positions := AssignPositions(seats, rec.DealerSeat); positions != nil {
			rec.Positions = positions
		}
	}

	if len(rec.HeroCards) == 2 {
		for seat, cards := range rec.ShownCards {
			if sameHoleCards(cards, rec.HeroCards) {
				rec.HeroSeat = seat
				rec.HeroName = rec.Players[seat]
				break
			}
		}
	}

	contributed := rec.TotalContributed()
	if rec.PotTotal == 0 {
		rec.PotTotal = contributed
	} else if contributed > 0 && rec.PotTotal != contributed {
		rec.Flagged = true
		anomalies = append(anomalies, Anomaly{
			HandID: rec.HandID,
			Code:   AnomalyPotMismatch,
			Detail: fmt.Sprintf("collected %d but contributions sum to %d", rec.PotTotal, contributed),
		})
	}

	return rec, anomalies
}

// sameHoleCards compares two-card reveals order-independently.
func sameHoleCards(a, b []deck.Card) bool {
	if len(a) != 2 || len(b) != 2 {
		return false
	}
	if a[0] == b[0] && a[1] == b[1] {
		return true
	}
	return a[0] == b[1] && a[1] == b[0]
}
