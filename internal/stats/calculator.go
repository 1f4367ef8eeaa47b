package stats

import "github.com/mlu11/poker-adviser/internal/handlog"

// Calculator turns reconstructed hands into a hero profile.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator { return &Calculator{} }

// Calculate aggregates stats for the hero across the given hands. When
// heroName is empty the name is taken from the first hand that identified
// one; individual hands fall back to their own hero seat.
func (c *Calculator) Calculate(hands []*handlog.HandRecord, heroName string) *PlayerStats {
	s := NewPlayerStats()
	if len(hands) == 0 {
		return s
	}

	if heroName == "" {
		for _, h := range hands {
			if h.HeroName != "" {
				heroName = h.HeroName
				break
			}
		}
	}
	s.PlayerName = heroName

	for _, hand := range hands {
		seat := resolveHeroSeat(hand, heroName)
		if seat == 0 {
			continue
		}

		pos := hand.Positions[seat]
		c.processHand(hand, seat, &s.Overall)
		if pos != handlog.NoPosition {
			c.processHand(hand, seat, s.PositionBucket(pos))
		}

		won := hand.Winners[seat]
		invested := hand.NetContribution(seat)
		s.TotalProfit += won - invested
		s.Overall.TotalWon += won
		s.Overall.TotalInvested += invested
		if pos != handlog.NoPosition {
			b := s.PositionBucket(pos)
			b.TotalWon += won
			b.TotalInvested += invested
		}

		if hand.BigBlind > 0 {
			s.BigBlindSize = hand.BigBlind
		}
	}
	return s
}

func resolveHeroSeat(hand *handlog.HandRecord, heroName string) int {
	if heroName != "" {
		if seat := hand.SeatOf(heroName); seat != 0 {
			return seat
		}
	}
	return hand.HeroSeat
}

func (c *Calculator) processHand(hand *handlog.HandRecord, seat int, b *Bucket) {
	b.Hands++

	preflop := hand.ActionsOnStreet(handlog.Preflop)
	var heroPreflop []handlog.PlayerAction
	for _, a := range preflop {
		if a.Seat == seat {
			heroPreflop = append(heroPreflop, a)
		}
	}

	if isVPIP(heroPreflop) {
		b.VPIPHands++
	}
	wasPFR := isPFR(heroPreflop)
	if wasPFR {
		b.PFRHands++
	}

	if chance, made := checkThreeBet(preflop, seat); chance {
		b.ThreeBetChances++
		if made {
			b.ThreeBets++
		}
	}

	for _, a := range hand.Actions {
		if a.Seat != seat || a.Street == handlog.Preflop {
			continue
		}
		switch a.Type {
		case handlog.Bet:
			b.Bets++
		case handlog.Raise:
			b.Raises++
		case handlog.Call:
			b.Calls++
		case handlog.Fold:
			b.Folds++
		}
	}

	sawFlop := hand.SawFlop(seat)
	if sawFlop {
		b.SawFlop++

		if wasPFR {
			b.CBetChances++
			if didCBet(hand, seat) {
				b.CBets++
			}
		}

		if faced, folded := checkFacedCBet(hand, seat, preflop); faced {
			b.FacedCBet++
			if folded {
				b.FoldedToCBet++
			}
		}
	}

	if hand.WentToShowdown {
		b.WentToShowdown++
		if _, won := hand.Winners[seat]; won {
			b.WonAtShowdown++
		}
	} else if _, won := hand.Winners[seat]; won {
		b.WonWithoutShowdown++
	}
}

// isVPIP reports whether the hero put chips in preflop by choice. A call of
// zero (the big blind checking its option) does not count.
func isVPIP(heroPreflop []handlog.PlayerAction) bool {
	for _, a := range heroPreflop {
		if a.Type == handlog.Bet || a.Type == handlog.Raise {
			return true
		}
		if a.Type == handlog.Call && a.Amount > 0 {
			return true
		}
	}
	return false
}

func isPFR(heroPreflop []handlog.PlayerAction) bool {
	for _, a := range heroPreflop {
		if a.Type.IsAggressive() {
			return true
		}
	}
	return false
}

// checkThreeBet reports whether the hero faced exactly one raise before
// acting, and whether they re-raised when they did.
func checkThreeBet(preflop []handlog.PlayerAction, seat int) (chance, made bool) {
	raises := 0
	for _, a := range preflop {
		if a.Type == handlog.PostBlind {
			continue
		}
		if a.Seat != seat {
			if a.Type.IsAggressive() {
				raises++
			}
			continue
		}
		if raises == 1 {
			return true, a.Type == handlog.Raise
		}
	}
	return false, false
}

// didCBet reports whether the hero, as the preflop raiser, made the first
// bet on the flop.
func didCBet(hand *handlog.HandRecord, seat int) bool {
	for _, a := range hand.ActionsOnStreet(handlog.Flop) {
		switch a.Type {
		case handlog.Check:
			if a.Seat == seat {
				return false
			}
		case handlog.Bet:
			return a.Seat == seat
		default:
			return false
		}
	}
	return false
}

// checkFacedCBet reports whether an opposing preflop raiser bet the flop
// into the hero, and how the hero responded.
func checkFacedCBet(hand *handlog.HandRecord, seat int, preflop []handlog.PlayerAction) (faced, folded bool) {
	pfrSeat := 0
	for _, a := range preflop {
		if a.Type.IsAggressive() && a.Seat != seat {
			pfrSeat = a.Seat
		}
	}
	if pfrSeat == 0 {
		return false, false
	}

	cbetSeen := false
	for _, a := range hand.ActionsOnStreet(handlog.Flop) {
		if !cbetSeen {
			if a.Type == handlog.Bet && a.Seat == pfrSeat {
				cbetSeen = true
			} else if a.Type.IsAggressive() {
				return false, false
			}
			continue
		}
		if a.Seat == seat {
			return true, a.Type == handlog.Fold
		}
	}
	return false, false
}
