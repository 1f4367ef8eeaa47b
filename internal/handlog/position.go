package handlog

// Position is a table-relative seating role derived solely from the dealer
// seat and the set of active seats, never from player identity.
type Position int

const (
	NoPosition Position = iota
	UTG
	UTG1
	UTG2
	MP
	MP1
	LJ
	HJ
	CO
	BTN
	SB
	BB
)

// String returns the conventional abbreviation for the position
func (p Position) String() string {
	switch p {
	case UTG:
		return "UTG"
	case UTG1:
		return "UTG+1"
	case UTG2:
		return "UTG+2"
	case MP:
		return "MP"
	case MP1:
		return "MP+1"
	case LJ:
		return "LJ"
	case HJ:
		return "HJ"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case SB:
		return "SB"
	case BB:
		return "BB"
	default:
		return ""
	}
}

// ParsePosition is the inverse of Position.String.
func ParsePosition(s string) Position {
	for p := UTG; p <= BB; p++ {
		if p.String() == s {
			return p
		}
	}
	return NoPosition
}

// IsEarly reports whether the position is an early seat
func (p Position) IsEarly() bool {
	return p == UTG || p == UTG1 || p == UTG2
}

// IsMiddle reports whether the position is a middle seat
func (p Position) IsMiddle() bool {
	return p == MP || p == MP1 || p == LJ || p == HJ
}

// IsLate reports whether the position is a late seat
func (p Position) IsLate() bool {
	return p == CO || p == BTN
}

// IsBlind reports whether the position is one of the blinds
func (p Position) IsBlind() bool {
	return p == SB || p == BB
}

// Category groups positions into Early/Middle/Late/Blinds buckets for
// positional statistics.
func (p Position) Category() string {
	switch {
	case p.IsEarly():
		return "Early"
	case p.IsMiddle():
		return "Middle"
	case p.IsLate():
		return "Late"
	case p.IsBlind():
		return "Blinds"
	default:
		return ""
	}
}

// positionLayouts maps table size to the label sequence assigned walking
// clockwise from the dealer. Index 0 belongs to the dealer seat. Heads-up
// the dealer posts the small blind, so seat 0 is SB there.
var positionLayouts = map[int][]Position{
	2:  {SB, BB},
	3:  {BTN, SB, BB},
	4:  {BTN, SB, BB, UTG},
	5:  {BTN, SB, BB, UTG, CO},
	6:  {BTN, SB, BB, UTG, MP, CO},
	7:  {BTN, SB, BB, UTG, MP, HJ, CO},
	8:  {BTN, SB, BB, UTG, UTG1, MP, HJ, CO},
	9:  {BTN, SB, BB, UTG, UTG1, MP, MP1, HJ, CO},
	10: {BTN, SB, BB, UTG, UTG1, UTG2, MP, LJ, HJ, CO},
}

// AssignPositions maps every active seat to a unique Position given the
// dealer seat. Seats are walked in ascending order starting at the dealer.
// Returns nil when the table size is unsupported or the dealer is not among
// the active seats.
func AssignPositions(seats []int, dealerSeat int) map[int]Position {
	layout, ok := positionLayouts[len(seats)]
	if !ok {
		return nil
	}

	sorted := append([]int(nil), seats...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	dealerIdx := -1
	for i, s := range sorted {
		if s == dealerSeat {
			dealerIdx = i
			break
		}
	}
	if dealerIdx < 0 {
		return nil
	}

	assigned := make(map[int]Position, len(sorted))
	for i, pos := range layout {
		seat := sorted[(dealerIdx+i)%len(sorted)]
		assigned[seat] = pos
	}
	return assigned
}
