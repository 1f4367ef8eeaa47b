package handlog

import (
	"strconv"
	"strings"
	"time"

	"github.com/mlu11/poker-adviser/internal/deck"
)

// Line is one chronological log line with its timestamp when the source
// carried one.
type Line struct {
	Text string
	At   time.Time
}

// LineClassifier turns a single log line into a typed event. Lines that match
// no known shape come back as UnrecognizedEvent; the classifier never fails.
type LineClassifier interface {
	Classify(l Line) Event
}

// NewLineClassifier returns the classifier for the given dialect.
func NewLineClassifier(d Dialect) LineClassifier {
	if d == DialectTabular {
		return tabularClassifier{}
	}
	return legacyClassifier{}
}

type legacyClassifier struct{}

func (legacyClassifier) Classify(l Line) Event {
	if ev := classifyShared(l); ev != nil {
		return ev
	}
	if ms := reSeatStackLegacy.FindAllStringSubmatch(l.Text, -1); len(ms) > 0 {
		ev := SeatStacksEvent{}
		for _, m := range ms {
			ev.Seats = append(ev.Seats, SeatStack{
				Seat:  parseSeatGroup(m[2]),
				Name:  m[1],
				Stack: parseAmount(m[3]),
			})
		}
		return ev
	}
	return UnrecognizedEvent{Line: l.Text}
}

type tabularClassifier struct{}

func (tabularClassifier) Classify(l Line) Event {
	if ev := classifyShared(l); ev != nil {
		return ev
	}
	if ms := reSeatStackTabular.FindAllStringSubmatch(l.Text, -1); len(ms) > 0 {
		ev := SeatStacksEvent{}
		for _, m := range ms {
			ev.Seats = append(ev.Seats, SeatStack{
				Seat:  parseSeatGroup(m[1]),
				Name:  m[2],
				Stack: parseAmount(m[3]),
			})
		}
		return ev
	}
	return UnrecognizedEvent{Line: l.Text}
}

// classifyShared covers the line shapes the two dialects have in common.
// Pattern order matters: blind posts must be tried before the bet and raise
// shapes, and board lines before the bare card patterns inside show lines.
func classifyShared(l Line) Event {
	text := l.Text

	if m := reHandStart.FindStringSubmatch(text); m != nil {
		id, _ := strconv.Atoi(m[1])
		return HandStartEvent{HandID: id, Dealer: m[2], At: l.At}
	}
	if m := reHandEnd.FindStringSubmatch(text); m != nil {
		id, _ := strconv.Atoi(m[1])
		return HandEndEvent{HandID: id}
	}
	if m := reBlindsChange.FindStringSubmatch(text); m != nil {
		return BlindsChangeEvent{Small: parseAmount(m[1]), Big: parseAmount(m[2])}
	}
	if m := reHeroCards.FindStringSubmatch(text); m != nil {
		c1, err1 := deck.ParseCard(m[1])
		c2, err2 := deck.ParseCard(m[2])
		if err1 == nil && err2 == nil {
			return HeroCardsEvent{Cards: []deck.Card{c1, c2}}
		}
	}
	if m := rePostBlind.FindStringSubmatch(text); m != nil {
		return PostBlindEvent{
			Name:   m[1],
			Seat:   parseSeatGroup(m[2]),
			Label:  strings.Join(strings.Fields(strings.ToLower(m[3])), " "),
			Amount: parseAmount(m[4]),
		}
	}
	if m := reShowPair.FindStringSubmatch(text); m != nil {
		c1, err1 := deck.ParseCard(m[3])
		c2, err2 := deck.ParseCard(m[4])
		if err1 == nil && err2 == nil {
			return ShowCardsEvent{
				Name:  m[1],
				Seat:  parseSeatGroup(m[2]),
				Cards: []deck.Card{c1, c2},
			}
		}
	}
	if m := reShowNamed.FindStringSubmatch(text); m != nil {
		c, err := deck.ParseCard(m[3] + strings.ToLower(m[4][:1]))
		if err == nil {
			return ShowCardsEvent{
				Name:    m[1],
				Seat:    parseSeatGroup(m[2]),
				Cards:   []deck.Card{c},
				Partial: true,
			}
		}
	}
	if m := reShowBracket.FindStringSubmatch(text); m != nil {
		cards := deck.FindCards(m[3])
		if len(cards) > 0 {
			return ShowCardsEvent{
				Name:  m[1],
				Seat:  parseSeatGroup(m[2]),
				Cards: cards,
			}
		}
	}
	if m := reUncalled.FindStringSubmatch(text); m != nil {
		return UncalledBetEvent{Name: m[2], Amount: parseAmount(m[1])}
	}
	if m := reCollect.FindStringSubmatch(text); m != nil {
		return PotAwardEvent{
			Name:   m[1],
			Seat:   parseSeatGroup(m[2]),
			Amount: parseAmount(m[3]),
		}
	}
	if m := reResult.FindStringSubmatch(text); m != nil {
		return PotAwardEvent{
			Name:       m[1],
			Seat:       parseSeatGroup(m[2]),
			Amount:     parseAmount(m[3]),
			ResultLine: true,
		}
	}
	if m := reFold.FindStringSubmatch(text); m != nil {
		return ActionEvent{Name: m[1], Seat: parseSeatGroup(m[2]), Type: Fold}
	}
	if m := reCheck.FindStringSubmatch(text); m != nil {
		return ActionEvent{Name: m[1], Seat: parseSeatGroup(m[2]), Type: Check}
	}
	if m := reCall.FindStringSubmatch(text); m != nil {
		return ActionEvent{
			Name:   m[1],
			Seat:   parseSeatGroup(m[2]),
			Type:   Call,
			Amount: parseAmount(m[3]),
			AllIn:  reAllIn.MatchString(text),
		}
	}
	if m := reRaise.FindStringSubmatch(text); m != nil {
		return ActionEvent{
			Name:   m[1],
			Seat:   parseSeatGroup(m[2]),
			Type:   Raise,
			Amount: parseAmount(m[3]),
			AllIn:  reAllIn.MatchString(text),
		}
	}
	if m := reBet.FindStringSubmatch(text); m != nil {
		return ActionEvent{
			Name:   m[1],
			Seat:   parseSeatGroup(m[2]),
			Type:   Bet,
			Amount: parseAmount(m[3]),
			AllIn:  reAllIn.MatchString(text),
		}
	}
	if m := reFlop.FindStringSubmatch(text); m != nil {
		if cards := deck.FindCards(m[1]); len(cards) == 3 {
			return BoardEvent{Street: Flop, Cards: cards}
		}
	}
	if m := reRiver.FindStringSubmatch(text); m != nil {
		if cards := deck.FindCards(m[1]); len(cards) == 1 {
			return BoardEvent{Street: River, Cards: cards}
		}
	}
	if m := reTurn.FindStringSubmatch(text); m != nil {
		if cards := deck.FindCards(m[1]); len(cards) == 1 {
			return BoardEvent{Street: Turn, Cards: cards}
		}
	}
	return nil
}
