package handlog

import "fmt"

// Result is the outcome of parsing one log file. Parsing is best effort:
// corrupted stretches become Anomalies and the surrounding hands survive.
type Result struct {
	Dialect      Dialect
	Hands        []*HandRecord
	Anomalies    []Anomaly
	Lines        int
	Unrecognized int
}

// segmenter feeds classified events through per-hand assemblers. A hand that
// has ended is held un-finalized in the closed slot until the next hand
// starts, because showdown reveals can arrive after the end marker and still
// belong to it.
type segmenter struct {
	state        *tableState
	current      *assembler
	closed       *assembler
	hands        []*HandRecord
	anomalies    []Anomaly
	unrecognized int
}

func newSegmenter() *segmenter {
	return &segmenter{state: newTableState()}
}

func (s *segmenter) feed(ev Event) {
	switch e := ev.(type) {
	case UnrecognizedEvent:
		s.unrecognized++

	case HandStartEvent:
		if s.current != nil {
			s.anomalies = append(s.anomalies, Anomaly{
				HandID: s.current.rec.HandID,
				Code:   AnomalyUnterminatedHand,
				Detail: fmt.Sprintf("hand %d started before this one ended", e.HandID),
			})
			s.current = nil
		}
		s.seal()
		s.current = newAssembler(e, s.state)

	case HandEndEvent:
		if s.current == nil {
			s.anomalies = append(s.anomalies, Anomaly{
				HandID: e.HandID,
				Code:   AnomalyOrphanedEvent,
				Detail: "end marker with no open hand",
			})
			return
		}
		if s.current.empty() {
			s.anomalies = append(s.anomalies, Anomaly{
				HandID: s.current.rec.HandID,
				Code:   AnomalyEmptyHand,
				Detail: "no players or actions between markers",
			})
			s.current = nil
			return
		}
		s.seal()
		s.closed = s.current
		s.current = nil

	case BlindsChangeEvent:
		// Blind changes are table level and land between hands too.
		if s.current != nil {
			s.current.apply(e)
			return
		}
		s.state.smallBlind = e.Small
		s.state.bigBlind = e.Big

	case ShowCardsEvent:
		switch {
		case s.current != nil:
			s.current.apply(e)
		case s.closed != nil:
			s.closed.apply(e)
		default:
			s.anomalies = append(s.anomalies, Anomaly{
				Code:   AnomalyUnclaimedReveal,
				Detail: fmt.Sprintf("reveal by %q with no hand to attach to", e.Name),
			})
		}

	default:
		if s.current == nil {
			s.anomalies = append(s.anomalies, Anomaly{
				Code:   AnomalyOrphanedEvent,
				Detail: fmt.Sprintf("%s event outside any hand", ev.Kind()),
			})
			return
		}
		s.current.apply(ev)
	}
}

// seal finalizes the held closed hand, if any.
func (s *segmenter) seal() {
	if s.closed == nil {
		return
	}
	rec, anomalies := s.closed.finalize()
	s.hands = append(s.hands, rec)
	s.anomalies = append(s.anomalies, anomalies...)
	s.closed = nil
}

// finish flushes segmenter state at end of input. A hand cut off by the end
// of the log is kept but noted, since truncated exports are common.
func (s *segmenter) finish() {
	s.seal()
	if s.current != nil && !s.current.empty() {
		s.anomalies = append(s.anomalies, Anomaly{
			HandID: s.current.rec.HandID,
			Code:   AnomalyUnterminatedHand,
			Detail: "log ended before the hand did",
		})
		rec, anomalies := s.current.finalize()
		s.hands = append(s.hands, rec)
		s.anomalies = append(s.anomalies, anomalies...)
	}
	s.current = nil
}
