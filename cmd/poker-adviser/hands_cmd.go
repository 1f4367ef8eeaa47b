package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/ai"
	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/showdown"
	"github.com/mlu11/poker-adviser/internal/store"
)

// HandsCmd lists stored hands, or sessions when no hands filter is given.
type HandsCmd struct {
	Session  string `kong:"help='Limit to one session id'"`
	Limit    int    `kong:"default='20',help='Maximum hands to print (0 = all)'"`
	Showdown bool   `kong:"help='Only hands that reached showdown'"`
	Sessions bool   `kong:"help='List sessions instead of hands'"`
}

func (c *HandsCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if c.Sessions {
		return c.listSessions(st)
	}

	hands, err := st.Hands(c.Session)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return errors.New("no hands stored, run import first")
	}

	shown := 0
	for _, h := range hands {
		if c.Showdown && !h.WentToShowdown {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		fmt.Println(handInfoStyle.Render(fmt.Sprintf("Hand #%d (session %s)", h.HandID, h.SessionID)))
		if h.Flagged {
			fmt.Println(warningStyle.Render("  flagged: pot did not reconcile"))
		}
		fmt.Println(ai.FormatHand(h))
		printShowdownHands(h)
		fmt.Println()
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d of %d hands shown", shown, len(hands))))
	return nil
}

// printShowdownHands names what each revealed holding made on the board.
func printShowdownHands(h *handlog.HandRecord) {
	if !h.WentToShowdown || len(h.ShownCards) == 0 {
		return
	}
	seats := make([]int, 0, len(h.ShownCards))
	for seat := range h.ShownCards {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	board := h.Board()
	for _, seat := range seats {
		holding := append(append([]deck.Card{}, h.ShownCards[seat]...), board...)
		best := showdown.Evaluate(holding)
		name, ok := h.Players[seat]
		if !ok {
			name = fmt.Sprintf("Seat %d", seat)
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("  %s made %s", name, best.Category)))
	}
}

func (c *HandsCmd) listSessions(st *store.Store) error {
	sessions, err := st.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return errors.New("no sessions stored")
	}
	fmt.Println(headerStyle.Render(" Sessions "))
	for _, s := range sessions {
		line := fmt.Sprintf("%s  %-24s %4d hands  %s", s.ID, s.Filename, s.HandCount, s.ImportDate)
		if s.Notes != "" {
			line += "  (" + s.Notes + ")"
		}
		fmt.Println(line)
	}
	return nil
}
