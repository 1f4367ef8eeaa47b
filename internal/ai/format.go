package ai

import (
	"fmt"
	"strings"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
)

// FormatHand renders one hand as plain text for prompts and terminal output.
func FormatHand(h *handlog.HandRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Hand #%d ===\n", h.HandID)
	if !h.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Time: %s\n", h.Timestamp.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "Players: %d  |  Blinds: %d/%d  |  Pot: %d\n",
		len(h.Players), h.SmallBlind, h.BigBlind, h.PotTotal)

	if len(h.HeroCards) > 0 {
		pos := ""
		if p := h.HeroPosition(); p != handlog.NoPosition {
			pos = fmt.Sprintf(" (%s)", p)
		}
		fmt.Fprintf(&b, "Hero: %s%s\n", cardList(h.HeroCards), pos)
	}
	if board := h.Board(); len(board) > 0 {
		fmt.Fprintf(&b, "Board: %s\n", cardList(board))
	}

	for _, street := range []handlog.Street{handlog.Preflop, handlog.Flop, handlog.Turn, handlog.River} {
		var acted []handlog.PlayerAction
		for _, a := range h.ActionsOnStreet(street) {
			if a.Type == handlog.PostBlind {
				continue
			}
			acted = append(acted, a)
		}
		if len(acted) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  [%s]\n", strings.ToUpper(street.String()))
		for _, a := range acted {
			fmt.Fprintf(&b, "    %s\n", actionLine(a))
		}
	}

	if len(h.Winners) > 0 {
		b.WriteString("\n")
		for seat, amount := range h.Winners {
			name, ok := h.Players[seat]
			if !ok {
				name = fmt.Sprintf("Seat %d", seat)
			}
			fmt.Fprintf(&b, "  Winner: %s (%d)\n", name, amount)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func actionLine(a handlog.PlayerAction) string {
	suffix := ""
	if a.AllIn {
		suffix = " (all-in)"
	}
	switch a.Type {
	case handlog.Fold:
		return a.PlayerName + " folds"
	case handlog.Check:
		return a.PlayerName + " checks"
	case handlog.Call:
		return fmt.Sprintf("%s calls %d%s", a.PlayerName, a.Amount, suffix)
	case handlog.Bet:
		return fmt.Sprintf("%s bets %d%s", a.PlayerName, a.Amount, suffix)
	case handlog.Raise:
		return fmt.Sprintf("%s raises %d%s", a.PlayerName, a.Amount, suffix)
	default:
		return fmt.Sprintf("%s %s %d", a.PlayerName, a.Type, a.Amount)
	}
}

func cardList(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

// FormatStats renders the headline profile numbers as text.
func FormatStats(s *stats.PlayerStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Player Stats: %s ===\n", s.PlayerName)
	fmt.Fprintf(&b, "Hands: %d\n", s.Overall.Hands)
	fmt.Fprintf(&b, "Profit: %+d  (%+.1f BB/100)\n\n", s.TotalProfit, s.BBPer100())

	fmt.Fprintf(&b, "  VPIP:           %5.1f%%\n", s.Overall.VPIP())
	fmt.Fprintf(&b, "  PFR:            %5.1f%%\n", s.Overall.PFR())
	fmt.Fprintf(&b, "  3-Bet%%:         %5.1f%%\n", s.Overall.ThreeBetPct())
	fmt.Fprintf(&b, "  AF:             %5.2f\n", s.Overall.AggressionFactor())
	fmt.Fprintf(&b, "  C-Bet%%:         %5.1f%%\n", s.Overall.CBetPct())
	fmt.Fprintf(&b, "  Fold to C-Bet%%: %5.1f%%\n", s.Overall.FoldToCBetPct())
	fmt.Fprintf(&b, "  WTSD%%:          %5.1f%%\n", s.Overall.WTSD())
	fmt.Fprintf(&b, "  W$SD%%:          %5.1f%%", s.Overall.WSD())
	return b.String()
}

// FormatPositions renders the per-position breakdown, one line per
// position that has hands, grouped under Early/Middle/Late/Blinds
// headers.
func FormatPositions(s *stats.PlayerStats) string {
	var lines []string
	lastGroup := ""
	for _, pos := range []handlog.Position{
		handlog.UTG, handlog.UTG1, handlog.UTG2, handlog.MP, handlog.MP1,
		handlog.LJ, handlog.HJ, handlog.CO, handlog.BTN, handlog.SB, handlog.BB,
	} {
		b, ok := s.ByPosition[pos]
		if !ok || b.Hands == 0 {
			continue
		}
		if group := pos.Category(); group != lastGroup {
			if lastGroup != "" {
				lines = append(lines, "")
			}
			lines = append(lines, group+":")
			lastGroup = group
		}
		lines = append(lines, fmt.Sprintf(
			"  %-6s Hands=%3d  VPIP=%5.1f%%  PFR=%5.1f%%  3Bet=%5.1f%%  AF=%5.2f  CBet=%5.1f%%",
			pos, b.Hands, b.VPIP(), b.PFR(), b.ThreeBetPct(), b.AggressionFactor(), b.CBetPct()))
	}
	return strings.Join(lines, "\n")
}

// FormatLeaks renders detected leaks as a numbered text report.
func FormatLeaks(found []leaks.Leak) string {
	if len(found) == 0 {
		return "No significant leaks detected. Keep playing solid poker!"
	}

	icons := map[leaks.Severity]string{
		leaks.Major:    "[!!!]",
		leaks.Moderate: "[!!]",
		leaks.Minor:    "[!]",
	}

	var b strings.Builder
	b.WriteString("=== Leak Analysis ===\n\n")
	for i, leak := range found {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, icons[leak.Severity], leak.Description)
		fmt.Fprintf(&b, "   Value: %.1f  (baseline: %.1f-%.1f)\n", leak.Value, leak.Low, leak.High)
		fmt.Fprintf(&b, "   Severity: %s\n", leak.Severity)
		if leak.Advice != "" {
			fmt.Fprintf(&b, "   Advice: %s\n", leak.Advice)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
