package handlog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Recognized line shapes. The same family serves both dialects: the seat
// capture group is present only in legacy lines, and the stack-listing row
// differs per dialect.
var (
	// -- starting hand #1 (dealer: "Player2") --
	// -- starting hand #358 (id: pyyqik)  No Limit Texas Hold'em (dealer: "Wesley @ 4KT6D07Q4u") --
	reHandStart = regexp.MustCompile(`(?i)-- starting hand #(\d+)(?:\s*\(id:\s*\w+\))?(?:\s+[^(]*)?(?:\(dealer:\s*"([^"]+)"\))?`)
	reHandEnd   = regexp.MustCompile(`(?i)-- ending hand #(\d+)`)

	// "Player1" @ seat #1 ($100.00)        (legacy, repeated along the line)
	// #1 "Wesley @ 4KT6D07Q4u" (10789)     (tabular stack-listing row)
	reSeatStackLegacy  = regexp.MustCompile(`"([^"]+)"\s*@\s*seat\s*#?(\d+)\s*\(\s*\$?([\d,]+\.?\d*)\s*\)`)
	reSeatStackTabular = regexp.MustCompile(`#(\d+)\s*"([^"]+)"\s*\(\s*\$?([\d,]+\.?\d*)\s*\)`)

	reHeroCards = regexp.MustCompile(`(?i)Your\s+hand\s+is\s+((?:10|[2-9TJQKA])[hdcs♥♦♣♠]),?\s*((?:10|[2-9TJQKA])[hdcs♥♦♣♠])`)

	rePostBlind = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+posts\s+a\s+(missing\s+small\s+blind|missing\s+big\s+blind|small\s+blind|big\s+blind|straddle)\s+of\s+\$?([\d,]+\.?\d*)`)

	reFold  = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+folds`)
	reCheck = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+checks`)
	reCall  = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+calls\s+\$?([\d,]+\.?\d*)`)
	reBet   = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+bets\s+\$?([\d,]+\.?\d*)`)
	reRaise = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+raises\s+(?:to\s+)?\$?([\d,]+\.?\d*)`)
	reAllIn = regexp.MustCompile(`(?i)all\s*in`)

	// Flop:  [5♠, T♥, 7♦]
	// Turn: 5♠, T♥, 7♦ [3♣]   (newer logs repeat prior cards outside the bracket)
	reFlop  = regexp.MustCompile(`(?i)Flop[:\s]*(?:\([^)]*\)\s*)?\[([^\]]+)\]`)
	reTurn  = regexp.MustCompile(`(?i)Turn[:\s]*[^[]*\[([^\]]+)\]`)
	reRiver = regexp.MustCompile(`(?i)River[:\s]*[^[]*\[([^\]]+)\]`)

	// "Name" shows a 5♦, 9♦.        (both cards on one line)
	// "Name" shows a A of Hearts    (one card per line)
	// "Name" shows [Ah Kh]
	reShowPair    = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+shows\s+a\s+((?:10|[2-9TJQKA])[♥♦♣♠hdcs]),?\s*((?:10|[2-9TJQKA])[♥♦♣♠hdcs])`)
	reShowNamed   = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+shows\s+a\s+(10|[2-9TJQKA])\s+of\s+(Hearts|Diamonds|Clubs|Spades)`)
	reShowBracket = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+shows\s+\[([^\]]+)\]`)

	reCollect = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+collected\s+\$?([\d,]+\.?\d*)\s+from\s+(?:the\s+)?pot`)
	reResult  = regexp.MustCompile(`(?i)"([^"]+)"(?:\s*@\s*seat\s*#?(\d+))?\s+(?:wins|gained)\s+\$?([\d,]+\.?\d*)`)

	reUncalled = regexp.MustCompile(`(?i)Uncalled\s+bet\s+(?:of\s+)?\(?\$?([\d,]+\.?\d*)\)?\s+returned\s+to\s+"([^"]+)"`)

	reBlindsChange = regexp.MustCompile(`(?i)Blinds\s+(?:increased|changed)\s+to\s+\$?([\d,]+\.?\d*)\s*/\s*\$?([\d,]+\.?\d*)`)

	// 2021-01-29T01:58:07.321Z -- prefix on legacy lines
	reTimestamp = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T[\d:.]+Z?)\s*--\s*`)
)

// parseAmount reads a logged monetary value as an opaque integer. Commas and
// a leading currency sign are stripped; the literal numeric value is kept
// without any unit scaling, rounding away a fractional part if an old log
// carries one.
func parseAmount(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v))
}

func parseSeatGroup(s string) int {
	if s == "" {
		return 0
	}
	seat, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return seat
}
