package handlog

// ResolveHero identifies the log owner across a parsed session and stamps the
// hero seat onto every hand where that player sits. The "Your hand is" lines
// prove the owner was dealt in but never name them, so identification works
// in two stages: a direct match when the owner's reveal equals the dealt
// cards within one hand, and otherwise the intersection of seated players
// over all hands that carried dealt cards. Only an unambiguous single
// candidate is applied.
func ResolveHero(hands []*HandRecord) {
	name := ""
	for _, h := range hands {
		if h.HeroSeat != 0 && h.HeroName != "" {
			name = h.HeroName
			break
		}
	}
	if name == "" {
		name = intersectHero(hands)
	}
	if name == "" {
		return
	}
	for _, h := range hands {
		if seat := h.SeatOf(name); seat != 0 {
			h.HeroSeat = seat
			h.HeroName = name
		}
	}
}

// intersectHero narrows the candidate set to players seated in every hand
// where the owner was dealt cards. Two hands are usually enough at a live
// table; a lineup that never changes can stay ambiguous forever, and then no
// hero is reported.
func intersectHero(hands []*HandRecord) string {
	candidates := map[string]bool(nil)
	for _, h := range hands {
		if len(h.HeroCards) == 0 {
			continue
		}
		if candidates == nil {
			candidates = make(map[string]bool)
			for _, n := range h.Players {
				candidates[n] = true
			}
			continue
		}
		seated := make(map[string]bool, len(h.Players))
		for _, n := range h.Players {
			seated[n] = true
		}
		for n := range candidates {
			if !seated[n] {
				delete(candidates, n)
			}
		}
	}
	if len(candidates) != 1 {
		return ""
	}
	for n := range candidates {
		return n
	}
	return ""
}
