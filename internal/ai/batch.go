package ai

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
	"github.com/mlu11/poker-adviser/internal/store"
)

// AnalysisCache stores hand reviews so a repeated batch run stays offline.
type AnalysisCache interface {
	CachedAnalysis(handID int, sessionID, analysisType string) (*store.AnalysisResult, error)
	SaveAnalysis(store.AnalysisResult) error
}

// HandLoss pairs a hand with its estimated cost and the model's review.
type HandLoss struct {
	Hand   *handlog.HandRecord
	LossBB float64
	Grade  string
	Review string
	Cached bool
}

// BatchReview is the outcome of reviewing the most expensive hands of a
// batch in one pass.
type BatchReview struct {
	TotalHands int
	CacheHits  int
	TopLeaks   []leaks.Leak
	Hands      []HandLoss
}

// BatchReviewer selects the hands that likely cost the most and has the
// model review each one, reusing cached reviews where possible.
type BatchReviewer struct {
	cache    AnalysisCache
	analyzer *Analyzer
}

func NewBatchReviewer(cache AnalysisCache, analyzer *Analyzer) *BatchReviewer {
	return &BatchReviewer{cache: cache, analyzer: analyzer}
}

// ReviewTopLosses ranks hands by estimated loss, reviews the top ones, and
// returns the consolidated result. found must already be ordered most severe
// first, the way the leak detector emits it.
func (r *BatchReviewer) ReviewTopLosses(ctx context.Context, hands []*handlog.HandRecord, profile *stats.PlayerStats, found []leaks.Leak, top int, useCache bool) (*BatchReview, error) {
	review := &BatchReview{TotalHands: len(hands)}
	if len(found) > 5 {
		found = found[:5]
	}
	review.TopLeaks = found

	ranked := make([]HandLoss, 0, len(hands))
	for _, h := range hands {
		loss := estimatedLossBB(h, profile)
		ranked = append(ranked, HandLoss{Hand: h, LossBB: loss, Grade: gradeLoss(loss)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LossBB > ranked[j].LossBB
	})
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}

	for i := range ranked {
		hl := &ranked[i]
		if useCache {
			cached, err := r.cache.CachedAnalysis(hl.Hand.HandID, hl.Hand.SessionID, "single_hand")
			if err != nil {
				return nil, err
			}
			if cached != nil {
				hl.Review = cached.Explanation
				hl.Cached = true
				review.CacheHits++
				continue
			}
		}

		text, err := r.analyzer.ReviewHand(ctx, hl.Hand, profile)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", hl.Hand.HandID, err)
		}
		hl.Review = text

		err = r.cache.SaveAnalysis(store.AnalysisResult{
			HandID:       hl.Hand.HandID,
			SessionID:    hl.Hand.SessionID,
			AnalysisType: "single_hand",
			Explanation:  text,
			EVLoss:       sql.NullFloat64{Float64: hl.LossBB, Valid: true},
			ErrorGrade:   sql.NullString{String: hl.Grade, Valid: true},
		})
		if err != nil {
			return nil, err
		}
	}

	review.Hands = ranked
	return review, nil
}

// estimatedLossBB is a heuristic: lost pots, oversized pots, showdowns
// reached by a player who already goes to showdown too often, and early
// position all raise the estimate. The result is denominated in big blinds
// so hands from different stakes rank comparably.
func estimatedLossBB(h *handlog.HandRecord, profile *stats.PlayerStats) float64 {
	loss := float64(h.PotTotal) * 0.2
	if !h.HeroWon() {
		loss += float64(h.PotTotal) * 0.5
	}
	if h.WentToShowdown && profile != nil && profile.Overall.WTSD() > 50 {
		loss += float64(h.PotTotal) * 0.3
	}
	if h.HeroPosition().IsEarly() {
		loss *= 1.2
	}

	bb := h.BigBlind
	if bb == 0 && profile != nil {
		bb = profile.BigBlindSize
	}
	if bb == 0 {
		return loss
	}
	return loss / float64(bb)
}

// gradeLoss buckets an estimated loss into the S/A/B/C error grades.
func gradeLoss(lossBB float64) string {
	switch {
	case lossBB > 10:
		return "S"
	case lossBB > 6:
		return "A"
	case lossBB > 3:
		return "B"
	default:
		return "C"
	}
}

// FormatBatchReport renders a batch review as a text report.
func FormatBatchReport(r *BatchReview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Batch Review ===\n")
	fmt.Fprintf(&b, "Hands scanned: %d  |  Reviewed: %d  |  Cache hits: %d\n",
		r.TotalHands, len(r.Hands), r.CacheHits)

	if len(r.TopLeaks) > 0 {
		b.WriteString("\nTop leaks:\n")
		for i, leak := range r.TopLeaks {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, leak.Severity, leak.Description)
		}
	}

	for _, hl := range r.Hands {
		fmt.Fprintf(&b, "\n--- Hand #%d  |  est. loss %.1f BB  |  grade %s", hl.Hand.HandID, hl.LossBB, hl.Grade)
		if hl.Cached {
			b.WriteString("  (cached)")
		}
		b.WriteString(" ---\n")
		if board := hl.Hand.Board(); len(board) > 0 {
			fmt.Fprintf(&b, "Board: %s\n", cardList(board))
		}
		if len(hl.Hand.HeroCards) > 0 {
			fmt.Fprintf(&b, "Hero: %s\n", cardList(hl.Hand.HeroCards))
		}
		b.WriteString(hl.Review)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
