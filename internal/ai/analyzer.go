package ai

import (
	"context"
	"strings"

	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
)

const strategyAnalystSystem = `You are a professional no-limit hold'em strategy analyst. Your job is to
study a player's statistics and detected leaks and produce deep, actionable
strategy advice.

Rules:
- Base every recommendation on the concrete numbers, never on generalities
- Give specific fix steps for each leak
- Account for positional differences in strategy
- When the sample is small, say explicitly which conclusions are unreliable
- Structure the answer in Markdown`

const handReviewSystem = `You are a no-limit hold'em coach reviewing a single hand. Evaluate the
hero's decision on every street.

Rules:
- Discuss ranges, not just the hero's exact holding
- Consider stack depth, position, and pot odds
- If a decision is reasonable but not optimal, acknowledge that
- Structure the answer in Markdown`

// Analyzer combines computed statistics with model-generated advice.
type Analyzer struct {
	client *Client
}

func NewAnalyzer(client *Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeProfile asks for a full strategy report over a session's stats.
func (a *Analyzer) AnalyzeProfile(ctx context.Context, profile *stats.PlayerStats, found []leaks.Leak) (string, error) {
	prompt := BuildAnalysisPrompt(FormatStats(profile), FormatLeaks(found), FormatPositions(profile))
	return a.client.Ask(ctx, strategyAnalystSystem, prompt)
}

// ReviewHand asks for a review of one hand, with the session profile as
// context when available.
func (a *Analyzer) ReviewHand(ctx context.Context, hand *handlog.HandRecord, profile *stats.PlayerStats) (string, error) {
	statsText := ""
	if profile != nil {
		statsText = FormatStats(profile)
	}
	prompt := BuildHandReviewPrompt(FormatHand(hand), statsText)
	return a.client.Ask(ctx, handReviewSystem, prompt)
}

// BuildAnalysisPrompt assembles the full-profile analysis request.
func BuildAnalysisPrompt(statsText, leaksText, positionText string) string {
	parts := []string{
		"Analyze the following player's poker statistics and produce a strategy report.",
		"",
		"## Player statistics",
		statsText,
	}
	if positionText != "" {
		parts = append(parts, "", "## Positional breakdown", positionText)
	}
	if leaksText != "" {
		parts = append(parts, "", "## Detected leaks", leaksText)
	}
	parts = append(parts,
		"",
		"Structure the report as:",
		"1. **Player style assessment** (tight-aggressive, loose-passive, ...)",
		"2. **Top 3 leaks** with concrete fix steps for each",
		"3. **Strengths** worth keeping",
		"4. **Study plan** ordered by priority",
	)
	return strings.Join(parts, "\n")
}

// BuildHandReviewPrompt assembles the single-hand review request.
func BuildHandReviewPrompt(handText, statsText string) string {
	parts := []string{
		"Review this hand and evaluate the hero's decision on each street.",
		"",
		"## Hand record",
		handText,
	}
	if statsText != "" {
		parts = append(parts, "", "## Hero's profile over the session", statsText)
	}
	parts = append(parts,
		"",
		"Cover: preflop sizing and range, postflop lines considered,",
		"the biggest mistake if any, and what to do differently next time.",
	)
	return strings.Join(parts, "\n")
}
