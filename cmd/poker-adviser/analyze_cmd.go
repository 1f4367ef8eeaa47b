package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mlu11/poker-adviser/cmd/poker-adviser/shared"
	"github.com/mlu11/poker-adviser/internal/ai"
	"github.com/mlu11/poker-adviser/internal/handlog"
	"github.com/mlu11/poker-adviser/internal/leaks"
	"github.com/mlu11/poker-adviser/internal/stats"
	"github.com/mlu11/poker-adviser/internal/store"
)

// AnalyzeCmd asks the analysis model for a strategy report over a session,
// a review of one hand, or a batch review of the costliest hands. Hand
// reviews are cached in the database.
type AnalyzeCmd struct {
	Session string `kong:"help='Limit to one session id'"`
	Player  string `kong:"help='Hero name override'"`
	Hand    int    `kong:"help='Review this hand id instead of the whole profile'"`
	Batch   bool   `kong:"help='Review the top estimated-loss hands in one pass'"`
	Top     int    `kong:"default='10',help='Hands to review in batch mode'"`
	Env     string `kong:"default='.env',help='Env file with POKER_AI_* credentials'"`
	NoCache bool   `kong:"help='Ignore cached hand reviews'"`
}

func (c *AnalyzeCmd) Run(g *Globals) error {
	logger := shared.SetupLogger(g.Debug)

	if err := godotenv.Load(c.Env); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", c.Env, err)
	}
	client, err := ai.NewClient(ai.ConfigFromEnv(), logger)
	if err != nil {
		return err
	}

	st, err := openStore(g, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	hands, err := st.Hands(c.Session)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return errors.New("no hands stored, run import first")
	}

	calc := &stats.Calculator{}
	profile := calc.Calculate(hands, c.Player)
	analyzer := ai.NewAnalyzer(client)
	ctx := shared.SetupSignalHandler()

	if c.Hand != 0 {
		return c.reviewHand(ctx, st, analyzer, hands, profile)
	}

	found := leaks.NewDetector(nil).Detect(profile)

	if c.Batch {
		reviewer := ai.NewBatchReviewer(st, analyzer)
		result, err := reviewer.ReviewTopLosses(ctx, hands, profile, found, c.Top, !c.NoCache)
		if err != nil {
			return err
		}
		fmt.Println(headerStyle.Render(" Batch review "))
		fmt.Println(ai.FormatBatchReport(result))
		return nil
	}

	report, err := analyzer.AnalyzeProfile(ctx, profile, found)
	if err != nil {
		return err
	}
	fmt.Println(headerStyle.Render(" Strategy analysis "))
	fmt.Println(report)
	return nil
}

func (c *AnalyzeCmd) reviewHand(ctx context.Context, st *store.Store, analyzer *ai.Analyzer, hands []*handlog.HandRecord, profile *stats.PlayerStats) error {
	var hand *handlog.HandRecord
	for _, h := range hands {
		if h.HandID == c.Hand {
			hand = h
			break
		}
	}
	if hand == nil {
		return fmt.Errorf("hand %d not found", c.Hand)
	}

	if !c.NoCache {
		cached, err := st.CachedAnalysis(hand.HandID, hand.SessionID, "single_hand")
		if err != nil {
			return err
		}
		if cached != nil {
			fmt.Println(dimStyle.Render("(cached)"))
			fmt.Println(cached.Explanation)
			return nil
		}
	}

	review, err := analyzer.ReviewHand(ctx, hand, profile)
	if err != nil {
		return err
	}

	err = st.SaveAnalysis(store.AnalysisResult{
		HandID:       hand.HandID,
		SessionID:    hand.SessionID,
		AnalysisType: "single_hand",
		Explanation:  review,
	})
	if err != nil {
		return err
	}

	fmt.Println(handInfoStyle.Render(fmt.Sprintf("Hand #%d review", hand.HandID)))
	fmt.Println(review)
	return nil
}
