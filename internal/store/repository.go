package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mlu11/poker-adviser/internal/deck"
	"github.com/mlu11/poker-adviser/internal/handlog"
)

// Session describes one imported log file.
type Session struct {
	ID         string
	Filename   string
	ImportDate string
	HandCount  int
	Notes      string
}

// TrainingResult is one answered training scenario.
type TrainingResult struct {
	ID            int64
	HandRecordID  int64
	ScenarioType  string
	UserAction    string
	OptimalAction string
	Score         int
	Feedback      string
	FocusArea     string
	SessionDate   string
}

// AnalysisResult caches one AI review so repeat lookups stay offline.
type AnalysisResult struct {
	HandID       int
	SessionID    string
	AnalysisType string
	Explanation  string
	EVLoss       sql.NullFloat64
	ErrorGrade   sql.NullString
	CreatedAt    string
}

// SaveSession stores a batch of parsed hands under a fresh session id,
// stamps that id onto each record, and returns it. A hand id already present
// for the session is skipped, so re-importing an overlapping export cannot
// duplicate hands.
func (s *Store) SaveSession(hands []*handlog.HandRecord, filename, notes string) (string, error) {
	sessionID := uuid.NewString()[:8]

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO sessions (id, filename, hand_count, notes) VALUES (?, ?, ?, ?)",
		sessionID, filename, len(hands), notes,
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	for _, hand := range hands {
		hand.SessionID = sessionID
		if err := saveHand(tx, hand, sessionID); err != nil {
			return "", fmt.Errorf("hand %d: %w", hand.HandID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	s.logger.Info("session saved", "session", sessionID, "hands", len(hands), "file", filename)
	return sessionID, nil
}

func saveHand(tx *sql.Tx, hand *handlog.HandRecord, sessionID string) error {
	var ts string
	if !hand.Timestamp.IsZero() {
		ts = hand.Timestamp.UTC().Format(time.RFC3339)
	}

	board := hand.FlopCards
	res, err := tx.Exec(
		`INSERT INTO hands
		 (hand_id, session_id, timestamp, player_count, dealer_seat,
		  small_blind, big_blind, hero_seat, hero_name,
		  hero_card1, hero_card2, flop1, flop2, flop3, turn, river,
		  pot_total, went_to_showdown, flagged)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (session_id, hand_id) DO NOTHING`,
		hand.HandID, sessionID, ts, len(hand.Players), hand.DealerSeat,
		hand.SmallBlind, hand.BigBlind, hand.HeroSeat, hand.HeroName,
		cardColumn(cardAt(hand.HeroCards, 0)), cardColumn(cardAt(hand.HeroCards, 1)),
		cardColumn(cardAt(board, 0)), cardColumn(cardAt(board, 1)), cardColumn(cardAt(board, 2)),
		cardColumn(hand.TurnCard), cardColumn(hand.RiverCard),
		hand.PotTotal, boolColumn(hand.WentToShowdown), boolColumn(hand.Flagged),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Duplicate hand for this session.
		return nil
	}
	recordID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for seat, name := range hand.Players {
		var pos any
		if p, ok := hand.Positions[seat]; ok && p != handlog.NoPosition {
			pos = p.String()
		}
		_, err = tx.Exec(
			"INSERT INTO players (hand_record_id, seat, name, position, stack) VALUES (?, ?, ?, ?, ?)",
			recordID, seat, name, pos, hand.Stacks[seat],
		)
		if err != nil {
			return err
		}
	}

	for seq, a := range hand.Actions {
		_, err = tx.Exec(
			`INSERT INTO actions
			 (hand_record_id, seq, player_name, seat, action_type, amount, street, is_all_in)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			recordID, seq, a.PlayerName, a.Seat, a.Type.String(), a.Amount,
			a.Street.String(), boolColumn(a.AllIn),
		)
		if err != nil {
			return err
		}
	}

	for seat, cards := range hand.ShownCards {
		for _, c := range cards {
			_, err = tx.Exec(
				"INSERT INTO shown_cards (hand_record_id, seat, card) VALUES (?, ?, ?)",
				recordID, seat, c.Short(),
			)
			if err != nil {
				return err
			}
		}
	}

	for seat, amount := range hand.Winners {
		_, err = tx.Exec(
			"INSERT INTO winners (hand_record_id, seat, amount) VALUES (?, ?, ?)",
			recordID, seat, amount,
		)
		if err != nil {
			return err
		}
	}

	for seat, amount := range hand.Uncalled {
		_, err = tx.Exec(
			"INSERT INTO uncalled_bets (hand_record_id, seat, amount) VALUES (?, ?, ?)",
			recordID, seat, amount,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Hands loads stored hands, newest session layout preserved, optionally
// filtered to one session. Order follows the original hand ids.
func (s *Store) Hands(sessionID string) ([]*handlog.HandRecord, error) {
	query := "SELECT id, hand_id, session_id, timestamp, dealer_seat, small_blind, big_blind, hero_seat, hero_name, hero_card1, hero_card2, flop1, flop2, flop3, turn, river, pot_total, went_to_showdown, flagged FROM hands"
	args := []any{}
	if sessionID != "" {
		query += " WHERE session_id = ?"
		args = append(args, sessionID)
	}
	query += " ORDER BY session_id, hand_id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hands: %w", err)
	}
	defer rows.Close()

	type loaded struct {
		recordID int64
		hand     *handlog.HandRecord
	}
	var all []loaded
	for rows.Next() {
		var (
			recordID                          int64
			ts, heroName                      string
			hc1, hc2, f1, f2, f3, turn, river sql.NullString
			showdown, flagged                 int
		)
		h := handlog.NewHandRecord(0)
		err := rows.Scan(
			&recordID, &h.HandID, &h.SessionID, &ts, &h.DealerSeat,
			&h.SmallBlind, &h.BigBlind, &h.HeroSeat, &heroName,
			&hc1, &hc2, &f1, &f2, &f3, &turn, &river,
			&h.PotTotal, &showdown, &flagged,
		)
		if err != nil {
			return nil, fmt.Errorf("scan hand: %w", err)
		}
		h.HeroName = heroName
		h.WentToShowdown = showdown != 0
		h.Flagged = flagged != 0
		if ts != "" {
			if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
				h.Timestamp = parsed
			}
		}
		appendCard(&h.HeroCards, hc1)
		appendCard(&h.HeroCards, hc2)
		appendCard(&h.FlopCards, f1)
		appendCard(&h.FlopCards, f2)
		appendCard(&h.FlopCards, f3)
		h.TurnCard = scanCard(turn)
		h.RiverCard = scanCard(river)
		all = append(all, loaded{recordID, h})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, l := range all {
		if err := s.loadHandDetails(l.recordID, l.hand); err != nil {
			return nil, fmt.Errorf("hand %d: %w", l.hand.HandID, err)
		}
	}

	hands := make([]*handlog.HandRecord, len(all))
	for i, l := range all {
		hands[i] = l.hand
	}
	return hands, nil
}

func (s *Store) loadHandDetails(recordID int64, h *handlog.HandRecord) error {
	rows, err := s.db.Query(
		"SELECT seat, name, position, stack FROM players WHERE hand_record_id = ?", recordID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			seat, stack int
			name        string
			pos         sql.NullString
		)
		if err := rows.Scan(&seat, &name, &pos, &stack); err != nil {
			rows.Close()
			return err
		}
		h.Players[seat] = name
		h.Stacks[seat] = stack
		if pos.Valid {
			if p := handlog.ParsePosition(pos.String); p != handlog.NoPosition {
				h.Positions[seat] = p
			}
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(
		"SELECT seq, player_name, seat, action_type, amount, street, is_all_in FROM actions WHERE hand_record_id = ? ORDER BY seq", recordID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			a               handlog.PlayerAction
			actType, street string
			allIn           int
		)
		if err := rows.Scan(&a.Index, &a.PlayerName, &a.Seat, &actType, &a.Amount, &street, &allIn); err != nil {
			rows.Close()
			return err
		}
		a.Type = handlog.ParseActionType(actType)
		a.Street = handlog.ParseStreet(street)
		a.AllIn = allIn != 0
		h.Actions = append(h.Actions, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(
		"SELECT seat, card FROM shown_cards WHERE hand_record_id = ?", recordID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			seat int
			card string
		)
		if err := rows.Scan(&seat, &card); err != nil {
			rows.Close()
			return err
		}
		if c, err := deck.ParseCard(card); err == nil {
			h.ShownCards[seat] = append(h.ShownCards[seat], c)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if err := s.loadSeatAmounts(recordID, "winners", h.Winners); err != nil {
		return err
	}
	return s.loadSeatAmounts(recordID, "uncalled_bets", h.Uncalled)
}

func (s *Store) loadSeatAmounts(recordID int64, table string, into map[int]int) error {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT seat, amount FROM %s WHERE hand_record_id = ?", table), recordID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var seat, amount int
		if err := rows.Scan(&seat, &amount); err != nil {
			return err
		}
		into[seat] = amount
	}
	return rows.Err()
}

// Sessions lists imports, newest first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(
		"SELECT id, filename, import_date, hand_count, notes FROM sessions ORDER BY import_date DESC")
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Filename, &sess.ImportDate, &sess.HandCount, &sess.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// HandCount reports stored hands, optionally for one session.
func (s *Store) HandCount(sessionID string) (int, error) {
	var (
		count int
		err   error
	)
	if sessionID != "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM hands WHERE session_id = ?", sessionID).Scan(&count)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM hands").Scan(&count)
	}
	return count, err
}

// SaveTrainingResult appends one answered scenario.
func (s *Store) SaveTrainingResult(r TrainingResult) error {
	var handRef any
	if r.HandRecordID != 0 {
		handRef = r.HandRecordID
	}
	_, err := s.db.Exec(
		`INSERT INTO training_results
		 (hand_record_id, scenario_type, user_action, optimal_action, score, feedback, focus_area)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		handRef, r.ScenarioType, r.UserAction, r.OptimalAction, r.Score, r.Feedback, r.FocusArea,
	)
	if err != nil {
		return fmt.Errorf("insert training result: %w", err)
	}
	return nil
}

// TrainingResults returns the most recent answered scenarios.
func (s *Store) TrainingResults(limit int) ([]TrainingResult, error) {
	rows, err := s.db.Query(
		`SELECT id, COALESCE(hand_record_id, 0), scenario_type, user_action, optimal_action,
		        score, feedback, focus_area, session_date
		 FROM training_results ORDER BY session_date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query training results: %w", err)
	}
	defer rows.Close()

	var results []TrainingResult
	for rows.Next() {
		var r TrainingResult
		err := rows.Scan(&r.ID, &r.HandRecordID, &r.ScenarioType, &r.UserAction,
			&r.OptimalAction, &r.Score, &r.Feedback, &r.FocusArea, &r.SessionDate)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// CachedAnalysis returns a stored AI review, or nil when absent.
func (s *Store) CachedAnalysis(handID int, sessionID, analysisType string) (*AnalysisResult, error) {
	var r AnalysisResult
	err := s.db.QueryRow(
		`SELECT hand_id, session_id, analysis_type, ai_explanation, ev_loss, error_grade, created_at
		 FROM analysis_results WHERE hand_id = ? AND session_id = ? AND analysis_type = ?`,
		handID, sessionID, analysisType,
	).Scan(&r.HandID, &r.SessionID, &r.AnalysisType, &r.Explanation, &r.EVLoss, &r.ErrorGrade, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query analysis: %w", err)
	}
	return &r, nil
}

// SaveAnalysis inserts or refreshes a cached AI review.
func (s *Store) SaveAnalysis(r AnalysisResult) error {
	_, err := s.db.Exec(
		`INSERT INTO analysis_results (hand_id, session_id, analysis_type, ai_explanation, ev_loss, error_grade)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (hand_id, session_id, analysis_type) DO UPDATE SET
		   ai_explanation = excluded.ai_explanation,
		   ev_loss = excluded.ev_loss,
		   error_grade = excluded.error_grade,
		   created_at = CURRENT_TIMESTAMP`,
		r.HandID, r.SessionID, r.AnalysisType, r.Explanation, r.EVLoss, r.ErrorGrade,
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

func cardAt(cards []deck.Card, i int) deck.Card {
	if i < len(cards) {
		return cards[i]
	}
	return deck.Card{}
}

func cardColumn(c deck.Card) any {
	if !c.Valid() {
		return nil
	}
	return c.Short()
}

func boolColumn(b bool) int {
	if b {
		return 1
	}
	return 0
}

func appendCard(dst *[]deck.Card, col sql.NullString) {
	if !col.Valid || col.String == "" {
		return
	}
	if c, err := deck.ParseCard(col.String); err == nil {
		*dst = append(*dst, c)
	}
}

func scanCard(col sql.NullString) deck.Card {
	if !col.Valid || col.String == "" {
		return deck.Card{}
	}
	c, err := deck.ParseCard(col.String)
	if err != nil {
		return deck.Card{}
	}
	return c
}
