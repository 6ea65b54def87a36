package player

import (
	"database/sql"
	"fmt"
	"strings"

	"blackjack/internal/game"

	"github.com/google/uuid"
)

// RoundRecord is one settled round as kept in the ledger.
type RoundRecord struct {
	ID           string
	RoundNo      int
	Bet          int
	Outcome      string
	BalanceDelta int
	BalanceAfter int
	PlayerCards  string
	DealerCards  string
	PlayerTotal  int
	DealerTotal  int
}

type Stats struct {
	SessionID  string
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	Wagered    int
	Net        int
	WinRate    float64
}

type Repository interface {
	RecordRound(p *Player, res game.Result) error
	Summary(sessionID string) (Stats, error)
	BestRounds(sessionID string, limit int) ([]RoundRecord, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// RecordRound stores res under the player's session. Call it after Settle so
// the round number and balance reflect the settled round.
func (r *SQLiteRepository) RecordRound(p *Player, res game.Result) error {
	_, err := r.db.Exec(`
		INSERT INTO rounds (
			id, session_id, round_no, bet, outcome, balance_delta, balance_after,
			player_cards, dealer_cards, player_total, dealer_total
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), p.ID, p.Rounds, res.Bet, res.Outcome.String(),
		res.BalanceDelta, p.Balance, joinCards(res.PlayerCards), joinCards(res.DealerCards),
		res.PlayerTotal, res.DealerTotal)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Summary(sessionID string) (Stats, error) {
	s := Stats{SessionID: sessionID}

	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome IN ('win', 'blackjack') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome IN ('loss', 'bust') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'push' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'blackjack' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'bust' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(bet), 0),
			COALESCE(SUM(balance_delta), 0)
		FROM rounds WHERE session_id = ?
	`, sessionID).Scan(
		&s.Rounds, &s.Wins, &s.Losses, &s.Pushes,
		&s.Blackjacks, &s.Busts, &s.Wagered, &s.Net,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to summarize session: %w", err)
	}

	if s.Rounds > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
	}
	return s, nil
}

func (r *SQLiteRepository) BestRounds(sessionID string, limit int) ([]RoundRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, round_no, bet, outcome, balance_delta, balance_after,
			player_cards, dealer_cards, player_total, dealer_total
		FROM rounds
		WHERE session_id = ? AND balance_delta > 0
		ORDER BY balance_delta DESC, round_no ASC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		if err := rows.Scan(
			&rec.ID, &rec.RoundNo, &rec.Bet, &rec.Outcome, &rec.BalanceDelta, &rec.BalanceAfter,
			&rec.PlayerCards, &rec.DealerCards, &rec.PlayerTotal, &rec.DealerTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read best rounds: %w", err)
	}
	return records, nil
}

func joinCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
