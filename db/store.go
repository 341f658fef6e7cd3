// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/balatro-poker/models"
)

// SQLStore persists games in PostgreSQL or SQLite
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateGame inserts a new game and its players
func (s *SQLStore) CreateGame(ctx context.Context, g *models.Game) error {
	allowed, active, err := encodeGame(g)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game (id, admin_code, player_code, phase, allowed_values, joker_count, round_no, active_jokers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, g.ID, g.AdminCode, g.PlayerCode, string(g.Phase), allowed, g.JokerCount, g.Round, active, g.CreatedAt.UTC(), g.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	if err := savePlayers(ctx, tx, g); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveGame writes the full game state, upserting players
func (s *SQLStore) SaveGame(ctx context.Context, g *models.Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateGame(ctx, tx, g); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveReveal writes the revealed game and its round result in one
// transaction
func (s *SQLStore) SaveReveal(ctx context.Context, g *models.Game, r models.RoundResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateGame(ctx, tx, g); err != nil {
		return err
	}
	if err := insertRound(ctx, tx, r); err != nil {
		return err
	}

	return tx.Commit()
}

func updateGame(ctx context.Context, tx *sql.Tx, g *models.Game) error {
	allowed, active, err := encodeGame(g)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE game
		SET phase = $2, allowed_values = $3, joker_count = $4, round_no = $5, active_jokers = $6, updated_at = $7
		WHERE id = $1
	`, g.ID, string(g.Phase), allowed, g.JokerCount, g.Round, active, g.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrGameNotFound
	}

	return savePlayers(ctx, tx, g)
}

func savePlayers(ctx context.Context, tx *sql.Tx, g *models.Game) error {
	for seat, p := range g.Players {
		hand, err := json.Marshal(nonNil(p.Hand))
		if err != nil {
			return fmt.Errorf("failed to encode hand: %w", err)
		}
		selected, err := json.Marshal(nonNil(p.SelectedCards))
		if err != nil {
			return fmt.Errorf("failed to encode selected cards: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO player (id, game_id, seat, name, hand, selected_cards, has_voted, original_vote, final_vote, joined_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				hand = excluded.hand,
				selected_cards = excluded.selected_cards,
				has_voted = excluded.has_voted,
				original_vote = excluded.original_vote,
				final_vote = excluded.final_vote
		`, p.ID, g.ID, seat, p.Name, string(hand), string(selected), p.HasVoted, p.OriginalVote, p.FinalVote, p.JoinedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to save player %s: %w", p.ID, err)
		}
	}
	return nil
}

// GetGame loads a game with its players in seat order
func (s *SQLStore) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var g models.Game
	var phase, allowed, active string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, admin_code, player_code, phase, allowed_values, joker_count, round_no, active_jokers, created_at, updated_at
		FROM game
		WHERE id = $1
	`, id).Scan(&g.ID, &g.AdminCode, &g.PlayerCode, &phase, &allowed, &g.JokerCount, &g.Round, &active, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query game: %w", err)
	}

	g.Phase = models.Phase(phase)
	if err := json.Unmarshal([]byte(allowed), &g.AllowedValues); err != nil {
		return nil, fmt.Errorf("corrupt allowed_values for game %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(active), &g.ActiveJokers); err != nil {
		return nil, fmt.Errorf("corrupt active_jokers for game %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, hand, selected_cards, has_voted, original_vote, final_vote, joined_at
		FROM player
		WHERE game_id = $1
		ORDER BY seat
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Player
		var hand, selected string
		if err := rows.Scan(&p.ID, &p.Name, &hand, &selected, &p.HasVoted, &p.OriginalVote, &p.FinalVote, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		if err := json.Unmarshal([]byte(hand), &p.Hand); err != nil {
			return nil, fmt.Errorf("corrupt hand for player %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(selected), &p.SelectedCards); err != nil {
			return nil, fmt.Errorf("corrupt selected_cards for player %s: %w", p.ID, err)
		}
		if len(p.SelectedCards) == 0 {
			p.SelectedCards = nil
		}
		g.Players = append(g.Players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	return &g, nil
}

// GameIDByAdminCode resolves an admin code to a game ID
func (s *SQLStore) GameIDByAdminCode(ctx context.Context, code string) (string, error) {
	return s.gameIDBy(ctx, "admin_code", code)
}

// GameIDByPlayerCode resolves a player code to a game ID
func (s *SQLStore) GameIDByPlayerCode(ctx context.Context, code string) (string, error) {
	return s.gameIDBy(ctx, "player_code", code)
}

// column is always one of the two constants above
func (s *SQLStore) gameIDBy(ctx context.Context, column, code string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM game WHERE "+column+" = $1", code).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrGameNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query game: %w", err)
	}
	return id, nil
}

func insertRound(ctx context.Context, tx *sql.Tx, r models.RoundResult) error {
	jokers, err := json.Marshal(nonNil(r.Jokers))
	if err != nil {
		return fmt.Errorf("failed to encode jokers: %w", err)
	}
	votes, err := json.Marshal(nonNil(r.Votes))
	if err != nil {
		return fmt.Errorf("failed to encode votes: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO round_result (id, game_id, round_no, jokers, votes, revealed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.ID, r.GameID, r.Round, string(jokers), string(votes), r.RevealedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert round result: %w", err)
	}
	return nil
}

// ListRounds returns a game's revealed rounds, oldest first
func (s *SQLStore) ListRounds(ctx context.Context, gameID string) ([]models.RoundResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_id, round_no, jokers, votes, revealed_at
		FROM round_result
		WHERE game_id = $1
		ORDER BY round_no, revealed_at
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds := []models.RoundResult{}
	for rows.Next() {
		var r models.RoundResult
		var jokers, votes string
		if err := rows.Scan(&r.ID, &r.GameID, &r.Round, &jokers, &votes, &r.RevealedAt); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		if err := json.Unmarshal([]byte(jokers), &r.Jokers); err != nil {
			return nil, fmt.Errorf("corrupt jokers for round %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(votes), &r.Votes); err != nil {
			return nil, fmt.Errorf("corrupt votes for round %s: %w", r.ID, err)
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rounds: %w", err)
	}

	return rounds, nil
}

func encodeGame(g *models.Game) (allowed, active string, err error) {
	a, err := json.Marshal(nonNil(g.AllowedValues))
	if err != nil {
		return "", "", fmt.Errorf("failed to encode allowed values: %w", err)
	}
	j, err := json.Marshal(nonNil(g.ActiveJokers))
	if err != nil {
		return "", "", fmt.Errorf("failed to encode active jokers: %w", err)
	}
	return string(a), string(j), nil
}

// nonNil keeps empty lists as "[]" rather than "null"
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
