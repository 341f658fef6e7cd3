// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropSchema removes every table. Used by tests that share a database.
func DropSchema(db *sql.DB) error {
	for _, table := range []string{"round_result", "player", "game"} {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

// One statement per entry. Card lists and vote lists are JSON text so the
// same DDL runs on PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS game (
    id TEXT PRIMARY KEY,
    admin_code TEXT NOT NULL UNIQUE,
    player_code TEXT NOT NULL UNIQUE,
    phase TEXT NOT NULL DEFAULT 'Voting' CHECK (phase IN ('Setup', 'Voting', 'Revealed')),
    allowed_values TEXT NOT NULL,
    joker_count INTEGER NOT NULL DEFAULT 1,
    round_no INTEGER NOT NULL DEFAULT 1,
    active_jokers TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_game_admin_code ON game(admin_code)`,
	`CREATE INDEX IF NOT EXISTS idx_game_player_code ON game(player_code)`,

	`CREATE TABLE IF NOT EXISTS player (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    seat INTEGER NOT NULL,
    name TEXT NOT NULL,
    hand TEXT NOT NULL,
    selected_cards TEXT NOT NULL DEFAULT '[]',
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    original_vote INTEGER NOT NULL DEFAULT 0,
    final_vote INTEGER NOT NULL DEFAULT 0,
    joined_at TIMESTAMP NOT NULL,
    UNIQUE (game_id, seat)
)`,
	`CREATE INDEX IF NOT EXISTS idx_player_game_id ON player(game_id)`,

	`CREATE TABLE IF NOT EXISTS round_result (
    id TEXT PRIMARY KEY,
    game_id TEXT NOT NULL REFERENCES game(id) ON DELETE CASCADE,
    round_no INTEGER NOT NULL,
    jokers TEXT NOT NULL,
    votes TEXT NOT NULL,
    revealed_at TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_round_result_game_id ON round_result(game_id)`,
}
