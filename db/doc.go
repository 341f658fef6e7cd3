// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists games.

# Opening a Database

Open picks the driver, pings, and creates the schema:

	conn, err := db.Open(db.TypePostgres, "postgres://...")  // github.com/lib/pq
	conn, err := db.Open(db.TypeSQLite, "file:poker.db")     // modernc.org/sqlite
	store := db.NewSQLStore(conn)

SQLite connections are limited to one so ":memory:" databases behave as a
single database.

# Schema Creation

CreateSchema initializes all required tables. Safe to call multiple times -
uses IF NOT EXISTS for all tables and indexes.

  - game: codes, phase, settings, round number, active joker names
  - player: one row per player, ordered by seat
  - round_result: immutable record of each reveal

Cards, allowed values and joker names are stored as JSON text. Queries use
$N placeholders, which both drivers accept.

# Relationships

	game 1──* player
	game 1──* round_result

All foreign keys use ON DELETE CASCADE.

# In-Memory Store

MemoryStore keeps games in maps guarded by a RWMutex. It is the default
when no database URL is configured; state is lost on restart.

Both stores return models.ErrGameNotFound for unknown IDs and codes.
*/
package db
