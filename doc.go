// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Balatro Poker API server.

Balatro Poker is a planning-poker game: players vote by picking cards from a
dealt hand, and when the admin reveals the round a random draw of jokers
rewrites the votes.

# Starting the Server

With no configuration the server keeps games in memory:

	go run .

Or with flags:

	go run . -p 3318 -t sqlite -d poker.db -catalog classic

# Configuration

Settings come from flags, the environment, or a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - DATABASE_TYPE (-t): memory, sqlite or postgres (guessed from the URL)
  - JOKER_CATALOG (-catalog): balatro, classic or a YAML catalog path
  - ENV_FILE (-env): dotenv file to load (default: .env)

# Architecture

  - jokers: Joker catalog, selection and the vote pipeline
  - game: Game orchestration and per-game locking
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - auth: Capability code generation
  - db: Schema, SQL store and in-memory store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
