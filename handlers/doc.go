// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Balatro Poker API.

# Handler Types

  - GameHandler: game lifecycle, joining, voting and reveals
  - JokerHandler: listing of the active joker catalog

Handlers are thin: they decode the request, call the game manager and
encode the result.

	gameHandler := handlers.NewGameHandler(manager)
	jokerHandler := handlers.NewJokerHandler(manager.Catalog())

# Capability Codes

A game is reached through one of two codes returned at creation. The admin
code unlocks the admin view and admin actions; the player code is shared
with the table and only exposes the player view.

	POST /api/game/create                       → CreateGame (admin view)
	GET  /api/game/admin/{adminCode}            → GetAdminGame
	GET  /api/game/player/{playerCode}          → GetPlayerGame

# Playing a Round

	POST /api/game/player/{playerCode}/join     → JoinGame (returns the player and hand)
	POST /api/game/player/{playerCode}/vote     → SubmitVote
	POST /api/game/admin/{adminCode}/reveal     → Reveal (runs the jokers)
	POST /api/game/admin/{adminCode}/new-round  → NewRound

Games created with "lobby": true start in Setup and need start-voting
before players can vote.

# Errors

Game errors map to statuses in errors.go: unknown codes and players are 404,
phase violations are 409 and invalid input is 400.
*/
package handlers
