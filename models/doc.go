// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines card, game, request and response types for the API.

# Cards

Card is an immutable value: a numeric value, a Suit and an optional face
label. DisplayValue derives what a client shows:

	models.NewCard(1, models.Spades).DisplayValue()                   // "A"
	models.NewCard(8, models.Hearts).DisplayValue()                   // "8"
	models.NewFaceCard(models.FaceKing, models.Clubs).DisplayValue() // "K"

Suits marshal as their names ("Hearts", "Diamonds", "Clubs", "Spades").

# Domain Types

  - Game: codes, phase, settings, players and active joker names
  - Player: hand, selected cards, original and final vote
  - RoundResult: immutable record written at every reveal

Active jokers are stored by catalog name only. Their effects live in the
jokers package and are looked up again whenever a game is loaded.

# Phases

	PhaseSetup    = "Setup"
	PhaseVoting   = "Voting"
	PhaseRevealed = "Revealed"

# Request Types

  - CreateGameRequest: allowedValues, jokerCount, lobby
  - JoinGameRequest: name
  - SubmitVoteRequest: playerId, selectedCards
  - UpdateSettingsRequest: allowedValues, jokerCount

# Response Types

  - GameView: admin or player projection of a game
  - CatalogResponse: the joker catalog in use
  - RoundsResponse: revealed round history
  - ErrorResponse: error, message

# Errors

errors.go declares the sentinel errors shared by the game, db and handlers
packages (ErrGameNotFound, ErrInvalidVote, ErrWrongPhase, ...).
*/
package models
