// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Common errors
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not found in game")
	ErrInvalidPlayerName = errors.New("invalid player name")
	ErrInvalidVote       = errors.New("selected cards do not sum to an allowed value")
	ErrCardNotInHand     = errors.New("selected card is not in the player's hand")
	ErrWrongPhase        = errors.New("operation not allowed in current game phase")
	ErrInvalidSettings   = errors.New("invalid game settings")
)
