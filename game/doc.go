// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game orchestrates planning-poker games on top of the joker engine.

# Lifecycle

	Setup ──StartVoting──> Voting ──Reveal──> Revealed
	                          ^                   │
	                          └───StartNewRound───┘

Games created with Lobby set start in Setup; otherwise they start in
Voting. Players may join in any phase.

# Operations

	m := game.NewManager(store, jokers.NewEngine(jokers.Balatro, nil))

	g, err := m.CreateGame(ctx, req)
	p, err := m.Join(ctx, g.PlayerCode, "Ann")
	p, err  = m.SubmitVote(ctx, g.PlayerCode, models.SubmitVoteRequest{...})
	r, err := m.Reveal(ctx, g.AdminCode)
	g, err  = m.StartNewRound(ctx, g.AdminCode)

Errors wrap the sentinels in models (ErrGameNotFound, ErrWrongPhase,
ErrInvalidVote, ...) and are meant to be checked with errors.Is.

# Votes

A vote is a selection of cards from the player's hand. Each hand card can
be used once, and the selection must sum to one of the game's allowed
values. Hands are A, 2, 3, 5, 8, J, Q, K with random suits, dealt on join
and again every round.

# Reveal

Reveal draws JokerCount jokers from the catalog, runs them over the
original votes of the players who voted (in join order) and stores the
results as final votes. The round is appended to the game's history with a
ULID.

# Concurrency

Each game has its own mutex. Operations lock it, re-read the game from the
Store, mutate, and save. Views are rendered from such snapshots, so a
reveal never observes a half-applied vote.
*/
package game
