// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jokers implements the joker catalog, joker selection and the
effect pipeline that turns original votes into final votes.

# Catalog

A Catalog is an immutable list of Joker entries keyed by name. Each entry
carries a Position (Left, Anywhere, Right), a MinJokers eligibility floor
and an Effect. Effects are a closed set of value types, one per family:

  - FlatEffect: same arithmetic on every vote (+4, x2, halve, sqrt, ...)
  - CardEffect: bonus from the player's own selected cards
  - AggregateEffect: min, max, average or median of all votes
  - RandomEffect: draws from the injected Rand
  - DelegateEffect: borrows a sibling joker's effect by position

Two catalogs are built in (Balatro and Classic); ParseCatalog and
LoadCatalog read custom ones from YAML.

Games persist joker names only. After loading, re-bind them:

	active, unknown := catalog.Resolve(game.ActiveJokers)

# Selection

	engine := jokers.NewEngine(jokers.Classic, nil)
	active := engine.Select(game.JokerCount, game.JokerCount)

Select filters by MinJokers, draws without replacement and arranges the
draw Left, Anywhere, Right.

# Pipeline

	final := jokers.Apply(engine.Context(votes, players, active))

Apply runs the jokers in order, each on the previous joker's output. Votes
and players are index-aligned. Statistics are recomputed from the current
votes whenever an effect reads them.

# Randomness

Rand is satisfied by *rand.Rand from math/rand/v2. Tests pass a seeded or
scripted source to make randomized effects deterministic.
*/
package jokers
