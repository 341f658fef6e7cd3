// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"slices"

	"github.com/danielhkuo/balatro-poker/models"
)

// Engine pairs a catalog with the random source used to draw from it
type Engine struct {
	catalog *Catalog
	rng     Rand
}

// NewEngine creates an engine. A nil rng uses DefaultRand.
func NewEngine(catalog *Catalog, rng Rand) *Engine {
	if rng == nil {
		rng = DefaultRand
	}
	return &Engine{catalog: catalog, rng: rng}
}

func (e *Engine) Catalog() *Catalog { return e.catalog }

func (e *Engine) Rand() Rand { return e.rng }

// Select draws up to count distinct jokers whose MinJokers is at most
// totalEnabled and arranges them by position. It returns fewer jokers when
// the catalog runs out and none when count <= 0.
func (e *Engine) Select(count, totalEnabled int) []Joker {
	if count <= 0 {
		return nil
	}

	var available []Joker
	for _, j := range e.catalog.jokers {
		if j.MinJokers <= totalEnabled {
			available = append(available, j)
		}
	}
	if len(available) == 0 {
		return nil
	}

	drawn := make([]Joker, 0, min(count, len(available)))
	for len(drawn) < count && len(available) > 0 {
		k := e.rng.IntN(len(available))
		drawn = append(drawn, available[k])
		available = slices.Delete(available, k, k+1)
	}

	return Arrange(drawn)
}

// Context builds the pipeline input for a reveal, sharing the engine's
// random source.
func (e *Engine) Context(votes []int, players []models.Player, active []Joker) VoteContext {
	return VoteContext{
		Votes:   votes,
		Players: players,
		Jokers:  active,
		Rand:    e.rng,
	}
}

// Arrange orders jokers Left, then Anywhere, then Right. Order within each
// group is preserved.
func Arrange(jokers []Joker) []Joker {
	arranged := make([]Joker, 0, len(jokers))
	for _, pos := range []Position{Left, Anywhere, Right} {
		for _, j := range jokers {
			if j.Position == pos {
				arranged = append(arranged, j)
			}
		}
	}
	return arranged
}
