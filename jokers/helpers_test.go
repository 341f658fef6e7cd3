// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"slices"
	"testing"

	"github.com/danielhkuo/balatro-poker/models"
)

// scriptedRand returns the scripted values in order (mod n), cycling
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.calls%len(s.values)] % n
	s.calls++
	return v
}

func mustLookup(t *testing.T, c *Catalog, name string) Joker {
	t.Helper()
	j, ok := c.Lookup(name)
	if !ok {
		t.Fatalf("catalog %s has no joker %q", c.Name(), name)
	}
	return j
}

func playerWith(cards ...models.Card) models.Player {
	return models.Player{SelectedCards: cards, HasVoted: true, OriginalVote: models.SumCards(cards)}
}

func assertVotes(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("votes = %v, want %v", got, want)
	}
}
