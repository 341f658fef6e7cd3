// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/balatro-poker/models"
)

const officeCatalog = `
name: office
jokers:
  - name: Coffee Break
    description: Adds +2 to each vote
    effect: {kind: flat, op: add, amount: 2}
  - name: Red Tape
    description: Each Heart gives +1
    position: anywhere
    effect: {kind: card, match: suit, suit: hearts, bonus: 1}
  - name: Consensus
    description: Everyone gets the median
    min_jokers: 2
    effect: {kind: aggregate, stat: median, op: replace}
  - name: Reorg
    description: Swap highest and lowest
    min_jokers: 2
    effect: {kind: aggregate, op: swap_extremes}
  - name: Estimate Roulette
    description: Random pick
    effect: {kind: random, op: pick, values: [1, 3, 5]}
  - name: Delegator
    description: Copies the joker to the right
    position: left
    min_jokers: 2
    effect: {kind: delegate, target: right}
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(officeCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	if c.Name() != "office" || c.Len() != 6 {
		t.Fatalf("got catalog %q with %d jokers", c.Name(), c.Len())
	}

	red := mustLookup(t, c, "Red Tape")
	effect, ok := red.Effect.(CardEffect)
	if !ok || effect.Match.Suit != models.Hearts {
		t.Errorf("Red Tape effect = %#v", red.Effect)
	}

	delegator := mustLookup(t, c, "Delegator")
	if delegator.Position != Left || delegator.MinJokers != 2 {
		t.Errorf("Delegator = %+v", delegator)
	}

	active := []Joker{delegator, mustLookup(t, c, "Coffee Break")}
	assertVotes(t, Apply(VoteContext{Votes: []int{1, 2}, Jokers: active}), []int{5, 6})
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", `jokers: [{name: a, effect: {kind: magic}}]`},
		{"unknown flat op", `jokers: [{name: a, effect: {kind: flat, op: divide}}]`},
		{"unknown match", `jokers: [{name: a, effect: {kind: card, match: colour}}]`},
		{"bad suit", `jokers: [{name: a, effect: {kind: card, match: suit, suit: stars}}]`},
		{"values without values", `jokers: [{name: a, effect: {kind: card, match: values}}]`},
		{"unknown stat", `jokers: [{name: a, effect: {kind: aggregate, op: cap, stat: mode}}]`},
		{"empty range", `jokers: [{name: a, effect: {kind: random, op: add, min: 5, max: 1}}]`},
		{"unknown target", `jokers: [{name: a, effect: {kind: delegate, target: up}}]`},
		{"bad position", `jokers: [{name: a, position: middle, effect: {kind: flat, op: add}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidJoker) {
				t.Errorf("expected ErrInvalidJoker, got %v", err)
			}
		})
	}

	if _, err := ParseCatalog([]byte("jokers: [")); err == nil {
		t.Error("expected YAML syntax error")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.yaml")
	if err := os.WriteFile(path, []byte(officeCatalog), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("Len() = %d, want 6", c.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
