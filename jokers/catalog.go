// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateJoker = errors.New("duplicate joker name")
	ErrInvalidJoker   = errors.New("invalid joker definition")
)

// Catalog is an immutable, ordered set of jokers keyed by name
type Catalog struct {
	name   string
	jokers []Joker
	index  map[string]int
}

// NewCatalog validates the entries and builds a catalog. MinJokers below 1
// is raised to 1.
func NewCatalog(name string, entries []Joker) (*Catalog, error) {
	c := &Catalog{
		name:   name,
		jokers: make([]Joker, 0, len(entries)),
		index:  make(map[string]int, len(entries)),
	}

	for _, j := range entries {
		if j.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidJoker)
		}
		if j.Effect == nil {
			return nil, fmt.Errorf("%w: %q has no effect", ErrInvalidJoker, j.Name)
		}
		if j.Position < Anywhere || j.Position > Right {
			return nil, fmt.Errorf("%w: %q has position %d", ErrInvalidJoker, j.Name, j.Position)
		}
		if _, dup := c.index[j.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJoker, j.Name)
		}
		j.MinJokers = max(j.MinJokers, 1)
		c.index[j.Name] = len(c.jokers)
		c.jokers = append(c.jokers, j)
	}

	return c, nil
}

func mustCatalog(name string, entries []Joker) *Catalog {
	c, err := NewCatalog(name, entries)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Name() string { return c.name }

func (c *Catalog) Len() int { return len(c.jokers) }

// All returns the entries in catalog order
func (c *Catalog) All() []Joker {
	return slices.Clone(c.jokers)
}

// Lookup finds an entry by exact name
func (c *Catalog) Lookup(name string) (Joker, bool) {
	i, ok := c.index[name]
	if !ok {
		return Joker{}, false
	}
	return c.jokers[i], true
}

// Resolve binds persisted joker names back to catalog entries, preserving
// order. Names the catalog does not know become placeholder jokers
// (Known() == false, votes pass through) and are also returned in unknown
// so the caller can report them.
func (c *Catalog) Resolve(names []string) (resolved []Joker, unknown []string) {
	resolved = make([]Joker, 0, len(names))
	for _, name := range names {
		j, ok := c.Lookup(name)
		if !ok {
			unknown = append(unknown, name)
			j = Joker{
				Name:        name,
				Description: "Unknown joker",
				MinJokers:   1,
				Effect:      missingEffect{},
			}
		}
		resolved = append(resolved, j)
	}
	return resolved, unknown
}
