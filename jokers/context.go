// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"math"
	"slices"

	"github.com/danielhkuo/balatro-poker/models"
)

// VoteContext is the input to one effect application. Votes and Players
// are index-aligned. Effects receive it by value and return a new vote
// list; delegation builds a fresh context rather than editing this one.
type VoteContext struct {
	Votes   []int
	Players []models.Player
	Jokers  []Joker // full arranged list for this reveal
	Index   int     // position of the executing joker in Jokers
	Rand    Rand

	depth int // delegation hops taken to reach this call
}

// Min is 0 for an empty vote list
func (c VoteContext) Min() int {
	if len(c.Votes) == 0 {
		return 0
	}
	return slices.Min(c.Votes)
}

// Max is 0 for an empty vote list
func (c VoteContext) Max() int {
	if len(c.Votes) == 0 {
		return 0
	}
	return slices.Max(c.Votes)
}

// Average is 0 for an empty vote list
func (c VoteContext) Average() float64 {
	if len(c.Votes) == 0 {
		return 0
	}
	sum := 0
	for _, v := range c.Votes {
		sum += v
	}
	return float64(sum) / float64(len(c.Votes))
}

// Median is the upper median: the element at len/2 of the sorted votes.
func (c VoteContext) Median() int {
	if len(c.Votes) == 0 {
		return 0
	}
	sorted := slices.Clone(c.Votes)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func (c VoteContext) stat(s Stat) int {
	switch s {
	case StatMin:
		return c.Min()
	case StatMax:
		return c.Max()
	case StatAverage:
		return int(math.Round(c.Average()))
	case StatMedian:
		return c.Median()
	}
	return 0
}

// Current returns the joker at Index
func (c VoteContext) Current() (Joker, bool) {
	if c.Index < 0 || c.Index >= len(c.Jokers) {
		return Joker{}, false
	}
	return c.Jokers[c.Index], true
}

func (c VoteContext) selectedCards(i int) []models.Card {
	if i < 0 || i >= len(c.Players) {
		return nil
	}
	return c.Players[i].SelectedCards
}

func (c VoteContext) random() Rand {
	if c.Rand == nil {
		return DefaultRand
	}
	return c.Rand
}

// delegate runs the joker at index against votes as if it were executing
// there.
func (c VoteContext) delegate(index int, votes []int) []int {
	next := c
	next.Votes = votes
	next.Index = index
	next.depth = c.depth + 1
	return c.Jokers[index].Transform(next)
}

func cloneVotes(votes []int) []int {
	return slices.Clone(votes)
}

func mapVotes(votes []int, f func(i, v int) int) []int {
	out := make([]int, len(votes))
	for i, v := range votes {
		out[i] = f(i, v)
	}
	return out
}

// roundDiv divides and rounds half away from zero
func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}

// atLeastOne applies the floor used by dividing and subtracting effects
func atLeastOne(v int) int {
	return max(1, v)
}
