// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"math"

	"github.com/danielhkuo/balatro-poker/models"
)

// ReferenceValues is the Fibonacci-like scale used by the reference-value
// effects when an effect does not carry its own list.
var ReferenceValues = []int{1, 2, 3, 5, 8, 13, 21, 34}

// Category names an effect family
type Category string

const (
	CategoryFlat      Category = "flat"
	CategoryCard      Category = "card"
	CategoryAggregate Category = "aggregate"
	CategoryRandom    Category = "random"
	CategoryDelegate  Category = "delegate"
	CategoryMissing   Category = "missing"
)

// Effect is a vote transformation. The set of implementations is closed:
// FlatEffect, CardEffect, AggregateEffect, RandomEffect and DelegateEffect.
type Effect interface {
	Category() Category
	apply(ctx VoteContext) []int
}

// ---------- Flat ----------

type FlatOp string

const (
	FlatAdd          FlatOp = "add"
	FlatMultiply     FlatOp = "multiply"
	FlatHalve        FlatOp = "halve"
	FlatSubtractFrom FlatOp = "subtract_from" // Amount - v
	FlatSqrt         FlatOp = "sqrt"
	FlatAddPerJoker  FlatOp = "add_per_joker" // v + Amount * active jokers
	FlatNearest      FlatOp = "nearest"       // snap to closest reference value
)

// FlatEffect applies the same arithmetic to every vote
type FlatEffect struct {
	Op     FlatOp
	Amount int
	Values []int // reference values for FlatNearest
}

func (FlatEffect) Category() Category { return CategoryFlat }

func (e FlatEffect) apply(ctx VoteContext) []int {
	return mapVotes(ctx.Votes, func(_, v int) int {
		switch e.Op {
		case FlatAdd:
			return v + e.Amount
		case FlatMultiply:
			return v * e.Amount
		case FlatHalve:
			return atLeastOne(roundDiv(v, 2))
		case FlatSubtractFrom:
			return atLeastOne(e.Amount - v)
		case FlatSqrt:
			return atLeastOne(int(math.Round(math.Sqrt(float64(max(v, 0))))))
		case FlatAddPerJoker:
			return v + e.Amount*len(ctx.Jokers)
		case FlatNearest:
			return nearest(referenceOr(e.Values), v)
		}
		return v
	})
}

// nearest returns the reference value closest to v; ties go to the earlier
// entry.
func nearest(values []int, v int) int {
	if len(values) == 0 {
		return v
	}
	best := values[0]
	bestDiff := abs(v - best)
	for _, r := range values[1:] {
		if d := abs(v - r); d < bestDiff {
			best, bestDiff = r, d
		}
	}
	return best
}

func referenceOr(values []int) []int {
	if len(values) == 0 {
		return ReferenceValues
	}
	return values
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ---------- Card ----------

type MatchKind string

const (
	MatchAny       MatchKind = "any"
	MatchSuit      MatchKind = "suit"
	MatchFace      MatchKind = "face"
	MatchOdd       MatchKind = "odd"
	MatchAce       MatchKind = "ace"
	MatchValues    MatchKind = "values"
	MatchFirst     MatchKind = "first"      // first selected card only
	MatchFirstFace MatchKind = "first_face" // first selected face card only
)

// CardMatch is a predicate over a player's selected cards
type CardMatch struct {
	Kind   MatchKind
	Suit   models.Suit
	Values []int
}

func (m CardMatch) matches(c models.Card) bool {
	switch m.Kind {
	case MatchAny, MatchFirst:
		return true
	case MatchSuit:
		return c.Suit == m.Suit
	case MatchFace, MatchFirstFace:
		return c.IsFace()
	case MatchOdd:
		return c.Value%2 == 1
	case MatchAce:
		return c.IsAce()
	case MatchValues:
		for _, v := range m.Values {
			if c.Value == v {
				return true
			}
		}
	}
	return false
}

// filter returns the matching cards, honouring the first-only kinds
func (m CardMatch) filter(cards []models.Card) []models.Card {
	var out []models.Card
	for _, c := range cards {
		if !m.matches(c) {
			continue
		}
		out = append(out, c)
		if m.Kind == MatchFirst || m.Kind == MatchFirstFace {
			break
		}
	}
	return out
}

// CardEffect scores each player's own selected cards. For n matching
// cards worth s in total the vote becomes
//
//	(v + n*Bonus + Repeat*s) * Multiplier
//
// where Multiplier only applies when n > 0.
type CardEffect struct {
	Match      CardMatch
	Bonus      int // flat bonus per matching card
	Repeat     int // extra times each matching card's value is counted
	Multiplier int // applied once when anything matched; 0 or 1 means none
}

func (CardEffect) Category() Category { return CategoryCard }

func (e CardEffect) apply(ctx VoteContext) []int {
	return mapVotes(ctx.Votes, func(i, v int) int {
		matched := e.Match.filter(ctx.selectedCards(i))
		if len(matched) == 0 {
			return v
		}
		out := v + len(matched)*e.Bonus + e.Repeat*models.SumCards(matched)
		if e.Multiplier > 1 {
			out *= e.Multiplier
		}
		return out
	})
}

// ---------- Aggregate ----------

type Stat string

const (
	StatMin     Stat = "min"
	StatMax     Stat = "max"
	StatAverage Stat = "average" // rounded to nearest
	StatMedian  Stat = "median"
)

type AggregateOp string

const (
	AggregateReplace      AggregateOp = "replace"       // every vote becomes the stat
	AggregateCap          AggregateOp = "cap"           // votes above the stat become the stat
	AggregateAdd          AggregateOp = "add"           // stat added to every vote
	AggregateDoubleEqual  AggregateOp = "double_equal"  // votes equal to the stat are doubled
	AggregateSwapExtremes AggregateOp = "swap_extremes" // min and max values trade places
)

// AggregateEffect rewrites votes using a statistic of the whole vote list.
// The statistic is computed from ctx.Votes on every call.
type AggregateEffect struct {
	Stat Stat
	Op   AggregateOp
}

func (AggregateEffect) Category() Category { return CategoryAggregate }

func (e AggregateEffect) apply(ctx VoteContext) []int {
	if e.Op == AggregateSwapExtremes {
		lo, hi := ctx.Min(), ctx.Max()
		return mapVotes(ctx.Votes, func(_, v int) int {
			switch v {
			case lo:
				return hi
			case hi:
				return lo
			}
			return v
		})
	}

	s := ctx.stat(e.Stat)
	return mapVotes(ctx.Votes, func(_, v int) int {
		switch e.Op {
		case AggregateReplace:
			return s
		case AggregateCap:
			return min(v, s)
		case AggregateAdd:
			return v + s
		case AggregateDoubleEqual:
			if v == s {
				return v * 2
			}
		}
		return v
	})
}

// ---------- Random ----------

type RandomOp string

const (
	RandomAdd      RandomOp = "add"      // v + rand[Min, Max]
	RandomMultiply RandomOp = "multiply" // v * rand[Min, Max]
	RandomPick     RandomOp = "pick"     // random reference value
)

// RandomEffect draws from ctx.Rand once per vote
type RandomEffect struct {
	Op     RandomOp
	Min    int
	Max    int
	Values []int // reference values for RandomPick
}

func (RandomEffect) Category() Category { return CategoryRandom }

func (e RandomEffect) apply(ctx VoteContext) []int {
	r := ctx.random()
	return mapVotes(ctx.Votes, func(_, v int) int {
		switch e.Op {
		case RandomAdd:
			return v + randBetween(r, e.Min, e.Max)
		case RandomMultiply:
			return v * randBetween(r, e.Min, e.Max)
		case RandomPick:
			values := referenceOr(e.Values)
			return values[r.IntN(len(values))]
		}
		return v
	})
}

// ---------- Delegate ----------

type DelegateTarget string

const (
	DelegateLeftmost  DelegateTarget = "leftmost"   // copy the first joker
	DelegateRight     DelegateTarget = "right"      // copy the next joker
	DelegateLeftTwice DelegateTarget = "left_twice" // run the previous joker twice
)

// DelegateEffect borrows a sibling joker's effect. When the sibling does not
// exist, or delegation has already hopped once per active joker (a cycle),
// the votes pass through unchanged.
type DelegateEffect struct {
	Target DelegateTarget
}

func (DelegateEffect) Category() Category { return CategoryDelegate }

func (e DelegateEffect) apply(ctx VoteContext) []int {
	if ctx.depth >= len(ctx.Jokers) {
		return cloneVotes(ctx.Votes)
	}

	switch e.Target {
	case DelegateLeftmost:
		if len(ctx.Jokers) > 0 && ctx.Index != 0 {
			return ctx.delegate(0, ctx.Votes)
		}
	case DelegateRight:
		if next := ctx.Index + 1; next < len(ctx.Jokers) {
			return ctx.delegate(next, ctx.Votes)
		}
	case DelegateLeftTwice:
		if prev := ctx.Index - 1; prev >= 0 && prev < len(ctx.Jokers) {
			first := ctx.delegate(prev, ctx.Votes)
			return ctx.delegate(prev, first)
		}
	}
	return cloneVotes(ctx.Votes)
}

// ---------- Missing ----------

// missingEffect stands in for a persisted joker name the catalog no longer
// has. It leaves votes unchanged.
type missingEffect struct{}

func (missingEffect) Category() Category { return CategoryMissing }

func (missingEffect) apply(ctx VoteContext) []int { return cloneVotes(ctx.Votes) }
