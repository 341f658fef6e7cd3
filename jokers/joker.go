// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/danielhkuo/balatro-poker/models"
)

// Position constrains where a joker runs in the pipeline
type Position int

const (
	Anywhere Position = iota
	Left
	Right
)

var positionNames = [...]string{"Anywhere", "Left", "Right"}

func (p Position) String() string {
	if p < Anywhere || p > Right {
		return "Position(" + strconv.Itoa(int(p)) + ")"
	}
	return positionNames[p]
}

// ParsePosition accepts "anywhere", "left" or "right" in any case.
// An empty string means Anywhere.
func ParsePosition(s string) (Position, error) {
	if s == "" {
		return Anywhere, nil
	}
	for i, n := range positionNames {
		if strings.EqualFold(n, s) {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Rand is the random source used by selection and by randomized effects.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand uses the math/rand/v2 global generator and is safe for
// concurrent use.
var DefaultRand Rand = globalRand{}

// randBetween returns a value in [lo, hi]
func randBetween(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Joker is a catalog entry. Entries are immutable and shared by every game;
// games refer to them by Name.
type Joker struct {
	Name        string
	Description string
	Position    Position
	MinJokers   int // minimum enabled jokers before this entry is eligible
	Effect      Effect
}

// Transform runs the joker's effect against ctx. It never mutates ctx.Votes.
func (j Joker) Transform(ctx VoteContext) []int {
	if j.Effect == nil {
		return cloneVotes(ctx.Votes)
	}
	return j.Effect.apply(ctx)
}

// Known is false for placeholders produced when a persisted name has no
// catalog entry.
func (j Joker) Known() bool {
	if j.Effect == nil {
		return false
	}
	_, missing := j.Effect.(missingEffect)
	return !missing
}

// View projects the joker for API responses
func (j Joker) View() models.JokerView {
	return models.JokerView{
		Name:        j.Name,
		Description: j.Description,
		Position:    j.Position.String(),
		MinJokers:   j.MinJokers,
		Known:       j.Known(),
	}
}

// Names returns the joker names in order
func Names(jokers []Joker) []string {
	names := make([]string, len(jokers))
	for i, j := range jokers {
		names[i] = j.Name
	}
	return names
}

// Views projects a joker list for API responses
func Views(jokers []Joker) []models.JokerView {
	views := make([]models.JokerView, len(jokers))
	for i, j := range jokers {
		views[i] = j.View()
	}
	return views
}
