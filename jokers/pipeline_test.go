// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"testing"

	"github.com/danielhkuo/balatro-poker/models"
)

func TestApply_NoJokersReturnsVotesUnchanged(t *testing.T) {
	voteSets := [][]int{
		{1},
		{5, 8, 13},
		{34, 1, 21, 2},
	}

	for _, votes := range voteSets {
		got := Apply(VoteContext{Votes: votes})
		assertVotes(t, got, votes)

		// Result must not alias the input
		if len(got) > 0 {
			got[0] = -1
			if votes[0] == -1 {
				t.Error("Apply() returned the input slice")
			}
		}
	}
}

func TestApply_AddToAll(t *testing.T) {
	joker := mustLookup(t, Balatro, "Joker")

	tests := []struct {
		name  string
		votes []int
		want  []int
	}{
		{"scenario", []int{5, 8, 13}, []int{9, 12, 17}},
		{"single", []int{1}, []int{5}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(VoteContext{Votes: tt.votes, Jokers: []Joker{joker}})
			assertVotes(t, got, tt.want)
		})
	}
}

func TestApply_Minimalist(t *testing.T) {
	ctx := VoteContext{
		Votes:  []int{3, 8, 21},
		Jokers: []Joker{mustLookup(t, Classic, "The Minimalist")},
	}
	assertVotes(t, Apply(ctx), []int{3, 3, 3})
}

func TestApply_NearestReferenceValueAlreadyExact(t *testing.T) {
	ctx := VoteContext{
		Votes:  []int{2, 2, 34},
		Jokers: []Joker{mustLookup(t, Classic, "The Fibonacci Lover")},
	}
	assertVotes(t, Apply(ctx), []int{2, 2, 34})
}

func TestApply_CopyRightThenOwnStep(t *testing.T) {
	active := Arrange([]Joker{
		mustLookup(t, Classic, "The Multiplier"),
		mustLookup(t, Classic, "The Copycat"),
	})
	if active[0].Name != "The Copycat" {
		t.Fatalf("expected Copycat first after arranging, got %s", active[0].Name)
	}

	// Copycat doubles 5 -> 10, then Multiplier doubles 10 -> 20
	got := Apply(VoteContext{Votes: []int{5}, Jokers: active})
	assertVotes(t, got, []int{20})
}

func TestApply_StatisticsFollowEarlierSteps(t *testing.T) {
	active := []Joker{
		mustLookup(t, Classic, "The Multiplier"),
		mustLookup(t, Classic, "The Pessimist"),
	}

	// [1,3] -> [2,6] -> max is now 6 -> [8,12]
	got := Apply(VoteContext{Votes: []int{1, 3}, Jokers: active})
	assertVotes(t, got, []int{8, 12})
}

func TestApply_MirrorRunsLeftJokerTwice(t *testing.T) {
	active := []Joker{
		mustLookup(t, Classic, "The Incrementor"),
		mustLookup(t, Classic, "The Mirror"),
	}

	// 1 -> 6 (Incrementor) -> 11 -> 16 (Mirror)
	got := Apply(VoteContext{Votes: []int{1}, Jokers: active})
	assertVotes(t, got, []int{16})
}

func TestApply_BrainstormCopiesLeftmost(t *testing.T) {
	active := []Joker{
		mustLookup(t, Balatro, "Joker"),
		mustLookup(t, Balatro, "Brainstorm"),
	}

	got := Apply(VoteContext{Votes: []int{1, 2}, Jokers: active})
	assertVotes(t, got, []int{9, 10})
}

func TestApply_MissingSiblingPassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		joker Joker
	}{
		{"copy right with nothing to the right", mustLookup(t, Classic, "The Copycat")},
		{"mirror with nothing to the left", mustLookup(t, Classic, "The Mirror")},
		{"brainstorm alone is leftmost", mustLookup(t, Balatro, "Brainstorm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(VoteContext{Votes: []int{3, 5}, Jokers: []Joker{tt.joker}})
			assertVotes(t, got, []int{3, 5})
		})
	}
}

func TestApply_DelegationCycleTerminates(t *testing.T) {
	active := []Joker{
		mustLookup(t, Classic, "The Copycat"),
		mustLookup(t, Classic, "The Mirror"),
	}

	got := Apply(VoteContext{Votes: []int{3}, Jokers: active})
	assertVotes(t, got, []int{3})
}

func TestApply_BlueprintCopiesCardEffect(t *testing.T) {
	active := []Joker{
		mustLookup(t, Balatro, "Blueprint"),
		mustLookup(t, Balatro, "Scary Face"),
	}
	players := []models.Player{
		playerWith(models.NewFaceCard(models.FaceKing, models.Clubs), models.NewCard(3, models.Hearts)),
		playerWith(models.NewCard(1, models.Spades), models.NewCard(2, models.Hearts)),
	}

	// One face card: +30 from Blueprint, +30 from Scary Face
	got := Apply(VoteContext{Votes: []int{13, 3}, Players: players, Jokers: active})
	assertVotes(t, got, []int{73, 3})
}

func TestApply_RandomEffectUsesInjectedSource(t *testing.T) {
	misprint := mustLookup(t, Balatro, "Misprint")

	// IntN(23) -> 0 and 22 give bonuses of 1 and 23
	rng := &scriptedRand{values: []int{0, 22}}
	got := Apply(VoteContext{Votes: []int{5, 5}, Jokers: []Joker{misprint}, Rand: rng})
	assertVotes(t, got, []int{6, 28})

	// Same script, same answer
	again := Apply(VoteContext{Votes: []int{5, 5}, Jokers: []Joker{misprint}, Rand: &scriptedRand{values: []int{0, 22}}})
	assertVotes(t, again, got)
}
