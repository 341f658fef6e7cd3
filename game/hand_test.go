// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"testing"

	"github.com/danielhkuo/balatro-poker/models"
)

// cycleRand returns 0, 1, 2, ... mod n
type cycleRand struct{ next int }

func (c *cycleRand) IntN(n int) int {
	v := c.next % n
	c.next++
	return v
}

func TestDealHand(t *testing.T) {
	hand := DealHand(&cycleRand{})

	if len(hand) != HandSize {
		t.Fatalf("got %d cards, want %d", len(hand), HandSize)
	}
	if got := models.CardsDisplay(hand); got != "A+2+3+5+8+J+Q+K" {
		t.Errorf("ranks = %s", got)
	}
	if got := models.SumCards(hand); got != 49 {
		t.Errorf("sum = %d, want 49", got)
	}

	// Suits follow the random source
	want := []models.Suit{models.Hearts, models.Diamonds, models.Clubs, models.Spades}
	for i, c := range hand {
		if c.Suit != want[i%4] {
			t.Errorf("card %d suit = %s, want %s", i, c.Suit, want[i%4])
		}
	}
	if hand[0].IsFace() || !hand[0].IsAce() {
		t.Error("ace should be an ace and not a face card")
	}
}

func TestTakeFromHand(t *testing.T) {
	hand := DealHand(&cycleRand{})

	taken, ok := takeFromHand(hand, []models.Card{hand[7], hand[0]})
	if !ok || len(taken) != 2 || taken[0] != hand[7] || taken[1] != hand[0] {
		t.Errorf("takeFromHand() = %v, %v", taken, ok)
	}

	// J, Q and K share a value but are different cards; the jack is
	// Diamonds and the queen Clubs here
	if _, ok := takeFromHand(hand, []models.Card{models.NewFaceCard(models.FaceJack, models.Clubs)}); ok {
		t.Error("jack of clubs is not in the hand")
	}

	if _, ok := takeFromHand(hand, []models.Card{hand[1], hand[1]}); ok {
		t.Error("a hand card cannot be used twice")
	}
}
