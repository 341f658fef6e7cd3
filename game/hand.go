// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/models"
)

// HandSize is the number of cards dealt to each player per round
const HandSize = 8

// DealHand deals A, 2, 3, 5, 8, J, Q, K, each with a random suit
func DealHand(rng jokers.Rand) []models.Card {
	suit := func() models.Suit {
		return models.Suits[rng.IntN(len(models.Suits))]
	}

	return []models.Card{
		models.NewCard(models.AceValue, suit()),
		models.NewCard(2, suit()),
		models.NewCard(3, suit()),
		models.NewCard(5, suit()),
		models.NewCard(8, suit()),
		models.NewFaceCard(models.FaceJack, suit()),
		models.NewFaceCard(models.FaceQueen, suit()),
		models.NewFaceCard(models.FaceKing, suit()),
	}
}

// sameCard compares by value, suit and displayed rank so an ace sent with or
// without its "A" label matches the dealt ace.
func sameCard(a, b models.Card) bool {
	return a.Value == b.Value && a.Suit == b.Suit && a.DisplayValue() == b.DisplayValue()
}

// takeFromHand maps each selected card to a distinct card of the hand.
// It returns the hand's copies, in selection order.
func takeFromHand(hand, selected []models.Card) ([]models.Card, bool) {
	used := make([]bool, len(hand))
	taken := make([]models.Card, 0, len(selected))

	for _, s := range selected {
		found := false
		for i, h := range hand {
			if !used[i] && sameCard(h, s) {
				used[i] = true
				taken = append(taken, h)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}

	return taken, true
}
