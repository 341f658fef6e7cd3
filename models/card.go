// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in declaration order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}
var suitSymbols = [...]string{"♥", "♦", "♣", "♠"}

func (s Suit) valid() bool {
	return s >= Hearts && s <= Spades
}

func (s Suit) String() string {
	if !s.valid() {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	if !s.valid() {
		return ""
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is hearts or diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit name in any case
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(n, name) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(suitNames[s]), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Face labels
const (
	FaceAce   = "A"
	FaceJack  = "J"
	FaceQueen = "Q"
	FaceKing  = "K"
)

// Card values available in a hand. Face cards are all worth 10.
const (
	AceValue  = 1
	FaceValue = 10
)

// Card is a playing card. Cards are passed by value and never mutated.
type Card struct {
	Value int    `json:"value"`
	Suit  Suit   `json:"suit"`
	Face  string `json:"faceType,omitempty"`
}

// NewCard creates a numbered card
func NewCard(value int, suit Suit) Card {
	return Card{Value: value, Suit: suit}
}

// NewFaceCard creates a jack, queen or king worth FaceValue
func NewFaceCard(face string, suit Suit) Card {
	return Card{Value: FaceValue, Suit: suit, Face: face}
}

// DisplayValue is the face label if present, "A" for aces, else the value
func (c Card) DisplayValue() string {
	if c.Face != "" {
		return c.Face
	}
	if c.Value == AceValue {
		return FaceAce
	}
	return strconv.Itoa(c.Value)
}

// IsFace reports whether the card is a jack, queen or king.
// Aces are not face cards even when labelled "A".
func (c Card) IsFace() bool {
	switch c.Face {
	case FaceJack, FaceQueen, FaceKing:
		return true
	}
	return false
}

func (c Card) IsAce() bool {
	return c.Value == AceValue
}

func (c Card) String() string {
	return c.DisplayValue() + c.Suit.Symbol()
}

// MarshalJSON adds the derived display value for clients.
func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	return json.Marshal(struct {
		plain
		DisplayValue string `json:"displayValue"`
	}{plain(c), c.DisplayValue()})
}

// SumCards returns the total value of the cards
func SumCards(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Value
	}
	return sum
}

// CardsDisplay joins display values with "+", e.g. "A+2+K"
func CardsDisplay(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.DisplayValue()
	}
	return strings.Join(parts, "+")
}
