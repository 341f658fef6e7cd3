// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"strings"

	"github.com/danielhkuo/balatro-poker/models"
)

// Built-in catalog names
const (
	CatalogBalatro = "balatro"
	CatalogClassic = "classic"
)

func suitBonus(suit models.Suit, bonus int) CardEffect {
	return CardEffect{Match: CardMatch{Kind: MatchSuit, Suit: suit}, Bonus: bonus}
}

// Balatro is the card-driven catalog, named after the jokers of the game
// that inspired it.
var Balatro = mustCatalog(CatalogBalatro, []Joker{
	{Name: "Joker", Description: "Adds +4 to each vote", MinJokers: 1,
		Effect: FlatEffect{Op: FlatAdd, Amount: 4}},
	{Name: "Greedy Joker", Description: "Each Diamond card gives +3 bonus", MinJokers: 1,
		Effect: suitBonus(models.Diamonds, 3)},
	{Name: "Lusty Joker", Description: "Each Heart gives +3 bonus", MinJokers: 1,
		Effect: suitBonus(models.Hearts, 3)},
	{Name: "Wrathful Joker", Description: "Each Spade gives +3 bonus", MinJokers: 1,
		Effect: suitBonus(models.Spades, 3)},
	{Name: "Gluttonous Joker", Description: "Each Club gives +3 bonus", MinJokers: 1,
		Effect: suitBonus(models.Clubs, 3)},
	{Name: "Misprint", Description: "Random bonus between 1 and 23", MinJokers: 1,
		Effect: RandomEffect{Op: RandomAdd, Min: 1, Max: 23}},
	{Name: "Fibonacci", Description: "Each card gives +8 bonus", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchAny}, Bonus: 8}},
	{Name: "Scary Face", Description: "Each face card gives +30 points", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchFace}, Bonus: 30}},
	{Name: "Abstract Joker", Description: "+3 for each active joker", MinJokers: 1,
		Effect: FlatEffect{Op: FlatAddPerJoker, Amount: 3}},
	{Name: "Hack", Description: "2, 3, and 5 count twice", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchValues, Values: []int{2, 3, 5}}, Repeat: 1}},
	{Name: "Gros Michel", Description: "+15 bonus to all votes", MinJokers: 1,
		Effect: FlatEffect{Op: FlatAdd, Amount: 15}},
	{Name: "Even Steven", Description: "2 and 8 give +4 bonus", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchValues, Values: []int{2, 8}}, Bonus: 4}},
	{Name: "Odd Todd", Description: "Odd cards give +31 points", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchOdd}, Bonus: 31}},
	{Name: "Scholar", Description: "Aces give +20 points and multiply by 4", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchAce}, Bonus: 20, Multiplier: 4}},
	{Name: "Photograph", Description: "First face card multiplied by 2", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchFirstFace}, Multiplier: 2}},
	{Name: "Popcorn", Description: "+20 bonus to all votes", MinJokers: 1,
		Effect: FlatEffect{Op: FlatAdd, Amount: 20}},
	{Name: "Sock and Buscin", Description: "Face cards count twice", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchFace}, Repeat: 1}},
	{Name: "Hanging Chad", Description: "First card played three times", MinJokers: 1,
		Effect: CardEffect{Match: CardMatch{Kind: MatchFirst}, Repeat: 2}},
	{Name: "Brainstorm", Description: "Copies the leftmost joker", Position: Right, MinJokers: 2,
		Effect: DelegateEffect{Target: DelegateLeftmost}},
	{Name: "Blueprint", Description: "Copies ability of joker to the right", Position: Left, MinJokers: 2,
		Effect: DelegateEffect{Target: DelegateRight}},
})

// Classic is the arithmetic catalog built around the vote scale itself.
var Classic = mustCatalog(CatalogClassic, []Joker{
	{Name: "The Multiplier", Description: "Doubles all votes", MinJokers: 1,
		Effect: FlatEffect{Op: FlatMultiply, Amount: 2}},
	{Name: "The Incrementor", Description: "Add +5 to everyone", MinJokers: 1,
		Effect: FlatEffect{Op: FlatAdd, Amount: 5}},
	{Name: "The Halver", Description: "Cut everything in half", MinJokers: 1,
		Effect: FlatEffect{Op: FlatHalve}},
	{Name: "The Minimalist", Description: "Everyone gets minimum", MinJokers: 1,
		Effect: AggregateEffect{Stat: StatMin, Op: AggregateReplace}},
	{Name: "The Maximalist", Description: "Everyone gets maximum", MinJokers: 1,
		Effect: AggregateEffect{Stat: StatMax, Op: AggregateReplace}},
	{Name: "The Equalizer", Description: "Everyone gets average", MinJokers: 1,
		Effect: AggregateEffect{Stat: StatAverage, Op: AggregateReplace}},
	{Name: "The Anarchist", Description: "All votes become random", MinJokers: 1,
		Effect: RandomEffect{Op: RandomPick}},
	{Name: "The Fibonacci Lover", Description: "Round to nearest Fibonacci", MinJokers: 1,
		Effect: FlatEffect{Op: FlatNearest}},
	{Name: "The Chaos", Description: "Multiply by random 1-3", MinJokers: 1,
		Effect: RandomEffect{Op: RandomMultiply, Min: 1, Max: 3}},
	{Name: "The Inverter", Description: "34 minus your vote", MinJokers: 1,
		Effect: FlatEffect{Op: FlatSubtractFrom, Amount: 34}},
	{Name: "The Square Root", Description: "Square root of all votes", MinJokers: 1,
		Effect: FlatEffect{Op: FlatSqrt}},
	{Name: "The Reverser", Description: "Swap highest and lowest", MinJokers: 2,
		Effect: AggregateEffect{Op: AggregateSwapExtremes}},
	{Name: "The Copycat", Description: "Copies the right joker's effect", Position: Left, MinJokers: 2,
		Effect: DelegateEffect{Target: DelegateRight}},
	{Name: "The Mirror", Description: "Applies left joker's effect twice", Position: Right, MinJokers: 2,
		Effect: DelegateEffect{Target: DelegateLeftTwice}},
	{Name: "The Median Seeker", Description: "Votes > median become median", MinJokers: 2,
		Effect: AggregateEffect{Stat: StatMedian, Op: AggregateCap}},
	{Name: "The Pessimist", Description: "Add highest vote to everyone", MinJokers: 2,
		Effect: AggregateEffect{Stat: StatMax, Op: AggregateAdd}},
	{Name: "The Duplicator", Description: "Lowest vote gets doubled", MinJokers: 2,
		Effect: AggregateEffect{Stat: StatMin, Op: AggregateDoubleEqual}},
})

// Builtin returns a built-in catalog by name, ignoring case
func Builtin(name string) (*Catalog, bool) {
	switch strings.ToLower(name) {
	case CatalogBalatro:
		return Balatro, true
	case CatalogClassic:
		return Classic, true
	}
	return nil, false
}
