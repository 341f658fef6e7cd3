// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jokers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/balatro-poker/models"
)

type catalogFile struct {
	Name   string      `yaml:"name"`
	Jokers []jokerSpec `yaml:"jokers"`
}

type jokerSpec struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Position    string     `yaml:"position"`
	MinJokers   int        `yaml:"min_jokers"`
	Effect      effectSpec `yaml:"effect"`
}

// effectSpec is the flat on-disk form of every effect category
type effectSpec struct {
	Kind       Category `yaml:"kind"`
	Op         string   `yaml:"op"`
	Amount     int      `yaml:"amount"`
	Match      string   `yaml:"match"`
	Suit       string   `yaml:"suit"`
	Values     []int    `yaml:"values"`
	Bonus      int      `yaml:"bonus"`
	Repeat     int      `yaml:"repeat"`
	Multiplier int      `yaml:"multiplier"`
	Stat       string   `yaml:"stat"`
	Min        int      `yaml:"min"`
	Max        int      `yaml:"max"`
	Target     string   `yaml:"target"`
}

// LoadCatalog reads a YAML catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a YAML catalog:
//
//	name: office
//	jokers:
//	  - name: Coffee Break
//	    description: Adds +2 to each vote
//	    position: anywhere
//	    min_jokers: 1
//	    effect: {kind: flat, op: add, amount: 2}
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if f.Name == "" {
		f.Name = "custom"
	}

	entries := make([]Joker, 0, len(f.Jokers))
	for _, s := range f.Jokers {
		pos, err := ParsePosition(s.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidJoker, s.Name, err)
		}
		effect, err := s.Effect.build()
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidJoker, s.Name, err)
		}
		entries = append(entries, Joker{
			Name:        s.Name,
			Description: s.Description,
			Position:    pos,
			MinJokers:   s.MinJokers,
			Effect:      effect,
		})
	}

	return NewCatalog(f.Name, entries)
}

func (s effectSpec) build() (Effect, error) {
	switch s.Kind {
	case CategoryFlat:
		switch op := FlatOp(s.Op); op {
		case FlatAdd, FlatMultiply, FlatHalve, FlatSubtractFrom, FlatSqrt, FlatAddPerJoker, FlatNearest:
			return FlatEffect{Op: op, Amount: s.Amount, Values: s.Values}, nil
		}
	case CategoryCard:
		match := CardMatch{Kind: MatchKind(s.Match), Values: s.Values}
		switch match.Kind {
		case MatchAny, MatchFace, MatchOdd, MatchAce, MatchFirst, MatchFirstFace:
		case MatchSuit:
			suit, err := models.ParseSuit(s.Suit)
			if err != nil {
				return nil, err
			}
			match.Suit = suit
		case MatchValues:
			if len(s.Values) == 0 {
				return nil, fmt.Errorf("match %q needs values", s.Match)
			}
		default:
			return nil, fmt.Errorf("unknown card match %q", s.Match)
		}
		return CardEffect{Match: match, Bonus: s.Bonus, Repeat: s.Repeat, Multiplier: s.Multiplier}, nil
	case CategoryAggregate:
		op := AggregateOp(s.Op)
		stat := Stat(s.Stat)
		switch op {
		case AggregateSwapExtremes:
			return AggregateEffect{Op: op}, nil
		case AggregateReplace, AggregateCap, AggregateAdd, AggregateDoubleEqual:
			switch stat {
			case StatMin, StatMax, StatAverage, StatMedian:
				return AggregateEffect{Stat: stat, Op: op}, nil
			}
			return nil, fmt.Errorf("unknown stat %q", s.Stat)
		}
	case CategoryRandom:
		switch op := RandomOp(s.Op); op {
		case RandomAdd, RandomMultiply:
			if s.Max < s.Min {
				return nil, fmt.Errorf("random range [%d, %d] is empty", s.Min, s.Max)
			}
			return RandomEffect{Op: op, Min: s.Min, Max: s.Max}, nil
		case RandomPick:
			return RandomEffect{Op: op, Values: s.Values}, nil
		}
	case CategoryDelegate:
		switch t := DelegateTarget(s.Target); t {
		case DelegateLeftmost, DelegateRight, DelegateLeftTwice:
			return DelegateEffect{Target: t}, nil
		}
		return nil, fmt.Errorf("unknown delegate target %q", s.Target)
	default:
		return nil, fmt.Errorf("unknown effect kind %q", s.Kind)
	}
	return nil, fmt.Errorf("unknown %s op %q", s.Kind, s.Op)
}
