// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"strings"
	"time"
)

// Phase is the lifecycle state of a game
type Phase string

const (
	PhaseSetup    Phase = "Setup"
	PhaseVoting   Phase = "Voting"
	PhaseRevealed Phase = "Revealed"
)

// Defaults applied when a game is created without explicit settings
var (
	DefaultAllowedValues = []int{1, 2, 3, 5, 8, 13, 21}
	DefaultJokerCount    = 1
)

// MaxJokerCount bounds the number of jokers a game may enable
const MaxJokerCount = 10

// Domain types

type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Hand          []Card    `json:"cards"`
	SelectedCards []Card    `json:"selectedCards"`
	HasVoted      bool      `json:"hasVoted"`
	OriginalVote  int       `json:"originalVote"`
	FinalVote     int       `json:"finalVote"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// CurrentSum is the total value of the selected cards
func (p *Player) CurrentSum() int {
	return SumCards(p.SelectedCards)
}

// ResetRound clears per-round vote state and deals the given hand
func (p *Player) ResetRound(hand []Card) {
	p.Hand = hand
	p.SelectedCards = nil
	p.HasVoted = false
	p.OriginalVote = 0
	p.FinalVote = 0
}

type Game struct {
	ID            string    `json:"gameId"`
	AdminCode     string    `json:"adminCode"`
	PlayerCode    string    `json:"playerCode"`
	Phase         Phase     `json:"phase"`
	AllowedValues []int     `json:"allowedValues"`
	JokerCount    int       `json:"jokerCount"`
	Round         int       `json:"round"`
	Players       []Player  `json:"players"`
	ActiveJokers  []string  `json:"activeJokers"` // catalog names, in execution order
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FindPlayer returns the player with the given ID
func (g *Game) FindPlayer(id string) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// FindPlayerByName matches names case-insensitively
func (g *Game) FindPlayerByName(name string) *Player {
	for i := range g.Players {
		if strings.EqualFold(g.Players[i].Name, name) {
			return &g.Players[i]
		}
	}
	return nil
}

// VotedPlayers returns pointers to players that have voted, in game order
func (g *Game) VotedPlayers() []*Player {
	var voted []*Player
	for i := range g.Players {
		if g.Players[i].HasVoted {
			voted = append(voted, &g.Players[i])
		}
	}
	return voted
}

// AllPlayersVoted is false for a game with no players
func (g *Game) AllPlayersVoted() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if !p.HasVoted {
			return false
		}
	}
	return true
}

// IsAllowed reports whether value is one of the game's allowed vote values
func (g *Game) IsAllowed(value int) bool {
	return slices.Contains(g.AllowedValues, value)
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.AllowedValues = slices.Clone(g.AllowedValues)
	c.ActiveJokers = slices.Clone(g.ActiveJokers)
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		p.Hand = slices.Clone(p.Hand)
		p.SelectedCards = slices.Clone(p.SelectedCards)
		c.Players[i] = p
	}
	return &c
}

// PlayerVote is one player's line in a revealed round
type PlayerVote struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Cards    []Card `json:"cards"`
	Original int    `json:"originalVote"`
	Final    int    `json:"finalVote"`
}

// RoundResult is the immutable record of a revealed round
type RoundResult struct {
	ID         string       `json:"id"`
	GameID     string       `json:"gameId"`
	Round      int          `json:"round"`
	Jokers     []string     `json:"jokers"`
	Votes      []PlayerVote `json:"votes"`
	RevealedAt time.Time    `json:"revealedAt"`
}

// Request types

type CreateGameRequest struct {
	AllowedValues []int `json:"allowedValues"`
	JokerCount    *int  `json:"jokerCount"`
	Lobby         bool  `json:"lobby"` // start in Setup instead of Voting
}

type JoinGameRequest struct {
	Name string `json:"name"`
}

type SubmitVoteRequest struct {
	PlayerID      string `json:"playerId"`
	SelectedCards []Card `json:"selectedCards"`
}

type UpdateSettingsRequest struct {
	AllowedValues []int `json:"allowedValues"`
	JokerCount    *int  `json:"jokerCount"`
}

// Response types

type JokerView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    string `json:"position"`
	MinJokers   int    `json:"minJokersRequired"`
	Known       bool   `json:"known"`
}

type PlayerView struct {
	ID            string `json:"id,omitempty"` // admin view only
	Name          string `json:"name"`
	Cards         []Card `json:"cards"`
	SelectedCards []Card `json:"selectedCards,omitempty"`
	HasVoted      bool   `json:"hasVoted"`
	OriginalVote  *int   `json:"originalVote,omitempty"`
	FinalVote     *int   `json:"finalVote,omitempty"`
}

type VoteStats struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

type GameView struct {
	GameID          string       `json:"gameId"`
	AdminCode       string       `json:"adminCode,omitempty"`
	PlayerCode      string       `json:"playerCode"`
	Phase           Phase        `json:"phase"`
	AllowedValues   []int        `json:"allowedValues"`
	JokerCount      int          `json:"jokerCount"`
	Round           int          `json:"round"`
	Players         []PlayerView `json:"players"`
	ActiveJokers    []JokerView  `json:"activeJokers"`
	AllPlayersVoted bool         `json:"allPlayersVoted"`
	Stats           *VoteStats   `json:"stats,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	CreatedAgo      string       `json:"createdAgo"`
}

type CatalogResponse struct {
	Catalog string      `json:"catalog"`
	Jokers  []JokerView `json:"jokers"`
}

type RoundsResponse struct {
	GameID string        `json:"gameId"`
	Rounds []RoundResult `json:"rounds"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
