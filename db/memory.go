// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/danielhkuo/balatro-poker/models"
)

// MemoryStore is an in-memory store for games. Games are cloned on the way
// in and out so callers never share state with the store.
type MemoryStore struct {
	games    map[string]*models.Game
	byAdmin  map[string]string
	byPlayer map[string]string
	rounds   map[string][]models.RoundResult
	mutex    sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:    make(map[string]*models.Game),
		byAdmin:  make(map[string]string),
		byPlayer: make(map[string]string),
		rounds:   make(map[string][]models.RoundResult),
	}
}

func (s *MemoryStore) CreateGame(_ context.Context, g *models.Game) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.games[g.ID]; exists {
		return fmt.Errorf("game %s already exists", g.ID)
	}
	if _, exists := s.byAdmin[g.AdminCode]; exists {
		return errors.New("admin code already in use")
	}
	if _, exists := s.byPlayer[g.PlayerCode]; exists {
		return errors.New("player code already in use")
	}

	s.games[g.ID] = g.Clone()
	s.byAdmin[g.AdminCode] = g.ID
	s.byPlayer[g.PlayerCode] = g.ID
	return nil
}

func (s *MemoryStore) GetGame(_ context.Context, id string) (*models.Game, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	g, exists := s.games[id]
	if !exists {
		return nil, models.ErrGameNotFound
	}
	return g.Clone(), nil
}

func (s *MemoryStore) SaveGame(_ context.Context, g *models.Game) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.games[g.ID]; !exists {
		return models.ErrGameNotFound
	}
	s.games[g.ID] = g.Clone()
	return nil
}

func (s *MemoryStore) GameIDByAdminCode(_ context.Context, code string) (string, error) {
	return s.lookup(s.byAdmin, code)
}

func (s *MemoryStore) GameIDByPlayerCode(_ context.Context, code string) (string, error) {
	return s.lookup(s.byPlayer, code)
}

func (s *MemoryStore) lookup(index map[string]string, code string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, exists := index[code]
	if !exists {
		return "", models.ErrGameNotFound
	}
	return id, nil
}

// SaveReveal stores the revealed game and appends its round result under
// one lock
func (s *MemoryStore) SaveReveal(_ context.Context, g *models.Game, r models.RoundResult) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.games[g.ID]; !exists {
		return models.ErrGameNotFound
	}
	if r.GameID != g.ID {
		return fmt.Errorf("round %s belongs to game %s, not %s", r.ID, r.GameID, g.ID)
	}

	r.Jokers = slices.Clone(r.Jokers)
	r.Votes = slices.Clone(r.Votes)
	s.games[g.ID] = g.Clone()
	s.rounds[g.ID] = append(s.rounds[g.ID], r)
	return nil
}

func (s *MemoryStore) ListRounds(_ context.Context, gameID string) ([]models.RoundResult, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rounds := slices.Clone(s.rounds[gameID])
	if rounds == nil {
		rounds = []models.RoundResult{}
	}
	slices.SortStableFunc(rounds, func(a, b models.RoundResult) int {
		return a.Round - b.Round
	})
	return rounds, nil
}

// Len returns the number of stored games
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.games)
}
