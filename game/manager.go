// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/danielhkuo/balatro-poker/auth"
	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/models"
)

// MaxNameLength is the longest accepted player name, in runes
const MaxNameLength = 32

// Manager runs game operations against a Store. Every operation on a game
// holds that game's lock and re-reads it from the store, so concurrent
// requests for one game are serialized while different games proceed in
// parallel.
type Manager struct {
	store  Store
	engine *jokers.Engine
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*gameLock
}

// gameLock is dropped from Manager.locks once no operation holds or waits
// on it
type gameLock struct {
	sync.Mutex
	refs int
}

func NewManager(store Store, engine *jokers.Engine) *Manager {
	return &Manager{
		store:  store,
		engine: engine,
		now:    func() time.Time { return time.Now().UTC() },
		locks:  make(map[string]*gameLock),
	}
}

// Catalog returns the catalog jokers are drawn from
func (m *Manager) Catalog() *jokers.Catalog {
	return m.engine.Catalog()
}

func (m *Manager) lock(gameID string) func() {
	m.mu.Lock()
	l, ok := m.locks[gameID]
	if !ok {
		l = &gameLock{}
		m.locks[gameID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, gameID)
		}
		m.mu.Unlock()
	}
}

type resolver func(ctx context.Context, code string) (string, error)

// update resolves code, locks the game, re-reads it and applies fn. The game
// is saved only if fn succeeds, with save when given and SaveGame otherwise.
func (m *Manager) update(ctx context.Context, resolve resolver, code string, fn func(g *models.Game) error, save func(ctx context.Context, g *models.Game) error) (*models.Game, error) {
	id, err := resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	unlock := m.lock(id)
	defer unlock()

	g, err := m.store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}

	if save == nil {
		save = m.store.SaveGame
	}
	g.UpdatedAt = m.now()
	if err := save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save game %s: %w", id, err)
	}

	return g, nil
}

// read loads a consistent snapshot of the game behind code
func (m *Manager) read(ctx context.Context, resolve resolver, code string) (*models.Game, error) {
	id, err := resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	unlock := m.lock(id)
	defer unlock()

	return m.store.GetGame(ctx, id)
}

// CreateGame creates a game in Voting, or in Setup when req.Lobby is set.
// Missing settings take the package defaults.
func (m *Manager) CreateGame(ctx context.Context, req models.CreateGameRequest) (*models.Game, error) {
	allowed := models.DefaultAllowedValues
	if len(req.AllowedValues) > 0 {
		allowed = req.AllowedValues
	}
	allowed, err := normalizeValues(allowed)
	if err != nil {
		return nil, err
	}

	count := models.DefaultJokerCount
	if req.JokerCount != nil {
		count = *req.JokerCount
	}
	if err := validateJokerCount(count); err != nil {
		return nil, err
	}

	codes, err := auth.GenerateCodes()
	if err != nil {
		return nil, err
	}

	phase := models.PhaseVoting
	if req.Lobby {
		phase = models.PhaseSetup
	}

	now := m.now()
	g := &models.Game{
		ID:            codes.GameID,
		AdminCode:     codes.AdminCode,
		PlayerCode:    codes.PlayerCode,
		Phase:         phase,
		AllowedValues: allowed,
		JokerCount:    count,
		Round:         1,
		Players:       []models.Player{},
		ActiveJokers:  []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.store.CreateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	slog.Info("game created",
		"game_id", g.ID,
		"allowed_values", g.AllowedValues,
		"joker_count", g.JokerCount,
		"phase", g.Phase,
	)

	return g, nil
}

// GameByAdminCode returns the game behind an admin code
func (m *Manager) GameByAdminCode(ctx context.Context, code string) (*models.Game, error) {
	return m.read(ctx, m.store.GameIDByAdminCode, code)
}

// GameByPlayerCode returns the game behind a player code
func (m *Manager) GameByPlayerCode(ctx context.Context, code string) (*models.Game, error) {
	return m.read(ctx, m.store.GameIDByPlayerCode, code)
}

// Join adds a player with a freshly dealt hand. A name already taken in
// the game (ignoring case) returns that player instead.
func (m *Manager) Join(ctx context.Context, playerCode, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidPlayerName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name longer than %d characters", models.ErrInvalidPlayerName, MaxNameLength)
	}

	var player models.Player
	_, err := m.update(ctx, m.store.GameIDByPlayerCode, playerCode, func(g *models.Game) error {
		if existing := g.FindPlayerByName(name); existing != nil {
			slog.Info("player rejoined", "game_id", g.ID, "player", existing.Name)
			player = *existing
			return nil
		}

		player = models.Player{
			ID:       uuid.NewString(),
			Name:     name,
			Hand:     DealHand(m.engine.Rand()),
			JoinedAt: m.now(),
		}
		g.Players = append(g.Players, player)

		slog.Info("player joined",
			"game_id", g.ID,
			"player", name,
			"player_count", len(g.Players),
		)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	return &player, nil
}

// SubmitVote records a player's card selection. The cards must come from
// the player's hand, each hand card at most once, and sum to an allowed
// value. A rejected vote leaves the game unchanged. Players may change
// their vote until the reveal.
func (m *Manager) SubmitVote(ctx context.Context, playerCode string, req models.SubmitVoteRequest) (*models.Player, error) {
	var player models.Player
	_, err := m.update(ctx, m.store.GameIDByPlayerCode, playerCode, func(g *models.Game) error {
		p := g.FindPlayer(req.PlayerID)
		if p == nil {
			return models.ErrPlayerNotFound
		}
		if g.Phase != models.PhaseVoting {
			return fmt.Errorf("%w: voting is not open (phase %s)", models.ErrWrongPhase, g.Phase)
		}
		if len(req.SelectedCards) == 0 {
			return fmt.Errorf("%w: no cards selected", models.ErrInvalidVote)
		}

		cards, ok := takeFromHand(p.Hand, req.SelectedCards)
		if !ok {
			return models.ErrCardNotInHand
		}

		sum := models.SumCards(cards)
		if !g.IsAllowed(sum) {
			slog.Warn("invalid vote",
				"game_id", g.ID,
				"player", p.Name,
				"sum", sum,
				"cards", models.CardsDisplay(cards),
				"allowed_values", g.AllowedValues,
			)
			return fmt.Errorf("%w: %d is not one of %v", models.ErrInvalidVote, sum, g.AllowedValues)
		}

		p.SelectedCards = cards
		p.OriginalVote = sum
		p.FinalVote = 0
		p.HasVoted = true
		player = *p

		slog.Info("vote submitted",
			"game_id", g.ID,
			"player", p.Name,
			"vote", sum,
			"cards", models.CardsDisplay(cards),
		)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	return &player, nil
}

// StartVoting opens voting from the lobby. It is a no-op when voting is
// already open; a revealed game needs a new round instead.
func (m *Manager) StartVoting(ctx context.Context, adminCode string) (*models.Game, error) {
	return m.update(ctx, m.store.GameIDByAdminCode, adminCode, func(g *models.Game) error {
		if g.Phase == models.PhaseRevealed {
			return fmt.Errorf("%w: round already revealed, start a new round", models.ErrWrongPhase)
		}

		previous := g.Phase
		g.Phase = models.PhaseVoting

		slog.Info("voting started",
			"game_id", g.ID,
			"previous_phase", previous,
			"player_count", len(g.Players),
		)
		return nil
	}, nil)
}

// UpdateSettings changes the allowed values and/or the joker count. Nil
// fields are left as they are. Votes already cast are not re-validated.
func (m *Manager) UpdateSettings(ctx context.Context, adminCode string, req models.UpdateSettingsRequest) (*models.Game, error) {
	var allowed []int
	if req.AllowedValues != nil {
		var err error
		if allowed, err = normalizeValues(req.AllowedValues); err != nil {
			return nil, err
		}
	}
	if req.JokerCount != nil {
		if err := validateJokerCount(*req.JokerCount); err != nil {
			return nil, err
		}
	}

	return m.update(ctx, m.store.GameIDByAdminCode, adminCode, func(g *models.Game) error {
		if allowed != nil {
			g.AllowedValues = allowed
		}
		if req.JokerCount != nil {
			g.JokerCount = *req.JokerCount
		}

		slog.Info("settings updated",
			"game_id", g.ID,
			"allowed_values", g.AllowedValues,
			"joker_count", g.JokerCount,
		)
		return nil
	}, nil)
}

// Reveal draws the round's jokers, runs them over the submitted votes and
// moves the game to Revealed. Players who did not vote are left out of the
// pipeline. With no jokers or no votes the final votes equal the originals.
// The game and its round history are written together, so a failed write
// leaves the game in Voting and the reveal can be retried.
func (m *Manager) Reveal(ctx context.Context, adminCode string) (models.RoundResult, error) {
	var result models.RoundResult
	revealed, err := m.update(ctx, m.store.GameIDByAdminCode, adminCode, func(g *models.Game) error {
		if g.Phase != models.PhaseVoting {
			return fmt.Errorf("%w: cannot reveal in phase %s", models.ErrWrongPhase, g.Phase)
		}

		active := m.engine.Select(g.JokerCount, g.JokerCount)
		for _, j := range active {
			slog.Info("joker used",
				"game_id", g.ID,
				"joker", j.Name,
				"description", j.Description,
			)
		}

		voted := g.VotedPlayers()
		votes := make([]int, len(voted))
		players := make([]models.Player, len(voted))
		for i, p := range voted {
			votes[i] = p.OriginalVote
			players[i] = *p
		}

		final := votes
		if len(active) > 0 && len(votes) > 0 {
			final = jokers.Apply(m.engine.Context(votes, players, active))
		}

		result = models.RoundResult{
			ID:         ulid.Make().String(),
			GameID:     g.ID,
			Round:      g.Round,
			Jokers:     jokers.Names(active),
			Votes:      make([]models.PlayerVote, len(voted)),
			RevealedAt: m.now(),
		}
		for i, p := range voted {
			p.FinalVote = p.OriginalVote
			if i < len(final) {
				p.FinalVote = final[i]
			}
			result.Votes[i] = models.PlayerVote{
				PlayerID: p.ID,
				Name:     p.Name,
				Cards:    slices.Clone(p.SelectedCards),
				Original: p.OriginalVote,
				Final:    p.FinalVote,
			}
		}

		g.ActiveJokers = slices.Clone(result.Jokers)
		g.Phase = models.PhaseRevealed
		return nil
	}, func(ctx context.Context, g *models.Game) error {
		return m.store.SaveReveal(ctx, g, result)
	})
	if err != nil {
		return models.RoundResult{}, err
	}

	original := make([]int, len(result.Votes))
	final := make([]int, len(result.Votes))
	for i, v := range result.Votes {
		original[i], final[i] = v.Original, v.Final
	}
	slog.Info("round completed",
		"game_id", revealed.ID,
		"round", result.Round,
		"player_count", len(revealed.Players),
		"original_votes", original,
		"final_votes", final,
		"jokers", result.Jokers,
	)

	return result, nil
}

// StartNewRound clears every vote, deals fresh hands, drops the active
// jokers and reopens voting.
func (m *Manager) StartNewRound(ctx context.Context, adminCode string) (*models.Game, error) {
	return m.update(ctx, m.store.GameIDByAdminCode, adminCode, func(g *models.Game) error {
		for i := range g.Players {
			g.Players[i].ResetRound(DealHand(m.engine.Rand()))
		}
		g.ActiveJokers = []string{}
		g.Phase = models.PhaseVoting
		g.Round++

		slog.Info("new round started", "game_id", g.ID, "round", g.Round)
		return nil
	}, nil)
}

// Rounds returns the revealed rounds of the game behind adminCode, oldest
// first
func (m *Manager) Rounds(ctx context.Context, adminCode string) (string, []models.RoundResult, error) {
	id, err := m.store.GameIDByAdminCode(ctx, adminCode)
	if err != nil {
		return "", nil, err
	}

	rounds, err := m.store.ListRounds(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return id, rounds, nil
}

// normalizeValues sorts and de-duplicates allowed values, all of which
// must be positive
func normalizeValues(values []int) ([]int, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one allowed value is required", models.ErrInvalidSettings)
	}
	for _, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("%w: allowed values must be positive, got %d", models.ErrInvalidSettings, v)
		}
	}

	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out), nil
}

func validateJokerCount(n int) error {
	if n < 0 || n > models.MaxJokerCount {
		return fmt.Errorf("%w: joker count must be between 0 and %d, got %d", models.ErrInvalidSettings, models.MaxJokerCount, n)
	}
	return nil
}
