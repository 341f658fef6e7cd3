// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/danielhkuo/balatro-poker/models"
)

type gameStore interface {
	CreateGame(ctx context.Context, g *models.Game) error
	GetGame(ctx context.Context, id string) (*models.Game, error)
	GameIDByAdminCode(ctx context.Context, code string) (string, error)
	GameIDByPlayerCode(ctx context.Context, code string) (string, error)
	SaveGame(ctx context.Context, g *models.Game) error
	SaveReveal(ctx context.Context, g *models.Game, r models.RoundResult) error
	ListRounds(ctx context.Context, gameID string) ([]models.RoundResult, error)
}

// setupTestDB opens a fresh in-memory SQLite database with the schema
func setupTestDB(t *testing.T) *SQLStore {
	t.Helper()

	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewSQLStore(conn)
}

func newTestGame(id string) *models.Game {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Game{
		ID:            id,
		AdminCode:     "admin-" + id,
		PlayerCode:    "player-" + id,
		Phase:         models.PhaseVoting,
		AllowedValues: []int{1, 2, 3, 5, 8},
		JokerCount:    2,
		Round:         1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func stores(t *testing.T) map[string]gameStore {
	return map[string]gameStore{
		"memory": NewMemoryStore(),
		"sqlite": setupTestDB(t),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := newTestGame("g1")

			if err := store.CreateGame(ctx, g); err != nil {
				t.Fatalf("CreateGame() error = %v", err)
			}
			if err := store.CreateGame(ctx, g); err == nil {
				t.Error("expected error creating a duplicate game")
			}

			id, err := store.GameIDByAdminCode(ctx, g.AdminCode)
			if err != nil || id != g.ID {
				t.Errorf("GameIDByAdminCode() = %q, %v", id, err)
			}
			id, err = store.GameIDByPlayerCode(ctx, g.PlayerCode)
			if err != nil || id != g.ID {
				t.Errorf("GameIDByPlayerCode() = %q, %v", id, err)
			}

			got, err := store.GetGame(ctx, g.ID)
			if err != nil {
				t.Fatalf("GetGame() error = %v", err)
			}
			if got.Phase != models.PhaseVoting || got.JokerCount != 2 || got.Round != 1 {
				t.Errorf("unexpected game %+v", got)
			}
			if !slices.Equal(got.AllowedValues, g.AllowedValues) {
				t.Errorf("AllowedValues = %v, want %v", got.AllowedValues, g.AllowedValues)
			}
			if !got.CreatedAt.Equal(g.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, g.CreatedAt)
			}
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := store.GetGame(ctx, "missing"); !errors.Is(err, models.ErrGameNotFound) {
				t.Errorf("GetGame() error = %v, want ErrGameNotFound", err)
			}
			if _, err := store.GameIDByAdminCode(ctx, "missing"); !errors.Is(err, models.ErrGameNotFound) {
				t.Errorf("GameIDByAdminCode() error = %v, want ErrGameNotFound", err)
			}
			if _, err := store.GameIDByPlayerCode(ctx, "missing"); !errors.Is(err, models.ErrGameNotFound) {
				t.Errorf("GameIDByPlayerCode() error = %v, want ErrGameNotFound", err)
			}
			if err := store.SaveGame(ctx, newTestGame("missing")); !errors.Is(err, models.ErrGameNotFound) {
				t.Errorf("SaveGame() error = %v, want ErrGameNotFound", err)
			}
		})
	}
}

func TestStore_SavePlayers(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := newTestGame("g2")
			if err := store.CreateGame(ctx, g); err != nil {
				t.Fatal(err)
			}

			hand := []models.Card{
				models.NewCard(1, models.Spades),
				models.NewCard(2, models.Hearts),
				models.NewFaceCard(models.FaceKing, models.Clubs),
			}
			g.Players = []models.Player{
				{ID: "p1", Name: "Ann", Hand: hand, JoinedAt: g.CreatedAt},
				{ID: "p2", Name: "Bob", Hand: hand, JoinedAt: g.CreatedAt},
			}
			if err := store.SaveGame(ctx, g); err != nil {
				t.Fatalf("SaveGame() error = %v", err)
			}

			// Vote and reveal, then save again
			g.Players[1].SelectedCards = hand[:2]
			g.Players[1].HasVoted = true
			g.Players[1].OriginalVote = 3
			g.Players[1].FinalVote = 7
			g.Phase = models.PhaseRevealed
			g.ActiveJokers = []string{"Joker"}
			if err := store.SaveGame(ctx, g); err != nil {
				t.Fatalf("SaveGame() error = %v", err)
			}

			got, err := store.GetGame(ctx, g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if len(got.Players) != 2 || got.Players[0].Name != "Ann" || got.Players[1].Name != "Bob" {
				t.Fatalf("players out of order: %+v", got.Players)
			}
			bob := got.Players[1]
			if !bob.HasVoted || bob.OriginalVote != 3 || bob.FinalVote != 7 {
				t.Errorf("vote state not saved: %+v", bob)
			}
			if !slices.Equal(bob.SelectedCards, hand[:2]) {
				t.Errorf("SelectedCards = %v", bob.SelectedCards)
			}
			if !slices.Equal(got.Players[0].Hand, hand) {
				t.Errorf("Hand = %v", got.Players[0].Hand)
			}
			if got.Players[0].SelectedCards != nil {
				t.Errorf("Ann should have no selection, got %v", got.Players[0].SelectedCards)
			}
			if got.Phase != models.PhaseRevealed || !slices.Equal(got.ActiveJokers, []string{"Joker"}) {
				t.Errorf("game state not saved: %s %v", got.Phase, got.ActiveJokers)
			}
		})
	}
}

func TestStore_Isolation(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := newTestGame("g3")
			if err := store.CreateGame(ctx, g); err != nil {
				t.Fatal(err)
			}

			loaded, _ := store.GetGame(ctx, g.ID)
			loaded.AllowedValues[0] = 99
			loaded.Phase = models.PhaseRevealed

			again, _ := store.GetGame(ctx, g.ID)
			if again.AllowedValues[0] != 1 || again.Phase != models.PhaseVoting {
				t.Error("unsaved changes leaked into the store")
			}
		})
	}
}

func TestStore_Rounds(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := newTestGame("g4")
			if err := store.CreateGame(ctx, g); err != nil {
				t.Fatal(err)
			}

			rounds, err := store.ListRounds(ctx, g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if rounds == nil || len(rounds) != 0 {
				t.Errorf("expected empty non-nil list, got %#v", rounds)
			}

			now := time.Now().UTC().Truncate(time.Second)
			second := models.RoundResult{ID: "r2", GameID: g.ID, Round: 2, Jokers: []string{"Hack"}, RevealedAt: now,
				Votes: []models.PlayerVote{{PlayerID: "p1", Name: "Ann", Original: 5, Final: 10,
					Cards: []models.Card{models.NewCard(5, models.Hearts)}}}}
			first := models.RoundResult{ID: "r1", GameID: g.ID, Round: 1, RevealedAt: now.Add(-time.Minute)}

			for _, r := range []models.RoundResult{second, first} {
				if err := store.SaveReveal(ctx, g, r); err != nil {
					t.Fatalf("SaveReveal() error = %v", err)
				}
			}

			rounds, err = store.ListRounds(ctx, g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if len(rounds) != 2 || rounds[0].ID != "r1" || rounds[1].ID != "r2" {
				t.Fatalf("rounds = %+v", rounds)
			}
			v := rounds[1].Votes
			if len(v) != 1 || v[0].Final != 10 || v[0].Cards[0] != models.NewCard(5, models.Hearts) {
				t.Errorf("votes = %+v", v)
			}
		})
	}
}

func TestStore_SaveReveal(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := newTestGame("g5")
			if err := store.CreateGame(ctx, g); err != nil {
				t.Fatal(err)
			}

			g.Phase = models.PhaseRevealed
			g.ActiveJokers = []string{"Joker"}
			r := models.RoundResult{ID: "r1", GameID: g.ID, Round: 1, Jokers: []string{"Joker"}, RevealedAt: time.Now().UTC()}
			if err := store.SaveReveal(ctx, g, r); err != nil {
				t.Fatalf("SaveReveal() error = %v", err)
			}

			loaded, err := store.GetGame(ctx, g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Phase != models.PhaseRevealed || !slices.Equal(loaded.ActiveJokers, []string{"Joker"}) {
				t.Errorf("game not saved: %+v", loaded)
			}

			missing := newTestGame("nope")
			if err := store.SaveReveal(ctx, missing, models.RoundResult{ID: "r2", GameID: "nope"}); !errors.Is(err, models.ErrGameNotFound) {
				t.Errorf("SaveReveal(unknown) error = %v, want ErrGameNotFound", err)
			}
			if rounds, _ := store.ListRounds(ctx, "nope"); len(rounds) != 0 {
				t.Errorf("round stored for unknown game: %+v", rounds)
			}
		})
	}
}

func TestSQLStore_SaveRevealRollback(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	g := newTestGame("g6")
	if err := store.CreateGame(ctx, g); err != nil {
		t.Fatal(err)
	}

	if _, err := store.db.Exec("DROP TABLE round_result"); err != nil {
		t.Fatal(err)
	}

	g.Phase = models.PhaseRevealed
	if err := store.SaveReveal(ctx, g, models.RoundResult{ID: "r1", GameID: g.ID, Round: 1}); err == nil {
		t.Fatal("SaveReveal() should fail without the round_result table")
	}

	loaded, err := store.GetGame(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Phase != models.PhaseVoting {
		t.Errorf("Phase = %s, want the update rolled back", loaded.Phase)
	}
}
