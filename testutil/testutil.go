// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/balatro-poker/db"
	"github.com/danielhkuo/balatro-poker/game"
	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/models"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// FixedRand always returns the same index, clamped to the range. With the
// zero value every draw picks the first option: the first eligible joker
// and Hearts for every dealt card.
type FixedRand struct {
	N int
}

func (f FixedRand) IntN(n int) int {
	return min(f.N, n-1)
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// NewTestManager returns a manager backed by a fresh SQLite database. A nil
// rng uses FixedRand{}.
func NewTestManager(t *testing.T, catalog *jokers.Catalog, rng jokers.Rand) *game.Manager {
	t.Helper()

	if rng == nil {
		rng = FixedRand{}
	}
	store := db.NewSQLStore(SetupTestDB(t))
	return game.NewManager(store, jokers.NewEngine(catalog, rng))
}

// CreateTestGame creates a game and returns it with its codes
func CreateTestGame(t *testing.T, m *game.Manager, req models.CreateGameRequest) *models.Game {
	t.Helper()

	g, err := m.CreateGame(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return g
}

// JoinTestPlayer adds a player to a game
func JoinTestPlayer(t *testing.T, m *game.Manager, g *models.Game, name string) *models.Player {
	t.Helper()

	p, err := m.Join(context.Background(), g.PlayerCode, name)
	if err != nil {
		t.Fatalf("Failed to join test player: %v", err)
	}
	return p
}

// SubmitTestVote votes with the player's hand cards at the given indexes
// (0=A, 1=2, 2=3, 3=5, 4=8, 5=J, 6=Q, 7=K)
func SubmitTestVote(t *testing.T, m *game.Manager, g *models.Game, p *models.Player, idx ...int) {
	t.Helper()

	cards := make([]models.Card, 0, len(idx))
	for _, i := range idx {
		cards = append(cards, p.Hand[i])
	}
	req := models.SubmitVoteRequest{PlayerID: p.ID, SelectedCards: cards}
	if _, err := m.SubmitVote(context.Background(), g.PlayerCode, req); err != nil {
		t.Fatalf("Failed to submit test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
