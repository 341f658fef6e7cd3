// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/balatro-poker/game"
	"github.com/danielhkuo/balatro-poker/handlers"
	"github.com/danielhkuo/balatro-poker/middleware"
)

func NewRouter(games *game.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(games)
	jokerHandler := handlers.NewJokerHandler(games.Catalog())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/game/create", middleware.WithLogging(gameHandler.CreateGame))

	// Admin operations
	mux.HandleFunc("GET /api/game/admin/{adminCode}", middleware.WithLogging(gameHandler.GetAdminGame))
	mux.HandleFunc("POST /api/game/admin/{adminCode}/start-voting", middleware.WithLogging(gameHandler.StartVoting))
	mux.HandleFunc("PUT /api/game/admin/{adminCode}/settings", middleware.WithLogging(gameHandler.UpdateSettings))
	mux.HandleFunc("POST /api/game/admin/{adminCode}/reveal", middleware.WithLogging(gameHandler.Reveal))
	mux.HandleFunc("POST /api/game/admin/{adminCode}/new-round", middleware.WithLogging(gameHandler.NewRound))
	mux.HandleFunc("GET /api/game/admin/{adminCode}/rounds", middleware.WithLogging(gameHandler.GetRounds))

	// Player operations
	mux.HandleFunc("GET /api/game/player/{playerCode}", middleware.WithLogging(gameHandler.GetPlayerGame))
	mux.HandleFunc("POST /api/game/player/{playerCode}/join", middleware.WithLogging(gameHandler.JoinGame))
	mux.HandleFunc("POST /api/game/player/{playerCode}/vote", middleware.WithLogging(gameHandler.SubmitVote))

	mux.HandleFunc("GET /api/jokers", middleware.WithLogging(jokerHandler.ListJokers))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("balatro-poker API v1"))
	})

	return mux
}
