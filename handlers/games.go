// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/danielhkuo/balatro-poker/game"
	"github.com/danielhkuo/balatro-poker/middleware"
	"github.com/danielhkuo/balatro-poker/models"
)

type GameHandler struct {
	games *game.Manager
}

func NewGameHandler(games *game.Manager) *GameHandler {
	return &GameHandler{games: games}
}

// CreateGame handles POST /api/game/create. An empty body creates a game
// with the default settings.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	g, err := h.games.CreateGame(r.Context(), req)
	if err != nil {
		writeError(w, err, "create game")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, h.games.View(g, true))
}

// GetAdminGame handles GET /api/game/admin/{adminCode}
func (h *GameHandler) GetAdminGame(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	g, err := h.games.GameByAdminCode(r.Context(), adminCode)
	if err != nil {
		writeError(w, err, "load game")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.games.View(g, true))
}

// GetPlayerGame handles GET /api/game/player/{playerCode}
func (h *GameHandler) GetPlayerGame(w http.ResponseWriter, r *http.Request) {
	playerCode := r.PathValue("playerCode")
	if playerCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "playerCode is required")
		return
	}

	g, err := h.games.GameByPlayerCode(r.Context(), playerCode)
	if err != nil {
		writeError(w, err, "load game")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.games.View(g, false))
}

// JoinGame handles POST /api/game/player/{playerCode}/join
func (h *GameHandler) JoinGame(w http.ResponseWriter, r *http.Request) {
	playerCode := r.PathValue("playerCode")
	if playerCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "playerCode is required")
		return
	}

	var req models.JoinGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	player, err := h.games.Join(r.Context(), playerCode, req.Name)
	if err != nil {
		writeError(w, err, "join game")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, player)
}

// SubmitVote handles POST /api/game/player/{playerCode}/vote
func (h *GameHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	playerCode := r.PathValue("playerCode")
	if playerCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "playerCode is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.PlayerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "playerId is required")
		return
	}

	player, err := h.games.SubmitVote(r.Context(), playerCode, req)
	if err != nil {
		writeError(w, err, "submit vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, player)
}

// StartVoting handles POST /api/game/admin/{adminCode}/start-voting
func (h *GameHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	g, err := h.games.StartVoting(r.Context(), adminCode)
	if err != nil {
		writeError(w, err, "start voting")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.games.View(g, true))
}

// UpdateSettings handles PUT /api/game/admin/{adminCode}/settings
func (h *GameHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	g, err := h.games.UpdateSettings(r.Context(), adminCode, req)
	if err != nil {
		writeError(w, err, "update settings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.games.View(g, true))
}

// Reveal handles POST /api/game/admin/{adminCode}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	result, err := h.games.Reveal(r.Context(), adminCode)
	if err != nil {
		writeError(w, err, "reveal cards")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// NewRound handles POST /api/game/admin/{adminCode}/new-round
func (h *GameHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	g, err := h.games.StartNewRound(r.Context(), adminCode)
	if err != nil {
		writeError(w, err, "start new round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.games.View(g, true))
}

// GetRounds handles GET /api/game/admin/{adminCode}/rounds
func (h *GameHandler) GetRounds(w http.ResponseWriter, r *http.Request) {
	adminCode := r.PathValue("adminCode")
	if adminCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "adminCode is required")
		return
	}

	gameID, rounds, err := h.games.Rounds(r.Context(), adminCode)
	if err != nil {
		writeError(w, err, "load rounds")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoundsResponse{
		GameID: gameID,
		Rounds: rounds,
	})
}
