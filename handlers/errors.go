// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/balatro-poker/middleware"
	"github.com/danielhkuo/balatro-poker/models"
)

// writeError maps game errors to HTTP statuses. Anything unrecognized is
// logged and reported as a 500 with a generic message.
func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, models.ErrGameNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
	case errors.Is(err, models.ErrPlayerNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
	case errors.Is(err, models.ErrWrongPhase):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidPlayerName),
		errors.Is(err, models.ErrInvalidVote),
		errors.Is(err, models.ErrCardNotInHand),
		errors.Is(err, models.ErrInvalidSettings):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}
