// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/balatro-poker/models"
	"github.com/danielhkuo/balatro-poker/testutil"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"game not found", fmt.Errorf("load: %w", models.ErrGameNotFound), http.StatusNotFound, "Game not found"},
		{"player not found", models.ErrPlayerNotFound, http.StatusNotFound, "Player not found"},
		{"wrong phase", fmt.Errorf("%w: cannot reveal in phase Setup", models.ErrWrongPhase), http.StatusConflict, ""},
		{"invalid name", models.ErrInvalidPlayerName, http.StatusBadRequest, ""},
		{"invalid vote", models.ErrInvalidVote, http.StatusBadRequest, ""},
		{"card not in hand", models.ErrCardNotInHand, http.StatusBadRequest, ""},
		{"invalid settings", models.ErrInvalidSettings, http.StatusBadRequest, ""},
		{"storage failure", errors.New("disk full"), http.StatusInternalServerError, "Failed to reveal cards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeError(w, tt.err, "reveal cards")

			testutil.AssertStatus(t, w, tt.expectedStatus)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			want := tt.expectedMessage
			if want == "" {
				want = tt.err.Error()
			}
			if resp.Message != want {
				t.Errorf("Message = %q, want %q", resp.Message, want)
			}
		})
	}
}
