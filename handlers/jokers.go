// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/middleware"
	"github.com/danielhkuo/balatro-poker/models"
)

type JokerHandler struct {
	catalog *jokers.Catalog
}

func NewJokerHandler(catalog *jokers.Catalog) *JokerHandler {
	return &JokerHandler{catalog: catalog}
}

// ListJokers handles GET /api/jokers
func (h *JokerHandler) ListJokers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Catalog: h.catalog.Name(),
		Jokers:  jokers.Views(h.catalog.All()),
	})
}
