// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"context"

	"github.com/danielhkuo/balatro-poker/models"
)

// Store persists games and round history. Implementations return
// models.ErrGameNotFound for unknown IDs and codes, and must not share
// memory with the games they are handed or return.
type Store interface {
	CreateGame(ctx context.Context, g *models.Game) error
	GetGame(ctx context.Context, id string) (*models.Game, error)
	GameIDByAdminCode(ctx context.Context, code string) (string, error)
	GameIDByPlayerCode(ctx context.Context, code string) (string, error)
	SaveGame(ctx context.Context, g *models.Game) error
	// SaveReveal saves the game and appends r to its history atomically
	SaveReveal(ctx context.Context, g *models.Game, r models.RoundResult) error
	ListRounds(ctx context.Context, gameID string) ([]models.RoundResult, error)
}
