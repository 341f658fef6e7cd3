// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"log/slog"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/models"
)

// View projects a game for API responses. The admin view carries the admin
// code, player IDs and every selection as it is made. The player view hides
// other players' IDs, and their selections and votes until the reveal.
func (m *Manager) View(g *models.Game, admin bool) models.GameView {
	revealed := g.Phase == models.PhaseRevealed

	v := models.GameView{
		GameID:          g.ID,
		PlayerCode:      g.PlayerCode,
		Phase:           g.Phase,
		AllowedValues:   slices.Clone(g.AllowedValues),
		JokerCount:      g.JokerCount,
		Round:           g.Round,
		Players:         make([]models.PlayerView, len(g.Players)),
		ActiveJokers:    m.activeJokers(g),
		AllPlayersVoted: g.AllPlayersVoted(),
		CreatedAt:       g.CreatedAt,
		CreatedAgo:      humanize.Time(g.CreatedAt),
	}
	if admin {
		v.AdminCode = g.AdminCode
	}

	for i, p := range g.Players {
		pv := models.PlayerView{
			Name:     p.Name,
			Cards:    slices.Clone(p.Hand),
			HasVoted: p.HasVoted,
		}
		if admin {
			pv.ID = p.ID
		}
		if p.HasVoted && (admin || revealed) {
			pv.SelectedCards = slices.Clone(p.SelectedCards)
			original := p.OriginalVote
			pv.OriginalVote = &original
		}
		if p.HasVoted && revealed {
			final := p.FinalVote
			pv.FinalVote = &final
		}
		v.Players[i] = pv
	}

	if revealed {
		v.Stats = finalStats(g)
	}

	return v
}

// activeJokers rebinds the persisted joker names to the catalog
func (m *Manager) activeJokers(g *models.Game) []models.JokerView {
	resolved, unknown := m.engine.Catalog().Resolve(g.ActiveJokers)
	for _, name := range unknown {
		slog.Warn("saved joker not in catalog",
			"game_id", g.ID,
			"joker", name,
			"catalog", m.engine.Catalog().Name(),
		)
	}
	return jokers.Views(resolved)
}

func finalStats(g *models.Game) *models.VoteStats {
	voted := g.VotedPlayers()
	if len(voted) == 0 {
		return nil
	}

	s := models.VoteStats{Min: voted[0].FinalVote, Max: voted[0].FinalVote}
	sum := 0
	for _, p := range voted {
		s.Min = min(s.Min, p.FinalVote)
		s.Max = max(s.Max, p.FinalVote)
		sum += p.FinalVote
	}
	s.Average = float64(sum) / float64(len(voted))
	return &s
}
