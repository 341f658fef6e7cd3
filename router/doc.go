// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Balatro Poker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(manager)

# Endpoints

Health:

	GET /health

Games:

	POST /api/game/create - Create game

Admin (requires the admin code):

	GET  /api/game/admin/{adminCode}              - Admin view
	POST /api/game/admin/{adminCode}/start-voting - Leave the lobby
	PUT  /api/game/admin/{adminCode}/settings     - Allowed values and joker count
	POST /api/game/admin/{adminCode}/reveal       - Reveal and apply jokers
	POST /api/game/admin/{adminCode}/new-round    - Deal new hands
	GET  /api/game/admin/{adminCode}/rounds       - Revealed round history

Players (shared player code):

	GET  /api/game/player/{playerCode}      - Player view
	POST /api/game/player/{playerCode}/join - Join by name
	POST /api/game/player/{playerCode}/vote - Submit selected cards

Jokers:

	GET /api/jokers - Active catalog
*/
package router
