// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates the capability codes that guard a game.

There are no accounts. Whoever holds a code holds the capability:

	codes, err := auth.GenerateCodes()
	// codes.GameID     8 hex chars, internal identifier
	// codes.AdminCode  12 hex chars, reveal / new round / settings
	// codes.PlayerCode 8 hex chars, join and vote

Codes come from crypto/rand and are hex encoded so they are safe to put in
URLs without escaping.

# ID Generation

Random hex IDs of any length:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
