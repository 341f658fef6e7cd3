// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Code lengths in bytes. Hex encoding doubles them.
const (
	GameIDBytes     = 4
	AdminCodeBytes  = 6
	PlayerCodeBytes = 4
)

// Codes are the capabilities handed out when a game is created. The admin
// code grants control of the game; the player code lets anyone join and vote.
type Codes struct {
	GameID     string
	AdminCode  string
	PlayerCode string
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateCodes creates a fresh game ID, admin code and player code.
// The three values are guaranteed to differ from each other.
func GenerateCodes() (Codes, error) {
	var c Codes
	var err error

	if c.GameID, err = GenerateID(GameIDBytes); err != nil {
		return Codes{}, err
	}
	if c.AdminCode, err = GenerateID(AdminCodeBytes); err != nil {
		return Codes{}, err
	}
	for {
		if c.PlayerCode, err = GenerateID(PlayerCodeBytes); err != nil {
			return Codes{}, err
		}
		if c.PlayerCode != c.GameID {
			break
		}
	}

	return c, nil
}
