// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
)

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"4 bytes", 4, 8},
		{"6 bytes", 6, 12},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			if !isHex(id) {
				t.Errorf("GenerateID() = %q is not hex", id)
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateCodes(t *testing.T) {
	c, err := GenerateCodes()
	if err != nil {
		t.Fatalf("GenerateCodes() error = %v", err)
	}

	if len(c.GameID) != 8 || len(c.AdminCode) != 12 || len(c.PlayerCode) != 8 {
		t.Errorf("unexpected code lengths: %+v", c)
	}
	if c.GameID == c.PlayerCode {
		t.Error("player code must differ from game ID")
	}
	for _, s := range []string{c.GameID, c.AdminCode, c.PlayerCode} {
		if !isHex(s) {
			t.Errorf("%q is not hex", s)
		}
	}

	seen := make(map[string]bool)
	for range 50 {
		c, err := GenerateCodes()
		if err != nil {
			t.Fatal(err)
		}
		if seen[c.AdminCode] {
			t.Fatalf("duplicate admin code %s", c.AdminCode)
		}
		seen[c.AdminCode] = true
	}
}
