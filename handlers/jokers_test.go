// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/models"
	"github.com/danielhkuo/balatro-poker/testutil"
)

func TestListJokers(t *testing.T) {
	tests := []struct {
		catalog   *jokers.Catalog
		wantCount int
		wantFirst string
	}{
		{jokers.Balatro, 20, "Joker"},
		{jokers.Classic, 17, "The Multiplier"},
	}

	for _, tt := range tests {
		t.Run(tt.catalog.Name(), func(t *testing.T) {
			handler := NewJokerHandler(tt.catalog)
			req := httptest.NewRequest("GET", "/api/jokers", nil)
			w := httptest.NewRecorder()

			handler.ListJokers(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.CatalogResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Catalog != tt.catalog.Name() {
				t.Errorf("Catalog = %q, want %q", resp.Catalog, tt.catalog.Name())
			}
			if len(resp.Jokers) != tt.wantCount {
				t.Fatalf("Expected %d jokers, got %d", tt.wantCount, len(resp.Jokers))
			}
			if resp.Jokers[0].Name != tt.wantFirst || !resp.Jokers[0].Known {
				t.Errorf("first joker = %+v", resp.Jokers[0])
			}
		})
	}
}
