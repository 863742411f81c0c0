// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotFoundIsCanonical(t *testing.T) {
	// The denied and absent cases go through the same helper; the body
	// must never vary.
	first := httptest.NewRecorder()
	second := httptest.NewRecorder()

	NotFound(first)
	NotFound(second)

	if first.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, first.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("not-found responses differ: %q vs %q", first.Body.String(), second.Body.String())
	}
	if ct := first.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "store_id is required")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	expected := `{"status":400,"message":"store_id is required"}` + "\n"
	if w.Body.String() != expected {
		t.Errorf("expected body %q, got %q", expected, w.Body.String())
	}
}
