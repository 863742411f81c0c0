// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"identity":{"id":"user-1","email":"clerk@example.com"},"permissions":[{"store_id":"` + storeA + `","can_edit":true}],"stores":[{"id":"` + storeA + `","name":"Main St"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	me, err := client.GetMe(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if me.Identity == nil || me.Identity.ID != "user-1" {
		t.Errorf("unexpected identity %+v", me.Identity)
	}
	if len(me.Permissions) != 1 || !me.Permissions[0].CanEdit {
		t.Errorf("unexpected permissions %+v", me.Permissions)
	}
}

func TestClient_SyncUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/users/sync" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if body, _ := io.ReadAll(r.Body); len(body) != 0 {
			t.Errorf("expected an empty body, got %q", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","email":"clerk@example.com"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	identity, err := client.SyncUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "user-1" {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestClient_SurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"message":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token")
	if _, err := client.GetMe(context.Background()); err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}
