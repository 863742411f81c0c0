// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var userContextKey = contextKey{}

// Principal is the authenticated caller as asserted by the verified
// token. Email comes from the token's email claim, never from a
// request body; it may be empty for tokens without one (machine
// credentials).
type Principal struct {
	ID    string
	Email string
}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, userContextKey, p)
}

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithPrincipal(ctx, &Principal{ID: userID})
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(userContextKey).(*Principal)
	if !ok || p == nil {
		return "", false
	}
	return p.ID, true
}

// GetUserEmail retrieves the verified email claim from the context.
// Returns an empty string and false when the token carried no email.
func GetUserEmail(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(userContextKey).(*Principal)
	if !ok || p == nil || p.Email == "" {
		return "", false
	}
	return p.Email, true
}
