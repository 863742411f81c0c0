// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as the user ID for development purposes.
// A token that looks like an email doubles as the email claim.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawIDToken string) (*Principal, error) {
	p := &Principal{ID: rawIDToken}
	if strings.Contains(rawIDToken, "@") {
		p.Email = rawIDToken
	}
	return p, nil
}
