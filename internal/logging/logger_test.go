// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("debug")
	}()
}

func TestInvalidLevel(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid log level")
		}
	}()
	NewLogger("invalid")
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthnFailure("missing header")
	l.Security().AuthzFailure("subject", "stores.delete")
	l.Security().PermissionChange("subject", "store-1", "grant")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
