// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface is a dedicated channel for security-relevant
// audit events, kept separate from operational logging so it can be
// routed and retained independently.
type SecurityLoggerInterface interface {
	AuthnFailure(reason string)
	AuthzFailure(subject, action string)
	PermissionChange(subject, storeID, action string)
	SystemStartup()
	SystemShutdown()
}
