// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Action labels used when recording denied operations in the security
// log.
const (
	VIEW_ACTION  = "view"
	EDIT_ACTION  = "edit"
	ADMIN_ACTION = "admin"
)
