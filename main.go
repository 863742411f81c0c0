// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/crewline/fieldcrm/cmd"

func main() {
	cmd.Execute()
}
