// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiEndpoint string
	apiToken    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fieldcrm",
	Short: "Field CRM",
	Long:  `Field CRM service and operator CLI for multi-location retail outreach.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiEndpoint, "endpoint", "http://localhost:8080", "API endpoint")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Bearer token for API access")
}
