// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewline/fieldcrm/pkg/session"
)

var syncOnWhoami bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated identity and resolved store access",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		if syncOnWhoami {
			client := session.NewClient(apiEndpoint, apiToken)
			if _, err := client.SyncUser(context.Background()); err != nil {
				return fmt.Errorf("failed to sync user: %w", err)
			}
		}

		if err := resolver.Refresh(context.Background()); err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}

		snapshot := resolver.Snapshot()
		if snapshot.Identity == nil {
			fmt.Println("Not provisioned yet. Run with --sync first.")
			return nil
		}

		fmt.Printf("ID:     %s\n", snapshot.Identity.ID)
		fmt.Printf("Email:  %s\n", snapshot.Identity.Email)
		fmt.Printf("Admin:  %v\n", snapshot.Identity.IsGlobalAdmin)
		if active := resolver.ActiveStoreID(); active != "" {
			fmt.Printf("Store:  %s\n", active)
		} else {
			fmt.Println("Store:  none selected")
		}
		if !resolver.HasAnyAccess() {
			fmt.Println("No store access. Contact your administrator.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().BoolVar(&syncOnWhoami, "sync", false, "Provision the identity from the token before reporting")
}
