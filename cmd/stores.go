// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/tracing"
	"github.com/crewline/fieldcrm/pkg/session"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Inspect and select the stores you can work in",
}

var listStoresCmd = &cobra.Command{
	Use:   "list",
	Short: "List stores available to the authenticated operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		if err := resolver.Refresh(context.Background()); err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}

		snapshot := resolver.Snapshot()
		if !resolver.HasAnyAccess() {
			fmt.Println("No store access. Contact your administrator.")
			return nil
		}

		active := resolver.ActiveStoreID()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCITY\tEDIT\tACTIVE")
		for _, store := range snapshot.Stores {
			marker := ""
			if store.ID == active {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", store.ID, store.Name, store.City, resolver.CanEdit(store.ID), marker)
		}
		w.Flush()
		return nil
	},
}

var useStoreCmd = &cobra.Command{
	Use:   "use [store-id]",
	Short: "Select the active store for subsequent sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		if err := resolver.Refresh(context.Background()); err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}

		if err := resolver.SetActiveStore(args[0]); err != nil {
			return err
		}

		fmt.Printf("Active store set to %s\n", args[0])
		return nil
	},
}

func newResolver() (*session.Resolver, error) {
	statePath, err := session.DefaultStatePath()
	if err != nil {
		return nil, err
	}

	return session.NewResolver(
		session.NewClient(apiEndpoint, apiToken),
		session.NewFileStateStore(statePath),
		tracing.NewNoopTracer(),
		logging.NewNoopLogger(),
	), nil
}

func init() {
	rootCmd.AddCommand(storesCmd)
	storesCmd.AddCommand(listStoresCmd)
	storesCmd.AddCommand(useStoreCmd)
}
