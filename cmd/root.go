/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE resolves the catalog lazily: commands that never touch
// one (config, lang, guide, version) skip it, commands that stream or defer
// the load (browse, serve) get an unloaded catalog, and everything else
// gets one that is already loaded.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/jpl-au/codefind/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codefind",
	Short: "Browse and search code snippet catalogs",
	Long: `Load a manifest of code entries from a URL or directory, fetch their bodies,
and list, search, print or browse them.

  codefind -s https://example.com/snippets/ ls
  codefind find http
  codefind browse`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		name := topLevelCmdName(cmd)
		if commandSets.NoCatalog[name] {
			return nil
		}

		err := initExtensions()
		if err == nil && !commandSets.LazyLoad[name] {
			err = loadCatalog(cmd.Context())
		}
		if err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return err
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "codefind config source.base", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command
// under a context cancelled by SIGINT or SIGTERM.
// Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	// Ctrl-C cancels the command context, so in-flight fetches stop and
	// the command fails through its normal error path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registerExtensions()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
