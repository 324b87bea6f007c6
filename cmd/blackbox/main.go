// Package main provides the blackbox CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"blackbox/client"
	"blackbox/internal/config"
)

var (
	version   = "0.1.0"
	apiClient *client.Client
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blackbox",
		Short: "Dev Blackbox - activity ledger for your coding sessions",
		Long: `Blackbox records who worked on what: users, projects, sessions,
code snippets, runs and events, all stored through the blackbox API.

Use 'blackbox check' to verify the API and git hooks are wired up.
Use 'blackbox hooks install' inside a git repository to log commits
automatically.`,
		Version: version,
	}

	var apiBase string
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (overrides BLACKBOX_API_URL)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		cfg := config.LoadClient()
		if apiBase != "" {
			cfg.APIBaseURL = apiBase
		}
		apiClient = client.New(cfg)
	}

	rootCmd.AddCommand(
		userCmd(),
		projectCmd(),
		sessionCmd(),
		snippetCmd(),
		runCmd(),
		eventCmd(),
		statsCmd(),
		autoCommitCmd(),
		autoEventCmd(),
		hooksCmd(),
		checkCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
