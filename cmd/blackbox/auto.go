// Package main git hook automation commands.
//
// The auto-* commands run from git hooks, so they never fail: a dead
// API or a bad payload must not block a commit.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
)

func autoCommitCmd() *cobra.Command {
	var project, message, commitHash, gitUser string
	var verbose bool
	cmd := &cobra.Command{
		Use:    "auto-commit",
		Short:  "Record a git commit (hook entrypoint, always exits 0)",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			err := apiClient.AutoCommit(cmd.Context(), client.AutoCommit{
				Project:    project,
				Message:    message,
				CommitHash: commitHash,
				GitUser:    gitUser,
			})
			if err != nil && verbose {
				errorColor.Fprintf(cmd.ErrOrStderr(), "auto-commit: %v\n", err)
			}
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name")
	cmd.Flags().StringVar(&message, "message", "", "Commit message")
	cmd.Flags().StringVar(&commitHash, "commit-hash", "", "Commit hash")
	cmd.Flags().StringVar(&gitUser, "git-user", "", "Git author name")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Report failures on stderr")
	return cmd
}

func autoEventCmd() *cobra.Command {
	var project, eventType, message, gitUser string
	var verbose bool
	cmd := &cobra.Command{
		Use:    "auto-event",
		Short:  "Record an arbitrary event (hook entrypoint, always exits 0)",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			err := apiClient.AutoEvent(cmd.Context(), client.AutoEvent{
				Project: project,
				Type:    eventType,
				Message: message,
				GitUser: gitUser,
			})
			if err != nil && verbose {
				errorColor.Fprintf(cmd.ErrOrStderr(), "auto-event: %v\n", err)
			}
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name")
	cmd.Flags().StringVar(&eventType, "type", "info", "Event type")
	cmd.Flags().StringVar(&message, "message", "", "Event message")
	cmd.Flags().StringVar(&gitUser, "git-user", "", "Git author name")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Report failures on stderr")
	return cmd
}
