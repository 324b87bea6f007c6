// Package main session commands.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	// blackbox session start <project-id>
	startCmd := &cobra.Command{
		Use:   "start [project-id]",
		Short: "Start a session for a project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session, err := apiClient.CreateSession(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			success("Session started: id=%d project=%d", session.ID, session.ProjectID)
		},
	}

	// blackbox session end <id>
	endCmd := &cobra.Command{
		Use:   "end [id]",
		Short: "End a session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session, err := apiClient.EndSession(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			success("Session %d ended at %s", session.ID, session.EndedAt.Format("2006-01-02 15:04:05"))
		},
	}

	// blackbox session get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session, err := apiClient.GetSession(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(session)
		},
	}

	// blackbox session list
	var skip, limit int
	var project int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		Run: func(cmd *cobra.Command, args []string) {
			sessions, err := apiClient.ListSessions(cmd.Context(), int64Ptr(project), client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(sessions)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of sessions to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum sessions to return")
	listCmd.Flags().Int64Var(&project, "project", 0, "Filter by project id")

	cmd.AddCommand(startCmd, endCmd, getCmd, listCmd)
	return cmd
}
