// Package main run commands.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
	"blackbox/models"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run commands",
	}

	// blackbox run create <session-id>
	var snippetID int64
	createCmd := &cobra.Command{
		Use:   "create [session-id]",
		Short: "Create a pending run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run, err := apiClient.CreateRun(cmd.Context(), client.RunCreate{
				SessionID: parseID(args[0]),
				SnippetID: int64Ptr(snippetID),
			})
			exitOnError(err)
			success("Run created: id=%d status=%s", run.ID, run.Status)
		},
	}
	createCmd.Flags().Int64Var(&snippetID, "snippet", 0, "Snippet the run executes")

	// blackbox run update <id>
	var status, stdout, stderr, returnValue string
	var duration float64
	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update run status and captured output",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var patch models.RunPatch
			if cmd.Flags().Changed("status") {
				s := models.RunStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("stdout") {
				patch.Stdout = &stdout
			}
			if cmd.Flags().Changed("stderr") {
				patch.Stderr = &stderr
			}
			if cmd.Flags().Changed("return") {
				patch.ReturnValue = &returnValue
			}
			if cmd.Flags().Changed("duration") {
				patch.Duration = &duration
			}
			run, err := apiClient.UpdateRun(cmd.Context(), parseID(args[0]), patch)
			exitOnError(err)
			success("Run %d updated: status=%s", run.ID, run.Status)
		},
	}
	updateCmd.Flags().StringVar(&status, "status", "", "New status (pending, running, success, failed)")
	updateCmd.Flags().StringVar(&stdout, "stdout", "", "Captured stdout")
	updateCmd.Flags().StringVar(&stderr, "stderr", "", "Captured stderr")
	updateCmd.Flags().StringVar(&returnValue, "return", "", "Captured return value")
	updateCmd.Flags().Float64Var(&duration, "duration", 0, "Run duration in seconds")

	// blackbox run get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show a run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run, err := apiClient.GetRun(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(run)
		},
	}

	// blackbox run list
	var skip, limit int
	var session int64
	var filterStatus string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List runs",
		Run: func(cmd *cobra.Command, args []string) {
			runs, err := apiClient.ListRuns(cmd.Context(), int64Ptr(session), filterStatus, client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(runs)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of runs to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum runs to return")
	listCmd.Flags().Int64Var(&session, "session", 0, "Filter by session id")
	listCmd.Flags().StringVar(&filterStatus, "status", "", "Filter by status")

	cmd.AddCommand(createCmd, updateCmd, getCmd, listCmd)
	return cmd
}
