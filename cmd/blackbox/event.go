// Package main event commands.
package main

import (
	"github.com/spf13/cobra"

	"blackbox/client"
	"blackbox/models"
)

func eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Event commands",
	}

	// blackbox event log <project-id> <type>
	var message, metadata string
	var runID int64
	logCmd := &cobra.Command{
		Use:   "log [project-id] [type]",
		Short: "Record an event against a project",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			event, err := apiClient.CreateEvent(cmd.Context(), client.EventCreate{
				ProjectID: parseID(args[0]),
				RunID:     int64Ptr(runID),
				EventType: models.EventType(args[1]),
				Message:   strPtr(message),
				Metadata:  strPtr(metadata),
			})
			exitOnError(err)
			success("Event logged: id=%d type=%s", event.ID, event.EventType)
		},
	}
	logCmd.Flags().StringVar(&message, "message", "", "Event message")
	logCmd.Flags().StringVar(&metadata, "metadata", "", "Opaque metadata payload (JSON recommended)")
	logCmd.Flags().Int64Var(&runID, "run", 0, "Run the event belongs to")

	// blackbox event get <id>
	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show an event",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			event, err := apiClient.GetEvent(cmd.Context(), parseID(args[0]))
			exitOnError(err)
			printJSON(event)
		},
	}

	// blackbox event list
	var skip, limit int
	var project, run int64
	var eventType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Run: func(cmd *cobra.Command, args []string) {
			events, err := apiClient.ListEvents(cmd.Context(), int64Ptr(project), int64Ptr(run), eventType, client.Page{Skip: skip, Limit: limit})
			exitOnError(err)
			printJSON(events)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Number of events to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "Maximum events to return")
	listCmd.Flags().Int64Var(&project, "project", 0, "Filter by project id")
	listCmd.Flags().Int64Var(&run, "run", 0, "Filter by run id")
	listCmd.Flags().StringVar(&eventType, "type", "", "Filter by event type")

	cmd.AddCommand(logCmd, getCmd, listCmd)
	return cmd
}
