// Package main stats and report commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blackbox/adapters/excel"
	"blackbox/client"
	"blackbox/models"
)

func statsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show ledger totals and breakdowns",
		Run: func(cmd *cobra.Command, args []string) {
			summary, err := apiClient.Stats(cmd.Context())
			exitOnError(err)
			if asJSON {
				printJSON(summary)
				return
			}
			printSummary(summary)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	// blackbox stats export --out report.xlsx
	var out string
	var eventLimit int
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write an xlsx activity report",
		Run: func(cmd *cobra.Command, args []string) {
			summary, err := apiClient.Stats(cmd.Context())
			exitOnError(err)
			events, err := apiClient.ListEvents(cmd.Context(), nil, nil, "", client.Page{Limit: eventLimit})
			exitOnError(err)
			exitOnError(excel.NewReportWriter().Write(out, summary, events))
			success("Report written to %s (%d events)", out, len(events))
		},
	}
	exportCmd.Flags().StringVar(&out, "out", "blackbox_report.xlsx", "Output file path")
	exportCmd.Flags().IntVar(&eventLimit, "events", 100, "Maximum events to include")

	cmd.AddCommand(exportCmd)
	return cmd
}

func printSummary(s *models.Summary) {
	labelColor.Println("Totals")
	fmt.Printf("  users=%d projects=%d sessions=%d snippets=%d runs=%d events=%d\n",
		s.TotalUsers, s.TotalProjects, s.TotalSessions, s.TotalSnippets, s.TotalRuns, s.TotalEvents)

	labelColor.Println("Runs by status")
	for _, status := range models.RunStatuses() {
		fmt.Printf("  %-8s %d\n", status, s.RunsByStatus[status])
	}

	labelColor.Println("Events by type")
	for _, eventType := range models.EventTypes() {
		fmt.Printf("  %-8s %d\n", eventType, s.EventsByType[eventType])
	}

	if s.Durations != nil {
		labelColor.Println("Run durations (seconds)")
		fmt.Printf("  reported=%d mean=%.3f median=%.3f max=%.3f\n",
			s.Durations.Reported, s.Durations.Mean, s.Durations.Median, s.Durations.Max)
	}
}
