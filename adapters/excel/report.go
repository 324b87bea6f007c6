// Package excel writes activity reports as xlsx workbooks.
package excel

import (
	"fmt"
	"time"

	"blackbox/models"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	eventsSheet  = "Events"
)

// ReportWriter renders a stats summary and recent events into a workbook
type ReportWriter struct{}

// NewReportWriter creates a report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write saves the report to path
func (w *ReportWriter) Write(path string, summary *models.Summary, events []*models.Event) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, summary); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}
	if err := w.writeEvents(f, events); err != nil {
		return fmt.Errorf("failed to write events sheet: %w", err)
	}

	// Drop the default sheet excelize creates
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (w *ReportWriter) writeSummary(f *excelize.File, summary *models.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total users", summary.TotalUsers},
		{"Total projects", summary.TotalProjects},
		{"Total sessions", summary.TotalSessions},
		{"Total snippets", summary.TotalSnippets},
		{"Total runs", summary.TotalRuns},
		{"Total events", summary.TotalEvents},
	}
	for _, status := range models.RunStatuses() {
		rows = append(rows, []interface{}{"Runs " + string(status), summary.RunsByStatus[status]})
	}
	for _, eventType := range models.EventTypes() {
		rows = append(rows, []interface{}{"Events " + string(eventType), summary.EventsByType[eventType]})
	}
	if summary.Durations != nil {
		rows = append(rows,
			[]interface{}{"Run durations reported", summary.Durations.Reported},
			[]interface{}{"Run duration mean (s)", summary.Durations.Mean},
			[]interface{}{"Run duration median (s)", summary.Durations.Median},
			[]interface{}{"Run duration max (s)", summary.Durations.Max},
		)
	}

	return writeRows(f, summarySheet, rows)
}

func (w *ReportWriter) writeEvents(f *excelize.File, events []*models.Event) error {
	if _, err := f.NewSheet(eventsSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"ID", "Timestamp", "Project", "Run", "Type", "Message"},
	}
	for _, e := range events {
		var runID interface{}
		if e.RunID != nil {
			runID = *e.RunID
		}
		var message string
		if e.Message != nil {
			message = *e.Message
		}
		rows = append(rows, []interface{}{
			e.ID, e.Timestamp.Format(time.RFC3339), e.ProjectID, runID, string(e.EventType), message,
		})
	}

	return writeRows(f, eventsSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
