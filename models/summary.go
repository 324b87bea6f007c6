package models

// Summary is a point-in-time snapshot of the whole ledger. The breakdown maps
// always carry every known status/type key, zero-valued when absent.
type Summary struct {
	TotalUsers    int `json:"total_users"`
	TotalProjects int `json:"total_projects"`
	TotalSessions int `json:"total_sessions"`
	TotalSnippets int `json:"total_snippets"`
	TotalRuns     int `json:"total_runs"`
	TotalEvents   int `json:"total_events"`

	RunsByStatus map[RunStatus]int `json:"runs_by_status"`
	EventsByType map[EventType]int `json:"events_by_type"`

	// Durations is present when at least one run reported a duration
	Durations *RunDurationStats `json:"run_durations,omitempty"`
}

// RunDurationStats aggregates caller-reported run durations, in seconds
type RunDurationStats struct {
	Reported int     `json:"reported"`
	Mean     float64 `json:"mean_seconds"`
	Median   float64 `json:"median_seconds"`
	Max      float64 `json:"max_seconds"`
}
