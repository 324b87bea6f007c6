package models

// RunStatus represents the lifecycle state of a Run
type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// RunStatuses returns every run status in a fixed order. Aggregation code
// enumerates this list rather than the statuses observed in data, so absent
// categories still report zero.
func RunStatuses() []RunStatus {
	return []RunStatus{RunStatusPending, RunStatusRunning, RunStatusSuccess, RunStatusFailed}
}

// Valid reports whether s is one of the four known statuses
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusPending, RunStatusRunning, RunStatusSuccess, RunStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s is a final state
func (s RunStatus) Terminal() bool {
	return s == RunStatusSuccess || s == RunStatusFailed
}

// CanTransition reports whether moving from s to next follows the
// pending -> running -> {success, failed} ordering. The update path is
// permissive by default and only consults this in strict mode.
func (s RunStatus) CanTransition(next RunStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case RunStatusPending:
		return next == RunStatusRunning
	case RunStatusRunning:
		return next == RunStatusSuccess || next == RunStatusFailed
	}
	return false
}

// EventType classifies an Event
type EventType string

const (
	EventTypeInfo    EventType = "info"
	EventTypeWarning EventType = "warning"
	EventTypeError   EventType = "error"
	EventTypeRun     EventType = "run"
	EventTypeMetric  EventType = "metric"
)

// EventTypes returns every event type in a fixed order
func EventTypes() []EventType {
	return []EventType{EventTypeInfo, EventTypeWarning, EventTypeError, EventTypeRun, EventTypeMetric}
}

// Valid reports whether t is one of the five known event types
func (t EventType) Valid() bool {
	switch t {
	case EventTypeInfo, EventTypeWarning, EventTypeError, EventTypeRun, EventTypeMetric:
		return true
	}
	return false
}
