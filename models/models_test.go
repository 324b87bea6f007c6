package models

import (
	"testing"
	"time"
)

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		expectError bool
	}{
		{name: "Valid username", username: "alice", expectError: false},
		{name: "Empty username", username: "", expectError: true},
		{name: "Whitespace only", username: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username)

			if tt.expectError && err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
			if !tt.expectError {
				if err != nil {
					t.Errorf("Unexpected error for %s: %v", tt.name, err)
				}
				if user.Username != tt.username {
					t.Errorf("Expected username %q, got %q", tt.username, user.Username)
				}
				if user.CreatedAt.IsZero() {
					t.Error("Expected CreatedAt to be set")
				}
			}
		})
	}
}

func TestNewSnippet_DefaultLanguage(t *testing.T) {
	snippet, err := NewCodeSnippet(1, nil, "", "print('hi')")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snippet.Language != "generic" {
		t.Errorf("Expected default language \"generic\", got %q", snippet.Language)
	}

	snippet, err = NewCodeSnippet(1, nil, "python", "print('hi')")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snippet.Language != "python" {
		t.Errorf("Expected language \"python\", got %q", snippet.Language)
	}
}

func TestNewSnippet_RequiresCode(t *testing.T) {
	if _, err := NewCodeSnippet(1, nil, "python", ""); err == nil {
		t.Error("Expected error for empty code, got nil")
	}
}

func TestNewRun_StartsPending(t *testing.T) {
	run, err := NewRun(7, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if run.Status != RunStatusPending {
		t.Errorf("Expected status %q, got %q", RunStatusPending, run.Status)
	}
	if run.SessionID != 7 {
		t.Errorf("Expected session 7, got %d", run.SessionID)
	}
}

func TestRunStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    RunStatus
		to      RunStatus
		allowed bool
	}{
		{name: "pending to running", from: RunStatusPending, to: RunStatusRunning, allowed: true},
		{name: "running to success", from: RunStatusRunning, to: RunStatusSuccess, allowed: true},
		{name: "running to failed", from: RunStatusRunning, to: RunStatusFailed, allowed: true},
		{name: "pending to success skips running", from: RunStatusPending, to: RunStatusSuccess, allowed: false},
		{name: "success is terminal", from: RunStatusSuccess, to: RunStatusRunning, allowed: false},
		{name: "failed is terminal", from: RunStatusFailed, to: RunStatusPending, allowed: false},
		{name: "same status is a no-op", from: RunStatusRunning, to: RunStatusRunning, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestRunStatus_Terminal(t *testing.T) {
	for _, status := range RunStatuses() {
		terminal := status == RunStatusSuccess || status == RunStatusFailed
		if status.Terminal() != terminal {
			t.Errorf("Terminal(%s) = %v, want %v", status, status.Terminal(), terminal)
		}
	}
}

func TestRunPatch_Apply(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	run := &Run{ID: 1, SessionID: 2, Status: RunStatusPending, StartedAt: &started}

	status := RunStatusRunning
	stdout := "hello"
	patch := RunPatch{Status: &status, Stdout: &stdout}
	patch.Apply(run)

	if run.Status != RunStatusRunning {
		t.Errorf("Expected status %q, got %q", RunStatusRunning, run.Status)
	}
	if run.Stdout == nil || *run.Stdout != "hello" {
		t.Errorf("Expected stdout \"hello\", got %v", run.Stdout)
	}
	// Untouched fields survive the patch
	if run.StartedAt == nil || !run.StartedAt.Equal(started) {
		t.Errorf("Expected StartedAt to be preserved, got %v", run.StartedAt)
	}
}

func TestRunPatch_Empty(t *testing.T) {
	var patch RunPatch
	if !patch.Empty() {
		t.Error("Expected zero patch to be empty")
	}

	stderr := ""
	patch.Stderr = &stderr
	if patch.Empty() {
		t.Error("Expected patch with a set field to be non-empty")
	}
}

func TestNewEvent_Validation(t *testing.T) {
	msg := "deploy finished"

	event, err := NewEvent(1, nil, EventTypeInfo, &msg, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if event.EventType != EventTypeInfo {
		t.Errorf("Expected type %q, got %q", EventTypeInfo, event.EventType)
	}
	if event.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}

	if _, err := NewEvent(1, nil, EventType("bogus"), &msg, nil); err == nil {
		t.Error("Expected error for unknown event type, got nil")
	}
}

func TestEnums_CoverAllValues(t *testing.T) {
	if len(RunStatuses()) != 4 {
		t.Errorf("Expected 4 run statuses, got %d", len(RunStatuses()))
	}
	if len(EventTypes()) != 5 {
		t.Errorf("Expected 5 event types, got %d", len(EventTypes()))
	}
	for _, status := range RunStatuses() {
		if !status.Valid() {
			t.Errorf("Expected %q to be valid", status)
		}
	}
	for _, eventType := range EventTypes() {
		if !eventType.Valid() {
			t.Errorf("Expected %q to be valid", eventType)
		}
	}
}
