package app

import (
	"context"
	"encoding/json"
	"log"

	"blackbox/models"
	"blackbox/ports"

	"github.com/google/uuid"
)

// IngestService implements the automated entry points used by git hooks.
// Every step is independently best-effort: a failed actor resolution leaves
// the actor unresolved and the pipeline continues; a failed project resolution
// means there is nothing to attach the event to, so the pipeline stops; a
// failed event submission is absorbed. Nothing here ever propagates an error —
// a hook must never fail the git operation that triggered it. Absorbed
// failures are logged under a per-invocation ingest id and recorded in the
// returned outcome so they stay observable in tests.
type IngestService struct {
	resolver *ResolverService
	events   ports.EventRepository
}

// CommitInput describes a commit reported by a post-commit hook
type CommitInput struct {
	Project    string
	Message    string
	CommitHash string
	GitUser    string
}

// EventInput describes an arbitrary event reported by automation
type EventInput struct {
	Project string
	Type    models.EventType
	Message string
	GitUser string
}

// IngestOutcome aggregates the per-step results of one ingestion
type IngestOutcome struct {
	IngestID string

	Actor   *models.User
	Project *models.Project
	Event   *models.Event

	ActorErr   error
	ProjectErr error
	EventErr   error
}

// Logged reports whether the event made it into the ledger
func (o *IngestOutcome) Logged() bool {
	return o.Event != nil
}

// NewIngestService creates an ingest service
func NewIngestService(resolver *ResolverService, events ports.EventRepository) *IngestService {
	return &IngestService{resolver: resolver, events: events}
}

// RecordCommit logs a commit as an info event against the named project,
// resolving actor and project by name
func (s *IngestService) RecordCommit(ctx context.Context, in CommitInput) *IngestOutcome {
	meta := map[string]string{}
	if in.CommitHash != "" {
		meta["commit_hash"] = in.CommitHash
	}
	return s.ingest(ctx, in.Project, in.GitUser, models.EventTypeInfo, "Commit: "+in.Message, meta)
}

// RecordEvent logs an arbitrary typed event against the named project
func (s *IngestService) RecordEvent(ctx context.Context, in EventInput) *IngestOutcome {
	return s.ingest(ctx, in.Project, in.GitUser, in.Type, in.Message, map[string]string{})
}

func (s *IngestService) ingest(ctx context.Context, project, gitUser string, eventType models.EventType, message string, meta map[string]string) *IngestOutcome {
	outcome := &IngestOutcome{IngestID: uuid.NewString()}

	if gitUser == "" {
		gitUser = "unknown"
	}
	meta["git_user"] = gitUser
	meta["ingest_id"] = outcome.IngestID

	// Step 1: resolve the actor. Failure leaves the actor unresolved.
	actor, err := s.resolver.ResolveActor(ctx, gitUser)
	if err != nil {
		outcome.ActorErr = err
		log.Printf("[ingest %s] actor %q unresolved: %v", outcome.IngestID, gitUser, err)
	}
	outcome.Actor = actor

	// Step 2: resolve the project. No project id means no event can be
	// attached, so this is the only step that stops the pipeline.
	proj, err := s.resolver.ResolveProject(ctx, project, actor)
	if err != nil {
		outcome.ProjectErr = err
		log.Printf("[ingest %s] project %q unresolved, dropping event: %v", outcome.IngestID, project, err)
		return outcome
	}
	outcome.Project = proj

	// Step 3: build and submit the event, absorbing failures
	metadata, err := encodeMetadata(meta)
	if err != nil {
		outcome.EventErr = err
		log.Printf("[ingest %s] metadata encoding failed: %v", outcome.IngestID, err)
		return outcome
	}

	event, err := models.NewEvent(proj.ID, nil, eventType, &message, metadata)
	if err == nil {
		err = s.events.Create(ctx, event)
	}
	if err != nil {
		outcome.EventErr = err
		log.Printf("[ingest %s] event dropped: %v", outcome.IngestID, err)
		return outcome
	}
	outcome.Event = event

	return outcome
}

func encodeMetadata(meta map[string]string) (*string, error) {
	if len(meta) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	encoded := string(raw)
	return &encoded, nil
}
