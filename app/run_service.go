package app

import (
	"context"
	"log"

	"blackbox/internal/errors"
	"blackbox/models"
	"blackbox/ports"
)

// RunService enforces the run lifecycle. Transitions follow
// pending -> running -> {success, failed}, but the engine is permissive by
// default: status updates are last-write-wins, because existing automation
// reuses run ids for retries. Strict mode turns out-of-order transitions into
// validation errors instead.
type RunService struct {
	runs   ports.RunRepository
	strict bool
}

// NewRunService creates a run service
func NewRunService(runs ports.RunRepository, strict bool) *RunService {
	return &RunService{runs: runs, strict: strict}
}

// UpdateRun merge-patches a run: only supplied fields are mutated, and an
// empty patch leaves every field unchanged. Duration is stored as reported,
// never derived from the timestamps.
func (s *RunService) UpdateRun(ctx context.Context, id int64, patch models.RunPatch) (*models.Run, error) {
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, errors.ValidationError("unknown run status: " + string(*patch.Status))
		}

		current, err := s.runs.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransition(*patch.Status) {
			if s.strict {
				return nil, errors.ValidationError(
					"invalid run status transition: " + string(current.Status) + " -> " + string(*patch.Status))
			}
			log.Printf("[runs] run %d: out-of-order status transition %s -> %s (allowed)",
				id, current.Status, *patch.Status)
		}
	}

	return s.runs.Update(ctx, id, patch)
}
