package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// ObjectiveServiceOptions groups dependencies for ObjectiveService.
type ObjectiveServiceOptions struct {
	Repo   core.ObjectiveRepository
	Goals  core.GoalRepository
	Logger *slog.Logger
}

// ObjectiveService provides business logic for strategic objectives.
type ObjectiveService struct {
	repo   core.ObjectiveRepository
	goals  core.GoalRepository
	logger *slog.Logger
}

// NewObjectiveService constructs a new ObjectiveService.
func NewObjectiveService(opts ObjectiveServiceOptions) *ObjectiveService {
	if opts.Repo == nil {
		panic("ObjectiveRepository is required")
	}
	return &ObjectiveService{repo: opts.Repo, goals: opts.Goals, logger: opts.Logger}
}

// Create creates a single objective after confirming the parent goal exists.
func (s *ObjectiveService) Create(
	ctx context.Context,
	req *model.CreateObjectiveRequest,
) (*model.Objective, error) {
	if s.goals != nil && req != nil {
		if _, err := s.goals.GetByID(ctx, req.StrategicGoalID); err != nil {
			return nil, fmt.Errorf("resolve parent goal: %w", err)
		}
	}
	obj, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create objective: %w", err)
	}
	return obj, nil
}

// CreateBatch creates the whole draft sequence atomically. Either every
// objective is persisted or none are.
func (s *ObjectiveService) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateObjectiveRequest,
) ([]*model.Objective, error) {
	out, err := s.repo.CreateBatch(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("create objectives batch: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("objectives batch created", "count", len(out))
	}
	return out, nil
}

// GetByID retrieves an objective by ID.
func (s *ObjectiveService) GetByID(ctx context.Context, id string) (*model.Objective, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByGoal returns the objectives attached to one strategic goal.
func (s *ObjectiveService) ListByGoal(
	ctx context.Context,
	goalID string,
	limit, offset int,
) ([]*model.Objective, error) {
	return s.repo.ListByGoal(ctx, goalID, limit, offset)
}

// Update updates an objective.
func (s *ObjectiveService) Update(
	ctx context.Context,
	id string,
	req model.UpdateObjectiveRequest,
) (*model.Objective, error) {
	obj, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update objective: %w", err)
	}
	return obj, nil
}

// Delete deletes an objective by ID.
func (s *ObjectiveService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete objective: %w", err)
	}
	return ok, nil
}
