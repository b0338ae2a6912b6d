package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// GoalServiceOptions groups dependencies for GoalService.
type GoalServiceOptions struct {
	Repo       core.GoalRepository
	Objectives core.ObjectiveRepository
	Logger     *slog.Logger
}

// GoalService provides business logic for strategic goals and their objectives.
type GoalService struct {
	repo       core.GoalRepository
	objectives core.ObjectiveRepository
	logger     *slog.Logger
}

// NewGoalService constructs a new GoalService.
func NewGoalService(opts GoalServiceOptions) *GoalService {
	if opts.Repo == nil {
		panic("GoalRepository is required")
	}
	return &GoalService{repo: opts.Repo, objectives: opts.Objectives, logger: opts.Logger}
}

// Create creates a strategic goal.
func (s *GoalService) Create(
	ctx context.Context,
	req *model.CreateStrategicGoalRequest,
) (*model.StrategicGoal, error) {
	goal, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create strategic goal: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("strategic goal created", "id", goal.ID, "goal_no", goal.GoalNo)
	}
	return goal, nil
}

// CreateBatch creates the whole draft sequence atomically. Either every
// goal is persisted or none are.
func (s *GoalService) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateStrategicGoalRequest,
) ([]*model.StrategicGoal, error) {
	out, err := s.repo.CreateBatch(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("create goals batch: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("strategic goals batch created", "count", len(out))
	}
	return out, nil
}

// GetByID retrieves a strategic goal by ID.
func (s *GoalService) GetByID(ctx context.Context, id string) (*model.StrategicGoal, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of strategic goals.
func (s *GoalService) List(ctx context.Context, limit, offset int) ([]*model.StrategicGoal, error) {
	return s.repo.List(ctx, limit, offset)
}

// ListWithLeads returns goals with lead names resolved for display.
func (s *GoalService) ListWithLeads(
	ctx context.Context,
	limit, offset int,
) ([]*model.StrategicGoalWithLead, error) {
	return s.repo.ListWithLeads(ctx, limit, offset)
}

// Update updates a strategic goal.
func (s *GoalService) Update(
	ctx context.Context,
	id string,
	req model.UpdateStrategicGoalRequest,
) (*model.StrategicGoal, error) {
	goal, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update strategic goal: %w", err)
	}
	return goal, nil
}

// Delete deletes a strategic goal by ID.
func (s *GoalService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete strategic goal: %w", err)
	}
	return ok, nil
}

// Objectives returns the objectives attached to a goal. Requires the
// objectives repository to be configured.
func (s *GoalService) Objectives(
	ctx context.Context,
	goalID string,
	limit, offset int,
) ([]*model.Objective, error) {
	if s.objectives == nil {
		return nil, fmt.Errorf("objectives repository not configured")
	}
	return s.objectives.ListByGoal(ctx, goalID, limit, offset)
}
