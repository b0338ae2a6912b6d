package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// OpportunityServiceOptions groups dependencies for OpportunityService.
type OpportunityServiceOptions struct {
	Repo   core.OpportunityRepository
	Logger *slog.Logger
}

// OpportunityService provides business logic for improvement opportunities.
type OpportunityService struct {
	repo   core.OpportunityRepository
	logger *slog.Logger
}

// NewOpportunityService constructs a new OpportunityService.
func NewOpportunityService(opts OpportunityServiceOptions) *OpportunityService {
	if opts.Repo == nil {
		panic("OpportunityRepository is required")
	}
	return &OpportunityService{repo: opts.Repo, logger: opts.Logger}
}

// Create creates a single opportunity.
func (s *OpportunityService) Create(
	ctx context.Context,
	req *model.CreateOpportunityRequest,
) (*model.Opportunity, error) {
	opp, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create opportunity: %w", err)
	}
	return opp, nil
}

// CreateBatch creates the whole draft sequence atomically. Either every
// opportunity is persisted or none are.
func (s *OpportunityService) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateOpportunityRequest,
) ([]*model.Opportunity, error) {
	out, err := s.repo.CreateBatch(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("create opportunities batch: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("opportunities batch created", "count", len(out))
	}
	return out, nil
}

// GetByID retrieves an opportunity by ID.
func (s *OpportunityService) GetByID(ctx context.Context, id string) (*model.Opportunity, error) {
	return s.repo.GetByID(ctx, id)
}

// ListWithOptions returns opportunities with department names, honoring filters.
func (s *OpportunityService) ListWithOptions(
	ctx context.Context,
	opts model.OpportunityListOptions,
) ([]*model.OpportunityWithDepartment, error) {
	return s.repo.ListWithOptions(ctx, opts)
}

// Approve marks an opportunity as approved. Approving twice is harmless.
func (s *OpportunityService) Approve(ctx context.Context, id string) (*model.Opportunity, error) {
	opp, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve opportunity: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("opportunity approved", "id", opp.ID)
	}
	return opp, nil
}

// Delete deletes an opportunity by ID.
func (s *OpportunityService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete opportunity: %w", err)
	}
	return ok, nil
}
