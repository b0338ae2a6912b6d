package service

import (
	"context"
	"fmt"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// LeadServiceOptions groups dependencies for LeadService.
type LeadServiceOptions struct {
	Repo core.LeadRepository
}

// LeadService provides CRUD for strategic goal leads.
type LeadService struct {
	repo core.LeadRepository
}

// NewLeadService constructs a new LeadService.
func NewLeadService(opts LeadServiceOptions) *LeadService {
	if opts.Repo == nil {
		panic("LeadRepository is required")
	}
	return &LeadService{repo: opts.Repo}
}

// Create creates a lead.
func (s *LeadService) Create(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error) {
	out, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return out, nil
}

// GetByID retrieves a lead by ID.
func (s *LeadService) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of leads.
func (s *LeadService) List(ctx context.Context, limit, offset int) ([]*model.Lead, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update renames a lead.
func (s *LeadService) Update(ctx context.Context, id string, req model.UpdateLeadRequest) (*model.Lead, error) {
	out, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return out, nil
}

// Delete deletes a lead by ID.
func (s *LeadService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	return ok, nil
}
