package service

import (
	"context"
	"fmt"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// DepartmentServiceOptions groups dependencies for DepartmentService.
type DepartmentServiceOptions struct {
	Repo core.DepartmentRepository
}

// DepartmentService provides CRUD for departments.
type DepartmentService struct {
	repo core.DepartmentRepository
}

// NewDepartmentService constructs a new DepartmentService.
func NewDepartmentService(opts DepartmentServiceOptions) *DepartmentService {
	if opts.Repo == nil {
		panic("DepartmentRepository is required")
	}
	return &DepartmentService{repo: opts.Repo}
}

// Create creates a department.
func (s *DepartmentService) Create(
	ctx context.Context,
	req *model.CreateDepartmentRequest,
) (*model.Department, error) {
	out, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return out, nil
}

// GetByID retrieves a department by ID.
func (s *DepartmentService) GetByID(ctx context.Context, id string) (*model.Department, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName retrieves a department by its short name.
func (s *DepartmentService) GetByName(ctx context.Context, name string) (*model.Department, error) {
	return s.repo.GetByName(ctx, name)
}

// List returns a page of departments.
func (s *DepartmentService) List(ctx context.Context, limit, offset int) ([]*model.Department, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates a department.
func (s *DepartmentService) Update(
	ctx context.Context,
	id string,
	req model.UpdateDepartmentRequest,
) (*model.Department, error) {
	out, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return out, nil
}

// Delete deletes a department by ID.
func (s *DepartmentService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete department: %w", err)
	}
	return ok, nil
}
