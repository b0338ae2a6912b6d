package service

import (
	"context"
	"fmt"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// ClassificationServiceOptions groups dependencies for ClassificationService.
type ClassificationServiceOptions struct {
	Repo core.ClassificationRepository
}

// ClassificationService provides CRUD for risk classifications.
type ClassificationService struct {
	repo core.ClassificationRepository
}

// NewClassificationService constructs a new ClassificationService.
func NewClassificationService(opts ClassificationServiceOptions) *ClassificationService {
	if opts.Repo == nil {
		panic("ClassificationRepository is required")
	}
	return &ClassificationService{repo: opts.Repo}
}

// Create creates a classification.
func (s *ClassificationService) Create(
	ctx context.Context,
	req *model.CreateClassificationRequest,
) (*model.Classification, error) {
	out, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create classification: %w", err)
	}
	return out, nil
}

// GetByID retrieves a classification by ID.
func (s *ClassificationService) GetByID(ctx context.Context, id string) (*model.Classification, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of classifications.
func (s *ClassificationService) List(ctx context.Context, limit, offset int) ([]*model.Classification, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update renames a classification.
func (s *ClassificationService) Update(
	ctx context.Context,
	id string,
	req model.UpdateClassificationRequest,
) (*model.Classification, error) {
	out, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update classification: %w", err)
	}
	return out, nil
}

// Delete deletes a classification by ID.
func (s *ClassificationService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete classification: %w", err)
	}
	return ok, nil
}
