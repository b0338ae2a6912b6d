package service

import (
	"context"
	"fmt"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// RatingServiceOptions groups dependencies for RatingService.
type RatingServiceOptions struct {
	Repo core.RatingRepository
}

// RatingService provides business logic for risk rating scales.
type RatingService struct {
	repo core.RatingRepository
}

// NewRatingService constructs a new RatingService.
func NewRatingService(opts RatingServiceOptions) *RatingService {
	if opts.Repo == nil {
		panic("RatingRepository is required")
	}
	return &RatingService{repo: opts.Repo}
}

// Create creates a risk rating.
func (s *RatingService) Create(
	ctx context.Context,
	req *model.CreateRiskRatingRequest,
) (*model.RiskRating, error) {
	out, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create risk rating: %w", err)
	}
	return out, nil
}

// ListByCategory returns the ratings for one scale.
func (s *RatingService) ListByCategory(
	ctx context.Context,
	category model.RatingCategory,
	limit, offset int,
) ([]*model.RiskRating, error) {
	return s.repo.ListByCategory(ctx, category, limit, offset)
}

// Delete deletes a risk rating by ID.
func (s *RatingService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete risk rating: %w", err)
	}
	return ok, nil
}
