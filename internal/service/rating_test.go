package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRatingService(t *testing.T) (*mocks.MockRatingRepository, *RatingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRatingRepository(ctrl)
	svc := NewRatingService(RatingServiceOptions{Repo: repo})
	return repo, svc
}

func TestRatingService_Create_Success(t *testing.T) {
	t.Parallel()
	repo, svc := newRatingService(t)

	ctx := context.Background()
	req := &model.CreateRiskRatingRequest{
		Category: model.RatingCategoryLikelihood,
		Name:     "Almost Certain",
		Symbol:   "5",
	}
	expected := &model.RiskRating{
		ID:       "rating-123",
		Category: model.RatingCategoryLikelihood,
		Name:     "Almost Certain",
		Symbol:   "5",
	}

	repo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	out, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestRatingService_Create_RepoError(t *testing.T) {
	t.Parallel()
	repo, svc := newRatingService(t)

	ctx := context.Background()
	req := &model.CreateRiskRatingRequest{
		Category: model.RatingCategorySeverity,
		Name:     "Catastrophic",
		Symbol:   "C",
	}
	repoErr := errors.New("db down")

	repo.EXPECT().Create(ctx, req).Return(nil, repoErr).Times(1)

	out, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repoErr)
}

func TestRatingService_ListByCategory(t *testing.T) {
	t.Parallel()
	repo, svc := newRatingService(t)

	ctx := context.Background()
	expected := []*model.RiskRating{
		{ID: "r1", Category: model.RatingCategoryRiskControl, Name: "Excellent", Symbol: "E"},
		{ID: "r2", Category: model.RatingCategoryRiskControl, Name: "Good", Symbol: "G"},
	}

	repo.EXPECT().
		ListByCategory(ctx, model.RatingCategoryRiskControl, 50, 0).
		Return(expected, nil).
		Times(1)

	out, err := svc.ListByCategory(ctx, model.RatingCategoryRiskControl, 50, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Excellent", out[0].Name)
}

func TestRatingService_Delete(t *testing.T) {
	t.Parallel()
	repo, svc := newRatingService(t)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, "rating-123").Return(true, nil).Times(1)

	deleted, err := svc.Delete(ctx, "rating-123")
	require.NoError(t, err)
	assert.True(t, deleted)
}
