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

func newLeadService(t *testing.T) (*mocks.MockLeadRepository, *LeadService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockLeadRepository(ctrl)
	svc := NewLeadService(LeadServiceOptions{Repo: repo})
	return repo, svc
}

func TestLeadService_Create_Success(t *testing.T) {
	t.Parallel()
	repo, svc := newLeadService(t)

	ctx := context.Background()
	req := &model.CreateLeadRequest{Name: "Office of the VP for Academics"}
	expected := &model.Lead{ID: "lead-123", Name: "Office of the VP for Academics"}

	repo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	out, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestLeadService_Create_RepoError(t *testing.T) {
	t.Parallel()
	repo, svc := newLeadService(t)

	ctx := context.Background()
	req := &model.CreateLeadRequest{Name: "Office of the VP for Academics"}
	repoErr := errors.New("db down")

	repo.EXPECT().Create(ctx, req).Return(nil, repoErr).Times(1)

	out, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repoErr)
}

func TestLeadService_Update(t *testing.T) {
	t.Parallel()
	repo, svc := newLeadService(t)

	ctx := context.Background()
	req := model.UpdateLeadRequest{Name: stringPtr("Office of Student Affairs")}
	expected := &model.Lead{ID: "lead-123", Name: "Office of Student Affairs"}

	repo.EXPECT().Update(ctx, "lead-123", req).Return(expected, nil).Times(1)

	out, err := svc.Update(ctx, "lead-123", req)
	require.NoError(t, err)
	assert.Equal(t, "Office of Student Affairs", out.Name)
}

func TestLeadService_Delete(t *testing.T) {
	t.Parallel()
	repo, svc := newLeadService(t)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, "lead-123").Return(true, nil).Times(1)

	deleted, err := svc.Delete(ctx, "lead-123")
	require.NoError(t, err)
	assert.True(t, deleted)
}
