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

func newDepartmentService(t *testing.T) (*mocks.MockDepartmentRepository, *DepartmentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockDepartmentRepository(ctrl)
	svc := NewDepartmentService(DepartmentServiceOptions{Repo: repo})
	return repo, svc
}

func TestDepartmentService_Create_Success(t *testing.T) {
	t.Parallel()
	repo, svc := newDepartmentService(t)

	ctx := context.Background()
	req := &model.CreateDepartmentRequest{Name: "CCS", FullName: "College of Computer Studies"}
	expected := &model.Department{ID: "dept-123", Name: "CCS", FullName: "College of Computer Studies"}

	repo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	out, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestDepartmentService_Create_RepoError(t *testing.T) {
	t.Parallel()
	repo, svc := newDepartmentService(t)

	ctx := context.Background()
	req := &model.CreateDepartmentRequest{Name: "CCS", FullName: "College of Computer Studies"}
	repoErr := errors.New("duplicate key")

	repo.EXPECT().Create(ctx, req).Return(nil, repoErr).Times(1)

	out, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repoErr)
}

func TestDepartmentService_Update(t *testing.T) {
	t.Parallel()
	repo, svc := newDepartmentService(t)

	ctx := context.Background()
	req := model.UpdateDepartmentRequest{FullName: stringPtr("College of Computing Sciences")}
	expected := &model.Department{ID: "dept-123", Name: "CCS", FullName: "College of Computing Sciences"}

	repo.EXPECT().Update(ctx, "dept-123", req).Return(expected, nil).Times(1)

	out, err := svc.Update(ctx, "dept-123", req)
	require.NoError(t, err)
	assert.Equal(t, "College of Computing Sciences", out.FullName)
}

func TestDepartmentService_List(t *testing.T) {
	t.Parallel()
	repo, svc := newDepartmentService(t)

	ctx := context.Background()
	expected := []*model.Department{
		{ID: "d1", Name: "CCS", FullName: "College of Computer Studies"},
		{ID: "d2", Name: "CON", FullName: "College of Nursing"},
	}

	repo.EXPECT().List(ctx, 25, 0).Return(expected, nil).Times(1)

	out, err := svc.List(ctx, 25, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDepartmentService_Delete(t *testing.T) {
	t.Parallel()
	repo, svc := newDepartmentService(t)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, "dept-123").Return(true, nil).Times(1)

	deleted, err := svc.Delete(ctx, "dept-123")
	require.NoError(t, err)
	assert.True(t, deleted)
}
