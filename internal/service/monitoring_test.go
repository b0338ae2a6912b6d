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

func newMonitoringService(t *testing.T) (*mocks.MockMonitoringRepository, *MonitoringService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockMonitoringRepository(ctrl)
	svc := NewMonitoringService(MonitoringServiceOptions{Repo: repo})
	return repo, svc
}

func TestMonitoringService_ListRows(t *testing.T) {
	t.Parallel()
	repo, svc := newMonitoringService(t)

	ctx := context.Background()
	deptID := "dept-123"
	opts := model.MonitoringListOptions{
		Limit:        26,
		Achieved:     model.AchievedFilterAchieved,
		DepartmentID: &deptID,
		MidYear:      true,
	}
	expected := []*model.MonitoringRow{
		{
			PlanMonitoring: model.PlanMonitoring{ID: "pm-1", ObjectiveID: "obj-1", IsAchieved: boolPtr(true)},
			ObjectiveName:  "Launch faculty research portal",
			GoalName:       "Digital Transformation",
			GoalNo:         1,
		},
	}

	repo.EXPECT().ListRows(ctx, opts).Return(expected, nil).Times(1)

	rows, err := svc.ListRows(ctx, opts)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Digital Transformation", rows[0].GoalName)
}

func TestMonitoringService_ListRows_RepoError(t *testing.T) {
	t.Parallel()
	repo, svc := newMonitoringService(t)

	ctx := context.Background()
	repoErr := errors.New("db down")

	repo.EXPECT().ListRows(ctx, gomock.Any()).Return(nil, repoErr).Times(1)

	rows, err := svc.ListRows(ctx, model.MonitoringListOptions{Limit: 26})
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, repoErr)
}

func TestMonitoringService_GetByObjective(t *testing.T) {
	t.Parallel()
	repo, svc := newMonitoringService(t)

	ctx := context.Background()
	expected := &model.PlanMonitoring{ID: "pm-1", ObjectiveID: "obj-1"}

	repo.EXPECT().GetByObjective(ctx, "obj-1").Return(expected, nil).Times(1)

	pm, err := svc.GetByObjective(ctx, "obj-1")
	require.NoError(t, err)
	assert.Equal(t, expected, pm)
}
