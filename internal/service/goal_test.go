package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testGoalID = "goal-123"

// newGoalService creates mock repositories and a service for testing.
func newGoalService(t *testing.T) (*mocks.MockGoalRepository, *mocks.MockObjectiveRepository, *GoalService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	goalRepo := mocks.NewMockGoalRepository(ctrl)
	objectiveRepo := mocks.NewMockObjectiveRepository(ctrl)

	svc := NewGoalService(GoalServiceOptions{
		Repo:       goalRepo,
		Objectives: objectiveRepo,
	})

	return goalRepo, objectiveRepo, svc
}

func TestGoalService_Create_Success(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	req := &model.CreateStrategicGoalRequest{
		GoalNo: 1,
		Name:   "Academic Excellence",
		KPI:    stringPtr("Accreditation results"),
	}
	expected := &model.StrategicGoal{
		ID:        testGoalID,
		GoalNo:    1,
		Name:      "Academic Excellence",
		KPI:       stringPtr("Accreditation results"),
		CreatedAt: time.Now(),
	}

	goalRepo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	goal, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, goal)
}

func TestGoalService_Create_RepoError(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	repoErr := errors.New("duplicate goal number")
	goalRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, repoErr).Times(1)

	goal, err := svc.Create(ctx, &model.CreateStrategicGoalRequest{GoalNo: 1, Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, goal)
}

func TestGoalService_CreateBatch_Success(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	reqs := []*model.CreateStrategicGoalRequest{
		{GoalNo: 1, Name: "Academic Excellence"},
		{GoalNo: 2, Name: "Operational Efficiency"},
	}
	expected := []*model.StrategicGoal{
		{ID: "goal-1", GoalNo: 1, Name: "Academic Excellence"},
		{ID: "goal-2", GoalNo: 2, Name: "Operational Efficiency"},
	}

	goalRepo.EXPECT().CreateBatch(ctx, reqs).Return(expected, nil).Times(1)

	goals, err := svc.CreateBatch(ctx, reqs)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}

func TestGoalService_CreateBatch_AtomicFailure(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	reqs := []*model.CreateStrategicGoalRequest{
		{GoalNo: 1, Name: "ok"},
		{GoalNo: 1, Name: "duplicate"},
	}
	repoErr := errors.New("goal number already exists")

	goalRepo.EXPECT().CreateBatch(ctx, reqs).Return(nil, repoErr).Times(1)

	goals, err := svc.CreateBatch(ctx, reqs)
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, goals)
}

func TestGoalService_ListWithLeads(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	expected := []*model.StrategicGoalWithLead{
		{
			StrategicGoal: model.StrategicGoal{ID: testGoalID, GoalNo: 1, Name: "Academic Excellence"},
			LeadName:      stringPtr("VP for Academic Affairs"),
		},
	}

	goalRepo.EXPECT().ListWithLeads(ctx, 25, 0).Return(expected, nil).Times(1)

	goals, err := svc.ListWithLeads(ctx, 25, 0)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "VP for Academic Affairs", *goals[0].LeadName)
}

func TestGoalService_Objectives(t *testing.T) {
	t.Parallel()
	_, objectiveRepo, svc := newGoalService(t)

	ctx := context.Background()
	expected := []*model.Objective{
		{ID: "obj-1", StrategicGoalID: testGoalID, Name: "Increase pass rate"},
	}

	objectiveRepo.EXPECT().ListByGoal(ctx, testGoalID, 100, 0).Return(expected, nil).Times(1)

	objectives, err := svc.Objectives(ctx, testGoalID, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, objectives)
}

func TestGoalService_Objectives_NoRepoConfigured(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewGoalService(GoalServiceOptions{Repo: mocks.NewMockGoalRepository(ctrl)})

	_, err := svc.Objectives(context.Background(), testGoalID, 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "objectives repository not configured")
}

func TestGoalService_Delete(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	goalRepo.EXPECT().Delete(ctx, testGoalID).Return(true, nil).Times(1)

	deleted, err := svc.Delete(ctx, testGoalID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGoalService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	goalRepo, _, svc := newGoalService(t)

	ctx := context.Background()
	goalRepo.EXPECT().Delete(ctx, "missing").Return(false, nil).Times(1)

	deleted, err := svc.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}
