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

const testOpportunityID = "opp-123"

// newOpportunityService creates a mock repository and service for testing.
func newOpportunityService(t *testing.T) (*mocks.MockOpportunityRepository, *OpportunityService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockOpportunityRepository(ctrl)
	svc := NewOpportunityService(OpportunityServiceOptions{Repo: repo})
	return repo, svc
}

func TestOpportunityService_CreateBatch_Success(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	reqs := []*model.CreateOpportunityRequest{
		{OptStatement: "Partner with industry for OJT placements"},
		{OptStatement: "Digitize records management"},
	}
	expected := []*model.Opportunity{
		{ID: "opp-1", OptStatement: "Partner with industry for OJT placements"},
		{ID: "opp-2", OptStatement: "Digitize records management"},
	}

	repo.EXPECT().CreateBatch(ctx, reqs).Return(expected, nil).Times(1)

	opps, err := svc.CreateBatch(ctx, reqs)
	require.NoError(t, err)
	assert.Len(t, opps, 2)
}

func TestOpportunityService_CreateBatch_AtomicFailure(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	repoErr := errors.New("insert failed")
	repo.EXPECT().CreateBatch(ctx, gomock.Any()).Return(nil, repoErr).Times(1)

	opps, err := svc.CreateBatch(ctx, []*model.CreateOpportunityRequest{{OptStatement: "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, opps)
}

func TestOpportunityService_ListWithOptions_Filters(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	deptID := "dept-1"
	opts := model.OpportunityListOptions{
		Limit:        26,
		Offset:       0,
		DepartmentID: &deptID,
		ApprovedOnly: true,
	}
	expected := []*model.OpportunityWithDepartment{
		{
			Opportunity:    model.Opportunity{ID: testOpportunityID, OptStatement: "Digitize records", IsApproved: true},
			DepartmentName: stringPtr("College of Computer Studies"),
		},
	}

	repo.EXPECT().ListWithOptions(ctx, opts).Return(expected, nil).Times(1)

	opps, err := svc.ListWithOptions(ctx, opts)
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.True(t, opps[0].IsApproved)
}

func TestOpportunityService_Approve(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	expected := &model.Opportunity{ID: testOpportunityID, OptStatement: "x", IsApproved: true}

	repo.EXPECT().Approve(ctx, testOpportunityID).Return(expected, nil).Times(1)

	opp, err := svc.Approve(ctx, testOpportunityID)
	require.NoError(t, err)
	assert.True(t, opp.IsApproved)
}

func TestOpportunityService_Approve_Error(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	repoErr := errors.New("opportunity not found")
	repo.EXPECT().Approve(ctx, "missing").Return(nil, repoErr).Times(1)

	opp, err := svc.Approve(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, opp)
}

func TestOpportunityService_Delete(t *testing.T) {
	t.Parallel()
	repo, svc := newOpportunityService(t)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, testOpportunityID).Return(true, nil).Times(1)

	deleted, err := svc.Delete(ctx, testOpportunityID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
