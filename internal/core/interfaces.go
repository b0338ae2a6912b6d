package core

import (
	"context"

	"github.com/eucorp/planning/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// ClassificationRepository defines the interface for classification data operations.
type ClassificationRepository interface {
	Create(ctx context.Context, req *model.CreateClassificationRequest) (*model.Classification, error)
	GetByID(ctx context.Context, id string) (*model.Classification, error)
	List(ctx context.Context, limit, offset int) ([]*model.Classification, error)
	Update(ctx context.Context, id string, req model.UpdateClassificationRequest) (*model.Classification, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DepartmentRepository defines the interface for department data operations.
type DepartmentRepository interface {
	Create(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error)
	GetByID(ctx context.Context, id string) (*model.Department, error)
	GetByName(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context, limit, offset int) ([]*model.Department, error)
	Update(ctx context.Context, id string, req model.UpdateDepartmentRequest) (*model.Department, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// LeadRepository defines the interface for lead data operations.
type LeadRepository interface {
	Create(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error)
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, limit, offset int) ([]*model.Lead, error)
	Update(ctx context.Context, id string, req model.UpdateLeadRequest) (*model.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GoalRepository defines the interface for strategic goal data operations.
type GoalRepository interface {
	Create(ctx context.Context, req *model.CreateStrategicGoalRequest) (*model.StrategicGoal, error)
	CreateBatch(ctx context.Context, reqs []*model.CreateStrategicGoalRequest) ([]*model.StrategicGoal, error)
	GetByID(ctx context.Context, id string) (*model.StrategicGoal, error)
	List(ctx context.Context, limit, offset int) ([]*model.StrategicGoal, error)
	ListWithLeads(ctx context.Context, limit, offset int) ([]*model.StrategicGoalWithLead, error)
	Update(ctx context.Context, id string, req model.UpdateStrategicGoalRequest) (*model.StrategicGoal, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ObjectiveRepository defines the interface for objective data operations.
type ObjectiveRepository interface {
	Create(ctx context.Context, req *model.CreateObjectiveRequest) (*model.Objective, error)
	CreateBatch(ctx context.Context, reqs []*model.CreateObjectiveRequest) ([]*model.Objective, error)
	GetByID(ctx context.Context, id string) (*model.Objective, error)
	ListByGoal(ctx context.Context, goalID string, limit, offset int) ([]*model.Objective, error)
	Update(ctx context.Context, id string, req model.UpdateObjectiveRequest) (*model.Objective, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OpportunityRepository defines the interface for opportunity data operations.
type OpportunityRepository interface {
	Create(ctx context.Context, req *model.CreateOpportunityRequest) (*model.Opportunity, error)
	CreateBatch(ctx context.Context, reqs []*model.CreateOpportunityRequest) ([]*model.Opportunity, error)
	GetByID(ctx context.Context, id string) (*model.Opportunity, error)
	ListWithOptions(ctx context.Context, opts model.OpportunityListOptions) ([]*model.OpportunityWithDepartment, error)
	Approve(ctx context.Context, id string) (*model.Opportunity, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	Create(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*model.Profile, error)
	ListWithDepartments(ctx context.Context, limit, offset int) ([]*model.ProfileWithDepartment, error)
	Update(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.Profile, error)
	Verify(ctx context.Context, id string) (*model.Profile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RatingRepository defines the interface for risk rating data operations.
type RatingRepository interface {
	Create(ctx context.Context, req *model.CreateRiskRatingRequest) (*model.RiskRating, error)
	ListByCategory(ctx context.Context, category model.RatingCategory, limit, offset int) ([]*model.RiskRating, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MonitoringRepository defines the interface for plan monitoring data operations.
type MonitoringRepository interface {
	RecordEvaluation(ctx context.Context, req *model.RecordEvaluationRequest, achieved bool) (*model.PlanMonitoring, error)
	GetByObjective(ctx context.Context, objectiveID string) (*model.PlanMonitoring, error)
	ListRows(ctx context.Context, opts model.MonitoringListOptions) ([]*model.MonitoringRow, error)
}
