package service

import (
	"context"
	"fmt"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// MonitoringServiceOptions groups dependencies for MonitoringService.
type MonitoringServiceOptions struct {
	Repo core.MonitoringRepository
}

// MonitoringService provides read access to plan monitoring rows.
type MonitoringService struct {
	repo core.MonitoringRepository
}

// NewMonitoringService constructs a new MonitoringService.
func NewMonitoringService(opts MonitoringServiceOptions) *MonitoringService {
	if opts.Repo == nil {
		panic("MonitoringRepository is required")
	}
	return &MonitoringService{repo: opts.Repo}
}

// ListRows returns monitoring rows with objective and goal context.
func (s *MonitoringService) ListRows(
	ctx context.Context,
	opts model.MonitoringListOptions,
) ([]*model.MonitoringRow, error) {
	rows, err := s.repo.ListRows(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list monitoring rows: %w", err)
	}
	return rows, nil
}

// GetByObjective returns the monitoring row for one objective.
func (s *MonitoringService) GetByObjective(
	ctx context.Context,
	objectiveID string,
) (*model.PlanMonitoring, error) {
	return s.repo.GetByObjective(ctx, objectiveID)
}
