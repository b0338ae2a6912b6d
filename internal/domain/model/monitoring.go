//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// AchievedFilter narrows monitoring rows by completion outcome.
type AchievedFilter string

const (
	AchievedFilterAll         AchievedFilter = "all"
	AchievedFilterAchieved    AchievedFilter = "achieved"
	AchievedFilterNotAchieved AchievedFilter = "not_achieved"
)

// Valid reports whether the achieved filter is supported.
func (f AchievedFilter) Valid() bool {
	switch f {
	case AchievedFilterAll, AchievedFilterAchieved, AchievedFilterNotAchieved:
		return true
	default:
		return false
	}
}

// ParseAchievedFilter normalizes a filter string, defaulting to all.
func ParseAchievedFilter(value string) AchievedFilter {
	f := AchievedFilter(strings.ToLower(strings.TrimSpace(value)))
	if f.Valid() {
		return f
	}
	return AchievedFilterAll
}

// PlanMonitoring tracks the evaluation state of one objective.
type PlanMonitoring struct {
	ID            string          `json:"id"                       db:"id"`
	ObjectiveID   string          `json:"objective_id"             db:"objective_id"`
	Evaluation    json.RawMessage `json:"evaluation,omitempty"     db:"evaluation"`
	IsAchieved    *bool           `json:"is_achieved,omitempty"    db:"is_achieved"`
	TimeCompleted *time.Time      `json:"time_completed,omitempty" db:"time_completed"`
	CreatedAt     time.Time       `json:"created_at"               db:"created_at"`
}

// MonitoringRow joins monitoring state with objective and goal context for display.
type MonitoringRow struct {
	PlanMonitoring
	ObjectiveName  string  `json:"objective_name"            db:"objective_name"`
	GoalName       string  `json:"goal_name"                 db:"goal_name"`
	GoalNo         int     `json:"goal_no"                   db:"goal_no"`
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
}

// MonitoringListOptions controls filtering for monitoring queries.
type MonitoringListOptions struct {
	Limit        int
	Offset       int
	Achieved     AchievedFilter
	DepartmentID *string // restrict to one department's objectives
	MidYear      bool    // restrict to the mid-year window (Jan–Jun of the current year)
}

// RecordEvaluationRequest represents parameters to record an objective evaluation.
type RecordEvaluationRequest struct {
	ObjectiveID string          `json:"objective_id"`
	Evaluation  json.RawMessage `json:"evaluation"`
}

// Validate validates RecordEvaluationRequest.
func (r *RecordEvaluationRequest) Validate() error {
	if strings.TrimSpace(r.ObjectiveID) == "" {
		return errors.New("objective_id is required")
	}
	if len(r.Evaluation) == 0 {
		return errors.New("evaluation payload is required")
	}
	if !json.Valid(r.Evaluation) {
		return errors.New("evaluation must be valid JSON")
	}
	return nil
}
