//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// StrategicGoal represents a numbered institutional strategic goal.
type StrategicGoal struct {
	ID          string    `json:"id"                 db:"id"`
	GoalNo      int       `json:"goal_no"            db:"goal_no"`
	Name        string    `json:"name"               db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	KPI         *string   `json:"kpi,omitempty"      db:"kpi"`
	LeadID      *string   `json:"lead_id,omitempty"  db:"lead_id"`
	CreatedAt   time.Time `json:"created_at"         db:"created_at"`
}

// StrategicGoalWithLead pairs a goal with its resolved lead name for display.
type StrategicGoalWithLead struct {
	StrategicGoal
	LeadName *string `json:"lead_name,omitempty" db:"lead_name"`
}

// CreateStrategicGoalRequest represents parameters to create a StrategicGoal.
type CreateStrategicGoalRequest struct {
	GoalNo      int     `json:"goal_no"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	KPI         *string `json:"kpi,omitempty"`
	LeadID      *string `json:"lead_id,omitempty"`
}

// UpdateStrategicGoalRequest represents parameters to update a StrategicGoal.
type UpdateStrategicGoalRequest struct {
	GoalNo      *int    `json:"goal_no,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	KPI         *string `json:"kpi,omitempty"`
	LeadID      *string `json:"lead_id,omitempty"`
}

// Validate validates CreateStrategicGoalRequest.
func (r *CreateStrategicGoalRequest) Validate() error {
	if r.GoalNo <= 0 {
		return errors.New("goal_no must be > 0")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateStrategicGoalRequest.
func (r *UpdateStrategicGoalRequest) HasUpdates() bool {
	return r.GoalNo != nil || r.Name != nil || r.Description != nil || r.KPI != nil || r.LeadID != nil
}

// Validate validates UpdateStrategicGoalRequest, ensuring at least one field is set and values are sane.
func (r *UpdateStrategicGoalRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.GoalNo != nil && *r.GoalNo <= 0 {
		return errors.New("goal_no must be > 0")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
