//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Objective represents a strategic objective attached to a goal.
type Objective struct {
	ID                   string    `json:"id"                              db:"id"`
	StrategicGoalID      string    `json:"strategic_goal_id"               db:"strategic_goal_id"`
	Name                 string    `json:"name"                            db:"name"`
	StrategicInitiatives *string   `json:"strategic_initiatives,omitempty" db:"strategic_initiatives"`
	KPI                  *string   `json:"kpi,omitempty"                   db:"kpi"`
	PersonsInvolved      *string   `json:"persons_involved,omitempty"      db:"persons_involved"`
	Target               *string   `json:"target,omitempty"                db:"target"`
	EvalMeasures         *string   `json:"eval_measures,omitempty"         db:"eval_measures"`
	ProfileID            *string   `json:"profile_id,omitempty"            db:"profile_id"`
	CreatedAt            time.Time `json:"created_at"                      db:"created_at"`
}

// CreateObjectiveRequest represents parameters to create an Objective.
type CreateObjectiveRequest struct {
	StrategicGoalID      string  `json:"strategic_goal_id"`
	Name                 string  `json:"name"`
	StrategicInitiatives *string `json:"strategic_initiatives,omitempty"`
	KPI                  *string `json:"kpi,omitempty"`
	PersonsInvolved      *string `json:"persons_involved,omitempty"`
	Target               *string `json:"target,omitempty"`
	EvalMeasures         *string `json:"eval_measures,omitempty"`
	ProfileID            *string `json:"profile_id,omitempty"`
}

// UpdateObjectiveRequest represents parameters to update an Objective.
type UpdateObjectiveRequest struct {
	Name                 *string `json:"name,omitempty"`
	StrategicInitiatives *string `json:"strategic_initiatives,omitempty"`
	KPI                  *string `json:"kpi,omitempty"`
	PersonsInvolved      *string `json:"persons_involved,omitempty"`
	Target               *string `json:"target,omitempty"`
	EvalMeasures         *string `json:"eval_measures,omitempty"`
}

// Validate validates CreateObjectiveRequest.
func (r *CreateObjectiveRequest) Validate() error {
	if strings.TrimSpace(r.StrategicGoalID) == "" {
		return errors.New("strategic_goal_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateObjectiveRequest.
func (r *UpdateObjectiveRequest) HasUpdates() bool {
	return r.Name != nil || r.StrategicInitiatives != nil || r.KPI != nil ||
		r.PersonsInvolved != nil ||
		r.Target != nil ||
		r.EvalMeasures != nil
}

// Validate validates UpdateObjectiveRequest, ensuring at least one field is set.
func (r *UpdateObjectiveRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
