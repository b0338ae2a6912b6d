//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Opportunity represents an improvement opportunity proposed by a department.
type Opportunity struct {
	ID             string    `json:"id"                       db:"id"`
	OptStatement   string    `json:"opt_statement"            db:"opt_statement"`
	PlannedActions *string   `json:"planned_actions,omitempty" db:"planned_actions"`
	KPI            *string   `json:"kpi,omitempty"            db:"kpi"`
	KeyPersons     *string   `json:"key_persons,omitempty"    db:"key_persons"`
	TargetOutput   *string   `json:"target_output,omitempty"  db:"target_output"`
	Budget         *float64  `json:"budget,omitempty"         db:"budget"`
	ProfileID      *string   `json:"profile_id,omitempty"     db:"profile_id"`
	DepartmentID   *string   `json:"department_id,omitempty"  db:"department_id"`
	IsApproved     bool      `json:"is_approved"              db:"is_approved"`
	CreatedAt      time.Time `json:"created_at"               db:"created_at"`
}

// OpportunityWithDepartment pairs an opportunity with its department name for display.
type OpportunityWithDepartment struct {
	Opportunity
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
}

// OpportunityListOptions controls paging and filtering for listing opportunities.
type OpportunityListOptions struct {
	Limit        int
	Offset       int
	ID           *string // exact match; narrows the list to one opportunity
	DepartmentID *string // exact match
	ApprovedOnly bool
	// OldestFirst orders by created_at ascending; default is newest first.
	OldestFirst bool
}

// CreateOpportunityRequest represents parameters to create an Opportunity.
type CreateOpportunityRequest struct {
	OptStatement   string   `json:"opt_statement"`
	PlannedActions *string  `json:"planned_actions,omitempty"`
	KPI            *string  `json:"kpi,omitempty"`
	KeyPersons     *string  `json:"key_persons,omitempty"`
	TargetOutput   *string  `json:"target_output,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	ProfileID      *string  `json:"profile_id,omitempty"`
	DepartmentID   *string  `json:"department_id,omitempty"`
}

// Validate validates CreateOpportunityRequest.
func (r *CreateOpportunityRequest) Validate() error {
	if strings.TrimSpace(r.OptStatement) == "" {
		return errors.New("opt_statement is required and cannot be empty")
	}
	if r.Budget != nil && *r.Budget < 0 {
		return errors.New("budget cannot be negative")
	}
	return nil
}
