//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxDepartmentNameLen = 255

// Department represents an institutional department.
type Department struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	FullName  string    `json:"full_name"  db:"full_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateDepartmentRequest represents parameters to create a Department.
type CreateDepartmentRequest struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// UpdateDepartmentRequest represents parameters to update a Department.
type UpdateDepartmentRequest struct {
	Name     *string `json:"name,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// Validate validates CreateDepartmentRequest.
func (r *CreateDepartmentRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxDepartmentNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("full_name is required and cannot be empty")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateDepartmentRequest.
func (r *UpdateDepartmentRequest) HasUpdates() bool {
	return r.Name != nil || r.FullName != nil
}

// Validate validates UpdateDepartmentRequest, ensuring at least one field is set.
func (r *UpdateDepartmentRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.FullName != nil && strings.TrimSpace(*r.FullName) == "" {
		return errors.New("full_name cannot be empty")
	}
	return nil
}
