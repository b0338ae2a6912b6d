//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxLeadNameLen = 255

// Lead represents an office or person responsible for a strategic goal.
type Lead struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateLeadRequest represents parameters to create a Lead.
type CreateLeadRequest struct {
	Name string `json:"name"`
}

// UpdateLeadRequest represents parameters to update a Lead.
type UpdateLeadRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate validates CreateLeadRequest.
func (r *CreateLeadRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxLeadNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	return nil
}

// Validate validates UpdateLeadRequest, ensuring at least one field is set.
func (r *UpdateLeadRequest) Validate() error {
	if r.Name == nil {
		return errors.New("at least one field must be updated")
	}
	if strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
