//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxClassificationNameLen = 255

// Classification represents a risk classification category.
type Classification struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateClassificationRequest represents parameters to create a Classification.
type CreateClassificationRequest struct {
	Name string `json:"name"`
}

// UpdateClassificationRequest represents parameters to update a Classification.
type UpdateClassificationRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate validates CreateClassificationRequest.
func (r *CreateClassificationRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxClassificationNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	return nil
}

// Validate validates UpdateClassificationRequest, ensuring at least one field is set.
func (r *UpdateClassificationRequest) Validate() error {
	if r.Name == nil {
		return errors.New("at least one field must be updated")
	}
	if strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(*r.Name)) > maxClassificationNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	return nil
}
