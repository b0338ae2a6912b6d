//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Profile represents an application user profile.
type Profile struct {
	ID           string    `json:"id"                      db:"id"`
	FirstName    string    `json:"first_name"              db:"first_name"`
	LastName     string    `json:"last_name"               db:"last_name"`
	Email        string    `json:"email"                   db:"email"`
	Role         string    `json:"role"                    db:"role"`
	DepartmentID *string   `json:"department_id,omitempty" db:"department_id"`
	ProfilePic   *string   `json:"profile_pic,omitempty"   db:"profile_pic"`
	IsVerified   bool      `json:"is_verified"             db:"is_verified"`
	CreatedAt    time.Time `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"              db:"updated_at"`
}

// FullName returns the display name for the profile.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ProfileWithDepartment pairs a profile with its department name for display.
type ProfileWithDepartment struct {
	Profile
	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
}

// CreateProfileRequest represents parameters to create a Profile.
type CreateProfileRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
	ProfilePic   *string `json:"profile_pic,omitempty"`
}

// UpdateProfileRequest represents parameters to update a Profile.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	ProfilePic   *string `json:"profile_pic,omitempty"`
	IsVerified   *bool   `json:"is_verified,omitempty"`
}

// Validate validates CreateProfileRequest.
func (r *CreateProfileRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email must be a valid address")
	}
	switch strings.TrimSpace(r.Role) {
	case "admin", "user", "":
	default:
		return errors.New("role must be admin or user")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateProfileRequest.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.FirstName != nil || r.LastName != nil || r.Role != nil ||
		r.DepartmentID != nil ||
		r.ProfilePic != nil ||
		r.IsVerified != nil
}

// Validate validates UpdateProfileRequest, ensuring at least one field is set.
func (r *UpdateProfileRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Role != nil {
		switch strings.TrimSpace(*r.Role) {
		case "admin", "user":
		default:
			return errors.New("role must be admin or user")
		}
	}
	return nil
}
