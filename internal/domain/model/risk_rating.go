//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// RatingCategory identifies one of the risk rating scales.
type RatingCategory string

const (
	RatingCategoryLikelihood     RatingCategory = "likelihood"
	RatingCategorySeverity       RatingCategory = "severity"
	RatingCategoryRiskControl    RatingCategory = "risk_control"
	RatingCategoryRiskMonitoring RatingCategory = "risk_monitoring"
)

// ErrUnknownRatingCategory is returned when a category string does not match a supported scale.
var ErrUnknownRatingCategory = errors.New("unknown rating category")

// Valid reports whether the rating category is supported.
func (c RatingCategory) Valid() bool {
	switch c {
	case RatingCategoryLikelihood, RatingCategorySeverity, RatingCategoryRiskControl, RatingCategoryRiskMonitoring:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the category.
func (c RatingCategory) Label() string {
	switch c {
	case RatingCategoryLikelihood:
		return "Likelihood"
	case RatingCategorySeverity:
		return "Severity"
	case RatingCategoryRiskControl:
		return "Risk Control"
	case RatingCategoryRiskMonitoring:
		return "Risk Monitoring"
	default:
		return string(c)
	}
}

// ParseRatingCategory normalizes a category string into a supported category.
func ParseRatingCategory(value string) (RatingCategory, error) {
	c := RatingCategory(strings.ToLower(strings.TrimSpace(value)))
	if !c.Valid() {
		return "", ErrUnknownRatingCategory
	}
	return c, nil
}

// RatingCategories lists all supported categories in display order.
func RatingCategories() []RatingCategory {
	return []RatingCategory{RatingCategoryLikelihood, RatingCategorySeverity, RatingCategoryRiskControl, RatingCategoryRiskMonitoring}
}

// RiskRating represents one row of a risk rating scale (name plus symbol).
type RiskRating struct {
	ID        string         `json:"id"         db:"id"`
	Category  RatingCategory `json:"category"   db:"category"`
	Name      string         `json:"name"       db:"name"`
	Symbol    string         `json:"symbol"     db:"symbol"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// CreateRiskRatingRequest represents parameters to create a RiskRating.
type CreateRiskRatingRequest struct {
	Category RatingCategory `json:"category"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
}

// Validate validates CreateRiskRatingRequest.
func (r *CreateRiskRatingRequest) Validate() error {
	if !r.Category.Valid() {
		return errors.New("invalid rating category")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if strings.TrimSpace(r.Symbol) == "" {
		return errors.New("symbol is required and cannot be empty")
	}
	return nil
}
