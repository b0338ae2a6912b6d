//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatingCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RatingCategory
		wantErr bool
	}{
		{name: "likelihood", input: "likelihood", want: RatingCategoryLikelihood},
		{name: "mixed case with whitespace", input: "  Severity ", want: RatingCategorySeverity},
		{name: "risk control", input: "risk_control", want: RatingCategoryRiskControl},
		{name: "risk monitoring", input: "RISK_MONITORING", want: RatingCategoryRiskMonitoring},
		{name: "unknown value", input: "bogus", wantErr: true},
		{name: "empty value", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRatingCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRatingCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatingCategory_Label(t *testing.T) {
	assert.Equal(t, "Likelihood", RatingCategoryLikelihood.Label())
	assert.Equal(t, "Risk Control", RatingCategoryRiskControl.Label())
	assert.Equal(t, "Risk Monitoring", RatingCategoryRiskMonitoring.Label())
}

func TestCreateRiskRatingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRiskRatingRequest
		wantErr string
	}{
		{
			name: "valid request",
			req: CreateRiskRatingRequest{
				Category: RatingCategoryLikelihood,
				Name:     "Almost Certain",
				Symbol:   "5",
			},
			wantErr: "",
		},
		{
			name: "invalid category",
			req: CreateRiskRatingRequest{
				Category: RatingCategory("bogus"),
				Name:     "Almost Certain",
				Symbol:   "5",
			},
			wantErr: "invalid rating category",
		},
		{
			name: "empty name",
			req: CreateRiskRatingRequest{
				Category: RatingCategorySeverity,
				Name:     "   ",
				Symbol:   "C",
			},
			wantErr: "name is required and cannot be empty",
		},
		{
			name: "empty symbol",
			req: CreateRiskRatingRequest{
				Category: RatingCategorySeverity,
				Name:     "Catastrophic",
				Symbol:   "",
			},
			wantErr: "symbol is required and cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
