//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAchievedFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  AchievedFilter
	}{
		{name: "achieved", input: "achieved", want: AchievedFilterAchieved},
		{name: "mixed case", input: "Achieved", want: AchievedFilterAchieved},
		{name: "not achieved", input: "not_achieved", want: AchievedFilterNotAchieved},
		{name: "empty defaults to all", input: "", want: AchievedFilterAll},
		{name: "unknown defaults to all", input: "bogus", want: AchievedFilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAchievedFilter(tt.input))
		})
	}
}

func TestRecordEvaluationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RecordEvaluationRequest
		wantErr string
	}{
		{
			name: "valid request",
			req: RecordEvaluationRequest{
				ObjectiveID: "obj-1",
				Evaluation:  json.RawMessage(`{"is_achieved": true}`),
			},
			wantErr: "",
		},
		{
			name: "missing objective id",
			req: RecordEvaluationRequest{
				Evaluation: json.RawMessage(`{"is_achieved": true}`),
			},
			wantErr: "objective_id is required",
		},
		{
			name: "empty payload",
			req: RecordEvaluationRequest{
				ObjectiveID: "obj-1",
			},
			wantErr: "evaluation payload is required",
		},
		{
			name: "malformed payload",
			req: RecordEvaluationRequest{
				ObjectiveID: "obj-1",
				Evaluation:  json.RawMessage(`{"is_achieved":`),
			},
			wantErr: "evaluation must be valid JSON",
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
