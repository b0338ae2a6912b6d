package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eucorp/planning/internal/domain/model"
)

// EvaluateHandlers serves the goal evaluation API.
type EvaluateHandlers struct {
	Evaluator GoalEvaluator
}

type evaluateGoalRequest struct {
	ObjectiveID string          `json:"objective_id"`
	Evaluation  json.RawMessage `json:"evaluation"`
}

type evaluateGoalResponse struct {
	ObjectiveID string `json:"objective_id"`
	IsAchieved  *bool  `json:"is_achieved"`
	TimeDone    string `json:"time_completed,omitempty"`
}

// EvaluateGoal records an evaluation payload against an objective and returns
// the extracted achievement verdict.
func (h *EvaluateHandlers) EvaluateGoal(w http.ResponseWriter, r *http.Request) {
	if h.Evaluator == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "evaluation_unavailable",
			Err:     errors.New("evaluation service unavailable"),
		})
		return
	}

	var req evaluateGoalRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	pm, err := h.Evaluator.Evaluate(r.Context(), &model.RecordEvaluationRequest{
		ObjectiveID: req.ObjectiveID,
		Evaluation:  req.Evaluation,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "evaluation_failed",
			Err:     err,
		})
		return
	}

	resp := evaluateGoalResponse{
		ObjectiveID: pm.ObjectiveID,
		IsAchieved:  pm.IsAchieved,
	}
	if pm.TimeCompleted != nil {
		resp.TimeDone = pm.TimeCompleted.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	WriteJSON(w, http.StatusOK, resp)
}
