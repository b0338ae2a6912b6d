package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/eucorp/planning/internal/core"
	"github.com/eucorp/planning/internal/domain/model"
)

// DefaultAchievedPath is the JMESPath expression used to pull the achievement
// verdict out of a submitted evaluation payload when none is configured.
const DefaultAchievedPath = "is_achieved"

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// EvaluationServiceOptions groups dependencies for EvaluationService.
type EvaluationServiceOptions struct {
	Monitoring core.MonitoringRepository
	Evaluator  JMESPathEvaluator
	Logger     *slog.Logger
}

// EvaluationService records goal-evaluation submissions and extracts the
// achievement verdict from the evaluation payload.
type EvaluationService struct {
	monitoring   core.MonitoringRepository
	jems         JMESPathEvaluator
	achievedPath string
	logger       *slog.Logger
}

// NewEvaluationService constructs a new EvaluationService.
func NewEvaluationService(opts EvaluationServiceOptions) *EvaluationService {
	if opts.Monitoring == nil {
		panic("MonitoringRepository is required")
	}
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &EvaluationService{
		monitoring:   opts.Monitoring,
		jems:         jems,
		achievedPath: DefaultAchievedPath,
		logger:       opts.Logger,
	}
}

// SetAchievedPath overrides the JMESPath expression for the verdict lookup.
// Returns an error when the expression does not compile.
func (s *EvaluationService) SetAchievedPath(expr string) error {
	if err := s.jems.Validate(expr); err != nil {
		return fmt.Errorf("invalid achieved path %q: %w", expr, err)
	}
	if strings.TrimSpace(expr) != "" {
		s.achievedPath = expr
	}
	return nil
}

// Evaluate extracts the achievement verdict from the payload and persists it
// against the objective's monitoring row.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	req *model.RecordEvaluationRequest,
) (*model.PlanMonitoring, error) {
	if req == nil {
		return nil, fmt.Errorf("evaluation request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	achieved, err := s.extractVerdict(req.Evaluation)
	if err != nil {
		return nil, err
	}

	pm, err := s.monitoring.RecordEvaluation(ctx, req, achieved)
	if err != nil {
		return nil, fmt.Errorf("record evaluation: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("objective evaluated", "objective_id", req.ObjectiveID, "achieved", achieved)
	}
	return pm, nil
}

// extractVerdict searches the payload with the configured JMESPath expression
// and coerces the result to a boolean verdict.
func (s *EvaluationService) extractVerdict(payload json.RawMessage) (bool, error) {
	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return false, fmt.Errorf("decode evaluation payload: %w", err)
	}
	result, err := s.jems.Evaluate(s.achievedPath, data)
	if err != nil {
		return false, fmt.Errorf("evaluate achieved path: %w", err)
	}
	return coerceVerdict(result), nil
}

// coerceVerdict interprets assorted JSON representations of the verdict.
// Anything unrecognized counts as not achieved.
func coerceVerdict(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "achieved", "1":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}
