package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/eucorp/planning/internal/data/pgxutil"
	"github.com/eucorp/planning/internal/domain/model"
)

// ErrMonitoringNotFound is returned when no monitoring row exists for an objective.
var ErrMonitoringNotFound = errors.New("monitoring record not found")

// MonitoringRepo provides database operations for plan monitoring rows.
type MonitoringRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMonitoringRepo creates a new MonitoringRepo with real time provider.
func NewMonitoringRepo(db *sql.DB) *MonitoringRepo {
	return &MonitoringRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMonitoringRepoWithTimeProvider creates a new MonitoringRepo with a custom time provider.
func NewMonitoringRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MonitoringRepo {
	return &MonitoringRepo{DB: db, timeProvider: tp}
}

const monitoringColumns = `id, objective_id, evaluation, is_achieved, time_completed, created_at`

// RecordEvaluation stores the evaluation payload and verdict for an objective,
// inserting the monitoring row on first evaluation.
func (r *MonitoringRepo) RecordEvaluation(
	ctx context.Context,
	req *model.RecordEvaluationRequest,
	achieved bool,
) (*model.PlanMonitoring, error) {
	if req == nil {
		return nil, errors.New("record evaluation request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	completed := r.timeProvider.Now().UTC()
	var out model.PlanMonitoring
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO plan_monitoring (objective_id, evaluation, is_achieved, time_completed)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (objective_id) DO UPDATE SET
				evaluation = EXCLUDED.evaluation,
				is_achieved = EXCLUDED.is_achieved,
				time_completed = EXCLUDED.time_completed
			RETURNING `+monitoringColumns,
			req.ObjectiveID,
			[]byte(req.Evaluation),
			achieved,
			completed,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PlanMonitoring])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to record evaluation: %w", err)
	}
	return &out, nil
}

// GetByObjective retrieves the monitoring row for one objective.
func (r *MonitoringRepo) GetByObjective(
	ctx context.Context,
	objectiveID string,
) (*model.PlanMonitoring, error) {
	var out model.PlanMonitoring
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+monitoringColumns+` FROM plan_monitoring WHERE objective_id = $1`, objectiveID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PlanMonitoring])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMonitoringNotFound
		}
		return nil, fmt.Errorf("failed to get monitoring record: %w", err)
	}
	return &out, nil
}

// ListRows retrieves monitoring rows joined with objective and goal context,
// honoring achievement, department, and mid-year filters.
func (r *MonitoringRepo) ListRows(
	ctx context.Context,
	opts model.MonitoringListOptions,
) ([]*model.MonitoringRow, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 3)
	args := []any{}
	switch opts.Achieved {
	case model.AchievedFilterAchieved:
		where = append(where, "m.is_achieved = TRUE")
	case model.AchievedFilterNotAchieved:
		where = append(where, "m.is_achieved = FALSE")
	}
	if opts.DepartmentID != nil && strings.TrimSpace(*opts.DepartmentID) != "" {
		args = append(args, strings.TrimSpace(*opts.DepartmentID))
		where = append(where, "p.department_id = $"+strconv.Itoa(len(args)))
	}
	if opts.MidYear {
		now := r.timeProvider.Now().UTC()
		args = append(args, now.Year())
		where = append(where,
			"EXTRACT(YEAR FROM m.time_completed) = $"+strconv.Itoa(len(args)),
			"EXTRACT(MONTH FROM m.time_completed) <= 6",
		)
	}
	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	limitIdx := len(args)
	args = append(args, offset)
	offsetIdx := len(args)

	query := fmt.Sprintf(`
		SELECT m.id, m.objective_id, m.evaluation, m.is_achieved, m.time_completed, m.created_at,
		       o.name AS objective_name,
		       g.name AS goal_name,
		       g.goal_no,
		       d.name AS department_name
		FROM plan_monitoring m
		JOIN objectives o ON o.id = m.objective_id
		JOIN strategic_goals g ON g.id = o.strategic_goal_id
		LEFT JOIN profiles p ON p.id = o.profile_id
		LEFT JOIN departments d ON d.id = p.department_id
		%s
		ORDER BY m.time_completed DESC NULLS LAST
		LIMIT $%d OFFSET $%d`, whereClause, limitIdx, offsetIdx)

	var rowsOut []model.MonitoringRow
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MonitoringRow])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list monitoring rows: %w", err)
	}

	res := make([]*model.MonitoringRow, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
