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

var (
	// ErrGoalNotFound is returned when a strategic goal is not found.
	ErrGoalNotFound = errors.New("strategic goal not found")
	// ErrGoalNumberExists is returned on duplicate goal numbers.
	ErrGoalNumberExists = errors.New("goal number already exists")
)

// GoalRepo provides database operations for strategic goals.
type GoalRepo struct {
	DB *sql.DB
}

// NewGoalRepo creates a new GoalRepo.
func NewGoalRepo(db *sql.DB) *GoalRepo {
	return &GoalRepo{DB: db}
}

const (
	goalColumns = `id, goal_no, name, description, kpi, lead_id, created_at`

	goalListWithLeadQuery = `
		SELECT g.id, g.goal_no, g.name, g.description, g.kpi, g.lead_id, g.created_at,
		       l.name AS lead_name
		FROM strategic_goals g
		LEFT JOIN leads l ON l.id = g.lead_id
		ORDER BY g.goal_no ASC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new strategic goal.
func (r *GoalRepo) Create(
	ctx context.Context,
	req *model.CreateStrategicGoalRequest,
) (*model.StrategicGoal, error) {
	if req == nil {
		return nil, errors.New("create strategic goal request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.StrategicGoal
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO strategic_goals (goal_no, name, description, kpi, lead_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+goalColumns,
			req.GoalNo,
			strings.TrimSpace(req.Name),
			req.Description,
			req.KPI,
			req.LeadID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StrategicGoal])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrGoalNumberExists)
	}
	return &out, nil
}

// CreateBatch inserts all goals inside a single transaction. Either every
// row is inserted or none are.
func (r *GoalRepo) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateStrategicGoalRequest,
) ([]*model.StrategicGoal, error) {
	if len(reqs) == 0 {
		return nil, errors.New("at least one goal is required")
	}
	for i, req := range reqs {
		if req == nil {
			return nil, fmt.Errorf("goal %d: request is required", i+1)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
	}

	out := make([]*model.StrategicGoal, 0, len(reqs))
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		for _, req := range reqs {
			rows, err := tx.Query(ctx, `
				INSERT INTO strategic_goals (goal_no, name, description, kpi, lead_id)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING `+goalColumns,
				req.GoalNo,
				strings.TrimSpace(req.Name),
				req.Description,
				req.KPI,
				req.LeadID,
			)
			if err != nil {
				return err
			}
			goal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StrategicGoal])
			if err != nil {
				return err
			}
			out = append(out, &goal)
		}
		return nil
	}}); err != nil {
		return nil, mapUniqueErr(err, ErrGoalNumberExists)
	}
	return out, nil
}

// GetByID retrieves a strategic goal by ID.
func (r *GoalRepo) GetByID(ctx context.Context, id string) (*model.StrategicGoal, error) {
	var out model.StrategicGoal
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+goalColumns+` FROM strategic_goals WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StrategicGoal])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get strategic goal by ID: %w", err)
	}
	return &out, nil
}

// List retrieves strategic goals ordered by goal number.
func (r *GoalRepo) List(ctx context.Context, limit, offset int) ([]*model.StrategicGoal, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.StrategicGoal
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+goalColumns+`
			FROM strategic_goals
			ORDER BY goal_no ASC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.StrategicGoal])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list strategic goals: %w", err)
	}

	res := make([]*model.StrategicGoal, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListWithLeads retrieves strategic goals with their resolved lead names.
func (r *GoalRepo) ListWithLeads(
	ctx context.Context,
	limit, offset int,
) ([]*model.StrategicGoalWithLead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.StrategicGoalWithLead
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, goalListWithLeadQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.StrategicGoalWithLead])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list strategic goals with leads: %w", err)
	}

	res := make([]*model.StrategicGoalWithLead, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a strategic goal.
func (r *GoalRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateStrategicGoalRequest,
) (*model.StrategicGoal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(col string, v any) {
		args = append(args, v)
		setParts = append(setParts, col+" = $"+strconv.Itoa(len(args)))
	}
	if req.GoalNo != nil {
		add("goal_no", *req.GoalNo)
	}
	if req.Name != nil {
		add("name", strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.KPI != nil {
		add("kpi", *req.KPI)
	}
	if req.LeadID != nil {
		if strings.TrimSpace(*req.LeadID) == "" {
			setParts = append(setParts, "lead_id = NULL")
		} else {
			add("lead_id", *req.LeadID)
		}
	}
	args = append(args, id)
	query := "UPDATE strategic_goals SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + goalColumns

	var out model.StrategicGoal
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StrategicGoal])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, mapUniqueErr(err, ErrGoalNumberExists)
	}
	return &out, nil
}

// Delete deletes a strategic goal by ID.
func (r *GoalRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM strategic_goals WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete strategic goal: %w", err)
	}
	return rows > 0, nil
}
