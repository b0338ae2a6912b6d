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

// ErrObjectiveNotFound is returned when an objective is not found.
var ErrObjectiveNotFound = errors.New("objective not found")

// ObjectiveRepo provides database operations for strategic objectives.
type ObjectiveRepo struct {
	DB *sql.DB
}

// NewObjectiveRepo creates a new ObjectiveRepo.
func NewObjectiveRepo(db *sql.DB) *ObjectiveRepo {
	return &ObjectiveRepo{DB: db}
}

const objectiveColumns = `id, strategic_goal_id, name, strategic_initiatives, kpi,
	persons_involved, target, eval_measures, profile_id, created_at`

const objectiveInsertQuery = `
	INSERT INTO objectives (
		strategic_goal_id, name, strategic_initiatives, kpi,
		persons_involved, target, eval_measures, profile_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + objectiveColumns

// Create inserts a single objective.
func (r *ObjectiveRepo) Create(
	ctx context.Context,
	req *model.CreateObjectiveRequest,
) (*model.Objective, error) {
	if req == nil {
		return nil, errors.New("create objective request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Objective
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, objectiveInsertQuery, objectiveInsertArgs(req)...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Objective])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}
	return &out, nil
}

// CreateBatch inserts all objectives inside a single transaction.
// Either every row is inserted or none are.
func (r *ObjectiveRepo) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateObjectiveRequest,
) ([]*model.Objective, error) {
	if len(reqs) == 0 {
		return nil, errors.New("at least one objective is required")
	}
	for i, req := range reqs {
		if req == nil {
			return nil, fmt.Errorf("objective %d: request is required", i+1)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("objective %d: %w", i+1, err)
		}
	}

	out := make([]*model.Objective, 0, len(reqs))
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		for _, req := range reqs {
			rows, err := tx.Query(ctx, objectiveInsertQuery, objectiveInsertArgs(req)...)
			if err != nil {
				return err
			}
			obj, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Objective])
			if err != nil {
				return err
			}
			out = append(out, &obj)
		}
		return nil
	}}); err != nil {
		return nil, fmt.Errorf("failed to create objectives batch: %w", err)
	}
	return out, nil
}

func objectiveInsertArgs(req *model.CreateObjectiveRequest) []any {
	return []any{
		req.StrategicGoalID,
		strings.TrimSpace(req.Name),
		req.StrategicInitiatives,
		req.KPI,
		req.PersonsInvolved,
		req.Target,
		req.EvalMeasures,
		req.ProfileID,
	}
}

// GetByID retrieves an objective by ID.
func (r *ObjectiveRepo) GetByID(ctx context.Context, id string) (*model.Objective, error) {
	var out model.Objective
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+objectiveColumns+` FROM objectives WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Objective])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get objective by ID: %w", err)
	}
	return &out, nil
}

// ListByGoal retrieves the objectives attached to one strategic goal.
func (r *ObjectiveRepo) ListByGoal(
	ctx context.Context,
	goalID string,
	limit, offset int,
) ([]*model.Objective, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Objective
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+objectiveColumns+`
			FROM objectives
			WHERE strategic_goal_id = $1
			ORDER BY created_at ASC
			LIMIT $2 OFFSET $3`, goalID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Objective])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list objectives by goal: %w", err)
	}

	res := make([]*model.Objective, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an objective.
func (r *ObjectiveRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateObjectiveRequest,
) (*model.Objective, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, v any) {
		args = append(args, v)
		setParts = append(setParts, col+" = $"+strconv.Itoa(len(args)))
	}
	if req.Name != nil {
		add("name", strings.TrimSpace(*req.Name))
	}
	if req.StrategicInitiatives != nil {
		add("strategic_initiatives", *req.StrategicInitiatives)
	}
	if req.KPI != nil {
		add("kpi", *req.KPI)
	}
	if req.PersonsInvolved != nil {
		add("persons_involved", *req.PersonsInvolved)
	}
	if req.Target != nil {
		add("target", *req.Target)
	}
	if req.EvalMeasures != nil {
		add("eval_measures", *req.EvalMeasures)
	}
	args = append(args, id)
	query := "UPDATE objectives SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + objectiveColumns

	var out model.Objective
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Objective])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to update objective: %w", err)
	}
	return &out, nil
}

// Delete deletes an objective by ID.
func (r *ObjectiveRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM objectives WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete objective: %w", err)
	}
	return rows > 0, nil
}
