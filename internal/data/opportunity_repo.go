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

// ErrOpportunityNotFound is returned when an opportunity is not found.
var ErrOpportunityNotFound = errors.New("opportunity not found")

// OpportunityRepo provides database operations for opportunities.
type OpportunityRepo struct {
	DB *sql.DB
}

// NewOpportunityRepo creates a new OpportunityRepo.
func NewOpportunityRepo(db *sql.DB) *OpportunityRepo {
	return &OpportunityRepo{DB: db}
}

const opportunityColumns = `id, opt_statement, planned_actions, kpi, key_persons,
	target_output, budget, profile_id, department_id, is_approved, created_at`

const opportunityInsertQuery = `
	INSERT INTO opportunities (
		opt_statement, planned_actions, kpi, key_persons,
		target_output, budget, profile_id, department_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + opportunityColumns

// Create inserts a single opportunity.
func (r *OpportunityRepo) Create(
	ctx context.Context,
	req *model.CreateOpportunityRequest,
) (*model.Opportunity, error) {
	if req == nil {
		return nil, errors.New("create opportunity request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Opportunity
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, opportunityInsertQuery, opportunityInsertArgs(req)...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Opportunity])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return &out, nil
}

// CreateBatch inserts all opportunities inside a single transaction.
// Either every row is inserted or none are.
func (r *OpportunityRepo) CreateBatch(
	ctx context.Context,
	reqs []*model.CreateOpportunityRequest,
) ([]*model.Opportunity, error) {
	if len(reqs) == 0 {
		return nil, errors.New("at least one opportunity is required")
	}
	for i, req := range reqs {
		if req == nil {
			return nil, fmt.Errorf("opportunity %d: request is required", i+1)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("opportunity %d: %w", i+1, err)
		}
	}

	out := make([]*model.Opportunity, 0, len(reqs))
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		for _, req := range reqs {
			rows, err := tx.Query(ctx, opportunityInsertQuery, opportunityInsertArgs(req)...)
			if err != nil {
				return err
			}
			opp, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Opportunity])
			if err != nil {
				return err
			}
			out = append(out, &opp)
		}
		return nil
	}}); err != nil {
		return nil, fmt.Errorf("failed to create opportunities batch: %w", err)
	}
	return out, nil
}

func opportunityInsertArgs(req *model.CreateOpportunityRequest) []any {
	return []any{
		strings.TrimSpace(req.OptStatement),
		req.PlannedActions,
		req.KPI,
		req.KeyPersons,
		req.TargetOutput,
		req.Budget,
		req.ProfileID,
		req.DepartmentID,
	}
}

// GetByID retrieves an opportunity by ID.
func (r *OpportunityRepo) GetByID(ctx context.Context, id string) (*model.Opportunity, error) {
	var out model.Opportunity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Opportunity])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to get opportunity by ID: %w", err)
	}
	return &out, nil
}

// ListWithOptions retrieves opportunities joined with department names, honoring filters.
func (r *OpportunityRepo) ListWithOptions(
	ctx context.Context,
	opts model.OpportunityListOptions,
) ([]*model.OpportunityWithDepartment, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 3)
	args := []any{}
	if opts.ID != nil && strings.TrimSpace(*opts.ID) != "" {
		args = append(args, strings.TrimSpace(*opts.ID))
		where = append(where, "o.id = $"+strconv.Itoa(len(args)))
	}
	if opts.DepartmentID != nil && strings.TrimSpace(*opts.DepartmentID) != "" {
		args = append(args, strings.TrimSpace(*opts.DepartmentID))
		where = append(where, "o.department_id = $"+strconv.Itoa(len(args)))
	}
	if opts.ApprovedOnly {
		where = append(where, "o.is_approved = TRUE")
	}
	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	limitIdx := len(args)
	args = append(args, offset)
	offsetIdx := len(args)

	order := "DESC"
	if opts.OldestFirst {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.opt_statement, o.planned_actions, o.kpi, o.key_persons,
		       o.target_output, o.budget, o.profile_id, o.department_id, o.is_approved, o.created_at,
		       d.name AS department_name
		FROM opportunities o
		LEFT JOIN departments d ON d.id = o.department_id
		%s
		ORDER BY o.created_at %s
		LIMIT $%d OFFSET $%d`, whereClause, order, limitIdx, offsetIdx)

	var rowsOut []model.OpportunityWithDepartment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.OpportunityWithDepartment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	res := make([]*model.OpportunityWithDepartment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Approve marks an opportunity as approved. Approving an already-approved
// opportunity is a no-op that still returns the row.
func (r *OpportunityRepo) Approve(ctx context.Context, id string) (*model.Opportunity, error) {
	var out model.Opportunity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE opportunities SET is_approved = TRUE WHERE id = $1
			RETURNING `+opportunityColumns, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Opportunity])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to approve opportunity: %w", err)
	}
	return &out, nil
}

// Delete deletes an opportunity by ID.
func (r *OpportunityRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete opportunity: %w", err)
	}
	return rows > 0, nil
}
