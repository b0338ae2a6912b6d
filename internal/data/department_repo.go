package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/eucorp/planning/internal/data/pgxutil"
	"github.com/eucorp/planning/internal/domain/model"
)

var (
	// ErrDepartmentNotFound is returned when a department is not found.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDepartmentNameExists is returned on duplicate department names.
	ErrDepartmentNameExists = errors.New("department name already exists")
)

// DepartmentRepo provides database operations for departments.
type DepartmentRepo struct {
	DB *sql.DB
}

// NewDepartmentRepo creates a new DepartmentRepo.
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{DB: db}
}

const (
	departmentColumns   = `id, name, full_name, created_at`
	departmentListQuery = `
		SELECT id, name, full_name, created_at
		FROM departments
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new department.
func (r *DepartmentRepo) Create(
	ctx context.Context,
	req *model.CreateDepartmentRequest,
) (*model.Department, error) {
	if req == nil {
		return nil, errors.New("create department request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Department
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO departments (name, full_name)
			VALUES ($1, $2)
			RETURNING `+departmentColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.FullName),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrDepartmentNameExists)
	}
	return &out, nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var out model.Department
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by ID: %w", err)
	}
	return &out, nil
}

// GetByName retrieves a department by its short name.
func (r *DepartmentRepo) GetByName(ctx context.Context, name string) (*model.Department, error) {
	var out model.Department
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+departmentColumns+` FROM departments WHERE name = $1`, name)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}
	return &out, nil
}

// List retrieves departments ordered by name.
func (r *DepartmentRepo) List(ctx context.Context, limit, offset int) ([]*model.Department, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Department
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, departmentListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Department])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	res := make([]*model.Department, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a department.
func (r *DepartmentRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateDepartmentRequest,
) (*model.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if req.Name != nil {
		args = append(args, strings.TrimSpace(*req.Name))
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.FullName != nil {
		args = append(args, strings.TrimSpace(*req.FullName))
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", len(args)))
	}
	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE departments SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), departmentColumns,
	)

	var out model.Department
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Department])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, mapUniqueErr(err, ErrDepartmentNameExists)
	}
	return &out, nil
}

// Delete deletes a department by ID.
func (r *DepartmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete department: %w", err)
	}
	return rows > 0, nil
}
