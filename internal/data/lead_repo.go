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
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrLeadNameExists is returned on duplicate lead names.
	ErrLeadNameExists = errors.New("lead name already exists")
)

// LeadRepo provides database operations for leads.
type LeadRepo struct {
	DB *sql.DB
}

// NewLeadRepo creates a new LeadRepo.
func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{DB: db}
}

// Create inserts a new lead.
func (r *LeadRepo) Create(ctx context.Context, req *model.CreateLeadRequest) (*model.Lead, error) {
	if req == nil {
		return nil, errors.New("create lead request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Lead
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO leads (name)
			VALUES ($1)
			RETURNING id, name, created_at`,
			strings.TrimSpace(req.Name),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lead])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrLeadNameExists)
	}
	return &out, nil
}

// GetByID retrieves a lead by ID.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	var out model.Lead
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT id, name, created_at FROM leads WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lead])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead by ID: %w", err)
	}
	return &out, nil
}

// List retrieves leads ordered by name.
func (r *LeadRepo) List(ctx context.Context, limit, offset int) ([]*model.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Lead
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, name, created_at
			FROM leads
			ORDER BY name ASC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Lead])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	res := make([]*model.Lead, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update renames a lead.
func (r *LeadRepo) Update(ctx context.Context, id string, req model.UpdateLeadRequest) (*model.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Lead
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE leads SET name = $1 WHERE id = $2
			RETURNING id, name, created_at`,
			strings.TrimSpace(*req.Name), id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lead])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, mapUniqueErr(err, ErrLeadNameExists)
	}
	return &out, nil
}

// Delete deletes a lead by ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete lead: %w", err)
	}
	return rows > 0, nil
}
