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
	// ErrClassificationNotFound is returned when a classification is not found.
	ErrClassificationNotFound = errors.New("classification not found")
	// ErrClassificationNameExists is returned on duplicate classification names.
	ErrClassificationNameExists = errors.New("classification name already exists")
)

// ClassificationRepo provides database operations for classifications.
type ClassificationRepo struct {
	DB *sql.DB
}

// NewClassificationRepo creates a new ClassificationRepo.
func NewClassificationRepo(db *sql.DB) *ClassificationRepo {
	return &ClassificationRepo{DB: db}
}

const classificationListQuery = `
	SELECT id, name, created_at
	FROM classifications
	ORDER BY name ASC
	LIMIT $1 OFFSET $2`

// Create inserts a new classification.
func (r *ClassificationRepo) Create(
	ctx context.Context,
	req *model.CreateClassificationRequest,
) (*model.Classification, error) {
	if req == nil {
		return nil, errors.New("create classification request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Classification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO classifications (name)
			VALUES ($1)
			RETURNING id, name, created_at`,
			strings.TrimSpace(req.Name),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Classification])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrClassificationNameExists)
	}
	return &out, nil
}

// GetByID retrieves a classification by ID.
func (r *ClassificationRepo) GetByID(ctx context.Context, id string) (*model.Classification, error) {
	var out model.Classification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT id, name, created_at FROM classifications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Classification])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, fmt.Errorf("failed to get classification by ID: %w", err)
	}
	return &out, nil
}

// List retrieves classifications ordered by name.
func (r *ClassificationRepo) List(ctx context.Context, limit, offset int) ([]*model.Classification, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Classification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, classificationListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Classification])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}

	res := make([]*model.Classification, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update renames a classification.
func (r *ClassificationRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateClassificationRequest,
) (*model.Classification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Classification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE classifications SET name = $1 WHERE id = $2
			RETURNING id, name, created_at`,
			strings.TrimSpace(*req.Name), id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Classification])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, mapUniqueErr(err, ErrClassificationNameExists)
	}
	return &out, nil
}

// Delete deletes a classification by ID.
func (r *ClassificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM classifications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete classification: %w", err)
	}
	return rows > 0, nil
}
