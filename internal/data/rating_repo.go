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
	// ErrRatingNotFound is returned when a risk rating is not found.
	ErrRatingNotFound = errors.New("risk rating not found")
	// ErrRatingExists is returned on duplicate name within a category.
	ErrRatingExists = errors.New("risk rating already exists in this category")
)

// RatingRepo provides database operations for risk ratings.
type RatingRepo struct {
	DB *sql.DB
}

// NewRatingRepo creates a new RatingRepo.
func NewRatingRepo(db *sql.DB) *RatingRepo {
	return &RatingRepo{DB: db}
}

const ratingColumns = `id, category, name, symbol, created_at`

// Create inserts a new risk rating.
func (r *RatingRepo) Create(
	ctx context.Context,
	req *model.CreateRiskRatingRequest,
) (*model.RiskRating, error) {
	if req == nil {
		return nil, errors.New("create risk rating request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.RiskRating
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO risk_ratings (category, name, symbol)
			VALUES ($1, $2, $3)
			RETURNING `+ratingColumns,
			string(req.Category),
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Symbol),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RiskRating])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrRatingExists)
	}
	return &out, nil
}

// ListByCategory retrieves the ratings of a single category.
func (r *RatingRepo) ListByCategory(
	ctx context.Context,
	category model.RatingCategory,
	limit, offset int,
) ([]*model.RiskRating, error) {
	if !category.Valid() {
		return nil, errors.New("invalid rating category")
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.RiskRating
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+ratingColumns+`
			FROM risk_ratings
			WHERE category = $1
			ORDER BY name ASC
			LIMIT $2 OFFSET $3`, string(category), limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RiskRating])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list risk ratings: %w", err)
	}

	res := make([]*model.RiskRating, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a risk rating by ID.
func (r *RatingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM risk_ratings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete risk rating: %w", err)
	}
	return rows > 0, nil
}
