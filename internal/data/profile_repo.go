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
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileEmailExists is returned on duplicate profile emails.
	ErrProfileEmailExists = errors.New("profile email already exists")
)

// ProfileRepo provides database operations for user profiles.
type ProfileRepo struct {
	DB *sql.DB
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db}
}

const profileColumns = `id, first_name, last_name, email, role, department_id,
	profile_pic, is_verified, created_at, updated_at`

const profileListWithDepartmentQuery = `
	SELECT p.id, p.first_name, p.last_name, p.email, p.role, p.department_id,
	       p.profile_pic, p.is_verified, p.created_at, p.updated_at,
	       d.name AS department_name
	FROM profiles p
	LEFT JOIN departments d ON d.id = p.department_id
	ORDER BY p.created_at DESC
	LIMIT $1 OFFSET $2`

// Create inserts a new profile.
func (r *ProfileRepo) Create(
	ctx context.Context,
	req *model.CreateProfileRequest,
) (*model.Profile, error) {
	if req == nil {
		return nil, errors.New("create profile request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "user"
	}

	var out model.Profile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (first_name, last_name, email, role, department_id, profile_pic)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+profileColumns,
			strings.TrimSpace(req.FirstName),
			strings.TrimSpace(req.LastName),
			strings.ToLower(strings.TrimSpace(req.Email)),
			role,
			req.DepartmentID,
			req.ProfilePic,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	}); err != nil {
		return nil, mapUniqueErr(err, ErrProfileEmailExists)
	}
	return &out, nil
}

// GetByID retrieves a profile by ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.getByQuery(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByEmail retrieves a profile by email.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return r.getByQuery(
		ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)
}

func (r *ProfileRepo) getByQuery(ctx context.Context, q string, arg any) (*model.Profile, error) {
	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &out, nil
}

// List retrieves profiles with pagination.
func (r *ProfileRepo) List(ctx context.Context, limit, offset int) ([]*model.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Profile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+profileColumns+`
			FROM profiles
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Profile])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	res := make([]*model.Profile, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListWithDepartments retrieves profiles with their resolved department names.
func (r *ProfileRepo) ListWithDepartments(
	ctx context.Context,
	limit, offset int,
) ([]*model.ProfileWithDepartment, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.ProfileWithDepartment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, profileListWithDepartmentQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ProfileWithDepartment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list profiles with departments: %w", err)
	}

	res := make([]*model.ProfileWithDepartment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a profile.
func (r *ProfileRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateProfileRequest,
) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, v any) {
		args = append(args, v)
		setParts = append(setParts, col+" = $"+strconv.Itoa(len(args)))
	}
	if req.FirstName != nil {
		add("first_name", strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		add("last_name", strings.TrimSpace(*req.LastName))
	}
	if req.Role != nil {
		add("role", strings.TrimSpace(*req.Role))
	}
	if req.DepartmentID != nil {
		if strings.TrimSpace(*req.DepartmentID) == "" {
			setParts = append(setParts, "department_id = NULL")
		} else {
			add("department_id", *req.DepartmentID)
		}
	}
	if req.ProfilePic != nil {
		add("profile_pic", *req.ProfilePic)
	}
	if req.IsVerified != nil {
		add("is_verified", *req.IsVerified)
	}
	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)
	query := "UPDATE profiles SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + profileColumns

	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, mapUniqueErr(err, ErrProfileEmailExists)
	}
	return &out, nil
}

// Verify marks a profile as verified. Verifying an already-verified profile
// is a no-op that still returns the row.
func (r *ProfileRepo) Verify(ctx context.Context, id string) (*model.Profile, error) {
	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE profiles SET is_verified = TRUE, updated_at = NOW() WHERE id = $1
			RETURNING `+profileColumns, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to verify profile: %w", err)
	}
	return &out, nil
}

// Delete deletes a profile by ID.
func (r *ProfileRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return rows > 0, nil
}
