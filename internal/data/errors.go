package data

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapUniqueErr converts unique-violation database errors into the given
// sentinel so callers can branch with errors.Is instead of parsing pg codes.
func mapUniqueErr(err, sentinel error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return sentinel
	}
	return err
}
