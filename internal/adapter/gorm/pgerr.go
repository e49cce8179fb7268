package gorm

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// AsPgError extracts the postgres error from err, if any.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// withPgDetails annotates err with the SQLSTATE code when it comes from
// postgres.
func withPgDetails(err error) error {
	pe, ok := AsPgError(err)
	if !ok {
		return errors.WithStack(err)
	}

	if pe.ConstraintName != "" {
		return errors.Wrapf(err, "postgres error %s on constraint '%s'", pe.Code, pe.ConstraintName)
	}

	return errors.Wrapf(err, "postgres error %s", pe.Code)
}
