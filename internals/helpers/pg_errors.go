package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes we react to.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
	PgCheckViolation      = "23514"
)

// ConstraintViolation is the driver-neutral view of a Postgres integrity error.
type ConstraintViolation struct {
	Code       string
	Constraint string
}

// AsConstraintViolation unwraps pgx (gorm postgres driver) and lib/pq errors.
func AsConstraintViolation(err error) (ConstraintViolation, bool) {
	if err == nil {
		return ConstraintViolation{}, false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConstraintViolation{Code: pgErr.Code, Constraint: pgErr.ConstraintName}, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return ConstraintViolation{Code: string(pqErr.Code), Constraint: pqErr.Constraint}, true
	}
	return ConstraintViolation{}, false
}

func IsUniqueViolation(err error) bool {
	v, ok := AsConstraintViolation(err)
	return ok && v.Code == PgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	v, ok := AsConstraintViolation(err)
	return ok && v.Code == PgForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	v, ok := AsConstraintViolation(err)
	return ok && v.Code == PgCheckViolation
}
