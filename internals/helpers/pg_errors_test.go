package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestAsConstraintViolationPgx(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	v, ok := AsConstraintViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "employees_email_key", v.Constraint)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestAsConstraintViolationLibPq(t *testing.T) {
	err := &pq.Error{Code: "23503", Constraint: "attendance_employee_id_fkey"}

	v, ok := AsConstraintViolation(err)
	assert.True(t, ok)
	assert.Equal(t, PgForeignKeyViolation, v.Code)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsCheckViolation(err))
}

func TestAsConstraintViolationOtherErrors(t *testing.T) {
	_, ok := AsConstraintViolation(errors.New("duplicate key value"))
	assert.False(t, ok)
	_, ok = AsConstraintViolation(nil)
	assert.False(t, ok)
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "23514"}))
}
