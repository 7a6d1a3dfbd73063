package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
)

func newMockRepo(t *testing.T) (*EmployeeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewEmployeeRepository(gdb), mock
}

func TestListOrdersByIDDesc(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "full_name", "email", "department"}).
		AddRow(2, "EMP2", "Bob B", "b@x.com", "Ops").
		AddRow(1, "EMP1", "Alice A", "a@x.com", "Eng")
	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY id DESC`).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "EMP1", got[1].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByEmployeeID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE employee_id = \$1`).
		WithArgs("EMP1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE email = \$1`).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.ExistsByEmployeeID(context.Background(), "EMP1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFillsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO "employees"`).
		WithArgs("EMP1", "Alice A", "a@x.com", "Eng").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	m := model.EmployeeModel{EmployeeID: "EMP1", FullName: "Alice A", Email: "a@x.com", Department: "Eng"}
	require.NoError(t, repo.Create(context.Background(), &m))
	assert.Equal(t, int64(7), m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMapsUniqueViolations(t *testing.T) {
	cases := []struct {
		constraint string
		field      string
		msg        string
	}{
		{"employees_employee_id_key", "employee_id", MsgEmployeeIDExists},
		{"employees_email_key", "email", MsgEmployeeEmailUsed},
	}
	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(`INSERT INTO "employees"`).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})

			m := model.EmployeeModel{EmployeeID: "EMP1", FullName: "Alice A", Email: "a@x.com", Department: "Eng"}
			err := repo.Create(context.Background(), &m)
			require.ErrorIs(t, err, helper.ErrDuplicateKey)
			assert.Equal(t, tc.msg, err.Error())

			var de *helper.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestCreatePassesThroughUnknownErrors(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO "employees"`).WillReturnError(boom)

	m := model.EmployeeModel{EmployeeID: "EMP1", FullName: "Alice A", Email: "a@x.com", Department: "Eng"}
	err := repo.Create(context.Background(), &m)
	assert.ErrorIs(t, err, boom)
}

func TestDeleteCascadesInTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance" WHERE employee_id = \$1`).
		WithArgs("EMP1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "employees" WHERE employee_id = \$1`).
		WithArgs("EMP1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "EMP1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnknownRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance" WHERE employee_id = \$1`).
		WithArgs("NOPE").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "employees" WHERE employee_id = \$1`).
		WithArgs("NOPE").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "NOPE")
	require.ErrorIs(t, err, helper.ErrNotFound)
	assert.Equal(t, MsgEmployeeNotFound, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAttendanceFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance"`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "EMP1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, helper.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
