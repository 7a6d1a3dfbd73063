// Package migrations owns the relational schema. Constraint names are
// stable because storage errors are mapped back to fields through them.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	ConstraintEmployeeID    = "employees_employee_id_key"
	ConstraintEmployeeEmail = "employees_email_key"
	ConstraintEmployeeDate  = "uq_employee_date"
	ConstraintAttendanceFK  = "attendance_employee_id_fkey"
	ConstraintStatusCheck   = "attendance_status_check"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
	id          BIGSERIAL PRIMARY KEY,
	employee_id TEXT NOT NULL,
	full_name   TEXT NOT NULL,
	email       TEXT NOT NULL,
	department  TEXT NOT NULL,
	CONSTRAINT ` + ConstraintEmployeeID + ` UNIQUE (employee_id),
	CONSTRAINT ` + ConstraintEmployeeEmail + ` UNIQUE (email)
)`,
	`CREATE TABLE IF NOT EXISTS attendance (
	id          BIGSERIAL PRIMARY KEY,
	employee_id TEXT NOT NULL,
	date        DATE NOT NULL,
	status      TEXT NOT NULL,
	CONSTRAINT ` + ConstraintAttendanceFK + ` FOREIGN KEY (employee_id)
		REFERENCES employees (employee_id) ON DELETE CASCADE,
	CONSTRAINT ` + ConstraintEmployeeDate + ` UNIQUE (employee_id, date),
	CONSTRAINT ` + ConstraintStatusCheck + ` CHECK (status IN ('Present', 'Absent'))
)`,
}

// Apply runs every statement in order. All statements are idempotent.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
