package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hrms_backend/internals/databases/migrations"
	"hrms_backend/internals/features/hr/attendance/model"
	employeeRepository "hrms_backend/internals/features/hr/employees/repository"
	helper "hrms_backend/internals/helpers"
)

const (
	MsgEmployeeNotFound = employeeRepository.MsgEmployeeNotFound
	MsgAlreadyMarked    = "Attendance already marked for this date"
	MsgInvalidStatus    = "Status must be Present or Absent"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("employee_id = ? AND date = ?", employeeID, datatypes.Date(date)).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create relies on uq_employee_date and the employee foreign key to
// reject writers that raced past the controller's pre-checks.
func (r *AttendanceRepository) Create(ctx context.Context, m *model.AttendanceModel) error {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return translateAttendanceError(err)
	}
	return nil
}

// ListByEmployee returns records newest date first.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string, f model.AttendanceFilter) ([]model.AttendanceModel, error) {
	q := r.DB.WithContext(ctx).Where("employee_id = ?", employeeID)
	if f.From != nil {
		q = q.Where("date >= ?", datatypes.Date(*f.From))
	}
	if f.To != nil {
		q = q.Where("date <= ?", datatypes.Date(*f.To))
	}

	var rows []model.AttendanceModel
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary counts in one statement so the three numbers come from the
// same snapshot.
func (r *AttendanceRepository) Summary(ctx context.Context, employeeID string) (model.AttendanceSummary, error) {
	var s model.AttendanceSummary
	err := r.DB.WithContext(ctx).Model(&model.AttendanceModel{}).
		Select(`COUNT(*) AS total_records,
			COUNT(*) FILTER (WHERE status = ?) AS present_days,
			COUNT(*) FILTER (WHERE status = ?) AS absent_days`,
			model.StatusPresent, model.StatusAbsent).
		Where("employee_id = ?", employeeID).
		Scan(&s).Error
	return s, err
}

func translateAttendanceError(err error) error {
	v, ok := helper.AsConstraintViolation(err)
	if !ok {
		return err
	}
	switch {
	case v.Code == helper.PgUniqueViolation && v.Constraint == migrations.ConstraintEmployeeDate:
		return helper.DuplicateKey("date", MsgAlreadyMarked)
	case v.Code == helper.PgForeignKeyViolation:
		return helper.NotFound(MsgEmployeeNotFound)
	case v.Code == helper.PgCheckViolation && v.Constraint == migrations.ConstraintStatusCheck:
		return helper.InvalidValue("status", MsgInvalidStatus)
	default:
		return err
	}
}
