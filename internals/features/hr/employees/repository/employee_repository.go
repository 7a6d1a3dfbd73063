package repository

import (
	"context"

	"gorm.io/gorm"

	"hrms_backend/internals/databases/migrations"
	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
)

const (
	MsgEmployeeNotFound  = "Employee not found"
	MsgEmployeeIDExists  = "Employee ID already exists"
	MsgEmployeeEmailUsed = "Email already exists"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

// List returns the newest employees first.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.EmployeeModel, error) {
	var rows []model.EmployeeModel
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.exists(ctx, "employee_id = ?", employeeID)
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *EmployeeRepository) exists(ctx context.Context, cond string, arg string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.EmployeeModel{}).Where(cond, arg).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts m and fills its ID. A concurrent writer that got the
// same employee_id or email first surfaces as DuplicateKey.
func (r *EmployeeRepository) Create(ctx context.Context, m *model.EmployeeModel) error {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return translateEmployeeError(err)
	}
	return nil
}

// Delete removes the employee and its attendance in one transaction.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("employee_id = ?", employeeID).Delete(&model.EmployeeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.NotFound(MsgEmployeeNotFound)
		}
		return nil
	})
}

func translateEmployeeError(err error) error {
	v, ok := helper.AsConstraintViolation(err)
	if !ok || v.Code != helper.PgUniqueViolation {
		return err
	}
	switch v.Constraint {
	case migrations.ConstraintEmployeeID:
		return helper.DuplicateKey("employee_id", MsgEmployeeIDExists)
	case migrations.ConstraintEmployeeEmail:
		return helper.DuplicateKey("email", MsgEmployeeEmailUsed)
	default:
		return helper.DuplicateKey("", "Employee already exists")
	}
}

