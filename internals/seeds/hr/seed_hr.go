package hr

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrms_backend/internals/configs"
	attendanceDTO "hrms_backend/internals/features/hr/attendance/dto"
	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeDTO "hrms_backend/internals/features/hr/employees/dto"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
)

// SeedFile is the on-disk layout of demo data.
type SeedFile struct {
	Employees  []employeeDTO.CreateEmployeeRequest     `json:"employees"`
	Attendance []attendanceDTO.CreateAttendanceRequest `json:"attendance"`
}

// LoadSeedFile reads and validates a seed file with the same rules the
// HTTP handlers apply.
func LoadSeedFile(path string, v *validator.Validate) (SeedFile, error) {
	var sf SeedFile
	raw, err := os.ReadFile(path)
	if err != nil {
		return sf, fmt.Errorf("read seed file: %w", err)
	}
	if err := sonic.Unmarshal(raw, &sf); err != nil {
		return sf, fmt.Errorf("decode seed file: %w", err)
	}
	if v == nil {
		v = helper.NewValidator()
	}

	known := make(map[string]bool, len(sf.Employees))
	emails := make(map[string]string, len(sf.Employees))
	for i, e := range sf.Employees {
		if err := v.Struct(e); err != nil {
			return sf, fmt.Errorf("employees[%d]: %w", i, err)
		}
		if known[e.EmployeeID] {
			return sf, fmt.Errorf("employees[%d]: duplicate employee_id %q", i, e.EmployeeID)
		}
		if owner, ok := emails[e.Email]; ok {
			return sf, fmt.Errorf("employees[%d]: email %q already used by %q", i, e.Email, owner)
		}
		known[e.EmployeeID] = true
		emails[e.Email] = e.EmployeeID
	}
	for i, a := range sf.Attendance {
		if err := v.Struct(a); err != nil {
			return sf, fmt.Errorf("attendance[%d]: %w", i, err)
		}
		if !attendanceModel.IsValidStatus(a.StatusValue()) {
			return sf, fmt.Errorf("attendance[%d]: invalid status %q", i, a.StatusValue())
		}
		if !known[a.EmployeeIDValue()] {
			return sf, fmt.Errorf("attendance[%d]: employee %q not in seed file", i, a.EmployeeIDValue())
		}
	}
	return sf, nil
}

// Apply inserts rows that are not there yet; re-running it is a no-op.
// A new employee whose email already belongs to someone else aborts the
// whole seed.
func Apply(ctx context.Context, db *gorm.DB, sf SeedFile) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Ambil employee_id + email yang sudah ada
		var existing []employeeModel.EmployeeModel
		if err := tx.Model(&employeeModel.EmployeeModel{}).Select("employee_id", "email").Find(&existing).Error; err != nil {
			return fmt.Errorf("load existing employees: %w", err)
		}
		have := make(map[string]bool, len(existing))
		emailOwner := make(map[string]string, len(existing))
		for _, e := range existing {
			have[e.EmployeeID] = true
			emailOwner[e.Email] = e.EmployeeID
		}

		var newEmployees []employeeModel.EmployeeModel
		for _, e := range sf.Employees {
			if have[e.EmployeeID] {
				configs.Log.WithField("employee_id", e.EmployeeID).Debug("seed: employee exists, skipped")
				continue
			}
			if owner, ok := emailOwner[e.Email]; ok {
				return fmt.Errorf("seed employee %q: email %q already used by employee %q", e.EmployeeID, e.Email, owner)
			}
			newEmployees = append(newEmployees, e.ToModel())
		}
		if len(newEmployees) > 0 {
			if err := tx.Create(&newEmployees).Error; err != nil {
				return fmt.Errorf("insert employees: %w", err)
			}
		}

		rows := make([]attendanceModel.AttendanceModel, 0, len(sf.Attendance))
		for _, a := range sf.Attendance {
			rows = append(rows, a.ToModel())
		}
		if len(rows) > 0 {
			// uq_employee_date makes repeated marks a no-op
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
				return fmt.Errorf("insert attendance: %w", err)
			}
		}

		configs.Log.WithFields(logrus.Fields{
			"employees":  len(newEmployees),
			"attendance": len(rows),
		}).Info("✅ seed applied")
		return nil
	})
}
