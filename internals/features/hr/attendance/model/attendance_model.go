package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// IsValidStatus is case-sensitive: only the two exact values are accepted.
func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceModel merepresentasikan tabel attendance (satu baris per
// employee per tanggal, enforced by uq_employee_date in databases/migrations).
type AttendanceModel struct {
	ID         int64          `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID string         `gorm:"column:employee_id;type:text;not null"`
	Date       datatypes.Date `gorm:"column:date;type:date;not null"`
	Status     string         `gorm:"column:status;type:text;not null"`
}

func (AttendanceModel) TableName() string { return "attendance" }

// AttendanceFilter bounds are inclusive; nil means unbounded.
type AttendanceFilter struct {
	From *time.Time
	To   *time.Time
}

type AttendanceSummary struct {
	TotalRecords int64 `gorm:"column:total_records"`
	PresentDays  int64 `gorm:"column:present_days"`
	AbsentDays   int64 `gorm:"column:absent_days"`
}
