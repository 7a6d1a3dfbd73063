package model

// EmployeeModel merepresentasikan tabel employees.
// Attendance rows reference EmployeeID; there is no association field,
// lookups go through the identifier. Constraints live in
// databases/migrations, not in these tags.
type EmployeeModel struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID string `gorm:"column:employee_id;type:text;not null"`
	FullName   string `gorm:"column:full_name;type:text;not null"`
	Email      string `gorm:"column:email;type:text;not null"`
	Department string `gorm:"column:department;type:text;not null"`
}

func (EmployeeModel) TableName() string { return "employees" }
