package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"hrms_backend/internals/features/hr/attendance/model"
	helper "hrms_backend/internals/helpers"
)

const DateLayout = "2006-01-02"

// ====================
// Request DTO
// ====================

// EmployeeID and Status are pointers so a missing key (422) differs from
// an empty one. Status values are not validated here: an unknown status is
// a business error (400) reported after the employee lookup.
type CreateAttendanceRequest struct {
	EmployeeID *string `json:"employee_id" validate:"required"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"required"`
}

func (r CreateAttendanceRequest) EmployeeIDValue() string { return deref(r.EmployeeID) }
func (r CreateAttendanceRequest) StatusValue() string { return deref(r.Status) }

// ToModel assumes the request already passed validation.
func (r CreateAttendanceRequest) ToModel() model.AttendanceModel {
	d, _ := time.Parse(DateLayout, r.Date)
	return model.AttendanceModel{
		EmployeeID: r.EmployeeIDValue(),
		Date:       datatypes.Date(d),
		Status:     r.StatusValue(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListAttendanceQuery holds the raw bounds; nil means the key was absent.
type ListAttendanceQuery struct {
	FromDate *string
	ToDate   *string
}

func (q ListAttendanceQuery) Filter() (model.AttendanceFilter, error) {
	var f model.AttendanceFilter
	from, err := parseOptionalDate("from_date", q.FromDate)
	if err != nil {
		return f, err
	}
	to, err := parseOptionalDate("to_date", q.ToDate)
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to
	return f, nil
}

// A present but empty bound is rejected like any other malformed date.
func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, helper.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// ====================
// Response DTO
// ====================

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type AttendanceSummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	TotalRecords int64  `json:"total_records"`
	PresentDays  int64  `json:"present_days"`
	AbsentDays   int64  `json:"absent_days"`
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       time.Time(m.Date).Format(DateLayout),
		Status:     m.Status,
	}
}

func ToAttendanceResponses(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}

func ToSummaryResponse(employeeID string, s model.AttendanceSummary) AttendanceSummaryResponse {
	return AttendanceSummaryResponse{
		EmployeeID:   employeeID,
		TotalRecords: s.TotalRecords,
		PresentDays:  s.PresentDays,
		AbsentDays:   s.AbsentDays,
	}
}
