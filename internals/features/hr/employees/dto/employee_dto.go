package dto

import "hrms_backend/internals/features/hr/employees/model"

// ====================
// Request DTO
// ====================

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=3"`
	FullName   string `json:"full_name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=2"`
}

func (r CreateEmployeeRequest) ToModel() model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
	}
}

// ====================
// Response DTO
// ====================

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToEmployeeResponse(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Email:      m.Email,
		Department: m.Department,
	}
}

func ToEmployeeResponses(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToEmployeeResponse(m))
	}
	return out
}
