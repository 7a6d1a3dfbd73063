package controller

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/employees/dto"
	"hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/features/hr/employees/repository"
	helper "hrms_backend/internals/helpers"
)

// EmployeeStore is the storage contract; *repository.EmployeeRepository
// satisfies it against Postgres.
type EmployeeStore interface {
	List(ctx context.Context) ([]model.EmployeeModel, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, m *model.EmployeeModel) error
	Delete(ctx context.Context, employeeID string) error
}

type EmployeeController struct {
	Store    EmployeeStore
	Validate *validator.Validate
}

func NewEmployeeController(store EmployeeStore, v *validator.Validate) *EmployeeController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EmployeeController{Store: store, Validate: v}
}

// ambil context standar (diisi middleware request context)
func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// GET /employees
func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	rows, err := ctl.Store.List(reqCtx(c))
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.JSON(dto.ToEmployeeResponses(rows))
}

// POST /employees
func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		if fields, ok := helper.BodyTypeErrorMap(err); ok {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	ctx := reqCtx(c)

	// employee_id is checked before email
	exists, err := ctl.Store.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if exists {
		return helper.JsonDomainError(c, helper.DuplicateKey("employee_id", repository.MsgEmployeeIDExists))
	}

	exists, err = ctl.Store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if exists {
		return helper.JsonDomainError(c, helper.DuplicateKey("email", repository.MsgEmployeeEmailUsed))
	}

	m := req.ToModel()
	if err := ctl.Store.Create(ctx, &m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEmployeeResponse(m))
}

// DELETE /employees/:emp_id
func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	empID := c.Params("emp_id")
	if err := ctl.Store.Delete(reqCtx(c), empID); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Employee %s deleted", empID)})
}
