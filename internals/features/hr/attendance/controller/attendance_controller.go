package controller

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/attendance/dto"
	"hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/features/hr/attendance/repository"
	helper "hrms_backend/internals/helpers"
)

// EmployeeChecker is the only thing attendance needs from employees.
type EmployeeChecker interface {
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

type AttendanceStore interface {
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	Create(ctx context.Context, m *model.AttendanceModel) error
	ListByEmployee(ctx context.Context, employeeID string, f model.AttendanceFilter) ([]model.AttendanceModel, error)
	Summary(ctx context.Context, employeeID string) (model.AttendanceSummary, error)
}

type AttendanceController struct {
	Employees EmployeeChecker
	Store     AttendanceStore
	Validate  *validator.Validate
}

func NewAttendanceController(employees EmployeeChecker, store AttendanceStore, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AttendanceController{Employees: employees, Store: store, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// queryParam is nil when key is absent and "" when it is present but empty.
func queryParam(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

func (ctl *AttendanceController) requireEmployee(ctx context.Context, employeeID string) error {
	ok, err := ctl.Employees.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound(repository.MsgEmployeeNotFound)
	}
	return nil
}

// POST /attendance
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
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
	if err := ctl.requireEmployee(ctx, req.EmployeeIDValue()); err != nil {
		return helper.JsonDomainError(c, err)
	}
	if !model.IsValidStatus(req.StatusValue()) {
		return helper.JsonDomainError(c, helper.InvalidValue("status", repository.MsgInvalidStatus))
	}

	m := req.ToModel()
	exists, err := ctl.Store.ExistsForDate(ctx, m.EmployeeID, time.Time(m.Date))
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if exists {
		return helper.JsonDomainError(c, helper.DuplicateKey("date", repository.MsgAlreadyMarked))
	}

	if err := ctl.Store.Create(ctx, &m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToAttendanceResponse(m))
}

// GET /attendance/:employee_id?from_date=&to_date=
func (ctl *AttendanceController) ListByEmployee(c *fiber.Ctx) error {
	q := dto.ListAttendanceQuery{
		FromDate: queryParam(c, "from_date"),
		ToDate:   queryParam(c, "to_date"),
	}
	filter, err := q.Filter()
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	ctx := reqCtx(c)
	employeeID := c.Params("employee_id")
	if err := ctl.requireEmployee(ctx, employeeID); err != nil {
		return helper.JsonDomainError(c, err)
	}

	rows, err := ctl.Store.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.JSON(dto.ToAttendanceResponses(rows))
}

// GET /attendance/:employee_id/summary
func (ctl *AttendanceController) Summary(c *fiber.Ctx) error {
	ctx := reqCtx(c)
	employeeID := c.Params("employee_id")
	if err := ctl.requireEmployee(ctx, employeeID); err != nil {
		return helper.JsonDomainError(c, err)
	}

	s, err := ctl.Store.Summary(ctx, employeeID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return c.JSON(dto.ToSummaryResponse(employeeID, s))
}
