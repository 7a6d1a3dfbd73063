package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, employees controller.EmployeeChecker, store controller.AttendanceStore, v *validator.Validate) {
	ctl := controller.NewAttendanceController(employees, store, v)

	// Group: /attendance
	g := api.Group("/attendance")
	g.Post("/", ctl.Mark)
	g.Get("/:employee_id/summary", ctl.Summary)
	g.Get("/:employee_id", ctl.ListByEmployee)
}
