package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/features/hr/employees/controller"
)

func EmployeeRoutes(api fiber.Router, store controller.EmployeeStore, v *validator.Validate) {
	ctl := controller.NewEmployeeController(store, v)

	// Group: /employees
	g := api.Group("/employees")
	g.Get("/", ctl.List)             // newest first
	g.Post("/", ctl.Create)          // 201
	g.Delete("/:emp_id", ctl.Delete) // cascades attendance
}
